// Package gibbs - shared pre-step for both conditional sampling policies.
//
// Both policies reduce a block's relations to two n×9 matrices before
// drawing:
//
//	present[i][k] — how many active exclusion tails of member i currently
//	                hold category k (summed across relations, not OR'd);
//	bias[i][k]    — the SelfBias weight where member i's current value is k.
package gibbs

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/gibbsudoku/chain"
)

// tally computes the presence and bias matrices for one block of size n
// against the state committed before the block's draw. Inactive exclusion
// tails are skipped; the bias ignores activity, matching its role as pure
// inertia on the member's pre-draw value.
//
// Complexity: O(relations × n) time, O(n×9) memory.
func tally(rels []chain.Relation, n int, prev []uint8) (present, bias [][Categories]float64) {
	present = make([][Categories]float64, n)
	bias = make([][Categories]float64, n)
	for _, rel := range rels {
		switch rel.Kind {
		case chain.Exclusion:
			for i, tail := range rel.Tails {
				if rel.Active != nil && !rel.Active[i] {
					continue
				}
				present[i][prev[tail]]++
			}
		case chain.SelfBias:
			for i, tail := range rel.Tails {
				bias[i][prev[tail]] += rel.Bias[i]
			}
		}
	}

	return present, bias
}

// drawCategorical samples a category proportional to exp(logits[k]).
// Equal logits yield a uniform draw; the forbidLogit sentinel underflows to
// zero mass after the max-shift, so disallowed categories are never chosen
// while at least one allowed category exists.
//
// Complexity: O(9).
func drawCategorical(rng *rand.Rand, logits *[Categories]float64) int {
	maxLogit := logits[0]
	for k := 1; k < Categories; k++ {
		if logits[k] > maxLogit {
			maxLogit = logits[k]
		}
	}

	var cum [Categories]float64
	total := 0.0
	for k := 0; k < Categories; k++ {
		total += math.Exp(logits[k] - maxLogit)
		cum[k] = total
	}

	u := rng.Float64() * total
	for k := 0; k < Categories; k++ {
		if u < cum[k] {
			return k
		}
	}

	return Categories - 1
}
