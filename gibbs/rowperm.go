// Package gibbs - the row-permutation policy (ModeRow).
package gibbs

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/gibbsudoku/chain"
)

// rowSampler resamples one full row-block at a time, assigning members
// sequentially under a shrinking chosen-digit mask so that every sampled
// row is a permutation of 1..9. The presence matrix steers members away
// from column/box conflicts; uniqueness within the row comes purely from
// the mask, which is why the member draws must not be parallelized.
type rowSampler struct {
	blocks []chain.Block
	rels   [][]chain.Relation
}

func newRowSampler(blocks []chain.Block, rels [][]chain.Relation) *rowSampler {
	return &rowSampler{blocks: blocks, rels: rels}
}

// SampleBlock implements chain.Sampler.
//
// Members draw in most-constrained-first order: fewest conflict-free
// digits first, block order on ties. Constrained members picking before
// flexible ones keeps the chosen mask from starving them, which is what
// lets the chain settle on consistent rows instead of cycling.
//
// Per member the candidate ladder is
//
//	{k : present[k]==0}  →  argmin over present  →  anything,
//
// each rung intersected with ¬chosen and taken only when the rung above
// is empty. Logits are 0 on candidates, forbidLogit otherwise, plus
// self-bias; the drawn digit is marked chosen.
//
// Free members never exhaust ¬chosen: a block has at most 9 members and
// each draw consumes exactly one distinct digit.
//
// Complexity: O(|block| × (relations + 9)).
func (s *rowSampler) SampleBlock(rng *rand.Rand, b int, prev, next []uint8) error {
	blk := s.blocks[b]
	n := len(blk)
	present, bias := tally(s.rels[b], n, prev)

	order := make([]int, n)
	degree := make([]int, n)
	for i := 0; i < n; i++ {
		order[i] = i
		for k := 0; k < Categories; k++ {
			if present[i][k] == 0 {
				degree[i]++
			}
		}
	}
	sort.SliceStable(order, func(x, y int) bool { return degree[order[x]] < degree[order[y]] })

	var chosen [Categories]bool
	for _, i := range order {
		allowed := allowedByPresence(&present[i])

		any := false
		for k := 0; k < Categories; k++ {
			allowed[k] = allowed[k] && !chosen[k]
			any = any || allowed[k]
		}
		if !any {
			for k := 0; k < Categories; k++ {
				allowed[k] = !chosen[k]
			}
		}

		var logits [Categories]float64
		for k := 0; k < Categories; k++ {
			if !allowed[k] {
				logits[k] = forbidLogit
			}
			logits[k] += bias[i][k]
		}

		k := drawCategorical(rng, &logits)
		next[blk[i]] = uint8(k)
		chosen[k] = true
	}

	return nil
}
