// Package gibbs - the per-cell softmax policy (ModeCell).
package gibbs

import (
	"math/rand"

	"github.com/katalvlaran/gibbsudoku/chain"
)

// cellSampler resamples every member of a block independently through a
// masked softmax: any category present among a member's neighbors is
// forbidden. In ModeCell blocks are singletons, but the implementation is
// size-agnostic.
type cellSampler struct {
	blocks []chain.Block
	rels   [][]chain.Relation
}

func newCellSampler(blocks []chain.Block, rels [][]chain.Relation) *cellSampler {
	return &cellSampler{blocks: blocks, rels: rels}
}

// SampleBlock implements chain.Sampler.
//
// Per member i the allowed set is {k : present[i][k]==0}. When every digit
// is present among the neighbors (a contradiction state) the draw relaxes
// to the least-conflicting digits: argmin over present[i]. Logits are 0 for
// allowed, forbidLogit otherwise, plus the self-bias matrix elementwise.
//
// Complexity: O(|block| × (relations + 9)).
func (s *cellSampler) SampleBlock(rng *rand.Rand, b int, prev, next []uint8) error {
	blk := s.blocks[b]
	present, bias := tally(s.rels[b], len(blk), prev)

	for i, node := range blk {
		allowed := allowedByPresence(&present[i])

		var logits [Categories]float64
		for k := 0; k < Categories; k++ {
			if !allowed[k] {
				logits[k] = forbidLogit
			}
			logits[k] += bias[i][k]
		}

		next[node] = uint8(drawCategorical(rng, &logits))
	}

	return nil
}

// allowedByPresence returns the zero-presence mask, falling back to the
// minimum-presence mask when no category is free of neighbors.
func allowedByPresence(present *[Categories]float64) [Categories]bool {
	var allowed [Categories]bool
	any := false
	for k := 0; k < Categories; k++ {
		if present[k] == 0 {
			allowed[k] = true
			any = true
		}
	}
	if any {
		return allowed
	}

	minCount := present[0]
	for k := 1; k < Categories; k++ {
		if present[k] < minCount {
			minCount = present[k]
		}
	}
	for k := 0; k < Categories; k++ {
		allowed[k] = present[k] == minCount
	}

	return allowed
}
