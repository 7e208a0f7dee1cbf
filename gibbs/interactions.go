// Package gibbs - interaction encoding.
//
// For every block B with member-aligned neighborhoods this file emits:
//
//   - 20 Exclusion relations, one per neighbor slot s: relation s's tail
//     for member i is i's s-th neighbor. Both policies read these as "the
//     tail's current value is taken". Tails that are themselves members of
//     B are flagged inactive: they are resampled in the same draw, so
//     conditioning falls to the in-block uniqueness device instead.
//   - exactly one SelfBias relation whose tails are B's own members,
//     carrying a uniform per-member weight.
//
// Relations are tagged with an explicit Kind at construction; nothing
// downstream infers roles from payload shape or tail identity.
package gibbs

import "github.com/katalvlaran/gibbsudoku/chain"

// encodeRelations builds the full relation list for every block of cg.
// The result is read-only for the life of the solve.
//
// Complexity: O(blocks × 21 × |block|) time and memory.
func encodeRelations(cg *cellGraph, selfBias float64) [][]chain.Relation {
	rels := make([][]chain.Relation, len(cg.blocks))
	for b, blk := range cg.blocks {
		n := len(blk)
		out := make([]chain.Relation, 0, neighborsPerCell+1)

		inBlock := make(map[int]bool, n)
		for _, node := range blk {
			inBlock[node] = true
		}

		for s := 0; s < neighborsPerCell; s++ {
			tails := make([]int, n)
			active := make([]bool, n)
			for i := 0; i < n; i++ {
				tails[i] = cg.neighbors[b][i][s]
				active[i] = !inBlock[tails[i]]
			}
			out = append(out, chain.Relation{Kind: chain.Exclusion, Head: b, Tails: tails, Active: active})
		}

		bias := make([]float64, n)
		tails := make([]int, n)
		for i, node := range blk {
			bias[i] = selfBias
			tails[i] = node
		}
		out = append(out, chain.Relation{Kind: chain.SelfBias, Head: b, Tails: tails, Bias: bias})

		rels[b] = out
	}

	return rels
}
