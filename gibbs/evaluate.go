// Package gibbs - sample evaluation and best-board selection.
package gibbs

import "github.com/katalvlaran/gibbsudoku/board"

// gridFromSample converts an 81-category snapshot into a digit board.
func gridFromSample(sample []uint8) board.Grid {
	var g board.Grid
	for node, cat := range sample {
		g[node/board.Size][node%board.Size] = cat + 1
	}

	return g
}

// selectBest scores each snapshot by total violation count and returns the
// lowest-scoring board, its score, and how many snapshots were examined.
// Scanning stops at the first perfect (zero-violation) board; ties on the
// minimum resolve to the earliest snapshot.
//
// Contracts: samples is non-empty (the schedule guarantees ≥ 1 snapshot).
//
// Complexity: O(len(samples) × 81).
func selectBest(samples [][]uint8) (board.Grid, int, int) {
	var best board.Grid
	bestV := -1
	examined := 0
	for _, sample := range samples {
		g := gridFromSample(sample)
		v := g.Violations()
		examined++
		if bestV < 0 || v < bestV {
			best, bestV = g, v
			if v == 0 {
				break
			}
		}
	}

	return best, bestV, examined
}
