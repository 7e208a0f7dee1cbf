// Package gibbs - constraint graph construction.
//
// This file turns a parsed Grid into the sampling graph: the clamped/free
// partition, per-cell exclusion neighborhoods, and the block partition for
// the configured mode.
//
// Determinism: neighborhoods are enumerated in row-major (row, col) order,
// and blocks list their members in ascending column / row-major order.
// Downstream relation indices rely on this positional alignment.
package gibbs

import (
	"github.com/katalvlaran/gibbsudoku/board"
	"github.com/katalvlaran/gibbsudoku/chain"
)

// neighborsPerCell is the fixed exclusion-neighborhood size: 8 row peers +
// 8 column peers + 4 box peers not already counted.
const neighborsPerCell = 20

// cellGraph is the solver's view of one puzzle: the clamped partition with
// fixed categories, the block partition, and member-aligned neighborhoods.
type cellGraph struct {
	clamped [board.Cells]bool
	fixed   [board.Cells]uint8 // category (digit−1) for clamped cells

	blocks []chain.Block
	// neighbors[b][i] lists the 20 neighbor node ids of block b's i-th
	// member, sorted by (row, col).
	neighbors [][][]int
}

// nodeID maps a board coordinate to its dense node index.
func nodeID(r, c int) int { return r*board.Size + c }

// neighborNodes enumerates the exclusion neighborhood of (r, c): every other
// cell sharing its row, column or 3×3 box, in row-major order.
//
// Returns ErrNeighborCount if the enumeration does not yield exactly 20
// cells - a defect in this logic, never a property of the puzzle.
//
// Complexity: O(81).
func neighborNodes(r, c int) ([]int, error) {
	out := make([]int, 0, neighborsPerCell)
	br, bc := (r/board.Box)*board.Box, (c/board.Box)*board.Box
	for rr := 0; rr < board.Size; rr++ {
		for cc := 0; cc < board.Size; cc++ {
			if rr == r && cc == c {
				continue
			}
			sameBox := rr >= br && rr < br+board.Box && cc >= bc && cc < bc+board.Box
			if rr == r || cc == c || sameBox {
				out = append(out, nodeID(rr, cc))
			}
		}
	}
	if len(out) != neighborsPerCell {
		return nil, ErrNeighborCount
	}

	return out, nil
}

// buildGraph partitions the grid into clamped and free cells and assembles
// the block structure for the given mode:
//
//   - ModeRow:  one block per row holding that row's free cells in column
//     order; rows without free cells are omitted.
//   - ModeCell: one singleton block per free cell, row-major.
//
// Contracts:
//   - g must already satisfy board.Grid invariants (values 0..9).
//   - The returned blocks partition exactly the free cells.
//
// Errors: ErrNeighborCount (construction defect).
//
// Complexity: O(81·20) time and memory.
func buildGraph(g board.Grid, mode Mode) (*cellGraph, error) {
	cg := &cellGraph{}
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if v := g[r][c]; v != 0 {
				cg.clamped[nodeID(r, c)] = true
				cg.fixed[nodeID(r, c)] = v - 1
			}
		}
	}

	appendBlock := func(cells []board.Coord) error {
		blk := make(chain.Block, len(cells))
		nbrs := make([][]int, len(cells))
		for i, cc := range cells {
			blk[i] = nodeID(cc.Row, cc.Col)
			nn, err := neighborNodes(cc.Row, cc.Col)
			if err != nil {
				return err
			}
			nbrs[i] = nn
		}
		cg.blocks = append(cg.blocks, blk)
		cg.neighbors = append(cg.neighbors, nbrs)

		return nil
	}

	switch mode {
	case ModeRow:
		for r := 0; r < board.Size; r++ {
			var free []board.Coord
			for c := 0; c < board.Size; c++ {
				if g[r][c] == 0 {
					free = append(free, board.Coord{Row: r, Col: c})
				}
			}
			if len(free) == 0 {
				continue
			}
			if err := appendBlock(free); err != nil {
				return nil, err
			}
		}
	default: // ModeCell; validated upstream
		for r := 0; r < board.Size; r++ {
			for c := 0; c < board.Size; c++ {
				if g[r][c] != 0 {
					continue
				}
				if err := appendBlock([]board.Coord{{Row: r, Col: c}}); err != nil {
					return nil, err
				}
			}
		}
	}

	return cg, nil
}
