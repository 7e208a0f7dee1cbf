// Package board - Grid construction, scoring and rendering.
//
// This file implements puzzle parsing, violation scoring over the 27 Sudoku
// groups (9 rows, 9 columns, 9 boxes), and the canonical ASCII rendering.
//
// Design principles:
//   - Deterministic, side-effect free functions; no logging, no panics.
//   - Grid is a plain value type: copies are cheap, callers cannot alias
//     solver-internal state.
//   - Only sentinel errors from errors.go.
package board

import "strings"

// Size is the board edge length; Cells is the total cell count.
const (
	Size  = 9
	Box   = 3
	Cells = Size * Size
)

// Grid is a 9×9 Sudoku board. Values are 1..9; 0 marks a blank cell.
type Grid [Size][Size]uint8

// Coord identifies a single cell by row and column, both 0-based.
type Coord struct {
	Row, Col int
}

// Parse builds a Grid from an 81-cell puzzle string.
//
// Accepted cell characters are '1'..'9' for clues and '0' or '.' for blanks.
// Every other rune (whitespace, pipes, newlines, dashes) is ignored, so
// pretty-printed puzzles round-trip through Parse unchanged.
//
// Returns ErrPuzzleLength unless exactly 81 cell characters survive filtering.
//
// Complexity: O(len(puzzle)) time, O(1) memory beyond the returned Grid.
func Parse(puzzle string) (Grid, error) {
	var g Grid
	n := 0
	for _, ch := range puzzle {
		var v uint8
		switch {
		case ch >= '1' && ch <= '9':
			v = uint8(ch - '0')
		case ch == '0' || ch == '.':
			v = 0
		default:
			continue
		}
		if n == Cells {
			return Grid{}, ErrPuzzleLength
		}
		g[n/Size][n%Size] = v
		n++
	}
	if n != Cells {
		return Grid{}, ErrPuzzleLength
	}

	return g, nil
}

// Validate checks that every cell value lies in 0..9.
// Parse can never produce an invalid Grid; Validate guards grids assembled
// programmatically before they reach the solver.
//
// Complexity: O(81).
func (g Grid) Validate() error {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] > Size {
				return ErrBadDigit
			}
		}
	}

	return nil
}

// FreeCells returns the number of blank cells.
//
// Complexity: O(81).
func (g Grid) FreeCells() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] == 0 {
				n++
			}
		}
	}

	return n
}

// groupDuplicates counts extra occurrences within one group of up to 9 values:
// a digit appearing k times contributes k−1. Blanks (0) never count.
func groupDuplicates(vals [Size]uint8) int {
	var seen [Size + 1]int
	dup := 0
	for _, v := range vals {
		if v == 0 {
			continue
		}
		if seen[v] > 0 {
			dup++
		}
		seen[v]++
	}

	return dup
}

// group extracts the idx-th group (0..8 rows, 9..17 columns, 18..26 boxes)
// in canonical cell order.
func (g Grid) group(idx int) [Size]uint8 {
	var out [Size]uint8
	switch {
	case idx < Size: // row
		out = g[idx]
	case idx < 2*Size: // column
		c := idx - Size
		for r := 0; r < Size; r++ {
			out[r] = g[r][c]
		}
	default: // box
		b := idx - 2*Size
		br, bc := (b/Box)*Box, (b%Box)*Box
		for i := 0; i < Size; i++ {
			out[i] = g[br+i/Box][bc+i%Box]
		}
	}

	return out
}

// Violations returns the total constraint-violation count V: the sum over
// all 27 groups of per-group duplicate counts. A fully valid solved board
// scores 0. The score is independent of which duplicate is considered
// "first" - only occurrence counts matter.
//
// Complexity: O(81) time, O(1) memory.
func (g Grid) Violations() int {
	total := 0
	for idx := 0; idx < 3*Size; idx++ {
		total += groupDuplicates(g.group(idx))
	}

	return total
}

// Conflicts returns the coordinates of every cell whose value repeats an
// earlier occurrence within its row, column or box. A cell is reported at
// most once. Blanks never conflict.
//
// Complexity: O(81) time, O(k) memory for k conflicting cells.
func (g Grid) Conflicts() []Coord {
	var hit [Size][Size]bool
	mark := func(cells [Size]Coord) {
		var first [Size + 1]int
		for i := range first {
			first[i] = -1
		}
		for i, cc := range cells {
			v := g[cc.Row][cc.Col]
			if v == 0 {
				continue
			}
			if first[v] >= 0 {
				hit[cc.Row][cc.Col] = true
			} else {
				first[v] = i
			}
		}
	}

	var cells [Size]Coord
	for idx := 0; idx < 3*Size; idx++ {
		for i := 0; i < Size; i++ {
			cells[i] = groupCoord(idx, i)
		}
		mark(cells)
	}

	out := make([]Coord, 0, 8)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if hit[r][c] {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}

	return out
}

// groupCoord maps (group index, member index) to a board coordinate, using
// the same group numbering as Grid.group.
func groupCoord(idx, i int) Coord {
	switch {
	case idx < Size:
		return Coord{Row: idx, Col: i}
	case idx < 2*Size:
		return Coord{Row: i, Col: idx - Size}
	default:
		b := idx - 2*Size
		return Coord{Row: (b/Box)*Box + i/Box, Col: (b%Box)*Box + i%Box}
	}
}

// Complete reports whether the board is a valid full solution: no blanks and
// every row, column and box a permutation of 1..9.
//
// Complexity: O(81).
func (g Grid) Complete() bool {
	for idx := 0; idx < 3*Size; idx++ {
		var seen [Size + 1]bool
		for _, v := range g.group(idx) {
			if v == 0 || seen[v] {
				return false
			}
			seen[v] = true
		}
	}

	return true
}

// String renders the board with 3×3 banding:
//
//	5 3 4  |  6 7 8  |  9 1 2
//	...
//	------------------------- (after rows 2 and 5)
//
// Blanks render as '.'.
func (g Grid) String() string {
	var sb strings.Builder
	var line strings.Builder
	for r := 0; r < Size; r++ {
		line.Reset()
		for c := 0; c < Size; c++ {
			if c > 0 {
				if c%Box == 0 {
					line.WriteString("  |  ")
				} else {
					line.WriteByte(' ')
				}
			}
			if g[r][c] == 0 {
				line.WriteByte('.')
			} else {
				line.WriteByte('0' + g[r][c])
			}
		}
		sb.WriteString(line.String())
		sb.WriteByte('\n')
		if r == 2 || r == 5 {
			sb.WriteString(strings.Repeat("-", line.Len()))
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
