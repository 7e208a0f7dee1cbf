// Package board models the 9×9 Sudoku board: parsing puzzle strings,
// counting constraint violations, and rendering.
//
// What:
//
//   - Grid is a value-type [9][9]uint8 board; 0 marks a blank cell.
//   - Parse builds a Grid from an 81-cell puzzle string (0 or '.' = blank;
//     whitespace and separators are ignored).
//   - Violations scores a board: each extra occurrence of a digit within a
//     row, column or 3×3 box beyond the first contributes one violation.
//   - Conflicts lists the coordinates of duplicated cells for reporting.
//   - Complete reports whether every group is an exact permutation of 1..9.
//
// Why:
//
//   - Stochastic solvers rank candidate boards by violation count; the
//     scoring here is the single source of truth for that ranking.
//   - Parsing and rendering stay out of the sampling core, which consumes
//     only the Grid value.
//
// Complexity:
//
//   - Parse:      O(len(input)).
//   - Violations: O(81) time, O(1) memory (occurrence arrays per group).
//   - Conflicts:  O(81) time, O(k) memory for k conflicting cells.
//
// Errors:
//
//   - ErrPuzzleLength: the input does not contain exactly 81 cell characters.
//   - ErrBadDigit: a cell value outside 0..9 was supplied programmatically.
package board
