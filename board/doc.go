// Package board holds the bingo data model: the five number pools, the 5×5
// Grid value type with its free center cell, and the assembler that merges
// five per-column arrangement sequences into a sequence of grids.
//
// What:
//
//   - StandardPools partitions 1..75 into five contiguous blocks of 15, one
//     per column letter of "BINGO".
//   - Grid is a plain [5][5]int; the center cell (column 2, row 2) always
//     holds the FreeCell marker instead of a number.
//   - Assemble zips five equally long arrangement sequences into grids:
//     sheet i, cell (x,y) = columns[x][i][y], free cell excepted.
//
// Why:
//
//	Assembly is the pure, structural tail of generation: no randomness, no
//	similarity logic, just a defensive length check. Downstream rendering
//	consumes the produced grids and owns them from then on.
//
// Complexity:
//
//   - Assemble: O(count · 25) time, O(count) memory.
//
// Errors:
//
//   - ErrLengthMismatch: the five sequences disagree on length.
//   - ErrArrangementSize: an arrangement does not span the grid height.
package board
