// Package board defines the Grid and Pool types and sentinel errors
// for the board subpackage of github.com/katalvlaran/chotto.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid assembly.
var (
	// ErrLengthMismatch indicates the five per-column sequences differ in
	// length. Correct callers never trigger it; it guards a programming error.
	ErrLengthMismatch = errors.New("board: per-column sequences must share one length")
	// ErrArrangementSize indicates an arrangement does not span the grid height.
	ErrArrangementSize = errors.New("board: arrangement length must equal the grid height")
)

const (
	// Size is the board edge length: 5 columns of 5 cells.
	Size = 5
	// PoolSize is the number of values available to each column.
	PoolSize = 15
	// FreeCol and FreeRow locate the free cell at the board center.
	FreeCol = 2
	// FreeRow locates the free cell's row.
	FreeRow = 2
	// FreeCell marks the free center cell. Zero lies outside every pool, so
	// it can never collide with a drawn number.
	FreeCell = 0
)

// Letters are the traditional column headers, left to right.
var Letters = [Size]rune{'B', 'I', 'N', 'G', 'O'}

// Pool is the fixed set of distinct values one column draws from.
type Pool []int

// StandardPools returns the five pools partitioning 1..75 into contiguous
// blocks of 15: B=1–15, I=16–30, N=31–45, G=46–60, O=61–75.
func StandardPools() [Size]Pool {
	var pools [Size]Pool
	for c := 0; c < Size; c++ {
		pool := make(Pool, PoolSize)
		for i := 0; i < PoolSize; i++ {
			pool[i] = c*PoolSize + i + 1
		}
		pools[c] = pool
	}

	return pools
}

// Grid is one sheet's 5×5 number matrix, indexed [row][column]. The center
// cell holds FreeCell, every other cell a value from its column's pool.
type Grid [Size][Size]int

// At returns the value at column x, row y.
func (g Grid) At(x, y int) int {
	return g[y][x]
}

// IsFree reports whether (x, y) is the free center cell.
func (g Grid) IsFree(x, y int) bool {
	return x == FreeCol && y == FreeRow
}

// String renders the grid as plain aligned text with the BINGO header and
// "**" for the free cell. Meant for logs and quick inspection; styled
// output lives with the CLI.
func (g Grid) String() string {
	var sb strings.Builder
	for x := 0; x < Size; x++ {
		if x > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, " %c", Letters[x])
	}
	sb.WriteByte('\n')
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if g.IsFree(x, y) {
				sb.WriteString("**")
			} else {
				fmt.Fprintf(&sb, "%2d", g[y][x])
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
