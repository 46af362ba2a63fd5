package board_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/chotto/arrange"
	"github.com/katalvlaran/chotto/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedColumns builds count identical arrangements per column, each filled
// with the column's first five standard pool values in order.
func fixedColumns(count int) [board.Size][]arrange.Arrangement {
	pools := board.StandardPools()
	var columns [board.Size][]arrange.Arrangement
	for x := 0; x < board.Size; x++ {
		seq := make([]arrange.Arrangement, count)
		for i := range seq {
			a := make(arrange.Arrangement, board.Size)
			copy(a, pools[x][:board.Size])
			seq[i] = a
		}
		columns[x] = seq
	}

	return columns
}

// TestStandardPools verifies the five pools partition 1..75 into contiguous
// blocks of 15.
func TestStandardPools(t *testing.T) {
	pools := board.StandardPools()

	seen := make(map[int]struct{}, 75)
	for c, pool := range pools {
		require.Len(t, pool, board.PoolSize, "column %d pool size", c)
		for i, v := range pool {
			assert.Equal(t, c*board.PoolSize+i+1, v, "column %d must be contiguous", c)
			seen[v] = struct{}{}
		}
	}
	assert.Len(t, seen, 75, "pools must partition 1..75")
}

// TestAssemble_CellMapping verifies cell (x,y) of sheet i receives
// columns[x][i][y], with the center cell forced free.
func TestAssemble_CellMapping(t *testing.T) {
	columns := fixedColumns(3)
	grids, err := board.Assemble(columns)
	require.NoError(t, err)
	require.Len(t, grids, 3)

	for i, g := range grids {
		for x := 0; x < board.Size; x++ {
			for y := 0; y < board.Size; y++ {
				if g.IsFree(x, y) {
					assert.Equal(t, board.FreeCell, g.At(x, y), "sheet %d free cell", i)

					continue
				}
				assert.Equal(t, columns[x][i][y], g.At(x, y),
					"sheet %d cell (%d,%d)", i, x, y)
			}
		}
	}
}

// TestAssemble_ColumnRanges verifies every non-free cell stays inside its
// column's standard pool range.
func TestAssemble_ColumnRanges(t *testing.T) {
	grids, err := board.Assemble(fixedColumns(2))
	require.NoError(t, err)

	for _, g := range grids {
		for x := 0; x < board.Size; x++ {
			lo, hi := x*board.PoolSize+1, (x+1)*board.PoolSize
			for y := 0; y < board.Size; y++ {
				if g.IsFree(x, y) {
					continue
				}
				v := g.At(x, y)
				assert.GreaterOrEqual(t, v, lo, "cell (%d,%d) below column range", x, y)
				assert.LessOrEqual(t, v, hi, "cell (%d,%d) above column range", x, y)
			}
		}
	}
}

// TestAssemble_LengthMismatch verifies the defensive length check.
func TestAssemble_LengthMismatch(t *testing.T) {
	columns := fixedColumns(4)
	columns[3] = columns[3][:2]

	_, err := board.Assemble(columns)
	assert.ErrorIs(t, err, board.ErrLengthMismatch)
}

// TestAssemble_ArrangementSize verifies short arrangements are rejected.
func TestAssemble_ArrangementSize(t *testing.T) {
	columns := fixedColumns(2)
	columns[1][0] = columns[1][0][:3]

	_, err := board.Assemble(columns)
	assert.ErrorIs(t, err, board.ErrArrangementSize)
}

// TestAssemble_Empty verifies zero sheets assemble to an empty batch.
func TestAssemble_Empty(t *testing.T) {
	grids, err := board.Assemble(fixedColumns(0))
	require.NoError(t, err)
	assert.Empty(t, grids)
}

// TestGrid_String smoke-checks the plain renderer: header row, free cell
// marker, and one known value.
func TestGrid_String(t *testing.T) {
	grids, err := board.Assemble(fixedColumns(1))
	require.NoError(t, err)

	out := grids[0].String()
	assert.True(t, strings.HasPrefix(out, " B  I  N  G  O"), "header row: %q", out)
	assert.Contains(t, out, "**", "free cell marker")
	assert.Contains(t, out, "61", "O column first value")
}
