package board

import "github.com/katalvlaran/chotto/arrange"

// Assemble merges five per-column arrangement sequences into one grid per
// sheet. For sheet i, cell (x, y) receives columns[x][i][y]; the center cell
// is forced to FreeCell. Ownership of the returned grids transfers to the
// caller (typically the rendering side).
//
// All five sequences must share one length (ErrLengthMismatch otherwise),
// and every arrangement must span the grid height (ErrArrangementSize).
// Both violations are programming errors, never expected in correct usage.
//
// Purely structural: no randomness, deterministic for fixed input.
//
// Complexity: O(count · Size²) time, O(count) memory.
func Assemble(columns [Size][]arrange.Arrangement) ([]Grid, error) {
	count := len(columns[0])
	for _, seq := range columns[1:] {
		if len(seq) != count {
			return nil, ErrLengthMismatch
		}
	}

	grids := make([]Grid, count)
	for i := 0; i < count; i++ {
		var g Grid
		for x := 0; x < Size; x++ {
			a := columns[x][i]
			if len(a) != Size {
				return nil, ErrArrangementSize
			}
			for y := 0; y < Size; y++ {
				g[y][x] = a[y]
			}
		}
		g[FreeRow][FreeCol] = FreeCell
		grids[i] = g
	}

	return grids, nil
}
