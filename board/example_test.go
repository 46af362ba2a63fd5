package board_test

import (
	"fmt"

	"github.com/katalvlaran/chotto/arrange"
	"github.com/katalvlaran/chotto/board"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAssemble
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Assemble a single sheet from five hand-written column arrangements.
//	Cell (x,y) = columns[x][0][y]; the center becomes the free cell.
//
// Use case:
//
//	The structural tail of generation, handed to the rendering side.
func ExampleAssemble() {
	columns := [board.Size][]arrange.Arrangement{
		{{1, 2, 3, 4, 5}},
		{{16, 17, 18, 19, 20}},
		{{31, 32, 33, 34, 35}},
		{{46, 47, 48, 49, 50}},
		{{61, 62, 63, 64, 65}},
	}

	grids, err := board.Assemble(columns)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(grids[0])
	// Output:
	//  B  I  N  G  O
	//  1 16 31 46 61
	//  2 17 32 47 62
	//  3 18 ** 48 63
	//  4 19 34 49 64
	//  5 20 35 50 65
}
