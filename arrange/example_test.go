package arrange_test

import (
	"fmt"

	"github.com/katalvlaran/chotto/arrange"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEnumerate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Enumerate every ordered pair drawn from the tiny pool {7, 8, 9}.
//	The order is deterministic: grouped by prefix, extended in pool order.
//
// Use case:
//
//	Building the per-column universe the diversity sampler draws from.
//
// Complexity: O(n!/(n−k)! · k) time and memory.
func ExampleEnumerate() {
	universe, err := arrange.Enumerate([]int{7, 8, 9}, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("size:", len(universe))
	for _, a := range universe {
		fmt.Println(a)
	}
	// Output:
	// size: 6
	// [7 8]
	// [7 9]
	// [8 7]
	// [8 9]
	// [9 7]
	// [9 8]
}

// ExampleSimilarity shows the position-wise match count the sampler
// thresholds on.
func ExampleSimilarity() {
	a := arrange.Arrangement{1, 2, 3, 4, 5}
	b := arrange.Arrangement{1, 9, 3, 2, 5}
	fmt.Println(arrange.Similarity(a, b))
	// Output:
	// 3
}
