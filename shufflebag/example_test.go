package shufflebag_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/chotto/shufflebag"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleBag
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Draw two full passes from a bag over {1..5}. Each pass covers every
//	value exactly once; the reshuffle between passes is transparent.
//
// Use case:
//
//	The diversity sampler's without-replacement candidate source.
func ExampleBag() {
	bag, err := shufflebag.New([]int{1, 2, 3, 4, 5}, shufflebag.FromSeed(42))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	pass := func() []int {
		drawn := make([]int, 0, bag.Size())
		for i := 0; i < bag.Size(); i++ {
			drawn = append(drawn, bag.Next())
		}
		sort.Ints(drawn)

		return drawn
	}

	fmt.Println("pass 1:", pass())
	fmt.Println("pass 2:", pass())
	// Output:
	// pass 1: [1 2 3 4 5]
	// pass 2: [1 2 3 4 5]
}
