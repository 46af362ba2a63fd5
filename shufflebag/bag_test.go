package shufflebag_test

import (
	"testing"

	"github.com/katalvlaran/chotto/shufflebag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_EmptyCollection verifies ErrEmptyBag on an empty input.
func TestNew_EmptyCollection(t *testing.T) {
	_, err := shufflebag.New[int](nil, nil)
	assert.ErrorIs(t, err, shufflebag.ErrEmptyBag, "empty collection must error")
}

// TestBag_OnePassCoversAll checks that one full pass hands out every item
// exactly once, i.e. draws are without replacement.
func TestBag_OnePassCoversAll(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	bag, err := shufflebag.New(items, shufflebag.FromSeed(42))
	require.NoError(t, err)
	require.Equal(t, len(items), bag.Size())

	seen := make(map[int]int, len(items))
	for i := 0; i < bag.Size(); i++ {
		seen[bag.Next()]++
	}
	for _, v := range items {
		assert.Equal(t, 1, seen[v], "value %d must be drawn exactly once per pass", v)
	}
	assert.Zero(t, bag.Remaining(), "pass must be exhausted")
}

// TestBag_ReshuffleOnExhaustion checks that Next keeps producing after the
// pass ends and that the second pass again covers every item once.
func TestBag_ReshuffleOnExhaustion(t *testing.T) {
	items := []int{10, 20, 30}
	bag, err := shufflebag.New(items, shufflebag.FromSeed(7))
	require.NoError(t, err)

	// Two back-to-back passes: 6 draws, each value seen exactly twice.
	seen := make(map[int]int, len(items))
	for i := 0; i < 2*len(items); i++ {
		seen[bag.Next()]++
	}
	for _, v := range items {
		assert.Equal(t, 2, seen[v], "value %d must appear once per pass", v)
	}
}

// TestBag_ResetDiscardsRemainder verifies Reset restarts a full pass.
func TestBag_ResetDiscardsRemainder(t *testing.T) {
	bag, err := shufflebag.New([]int{1, 2, 3, 4}, shufflebag.FromSeed(1))
	require.NoError(t, err)

	bag.Next()
	bag.Next()
	require.Equal(t, 2, bag.Remaining())

	bag.Reset()
	assert.Equal(t, 4, bag.Remaining(), "Reset must restart the pass")

	seen := make(map[int]int, 4)
	for i := 0; i < 4; i++ {
		seen[bag.Next()]++
	}
	assert.Len(t, seen, 4, "fresh pass must cover all items")
}

// TestBag_DeterministicUnderSeed verifies two bags built from equal seeds
// produce identical draw sequences.
func TestBag_DeterministicUnderSeed(t *testing.T) {
	items := []int{5, 6, 7, 8, 9}

	first, err := shufflebag.New(items, shufflebag.FromSeed(99))
	require.NoError(t, err)
	second, err := shufflebag.New(items, shufflebag.FromSeed(99))
	require.NoError(t, err)

	for i := 0; i < 3*len(items); i++ {
		assert.Equal(t, first.Next(), second.Next(), "draw %d diverged", i)
	}
}

// TestBag_CopiesInput verifies caller-side mutation of the source slice does
// not leak into the bag.
func TestBag_CopiesInput(t *testing.T) {
	items := []int{1, 2, 3}
	bag, err := shufflebag.New(items, shufflebag.FromSeed(3))
	require.NoError(t, err)

	items[0], items[1], items[2] = -1, -1, -1

	seen := make(map[int]struct{}, 3)
	for i := 0; i < 3; i++ {
		seen[bag.Next()] = struct{}{}
	}
	assert.Equal(t, map[int]struct{}{1: {}, 2: {}, 3: {}}, seen,
		"bag must own a private copy of the collection")
}
