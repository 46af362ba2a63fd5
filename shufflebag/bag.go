package shufflebag

import (
	"errors"
	"math/rand"
)

// ErrEmptyBag indicates the bag was constructed over an empty collection.
var ErrEmptyBag = errors.New("shufflebag: bag must contain at least one item")

// Bag is a stateful without-replacement sampler over a fixed collection.
// One pass hands out every item exactly once in a shuffled order; exhausting
// the pass triggers an internal reshuffle and a fresh pass.
type Bag[T any] struct {
	items []T
	next  int
	rng   *rand.Rand
}

// New builds a Bag over items using rng for shuffling. The input slice is
// copied, so later mutation by the caller cannot skew draws. A nil rng falls
// back to the deterministic default stream (seed==0 policy).
// Returns ErrEmptyBag when items is empty.
//
// Complexity: O(n) time and memory.
func New[T any](items []T, rng *rand.Rand) (*Bag[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptyBag
	}
	r := rng
	if r == nil {
		r = FromSeed(0)
	}
	owned := make([]T, len(items))
	copy(owned, items)

	b := &Bag[T]{items: owned, rng: r}
	b.Reset()

	return b, nil
}

// Next returns the next item of the current pass, reshuffling and starting
// a new pass transparently once the collection is exhausted.
//
// Complexity: O(1) amortized; every len(items) draws pay one O(n) shuffle.
func (b *Bag[T]) Next() T {
	if b.next == len(b.items) {
		b.Reset()
	}
	v := b.items[b.next]
	b.next++

	return v
}

// Reset reshuffles the collection and restarts the pass, discarding any
// undrawn remainder of the current one.
//
// Complexity: O(n).
func (b *Bag[T]) Reset() {
	ShuffleInPlace(b.items, b.rng)
	b.next = 0
}

// Size returns the number of items in the underlying collection.
func (b *Bag[T]) Size() int {
	return len(b.items)
}

// Remaining returns how many items of the current pass are still undrawn.
func (b *Bag[T]) Remaining() int {
	return len(b.items) - b.next
}
