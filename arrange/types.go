// Package arrange defines the Arrangement type and sentinel errors
// for the arrange subpackage of github.com/katalvlaran/chotto.
package arrange

import "errors"

// Sentinel errors for arrangement enumeration.
var (
	// ErrEmptyPool indicates the input pool contains no values.
	ErrEmptyPool = errors.New("arrange: pool must contain at least one value")
	// ErrArrangementLength indicates k is outside 1..len(pool).
	ErrArrangementLength = errors.New("arrange: arrangement length must satisfy 0 < k <= pool size")
	// ErrDuplicateValue indicates the pool holds the same value twice.
	ErrDuplicateValue = errors.New("arrange: pool values must be distinct")
)

// Arrangement is an ordered sequence of distinct values taken from one pool.
// For a bingo sheet it holds one column's numbers, top to bottom.
type Arrangement []int

// contains reports whether v already occurs in a.
// Linear scan; arrangements are short (k ≤ pool size, typically 5).
func (a Arrangement) contains(v int) bool {
	for _, x := range a {
		if x == v {
			return true
		}
	}

	return false
}
