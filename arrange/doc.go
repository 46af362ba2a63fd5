// Package arrange enumerates ordered, duplicate-free k-arrangements drawn
// from a fixed pool of distinct integers, and measures positional similarity
// between two arrangements.
//
// What:
//
//   - Arrangement is an ordered sequence of k distinct pool values; in a
//     bingo sheet it is one column read top to bottom.
//   - Enumerate(pool, k) produces the full universe of k-arrangements,
//     n!/(n−k)! of them, in a deterministic order.
//   - Similarity(a, b) counts index positions where a and b hold the same
//     value (0..k); the diversity sampler thresholds on it.
//
// Why:
//
//   - The sampler draws without replacement from a precomputed universe, so
//     the universe must be enumerated once, fully, and reproducibly.
//   - For the production parameters (n=15, k=5) the universe holds 360360
//     arrangements; enumeration is a one-off cost per column.
//
// Construction is iterative: seed with every singleton, then repeatedly
// extend each partial arrangement by every absent pool value. No recursion,
// so call-stack depth never depends on k.
//
// Complexity:
//
//   - Enumerate: O(n!/(n−k)! · k) time and memory.
//   - Similarity: O(k) time, O(1) space.
//
// Errors:
//
//   - ErrEmptyPool: pool has no values.
//   - ErrArrangementLength: k ≤ 0 or k > len(pool).
//   - ErrDuplicateValue: pool values are not distinct.
package arrange
