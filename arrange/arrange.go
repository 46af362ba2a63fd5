package arrange

// Enumerate returns every ordered, duplicate-free k-arrangement of pool, in
// a deterministic order: results are grouped by their (k−1)-prefix, prefixes
// appear in enumeration order, and extensions follow pool order. Re-running
// on identical inputs yields an identical ordered slice.
//
// Returns ErrEmptyPool, ErrArrangementLength or ErrDuplicateValue before any
// enumeration work starts.
//
// Complexity: O(n!/(n−k)! · k) time and memory, n = len(pool).
func Enumerate(pool []int, k int) ([]Arrangement, error) {
	n := len(pool)
	if n == 0 {
		return nil, ErrEmptyPool
	}
	if k <= 0 || k > n {
		return nil, ErrArrangementLength
	}
	seen := make(map[int]struct{}, n)
	for _, v := range pool {
		if _, dup := seen[v]; dup {
			return nil, ErrDuplicateValue
		}
		seen[v] = struct{}{}
	}

	// Work list of all arrangements of the current length, seeded with the
	// singletons. Each round extends every entry by every absent pool value,
	// growing the length by one until it reaches k.
	current := make([]Arrangement, n)
	for i, v := range pool {
		current[i] = Arrangement{v}
	}
	var length int
	for length = 2; length <= k; length++ {
		next := make([]Arrangement, 0, len(current)*(n-length+1))
		for _, prefix := range current {
			for _, v := range pool {
				if prefix.contains(v) {
					continue
				}
				ext := make(Arrangement, length)
				copy(ext, prefix)
				ext[length-1] = v
				next = append(next, ext)
			}
		}
		current = next
	}

	return current, nil
}

// Count returns n!/(n−k)!, the number of arrangements Enumerate(pool, k)
// yields for a pool of n distinct values, without enumerating them.
// Returns ErrEmptyPool or ErrArrangementLength on the same contract
// violations as Enumerate.
//
// Complexity: O(k) time, O(1) space.
func Count(n, k int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyPool
	}
	if k <= 0 || k > n {
		return 0, ErrArrangementLength
	}
	total := 1
	for i := 0; i < k; i++ {
		total *= n - i
	}

	return total, nil
}

// Similarity counts the index positions at which a and b hold equal values.
// Both arrangements are expected to share one length k (the range is then
// 0..k); if they differ, only the overlapping prefix is compared.
//
// Complexity: O(k) time, O(1) space.
func Similarity(a, b Arrangement) int {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}
	matches := 0
	for i := 0; i < limit; i++ {
		if a[i] == b[i] {
			matches++
		}
	}

	return matches
}
