// Package order provides the comparison-driven building blocks shared by all
// segment variants: a predicate binary search and a stable two-way merge.
package order

// Search performs a binary search over the conceptually sorted positions
// 0..n-1 using a three-way comparator. cmp(i) must be negative when the
// element at position i orders before the probe, zero on an exact match and
// positive when it orders after.
//
// On an exact match the matching position is returned. Otherwise the result
// is the first position whose comparator value is >= 0, clamped into
// [0, n-1]; for n == 0 the result is 0. Callers interpret the returned
// position according to which case holds: when looking for an insertion slot
// and cmp at the returned position is still negative, the slot is one past it.
func Search(n int, cmp func(int) int) int {
	lo, hi := 0, n-1
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(mid) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < 0 {
		return 0
	}
	return lo
}

// Merge writes the stable ascending merge of a and b into dst, which must
// have length len(a)+len(b). cmp(x, y) compares an element of a against an
// element of b. Elements of b win ties: whenever the heads compare equal the
// element of b is emitted first. Merge allocates nothing.
func Merge[T any](dst, a, b []T, cmp func(x, y T) int) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if cmp(a[i], b[j]) < 0 {
			dst[k] = a[i]
			i++
		} else {
			dst[k] = b[j]
			j++
		}
		k++
	}
	for i < len(a) {
		dst[k] = a[i]
		i++
		k++
	}
	for j < len(b) {
		dst[k] = b[j]
		j++
		k++
	}
}
