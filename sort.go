package vec

// Cmp is a three-way comparator: negative when a orders before b, zero when
// they are equivalent, positive when a orders after b.
type Cmp[T any] func(a, b T) int

// InsertionSort sorts xs ascending by cmp using adjacent-swap insertion
// sort. Stable (equal elements keep their relative order), adaptive
// (near-sorted input approaches O(n)), and in-place. Both array variants
// expose it as SortInsertion over their live elements.
func InsertionSort[T any](xs []T, cmp Cmp[T]) {
	for i := 1; i < len(xs); i++ {
		// walk xs[i] down while the element above it orders after it
		for j := i; j > 0 && cmp(xs[j-1], xs[j]) > 0; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// MergeSort sorts xs ascending by cmp using a bottom-up iterative merge
// sort: no recursion, runs of geometrically doubling size. Stable,
// O(n log n), and allocates one scratch buffer of len(xs) elements that is
// dropped before return.
func MergeSort[T any](xs []T, cmp Cmp[T]) {
	n := len(xs)
	if n < 2 {
		return
	}
	scratch := make([]T, n)
	for h := 1; h < n; h += h {
		// Merge windows of up to 2h elements, walking from the high end of
		// the array toward the low end so run boundaries stay aligned with
		// the previous pass. The window splits into a left half [l, m] and
		// a right half [m+1, m+h]; the final window clamps l at zero.
		for m := n - 1 - h; m >= 0; m -= h + h {
			l := m - h + 1
			if l < 0 {
				l = 0
			}
			j := m + 1
			copy(scratch, xs[l:j])
			i, k := 0, l
			for ; k < j && j <= m+h; k++ {
				// Strict inequality keeps equal elements on the left side,
				// preserving their relative order.
				if cmp(xs[j], scratch[i]) < 0 {
					xs[k] = xs[j]
					j++
				} else {
					xs[k] = scratch[i]
					i++
				}
			}
			// Whichever side ran out, the scratch leftovers are the only
			// elements not yet in place.
			for ; k < j; k++ {
				xs[k] = scratch[i]
				i++
			}
		}
	}
}
