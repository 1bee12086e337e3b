package vec

import "unsafe"

// Raw sorts operate on opaque fixed-width records packed into a flat byte
// buffer, the one shape the typed sorts cannot serve with a single
// instantiation. The caller supplies the record width explicitly;
// len(data) must be a multiple of width. Comparators receive the two
// records as width-byte slices.

// swapRaw exchanges two width-byte records. A record of exactly one machine
// word is exchanged as a single word; anything else takes the three-step
// copy through tmp, which must hold at least width bytes.
func swapRaw(a, b, tmp []byte, width int) {
	if uintptr(width) == unsafe.Sizeof(uintptr(0)) {
		pa := (*uintptr)(unsafe.Pointer(&a[0]))
		pb := (*uintptr)(unsafe.Pointer(&b[0]))
		*pa, *pb = *pb, *pa
		return
	}
	copy(tmp[:width], a)
	copy(a[:width], b)
	copy(b[:width], tmp)
}

// InsertionSortRaw sorts the records in data ascending by cmp. Stable,
// adaptive, in-place.
func InsertionSortRaw(data []byte, width int, cmp func(a, b []byte) int) {
	assert(width > 0 && len(data)%width == 0, "data is not whole records")
	n := len(data) / width
	tmp := make([]byte, width)
	for i := 1; i < n; i++ {
		for j := i; j > 0; j-- {
			prev := data[(j-1)*width : j*width]
			cur := data[j*width : (j+1)*width]
			if cmp(prev, cur) <= 0 {
				break
			}
			swapRaw(prev, cur, tmp, width)
		}
	}
}

// MergeSortRaw sorts the records in data ascending by cmp with the same
// bottom-up iterative merge as MergeSort, moving records with swapRaw.
// Stable, O(n log n); allocates a scratch buffer of len(data) bytes for the
// duration of the call.
func MergeSortRaw(data []byte, width int, cmp func(a, b []byte) int) {
	assert(width > 0 && len(data)%width == 0, "data is not whole records")
	n := len(data) / width
	if n < 2 {
		return
	}
	scratch := make([]byte, len(data))
	tmp := make([]byte, width)
	rec := func(buf []byte, i int) []byte {
		return buf[i*width : (i+1)*width]
	}
	for h := 1; h < n; h += h {
		for m := n - 1 - h; m >= 0; m -= h + h {
			l := m - h + 1
			if l < 0 {
				l = 0
			}
			j := m + 1
			copy(scratch, data[l*width:j*width])
			i, k := 0, l
			for ; k < j && j <= m+h; k++ {
				if cmp(rec(data, j), rec(scratch, i)) < 0 {
					swapRaw(rec(data, k), rec(data, j), tmp, width)
					j++
				} else {
					swapRaw(rec(data, k), rec(scratch, i), tmp, width)
					i++
				}
			}
			for ; k < j; k++ {
				swapRaw(rec(data, k), rec(scratch, i), tmp, width)
				i++
			}
		}
	}
}
