package vec

// Values is a dynamic array of plain fixed-width values. It has the same
// layout and operation set as Owning but never adjusts ownership: values
// may be duplicated, overwritten and dropped freely. Equality is full value
// comparison via ==; IndexOfFunc accepts a caller-defined predicate.
//
// Not goroutine-safe. The unchecked operations skip index and capacity
// validation; their preconditions are verified only under the vecassert
// build tag.
type Values[T comparable] struct {
	store[T]
}

// NewValues creates a Values array with max(capacity, 1) slots.
func NewValues[T comparable](capacity int) *Values[T] {
	return &Values[T]{store: newStore[T](capacity)}
}

// Len returns the number of live elements.
func (v *Values[T]) Len() int { return v.count }

// Cap returns the number of allocated slots.
func (v *Values[T]) Cap() int { return len(v.buf) }

// EnsureExtraCapacity guarantees room for extra more elements, doubling the
// buffer as needed. Growth reallocates: any slice previously returned by
// Slice is invalid afterwards.
func (v *Values[T]) EnsureExtraCapacity(extra int) { v.ensureExtra(extra) }

// ShrinkToFit reallocates the buffer down to the live element count
// (minimum one slot).
func (v *Values[T]) ShrinkToFit() { v.shrinkToFit() }

// Append places x in the next slot. The caller must have ensured capacity
// for one more element; behaviour is undefined otherwise.
func (v *Values[T]) Append(x T) {
	assert(v.count < len(v.buf), "append past capacity")
	v.buf[v.count] = x
	v.count++
}

// AppendWithResize appends x, growing the buffer first if needed.
func (v *Values[T]) AppendWithResize(x T) {
	v.ensureExtra(1)
	v.Append(x)
}

// AppendArray appends every element of other. The caller must have ensured
// capacity for other.Len() more elements.
func (v *Values[T]) AppendArray(other *Values[T]) {
	for _, x := range other.live() {
		v.Append(x)
	}
}

// AppendArrayWithResize appends every element of other, growing first if
// needed.
func (v *Values[T]) AppendArrayWithResize(other *Values[T]) {
	v.ensureExtra(other.count)
	v.AppendArray(other)
}

// InsertAt places x at index i, shifting elements [i, Len()) one slot
// right. Requires 0 <= i <= Len() and capacity for one more element; unlike
// the owning variant this does not resize. Use InsertAtWithResize when
// capacity is not already ensured.
func (v *Values[T]) InsertAt(x T, i int) {
	assert(i >= 0 && i <= v.count, "insert index out of range")
	assert(v.count < len(v.buf), "insert past capacity")
	v.openGap(i)
	v.buf[i] = x
	v.count++
}

// InsertAtWithResize inserts x at index i, growing the buffer first if
// needed. Requires 0 <= i <= Len().
func (v *Values[T]) InsertAtWithResize(x T, i int) {
	v.ensureExtra(1)
	v.InsertAt(x, i)
}

// RemoveAt drops the element at i and shifts elements [i+1, Len()) one slot
// left, preserving order. Requires 0 <= i < Len(). O(Len()-i).
func (v *Values[T]) RemoveAt(i int) {
	assert(i >= 0 && i < v.count, "remove index out of range")
	v.closeGap(i)
	v.count--
	var zero T
	v.buf[v.count] = zero
}

// FastRemoveAt drops the element at i and fills the gap with the last
// element, avoiding the shift at the cost of ordering. Requires
// 0 <= i < Len(). O(1).
func (v *Values[T]) FastRemoveAt(i int) {
	assert(i >= 0 && i < v.count, "remove index out of range")
	v.count--
	v.buf[i] = v.buf[v.count]
	var zero T
	v.buf[v.count] = zero
}

// Remove removes the first element equal to x, preserving the order of the
// survivors. No-op when x is absent.
func (v *Values[T]) Remove(x T) {
	if i := v.indexOf(x); i != NotFound {
		v.RemoveAt(i)
	}
}

// FastRemove removes the first element equal to x by swapping in the last
// element. No-op when x is absent.
func (v *Values[T]) FastRemove(x T) {
	if i := v.indexOf(x); i != NotFound {
		v.FastRemoveAt(i)
	}
}

// RemoveSet removes, for each element of minus, the first equal element of
// this array. Duplicates beyond the first match are untouched unless minus
// also lists them again.
func (v *Values[T]) RemoveSet(minus *Values[T]) {
	for _, x := range minus.live() {
		v.Remove(x)
	}
}

// RemoveSetAll removes every element that appears in minus, however many
// times it occurs, in a single left-compaction pass. Survivor order is
// preserved.
func (v *Values[T]) RemoveSetAll(minus *Values[T]) {
	v.panicIfReleased()
	back := 0
	for i := 0; i < v.count; i++ {
		if minus.Contains(v.buf[i]) {
			back++
		} else {
			v.buf[i-back] = v.buf[i]
		}
	}
	v.count -= back
	clear(v.buf[v.count : v.count+back])
}

// Swap exchanges the values at i and j. Requires both indices in
// [0, Len()).
func (v *Values[T]) Swap(i, j int) { v.swap(i, j) }

// Clear resets the count to zero. Capacity is unchanged.
func (v *Values[T]) Clear() {
	v.panicIfReleased()
	clear(v.buf[:v.count])
	v.count = 0
}

// IndexOf returns the index of the first element equal to x, or NotFound.
func (v *Values[T]) IndexOf(x T) int { return v.indexOf(x) }

// IndexOfFunc returns the index of the first element matching the
// predicate, or NotFound.
func (v *Values[T]) IndexOfFunc(match func(T) bool) int {
	for i, y := range v.live() {
		if match(y) {
			return i
		}
	}
	return NotFound
}

// Contains reports whether an element equal to x is present.
func (v *Values[T]) Contains(x T) bool { return v.indexOf(x) != NotFound }

// At returns the element at i. Requires 0 <= i < Len().
func (v *Values[T]) At(i int) T {
	assert(i >= 0 && i < v.count, "index out of range")
	return v.buf[i]
}

// Last returns the highest-indexed element. Requires Len() > 0.
func (v *Values[T]) Last() T {
	assert(v.count > 0, "Last on empty array")
	return v.buf[v.count-1]
}

// Each invokes fn on every live element in index order.
func (v *Values[T]) Each(fn func(T)) {
	for _, x := range v.live() {
		fn(x)
	}
}

// EachIndex invokes fn on every (index, element) pair in index order.
func (v *Values[T]) EachIndex(fn func(int, T)) {
	for i, x := range v.live() {
		fn(i, x)
	}
}

// Slice returns a view of the live elements. The view aliases the backing
// buffer: it is invalidated by any operation that resizes the array.
func (v *Values[T]) Slice() []T {
	v.panicIfReleased()
	return v.live()
}

// SortInsertion sorts the array ascending by cmp with a stable, adaptive
// insertion sort.
func (v *Values[T]) SortInsertion(cmp Cmp[T]) {
	v.panicIfReleased()
	InsertionSort(v.live(), cmp)
}

// SortMerge sorts the array ascending by cmp with the iterative merge sort.
// Allocates a scratch buffer of Len() slots for the duration of the call.
func (v *Values[T]) SortMerge(cmp Cmp[T]) {
	v.panicIfReleased()
	MergeSort(v.live(), cmp)
}

// Stats returns a snapshot of array statistics.
func (v *Values[T]) Stats() ArrayStats { return v.stats() }

// Release drops the buffer and makes the array unusable. Any subsequent
// operation panics. Calling Release again is a no-op.
func (v *Values[T]) Release() {
	v.release()
}
