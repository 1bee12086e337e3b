package vec

// Lifecycle supplies the ownership-adjustment primitives an Owning array
// calls as elements enter and leave it. The host decides what ownership
// means: reference counting, pool check-in/check-out, or nothing at all
// (NopLifecycle).
type Lifecycle[T any] interface {
	// Retain marks x as owned by the array.
	Retain(x T)
	// Release undoes one Retain.
	Release(x T)
}

// NopLifecycle is a Lifecycle that performs no ownership adjustment.
type NopLifecycle[T any] struct{}

func (NopLifecycle[T]) Retain(T)  {}
func (NopLifecycle[T]) Release(T) {}

// Owning is a dynamic array of reference-counted elements. Every slot holds
// a strong reference: insertion retains, removal releases. Equality is
// identity (==, which for pointer and interface elements compares the
// handle, not the pointee).
//
// Not goroutine-safe: all access must be externally serialized. The
// unchecked operations skip index and capacity validation; their
// preconditions are verified only under the vecassert build tag.
type Owning[T comparable] struct {
	store[T]
	lc Lifecycle[T]
}

// NewOwning creates an Owning array with max(capacity, 1) slots. A nil
// lifecycle behaves as NopLifecycle.
func NewOwning[T comparable](capacity int, lc Lifecycle[T]) *Owning[T] {
	if lc == nil {
		lc = NopLifecycle[T]{}
	}
	return &Owning[T]{store: newStore[T](capacity), lc: lc}
}

// Len returns the number of live elements.
func (o *Owning[T]) Len() int { return o.count }

// Cap returns the number of allocated slots.
func (o *Owning[T]) Cap() int { return len(o.buf) }

// EnsureExtraCapacity guarantees room for extra more elements, doubling the
// buffer as needed. Growth reallocates: any previously obtained element
// address is invalid afterwards.
func (o *Owning[T]) EnsureExtraCapacity(extra int) { o.ensureExtra(extra) }

// ShrinkToFit reallocates the buffer down to the live element count
// (minimum one slot).
func (o *Owning[T]) ShrinkToFit() { o.shrinkToFit() }

// Append places x in the next slot and retains it. The caller must have
// ensured capacity for one more element; behaviour is undefined otherwise.
func (o *Owning[T]) Append(x T) {
	assert(o.count < len(o.buf), "append past capacity")
	o.buf[o.count] = x
	o.lc.Retain(x)
	o.count++
}

// AppendWithResize appends x, growing the buffer first if needed.
func (o *Owning[T]) AppendWithResize(x T) {
	o.ensureExtra(1)
	o.Append(x)
}

// AppendArray appends every element of other, retaining each. The caller
// must have ensured capacity for other.Len() more elements.
func (o *Owning[T]) AppendArray(other *Owning[T]) {
	for _, x := range other.live() {
		o.Append(x)
	}
}

// AppendArrayWithResize appends every element of other, growing first if
// needed.
func (o *Owning[T]) AppendArrayWithResize(other *Owning[T]) {
	o.ensureExtra(other.count)
	o.AppendArray(other)
}

// InsertAt places x at index i, shifting elements [i, Len()) one slot right
// and retaining x. Requires 0 <= i <= Len(). Capacity is ensured.
func (o *Owning[T]) InsertAt(x T, i int) {
	assert(i >= 0 && i <= o.count, "insert index out of range")
	o.ensureExtra(1)
	o.openGap(i)
	o.buf[i] = x
	o.lc.Retain(x)
	o.count++
}

// RemoveAt releases the element at i and shifts elements [i+1, Len()) one
// slot left, preserving order. Requires 0 <= i < Len(). O(Len()-i).
func (o *Owning[T]) RemoveAt(i int) {
	assert(i >= 0 && i < o.count, "remove index out of range")
	o.lc.Release(o.buf[i])
	o.closeGap(i)
	o.count--
	var zero T
	o.buf[o.count] = zero
}

// FastRemoveAt releases the element at i and fills the gap with the last
// element, avoiding the shift at the cost of ordering. Requires
// 0 <= i < Len(). O(1).
func (o *Owning[T]) FastRemoveAt(i int) {
	assert(i >= 0 && i < o.count, "remove index out of range")
	o.lc.Release(o.buf[i])
	o.count--
	o.buf[i] = o.buf[o.count]
	var zero T
	o.buf[o.count] = zero
}

// Remove removes the first occurrence of x, preserving the order of the
// survivors. No-op when x is absent.
func (o *Owning[T]) Remove(x T) {
	if i := o.indexOf(x); i != NotFound {
		o.RemoveAt(i)
	}
}

// FastRemove removes the first occurrence of x by swapping in the last
// element. No-op when x is absent.
func (o *Owning[T]) FastRemove(x T) {
	if i := o.indexOf(x); i != NotFound {
		o.FastRemoveAt(i)
	}
}

// RemoveSet removes, for each element of minus, the first matching element
// of this array. Duplicates beyond the first match are untouched unless
// minus also lists them again.
func (o *Owning[T]) RemoveSet(minus *Owning[T]) {
	for _, x := range minus.live() {
		o.Remove(x)
	}
}

// RemoveSetAll removes every element that appears in minus, however many
// times it occurs, in a single left-compaction pass. Survivor order is
// preserved. O(Len()) plus one minus lookup per element.
func (o *Owning[T]) RemoveSetAll(minus *Owning[T]) {
	o.panicIfReleased()
	back := 0
	for i := 0; i < o.count; i++ {
		if minus.Contains(o.buf[i]) {
			o.lc.Release(o.buf[i])
			back++
		} else {
			o.buf[i-back] = o.buf[i]
		}
	}
	o.count -= back
	clear(o.buf[o.count : o.count+back])
}

// Swap exchanges the elements at i and j without touching their reference
// counts. Requires both indices in [0, Len()).
func (o *Owning[T]) Swap(i, j int) { o.swap(i, j) }

// Clear releases every element, highest index first, and resets the count.
// Capacity is unchanged.
func (o *Owning[T]) Clear() {
	o.panicIfReleased()
	var zero T
	for o.count > 0 {
		o.count--
		o.lc.Release(o.buf[o.count])
		o.buf[o.count] = zero
	}
}

// IndexOf returns the index of the first element identical to x, or
// NotFound.
func (o *Owning[T]) IndexOf(x T) int { return o.indexOf(x) }

// Contains reports whether x is present.
func (o *Owning[T]) Contains(x T) bool { return o.indexOf(x) != NotFound }

// At returns the element at i. Requires 0 <= i < Len().
func (o *Owning[T]) At(i int) T {
	assert(i >= 0 && i < o.count, "index out of range")
	return o.buf[i]
}

// Last returns the highest-indexed element. Requires Len() > 0.
func (o *Owning[T]) Last() T {
	assert(o.count > 0, "Last on empty array")
	return o.buf[o.count-1]
}

// Each invokes fn on every live element in index order.
func (o *Owning[T]) Each(fn func(T)) {
	for _, x := range o.live() {
		fn(x)
	}
}

// EachIndex invokes fn on every (index, element) pair in index order.
func (o *Owning[T]) EachIndex(fn func(int, T)) {
	for i, x := range o.live() {
		fn(i, x)
	}
}

// SortInsertion sorts the array ascending by cmp with a stable, adaptive
// insertion sort. Elements trade slots; no ownership adjustment happens.
func (o *Owning[T]) SortInsertion(cmp Cmp[T]) {
	o.panicIfReleased()
	InsertionSort(o.live(), cmp)
}

// SortMerge sorts the array ascending by cmp with the iterative merge sort.
// Allocates a scratch buffer of Len() slots for the duration of the call.
func (o *Owning[T]) SortMerge(cmp Cmp[T]) {
	o.panicIfReleased()
	MergeSort(o.live(), cmp)
}

// Stats returns a snapshot of array statistics.
func (o *Owning[T]) Stats() ArrayStats { return o.stats() }

// Release clears the array, releasing every element, then drops the buffer
// and makes the array unusable. Any subsequent operation panics. Calling
// Release again is a no-op.
func (o *Owning[T]) Release() {
	if o.buf == nil {
		return
	}
	o.Clear()
	o.release()
}
