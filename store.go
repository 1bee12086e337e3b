package vec

// NotFound is the sentinel returned by IndexOf when no element matches.
const NotFound = -1

// store is the backing storage shared by Owning and Values: a contiguous
// buffer of capacity slots and a live-element count.
//
// Invariants: 0 <= count <= len(buf), len(buf) >= 1, buf is non-nil until
// release. The buffer is exclusively owned and reallocated (never aliased)
// on growth or shrink, so any previously obtained view is invalid after a
// resize.
type store[T comparable] struct {
	buf   []T // capacity slots; len(buf) is the capacity
	count int // live elements in buf[0:count]
}

// newStore allocates a store with max(capacity, 1) slots. Capacity never
// reaches zero; an empty array keeps one slot so growth math never has to
// special-case a degenerate buffer.
func newStore[T comparable](capacity int) store[T] {
	if capacity < 1 {
		capacity = 1
	}
	return store[T]{buf: make([]T, capacity)}
}

// panicIfReleased panics if the array has been released.
func (s *store[T]) panicIfReleased() {
	if s.buf == nil {
		panic("vec: use after Release()")
	}
}

// live returns the live prefix of the buffer.
func (s *store[T]) live() []T {
	return s.buf[:s.count]
}

// ensureExtra guarantees capacity for count+extra elements, growing by
// repeated doubling. Existing elements keep their offsets.
func (s *store[T]) ensureExtra(extra int) {
	s.panicIfReleased()
	need := s.count + extra
	if len(s.buf) >= need {
		return
	}
	newCap := len(s.buf)
	for newCap < need {
		newCap *= 2
	}
	grown := make([]T, newCap)
	copy(grown, s.buf[:s.count])
	s.buf = grown
}

// shrinkToFit reallocates the buffer down to max(count, 1) slots. No-op when
// the buffer is already minimal.
func (s *store[T]) shrinkToFit() {
	s.panicIfReleased()
	if len(s.buf) <= s.count {
		return
	}
	if s.count == 0 && len(s.buf) == 1 {
		return
	}
	newCap := s.count
	if newCap < 1 {
		newCap = 1
	}
	shrunk := make([]T, newCap)
	copy(shrunk, s.buf[:s.count])
	s.buf = shrunk
}

// openGap shifts buf[i:count) one slot right, leaving slot i free to be
// written. Capacity for count+1 elements must already exist.
func (s *store[T]) openGap(i int) {
	copy(s.buf[i+1:s.count+1], s.buf[i:s.count])
}

// closeGap shifts buf[i+1:count) one slot left over slot i.
func (s *store[T]) closeGap(i int) {
	copy(s.buf[i:], s.buf[i+1:s.count])
}

// swap exchanges two slots. No ownership adjustment happens here; the two
// values merely trade places.
func (s *store[T]) swap(i, j int) {
	assert(i >= 0 && i < s.count, "swap index out of range")
	assert(j >= 0 && j < s.count, "swap index out of range")
	s.buf[i], s.buf[j] = s.buf[j], s.buf[i]
}

// indexOf returns the index of the first slot equal to x, or NotFound.
func (s *store[T]) indexOf(x T) int {
	for i, y := range s.live() {
		if y == x {
			return i
		}
	}
	return NotFound
}

// release drops the buffer and makes the store unusable. Subsequent
// mutations panic.
func (s *store[T]) release() {
	s.buf = nil
	s.count = 0
}
