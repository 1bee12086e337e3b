package vec

// ArrayStats contains statistical information about an array.
type ArrayStats struct {
	Len         int     // Live elements
	Cap         int     // Allocated slots
	Utilization float64 // Ratio of live elements to slots (0.0-1.0)
}

// stats returns a snapshot of the store's bookkeeping. A released array
// reports zeroes.
func (s *store[T]) stats() ArrayStats {
	if s.buf == nil {
		return ArrayStats{}
	}
	st := ArrayStats{Len: s.count, Cap: len(s.buf)}
	st.Utilization = float64(st.Len) / float64(st.Cap)
	return st
}
