package vec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckedValuesValidatesIndices(t *testing.T) {
	c := NewCheckedValues[int](2)
	require.NoError(t, c.Append(1))
	require.NoError(t, c.Append(2))
	require.NoError(t, c.Append(3), "checked append resizes")
	require.Equal(t, 3, c.Len())

	tests := []struct {
		name string
		op   func() error
	}{
		{"insert negative", func() error { return c.InsertAt(9, -1) }},
		{"insert past end", func() error { return c.InsertAt(9, c.Len()+1) }},
		{"remove negative", func() error { return c.RemoveAt(-1) }},
		{"remove at length", func() error { return c.RemoveAt(c.Len()) }},
		{"fast remove past end", func() error { return c.FastRemoveAt(100) }},
		{"swap out of range", func() error { return c.Swap(0, 3) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.op(), ErrIndexOutOfRange)
		})
	}

	// the array is untouched by rejected operations
	require.Equal(t, []int{1, 2, 3}, c.Unchecked().Slice())
}

func TestCheckedValuesOperations(t *testing.T) {
	c := NewCheckedValues[int](1)
	require.NoError(t, c.Append(30))
	require.NoError(t, c.InsertAt(10, 0))
	require.NoError(t, c.InsertAt(20, 1))
	require.NoError(t, c.Swap(0, 2))

	x, err := c.At(0)
	require.NoError(t, err)
	require.Equal(t, 30, x)

	require.NoError(t, c.RemoveAt(1))
	require.NoError(t, c.FastRemoveAt(0))
	require.Equal(t, []int{10}, c.Unchecked().Slice())

	require.NoError(t, c.Clear())
	require.Equal(t, 0, c.Len())
}

func TestCheckedValuesAfterRelease(t *testing.T) {
	c := NewCheckedValues[int](4)
	require.NoError(t, c.Append(1))
	c.Release()

	require.ErrorIs(t, c.Append(2), ErrReleased)
	require.ErrorIs(t, c.RemoveAt(0), ErrReleased)
	require.ErrorIs(t, c.Clear(), ErrReleased)
	_, err := c.At(0)
	require.ErrorIs(t, err, ErrReleased)
}

func TestCheckedOwningLifecycle(t *testing.T) {
	rc := newRefCounts()
	c := NewCheckedOwning[*node](2, rc)

	a, b := &node{1}, &node{2}
	require.NoError(t, c.Append(a))
	require.NoError(t, c.InsertAt(b, 0))
	require.Equal(t, 1, rc.counts[a])
	require.Equal(t, 1, rc.counts[b])

	require.ErrorIs(t, c.RemoveAt(5), ErrIndexOutOfRange)
	require.Equal(t, 1, rc.counts[a], "rejected operations adjust nothing")

	require.NoError(t, c.RemoveAt(0))
	require.Equal(t, 0, rc.counts[b])

	c.Release()
	require.True(t, rc.balanced())
	require.ErrorIs(t, c.Append(a), ErrReleased)
}

func TestCheckedOwningAt(t *testing.T) {
	c := NewCheckedOwning[*node](2, nil)
	a := &node{7}
	require.NoError(t, c.Append(a))

	got, err := c.At(0)
	require.NoError(t, err)
	require.Same(t, a, got)

	_, err = c.At(1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}
