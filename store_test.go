package vec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewValuesCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		expected int
	}{
		{"zero capacity clamps to one", 0, 1},
		{"negative capacity clamps to one", -5, 1},
		{"explicit capacity", 16, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValues[int](tt.capacity)
			require.Equal(t, 0, v.Len())
			require.Equal(t, tt.expected, v.Cap())
		})
	}
}

func TestEnsureExtraCapacityDoubles(t *testing.T) {
	v := NewValues[int](2)
	v.AppendWithResize(1)
	v.AppendWithResize(2)
	require.Equal(t, 2, v.Cap())

	// 2 -> 4
	v.EnsureExtraCapacity(1)
	require.Equal(t, 4, v.Cap())

	// 4 -> 16: doubling repeats until count+extra fits
	v.EnsureExtraCapacity(10)
	require.Equal(t, 16, v.Cap())
	require.Equal(t, 2, v.Len())
	require.Equal(t, 1, v.At(0))
	require.Equal(t, 2, v.At(1))

	// already sufficient: no change
	v.EnsureExtraCapacity(3)
	require.Equal(t, 16, v.Cap())
}

func TestShrinkToFit(t *testing.T) {
	v := NewValues[int](32)
	for i := 0; i < 5; i++ {
		v.Append(i)
	}

	v.ShrinkToFit()
	require.Equal(t, 5, v.Cap())
	require.Equal(t, []int{0, 1, 2, 3, 4}, v.Slice())

	// shrinking an empty array leaves one slot, never zero
	v.Clear()
	v.ShrinkToFit()
	require.Equal(t, 0, v.Len())
	require.Equal(t, 1, v.Cap())

	// already minimal: no-op
	v.ShrinkToFit()
	require.Equal(t, 1, v.Cap())
}

func TestShrinkThenEnsure(t *testing.T) {
	v := NewValues[int](64)
	for i := 0; i < 7; i++ {
		v.Append(i)
	}
	for k := 0; k <= 40; k += 5 {
		v.ShrinkToFit()
		v.EnsureExtraCapacity(k)
		require.GreaterOrEqual(t, v.Cap(), v.Len()+k)
	}
}

func TestCountCapacityInvariantUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5eed))
	v := NewValues[int](1)
	check := func() {
		require.GreaterOrEqual(t, v.Len(), 0)
		require.LessOrEqual(t, v.Len(), v.Cap())
		require.GreaterOrEqual(t, v.Cap(), 1)
	}
	for op := 0; op < 2000; op++ {
		switch rng.Intn(5) {
		case 0:
			v.AppendWithResize(rng.Int())
		case 1:
			v.InsertAtWithResize(rng.Int(), rng.Intn(v.Len()+1))
		case 2:
			if v.Len() > 0 {
				v.RemoveAt(rng.Intn(v.Len()))
			}
		case 3:
			if v.Len() > 0 {
				v.FastRemoveAt(rng.Intn(v.Len()))
			}
		case 4:
			v.ShrinkToFit()
		}
		check()
	}
}

func TestReleasePanicsOnReuse(t *testing.T) {
	v := NewValues[int](4)
	v.Append(1)
	v.Release()

	require.Equal(t, 0, v.Len())
	require.PanicsWithValue(t, "vec: use after Release()", func() {
		v.AppendWithResize(2)
	})
	require.PanicsWithValue(t, "vec: use after Release()", func() {
		v.ShrinkToFit()
	})

	// second Release is a no-op
	v.Release()
}
