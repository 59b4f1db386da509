package hist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {

	seq := []int{100, 200, -100, 200, 300, 200, 100, 200, 100, 300}
	h := Collect[int, uint64](seq)

	for _, pair := range []struct {
		label int
		count uint64
	}{
		{-100, 1}, {100, 3}, {200, 4}, {300, 2}, {400, 0},
	} {
		require.Equal(t, pair.count, h.Count(pair.label))
	}

	// total of a collected sequence is its length
	require.Equal(t, uint64(len(seq)), h.Total())
}

func TestCollectBy(t *testing.T) {

	w := CollectBy([]Entry[string, float64]{
		{"a", 0.4}, {"b", 0.2}, {"a", 1.2}, {"b", 0.8},
	})

	require.Equal(t, 1.6, w.Count("a"))
	require.Equal(t, 1.0, w.Count("b"))
	require.InDelta(t, 2.6, w.Total(), 1e-12)
}

func TestCollectFromPrePopulated(t *testing.T) {

	h := NewCounts[string]()
	h.BumpBy("a", 10)

	got := h.CollectFrom([]string{"a", "b"})
	require.Same(t, h, got)
	require.Equal(t, uint64(11), h.Count("a"))
	require.Equal(t, uint64(1), h.Count("b"))
}

func TestCollectByWeightedTotal(t *testing.T) {

	entries := []Entry[string, float64]{{"x", 0.4}, {"y", 0.4}, {"x", 1.6}}
	w := CollectBy(entries)

	var sum float64
	for _, e := range entries {
		sum += e.Measure
	}
	require.InDelta(t, sum, w.Total(), 1e-12)
}
