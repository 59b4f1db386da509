package hist

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBumpAndCount(t *testing.T) {

	h := NewCounts[string]()
	for _, s := range []string{"walk", "talk", "walk", "balk"} {
		h.Bump(s)
	}

	require.Equal(t, uint64(2), h.Count("walk"))
	require.Equal(t, uint64(1), h.Count("talk"))
	require.Equal(t, uint64(1), h.Count("balk"))
	require.Equal(t, uint64(0), h.Count("sulk"))
	require.Equal(t, uint64(4), h.Total())
	require.Equal(t, 3, h.Len())

	mode, ok := h.Mode()
	require.True(t, ok)
	require.Equal(t, "walk", mode)
}

func TestCountAbsentIsZero(t *testing.T) {

	h := NewCounts[int]()
	require.Equal(t, uint64(0), h.Count(42))

	h.Bump(1)
	require.Equal(t, uint64(0), h.Count(42))
}

func TestBumpByEqualsRepeatedBump(t *testing.T) {

	const n = 17

	byOne := NewCounts[string]()
	for i := 0; i < n; i++ {
		byOne.Bump("a")
	}

	atOnce := NewCounts[string]()
	atOnce.BumpBy("a", n)

	require.Equal(t, atOnce.Count("a"), byOne.Count("a"))
	require.Equal(t, atOnce.Total(), byOne.Total())
}

func TestRoundTrip(t *testing.T) {

	h := NewCounts[string]()
	h.BumpBy("x", 7)
	require.Equal(t, uint64(7), h.Count("x"))

	w := NewWeights[string]()
	w.BumpBy("x", 2.5)
	require.Equal(t, 2.5, w.Count("x"))
}

func TestEmpty(t *testing.T) {

	h := NewCounts[string]()

	require.Equal(t, uint64(0), h.Total())
	require.Equal(t, 0, h.Len())
	require.Empty(t, h.Labels())
	require.Empty(t, Ranking(h))

	_, ok := h.Mode()
	require.False(t, ok)
}

// increment "a" three times, "b" once by 1 then once by 5, never touch "c"
func TestCountScenario(t *testing.T) {

	h := NewCounts[string]()
	h.Bump("a")
	h.Bump("a")
	h.Bump("a")
	h.Bump("b")
	h.BumpBy("b", 5)

	require.Equal(t, uint64(3), h.Count("a"))
	require.Equal(t, uint64(6), h.Count("b"))
	require.Equal(t, uint64(0), h.Count("c"))
	require.Equal(t, uint64(9), h.Total())

	mode, ok := h.Mode()
	require.True(t, ok)
	require.Equal(t, "b", mode)

	require.Equal(t, []string{"b", "a"}, Ranking(h))
}

func TestWeightScenario(t *testing.T) {

	w := NewWeights[string]()
	w.BumpBy("x", 0.4)
	w.BumpBy("y", 0.4)
	w.BumpBy("x", 1.6)

	require.Equal(t, 2.0, w.Count("x"))
	require.Equal(t, 0.4, w.Count("y"))
	require.InDelta(t, 2.4, w.Total(), 1e-12)

	mode, ok := w.Mode()
	require.True(t, ok)
	require.Equal(t, "x", mode)
}

func TestModeMeasureIsMaximum(t *testing.T) {

	h := Collect[int, uint64]([]int{100, 200, -100, 200, 300, 200, 100, 200, 100, 300})

	mode, ok := h.Mode()
	require.True(t, ok)

	var max uint64
	h.ForEach(func(_ int, m uint64) {
		if m > max {
			max = m
		}
	})
	require.Equal(t, max, h.Count(mode))
	require.Equal(t, 200, mode)
}

func TestMerge(t *testing.T) {

	a := Collect[string, uint64]([]string{"a", "b", "a"})
	b := Collect[string, uint64]([]string{"b", "c"})
	a.Merge(b)

	require.Equal(t, uint64(2), a.Count("a"))
	require.Equal(t, uint64(2), a.Count("b"))
	require.Equal(t, uint64(1), a.Count("c"))
	require.Equal(t, uint64(5), a.Total())

	// source histogram is untouched
	require.Equal(t, uint64(2), b.Total())
}

func TestLabels(t *testing.T) {

	h := Collect[string, uint64]([]string{"a", "b", "a", "c"})

	labels := h.Labels()
	sort.Strings(labels)
	require.Equal(t, []string{"a", "b", "c"}, labels)
}

func TestString(t *testing.T) {

	h := NewCounts[string]()
	require.Equal(t, "", h.String())

	h.BumpBy("a", 3)
	require.Equal(t, "a: 3", h.String())
}
