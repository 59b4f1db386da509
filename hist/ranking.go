package hist

import (
	"cmp"
	"sort"
)

// An Entry is a single (label, measure) pair of a histogram
type Entry[L comparable, M Measure] struct {
	Label   L `json:"label"`
	Measure M `json:"measure"`
}

// Ranking returns all labels ordered by descending measure. Among
// labels with an equal measure, the later label in the natural order
// appears first.
func Ranking[L cmp.Ordered, M Measure](h *Histogram[L, M]) []L {

	entries := RankingEntries(h)
	labels := make([]L, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	return labels
}

// RankingEntries returns all (label, measure) pairs in ranking order
func RankingEntries[L cmp.Ordered, M Measure](h *Histogram[L, M]) []Entry[L, M] {

	entries := make([]Entry[L, M], 0, len(h.bins))
	for label, m := range h.bins {
		entries = append(entries, Entry[L, M]{Label: label, Measure: m})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Measure != entries[j].Measure {
			return entries[i].Measure > entries[j].Measure
		}
		return entries[i].Label > entries[j].Label
	})

	return entries
}

// RankingFunc returns all labels ordered by descending measure for
// label types without a natural order. The order among labels with
// an equal measure is unspecified unless less defines one.
func RankingFunc[L comparable, M Measure](h *Histogram[L, M], less func(a, b L) bool) []L {

	labels := h.Labels()
	sort.Slice(labels, func(i, j int) bool {
		mi, mj := h.bins[labels[i]], h.bins[labels[j]]
		if mi != mj {
			return mi > mj
		}
		if less == nil {
			return false
		}
		return less(labels[j], labels[i])
	})

	return labels
}
