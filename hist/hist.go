// Package hist is a frequency histogram over discrete labels:
// a mapping from a label to an accumulated count or weight.
package hist

import (
	"fmt"
	"strings"
)

// Measure is the accumulated value of a label: an unsigned count
// or a non-negative floating-point weight. A histogram instance is
// either counting or weighting, never both.
type Measure interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr | ~float32 | ~float64
}

// A Histogram accumulates measures per label. The zero measure is
// never stored explicitly: a label is present only after a bump,
// and looking up an absent label returns zero.
//
// A histogram is owned by a single goroutine. Wrap it with Locked
// for shared access.
type Histogram[L comparable, M Measure] struct {
	bins map[L]M
}

// New creates an empty histogram
func New[L comparable, M Measure]() *Histogram[L, M] {
	return &Histogram[L, M]{
		bins: make(map[L]M),
	}
}

// NewCounts creates an empty counting histogram
func NewCounts[L comparable]() *Histogram[L, uint64] {
	return New[L, uint64]()
}

// NewWeights creates an empty weighting histogram
func NewWeights[L comparable]() *Histogram[L, float64] {
	return New[L, float64]()
}

// Bump increases the measure of the label by one unit
func (h *Histogram[L, M]) Bump(label L) {
	h.BumpBy(label, 1)
}

// BumpBy increases the measure of the label by the amount.
// An absent label is inserted with the amount as its measure.
// Negative amounts are out of contract.
func (h *Histogram[L, M]) BumpBy(label L, amount M) {
	h.bins[label] += amount
}

// Count returns the measure of the label, zero if it was never bumped
func (h *Histogram[L, M]) Count(label L) M {
	return h.bins[label]
}

// Total returns the sum of all measures, zero for an empty histogram
func (h *Histogram[L, M]) Total() (total M) {
	for _, m := range h.bins {
		total += m
	}
	return
}

// Len returns the number of distinct labels
func (h *Histogram[L, M]) Len() int {
	return len(h.bins)
}

// Labels returns all recorded labels in unspecified order
func (h *Histogram[L, M]) Labels() []L {
	list := make([]L, 0, len(h.bins))
	for label := range h.bins {
		list = append(list, label)
	}
	return list
}

// Mode returns a label with the maximum measure, false for an empty
// histogram. The choice among labels with an equal maximum measure
// is unspecified.
func (h *Histogram[L, M]) Mode() (mode L, ok bool) {

	var max M
	for label, m := range h.bins {
		if !ok || m >= max {
			mode, max, ok = label, m, true
		}
	}
	return
}

// Merge folds all measures of the other histogram into this one
func (h *Histogram[L, M]) Merge(other *Histogram[L, M]) {
	for label, m := range other.bins {
		h.bins[label] += m
	}
}

// ForEach calls fn for every (label, measure) pair in unspecified order
func (h *Histogram[L, M]) ForEach(fn func(label L, measure M)) {
	for label, m := range h.bins {
		fn(label, m)
	}
}

// String renders the histogram for logs. Line order is unspecified
func (h *Histogram[L, M]) String() string {

	var b strings.Builder
	for label, m := range h.bins {
		fmt.Fprintf(&b, "%v: %v\n", label, m)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
