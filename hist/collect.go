package hist

// CollectFrom folds a sequence of observed labels into the histogram,
// one unit per occurrence, and returns the histogram
func (h *Histogram[L, M]) CollectFrom(labels []L) *Histogram[L, M] {
	for _, label := range labels {
		h.Bump(label)
	}
	return h
}

// CollectFromBy folds a sequence of (label, amount) pairs into the
// histogram and returns it
func (h *Histogram[L, M]) CollectFromBy(entries []Entry[L, M]) *Histogram[L, M] {
	for _, e := range entries {
		h.BumpBy(e.Label, e.Measure)
	}
	return h
}

// Collect builds a new histogram from a sequence of observed labels
func Collect[L comparable, M Measure](labels []L) *Histogram[L, M] {
	return New[L, M]().CollectFrom(labels)
}

// CollectBy builds a new histogram from a sequence of (label, amount) pairs
func CollectBy[L comparable, M Measure](entries []Entry[L, M]) *Histogram[L, M] {
	return New[L, M]().CollectFromBy(entries)
}
