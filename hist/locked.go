package hist

import "sync"

// A Locked histogram is a mutex wrapper over Histogram for shared
// access (the bare histogram assumes a single owner)
type Locked[L comparable, M Measure] struct {
	hist *Histogram[L, M]
	mu   sync.RWMutex
}

// NewLocked creates an empty histogram behind a mutex
func NewLocked[L comparable, M Measure]() *Locked[L, M] {
	return &Locked[L, M]{
		hist: New[L, M](),
	}
}

// Bump increases the measure of the label by one unit
func (l *Locked[L, M]) Bump(label L) {
	l.BumpBy(label, 1)
}

// BumpBy increases the measure of the label by the amount
func (l *Locked[L, M]) BumpBy(label L, amount M) {
	l.mu.Lock()
	l.hist.BumpBy(label, amount)
	l.mu.Unlock()
}

// Count returns the measure of the label, zero if it was never bumped
func (l *Locked[L, M]) Count(label L) (m M) {
	l.mu.RLock()
	m = l.hist.Count(label)
	l.mu.RUnlock()
	return
}

// Total returns the sum of all measures
func (l *Locked[L, M]) Total() (total M) {
	l.mu.RLock()
	total = l.hist.Total()
	l.mu.RUnlock()
	return
}

// Len returns the number of distinct labels
func (l *Locked[L, M]) Len() (n int) {
	l.mu.RLock()
	n = l.hist.Len()
	l.mu.RUnlock()
	return
}

// Mode returns a label with the maximum measure, false when empty
func (l *Locked[L, M]) Mode() (mode L, ok bool) {
	l.mu.RLock()
	mode, ok = l.hist.Mode()
	l.mu.RUnlock()
	return
}

// Merge folds another histogram in
func (l *Locked[L, M]) Merge(other *Histogram[L, M]) {
	l.mu.Lock()
	l.hist.Merge(other)
	l.mu.Unlock()
}

// View calls fn with the underlying histogram under a read lock.
// The histogram must not escape fn.
func (l *Locked[L, M]) View(fn func(h *Histogram[L, M])) {
	l.mu.RLock()
	fn(l.hist)
	l.mu.RUnlock()
}

// Unwrap returns the underlying histogram. The caller takes over the
// single-owner contract: no other goroutine may keep using the wrapper.
func (l *Locked[L, M]) Unwrap() *Histogram[L, M] {
	return l.hist
}
