package hist

import "cmp"

// A Snapshot is a point-in-time copy of a histogram: entries in
// ranking order plus the total measure. Snapshots are what leave
// the process, via serde or the metric exporter.
type Snapshot[L comparable, M Measure] struct {
	Entries []Entry[L, M] `json:"entries"`
	Total   M             `json:"total"`
}

// SnapshotOf copies the histogram into a snapshot with entries in
// ranking order
func SnapshotOf[L cmp.Ordered, M Measure](h *Histogram[L, M]) Snapshot[L, M] {
	return Snapshot[L, M]{
		Entries: RankingEntries(h),
		Total:   h.Total(),
	}
}

// Histogram rebuilds a histogram from the snapshot entries
func (s Snapshot[L, M]) Histogram() *Histogram[L, M] {
	return CollectBy(s.Entries)
}
