package metric

import (
	"cmp"
	"fmt"

	"github.com/histkit/histogram-go-lib/hist"
)

// An Entry is one exported label with its measure
type Entry struct {
	Label string
	Value float64
}

// ISource produces the current histogram state for export
type ISource interface {
	// Export returns all entries and the total measure
	Export() (entries []Entry, total float64)
}

type histogramSource[L cmp.Ordered, M hist.Measure] struct {
	src    *hist.Locked[L, M]
	format func(L) string
}

// Source adapts a shared histogram to ISource. A nil format renders
// labels with fmt.Sprint.
func Source[L cmp.Ordered, M hist.Measure](src *hist.Locked[L, M], format func(L) string) ISource {

	if format == nil {
		format = func(label L) string { return fmt.Sprint(label) }
	}

	return &histogramSource[L, M]{src: src, format: format}
}

func (s *histogramSource[L, M]) Export() (entries []Entry, total float64) {

	s.src.View(func(h *hist.Histogram[L, M]) {
		snapshot := hist.SnapshotOf(h)
		total = float64(snapshot.Total)

		entries = make([]Entry, 0, len(snapshot.Entries))
		for _, e := range snapshot.Entries {
			entries = append(entries, Entry{
				Label: s.format(e.Label),
				Value: float64(e.Measure),
			})
		}
	})

	return
}
