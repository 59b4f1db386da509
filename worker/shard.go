package worker

import (
	"sync"

	"github.com/histkit/histogram-go-lib/hist"
)

type shard[L comparable, M hist.Measure] struct {
	id   int
	hist *hist.Histogram[L, M]
}

func newShard[L comparable, M hist.Measure](id int) *shard[L, M] {
	return &shard[L, M]{
		id:   id,
		hist: hist.New[L, M](),
	}
}

func (s *shard[L, M]) run(jobs <-chan hist.Entry[L, M], wg *sync.WaitGroup) {
	defer wg.Done()

	for e := range jobs {
		s.hist.BumpBy(e.Label, e.Measure)
	}
}
