// Package worker folds large label streams into a histogram with a
// pool of workers, each owning a private shard that is merged once
// on close. No locking on the hot path.
package worker

import (
	"runtime"
	"sync"

	"github.com/histkit/histogram-go-lib/hist"
)

// A Collector accepts observations and distributes them to the
// worker shards. All producers must stop before Close is called.
type Collector[L comparable, M hist.Measure] struct {
	state

	jobs   chan hist.Entry[L, M]
	shards []*shard[L, M]
	wg     sync.WaitGroup
	result *hist.Histogram[L, M]
}

// NewCollector creates a collector with the workers count
// (0 - one worker per CPU)
func NewCollector[L comparable, M hist.Measure](countWorkers int) *Collector[L, M] {

	if countWorkers == 0 {
		countWorkers = runtime.NumCPU()
	}

	shards := make([]*shard[L, M], countWorkers)
	for i := 0; i < countWorkers; i++ {
		shards[i] = newShard[L, M](i)
	}

	return &Collector[L, M]{
		jobs:   make(chan hist.Entry[L, M], countWorkers*2),
		shards: shards,
	}
}

// Run starts the observations processor
func (c *Collector[L, M]) Run() {

	c.setIsClosed(false)

	for _, s := range c.shards {
		c.wg.Add(1)
		go s.run(c.jobs, &c.wg)
	}
}

// Add bumps the label by one unit. Returns false after Close
func (c *Collector[L, M]) Add(label L) bool {
	return c.AddBy(label, 1)
}

// AddBy bumps the label by the amount. Returns false after Close
func (c *Collector[L, M]) AddBy(label L, amount M) bool {

	if c.getIsClosed() {
		return false
	}

	c.jobs <- hist.Entry[L, M]{Label: label, Measure: amount}
	return true
}

// Close stops the observations processor and merges the worker
// shards into the result
func (c *Collector[L, M]) Close() error {

	if c.getIsClosed() {
		return nil
	}

	c.setIsClosed(true)
	close(c.jobs)
	c.wg.Wait()

	c.result = hist.New[L, M]()
	for _, s := range c.shards {
		c.result.Merge(s.hist)
	}

	return nil
}

// Result returns the merged histogram. Valid only after Close
func (c *Collector[L, M]) Result() *hist.Histogram[L, M] {
	return c.result
}
