package service

import (
	"context"
	"sync"
)

// A Task of a service group
type Task func(ctx context.Context) error

// RunGroup starts the tasks and returns their results channel.
// The channel is closed after all tasks return; cancel stops
// the group.
func RunGroup(tasks ...Task) (_ <-chan error, cancel func()) {

	var (
		wg    sync.WaitGroup
		ctx   context.Context
		chErr = make(chan error, len(tasks))
	)

	ctx, cancel = context.WithCancel(context.Background())

	for _, task := range tasks {
		wg.Add(1)
		go func(fn Task) {
			defer wg.Done()
			chErr <- fn(ctx)
		}(task)
	}

	go func() {
		wg.Wait()
		close(chErr)
	}()

	return chErr, cancel
}
