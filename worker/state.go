package worker

import "sync/atomic"

type state struct {
	closed atomic.Bool
}

func (s *state) getIsClosed() bool {
	return s.closed.Load()
}

func (s *state) setIsClosed(closed bool) {
	s.closed.Store(closed)
}
