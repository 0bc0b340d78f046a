package stream

import (
	"sync"
)

// Stream is an unbounded ordered queue. Push never blocks, Pull blocks
// until at least one element arrives and drains everything pending, so
// events are always handled in arrival order.
type Stream[T any] struct {
	name     string
	elements []T
	*sync.Cond
}

func NewStream[T any](name string) *Stream[T] {
	return &Stream[T]{
		Cond: sync.NewCond(&sync.Mutex{}),
		name: name,
	}
}

func (s *Stream[T]) Push(msg T) {
	s.Cond.L.Lock()
	s.elements = append(s.elements, msg)
	s.Cond.Signal()
	s.Cond.L.Unlock()
}

func (s *Stream[T]) Pull() []T {
	s.Cond.L.Lock()
	for len(s.elements) == 0 {
		s.Cond.Wait()
	}
	msgs := s.elements
	s.elements = nil
	s.Cond.L.Unlock()
	return msgs
}

// TryPull drains pending elements without blocking.
func (s *Stream[T]) TryPull() []T {
	s.Cond.L.Lock()
	msgs := s.elements
	s.elements = nil
	s.Cond.L.Unlock()
	return msgs
}
