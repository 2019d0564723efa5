package stream

import (
	"fmt"
	"sync"
)

// Stream is an unbounded FIFO shared between one producer goroutine and
// one polling consumer. Neither side ever blocks.
type Stream[T any] struct {
	name     string
	elements []T
	closed   bool
	sync.Mutex
}

func NewStream[T any](name string) *Stream[T] {
	return &Stream[T]{name: name}
}

func (s *Stream[T]) Push(msg T) {
	s.Lock()
	if !s.closed {
		s.elements = append(s.elements, msg)
	}
	s.Unlock()
}

// TryPull returns the oldest element without waiting.
func (s *Stream[T]) TryPull() (msg T, ok bool) {
	s.Lock()
	defer s.Unlock()
	if len(s.elements) == 0 {
		return msg, false
	}
	msg = s.elements[0]
	s.elements = s.elements[1:]
	return msg, true
}

func (s *Stream[T]) Len() int {
	s.Lock()
	defer s.Unlock()
	return len(s.elements)
}

// Close drops pending elements and further pushes.
func (s *Stream[T]) Close() {
	s.Lock()
	s.closed = true
	s.elements = nil
	s.Unlock()
}

func (s *Stream[T]) String() string {
	return fmt.Sprintf("Stream(%s, pending: %d)", s.name, s.Len())
}
