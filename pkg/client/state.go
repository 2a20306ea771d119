package client

import (
	"context"
	"sync"
)

type Phase int

const (
	Idle Phase = iota
	Loading
	Loaded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// ViewState tracks one page's data load. Data is only meaningful when Loaded
// and Message only when Failed.
type ViewState[T any] struct {
	mu      sync.RWMutex
	phase   Phase
	data    T
	message string
}

type Snapshot[T any] struct {
	Phase   Phase
	Data    T
	Message string
}

func (s *ViewState[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot[T]{Phase: s.phase, Data: s.data, Message: s.message}
}

// Load moves the view to Loading, runs fetch, then settles in Loaded or
// Failed. Any earlier data is discarded on failure. Retrying is calling Load
// again.
func (s *ViewState[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) Snapshot[T] {
	var zero T

	s.mu.Lock()
	s.phase, s.data, s.message = Loading, zero, ""
	s.mu.Unlock()

	data, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.phase, s.data, s.message = Failed, zero, ErrorMessage(err)
	} else {
		s.phase, s.data, s.message = Loaded, data, ""
	}
	return Snapshot[T]{Phase: s.phase, Data: s.data, Message: s.message}
}

func (s *ViewState[T]) Reset() {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase, s.data, s.message = Idle, zero, ""
}
