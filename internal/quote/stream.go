package quote

import (
	"context"
	"sync"

	"main/internal/model"
	"main/pkg/exception"
)

// Tick is one fresh (symbol, bar) pair delivered to the consumer.
type Tick struct {
	Symbol string
	Bar    model.Bar
}

// Stream is the single-consumer sequence of fresh minute bars. It only ever
// carries bars whose bar-time equals the minute the scheduler observed; it is
// not restartable once its scheduler stops.
type Stream struct {
	ch        chan Tick
	closeOnce sync.Once
}

func newStream(capacity int) *Stream {
	if capacity < 1 {
		capacity = 1
	}
	return &Stream{ch: make(chan Tick, capacity)}
}

// C exposes the underlying channel for select-based consumers.
func (s *Stream) C() <-chan Tick { return s.ch }

// Next blocks until the next fresh tick, the context ends, or the stream is
// closed.
func (s *Stream) Next(ctx context.Context) (Tick, error) {
	select {
	case <-ctx.Done():
		return Tick{}, ctx.Err()
	case tick, ok := <-s.ch:
		if !ok {
			return Tick{}, exception.ErrStreamClosed
		}
		return tick, nil
	}
}

func (s *Stream) emit(ctx context.Context, tick Tick) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case s.ch <- tick:
		return nil
	}
}

func (s *Stream) close() {
	s.closeOnce.Do(func() { close(s.ch) })
}
