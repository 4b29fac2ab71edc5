package quote

import (
	"context"
	"time"
)

// Clock supplies the scheduler's view of time. The current minute is
// monotonically non-decreasing; Sleep is context-aware so a fake clock can
// drive the loop deterministically in tests.
type Clock interface {
	Now() time.Time
	CurrentMinute() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

// NewClock returns the wall-clock implementation.
func NewClock() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) CurrentMinute() time.Time { return time.Now().Truncate(time.Minute) }

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
