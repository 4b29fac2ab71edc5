package quote

import (
	"context"
	"sync"
	"testing"
	"time"

	"main/internal/model"
	"main/pkg/exception"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances virtual time by exactly the requested sleep, so grace
// and idle waits are observable without wall delays.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) CurrentMinute() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now.Truncate(time.Minute)
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
	if d > 0 {
		c.now = c.now.Add(d)
	}
	return nil
}

func (c *fakeClock) recordedSleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Duration, len(c.sleeps))
	copy(out, c.sleeps)
	return out
}

type stubSource struct {
	mu    sync.Mutex
	fetch func(universe []string) (map[string][]model.Bar, error)
	calls int
}

func (s *stubSource) LatestBars(_ context.Context, universe []string) (map[string][]model.Bar, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.fetch(universe)
}

func barAt(symbol string, minute time.Time) model.Bar {
	return model.Bar{
		Symbol:  symbol,
		BarTime: minute,
		Close:   decimal.NewFromInt(100),
		Volume:  decimal.NewFromInt(10),
	}
}

func startScheduler(t *testing.T, s *Scheduler) (cancel func() error) {
	t.Helper()
	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	return func() error {
		stop()
		select {
		case err := <-done:
			return err
		case <-time.After(5 * time.Second):
			t.Fatal("scheduler did not stop")
			return nil
		}
	}
}

func TestSchedulerYieldsOnlyFreshBars(t *testing.T) {
	minute := time.Date(2017, 1, 3, 9, 31, 0, 0, time.UTC)
	clock := newFakeClock(minute.Add(15 * time.Second))
	source := &stubSource{fetch: func([]string) (map[string][]model.Bar, error) {
		return map[string][]model.Bar{
			"A": {barAt("A", minute.Add(-time.Minute)), barAt("A", minute)},
			"B": {barAt("B", minute.Add(-time.Minute))},
			"C": {},
		}, nil
	}}

	s, err := NewScheduler(Config{Universe: []string{"A", "B", "C"}}, clock, source)
	require.NoError(t, err)
	stop := startScheduler(t, s)

	ctx, cancelRead := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelRead()
	tick, err := s.Stream().Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", tick.Symbol)
	assert.Equal(t, minute, tick.Bar.BarTime)

	runErr := stop()
	require.ErrorIs(t, runErr, context.Canceled)

	// The stale bar for B and the empty history for C must never surface.
	for tick := range s.Stream().C() {
		assert.Equal(t, "A", tick.Symbol)
		assert.Equal(t, minute, tick.Bar.Minute())
	}

	_, err = s.Stream().Next(context.Background())
	require.ErrorIs(t, err, exception.ErrStreamClosed)

	bar, ok := s.Buffer().Current("B")
	require.True(t, ok, "stale bars still land in the buffer")
	assert.Equal(t, minute.Add(-time.Minute), bar.BarTime)
	_, ok = s.Buffer().Current("C")
	assert.False(t, ok, "symbols with no bars are skipped, not erred")
}

func TestSchedulerWaitsGracePeriodInsideFreshMinute(t *testing.T) {
	minute := time.Date(2017, 1, 3, 9, 31, 0, 0, time.UTC)
	clock := newFakeClock(minute.Add(3 * time.Second))
	source := &stubSource{fetch: func([]string) (map[string][]model.Bar, error) {
		return map[string][]model.Bar{"A": {barAt("A", minute)}}, nil
	}}

	s, err := NewScheduler(Config{Universe: []string{"A"}}, clock, source)
	require.NoError(t, err)
	stop := startScheduler(t, s)

	ctx, cancelRead := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelRead()
	_, err = s.Stream().Next(ctx)
	require.NoError(t, err)
	_ = stop()

	sleeps := clock.recordedSleeps()
	require.NotEmpty(t, sleeps)
	assert.Equal(t, 7*time.Second, sleeps[0],
		"3s into the minute the scheduler waits out the remaining grace window")
}

func TestSchedulerSkipsGracePastTheMark(t *testing.T) {
	minute := time.Date(2017, 1, 3, 9, 31, 0, 0, time.UTC)
	clock := newFakeClock(minute.Add(42 * time.Second))
	source := &stubSource{fetch: func([]string) (map[string][]model.Bar, error) {
		return map[string][]model.Bar{"A": {barAt("A", minute)}}, nil
	}}

	s, err := NewScheduler(Config{Universe: []string{"A"}}, clock, source)
	require.NoError(t, err)
	stop := startScheduler(t, s)

	ctx, cancelRead := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelRead()
	_, err = s.Stream().Next(ctx)
	require.NoError(t, err)
	_ = stop()

	sleeps := clock.recordedSleeps()
	require.NotEmpty(t, sleeps)
	assert.Equal(t, s.cfg.IdleInterval, sleeps[0],
		"past the grace mark the fetch proceeds immediately")
}

func TestSchedulerSurvivesFetchFailure(t *testing.T) {
	start := time.Date(2017, 1, 3, 9, 31, 20, 0, time.UTC)
	clock := newFakeClock(start)
	source := &stubSource{}
	source.fetch = func([]string) (map[string][]model.Bar, error) {
		source.mu.Lock()
		first := source.calls == 1
		source.mu.Unlock()
		if first {
			return nil, exception.ErrInvalidBarPayload
		}
		minute := clock.CurrentMinute()
		return map[string][]model.Bar{"A": {barAt("A", minute)}}, nil
	}

	s, err := NewScheduler(Config{Universe: []string{"A"}}, clock, source)
	require.NoError(t, err)
	stop := startScheduler(t, s)

	ctx, cancelRead := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelRead()
	tick, err := s.Stream().Next(ctx)
	require.NoError(t, err, "one failed cycle must not kill the loop")
	assert.Equal(t, "A", tick.Symbol)
	_ = stop()

	source.mu.Lock()
	calls := source.calls
	source.mu.Unlock()
	assert.GreaterOrEqual(t, calls, 2)
}

func TestNewSchedulerValidatesWiring(t *testing.T) {
	clock := newFakeClock(time.Now())
	source := &stubSource{fetch: func([]string) (map[string][]model.Bar, error) { return nil, nil }}

	_, err := NewScheduler(Config{}, clock, source)
	require.ErrorIs(t, err, exception.ErrInvalidUniverse)

	_, err = NewScheduler(Config{Universe: []string{"A"}}, nil, source)
	require.ErrorIs(t, err, exception.ErrNilClock)

	_, err = NewScheduler(Config{Universe: []string{"A"}}, clock, nil)
	require.ErrorIs(t, err, exception.ErrNilSource)
}
