package quote

import (
	"context"
	"errors"
	"time"

	"main/internal/model"
	"main/pkg/exception"

	"github.com/yanun0323/logs"
)

// Source is the external market data collaborator: given a universe it
// returns the recent bar history per symbol. It may return fewer symbols
// than requested.
type Source interface {
	LatestBars(ctx context.Context, universe []string) (map[string][]model.Bar, error)
}

// Config tunes the refresh loop.
type Config struct {
	Universe     []string
	Slots        int           // generation ring slots, default 2
	IdleInterval time.Duration // re-poll pace while the minute is unchanged, default 5s
	GraceSeconds int           // wait this deep into a fresh minute before fetching, default 10
}

func (c Config) withDefaults() Config {
	if c.Slots == 0 {
		c.Slots = 2
	}
	if c.IdleInterval <= 0 {
		c.IdleInterval = 5 * time.Second
	}
	if c.GraceSeconds == 0 {
		c.GraceSeconds = 10
	}
	return c
}

// Scheduler drives the minute refresh: poll the clock, fetch the universe
// snapshot, publish it into the buffer, then push fresh ticks to the stream.
type Scheduler struct {
	cfg    Config
	clock  Clock
	source Source
	buffer *Buffer
	stream *Stream
}

// NewScheduler validates the wiring and allocates the buffer and stream.
func NewScheduler(cfg Config, clock Clock, source Source) (*Scheduler, error) {
	cfg = cfg.withDefaults()
	if len(cfg.Universe) == 0 {
		return nil, exception.ErrInvalidUniverse
	}
	if clock == nil {
		return nil, exception.ErrNilClock
	}
	if source == nil {
		return nil, exception.ErrNilSource
	}
	buffer, err := NewBuffer(cfg.Slots)
	if err != nil {
		return nil, err
	}
	return &Scheduler{
		cfg:    cfg,
		clock:  clock,
		source: source,
		buffer: buffer,
		stream: newStream(len(cfg.Universe)),
	}, nil
}

// Buffer exposes the generation ring for direct snapshot readers.
func (s *Scheduler) Buffer() *Buffer { return s.buffer }

// Stream returns the consumer-facing tick sequence. One reader only.
func (s *Scheduler) Stream() *Stream { return s.stream }

// Run loops until the context ends. A failed cycle is logged and abandoned;
// the loop itself never dies on a fetch error.
func (s *Scheduler) Run(ctx context.Context) error {
	defer s.stream.close()

	var lastMinute time.Time
	for {
		minute := s.clock.CurrentMinute()
		if !minute.Equal(lastMinute) {
			lastMinute = minute
			if err := s.cycle(ctx, minute); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				logs.Errorf("quote refresh cycle for %s failed, err: %+v", minute.Format("15:04"), err)
			}
		}
		if err := s.clock.Sleep(ctx, s.cfg.IdleInterval); err != nil {
			return err
		}
	}
}

func (s *Scheduler) cycle(ctx context.Context, minute time.Time) error {
	// Give the upstream feed time to finish writing the bar that just
	// closed before pulling the snapshot.
	if sec := s.clock.Now().Second(); sec < s.cfg.GraceSeconds {
		if err := s.clock.Sleep(ctx, time.Duration(s.cfg.GraceSeconds-sec)*time.Second); err != nil {
			return err
		}
	}

	history, err := s.source.LatestBars(ctx, s.cfg.Universe)
	if err != nil {
		return err
	}

	bars := make(map[string]model.Bar, len(history))
	for symbol, list := range history {
		if len(list) == 0 {
			continue
		}
		bar := list[len(list)-1]
		bar.Symbol = symbol
		bars[symbol] = bar
	}
	s.buffer.Publish(minute, bars)

	for _, symbol := range s.cfg.Universe {
		bar, ok := s.buffer.Current(symbol)
		if !ok || !bar.IsFreshFor(minute) {
			continue
		}
		if err := s.stream.emit(ctx, Tick{Symbol: symbol, Bar: bar}); err != nil {
			return err
		}
	}
	return nil
}
