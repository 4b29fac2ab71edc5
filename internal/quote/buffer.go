package quote

import (
	"sync/atomic"
	"time"

	"main/internal/model"
	"main/pkg/exception"
)

// Generation is one complete refresh cycle's worth of per-symbol bars. A
// published generation is never mutated in place.
type Generation struct {
	Minute time.Time
	Bars   map[string]model.Bar
}

// Buffer is an N-slot generation ring with a monotonically increasing
// version counter. The writer fills slot (version+1) mod N and then advances
// the counter; the counter store is the single atomic publish step, so a
// reader always sees one generation in its entirety.
type Buffer struct {
	slots   []atomic.Pointer[Generation]
	version atomic.Uint64
}

// NewBuffer allocates a ring with the given slot count.
func NewBuffer(slots int) (*Buffer, error) {
	if slots < 2 {
		return nil, exception.ErrInvalidSlotCount
	}
	return &Buffer{slots: make([]atomic.Pointer[Generation], slots)}, nil
}

// Publish installs a full generation and makes it the reader-visible one.
// Single writer only.
func (b *Buffer) Publish(minute time.Time, bars map[string]model.Bar) {
	v := b.version.Load()
	gen := &Generation{Minute: minute.Truncate(time.Minute), Bars: bars}
	b.slots[(v+1)%uint64(len(b.slots))].Store(gen)
	b.version.Store(v + 1)
}

// Generation returns the published generation, or false before the first
// publish.
func (b *Buffer) Generation() (Generation, bool) {
	v := b.version.Load()
	if v == 0 {
		return Generation{}, false
	}
	gen := b.slots[v%uint64(len(b.slots))].Load()
	if gen == nil {
		return Generation{}, false
	}
	return *gen, true
}

// Current returns the published bar for a symbol. A missing symbol simply
// has not traded yet; that is not an error.
func (b *Buffer) Current(symbol string) (model.Bar, bool) {
	gen, ok := b.Generation()
	if !ok {
		return model.Bar{}, false
	}
	bar, ok := gen.Bars[symbol]
	return bar, ok
}

// Version returns the number of publishes so far.
func (b *Buffer) Version() uint64 {
	return b.version.Load()
}
