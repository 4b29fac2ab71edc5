package exception

import "github.com/yanun0323/errors"

var (
	ErrInvalidUniverse   = errors.New("market data: empty universe")
	ErrNilSource         = errors.New("market data: nil source")
	ErrNilClock          = errors.New("market data: nil clock")
	ErrStreamClosed      = errors.New("market data: stream closed")
	ErrInvalidSlotCount  = errors.New("market data: slot count must be at least 2")
	ErrInvalidBarPayload = errors.New("market data: invalid bar payload")
)
