package order

import (
	"time"

	"main/internal/model/enum"
	"main/pkg/exception"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"
)

// Event is one execution report applied to a record. FilledAmount is the
// cumulative filled quantity reported by the venue, not a delta.
type Event struct {
	State         enum.OrderState
	Message       enum.StateMessage
	FilledAmount  decimal.Decimal
	TransactPrice decimal.Decimal
	FilledTime    time.Time
	Commission    decimal.Decimal
	Slippage      decimal.Decimal
}

var transitions = map[enum.OrderState][]enum.OrderState{
	enum.OrderStateSubmitted: {
		enum.OrderStateOpen,
		enum.OrderStateRejected,
		enum.OrderStateError,
	},
	enum.OrderStateOpen: {
		enum.OrderStatePartialFilled,
		enum.OrderStateFilled,
		enum.OrderStateCancelSubmitted,
		enum.OrderStateRejected,
		enum.OrderStateError,
	},
	enum.OrderStatePartialFilled: {
		enum.OrderStateFilled,
		enum.OrderStateCancelSubmitted,
		enum.OrderStateError,
	},
	enum.OrderStateCancelSubmitted: {
		enum.OrderStateCanceled,
		enum.OrderStatePartialFilled,
		enum.OrderStateFilled,
		enum.OrderStateError,
	},
}

func legalTransition(from, to enum.OrderState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Apply advances the record through one sanctioned lifecycle transition.
// State and message change together; an illegal transition or an invalid
// fill leaves the record completely unchanged.
func (r *Record) Apply(ev Event) error {
	if !ev.State.IsAvailable() {
		return errors.Wrap(exception.ErrInvalidTransition, ev.State.String())
	}
	if !legalTransition(r.state, ev.State) {
		return errors.Wrap(exception.ErrInvalidTransition, r.state.String()+" -> "+ev.State.String())
	}

	filled := r.filledAmount
	transact := r.transactPrice
	turnover := r.turnoverValue
	filledTime := r.filledTime
	commission := r.commission
	slippage := r.slippage

	switch ev.State {
	case enum.OrderStatePartialFilled, enum.OrderStateFilled:
		filled = ev.FilledAmount
		if filled.IsZero() && ev.State == enum.OrderStateFilled {
			filled = r.orderAmount
		}
		if filled.IsNegative() || filled.GreaterThan(r.orderAmount) {
			return errors.Wrap(exception.ErrInvalidFill, filled.String())
		}
		transact = ev.TransactPrice
		turnover = filled.Mul(transact)
		filledTime = ev.FilledTime
		commission = ev.Commission
		slippage = ev.Slippage
	}

	message := ev.Message
	if message == "" {
		message = enum.DefaultMessage(ev.State)
	}

	r.state = ev.State
	r.stateMessage = message
	r.filledAmount = filled
	r.transactPrice = transact
	r.turnoverValue = turnover
	r.filledTime = filledTime
	r.commission = commission
	r.slippage = slippage
	return nil
}
