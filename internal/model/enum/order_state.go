package enum

// OrderState tracks the lifecycle of an order record.
type OrderState uint8

const (
	_order_state_beg OrderState = iota
	OrderStateSubmitted
	OrderStateOpen
	OrderStatePartialFilled
	OrderStateFilled
	OrderStateCancelSubmitted
	OrderStateCanceled
	OrderStateRejected
	OrderStateError
	_order_state_end
)

func (s OrderState) IsAvailable() bool {
	return s > _order_state_beg && s < _order_state_end
}

// IsTerminal reports whether no further transition is permitted.
func (s OrderState) IsTerminal() bool {
	switch s {
	case OrderStateFilled, OrderStateRejected, OrderStateCanceled, OrderStateError:
		return true
	default:
		return false
	}
}

// IsActive reports whether the order still awaits execution reports.
func (s OrderState) IsActive() bool {
	return s.IsAvailable() && !s.IsTerminal()
}

func (s OrderState) String() string {
	switch s {
	case OrderStateSubmitted:
		return "ORDER_SUBMITTED"
	case OrderStateOpen:
		return "OPEN"
	case OrderStatePartialFilled:
		return "PARTIAL_FILLED"
	case OrderStateFilled:
		return "FILLED"
	case OrderStateCancelSubmitted:
		return "CANCEL_SUBMITTED"
	case OrderStateCanceled:
		return "CANCELED"
	case OrderStateRejected:
		return "REJECTED"
	case OrderStateError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseOrderState resolves the persisted wire name back to the enum.
func ParseOrderState(name string) (OrderState, bool) {
	for s := _order_state_beg + 1; s < _order_state_end; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return _order_state_beg, false
}
