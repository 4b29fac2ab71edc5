package enum

// OrderType market, limit
type OrderType uint8

const (
	_order_type_beg OrderType = iota
	OrderTypeMarket
	OrderTypeLimit
	_order_type_end
)

func (t OrderType) IsAvailable() bool {
	return t > _order_type_beg && t < _order_type_end
}

func (t OrderType) String() string {
	switch t {
	case OrderTypeMarket:
		return "market"
	case OrderTypeLimit:
		return "limit"
	default:
		return "unknown"
	}
}

// ParseOrderType resolves the persisted name back to the enum.
func ParseOrderType(name string) (OrderType, bool) {
	switch name {
	case "market":
		return OrderTypeMarket, true
	case "limit":
		return OrderTypeLimit, true
	default:
		return _order_type_beg, false
	}
}

// OffsetFlag open, close
type OffsetFlag uint8

const (
	_offset_flag_beg OffsetFlag = iota
	OffsetFlagOpen
	OffsetFlagClose
	_offset_flag_end
)

func (f OffsetFlag) IsAvailable() bool {
	return f > _offset_flag_beg && f < _offset_flag_end
}

func (f OffsetFlag) String() string {
	switch f {
	case OffsetFlagOpen:
		return "open"
	case OffsetFlagClose:
		return "close"
	default:
		return "unknown"
	}
}

// ParseOffsetFlag resolves the persisted name back to the enum.
func ParseOffsetFlag(name string) (OffsetFlag, bool) {
	switch name {
	case "open":
		return OffsetFlagOpen, true
	case "close":
		return OffsetFlagClose, true
	default:
		return _offset_flag_beg, false
	}
}

// OrderSide buy, sell
type OrderSide uint8

const (
	_order_side_beg OrderSide = iota
	OrderSideBuy
	OrderSideSell
	_order_side_end
)

func (s OrderSide) IsAvailable() bool {
	return s > _order_side_beg && s < _order_side_end
}

func (s OrderSide) String() string {
	switch s {
	case OrderSideBuy:
		return "BUY"
	case OrderSideSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// ParseOrderSide resolves the venue name back to the enum.
func ParseOrderSide(name string) (OrderSide, bool) {
	switch name {
	case "BUY":
		return OrderSideBuy, true
	case "SELL":
		return OrderSideSell, true
	default:
		return _order_side_beg, false
	}
}
