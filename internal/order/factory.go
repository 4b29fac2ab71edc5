package order

import (
	"time"

	"main/internal/model/enum"
	"main/pkg/exception"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"
)

// Request carries a trusted fresh submission. Amount is signed; its sign
// drives direction and offset flag when those are left unset.
type Request struct {
	Symbol      string
	Amount      decimal.Decimal
	OrderTime   time.Time
	OrderType   enum.OrderType
	Price       decimal.Decimal
	PortfolioID string
	OrderID     string
	OffsetFlag  enum.OffsetFlag
	Direction   *int
}

// Persisted is the field set the store hands back for rehydration.
type Persisted struct {
	Symbol        string
	OrderAmount   decimal.Decimal
	OrderTime     time.Time
	OrderType     enum.OrderType
	Price         decimal.Decimal
	PortfolioID   string
	OrderID       string
	OffsetFlag    enum.OffsetFlag
	Direction     *int
	State         enum.OrderState
	StateMessage  enum.StateMessage
	FilledTime    time.Time
	FilledAmount  decimal.Decimal
	TransactPrice decimal.Decimal
	TurnoverValue decimal.Decimal
	Commission    decimal.Decimal
	Slippage      decimal.Decimal
}

// FromRequest builds a freshly submitted record. The order id is generated
// when absent, direction and offset flag derive from the signed amount, and
// every progressed field starts at its defined zero.
func FromRequest(req Request) (*Record, error) {
	if req.Symbol == "" {
		return nil, errors.Wrap(exception.ErrInvalidOrderRequest, "empty symbol")
	}
	orderType := req.OrderType
	if orderType == 0 {
		orderType = enum.OrderTypeMarket
	}
	if !orderType.IsAvailable() {
		return nil, errors.Wrap(exception.ErrInvalidOrderRequest, "unknown order type")
	}

	orderID := req.OrderID
	if orderID == "" {
		orderID = uuid.NewString()
	}

	direction := req.Amount.Sign()
	if req.Direction != nil {
		direction = *req.Direction
	}

	offset := req.OffsetFlag
	if !offset.IsAvailable() {
		if req.Amount.Sign() > 0 {
			offset = enum.OffsetFlagOpen
		} else {
			offset = enum.OffsetFlagClose
		}
	}

	return &Record{
		symbol:       req.Symbol,
		orderAmount:  req.Amount.Abs(),
		orderTime:    req.OrderTime,
		direction:    direction,
		orderType:    orderType,
		price:        req.Price,
		orderID:      orderID,
		portfolioID:  req.PortfolioID,
		offsetFlag:   offset,
		state:        enum.OrderStateSubmitted,
		stateMessage: enum.StateMessageToFill,
	}, nil
}

// FromQuery rehydrates an in-progress record from the store. Progressed
// fields are copied verbatim with no re-derivation. Direction falls back to
// +1 only when the persisted row predates the direction column.
func FromQuery(q Persisted) (*Record, error) {
	if q.Symbol == "" {
		return nil, errors.Wrap(exception.ErrInvalidOrderRequest, "empty symbol")
	}
	if q.OrderID == "" {
		return nil, errors.Wrap(exception.ErrInvalidOrderRequest, "empty order id")
	}
	if !q.State.IsAvailable() {
		return nil, errors.Wrap(exception.ErrInvalidOrderRequest, "unknown state")
	}

	orderType := q.OrderType
	if orderType == 0 {
		orderType = enum.OrderTypeMarket
	}

	// Legacy rows carry no direction; the historical default is +1.
	direction := 1
	if q.Direction != nil {
		direction = *q.Direction
	}

	offset := q.OffsetFlag
	if !offset.IsAvailable() {
		offset = enum.OffsetFlagOpen
	}

	message := q.StateMessage
	if message == "" {
		message = enum.DefaultMessage(q.State)
	}

	return &Record{
		symbol:        q.Symbol,
		orderAmount:   q.OrderAmount.Abs(),
		orderTime:     q.OrderTime,
		direction:     direction,
		orderType:     orderType,
		price:         q.Price,
		orderID:       q.OrderID,
		portfolioID:   q.PortfolioID,
		offsetFlag:    offset,
		state:         q.State,
		stateMessage:  message,
		filledTime:    q.FilledTime,
		filledAmount:  q.FilledAmount,
		transactPrice: q.TransactPrice,
		turnoverValue: q.TurnoverValue,
		commission:    q.Commission,
		slippage:      q.Slippage,
	}, nil
}
