// Package digital adapts the digital-asset venue's order vocabulary onto the
// common order lifecycle.
package digital

import (
	"time"

	"main/internal/model/enum"
	"main/pkg/exception"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"
)

// Order mirrors order.Record for digital-asset venues: same lifecycle, plus
// side, fee and exchange attribution. Mutation happens only through
// UpdateFromSubscribe.
type Order struct {
	symbol        string
	amount        decimal.Decimal
	orderTime     time.Time
	orderType     enum.OrderType
	price         decimal.Decimal
	state         enum.OrderState
	stateMessage  enum.StateMessage
	orderID       string
	accountID     string
	filledTime    time.Time
	filledAmount  decimal.Decimal
	transactPrice decimal.Decimal
	fee           decimal.Decimal
	feeCurrency   string
	side          enum.OrderSide
	direction     int
	turnoverValue decimal.Decimal
	exchange      string
}

// Request carries a trusted fresh submission for a digital-asset venue.
type Request struct {
	Symbol    string
	Amount    decimal.Decimal
	OrderTime time.Time
	OrderType enum.OrderType
	Price     decimal.Decimal
	OrderID   string
	AccountID string
	Side      enum.OrderSide
	Direction *int
	Exchange  string
}

// New builds a freshly submitted venue order. Side and direction derive from
// the signed amount when absent.
func New(req Request) (*Order, error) {
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

	side := req.Side
	if !side.IsAvailable() {
		if req.Amount.Sign() > 0 {
			side = enum.OrderSideBuy
		} else {
			side = enum.OrderSideSell
		}
	}

	direction := req.Amount.Sign()
	if req.Direction != nil {
		direction = *req.Direction
	}

	return &Order{
		symbol:       req.Symbol,
		amount:       req.Amount,
		orderTime:    req.OrderTime,
		orderType:    orderType,
		price:        req.Price,
		state:        enum.OrderStateSubmitted,
		stateMessage: enum.StateMessageToFill,
		orderID:      orderID,
		accountID:    req.AccountID,
		side:         side,
		direction:    direction,
		exchange:     req.Exchange,
	}, nil
}

func (o *Order) Symbol() string                  { return o.symbol }
func (o *Order) Amount() decimal.Decimal         { return o.amount }
func (o *Order) OrderTime() time.Time            { return o.orderTime }
func (o *Order) OrderType() enum.OrderType       { return o.orderType }
func (o *Order) Price() decimal.Decimal          { return o.price }
func (o *Order) State() enum.OrderState          { return o.state }
func (o *Order) StateMessage() enum.StateMessage { return o.stateMessage }
func (o *Order) OrderID() string                 { return o.orderID }
func (o *Order) AccountID() string               { return o.accountID }
func (o *Order) FilledAmount() decimal.Decimal   { return o.filledAmount }
func (o *Order) TransactPrice() decimal.Decimal  { return o.transactPrice }
func (o *Order) Fee() decimal.Decimal            { return o.fee }
func (o *Order) FeeCurrency() string             { return o.feeCurrency }
func (o *Order) Side() enum.OrderSide            { return o.side }
func (o *Order) Direction() int                  { return o.direction }
func (o *Order) TurnoverValue() decimal.Decimal  { return o.turnoverValue }
func (o *Order) Exchange() string                { return o.exchange }

// Set rejects any dynamic field write, mirroring order.Record.
func (o *Order) Set(field string, _ any) error {
	return errors.Wrap(exception.ErrInvalidFieldMutation, field)
}
