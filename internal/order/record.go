package order

import (
	"time"

	"main/internal/model/enum"
	"main/pkg/exception"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"
)

// Record is the authoritative view of one order. Every field is fixed at
// construction except the lifecycle fields advanced through Apply; there is
// no other mutation path.
type Record struct {
	symbol        string
	orderAmount   decimal.Decimal
	orderTime     time.Time
	direction     int
	orderType     enum.OrderType
	price         decimal.Decimal
	orderID       string
	portfolioID   string
	offsetFlag    enum.OffsetFlag
	state         enum.OrderState
	stateMessage  enum.StateMessage
	filledTime    time.Time
	filledAmount  decimal.Decimal
	transactPrice decimal.Decimal
	turnoverValue decimal.Decimal
	commission    decimal.Decimal
	slippage      decimal.Decimal
}

func (r *Record) Symbol() string                  { return r.symbol }
func (r *Record) OrderAmount() decimal.Decimal    { return r.orderAmount }
func (r *Record) OrderTime() time.Time            { return r.orderTime }
func (r *Record) Direction() int                  { return r.direction }
func (r *Record) OrderType() enum.OrderType       { return r.orderType }
func (r *Record) Price() decimal.Decimal          { return r.price }
func (r *Record) OrderID() string                 { return r.orderID }
func (r *Record) PortfolioID() string             { return r.portfolioID }
func (r *Record) OffsetFlag() enum.OffsetFlag     { return r.offsetFlag }
func (r *Record) State() enum.OrderState          { return r.state }
func (r *Record) StateMessage() enum.StateMessage { return r.stateMessage }
func (r *Record) FilledTime() time.Time           { return r.filledTime }
func (r *Record) FilledAmount() decimal.Decimal   { return r.filledAmount }
func (r *Record) TransactPrice() decimal.Decimal  { return r.transactPrice }
func (r *Record) TurnoverValue() decimal.Decimal  { return r.turnoverValue }
func (r *Record) Commission() decimal.Decimal     { return r.commission }
func (r *Record) Slippage() decimal.Decimal       { return r.slippage }

// OpenAmount is the quantity still waiting to be filled.
func (r *Record) OpenAmount() decimal.Decimal {
	return r.orderAmount.Sub(r.filledAmount)
}

// Set rejects any dynamic field write. Scripted callers that reach a record
// through reflection-style access get a defined failure instead of a silent
// overwrite; the record is left untouched.
func (r *Record) Set(field string, _ any) error {
	return errors.Wrap(exception.ErrInvalidFieldMutation, field)
}

// Map serializes the record for the persistence store. Absent values are
// nil so the store writes NULL rather than a zero timestamp.
func (r *Record) Map() map[string]any {
	return map[string]any{
		"portfolio_id":   noneString(r.portfolioID),
		"order_id":       noneString(r.orderID),
		"symbol":         r.symbol,
		"order_amount":   r.orderAmount.String(),
		"filled_amount":  r.filledAmount.String(),
		"order_time":     noneTime(r.orderTime),
		"filled_time":    noneTime(r.filledTime),
		"order_type":     r.orderType.String(),
		"price":          r.price.String(),
		"transact_price": r.transactPrice.String(),
		"turnover_value": r.turnoverValue.String(),
		"direction":      r.direction,
		"offset_flag":    r.offsetFlag.String(),
		"commission":     r.commission.String(),
		"slippage":       r.slippage.String(),
		"state":          r.state.String(),
		"state_message":  string(r.stateMessage),
	}
}

func noneString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func noneTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
