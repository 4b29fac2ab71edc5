package digital

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PlaceRequest is the outbound submission payload. The client order id rides
// along as the venue's external order id so a resubmission matches the same
// venue order.
type PlaceRequest struct {
	OrderType string          `json:"orderType"`
	Symbol    string          `json:"symbol"`
	Side      string          `json:"side"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
	ExtOrdID  string          `json:"extOrdId"`
}

// ToRequest serializes the order for submission: upper-cased order type and
// the symbol with its venue suffix stripped.
func (o *Order) ToRequest() PlaceRequest {
	symbol, _, _ := strings.Cut(o.symbol, ".")
	return PlaceRequest{
		OrderType: strings.ToUpper(o.orderType.String()),
		Symbol:    symbol,
		Side:      o.side.String(),
		Price:     o.price,
		Amount:    o.amount,
		ExtOrdID:  o.orderID,
	}
}

// Map serializes the order for the persistence store, with nil marking
// absent values.
func (o *Order) Map() map[string]any {
	return map[string]any{
		"symbol":         o.symbol,
		"amount":         o.amount.String(),
		"order_time":     noneTime(o.orderTime),
		"order_type":     o.orderType.String(),
		"price":          o.price.String(),
		"state":          o.state.String(),
		"state_message":  string(o.stateMessage),
		"order_id":       o.orderID,
		"account_id":     noneString(o.accountID),
		"filled_time":    noneTime(o.filledTime),
		"filled_amount":  o.filledAmount.String(),
		"transact_price": o.transactPrice.String(),
		"fee":            o.fee.String(),
		"fee_currency":   noneString(o.feeCurrency),
		"side":           o.side.String(),
		"direction":      o.direction,
		"turnover_value": o.turnoverValue.String(),
		"exchange":       noneString(o.exchange),
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
