package digital

import (
	"main/internal/model/enum"
	"main/pkg/exception"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"
)

// SubscribeEvent is the venue's order update payload as delivered on the
// private subscription channel.
type SubscribeEvent struct {
	OrderStatus string          `json:"orderStatus"`
	Exchange    string          `json:"exchange"`
	Price       decimal.Decimal `json:"price"`
	Filled      decimal.Decimal `json:"filled"`
	AvgPrice    decimal.Decimal `json:"avgPrice"`
	Fee         decimal.Decimal `json:"fee"`
	FeeCurrency string          `json:"feeCurrency"`
	Cost        decimal.Decimal `json:"cost"`
}

var venueStateMap = map[string]enum.OrderState{
	"PENDING_NEW":      enum.OrderStateSubmitted,
	"NEW":              enum.OrderStateOpen,
	"PARTIALLY_FILLED": enum.OrderStatePartialFilled,
	"FILLED":           enum.OrderStateFilled,
	"REJECTED":         enum.OrderStateRejected,
	"CANCELED":         enum.OrderStateCanceled,
}

var venueMessageMap = map[string]enum.StateMessage{
	"PENDING_NEW":      enum.StateMessageToFill,
	"NEW":              enum.StateMessageOpen,
	"PARTIALLY_FILLED": enum.StateMessagePartialFilled,
	"FILLED":           enum.StateMessageFilled,
	"REJECTED":         enum.StateMessageRejected,
	"CANCELED":         enum.StateMessageCanceled,
}

// UpdateFromSubscribe maps a venue order update onto the common lifecycle and
// copies the execution economics from the payload. A status outside the fixed
// table fails without touching the order; the caller decides what to do with
// the event.
func (o *Order) UpdateFromSubscribe(ev SubscribeEvent) error {
	state, ok := venueStateMap[ev.OrderStatus]
	if !ok {
		return errors.Wrap(exception.ErrUnrecognizedVenueStatus, ev.OrderStatus)
	}

	o.state = state
	o.stateMessage = venueMessageMap[ev.OrderStatus]
	o.exchange = ev.Exchange
	o.price = ev.Price
	o.filledAmount = ev.Filled
	o.transactPrice = ev.AvgPrice
	o.fee = ev.Fee
	o.feeCurrency = ev.FeeCurrency
	o.turnoverValue = ev.Cost
	return nil
}
