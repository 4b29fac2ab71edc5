package digital

import (
	"testing"

	"main/internal/model/enum"
	"main/pkg/exception"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buyOrder(t *testing.T) *Order {
	t.Helper()
	o, err := New(Request{
		Symbol:    "BTCUSDT.BN",
		Amount:    decimal.RequireFromString("0.5"),
		OrderType: enum.OrderTypeLimit,
		Price:     decimal.RequireFromString("43000"),
		OrderID:   "client-1",
		AccountID: "acc-1",
	})
	require.NoError(t, err)
	return o
}

func TestNewDerivesSideFromSignedAmount(t *testing.T) {
	buy := buyOrder(t)
	assert.Equal(t, enum.OrderSideBuy, buy.Side())
	assert.Equal(t, 1, buy.Direction())

	sell, err := New(Request{
		Symbol: "ETHUSDT.BN",
		Amount: decimal.RequireFromString("-2"),
	})
	require.NoError(t, err)
	assert.Equal(t, enum.OrderSideSell, sell.Side())
	assert.Equal(t, -1, sell.Direction())
	assert.NotEmpty(t, sell.OrderID())
}

func TestUpdateFromSubscribeFilled(t *testing.T) {
	o := buyOrder(t)
	err := o.UpdateFromSubscribe(SubscribeEvent{
		OrderStatus: "FILLED",
		Exchange:    "BINANCE",
		Price:       decimal.RequireFromString("43000"),
		Filled:      decimal.RequireFromString("0.5"),
		AvgPrice:    decimal.RequireFromString("42990.5"),
		Fee:         decimal.RequireFromString("0.0005"),
		FeeCurrency: "BTC",
		Cost:        decimal.RequireFromString("21495.25"),
	})
	require.NoError(t, err)

	assert.Equal(t, enum.OrderStateFilled, o.State())
	assert.Equal(t, enum.StateMessageFilled, o.StateMessage())
	assert.Equal(t, "BINANCE", o.Exchange())
	assert.Equal(t, "0.5", o.FilledAmount().String())
	assert.Equal(t, "42990.5", o.TransactPrice().String())
	assert.Equal(t, "0.0005", o.Fee().String())
	assert.Equal(t, "BTC", o.FeeCurrency())
	assert.Equal(t, "21495.25", o.TurnoverValue().String())
}

func TestUpdateFromSubscribeStatusTable(t *testing.T) {
	tests := []struct {
		status  string
		state   enum.OrderState
		message enum.StateMessage
	}{
		{"PENDING_NEW", enum.OrderStateSubmitted, enum.StateMessageToFill},
		{"NEW", enum.OrderStateOpen, enum.StateMessageOpen},
		{"PARTIALLY_FILLED", enum.OrderStatePartialFilled, enum.StateMessagePartialFilled},
		{"FILLED", enum.OrderStateFilled, enum.StateMessageFilled},
		{"REJECTED", enum.OrderStateRejected, enum.StateMessageRejected},
		{"CANCELED", enum.OrderStateCanceled, enum.StateMessageCanceled},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			o := buyOrder(t)
			require.NoError(t, o.UpdateFromSubscribe(SubscribeEvent{OrderStatus: tt.status}))
			assert.Equal(t, tt.state, o.State())
			assert.Equal(t, tt.message, o.StateMessage())
		})
	}
}

func TestUpdateFromSubscribeUnknownStatusDoesNotMutate(t *testing.T) {
	o := buyOrder(t)
	before := *o

	err := o.UpdateFromSubscribe(SubscribeEvent{
		OrderStatus: "EXPIRED_IN_MATCH",
		Exchange:    "BINANCE",
		Filled:      decimal.RequireFromString("0.1"),
	})
	require.ErrorIs(t, err, exception.ErrUnrecognizedVenueStatus)
	assert.Equal(t, before, *o)
}

func TestToRequest(t *testing.T) {
	o := buyOrder(t)
	req := o.ToRequest()

	assert.Equal(t, "LIMIT", req.OrderType)
	assert.Equal(t, "BTCUSDT", req.Symbol)
	assert.Equal(t, "BUY", req.Side)
	assert.Equal(t, "43000", req.Price.String())
	assert.Equal(t, "0.5", req.Amount.String())
	assert.Equal(t, "client-1", req.ExtOrdID)
}

func TestSetRejectsFixedFields(t *testing.T) {
	o := buyOrder(t)
	before := *o
	require.ErrorIs(t, o.Set("symbol", "x"), exception.ErrInvalidFieldMutation)
	require.ErrorIs(t, o.Set("amount", "1"), exception.ErrInvalidFieldMutation)
	assert.Equal(t, before, *o)
}

func TestMapNoneMarkers(t *testing.T) {
	o, err := New(Request{
		Symbol: "BTCUSDT.BN",
		Amount: decimal.RequireFromString("1"),
	})
	require.NoError(t, err)

	m := o.Map()
	assert.Nil(t, m["account_id"])
	assert.Nil(t, m["fee_currency"])
	assert.Nil(t, m["filled_time"])
	assert.Nil(t, m["exchange"])
	assert.Equal(t, "BUY", m["side"])
}
