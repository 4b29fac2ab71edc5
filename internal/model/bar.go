package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bar is one symbol's minute bar as served by the market data source.
type Bar struct {
	Symbol  string
	BarTime time.Time
	Open    decimal.Decimal
	High    decimal.Decimal
	Low     decimal.Decimal
	Close   decimal.Decimal
	Volume  decimal.Decimal
}

// Minute returns the minute boundary this bar represents.
func (b Bar) Minute() time.Time {
	return b.BarTime.Truncate(time.Minute)
}

// IsFreshFor reports whether the bar belongs to the given minute.
func (b Bar) IsFreshFor(minute time.Time) bool {
	return b.Minute().Equal(minute.Truncate(time.Minute))
}
