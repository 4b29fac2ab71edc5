package store

import (
	"context"
	"time"

	"main/internal/model"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"
	"gorm.io/gorm"
)

// BarRow is one persisted minute bar.
type BarRow struct {
	ID      uint      `gorm:"primaryKey"`
	Symbol  string    `gorm:"index:idx_bars_symbol_time"`
	BarTime time.Time `gorm:"index:idx_bars_symbol_time"`
	Open    decimal.Decimal
	High    decimal.Decimal
	Low     decimal.Decimal
	Close   decimal.Decimal
	Volume  decimal.Decimal
}

func (BarRow) TableName() string { return "minute_bars" }

// Bars serves recent minute bars from the database, implementing the quote
// scheduler's source.
type Bars struct {
	db       *gorm.DB
	lookback time.Duration
}

// NewBars builds a bar source limited to the given lookback window.
func NewBars(db *gorm.DB, lookback time.Duration) *Bars {
	if lookback <= 0 {
		lookback = 10 * time.Minute
	}
	return &Bars{db: db, lookback: lookback}
}

// Migrate creates or updates the minute bar table.
func (s *Bars) Migrate() error {
	return s.db.AutoMigrate(&BarRow{})
}

// Insert stores bars as the ingest side delivers them.
func (s *Bars) Insert(ctx context.Context, bars []model.Bar) error {
	if len(bars) == 0 {
		return nil
	}
	rows := make([]BarRow, 0, len(bars))
	for _, bar := range bars {
		rows = append(rows, BarRow{
			Symbol:  bar.Symbol,
			BarTime: bar.BarTime,
			Open:    bar.Open,
			High:    bar.High,
			Low:     bar.Low,
			Close:   bar.Close,
			Volume:  bar.Volume,
		})
	}
	return errors.Wrap(s.db.WithContext(ctx).Create(&rows).Error, "insert bars")
}

// LatestBars returns the recent bar history per universe symbol, oldest
// first. Symbols with no rows in the window are simply absent.
func (s *Bars) LatestBars(ctx context.Context, universe []string) (map[string][]model.Bar, error) {
	cutoff := time.Now().Add(-s.lookback)
	var rows []BarRow
	err := s.db.WithContext(ctx).
		Where("symbol IN ? AND bar_time >= ?", universe, cutoff).
		Order("symbol, bar_time").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "load minute bars")
	}

	out := make(map[string][]model.Bar, len(universe))
	for _, row := range rows {
		out[row.Symbol] = append(out[row.Symbol], model.Bar{
			Symbol:  row.Symbol,
			BarTime: row.BarTime,
			Open:    row.Open,
			High:    row.High,
			Low:     row.Low,
			Close:   row.Close,
			Volume:  row.Volume,
		})
	}
	return out, nil
}
