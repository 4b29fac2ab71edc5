package store

import (
	"time"

	"main/internal/model/enum"
	"main/internal/order"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderRow is the durable shape of an order record. Monetary columns hold
// the decimal's exact string form so rehydration copies values verbatim.
type OrderRow struct {
	OrderID       string `gorm:"column:order_id;primaryKey"`
	PortfolioID   *string
	Symbol        string `gorm:"index"`
	OrderAmount   string
	FilledAmount  string
	OrderTime     *time.Time
	FilledTime    *time.Time
	OrderType     string
	Price         string
	TransactPrice string
	TurnoverValue string
	Direction     *int
	OffsetFlag    string
	Commission    string
	Slippage      string
	State         string
	StateMessage  string
}

func (OrderRow) TableName() string { return "orders" }

// Orders persists order records and supplies the rehydration field set.
type Orders struct {
	db *gorm.DB
}

func NewOrders(db *gorm.DB) *Orders {
	return &Orders{db: db}
}

// Migrate creates or updates the orders table.
func (s *Orders) Migrate() error {
	return s.db.AutoMigrate(&OrderRow{})
}

// Save upserts the record keyed by order id.
func (s *Orders) Save(r *order.Record) error {
	row := rowFromRecord(r)
	err := s.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			UpdateAll: true,
		}).
		Create(&row).Error
	return errors.Wrap(err, "save order")
}

// Find returns the persisted field set for order.FromQuery.
func (s *Orders) Find(orderID string) (order.Persisted, error) {
	var row OrderRow
	if err := s.db.First(&row, "order_id = ?", orderID).Error; err != nil {
		return order.Persisted{}, errors.Wrap(err, "find order")
	}
	return row.persisted()
}

func rowFromRecord(r *order.Record) OrderRow {
	return OrderRow{
		OrderID:       r.OrderID(),
		PortfolioID:   nullableString(r.PortfolioID()),
		Symbol:        r.Symbol(),
		OrderAmount:   r.OrderAmount().String(),
		FilledAmount:  r.FilledAmount().String(),
		OrderTime:     nullableTime(r.OrderTime()),
		FilledTime:    nullableTime(r.FilledTime()),
		OrderType:     r.OrderType().String(),
		Price:         r.Price().String(),
		TransactPrice: r.TransactPrice().String(),
		TurnoverValue: r.TurnoverValue().String(),
		Direction:     ptr(r.Direction()),
		OffsetFlag:    r.OffsetFlag().String(),
		Commission:    r.Commission().String(),
		Slippage:      r.Slippage().String(),
		State:         r.State().String(),
		StateMessage:  string(r.StateMessage()),
	}
}

func (row OrderRow) persisted() (order.Persisted, error) {
	state, ok := enum.ParseOrderState(row.State)
	if !ok {
		return order.Persisted{}, errors.New("unknown persisted state: " + row.State)
	}
	orderType, _ := enum.ParseOrderType(row.OrderType)
	offsetFlag, _ := enum.ParseOffsetFlag(row.OffsetFlag)

	dec := func(s string) (decimal.Decimal, error) {
		if s == "" {
			return decimal.Zero, nil
		}
		return decimal.NewFromString(s)
	}

	p := order.Persisted{
		Symbol:       row.Symbol,
		OrderID:      row.OrderID,
		OrderType:    orderType,
		OffsetFlag:   offsetFlag,
		Direction:    row.Direction,
		State:        state,
		StateMessage: enum.StateMessage(row.StateMessage),
	}
	if row.PortfolioID != nil {
		p.PortfolioID = *row.PortfolioID
	}
	if row.OrderTime != nil {
		p.OrderTime = *row.OrderTime
	}
	if row.FilledTime != nil {
		p.FilledTime = *row.FilledTime
	}

	var err error
	if p.OrderAmount, err = dec(row.OrderAmount); err != nil {
		return order.Persisted{}, errors.Wrap(err, "order amount")
	}
	if p.FilledAmount, err = dec(row.FilledAmount); err != nil {
		return order.Persisted{}, errors.Wrap(err, "filled amount")
	}
	if p.Price, err = dec(row.Price); err != nil {
		return order.Persisted{}, errors.Wrap(err, "price")
	}
	if p.TransactPrice, err = dec(row.TransactPrice); err != nil {
		return order.Persisted{}, errors.Wrap(err, "transact price")
	}
	if p.TurnoverValue, err = dec(row.TurnoverValue); err != nil {
		return order.Persisted{}, errors.Wrap(err, "turnover value")
	}
	if p.Commission, err = dec(row.Commission); err != nil {
		return order.Persisted{}, errors.Wrap(err, "commission")
	}
	if p.Slippage, err = dec(row.Slippage); err != nil {
		return order.Persisted{}, errors.Wrap(err, "slippage")
	}
	return p, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func ptr[T any](v T) *T { return &v }
