package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateActionCancelled marks a row that retracts a trade published earlier in the day.
const UpdateActionCancelled = "2"

// Trade is one row of a B3 "Negócios à Vista" file, reduced to the columns that
// daily bars are built from. Participant codes and the reference date are validated
// by the parser but not kept.
type Trade struct {
	TradeDate      time.Time
	InstrumentCode string
	UpdateAction   string
	Price          decimal.Decimal
	Quantity       int64
	// ClosingTime holds only the clock part (millisecond precision) on 0000-01-01 UTC.
	ClosingTime time.Time
	TradeID     string
	SessionType string
}

// Cancelled reports whether the row retracts an earlier trade.
func (t Trade) Cancelled() bool {
	return t.UpdateAction == UpdateActionCancelled
}
