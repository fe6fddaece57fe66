// Package chart turns an OHLC series into price-movement charts: Renko bricks,
// Kagi lines, Point & Figure columns and range bars.
//
// Every aggregator is a single forward scan over the series that carries a small
// accumulator value and returns the full output sequence. Display windows are
// applied separately with Last, so callers can always inspect the complete output.
// All functions are pure and safe to call concurrently on different series.
package chart

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidParameter is returned when a size, amount or multiplier is not positive.
	ErrInvalidParameter = errors.New("invalid chart parameter")

	// ErrInsufficientData is returned when a derived parameter cannot be computed
	// from the series at hand.
	ErrInsufficientData = errors.New("insufficient data")
)

// Display windows: how many trailing items of each output are shown.
const (
	RenkoWindow       = 30
	KagiWindow        = 40
	PointFigureWindow = 50
	RangeBarsWindow   = 30
)

func requirePositive(name string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalidParameter, name, v.String())
	}
	return nil
}

// Last returns the trailing n items of seq. A non-positive n disables truncation.
// The result shares its backing array with seq.
func Last[T any](seq []T, n int) []T {
	if n <= 0 || len(seq) <= n {
		return seq
	}
	return seq[len(seq)-n:]
}
