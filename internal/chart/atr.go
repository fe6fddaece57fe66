package chart

import (
	"fmt"

	"github.com/markcheno/go-talib"
	"github.com/shopspring/decimal"

	"github.com/guttosm/b3charts/internal/domain/models"
)

// DefaultATRPeriod is the look-back used when the brick size is derived from volatility.
const DefaultATRPeriod = 14

// ATRBrickSize derives a Renko brick size from the latest Average True Range of series,
// rounded to cents.
func ATRBrickSize(series []models.Bar, period int) (decimal.Decimal, error) {
	if period <= 0 {
		return decimal.Zero, fmt.Errorf("%w: ATR period must be positive, got %d", ErrInvalidParameter, period)
	}
	if len(series) < period+1 {
		return decimal.Zero, fmt.Errorf("%w: ATR(%d) needs %d bars, got %d", ErrInsufficientData, period, period+1, len(series))
	}

	highs := make([]float64, len(series))
	lows := make([]float64, len(series))
	closes := make([]float64, len(series))
	for i, b := range series {
		highs[i] = b.High.InexactFloat64()
		lows[i] = b.Low.InexactFloat64()
		closes[i] = b.Close.InexactFloat64()
	}

	atr := talib.Atr(highs, lows, closes, period)
	size := decimal.NewFromFloat(atr[len(atr)-1]).Round(2)
	if !size.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: series has no measurable range", ErrInsufficientData)
	}
	return size, nil
}
