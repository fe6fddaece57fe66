package chart

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/b3charts/internal/domain/models"
)

// rangeScan accumulates bars into a working bar until its span reaches size.
type rangeScan struct {
	size    decimal.Decimal
	working *models.RangeBar
}

func (s *rangeScan) step(bar models.Bar, out []models.RangeBar) []models.RangeBar {
	if s.working == nil {
		s.working = &models.RangeBar{Open: bar.Open, High: bar.High, Low: bar.Low, Close: bar.Close}
	}

	w := s.working
	w.High = decimal.Max(w.High, bar.High)
	w.Low = decimal.Min(w.Low, bar.Low)
	w.Close = bar.Close
	w.Index = bar.Index

	if w.High.Sub(w.Low).GreaterThanOrEqual(s.size) {
		out = append(out, *w)
		s.working = nil
	}
	return out
}

// RangeBars groups consecutive bars into bars spanning at least rangeSize from high to
// low. Only completed bars are returned: a working bar still short of rangeSize when the
// series ends is dropped.
func RangeBars(series []models.Bar, rangeSize decimal.Decimal) ([]models.RangeBar, error) {
	if err := requirePositive("range size", rangeSize); err != nil {
		return nil, err
	}

	out := []models.RangeBar{}
	if len(series) <= 1 {
		return out, nil
	}

	s := rangeScan{size: rangeSize}
	for _, bar := range series {
		out = s.step(bar, out)
	}
	return out, nil
}
