package chart

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/b3charts/internal/domain/models"
)

// kagiScan is the two-state Kagi machine. high is only meaningful while trending up,
// low only while trending down.
type kagiScan struct {
	reversal decimal.Decimal
	trend    models.Direction
	high     decimal.Decimal
	low      decimal.Decimal
}

func (s *kagiScan) step(bar models.Bar, out []models.KagiSegment) []models.KagiSegment {
	p := bar.Close

	switch s.trend {
	case models.Up:
		if p.GreaterThan(s.high) {
			s.high = p
			return append(out, models.KagiSegment{Index: bar.Index, Price: p, Trend: models.Up})
		}
		if p.LessThan(s.high.Sub(s.reversal)) {
			s.trend, s.low = models.Down, p
			return append(out, models.KagiSegment{Index: bar.Index, Price: p, Trend: models.Down})
		}
	case models.Down:
		if p.LessThan(s.low) {
			s.low = p
			return append(out, models.KagiSegment{Index: bar.Index, Price: p, Trend: models.Down})
		}
		if p.GreaterThan(s.low.Add(s.reversal)) {
			s.trend, s.high = models.Up, p
			return append(out, models.KagiSegment{Index: bar.Index, Price: p, Trend: models.Up})
		}
	}
	return out
}

// Kagi emits a segment whenever the close makes a new extreme in the current trend or
// moves more than reversal against it. The machine starts trending up with both
// extremes at the first close.
func Kagi(series []models.Bar, reversal decimal.Decimal) ([]models.KagiSegment, error) {
	if err := requirePositive("reversal amount", reversal); err != nil {
		return nil, err
	}

	out := []models.KagiSegment{}
	if len(series) <= 1 {
		return out, nil
	}

	first := series[0].Close
	s := kagiScan{reversal: reversal, trend: models.Up, high: first, low: first}
	for _, bar := range series[1:] {
		out = s.step(bar, out)
	}
	return out, nil
}
