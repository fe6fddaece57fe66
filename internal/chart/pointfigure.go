package chart

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/b3charts/internal/domain/models"
)

var half = decimal.New(5, -1)

// roundHalfUp rounds to the nearest integer, ties towards +Inf.
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

// pfScan holds the Point & Figure state. dir is 0 until the first move away from the
// starting reference, then +1 for an X column and -1 for an O column.
type pfScan struct {
	box       decimal.Decimal
	threshold decimal.Decimal
	column    int
	dir       int
	ref       decimal.Decimal
}

func (s *pfScan) step(bar models.Bar, out []models.PointFigureMark) []models.PointFigureMark {
	p := roundHalfUp(bar.Close)

	if s.dir == 0 {
		if p.Equal(s.ref) {
			return out
		}
		s.dir = 1
		if p.LessThan(s.ref) {
			s.dir = -1
		}
		s.column++
	}

	switch {
	case s.dir > 0 && p.GreaterThanOrEqual(s.ref.Add(s.box)):
		for p.GreaterThanOrEqual(s.ref.Add(s.box)) {
			s.ref = s.ref.Add(s.box)
			out = append(out, models.PointFigureMark{Column: s.column, Price: s.ref, Type: models.MarkX})
		}
	case s.dir < 0 && p.LessThanOrEqual(s.ref.Sub(s.box)):
		for p.LessThanOrEqual(s.ref.Sub(s.box)) {
			s.ref = s.ref.Sub(s.box)
			out = append(out, models.PointFigureMark{Column: s.column, Price: s.ref, Type: models.MarkO})
		}
	case s.dir > 0 && p.LessThanOrEqual(s.ref.Sub(s.threshold)),
		s.dir < 0 && p.GreaterThanOrEqual(s.ref.Add(s.threshold)):
		// The reference jumps to the reversal price itself, not to a box boundary.
		s.dir = -s.dir
		s.column++
		s.ref = p
	}
	return out
}

// PointFigure builds X/O columns from the rounded closes of series. A column extends by
// one mark per box crossed; a move of boxSize*reversalSize against the column opens the
// next one.
func PointFigure(series []models.Bar, boxSize, reversalSize decimal.Decimal) ([]models.PointFigureMark, error) {
	if err := requirePositive("box size", boxSize); err != nil {
		return nil, err
	}
	if err := requirePositive("reversal size", reversalSize); err != nil {
		return nil, err
	}

	out := []models.PointFigureMark{}
	if len(series) <= 1 {
		return out, nil
	}

	s := pfScan{
		box:       boxSize,
		threshold: boxSize.Mul(reversalSize),
		ref:       roundHalfUp(series[0].Close),
	}
	for _, bar := range series[1:] {
		out = s.step(bar, out)
	}
	return out, nil
}
