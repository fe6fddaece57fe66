package chart

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/b3charts/internal/domain/models"
)

// renkoScan carries the running reference price between bars.
type renkoScan struct {
	size decimal.Decimal
	ref  decimal.Decimal
}

// step emits floor(|close-ref| / size) bricks in the direction of the move and
// advances the reference by one brick per emission.
func (s *renkoScan) step(bar models.Bar, out []models.RenkoBrick) []models.RenkoBrick {
	diff := bar.Close.Sub(s.ref)
	dist := diff.Abs()
	if dist.LessThan(s.size) {
		return out
	}

	n := dist.Div(s.size).Floor().IntPart()
	dir, delta := models.Up, s.size
	if diff.IsNegative() {
		dir, delta = models.Down, s.size.Neg()
	}

	for i := int64(0); i < n; i++ {
		s.ref = s.ref.Add(delta)
		brick := models.RenkoBrick{Index: bar.Index, Price: s.ref, Direction: dir}
		if dir == models.Up {
			brick.Low, brick.High = s.ref.Sub(s.size), s.ref
		} else {
			brick.Low, brick.High = s.ref, s.ref.Add(s.size)
		}
		out = append(out, brick)
	}
	return out
}

// Renko aggregates the closes of series into bricks of height brickSize.
//
// The reference starts at the first close. A bar whose close is less than one brick
// away from the reference contributes nothing; its move still counts towards later
// bars because the reference only advances when bricks are emitted.
func Renko(series []models.Bar, brickSize decimal.Decimal) ([]models.RenkoBrick, error) {
	if err := requirePositive("brick size", brickSize); err != nil {
		return nil, err
	}

	out := []models.RenkoBrick{}
	if len(series) <= 1 {
		return out, nil
	}

	s := renkoScan{size: brickSize, ref: series[0].Close}
	for _, bar := range series[1:] {
		out = s.step(bar, out)
	}
	return out, nil
}
