package chart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/guttosm/b3charts/internal/domain/models"
)

// Params bundles the scalar parameters of the four aggregators.
type Params struct {
	BrickSize    decimal.Decimal // Renko brick height
	Reversal     decimal.Decimal // Kagi reversal amount
	BoxSize      decimal.Decimal // Point & Figure box size
	ReversalSize decimal.Decimal // Point & Figure reversal, in boxes
	RangeSize    decimal.Decimal // range bar span
}

// DefaultParams returns the parameters the dashboard has always used.
func DefaultParams() Params {
	return Params{
		BrickSize:    decimal.NewFromInt(2),
		Reversal:     decimal.NewFromInt(3),
		BoxSize:      decimal.NewFromInt(1),
		ReversalSize: decimal.NewFromInt(3),
		RangeSize:    decimal.NewFromInt(2),
	}
}

// Validate reports the first non-positive parameter.
func (p Params) Validate() error {
	checks := []struct {
		name string
		v    decimal.Decimal
	}{
		{"brick size", p.BrickSize},
		{"reversal amount", p.Reversal},
		{"box size", p.BoxSize},
		{"reversal size", p.ReversalSize},
		{"range size", p.RangeSize},
	}
	for _, c := range checks {
		if err := requirePositive(c.name, c.v); err != nil {
			return err
		}
	}
	return nil
}

// MinPriceStep is the finest brick or box size accepted from callers: one B3 tick.
var MinPriceStep = decimal.New(1, -2)

// RequirePriceStep rejects a brick or box size finer than MinPriceStep. Renko and
// Point & Figure emit one item per step the close moves, so their output length is
// proportional to 1/v.
func RequirePriceStep(name string, v decimal.Decimal) error {
	if err := requirePositive(name, v); err != nil {
		return err
	}
	if v.LessThan(MinPriceStep) {
		return fmt.Errorf("%w: %s must be at least %s, got %s", ErrInvalidParameter, name, MinPriceStep.String(), v.String())
	}
	return nil
}

// ValidateSteps runs Validate and also holds BrickSize and BoxSize to MinPriceStep.
func (p Params) ValidateSteps() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := RequirePriceStep("brick size", p.BrickSize); err != nil {
		return err
	}
	return RequirePriceStep("box size", p.BoxSize)
}

// Build runs the four aggregators sequentially and returns their full outputs.
func Build(series []models.Bar, p Params) (models.ChartSet, error) {
	if err := p.Validate(); err != nil {
		return models.ChartSet{}, err
	}

	var (
		set models.ChartSet
		err error
	)
	if set.Renko, err = Renko(series, p.BrickSize); err != nil {
		return models.ChartSet{}, err
	}
	if set.Kagi, err = Kagi(series, p.Reversal); err != nil {
		return models.ChartSet{}, err
	}
	if set.PointFigure, err = PointFigure(series, p.BoxSize, p.ReversalSize); err != nil {
		return models.ChartSet{}, err
	}
	if set.RangeBars, err = RangeBars(series, p.RangeSize); err != nil {
		return models.ChartSet{}, err
	}
	return set, nil
}

// Window applies the default display windows to every output of set.
func Window(set models.ChartSet) models.ChartSet {
	return models.ChartSet{
		Renko:       Last(set.Renko, RenkoWindow),
		Kagi:        Last(set.Kagi, KagiWindow),
		PointFigure: Last(set.PointFigure, PointFigureWindow),
		RangeBars:   Last(set.RangeBars, RangeBarsWindow),
	}
}
