package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/guttosm/b3charts/internal/chart"
	"github.com/guttosm/b3charts/internal/service"
)

// autoBrickSize is the brick_size value that asks for an ATR-derived size.
const autoBrickSize = "auto"

// decimalQuery reads an optional decimal query parameter. Both "2.5" and "2,5" are accepted.
func decimalQuery(c *gin.Context, name string, def decimal.Decimal) (decimal.Decimal, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	v, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s=%q is not a number", chart.ErrInvalidParameter, name, raw)
	}
	return v, nil
}

// brickSize resolves brick_size, deriving it from the series when it is "auto".
func brickSize(ctx context.Context, c *gin.Context, svc service.ChartService, ticker, period string) (decimal.Decimal, error) {
	if strings.EqualFold(strings.TrimSpace(c.Query("brick_size")), autoBrickSize) {
		return svc.AutoBrickSize(ctx, ticker, period)
	}
	return decimalQuery(c, "brick_size", svc.Defaults().BrickSize)
}

// chartParams reads the full parameter set, falling back to the service defaults.
func chartParams(ctx context.Context, c *gin.Context, svc service.ChartService, ticker, period string) (chart.Params, error) {
	def := svc.Defaults()
	var (
		p   chart.Params
		err error
	)
	if p.BrickSize, err = brickSize(ctx, c, svc, ticker, period); err != nil {
		return p, err
	}
	if p.Reversal, err = decimalQuery(c, "reversal", def.Reversal); err != nil {
		return p, err
	}
	if p.BoxSize, err = decimalQuery(c, "box_size", def.BoxSize); err != nil {
		return p, err
	}
	if p.ReversalSize, err = decimalQuery(c, "reversal_size", def.ReversalSize); err != nil {
		return p, err
	}
	if p.RangeSize, err = decimalQuery(c, "range_size", def.RangeSize); err != nil {
		return p, err
	}
	return p, nil
}
