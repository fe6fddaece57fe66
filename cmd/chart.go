package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guttosm/b3charts/config"
	"github.com/guttosm/b3charts/internal/app"
	"github.com/guttosm/b3charts/internal/chart"
	"github.com/guttosm/b3charts/internal/render"
	"github.com/guttosm/b3charts/internal/service"
	"github.com/guttosm/b3charts/internal/storage"
)

// Chart types accepted by --type.
const (
	typeRenko       = "renko"
	typeKagi        = "kagi"
	typePointFigure = "pf"
	typeRangeBars   = "range"
	typeAll         = "all"
)

// newChartService builds the chart service the CLI commands share. Postgres is
// opened only when series are read from the store.
func newChartService(cfg config.Config) (service.ChartService, func(), error) {
	src, err := app.NewFeed(cfg)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Chart.Source != service.SourceStore {
		return app.NewChartService(cfg, src, nil, nil), func() {}, nil
	}

	db, err := app.InitPostgres(cfg)
	if err != nil {
		return nil, nil, err
	}
	svc := app.NewChartService(cfg, src, storage.NewBarsRepository(db), nil)
	return svc, func() { _ = db.Close() }, nil
}

// serviceCtor is an indirection for tests.
var serviceCtor = newChartService

func newChartCmd() *cobra.Command {
	var kind, period string

	cmd := &cobra.Command{
		Use:   "chart TICKER",
		Short: "Print a chart of a ticker in the terminal",
		Long: `Builds a chart with the configured default parameters and prints its display window.
Types: renko, kagi, pf (Point & Figure), range (range bars) or all.
Example: b3charts chart PETR4 --type renko --periodo 6mo`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := serviceCtor(config.AppConfig)
			if err != nil {
				return err
			}
			defer cleanup()
			return printChart(cmd.Context(), cmd.OutOrStdout(), svc, args[0], period, kind)
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", typeAll, "Chart type: renko, kagi, pf, range or all")
	cmd.Flags().StringVarP(&period, "periodo", "p", "", "Series period (1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, max)")
	return cmd
}

func printChart(ctx context.Context, w io.Writer, svc service.ChartService, ticker, period, kind string) error {
	def := svc.Defaults()

	var out []string
	switch strings.ToLower(kind) {
	case typeRenko:
		res, err := svc.Renko(ctx, ticker, period, def.BrickSize)
		if err != nil {
			return err
		}
		out = append(out, render.Title(res.Ticker, res.Period, "renko", len(res.Items), res.Total), render.Renko(res.Items))
	case typeKagi:
		res, err := svc.Kagi(ctx, ticker, period, def.Reversal)
		if err != nil {
			return err
		}
		out = append(out, render.Title(res.Ticker, res.Period, "kagi", len(res.Items), res.Total), render.Kagi(res.Items))
	case typePointFigure:
		res, err := svc.PointFigure(ctx, ticker, period, def.BoxSize, def.ReversalSize)
		if err != nil {
			return err
		}
		out = append(out, render.Title(res.Ticker, res.Period, "point & figure", len(res.Items), res.Total), render.PointFigure(res.Items))
	case typeRangeBars:
		res, err := svc.RangeBars(ctx, ticker, period, def.RangeSize)
		if err != nil {
			return err
		}
		out = append(out, render.Title(res.Ticker, res.Period, "range bars", len(res.Items), res.Total), render.RangeBars(res.Items))
	case typeAll:
		res, err := svc.All(ctx, ticker, period, def)
		if err != nil {
			return err
		}
		c := res.Charts
		out = append(out,
			render.Title(res.Ticker, res.Period, "renko", len(c.Renko), res.Totals.Renko), render.Renko(c.Renko),
			render.Title(res.Ticker, res.Period, "kagi", len(c.Kagi), res.Totals.Kagi), render.Kagi(c.Kagi),
			render.Title(res.Ticker, res.Period, "point & figure", len(c.PointFigure), res.Totals.PointFigure), render.PointFigure(c.PointFigure),
			render.Title(res.Ticker, res.Period, "range bars", len(c.RangeBars), res.Totals.RangeBars), render.RangeBars(c.RangeBars),
		)
	default:
		return fmt.Errorf("%w: unknown chart type %q", chart.ErrInvalidParameter, kind)
	}

	for i := 0; i < len(out); i += 2 {
		if _, err := fmt.Fprintf(w, "%s\n%s\n\n", out[i], out[i+1]); err != nil {
			return err
		}
	}
	return nil
}
