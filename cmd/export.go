package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/guttosm/b3charts/config"
	"github.com/guttosm/b3charts/internal/chart"
	"github.com/guttosm/b3charts/internal/export"
	"github.com/guttosm/b3charts/internal/logger"
	"github.com/guttosm/b3charts/internal/service"
)

func newExportCmd() *cobra.Command {
	var out, period string

	cmd := &cobra.Command{
		Use:   "export TICKER",
		Short: "Write a series and its full charts to a Parquet file",
		Long: `Fetches the series of TICKER, builds the four charts with the configured default
parameters and writes every bar and chart item as one row of a Parquet file.
The kind column tells rows apart: bar, renko, kagi, point_figure or range_bar.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := serviceCtor(config.AppConfig)
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := exportSeries(cmd.Context(), svc, args[0], period, out)
			if err != nil {
				return err
			}
			logger.L().Info().Str("file", out).Int("rows", n).Msg("export written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file")
	cmd.Flags().StringVarP(&period, "periodo", "p", "", "Series period (default 3mo)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// exportSeries writes the untruncated charts of ticker to path and returns the row count.
func exportSeries(ctx context.Context, svc service.ChartService, ticker, period, path string) (int, error) {
	series, err := svc.Series(ctx, ticker, period)
	if err != nil {
		return 0, err
	}
	set, err := chart.Build(series.Items, svc.Defaults())
	if err != nil {
		return 0, err
	}
	rows := export.Rows(series.Ticker, series.Period, series.Items, set)
	if err := export.WriteFile(path, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}
