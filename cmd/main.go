package main

//
//  @title           b3charts API
//  @version         1.0
//  @description     Renko, Kagi, Point & Figure and range bar charts for B3 tickers.
//  @termsOfService  https://github.com/guttosm/b3charts
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/b3charts
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        bars
//  @tag.description Daily OHLC series
//
//  @tag.name        charts
//  @tag.description Alternative price charts built from a series
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guttosm/b3charts/config"
	_ "github.com/guttosm/b3charts/docs" // swagger docs
	"github.com/guttosm/b3charts/internal/logger"
)

// newRootCmd builds the b3charts command tree.
//
// Commands:
//   - serve:  starts the REST API and the chart stream.
//   - ingest: loads the last business days of B3 trade files into daily bars.
//   - chart:  prints one or all charts of a ticker in the terminal.
//   - export: writes a series and its charts to a Parquet file.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "b3charts",
		Short:         "Alternative price charts for B3 tickers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// Load configuration from environment or .env file
			config.LoadConfig()

			// the CLI keeps stdout for chart output
			out := os.Stdout
			if cmd.Name() != "serve" {
				out = os.Stderr
			}
			logger.Configure(config.AppConfig.Log.Level, config.AppConfig.Log.Pretty, out)
		},
	}

	root.AddCommand(
		newServeCmd(),
		newIngestCmd(),
		newChartCmd(),
		newExportCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
