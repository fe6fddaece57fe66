package main

import (
	"github.com/spf13/cobra"

	"github.com/guttosm/b3charts/config"
	"github.com/guttosm/b3charts/internal/app"
	"github.com/guttosm/b3charts/internal/ingestion"
	"github.com/guttosm/b3charts/internal/logger"
)

func newIngestCmd() *cobra.Command {
	var (
		dir      string
		days     int
		parallel int
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Fold B3 trade files of the last business days into daily bars",
		Long: `Reads one DD-MM-YYYY_NEGOCIOSAVISTA.txt file per business day from --dir,
folds its trades into one OHLC bar per instrument and stores the bars in Postgres.
Days already ingested are skipped unless --force is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.L().Info().Msg("running ingestion")

			db, err := app.InitPostgres(config.AppConfig)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if err := ingestion.ProcessDirectory(cmd.Context(), dir, db, days, parallel, force); err != nil {
				return err
			}
			logger.L().Info().Msg("ingestion completed successfully")
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "./data/input", "Directory with the trade files")
	cmd.Flags().IntVar(&days, "days", 7, "Number of last business days to ingest (1-7)")
	cmd.Flags().IntVar(&parallel, "parallel", 0, "Files processed concurrently (0 = up to the CPU count, max 7)")
	cmd.Flags().BoolVar(&force, "force", false, "Reload days that were already ingested")
	return cmd
}
