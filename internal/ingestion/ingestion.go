package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/b3charts/internal/domain/models"
	"github.com/guttosm/b3charts/internal/logger"
	"github.com/guttosm/b3charts/internal/storage"
)

const (
	fileDateLayout = "02-01-2006" // DD-MM-YYYY
	fileSuffix     = "_NEGOCIOSAVISTA.txt"
	maxDays        = 7
)

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.BarsRepository {
	return storage.NewBarsRepository(db)
}

// ProcessDirectory loads the trade files of the last nDays Brazilian business days
// from dir and stores one daily bar per instrument and day.
//
// Behavior:
//   - Expects exactly one file per business day named "DD-MM-YYYY_NEGOCIOSAVISTA.txt".
//   - nDays and parallel are clamped to 1..7; parallel <= 0 means min(7, NumCPU).
//   - Days already in the ingestion log are skipped unless force is set.
//   - A processed day is deleted first so bars written by the live feed are replaced.
//   - The first failing file cancels the rest and its error is returned.
func ProcessDirectory(ctx context.Context, dir string, db *sql.DB, nDays int, parallel int, force bool) error {
	repo := repoCtor(db)

	nDays = clamp(nDays, 1, maxDays)
	dates := LastNBusinessDays(nDays, time.Now())

	var files, missing []string
	for _, d := range dates {
		name := d.Format(fileDateLayout) + fileSuffix
		full := filepath.Join(dir, name)
		files = append(files, full)

		if _, err := os.Stat(full); err != nil {
			if !os.IsNotExist(err) {
				return fmt.Errorf("stat failed for %s: %w", full, err)
			}
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required files: %s", strings.Join(missing, ", "))
	}

	maxParallel := clamp(runtime.NumCPU(), 1, maxDays)
	if parallel > 0 {
		maxParallel = clamp(parallel, 1, maxDays)
	}

	logger.L().Info().
		Int("files", len(files)).
		Str("dir", dir).
		Int("max_parallel", maxParallel).
		Bool("force", force).
		Msg("ingestion start")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for i, file := range files {
		idx, f := i, file
		g.Go(func() error {
			return ingestFile(gctx, repo, f, idx, len(files), force)
		})
	}

	return g.Wait()
}

func ingestFile(ctx context.Context, repo storage.BarsRepository, path string, idx, total int, force bool) error {
	start := time.Now()
	base := filepath.Base(path)
	log := logger.L().With().Int("idx", idx+1).Int("total", total).Str("file", base).Logger()

	d, err := time.Parse(fileDateLayout, strings.TrimSuffix(base, fileSuffix))
	if err != nil {
		log.Error().Err(err).Msg("invalid date in filename")
		return fmt.Errorf("file %s: parse date from filename: %w", path, err)
	}

	exists, err := repo.HasIngestionForDate(d)
	if err != nil {
		log.Error().Err(err).Msg("check ingestion log failed")
		return fmt.Errorf("file %s: check ingestion log: %w", path, err)
	}
	if exists && !force {
		log.Info().Bool("skipped", true).Msg("already ingested")
		return nil
	}

	bars, trades, err := foldFile(ctx, path, d)
	if err != nil {
		log.Error().Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
		return fmt.Errorf("file %s: %w", path, err)
	}

	if err := repo.ReplaceBarsForDate(d, bars); err != nil {
		log.Error().Err(err).Msg("replace bars failed")
		return fmt.Errorf("file %s: replace bars: %w", path, err)
	}

	if err := repo.UpsertIngestionLog(d, base, len(bars)); err != nil {
		log.Error().Err(err).Msg("update ingestion log failed")
		return fmt.Errorf("file %s: upsert ingestion log: %w", path, err)
	}

	log.Info().
		Int("trades", trades).
		Int("bars", len(bars)).
		Dur("elapsed", time.Since(start)).
		Msg("file done")
	return nil
}

// foldFile parses one trade file into daily bars for day.
func foldFile(ctx context.Context, path string, day time.Time) ([]models.DailyBar, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	folder := newDayFolder(day)
	n, err := readTrades(ctx, f, folder.add)
	if err != nil {
		return nil, n, err
	}
	return folder.result(), n, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
