package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/b3charts/internal/domain/models"
	pq "github.com/lib/pq"
)

// BarsRepository defines contract for daily bar persistence.
type BarsRepository interface {
	ReplaceBarsForDate(date time.Time, bars []models.DailyBar) error
	UpsertBars(ctx context.Context, ticker string, bars []models.Bar) error
	GetBars(ctx context.Context, ticker string, start, end *time.Time) ([]models.Bar, error)
	HasIngestionForDate(date time.Time) (bool, error)
	UpsertIngestionLog(date time.Time, filename string, rowCount int) error
}

type barsRepository struct {
	db *sql.DB
}

func NewBarsRepository(db *sql.DB) BarsRepository {
	return &barsRepository{db: db}
}

// ReplaceBarsForDate swaps every bar stored for date with bars in a single transaction:
// the day is deleted and bars are loaded with COPY. On failure the day is left as it was.
func (r *barsRepository) ReplaceBarsForDate(date time.Time, bars []models.DailyBar) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec(`DELETE FROM daily_bars WHERE trade_date = $1`, date); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete %s: %w", date.Format("2006-01-02"), err)
	}
	if err := copyBars(tx, bars); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("copy %d bars: %w", len(bars), err)
	}

	return tx.Commit()
}

// copyBars bulk-loads bars with COPY inside tx. COPY does not resolve conflicts.
func copyBars(tx *sql.Tx, bars []models.DailyBar) error {
	stmt, err := tx.Prepare(pq.CopyIn(
		"daily_bars",
		"ticker",
		"trade_date",
		"open_price",
		"high_price",
		"low_price",
		"close_price",
		"volume",
	))
	if err != nil {
		return err
	}

	for _, b := range bars {
		if _, err := stmt.Exec(
			b.Ticker,
			b.Date,
			b.Open,
			b.High,
			b.Low,
			b.Close,
			b.Volume,
		); err != nil {
			_ = stmt.Close()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		return err
	}
	return stmt.Close()
}

const upsertBarSQL = `
		INSERT INTO daily_bars (ticker, trade_date, open_price, high_price, low_price, close_price, volume)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (ticker, trade_date)
		DO UPDATE SET open_price = EXCLUDED.open_price,
		              high_price = EXCLUDED.high_price,
		              low_price = EXCLUDED.low_price,
		              close_price = EXCLUDED.close_price,
		              volume = EXCLUDED.volume,
		              updated_at = NOW()`

// UpsertBars stores a fetched series, replacing any bar already stored for the same day.
func (r *barsRepository) UpsertBars(ctx context.Context, ticker string, bars []models.Bar) error {
	if len(bars) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, upsertBarSQL)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, b := range bars {
		if _, err := stmt.ExecContext(ctx, ticker, b.Date, b.Open, b.High, b.Low, b.Close, b.Volume); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("upsert %s %s: %w", ticker, b.Date.Format("2006-01-02"), err)
		}
	}

	return tx.Commit()
}

// GetBars returns the stored bars of ticker in trade_date order, optionally bounded
// (inclusive) by start and end. Index is the bar's position in the returned slice.
func (r *barsRepository) GetBars(ctx context.Context, ticker string, start, end *time.Time) ([]models.Bar, error) {
	conditions := []string{"ticker = $1"}
	args := []interface{}{ticker}
	if start != nil {
		args = append(args, *start)
		conditions = append(conditions, fmt.Sprintf("trade_date >= $%d", len(args)))
	}
	if end != nil {
		args = append(args, *end)
		conditions = append(conditions, fmt.Sprintf("trade_date <= $%d", len(args)))
	}

	query := fmt.Sprintf(`
		SELECT trade_date, open_price, high_price, low_price, close_price, volume
		FROM daily_bars
		WHERE %s
		ORDER BY trade_date`, strings.Join(conditions, " AND "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var bars []models.Bar
	for rows.Next() {
		var b models.Bar
		if err := rows.Scan(&b.Date, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			return nil, err
		}
		bars = append(bars, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return models.Reindex(bars), nil
}

// HasIngestionForDate checks if an ingestion was already recorded for a given business day.
func (r *barsRepository) HasIngestionForDate(date time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM ingestion_log WHERE file_date = $1)`, date).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertIngestionLog records (or updates) an ingestion entry for a given day.
// rowCount is the number of bars the file produced.
func (r *barsRepository) UpsertIngestionLog(date time.Time, filename string, rowCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO ingestion_log (file_date, filename, row_count)
		VALUES ($1, $2, $3)
		ON CONFLICT (file_date)
		DO UPDATE SET filename = EXCLUDED.filename,
		              row_count = EXCLUDED.row_count,
		              ingested_at = NOW()`, date, filename, rowCount)
	return err
}
