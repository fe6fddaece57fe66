// Package feed fetches OHLC series for B3 tickers from external market data sources.
package feed

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/guttosm/b3charts/internal/domain/models"
)

var (
	ErrTickerNotFound = errors.New("ticker not found")
	ErrInvalidTicker  = errors.New("invalid ticker")
	ErrInvalidPeriod  = errors.New("invalid period")
)

// DefaultPeriod is the window the alternative charts are drawn over.
const DefaultPeriod = "3mo"

// Source returns the daily bars of ticker over period, oldest first, with Index set to
// each bar's position.
type Source interface {
	FetchBars(ctx context.Context, ticker, period string) ([]models.Bar, error)
}

// periods mirrors the values accepted by the dashboard backend.
var periods = map[string]func(time.Time) time.Time{
	"1d":  func(t time.Time) time.Time { return t.AddDate(0, 0, -1) },
	"5d":  func(t time.Time) time.Time { return t.AddDate(0, 0, -5) },
	"1mo": func(t time.Time) time.Time { return t.AddDate(0, -1, 0) },
	"3mo": func(t time.Time) time.Time { return t.AddDate(0, -3, 0) },
	"6mo": func(t time.Time) time.Time { return t.AddDate(0, -6, 0) },
	"1y":  func(t time.Time) time.Time { return t.AddDate(-1, 0, 0) },
	"2y":  func(t time.Time) time.Time { return t.AddDate(-2, 0, 0) },
	"5y":  func(t time.Time) time.Time { return t.AddDate(-5, 0, 0) },
	"max": func(time.Time) time.Time { return time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC) },
}

// ValidPeriod normalizes period, defaulting an empty value to DefaultPeriod.
func ValidPeriod(period string) (string, error) {
	p := strings.ToLower(strings.TrimSpace(period))
	if p == "" {
		return DefaultPeriod, nil
	}
	if _, ok := periods[p]; !ok {
		return "", fmt.Errorf("%w: %q (expected one of 1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, max)", ErrInvalidPeriod, period)
	}
	return p, nil
}

// PeriodStart returns the first date (UTC midnight) covered by period when looking back
// from now. period must already be valid.
func PeriodStart(period string, now time.Time) time.Time {
	back, ok := periods[period]
	if !ok {
		back = periods[DefaultPeriod]
	}
	y, m, d := back(now.UTC()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var tickerPattern = regexp.MustCompile(`^[A-Z0-9]{4,12}$`)

// NormalizeTicker upper-cases ticker and strips a Yahoo ".SA" suffix.
func NormalizeTicker(ticker string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	t = strings.TrimSuffix(t, ".SA")
	if !tickerPattern.MatchString(t) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTicker, ticker)
	}
	return t, nil
}
