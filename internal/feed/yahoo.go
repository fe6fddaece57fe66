package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"github.com/guttosm/b3charts/internal/domain/models"
)

// barIterator is the part of *chart.Iter used by YahooSource.
type barIterator interface {
	Next() bool
	Bar() *finance.ChartBar
	Err() error
}

// chartGet is swapped in tests.
var chartGet = func(p *chart.Params) barIterator {
	return chart.Get(p)
}

// YahooSource reads daily bars from Yahoo Finance, where B3 symbols carry a ".SA" suffix.
type YahooSource struct {
	now func() time.Time
}

// NewYahooSource returns a YahooSource.
func NewYahooSource() *YahooSource {
	return &YahooSource{now: time.Now}
}

// FetchBars implements Source. Bars without a close are skipped.
func (s *YahooSource) FetchBars(ctx context.Context, ticker, period string) ([]models.Bar, error) {
	end := s.now().UTC()
	start := PeriodStart(period, end)

	iter := chartGet(&chart.Params{
		Symbol:   ticker + ".SA",
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	})

	var out []models.Bar
	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b := iter.Bar()
		if b == nil || b.Close.IsZero() {
			continue
		}
		y, m, d := time.Unix(int64(b.Timestamp), 0).In(saoPaulo).Date()
		out = append(out, models.Bar{
			Date:   time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: int64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("yahoo chart %s: %w", ticker, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTickerNotFound, ticker)
	}

	return models.Reindex(out), nil
}

var saoPaulo = func() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		return time.FixedZone("BRT", -3*60*60)
	}
	return loc
}()
