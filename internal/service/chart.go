package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/b3charts/internal/cache"
	"github.com/guttosm/b3charts/internal/chart"
	"github.com/guttosm/b3charts/internal/domain/models"
	"github.com/guttosm/b3charts/internal/feed"
	"github.com/guttosm/b3charts/internal/logger"
	"github.com/guttosm/b3charts/internal/storage"
)

var (
	// ErrNoData means the source answered but had no bars for the ticker and period.
	ErrNoData = errors.New("no data for ticker")
	// ErrUpstream wraps failures of the external market data source.
	ErrUpstream = errors.New("market data source unavailable")
)

// Where Series reads bars from.
const (
	SourceFeed  = "feed"
	SourceStore = "store"
)

// Result is one chart output for a ticker: Total is the length of the full output,
// Items its trailing display window.
type Result[T any] struct {
	Ticker string
	Period string
	Total  int
	Items  []T
}

// Totals are the full output lengths of a chart set.
type Totals struct {
	Renko       int
	Kagi        int
	PointFigure int
	RangeBars   int
}

// ChartSetResult is the four charts of one series, each truncated to its window.
type ChartSetResult struct {
	Ticker string
	Period string
	Params chart.Params
	Totals Totals
	Charts models.ChartSet
}

// ChartService turns a ticker and period into alternative charts.
type ChartService interface {
	Series(ctx context.Context, ticker, period string) (Result[models.Bar], error)
	Renko(ctx context.Context, ticker, period string, brickSize decimal.Decimal) (Result[models.RenkoBrick], error)
	AutoBrickSize(ctx context.Context, ticker, period string) (decimal.Decimal, error)
	Kagi(ctx context.Context, ticker, period string, reversal decimal.Decimal) (Result[models.KagiSegment], error)
	PointFigure(ctx context.Context, ticker, period string, boxSize, reversalSize decimal.Decimal) (Result[models.PointFigureMark], error)
	RangeBars(ctx context.Context, ticker, period string, rangeSize decimal.Decimal) (Result[models.RangeBar], error)
	All(ctx context.Context, ticker, period string, p chart.Params) (ChartSetResult, error)
	Defaults() chart.Params
}

// Options configures a ChartService.
type Options struct {
	// Source is SourceFeed (default) or SourceStore.
	Source   string
	Defaults chart.Params
}

type chartService struct {
	feed     feed.Source
	repo     storage.BarsRepository
	cache    *cache.SeriesCache
	source   string
	defaults chart.Params
	now      func() time.Time
}

// NewChartService wires the service. repo may be nil when reading from the feed,
// in which case fetched series are not written through.
func NewChartService(src feed.Source, repo storage.BarsRepository, c *cache.SeriesCache, opts Options) ChartService {
	if c == nil {
		c = cache.New(cache.DefaultTTL)
	}
	if opts.Source == "" {
		opts.Source = SourceFeed
	}
	if opts.Defaults.ValidateSteps() != nil {
		opts.Defaults = chart.DefaultParams()
	}
	return &chartService{
		feed:     src,
		repo:     repo,
		cache:    c,
		source:   opts.Source,
		defaults: opts.Defaults,
		now:      time.Now,
	}
}

func (s *chartService) Defaults() chart.Params {
	return s.defaults
}

// Series returns the full series, normalized ticker and period included.
func (s *chartService) Series(ctx context.Context, ticker, period string) (Result[models.Bar], error) {
	ticker, period, bars, err := s.series(ctx, ticker, period)
	if err != nil {
		return Result[models.Bar]{}, err
	}
	return Result[models.Bar]{Ticker: ticker, Period: period, Total: len(bars), Items: bars}, nil
}

func (s *chartService) series(ctx context.Context, ticker, period string) (string, string, []models.Bar, error) {
	ticker, err := feed.NormalizeTicker(ticker)
	if err != nil {
		return "", "", nil, err
	}
	if period, err = feed.ValidPeriod(period); err != nil {
		return "", "", nil, err
	}

	if bars, ok := s.cache.Get(ticker, period); ok {
		return ticker, period, bars, nil
	}

	bars, err := s.load(ctx, ticker, period)
	if err != nil {
		return "", "", nil, err
	}
	if len(bars) == 0 {
		return "", "", nil, fmt.Errorf("%w: %s (%s)", ErrNoData, ticker, period)
	}

	s.cache.Set(ticker, period, bars)
	return ticker, period, bars, nil
}

func (s *chartService) load(ctx context.Context, ticker, period string) ([]models.Bar, error) {
	if s.source == SourceStore {
		if s.repo == nil {
			return nil, errors.New("store source configured without a repository")
		}
		start := feed.PeriodStart(period, s.now())
		return s.repo.GetBars(ctx, ticker, &start, nil)
	}

	bars, err := s.feed.FetchBars(ctx, ticker, period)
	if err != nil {
		if errors.Is(err, feed.ErrTickerNotFound) || ctx.Err() != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	if s.repo != nil && len(bars) > 0 {
		if err := s.repo.UpsertBars(ctx, ticker, bars); err != nil {
			logger.L().Warn().Err(err).Str("ticker", ticker).Int("bars", len(bars)).Msg("write-through to storage failed")
		}
	}
	return bars, nil
}

func (s *chartService) Renko(ctx context.Context, ticker, period string, brickSize decimal.Decimal) (Result[models.RenkoBrick], error) {
	if err := chart.RequirePriceStep("brick size", brickSize); err != nil {
		return Result[models.RenkoBrick]{}, err
	}
	return run(ctx, s, ticker, period, chart.RenkoWindow, func(bars []models.Bar) ([]models.RenkoBrick, error) {
		return chart.Renko(bars, brickSize)
	})
}

// AutoBrickSize derives a Renko brick size from the series' average true range.
func (s *chartService) AutoBrickSize(ctx context.Context, ticker, period string) (decimal.Decimal, error) {
	_, _, bars, err := s.series(ctx, ticker, period)
	if err != nil {
		return decimal.Zero, err
	}
	return chart.ATRBrickSize(bars, chart.DefaultATRPeriod)
}

func (s *chartService) Kagi(ctx context.Context, ticker, period string, reversal decimal.Decimal) (Result[models.KagiSegment], error) {
	return run(ctx, s, ticker, period, chart.KagiWindow, func(bars []models.Bar) ([]models.KagiSegment, error) {
		return chart.Kagi(bars, reversal)
	})
}

func (s *chartService) PointFigure(ctx context.Context, ticker, period string, boxSize, reversalSize decimal.Decimal) (Result[models.PointFigureMark], error) {
	if err := chart.RequirePriceStep("box size", boxSize); err != nil {
		return Result[models.PointFigureMark]{}, err
	}
	return run(ctx, s, ticker, period, chart.PointFigureWindow, func(bars []models.Bar) ([]models.PointFigureMark, error) {
		return chart.PointFigure(bars, boxSize, reversalSize)
	})
}

func (s *chartService) RangeBars(ctx context.Context, ticker, period string, rangeSize decimal.Decimal) (Result[models.RangeBar], error) {
	return run(ctx, s, ticker, period, chart.RangeBarsWindow, func(bars []models.Bar) ([]models.RangeBar, error) {
		return chart.RangeBars(bars, rangeSize)
	})
}

// run fetches the series, aggregates it and windows the output.
func run[T any](ctx context.Context, s *chartService, ticker, period string, window int, aggregate func([]models.Bar) ([]T, error)) (Result[T], error) {
	ticker, period, bars, err := s.series(ctx, ticker, period)
	if err != nil {
		return Result[T]{}, err
	}
	full, err := aggregate(bars)
	if err != nil {
		return Result[T]{}, err
	}
	return Result[T]{Ticker: ticker, Period: period, Total: len(full), Items: chart.Last(full, window)}, nil
}

// All builds the four charts of one series concurrently.
func (s *chartService) All(ctx context.Context, ticker, period string, p chart.Params) (ChartSetResult, error) {
	if err := p.ValidateSteps(); err != nil {
		return ChartSetResult{}, err
	}
	ticker, period, bars, err := s.series(ctx, ticker, period)
	if err != nil {
		return ChartSetResult{}, err
	}

	var full models.ChartSet
	var g errgroup.Group
	g.Go(func() (err error) {
		full.Renko, err = chart.Renko(bars, p.BrickSize)
		return err
	})
	g.Go(func() (err error) {
		full.Kagi, err = chart.Kagi(bars, p.Reversal)
		return err
	})
	g.Go(func() (err error) {
		full.PointFigure, err = chart.PointFigure(bars, p.BoxSize, p.ReversalSize)
		return err
	})
	g.Go(func() (err error) {
		full.RangeBars, err = chart.RangeBars(bars, p.RangeSize)
		return err
	})
	if err := g.Wait(); err != nil {
		return ChartSetResult{}, err
	}

	return ChartSetResult{
		Ticker: ticker,
		Period: period,
		Params: p,
		Totals: Totals{
			Renko:       len(full.Renko),
			Kagi:        len(full.Kagi),
			PointFigure: len(full.PointFigure),
			RangeBars:   len(full.RangeBars),
		},
		Charts: chart.Window(full),
	}, nil
}
