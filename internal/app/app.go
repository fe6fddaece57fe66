package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/b3charts/config"
	"github.com/guttosm/b3charts/internal/api"
	"github.com/guttosm/b3charts/internal/cache"
	"github.com/guttosm/b3charts/internal/chart"
	"github.com/guttosm/b3charts/internal/feed"
	"github.com/guttosm/b3charts/internal/logger"
	"github.com/guttosm/b3charts/internal/service"
	"github.com/guttosm/b3charts/internal/storage"
)

// NewFeed returns the market data source selected by cfg.Feed.Provider.
func NewFeed(cfg config.Config) (feed.Source, error) {
	switch cfg.Feed.Provider {
	case config.ProviderBackend, "":
		if cfg.Feed.BaseURL == "" {
			return nil, fmt.Errorf("feed provider %q needs FEED_BASE_URL", config.ProviderBackend)
		}
		return feed.NewBackendSource(cfg.Feed.BaseURL, cfg.Feed.Timeout), nil
	case config.ProviderYahoo:
		return feed.NewYahooSource(), nil
	default:
		return nil, fmt.Errorf("unknown feed provider %q", cfg.Feed.Provider)
	}
}

// NewChartService wires the feed, the optional repository and a series cache into a
// ChartService configured from cfg.Chart.
func NewChartService(cfg config.Config, src feed.Source, repo storage.BarsRepository, c *cache.SeriesCache) service.ChartService {
	if c == nil {
		c = cache.New(cfg.Chart.CacheTTL)
	}
	return service.NewChartService(src, repo, c, service.Options{
		Source: cfg.Chart.Source,
		Defaults: chart.Params{
			BrickSize:    cfg.Chart.BrickSize,
			Reversal:     cfg.Chart.Reversal,
			BoxSize:      cfg.Chart.BoxSize,
			ReversalSize: cfg.Chart.ReversalSize,
			RangeSize:    cfg.Chart.RangeSize,
		},
	})
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the repository layer (BarsRepository).
//   - Selects the market data feed and builds the chart service around a series cache.
//   - Configures the Gin router with the REST routes and the chart stream.
//   - Registers health and readiness probes.
//   - Starts the cache janitor and provides a cleanup function that stops it and closes the DB.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	src, err := NewFeed(cfg)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	repo := storage.NewBarsRepository(db)
	series := cache.New(cfg.Chart.CacheTTL)
	svc := NewChartService(cfg, src, repo, series)

	router := api.NewRouter(
		api.NewHandler(svc),
		api.NewStreamHandler(svc, cfg.Server.RequestTimeout),
		api.RouterOptions{
			RateLimit:      cfg.Server.RateLimit,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
	)

	api.NewHealthHandler(map[string]api.Check{
		"postgres": db.PingContext,
	}).Register(router)

	ctx, stop := context.WithCancel(context.Background())
	go purgeLoop(ctx, series, cfg.Chart.CacheTTL)

	cleanup := func() {
		stop()
		_ = db.Close()
	}

	return router, cleanup, nil
}

// purgeLoop drops expired series every ttl until ctx is done.
func purgeLoop(ctx context.Context, c *cache.SeriesCache, ttl time.Duration) {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	t := time.NewTicker(ttl)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := c.Purge(); n > 0 {
				logger.L().Debug().Int("purged", n).Msg("series cache purged")
			}
		}
	}
}
