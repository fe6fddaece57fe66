package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/b3charts/internal/middleware"
)

// DefaultRequestTimeout bounds every REST request, feed round trips included.
const DefaultRequestTimeout = 10 * time.Second

// RouterOptions tunes NewRouter. Zero values fall back to the defaults.
type RouterOptions struct {
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
}

// NewRouter creates a Gin engine with every route configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, RateLimiter).
//   - Bounds REST requests with a timeout; the chart stream manages its own lifetime.
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1).
//
// Health and readiness endpoints are registered by the caller through HealthHandler.
func NewRouter(handler *Handler, stream *StreamHandler, opts RouterOptions) *gin.Engine {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}

	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(opts.RateLimit, opts.RateWindow),
	)

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	if stream != nil {
		v1.GET("/charts/:ticker/stream", stream.Serve)
	}

	rest := v1.Group("", withTimeout(opts.RequestTimeout))
	{
		rest.GET("/bars/:ticker", handler.GetBars)
		rest.GET("/charts/:ticker", handler.GetCharts)
		rest.GET("/charts/:ticker/renko", handler.GetRenko)
		rest.GET("/charts/:ticker/kagi", handler.GetKagi)
		rest.GET("/charts/:ticker/point-figure", handler.GetPointFigure)
		rest.GET("/charts/:ticker/range-bars", handler.GetRangeBars)
	}

	return router
}

func withTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
