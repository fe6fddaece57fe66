package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/b3charts/internal/logger"
)

// RequestLogger logs one structured line per request once the handler chain returns.
//
// The level follows the status: 5xx logs at error, 4xx at warn, everything else at info.
// Errors attached with c.Error are included, as is the request id set by RequestID.
//
// Example log output:
//
//	{"level":"info","request_id":"123e4567-...","method":"GET","path":"/api/v1/charts/PETR4/renko","status":200,"latency_ms":15,...}
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		var ev *zerolog.Event
		switch {
		case status >= 500:
			ev = logger.L().Error()
		case status >= 400:
			ev = logger.L().Warn()
		default:
			ev = logger.L().Info()
		}
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", c.Errors.String())
		}

		ev.Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("route", c.FullPath()).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}
