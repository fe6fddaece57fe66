package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/b3charts/internal/chart"
	"github.com/guttosm/b3charts/internal/feed"
	"github.com/guttosm/b3charts/internal/middleware"
	"github.com/guttosm/b3charts/internal/service"
)

// errorStatus maps service errors to an HTTP status and a client-facing message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, feed.ErrInvalidTicker),
		errors.Is(err, feed.ErrInvalidPeriod),
		errors.Is(err, chart.ErrInvalidParameter),
		errors.Is(err, chart.ErrInsufficientData):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, feed.ErrTickerNotFound),
		errors.Is(err, service.ErrNoData):
		return http.StatusNotFound, "no data found"
	case errors.Is(err, service.ErrUpstream):
		return http.StatusBadGateway, "market data source unavailable"
	default:
		return http.StatusInternalServerError, "failed to build chart"
	}
}

func respondError(c *gin.Context, err error) {
	status, msg := errorStatus(err)
	middleware.AbortWithError(c, status, msg, err)
}
