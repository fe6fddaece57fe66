package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/guttosm/b3charts/internal/chart"
	"github.com/guttosm/b3charts/internal/domain/dto"
	"github.com/guttosm/b3charts/internal/logger"
	"github.com/guttosm/b3charts/internal/middleware"
	"github.com/guttosm/b3charts/internal/service"
)

const (
	DefaultStreamInterval = 30 * time.Second
	MinStreamInterval     = 5 * time.Second

	pingPeriod = 45 * time.Second
	pongWait   = 90 * time.Second
	writeWait  = 10 * time.Second
)

// StreamHandler pushes chart sets over a WebSocket, refreshing them on an interval.
type StreamHandler struct {
	svc         service.ChartService
	upgrader    websocket.Upgrader
	timeout     time.Duration
	minInterval time.Duration
}

// NewStreamHandler returns a StreamHandler. refreshTimeout bounds each rebuild.
func NewStreamHandler(svc service.ChartService, refreshTimeout time.Duration) *StreamHandler {
	if refreshTimeout <= 0 {
		refreshTimeout = 10 * time.Second
	}
	return &StreamHandler{
		svc: svc,
		upgrader: websocket.Upgrader{
			// the dashboard is served from another origin
			CheckOrigin:       func(*http.Request) bool { return true },
			EnableCompression: true,
		},
		timeout:     refreshTimeout,
		minInterval: MinStreamInterval,
	}
}

// streamInterval parses ?interval= as a Go duration ("45s") or whole seconds ("45").
func streamInterval(raw string, atLeast time.Duration) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultStreamInterval, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		secs, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return 0, fmt.Errorf("%w: interval=%q", chart.ErrInvalidParameter, raw)
		}
		d = time.Duration(secs) * time.Second
	}
	if d < atLeast {
		return 0, fmt.Errorf("%w: interval must be at least %s, got %s", chart.ErrInvalidParameter, atLeast, d)
	}
	return d, nil
}

// Serve godoc
// @Summary      Chart stream
// @Description  Upgrades to a WebSocket that receives a chart set on connect and again whenever a refresh produces a different set. Refresh failures are sent as error frames and the stream keeps going.
// @Tags         charts
// @Param        ticker         path      string  true   "B3 ticker" example(PETR4)
// @Param        periodo        query     string  false  "Series period" default(3mo)
// @Param        interval       query     string  false  "Refresh interval, minimum 5s" default(30s)
// @Param        brick_size     query     string  false  "Renko brick size, or auto" default(2)
// @Param        reversal       query     number  false  "Kagi reversal amount" default(3)
// @Param        box_size       query     number  false  "Point & Figure box size" default(1)
// @Param        reversal_size  query     number  false  "Point & Figure reversal, in boxes" default(3)
// @Param        range_size     query     number  false  "Range bar size" default(2)
// @Success      101            {object}  dto.StreamMessage
// @Failure      400            {object}  dto.ErrorResponse
// @Failure      404            {object}  dto.ErrorResponse
// @Failure      502            {object}  dto.ErrorResponse
// @Router       /api/v1/charts/{ticker}/stream [get]
func (h *StreamHandler) Serve(c *gin.Context) {
	ticker, period := c.Param("ticker"), c.Query("periodo")

	interval, err := streamInterval(c.Query("interval"), h.minInterval)
	if err != nil {
		respondError(c, err)
		return
	}

	// parameters and the first build are checked before upgrading so that a bad
	// request still gets a plain HTTP error
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	p, err := chartParams(ctx, c, h.svc, ticker, period)
	var first service.ChartSetResult
	if err == nil {
		first, err = h.svc.All(ctx, ticker, period, p)
	}
	cancel()
	if err != nil {
		respondError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already answered the client
		logger.L().Warn().Err(err).Str("ticker", first.Ticker).Msg("websocket upgrade failed")
		return
	}
	defer func() { _ = conn.Close() }()

	log := logger.L().With().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("ticker", first.Ticker).
		Str("period", first.Period).
		Dur("interval", interval).
		Logger()
	log.Info().Msg("stream opened")

	streamCtx, stop := context.WithCancel(context.WithoutCancel(c.Request.Context()))
	defer stop()

	// reader: keeps pongs flowing and notices the client going away
	go func() {
		defer stop()
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	msg := dto.StreamMessage{Type: dto.StreamCharts, Data: ptr(chartSetResponse(first))}
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Error().Err(err).Msg("encode stream message")
		return
	}
	if err := h.write(conn, payload); err != nil {
		log.Debug().Err(err).Msg("stream closed")
		return
	}
	last := payload

	refresh := time.NewTicker(interval)
	defer refresh.Stop()
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-streamCtx.Done():
			log.Info().Msg("stream closed")
			return

		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				log.Debug().Err(err).Msg("ping failed")
				return
			}

		case <-refresh.C:
			msg := h.rebuild(streamCtx, ticker, period, p)
			key, err := fingerprint(msg)
			if err != nil {
				log.Error().Err(err).Msg("encode stream message")
				return
			}
			if bytes.Equal(key, last) {
				continue
			}
			if msg.Type == dto.StreamError {
				log.Warn().Str("error", msg.Error.ErrorDetails).Msg("stream refresh failed")
			}
			payload, err := json.Marshal(msg)
			if err != nil {
				log.Error().Err(err).Msg("encode stream message")
				return
			}
			if err := h.write(conn, payload); err != nil {
				log.Debug().Err(err).Msg("stream closed")
				return
			}
			last = key
		}
	}
}

func (h *StreamHandler) rebuild(ctx context.Context, ticker, period string, p chart.Params) dto.StreamMessage {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	res, err := h.svc.All(ctx, ticker, period, p)
	if err != nil {
		_, msg := errorStatus(err)
		e := dto.NewErrorResponse(msg, err)
		return dto.StreamMessage{Type: dto.StreamError, Error: &e}
	}
	return dto.StreamMessage{Type: dto.StreamCharts, Data: ptr(chartSetResponse(res))}
}

// fingerprint encodes msg without the error timestamp, so a failure that repeats
// on every refresh is only sent once.
func fingerprint(msg dto.StreamMessage) ([]byte, error) {
	if msg.Error != nil {
		e := *msg.Error
		e.Timestamp = time.Time{}
		msg.Error = &e
	}
	return json.Marshal(msg)
}

func (h *StreamHandler) write(conn *websocket.Conn, payload []byte) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, payload)
}

func ptr[T any](v T) *T { return &v }
