package dto

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/b3charts/internal/domain/models"
)

// The chart responses below share a shape: the request echo (ticker, period, the
// parameters actually used), Total as the length of the full output and the trailing
// window of items that the dashboard draws.

// BarsResponse is returned by GET /api/v1/bars/{ticker}.
type BarsResponse struct {
	Ticker string       `json:"ticker" example:"PETR4"`
	Period string       `json:"periodo" example:"3mo"`
	Total  int          `json:"total_registros" example:"63"`
	Bars   []models.Bar `json:"dados"`
}

// RenkoResponse is returned by GET /api/v1/charts/{ticker}/renko.
type RenkoResponse struct {
	Ticker    string              `json:"ticker" example:"PETR4"`
	Period    string              `json:"periodo" example:"3mo"`
	BrickSize decimal.Decimal     `json:"brick_size" swaggertype:"number" example:"2"`
	Total     int                 `json:"total" example:"42"`
	Bricks    []models.RenkoBrick `json:"bricks"`
}

// KagiResponse is returned by GET /api/v1/charts/{ticker}/kagi.
type KagiResponse struct {
	Ticker   string               `json:"ticker" example:"PETR4"`
	Period   string               `json:"periodo" example:"3mo"`
	Reversal decimal.Decimal      `json:"reversal" swaggertype:"number" example:"3"`
	Total    int                  `json:"total" example:"17"`
	Segments []models.KagiSegment `json:"segments"`
}

// PointFigureResponse is returned by GET /api/v1/charts/{ticker}/point-figure.
type PointFigureResponse struct {
	Ticker       string                   `json:"ticker" example:"PETR4"`
	Period       string                   `json:"periodo" example:"3mo"`
	BoxSize      decimal.Decimal          `json:"box_size" swaggertype:"number" example:"1"`
	ReversalSize decimal.Decimal          `json:"reversal_size" swaggertype:"number" example:"3"`
	Total        int                      `json:"total" example:"58"`
	Marks        []models.PointFigureMark `json:"marks"`
}

// RangeBarsResponse is returned by GET /api/v1/charts/{ticker}/range-bars.
type RangeBarsResponse struct {
	Ticker    string            `json:"ticker" example:"PETR4"`
	Period    string            `json:"periodo" example:"3mo"`
	RangeSize decimal.Decimal   `json:"range_size" swaggertype:"number" example:"2"`
	Total     int               `json:"total" example:"9"`
	Bars      []models.RangeBar `json:"bars"`
}

// ChartParams echoes the parameter set of a ChartSetResponse.
type ChartParams struct {
	BrickSize    decimal.Decimal `json:"brick_size" swaggertype:"number" example:"2"`
	Reversal     decimal.Decimal `json:"reversal" swaggertype:"number" example:"3"`
	BoxSize      decimal.Decimal `json:"box_size" swaggertype:"number" example:"1"`
	ReversalSize decimal.Decimal `json:"reversal_size" swaggertype:"number" example:"3"`
	RangeSize    decimal.Decimal `json:"range_size" swaggertype:"number" example:"2"`
}

// ChartTotals holds the full output length of each chart in a set.
type ChartTotals struct {
	Renko       int `json:"renko" example:"42"`
	Kagi        int `json:"kagi" example:"17"`
	PointFigure int `json:"point_figure" example:"58"`
	RangeBars   int `json:"range_bars" example:"9"`
}

// ChartSetResponse is returned by GET /api/v1/charts/{ticker} and pushed by the stream.
type ChartSetResponse struct {
	Ticker string          `json:"ticker" example:"PETR4"`
	Period string          `json:"periodo" example:"3mo"`
	Params ChartParams     `json:"params"`
	Totals ChartTotals     `json:"totals"`
	Charts models.ChartSet `json:"charts"`
}

// Stream message types.
const (
	StreamCharts = "charts"
	StreamError  = "error"
)

// StreamMessage is one WebSocket frame of GET /api/v1/charts/{ticker}/stream.
type StreamMessage struct {
	Type  string            `json:"type" example:"charts"`
	Data  *ChartSetResponse `json:"data,omitempty"`
	Error *ErrorResponse    `json:"error,omitempty"`
}
