package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/b3charts/internal/chart"
	"github.com/guttosm/b3charts/internal/domain/dto"
	"github.com/guttosm/b3charts/internal/service"
)

// Handler serves the series and chart endpoints.
//
// Responsibilities:
//   - Read the ticker path parameter and the periodo / chart parameter queries
//   - Delegate to the chart service, which validates and normalizes them
//   - Translate results into response DTOs and errors into status codes
type Handler struct {
	svc service.ChartService
}

// NewHandler constructs a Handler around svc.
func NewHandler(svc service.ChartService) *Handler {
	return &Handler{svc: svc}
}

// GetBars godoc
// @Summary      Daily OHLC series
// @Description  Returns the daily bars a chart would be built from.
// @Tags         bars
// @Produce      json
// @Param        ticker   path      string  true   "B3 ticker" example(PETR4)
// @Param        periodo  query     string  false  "1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y or max" default(3mo)
// @Success      200      {object}  dto.BarsResponse
// @Failure      400      {object}  dto.ErrorResponse  "Invalid ticker or period"
// @Failure      404      {object}  dto.ErrorResponse  "Unknown ticker or no data"
// @Failure      502      {object}  dto.ErrorResponse  "Market data source failure"
// @Failure      500      {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/bars/{ticker} [get]
func (h *Handler) GetBars(c *gin.Context) {
	res, err := h.svc.Series(c.Request.Context(), c.Param("ticker"), c.Query("periodo"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BarsResponse{
		Ticker: res.Ticker,
		Period: res.Period,
		Total:  res.Total,
		Bars:   res.Items,
	})
}

// GetCharts godoc
// @Summary      All four charts
// @Description  Builds Renko, Kagi, Point & Figure and range bars over one series. Each output is truncated to its display window (30, 40, 50, 30); totals hold the full lengths.
// @Tags         charts
// @Produce      json
// @Param        ticker         path      string  true   "B3 ticker" example(PETR4)
// @Param        periodo        query     string  false  "Series period" default(3mo)
// @Param        brick_size     query     string  false  "Renko brick size, or auto" default(2)
// @Param        reversal       query     number  false  "Kagi reversal amount" default(3)
// @Param        box_size       query     number  false  "Point & Figure box size" default(1)
// @Param        reversal_size  query     number  false  "Point & Figure reversal, in boxes" default(3)
// @Param        range_size     query     number  false  "Range bar size" default(2)
// @Success      200            {object}  dto.ChartSetResponse
// @Failure      400            {object}  dto.ErrorResponse
// @Failure      404            {object}  dto.ErrorResponse
// @Failure      502            {object}  dto.ErrorResponse
// @Failure      500            {object}  dto.ErrorResponse
// @Router       /api/v1/charts/{ticker} [get]
func (h *Handler) GetCharts(c *gin.Context) {
	ctx := c.Request.Context()
	ticker, period := c.Param("ticker"), c.Query("periodo")

	p, err := chartParams(ctx, c, h.svc, ticker, period)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := h.svc.All(ctx, ticker, period, p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, chartSetResponse(res))
}

// GetRenko godoc
// @Summary      Renko bricks
// @Tags         charts
// @Produce      json
// @Param        ticker      path      string  true   "B3 ticker" example(PETR4)
// @Param        periodo     query     string  false  "Series period" default(3mo)
// @Param        brick_size  query     string  false  "Brick size, or auto for an ATR(14) derived size" default(2)
// @Success      200         {object}  dto.RenkoResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Failure      502         {object}  dto.ErrorResponse
// @Failure      500         {object}  dto.ErrorResponse
// @Router       /api/v1/charts/{ticker}/renko [get]
func (h *Handler) GetRenko(c *gin.Context) {
	ctx := c.Request.Context()
	ticker, period := c.Param("ticker"), c.Query("periodo")

	size, err := brickSize(ctx, c, h.svc, ticker, period)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := h.svc.Renko(ctx, ticker, period, size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RenkoResponse{
		Ticker:    res.Ticker,
		Period:    res.Period,
		BrickSize: size,
		Total:     res.Total,
		Bricks:    res.Items,
	})
}

// GetKagi godoc
// @Summary      Kagi line
// @Tags         charts
// @Produce      json
// @Param        ticker    path      string  true   "B3 ticker" example(PETR4)
// @Param        periodo   query     string  false  "Series period" default(3mo)
// @Param        reversal  query     number  false  "Reversal amount" default(3)
// @Success      200       {object}  dto.KagiResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Failure      502       {object}  dto.ErrorResponse
// @Failure      500       {object}  dto.ErrorResponse
// @Router       /api/v1/charts/{ticker}/kagi [get]
func (h *Handler) GetKagi(c *gin.Context) {
	reversal, err := decimalQuery(c, "reversal", h.svc.Defaults().Reversal)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := h.svc.Kagi(c.Request.Context(), c.Param("ticker"), c.Query("periodo"), reversal)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.KagiResponse{
		Ticker:   res.Ticker,
		Period:   res.Period,
		Reversal: reversal,
		Total:    res.Total,
		Segments: res.Items,
	})
}

// GetPointFigure godoc
// @Summary      Point & Figure columns
// @Tags         charts
// @Produce      json
// @Param        ticker         path      string  true   "B3 ticker" example(PETR4)
// @Param        periodo        query     string  false  "Series period" default(3mo)
// @Param        box_size       query     number  false  "Box size" default(1)
// @Param        reversal_size  query     number  false  "Reversal, in boxes" default(3)
// @Success      200            {object}  dto.PointFigureResponse
// @Failure      400            {object}  dto.ErrorResponse
// @Failure      404            {object}  dto.ErrorResponse
// @Failure      502            {object}  dto.ErrorResponse
// @Failure      500            {object}  dto.ErrorResponse
// @Router       /api/v1/charts/{ticker}/point-figure [get]
func (h *Handler) GetPointFigure(c *gin.Context) {
	def := h.svc.Defaults()
	box, err := decimalQuery(c, "box_size", def.BoxSize)
	if err != nil {
		respondError(c, err)
		return
	}
	rev, err := decimalQuery(c, "reversal_size", def.ReversalSize)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := h.svc.PointFigure(c.Request.Context(), c.Param("ticker"), c.Query("periodo"), box, rev)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PointFigureResponse{
		Ticker:       res.Ticker,
		Period:       res.Period,
		BoxSize:      box,
		ReversalSize: rev,
		Total:        res.Total,
		Marks:        res.Items,
	})
}

// GetRangeBars godoc
// @Summary      Range bars
// @Tags         charts
// @Produce      json
// @Param        ticker      path      string  true   "B3 ticker" example(PETR4)
// @Param        periodo     query     string  false  "Series period" default(3mo)
// @Param        range_size  query     number  false  "Range size" default(2)
// @Success      200         {object}  dto.RangeBarsResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Failure      502         {object}  dto.ErrorResponse
// @Failure      500         {object}  dto.ErrorResponse
// @Router       /api/v1/charts/{ticker}/range-bars [get]
func (h *Handler) GetRangeBars(c *gin.Context) {
	size, err := decimalQuery(c, "range_size", h.svc.Defaults().RangeSize)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := h.svc.RangeBars(c.Request.Context(), c.Param("ticker"), c.Query("periodo"), size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RangeBarsResponse{
		Ticker:    res.Ticker,
		Period:    res.Period,
		RangeSize: size,
		Total:     res.Total,
		Bars:      res.Items,
	})
}

func chartSetResponse(res service.ChartSetResult) dto.ChartSetResponse {
	return dto.ChartSetResponse{
		Ticker: res.Ticker,
		Period: res.Period,
		Params: chartParamsDTO(res.Params),
		Totals: dto.ChartTotals{
			Renko:       res.Totals.Renko,
			Kagi:        res.Totals.Kagi,
			PointFigure: res.Totals.PointFigure,
			RangeBars:   res.Totals.RangeBars,
		},
		Charts: res.Charts,
	}
}

func chartParamsDTO(p chart.Params) dto.ChartParams {
	return dto.ChartParams{
		BrickSize:    p.BrickSize,
		Reversal:     p.Reversal,
		BoxSize:      p.BoxSize,
		ReversalSize: p.ReversalSize,
		RangeSize:    p.RangeSize,
	}
}
