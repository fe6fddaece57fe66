package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The dashboard consumes prices as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Bar is one trading-period OHLC record of an input series.
//
// Index is the bar's position in the series it belongs to. It is assigned by whoever
// builds the series (feed, storage) and is what the chart outputs refer back to.
type Bar struct {
	Index  int             `json:"index" example:"0"`
	Date   time.Time       `json:"data" example:"2025-09-11T00:00:00Z"`
	Open   decimal.Decimal `json:"abertura" swaggertype:"number" example:"37.42"`
	High   decimal.Decimal `json:"maxima" swaggertype:"number" example:"37.90"`
	Low    decimal.Decimal `json:"minima" swaggertype:"number" example:"37.10"`
	Close  decimal.Decimal `json:"fechamento" swaggertype:"number" example:"37.55"`
	Volume int64           `json:"volume" example:"41250300"`
}

// DailyBar is a Bar tagged with its instrument, as persisted in daily_bars.
type DailyBar struct {
	Ticker string
	Bar
}

// Reindex returns series with Index rewritten to each bar's position.
// The input slice is modified in place.
func Reindex(series []Bar) []Bar {
	for i := range series {
		series[i].Index = i
	}
	return series
}
