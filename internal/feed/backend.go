package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"github.com/guttosm/b3charts/internal/domain/models"
)

// acaoPayload is the body of GET /api/b3/acao/{ticker}. The backend sends null for
// prices it could not compute; such rows are skipped.
type acaoPayload struct {
	Ticker string    `json:"ticker"`
	Dados  []acaoBar `json:"dados"`
	Period string    `json:"periodo"`
	Total  int       `json:"total_registros"`
}

type acaoBar struct {
	Data       string   `json:"data"`
	Abertura   *float64 `json:"abertura"`
	Maxima     *float64 `json:"maxima"`
	Minima     *float64 `json:"minima"`
	Fechamento *float64 `json:"fechamento"`
	Volume     *int64   `json:"volume"`
}

// BackendSource reads series from the dashboard's market data backend.
type BackendSource struct {
	client *resty.Client
}

// NewBackendSource returns a BackendSource talking to baseURL (e.g. http://localhost:8000).
func NewBackendSource(baseURL string, timeout time.Duration) *BackendSource {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &BackendSource{client: client}
}

// FetchBars implements Source.
func (s *BackendSource) FetchBars(ctx context.Context, ticker, period string) ([]models.Bar, error) {
	var payload acaoPayload
	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("ticker", ticker).
		SetQueryParam("periodo", period).
		SetResult(&payload).
		Get("/api/b3/acao/{ticker}")
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", ticker, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrTickerNotFound, ticker)
	case resp.IsError():
		return nil, fmt.Errorf("fetch %s: backend answered %d: %s", ticker, resp.StatusCode(), resp.String())
	}

	return payload.bars()
}

func (p acaoPayload) bars() ([]models.Bar, error) {
	out := make([]models.Bar, 0, len(p.Dados))
	for _, row := range p.Dados {
		if row.Abertura == nil || row.Maxima == nil || row.Minima == nil || row.Fechamento == nil {
			continue
		}
		date, err := time.Parse("2006-01-02", row.Data)
		if err != nil {
			return nil, fmt.Errorf("invalid bar date %q: %w", row.Data, err)
		}
		bar := models.Bar{
			Date:  date,
			Open:  decimal.NewFromFloat(*row.Abertura),
			High:  decimal.NewFromFloat(*row.Maxima),
			Low:   decimal.NewFromFloat(*row.Minima),
			Close: decimal.NewFromFloat(*row.Fechamento),
		}
		if row.Volume != nil {
			bar.Volume = *row.Volume
		}
		out = append(out, bar)
	}
	return models.Reindex(out), nil
}
