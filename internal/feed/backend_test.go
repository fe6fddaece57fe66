package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const acaoBody = `{
  "ticker": "PETR4",
  "info": {"nome": "Petrobras"},
  "dados": [
    {"data": "2025-09-10", "abertura": 31.5, "maxima": 32.1, "minima": 31.2, "fechamento": 31.9, "volume": 1000},
    {"data": "2025-09-11", "abertura": null, "maxima": 32.4, "minima": 31.8, "fechamento": 32.0, "volume": 900},
    {"data": "2025-09-12", "abertura": 32.0, "maxima": 33.0, "minima": 31.9, "fechamento": 32.75, "volume": null}
  ],
  "periodo": "5d",
  "total_registros": 3
}`

func TestBackendSource_FetchBars(t *testing.T) {
	var gotPath, gotPeriod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPeriod = r.URL.Query().Get("periodo")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(acaoBody))
	}))
	defer srv.Close()

	src := NewBackendSource(srv.URL, 2*time.Second)
	bars, err := src.FetchBars(context.Background(), "PETR4", "5d")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotPath != "/api/b3/acao/PETR4" || gotPeriod != "5d" {
		t.Fatalf("unexpected request %s?periodo=%s", gotPath, gotPeriod)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars (null row skipped), got %d", len(bars))
	}
	if bars[0].Index != 0 || bars[1].Index != 1 {
		t.Fatalf("indexes not reassigned: %d, %d", bars[0].Index, bars[1].Index)
	}
	if bars[1].Close.String() != "32.75" || bars[1].Volume != 0 {
		t.Fatalf("unexpected second bar: close=%s volume=%d", bars[1].Close, bars[1].Volume)
	}
	if !bars[1].Date.Equal(time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %s", bars[1].Date)
	}
}

func TestBackendSource_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Ação não encontrada"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewBackendSource(srv.URL, time.Second).FetchBars(context.Background(), "XXXX3", "3mo")
	if !errors.Is(err, ErrTickerNotFound) {
		t.Fatalf("expected ErrTickerNotFound, got %v", err)
	}
}

func TestBackendSource_ServerError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewBackendSource(srv.URL, time.Second).FetchBars(context.Background(), "PETR4", "3mo")
	if err == nil || errors.Is(err, ErrTickerNotFound) {
		t.Fatalf("expected a plain fetch error, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 1 call plus 2 retries, got %d", calls)
	}
}

func TestBackendSource_BadDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"dados":[{"data":"12/09/2025","abertura":1,"maxima":1,"minima":1,"fechamento":1}]}`))
	}))
	defer srv.Close()

	if _, err := NewBackendSource(srv.URL, time.Second).FetchBars(context.Background(), "PETR4", "3mo"); err == nil {
		t.Fatalf("expected date parse error")
	}
}
