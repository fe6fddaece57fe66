package chart

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/guttosm/b3charts/internal/domain/models"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// closes builds a series whose bars open, high, low and close at the same price.
func closes(prices ...string) []models.Bar {
	out := make([]models.Bar, len(prices))
	for i, p := range prices {
		v := d(p)
		out[i] = models.Bar{Index: i, Open: v, High: v, Low: v, Close: v}
	}
	return out
}

// ohlc builds a series from open/high/low/close quadruples.
func ohlc(rows ...[4]string) []models.Bar {
	out := make([]models.Bar, len(rows))
	for i, r := range rows {
		out[i] = models.Bar{Index: i, Open: d(r[0]), High: d(r[1]), Low: d(r[2]), Close: d(r[3])}
	}
	return out
}

func assertPrice(t *testing.T, what string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(d(want)) {
		t.Fatalf("%s: want %s got %s", what, want, got)
	}
}
