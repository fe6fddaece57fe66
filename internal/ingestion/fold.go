package ingestion

import (
	"sort"
	"time"

	"github.com/guttosm/b3charts/internal/domain/models"
)

// dayFolder reduces one day's trades to a daily OHLC bar per instrument.
type dayFolder struct {
	day  time.Time
	bars map[string]*foldedBar
}

type foldedBar struct {
	bar         models.DailyBar
	first, last time.Time
}

func newDayFolder(day time.Time) *dayFolder {
	return &dayFolder{day: day, bars: make(map[string]*foldedBar)}
}

// add folds t into its instrument's bar. Cancelled rows and rows without an
// instrument or a price are ignored.
//
// Open is the price of the earliest closing time and close of the latest; rows with
// the same closing time keep file order.
func (f *dayFolder) add(t models.Trade) {
	if t.Cancelled() || t.InstrumentCode == "" || !t.Price.IsPositive() {
		return
	}

	fb, ok := f.bars[t.InstrumentCode]
	if !ok {
		f.bars[t.InstrumentCode] = &foldedBar{
			bar: models.DailyBar{
				Ticker: t.InstrumentCode,
				Bar: models.Bar{
					Date:   f.day,
					Open:   t.Price,
					High:   t.Price,
					Low:    t.Price,
					Close:  t.Price,
					Volume: t.Quantity,
				},
			},
			first: t.ClosingTime,
			last:  t.ClosingTime,
		}
		return
	}

	b := &fb.bar
	if t.ClosingTime.Before(fb.first) {
		fb.first = t.ClosingTime
		b.Open = t.Price
	}
	if !t.ClosingTime.Before(fb.last) {
		fb.last = t.ClosingTime
		b.Close = t.Price
	}
	if t.Price.GreaterThan(b.High) {
		b.High = t.Price
	}
	if t.Price.LessThan(b.Low) {
		b.Low = t.Price
	}
	b.Volume += t.Quantity
}

// result returns the folded bars ordered by ticker.
func (f *dayFolder) result() []models.DailyBar {
	out := make([]models.DailyBar, 0, len(f.bars))
	for _, fb := range f.bars {
		out = append(out, fb.bar)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ticker < out[j].Ticker })
	return out
}
