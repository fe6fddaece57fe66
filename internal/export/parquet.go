// Package export writes series and their charts to Parquet files.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/shopspring/decimal"

	"github.com/guttosm/b3charts/internal/domain/models"
)

// Row kinds.
const (
	KindBar         = "bar"
	KindRenko       = "renko"
	KindKagi        = "kagi"
	KindPointFigure = "point_figure"
	KindRangeBar    = "range_bar"
)

// Row is one item of a series or of a chart output. Columns that do not apply
// to a kind are left null.
type Row struct {
	Kind   string `parquet:"kind,dict"`
	Ticker string `parquet:"ticker,dict"`
	Period string `parquet:"period,dict"`
	Seq    int64  `parquet:"seq"`   // position within its kind
	Index  int64  `parquet:"index"` // source bar index, or the column for point_figure

	Date      int64   `parquet:"date,optional"` // unix millis, bars only
	Open      float64 `parquet:"open,optional"`
	High      float64 `parquet:"high,optional"`
	Low       float64 `parquet:"low,optional"`
	Close     float64 `parquet:"close,optional"`
	Volume    int64   `parquet:"volume,optional"`
	Price     float64 `parquet:"price,optional"`
	Direction string  `parquet:"direction,optional,dict"` // up, down, X or O
}

// Rows flattens bars and the full chart outputs into rows, bars first.
func Rows(ticker, period string, bars []models.Bar, set models.ChartSet) []Row {
	n := len(bars) + len(set.Renko) + len(set.Kagi) + len(set.PointFigure) + len(set.RangeBars)
	rows := make([]Row, 0, n)
	row := func(kind string, seq, index int) Row {
		return Row{Kind: kind, Ticker: ticker, Period: period, Seq: int64(seq), Index: int64(index)}
	}

	for i, b := range bars {
		r := row(KindBar, i, b.Index)
		r.Date = b.Date.UnixMilli()
		r.Open, r.High, r.Low, r.Close = f(b.Open), f(b.High), f(b.Low), f(b.Close)
		r.Volume = b.Volume
		rows = append(rows, r)
	}
	for i, b := range set.Renko {
		r := row(KindRenko, i, b.Index)
		r.Price, r.Low, r.High = f(b.Price), f(b.Low), f(b.High)
		r.Direction = string(b.Direction)
		rows = append(rows, r)
	}
	for i, s := range set.Kagi {
		r := row(KindKagi, i, s.Index)
		r.Price = f(s.Price)
		r.Direction = string(s.Trend)
		rows = append(rows, r)
	}
	for i, m := range set.PointFigure {
		r := row(KindPointFigure, i, m.Column)
		r.Price = f(m.Price)
		r.Direction = string(m.Type)
		rows = append(rows, r)
	}
	for i, b := range set.RangeBars {
		r := row(KindRangeBar, i, b.Index)
		r.Open, r.High, r.Low, r.Close = f(b.Open), f(b.High), f(b.Low), f(b.Close)
		rows = append(rows, r)
	}
	return rows
}

func f(d decimal.Decimal) float64 { return d.InexactFloat64() }

// Write encodes rows as a Parquet file to w.
func Write(w io.Writer, rows []Row) error {
	if err := parquet.Write(w, rows); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}
	return nil
}

// WriteFile writes rows to path, replacing any existing file.
func WriteFile(path string, rows []Row) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return Write(out, rows)
}
