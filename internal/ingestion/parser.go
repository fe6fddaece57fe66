package ingestion

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/b3charts/internal/domain/models"
)

// expectedHeaders enforces strict column ordering for B3 "Negócios à Vista" files.
// If the header doesn't match EXACTLY (order + count), ingestion must fail.
var expectedHeaders = []string{
	"DataReferencia",
	"CodigoInstrumento",
	"AcaoAtualizacao",
	"PrecoNegocio",
	"QuantidadeNegociada",
	"HoraFechamento",
	"CodigoIdentificadorNegocio",
	"TipoSessaoPregao",
	"DataNegocio",
	"CodigoParticipanteComprador",
	"CodigoParticipanteVendedor",
}

const (
	colReferenceDate = iota
	colInstrument
	colUpdateAction
	colPrice
	colQuantity
	colClosingTime
	colTradeID
	colSession
	colTradeDate
	colBuyer
	colSeller
)

// readTrades streams the trades of one file into emit and returns how many rows it read.
//
// Behavior:
//   - fails on a header that differs from expectedHeaders in order or length
//   - fails on any row without exactly 11 columns or with a malformed cell
//   - tolerates empty cells, which become zero values
func readTrades(ctx context.Context, src io.Reader, emit func(models.Trade)) (int, error) {
	r := csv.NewReader(src)
	r.Comma = ';'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return 0, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		// some exports carry a UTF-8 BOM on the first column
		h = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
		if h != expectedHeaders[i] {
			return 0, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	line, rows := 1, 0
	for {
		if err := ctx.Err(); err != nil {
			return rows, err
		}

		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return rows, fmt.Errorf("read line after %d: %w", line, err)
		}
		line++

		if len(rec) != len(expectedHeaders) {
			return rows, fmt.Errorf("invalid column count on line %d: expected %d got %d", line, len(expectedHeaders), len(rec))
		}

		tr, err := recordToTrade(rec)
		if err != nil {
			return rows, fmt.Errorf("line %d: %w", line, err)
		}
		emit(tr)
		rows++
	}
}

// recordToTrade converts one record (already validated to 11 columns) into a models.Trade.
//
// Column mapping:
//
//	0 DataReferencia       validated, dropped ("2006-01-02")
//	1 CodigoInstrumento    InstrumentCode
//	2 AcaoAtualizacao      UpdateAction
//	3 PrecoNegocio         Price (comma decimal separator)
//	4 QuantidadeNegociada  Quantity
//	5 HoraFechamento       ClosingTime (HHMMSS[mmm])
//	6 CodigoIdentificador  TradeID
//	7 TipoSessaoPregao     SessionType
//	8 DataNegocio          TradeDate ("2006-01-02")
//	9,10 participants      dropped
func recordToTrade(rec []string) (models.Trade, error) {
	var t models.Trade
	cell := func(i int) string { return strings.TrimSpace(rec[i]) }

	if _, err := parseDate(cell(colReferenceDate)); err != nil {
		return t, fmt.Errorf("invalid DataReferencia: %w", err)
	}
	d, err := parseDate(cell(colTradeDate))
	if err != nil {
		return t, fmt.Errorf("invalid DataNegocio: %w", err)
	}
	t.TradeDate = d

	t.InstrumentCode = cell(colInstrument)
	t.UpdateAction = cell(colUpdateAction)
	t.TradeID = cell(colTradeID)
	t.SessionType = cell(colSession)

	if s := cell(colPrice); s != "" {
		p, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
		if err != nil {
			return t, fmt.Errorf("invalid PrecoNegocio: %w", err)
		}
		t.Price = p
	}

	if s := cell(colQuantity); s != "" {
		q, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return t, fmt.Errorf("invalid QuantidadeNegociada: %w", err)
		}
		t.Quantity = q
	}

	ct, err := parseClock(cell(colClosingTime))
	if err != nil {
		return t, fmt.Errorf("invalid HoraFechamento: %w", err)
	}
	t.ClosingTime = ct

	return t, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

// parseClock reads "HHMMSS" optionally followed by milliseconds.
func parseClock(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if len(s) < 6 {
		return time.Time{}, fmt.Errorf("need at least HHMMSS, got %q", s)
	}
	h, err := time.Parse("150405", s[:6])
	if err != nil {
		return time.Time{}, err
	}
	var ms int
	if frac := s[6:]; frac != "" {
		if len(frac) > 3 {
			frac = frac[:3]
		}
		if ms, err = strconv.Atoi(frac); err != nil {
			return time.Time{}, fmt.Errorf("milliseconds %q: %w", s[6:], err)
		}
	}
	return time.Date(0, 1, 1, h.Hour(), h.Minute(), h.Second(), ms*int(time.Millisecond), time.UTC), nil
}
