// Package render draws chart outputs for a terminal.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/guttosm/b3charts/internal/domain/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9FAFB")).
			Background(lipgloss.Color("#1F2937")).
			Padding(0, 1)

	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).Align(lipgloss.Right)

	upStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	downStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))

	// Kagi yang (up) lines are drawn thick, yin (down) lines thin
	thickStyle = upStyle.Bold(true)
	thinStyle  = downStyle.Faint(true)

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

const (
	brickCell = "██"
	emptyCell = "  "
)

// Title renders the heading of a chart: ticker, period, chart name and how many
// of the generated items are shown.
func Title(ticker, period, name string, shown, total int) string {
	head := titleStyle.Render(fmt.Sprintf("%s · %s · %s", ticker, period, name))
	return lipgloss.JoinHorizontal(lipgloss.Center, head, subtleStyle.Render(fmt.Sprintf("  %d of %d", shown, total)))
}

func styleFor(d models.Direction) lipgloss.Style {
	if d == models.Down {
		return downStyle
	}
	return upStyle
}

// Renko draws bricks left to right, one column per brick, each at its price level.
func Renko(bricks []models.RenkoBrick) string {
	if len(bricks) == 0 {
		return subtleStyle.Render("no bricks")
	}

	lows := make([]decimal.Decimal, 0, len(bricks))
	for _, b := range bricks {
		lows = append(lows, b.Low)
	}
	levels := distinctDesc(lows)

	cells := make(map[string]map[int]string, len(levels))
	for i, b := range bricks {
		k := b.Low.String()
		if cells[k] == nil {
			cells[k] = map[int]string{}
		}
		cells[k][i] = styleFor(b.Direction).Render(brickCell)
	}
	return grid(levels, len(bricks), cells, emptyCell)
}

// PointFigure draws one column per chart column with an X or O at every marked price.
func PointFigure(marks []models.PointFigureMark) string {
	if len(marks) == 0 {
		return subtleStyle.Render("no marks")
	}

	prices := make([]decimal.Decimal, 0, len(marks))
	colSet := map[int]struct{}{}
	for _, m := range marks {
		prices = append(prices, m.Price)
		colSet[m.Column] = struct{}{}
	}
	levels := distinctDesc(prices)

	cols := make([]int, 0, len(colSet))
	for c := range colSet {
		cols = append(cols, c)
	}
	sort.Ints(cols)
	pos := make(map[int]int, len(cols))
	for i, c := range cols {
		pos[c] = i
	}

	cells := make(map[string]map[int]string, len(levels))
	for _, m := range marks {
		k := m.Price.String()
		if cells[k] == nil {
			cells[k] = map[int]string{}
		}
		style := upStyle
		if m.Type == models.MarkO {
			style = downStyle
		}
		cells[k][pos[m.Column]] = style.Render(string(m.Type) + " ")
	}
	return grid(levels, len(cols), cells, subtleStyle.Render(". "))
}

// grid lays out rows of cells under a price label column. levels are the row keys,
// top to bottom.
func grid(levels []decimal.Decimal, ncols int, cells map[string]map[int]string, blank string) string {
	width := 0
	for _, l := range levels {
		width = max(width, len(l.StringFixed(2)))
	}
	label := labelStyle.Width(width)

	var b strings.Builder
	for i, l := range levels {
		row := cells[l.String()]
		b.WriteString(label.Render(l.StringFixed(2)))
		b.WriteString(" │ ")
		for c := 0; c < ncols; c++ {
			if s, ok := row[c]; ok {
				b.WriteString(s)
			} else {
				b.WriteString(blank)
			}
		}
		if i < len(levels)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// distinctDesc returns the distinct values of vs, highest first.
func distinctDesc(vs []decimal.Decimal) []decimal.Decimal {
	seen := make(map[string]struct{}, len(vs))
	out := make([]decimal.Decimal, 0, len(vs))
	for _, v := range vs {
		if _, ok := seen[v.String()]; ok {
			continue
		}
		seen[v.String()] = struct{}{}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GreaterThan(out[j]) })
	return out
}

// Kagi lists the segments of a Kagi line.
func Kagi(segments []models.KagiSegment) string {
	if len(segments) == 0 {
		return subtleStyle.Render("no segments")
	}
	rows := make([][]string, 0, len(segments))
	for _, s := range segments {
		line := thinStyle.Render("│ yin")
		if s.Trend == models.Up {
			line = thickStyle.Render("┃ yang")
		}
		rows = append(rows, []string{fmt.Sprint(s.Index), s.Price.StringFixed(2), string(s.Trend), line})
	}
	return newTable([]string{"bar", "price", "trend", "line"}, rows)
}

// RangeBars tabulates range bars with their span.
func RangeBars(bars []models.RangeBar) string {
	if len(bars) == 0 {
		return subtleStyle.Render("no range bars")
	}
	rows := make([][]string, 0, len(bars))
	for _, b := range bars {
		rows = append(rows, []string{
			fmt.Sprint(b.Index),
			b.Open.StringFixed(2),
			b.High.StringFixed(2),
			b.Low.StringFixed(2),
			b.Close.StringFixed(2),
			b.High.Sub(b.Low).StringFixed(2),
		})
	}
	return newTable([]string{"bar", "open", "high", "low", "close", "span"}, rows)
}

func newTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(subtleStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}
