package models

import "github.com/shopspring/decimal"

// Direction of a price move.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// MarkType is the symbol of a Point & Figure mark.
type MarkType string

const (
	MarkX MarkType = "X" // up move
	MarkO MarkType = "O" // down move
)

// RenkoBrick is one fixed-height block. Price is the level reached after the move;
// Low and High are the brick bounds used for drawing.
type RenkoBrick struct {
	Index     int             `json:"index" example:"12"`
	Price     decimal.Decimal `json:"price" swaggertype:"number" example:"38"`
	Direction Direction       `json:"direction" example:"up"`
	Low       decimal.Decimal `json:"low" swaggertype:"number" example:"38"`
	High      decimal.Decimal `json:"high" swaggertype:"number" example:"40"`
}

// KagiSegment is a point where the Kagi line makes a new extreme or reverses.
type KagiSegment struct {
	Index int             `json:"index" example:"7"`
	Price decimal.Decimal `json:"price" swaggertype:"number" example:"36.4"`
	Trend Direction       `json:"trend" example:"down"`
}

// PointFigureMark is one X or O in a Point & Figure column.
type PointFigureMark struct {
	Column int             `json:"column" example:"3"`
	Price  decimal.Decimal `json:"price" swaggertype:"number" example:"37"`
	Type   MarkType        `json:"type" example:"X"`
}

// RangeBar is a bar accumulated from one or more input bars until its span reached
// the configured range. Index is the input bar that completed it.
type RangeBar struct {
	Index int             `json:"index" example:"21"`
	Open  decimal.Decimal `json:"open" swaggertype:"number" example:"36.1"`
	High  decimal.Decimal `json:"high" swaggertype:"number" example:"38.2"`
	Low   decimal.Decimal `json:"low" swaggertype:"number" example:"36"`
	Close decimal.Decimal `json:"close" swaggertype:"number" example:"38.05"`
}

// ChartSet groups the four alternative representations of one series.
type ChartSet struct {
	Renko       []RenkoBrick      `json:"renko"`
	Kagi        []KagiSegment     `json:"kagi"`
	PointFigure []PointFigureMark `json:"point_figure"`
	RangeBars   []RangeBar        `json:"range_bars"`
}
