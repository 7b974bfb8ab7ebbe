package model

import (
	"fmt"

	"github.com/google/uuid"
)

// RailThickness is the fixed rail beam thickness across the span axis, in meters.
const RailThickness = 0.05

// Precision is the internal discretization step, in meters (one centimeter).
const Precision = 0.01

// DefaultMinSetback, DefaultMaxSetback and DefaultMaxColumnGap are the
// Constraints defaults applied when a CalculationRequest omits them.
const (
	DefaultMinSetback   = 0.08
	DefaultMaxSetback   = 0.25
	DefaultMaxColumnGap = 0.39
)

// Brace is an available rectangular floor panel. Immutable input.
type Brace struct {
	ID       string  `json:"id"`
	Length   float64 `json:"length"`   // meters
	Width    float64 `json:"width"`    // meters
	Quantity int     `json:"quantity"` // >= 1
}

// NewBrace builds a Brace with a generated inventory ID.
func NewBrace(length, width float64, qty int) Brace {
	return Brace{
		ID:       uuid.New().String()[:8],
		Length:   length,
		Width:    width,
		Quantity: qty,
	}
}

// Key returns the normalized natural-dimension key used by braceUsage maps.
// Rotation never changes this key.
func (b Brace) Key() string {
	return brKey(b.Length, b.Width)
}

func brKey(length, width float64) string {
	return fmt.Sprintf("%.2f×%.2f", length, width)
}

// Rail is an available beam, fixed thickness RailThickness across the width axis.
type Rail struct {
	ID       string  `json:"id"`
	Length   float64 `json:"length"`   // meters
	Quantity int     `json:"quantity"` // >= 1
}

// NewRail builds a Rail with a generated inventory ID.
func NewRail(length float64, qty int) Rail {
	return Rail{
		ID:       uuid.New().String()[:8],
		Length:   length,
		Quantity: qty,
	}
}

// Tent is the rectangular venue whose floor is planned.
type Tent struct {
	Length float64 `json:"length"` // meters
	Width  float64 `json:"width"`  // meters
}

// Constraints bounds the layout's setbacks and per-column gap.
type Constraints struct {
	MinSetback   float64 `json:"minSetback"`
	MaxSetback   float64 `json:"maxSetback"`
	MaxColumnGap float64 `json:"maxColumnGap"`
}

// DefaultConstraints returns the engine's built-in constraint defaults.
func DefaultConstraints() Constraints {
	return Constraints{
		MinSetback:   DefaultMinSetback,
		MaxSetback:   DefaultMaxSetback,
		MaxColumnGap: DefaultMaxColumnGap,
	}
}

// BracePlacement is one brace type's contribution to a (possibly mixed) column.
type BracePlacement struct {
	BraceLength float64 `json:"braceLength"`
	BraceWidth  float64 `json:"braceWidth"`
	Rotated     bool    `json:"rotated"`
	FillLength  float64 `json:"fillLength"` // meters, this placement's own rail-axis span
	Count       int     `json:"count"`
}

// Key returns the normalized natural-dimension key for this placement's brace.
func (p BracePlacement) Key() string {
	return brKey(p.BraceLength, p.BraceWidth)
}

// ColumnType is a recipe for one column of the layout.
type ColumnType struct {
	BraceLength     float64          `json:"braceLength"`
	BraceWidth      float64          `json:"braceWidth"`
	Rotated         bool             `json:"rotated"`
	ColumnWidth     float64          `json:"columnWidth"` // span-axis footprint, meters
	FillLength      float64          `json:"fillLength"`  // rail-axis span of one dominant brace, meters
	BraceCount      int              `json:"braceCount"`
	Gap             float64          `json:"gap"` // meters, unfilled rail-axis length
	Mixed           bool             `json:"mixed"`
	BracePlacements []BracePlacement `json:"bracePlacements,omitempty"`
}

// Key returns the normalized natural-dimension key of the column's dominant brace.
func (c ColumnType) Key() string {
	return brKey(c.BraceLength, c.BraceWidth)
}

// DPSolution is an internal candidate layout produced by the column DP (C4)
// and refined by the open-end sweep (C5).
type DPSolution struct {
	ID                   string
	SetbackExcess        float64 // meters
	TotalGap             float64 // meters, sum of column gaps (not yet area-weighted)
	Columns              []ColumnType
	BraceUsage           map[string]int
	DistinctBraceTypes   int
	OptimizedUsableLength float64
	OpenEndSetbackStart  float64
	OpenEndSetbackEnd    float64

	// RailLengthUsed and ColumnSpanUsed record the orientation this solution
	// was produced under: rails run along RailLengthUsed, columns span
	// ColumnSpanUsed.
	RailLengthUsed float64
	ColumnSpanUsed float64
}

// TotalBraceCount returns the sum of brace counts across all columns.
func (s DPSolution) TotalBraceCount() int {
	total := 0
	for _, c := range s.Columns {
		total += c.BraceCount
	}
	return total
}

// ColumnPlacement is one column plus its absolute span-axis position.
type ColumnPlacement struct {
	Column   ColumnType `json:"column"`
	Position float64    `json:"position"` // meters, from the tent edge
}

// RailSegment is one piece of a rail track.
type RailSegment struct {
	Length   float64 `json:"length"`   // meters
	Position float64 `json:"position"` // meters, from the track start
}

// Scenario is a named, fully assembled layout returned to callers.
type Scenario struct {
	Name                string              `json:"name"`
	Setback             float64             `json:"setback"`             // span axis, meters
	OpenEndSetbackStart float64             `json:"openEndSetbackStart"` // rail axis, meters
	OpenEndSetbackEnd   float64             `json:"openEndSetbackEnd"`   // rail axis, meters
	Columns             []ColumnPlacement   `json:"columns"`
	Rails               [][]RailSegment     `json:"rails"` // one inner list per rail track, all tracks share one pattern
	UsableWidth         float64             `json:"usableWidth"`
	UsableLength        float64             `json:"usableLength"`
	TentLength          float64             `json:"tentLength"`
	TentWidth           float64             `json:"tentWidth"`
	TotalGap            float64             `json:"totalGap"` // m^2, area = sum gap * columnWidth
	DistinctBraceTypes  int                 `json:"distinctBraceTypes"`
}

// Inventory holds the available braces and rails for a request.
type Inventory struct {
	Braces []Brace `json:"braces"`
	Rails  []Rail  `json:"rails"`
}

// CalculationRequest is the core engine's input.
type CalculationRequest struct {
	Tent        Tent         `json:"tent"`
	Inventory   *Inventory   `json:"inventory,omitempty"`
	Constraints *Constraints `json:"constraints,omitempty"`
}

// CalculationResponse is the core engine's output.
type CalculationResponse struct {
	Scenarios []Scenario `json:"scenarios"`
	Tent      Tent       `json:"tent"`
}
