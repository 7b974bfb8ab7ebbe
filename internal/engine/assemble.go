package engine

import (
	"math"
	"sort"

	"github.com/piwi3910/tentlayout/internal/model"
)

// AssembleScenario converts a named DPSolution plus its orientation into
// the external Scenario record (C8): absolute column positions, actual
// setbacks, rail-segment layout, and rounded-to-millimeter measurements.
func AssembleScenario(name string, sol model.DPSolution, railInventory []model.Rail, constraints model.Constraints) model.Scenario {
	nCols := len(sol.Columns)

	usableWidth := sol.ColumnSpanUsed - 2*constraints.MinSetback
	var totalColumnWidth float64
	for _, c := range sol.Columns {
		totalColumnWidth += c.ColumnWidth
	}
	actualSetback := constraints.MinSetback + math.Max(0,
		(usableWidth-totalColumnWidth-float64(nCols+1)*model.RailThickness)/2)

	columns := append([]model.ColumnType(nil), sol.Columns...)
	sort.SliceStable(columns, func(i, j int) bool {
		ai, aj := columns[i].BraceLength*columns[i].BraceWidth, columns[j].BraceLength*columns[j].BraceWidth
		if ai != aj {
			return ai < aj
		}
		if columns[i].Rotated != columns[j].Rotated {
			return !columns[i].Rotated && columns[j].Rotated
		}
		return false
	})

	placements := make([]model.ColumnPlacement, 0, nCols)
	pos := actualSetback + model.RailThickness
	for _, c := range columns {
		placements = append(placements, model.ColumnPlacement{
			Column:   roundColumn(c),
			Position: roundMM(pos),
		})
		pos += c.ColumnWidth + model.RailThickness
	}

	openStart, openEnd := sol.OpenEndSetbackStart, sol.OpenEndSetbackEnd
	if openStart == 0 && openEnd == 0 {
		openStart, openEnd = constraints.MinSetback, constraints.MinSetback
	}

	pattern := BuildRailTrack(sol.OptimizedUsableLength, railInventory)
	tracks := make([][]model.RailSegment, nCols+1)
	for i := range tracks {
		tracks[i] = append([]model.RailSegment(nil), pattern...)
	}

	var totalGapArea float64
	for _, c := range sol.Columns {
		totalGapArea += c.Gap * c.ColumnWidth
	}

	return model.Scenario{
		Name:                name,
		Setback:             roundMM(actualSetback),
		OpenEndSetbackStart: roundMM(openStart),
		OpenEndSetbackEnd:   roundMM(openEnd),
		Columns:             placements,
		Rails:               tracks,
		UsableWidth:         roundMM(totalColumnWidth),
		UsableLength:        roundMM(sol.OptimizedUsableLength),
		TentLength:          roundMM(sol.RailLengthUsed),
		TentWidth:           roundMM(sol.ColumnSpanUsed),
		TotalGap:            roundMM(totalGapArea),
		DistinctBraceTypes:  sol.DistinctBraceTypes,
	}
}

func roundColumn(c model.ColumnType) model.ColumnType {
	c.BraceLength = roundMM(c.BraceLength)
	c.BraceWidth = roundMM(c.BraceWidth)
	c.ColumnWidth = roundMM(c.ColumnWidth)
	c.FillLength = roundMM(c.FillLength)
	c.Gap = roundMM(c.Gap)
	for i := range c.BracePlacements {
		c.BracePlacements[i].BraceLength = roundMM(c.BracePlacements[i].BraceLength)
		c.BracePlacements[i].BraceWidth = roundMM(c.BracePlacements[i].BraceWidth)
		c.BracePlacements[i].FillLength = roundMM(c.BracePlacements[i].FillLength)
	}
	return c
}
