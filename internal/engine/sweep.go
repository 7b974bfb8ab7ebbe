package engine

import (
	"math"

	"github.com/piwi3910/tentlayout/internal/model"
)

// SweepOpenEnd re-solves a DPSolution's column fills across the feasible
// range of rail-direction usable lengths, keeping the length that
// minimizes total gap subject to the per-column gap cap (C5). It returns
// the refined solution and whether any feasible step was found.
func SweepOpenEnd(sol model.DPSolution, railLength float64, constraints model.Constraints) (model.DPSolution, bool) {
	minUsable := railLength - 2*constraints.MaxSetback
	maxUsable := railLength - 2*constraints.MinSetback
	if maxUsable <= 0 {
		return sol, false
	}

	minCm := toCm(minUsable)
	maxCm := toCm(maxUsable)
	if minCm < 1 {
		minCm = 1
	}

	bestGap := math.Inf(1)
	var bestUsable float64
	var bestColumns []model.ColumnType
	found := false

	for cm := minCm; cm <= maxCm; cm++ {
		usableLength := toMeters(cm)
		columns, total, ok := refitColumns(sol.Columns, usableLength, constraints.MaxColumnGap)
		if !ok {
			continue
		}
		if !found || total < bestGap-sweepEpsilon {
			found = true
			bestGap = total
			bestUsable = usableLength
			bestColumns = columns
		}
	}

	if !found {
		return sol, false
	}

	setback := (railLength - bestUsable) / 2
	sol.OptimizedUsableLength = bestUsable
	sol.OpenEndSetbackStart = setback
	sol.OpenEndSetbackEnd = setback
	sol.Columns = bestColumns
	sol.TotalGap = bestGap

	usage := map[string]int{}
	for _, c := range bestColumns {
		if c.Mixed {
			for _, p := range c.BracePlacements {
				usage[p.Key()] += p.Count
			}
		} else {
			usage[c.Key()] += c.BraceCount
		}
	}
	sol.BraceUsage = usage
	sol.DistinctBraceTypes = countDistinct(usage)

	return sol, true
}

// refitColumns rebuilds each column's fill at the given usableLength,
// aborting (ok=false) if any column can no longer fit or exceeds the gap
// cap. Mixed columns are re-solved via the knapsack; pure columns by
// simple floor division.
func refitColumns(columns []model.ColumnType, usableLength, maxColumnGap float64) ([]model.ColumnType, float64, bool) {
	out := make([]model.ColumnType, len(columns))
	var total float64

	for i, col := range columns {
		if col.Mixed {
			fillOptions := make([]float64, len(col.BracePlacements))
			for j, p := range col.BracePlacements {
				fillOptions[j] = p.FillLength
			}
			kr := SolveKnapsack(fillOptions, usableLength, nil)
			if len(kr.Placements) == 0 || kr.Gap > maxColumnGap+mmTolerance {
				return nil, 0, false
			}
			newCol := col
			newCol.Gap = kr.Gap
			newCol.BraceCount = 0
			newCol.BracePlacements = nil
			for _, p := range kr.Placements {
				newCol.BraceCount += p.Count
				newCol.BracePlacements = append(newCol.BracePlacements, findPlacementMeta(col.BracePlacements, p.FillLength, p.Count))
			}
			newCol.FillLength = newCol.BracePlacements[0].FillLength
			out[i] = newCol
			total += newCol.Gap
		} else {
			n := int(usableLength / col.FillLength)
			if n < 1 {
				return nil, 0, false
			}
			gap := usableLength - float64(n)*col.FillLength
			if gap > maxColumnGap+mmTolerance {
				return nil, 0, false
			}
			newCol := col
			newCol.BraceCount = n
			newCol.Gap = gap
			out[i] = newCol
			total += newCol.Gap
		}
	}

	return out, total, true
}

// findPlacementMeta recovers the natural-dimension/rotation metadata for a
// fillLength from the column's original placements, applying the new count.
func findPlacementMeta(placements []model.BracePlacement, fillLength float64, count int) model.BracePlacement {
	for _, p := range placements {
		if p.FillLength == fillLength {
			p.Count = count
			return p
		}
	}
	return model.BracePlacement{FillLength: fillLength, Count: count}
}
