package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/piwi3910/tentlayout/internal/model"
)

func copyUsage(src map[string]int) map[string]int {
	dst := make(map[string]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func countDistinct(usage map[string]int) int {
	n := 0
	for _, v := range usage {
		if v > 0 {
			n++
		}
	}
	return n
}

// RunColumnDP enumerates compositions of columnTypes plus one rail
// between/beside every column, over the span axis up to targetWidth
// meters, maintaining a Pareto-pruned set of DPSolutions per reached
// width (C4). It returns every terminal solution reached within
// [targetWidth - 2*(maxSetback-minSetback), targetWidth], or an error
// describing why none were found.
func RunColumnDP(columnTypes []model.ColumnType, targetWidth float64, inventory model.Inventory, constraints model.Constraints) ([]model.DPSolution, error) {
	railCm := toCm(model.RailThickness)
	targetCm := toCm(targetWidth)
	if targetCm < railCm {
		return nil, fmt.Errorf("usable width %.3fm too small for a single rail", targetWidth)
	}

	states := make(map[int]*paretoSet)
	states[railCm] = &paretoSet{solutions: []model.DPSolution{{
		BraceUsage: map[string]int{},
	}}}

	for w := railCm; w <= targetCm; w++ {
		ps, ok := states[w]
		if !ok || len(ps.solutions) == 0 {
			continue
		}
		for _, sol := range ps.solutions {
			for _, ct := range columnTypes {
				colWidthCm := toCm(ct.ColumnWidth)
				newWidth := w + colWidthCm + railCm
				if newWidth > targetCm {
					continue
				}

				usage := copyUsage(sol.BraceUsage)
				feasible := true
				if ct.Mixed {
					for _, p := range ct.BracePlacements {
						k := p.Key()
						usage[k] += p.Count
						if usage[k] > inventory.BraceQuantity(k) {
							feasible = false
							break
						}
					}
				} else {
					k := ct.Key()
					usage[k] += ct.BraceCount
					if usage[k] > inventory.BraceQuantity(k) {
						feasible = false
					}
				}
				if !feasible {
					continue
				}

				newCols := make([]model.ColumnType, len(sol.Columns)+1)
				copy(newCols, sol.Columns)
				newCols[len(sol.Columns)] = ct

				newSol := model.DPSolution{
					Columns:            newCols,
					BraceUsage:         usage,
					DistinctBraceTypes: countDistinct(usage),
					TotalGap:           sol.TotalGap + ct.Gap,
				}

				if states[newWidth] == nil {
					states[newWidth] = &paretoSet{}
				}
				states[newWidth].add(newSol)
			}
		}
	}

	maxIncreaseCm := toCm(2 * (constraints.MaxSetback - constraints.MinSetback))
	lowCm := targetCm - maxIncreaseCm
	if lowCm < railCm {
		lowCm = railCm
	}

	var results []model.DPSolution
	for w := lowCm; w <= targetCm; w++ {
		ps, ok := states[w]
		if !ok {
			continue
		}
		for _, s := range ps.solutions {
			if len(s.Columns) == 0 {
				continue
			}
			s.SetbackExcess = toMeters(targetCm - w)
			s.ID = uuid.New().String()
			results = append(results, s)
		}
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no terminal column composition reached within [%.3fm, %.3fm] of target width %.3fm",
			toMeters(lowCm), toMeters(targetCm), targetWidth)
	}
	return results, nil
}
