package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/piwi3910/tentlayout/internal/model"
)

// maxScenarios is the hard cap on selected solutions (C7).
const maxScenarios = 20

// minScenarioFill is the target floor the "Option k" fill category tries
// to reach when the pool allows it.
const minScenarioFill = 6

// NamedSolution pairs a DPSolution with its selection-category name.
type NamedSolution struct {
	Name     string
	Solution model.DPSolution
}

// braceCoverage returns, for a solution, the largest per-unit brace area
// present (over natural-dimension keys) and the total floor area all
// placements of that brace key cover across the whole solution.
func braceCoverage(sol model.DPSolution) (area, coverage float64) {
	areaByKey := map[string]float64{}
	coverageByKey := map[string]float64{}

	visit := func(length, width float64, count int) {
		key := fmt.Sprintf("%.2f×%.2f", length, width)
		a := length * width
		areaByKey[key] = a
		coverageByKey[key] += a * float64(count)
	}

	for _, c := range sol.Columns {
		if c.Mixed {
			for _, p := range c.BracePlacements {
				visit(p.BraceLength, p.BraceWidth, p.Count)
			}
		} else {
			visit(c.BraceLength, c.BraceWidth, c.BraceCount)
		}
	}

	bestKey := ""
	for k, a := range areaByKey {
		if bestKey == "" || a > areaByKey[bestKey] {
			bestKey = k
			area = a
		}
	}
	if bestKey != "" {
		coverage = coverageByKey[bestKey]
	}
	return area, coverage
}

// pickTop selects up to n solutions from pool in the order given by less,
// skipping any already present in selected. Selected solutions still count
// toward exhausting the candidate list but never consume the quota.
func pickTop(pool []model.DPSolution, selected map[string]bool, less func(a, b model.DPSolution) bool, n int) []model.DPSolution {
	sorted := append([]model.DPSolution(nil), pool...)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })

	var picked []model.DPSolution
	for _, s := range sorted {
		if len(picked) >= n {
			break
		}
		if selected[s.ID] {
			continue
		}
		picked = append(picked, s)
		selected[s.ID] = true
	}
	return picked
}

// SelectScenarios picks up to maxScenarios distinct solutions from the
// merged pool by named criteria (C7), deterministic given the pool's
// ordering.
func SelectScenarios(pool []model.DPSolution) []NamedSolution {
	if len(pool) == 0 {
		return nil
	}

	selected := map[string]bool{}
	var named []NamedSolution

	add := func(name string, sols []model.DPSolution) {
		for _, s := range sols {
			if len(named) >= maxScenarios {
				return
			}
			named = append(named, NamedSolution{Name: name, Solution: s})
		}
	}

	// 1. Best Width Fit: argmin (setbackExcess, totalGap).
	add("Best Width Fit", pickTop(pool, selected, func(a, b model.DPSolution) bool {
		if math.Abs(a.SetbackExcess-b.SetbackExcess) > mmTolerance {
			return a.SetbackExcess < b.SetbackExcess
		}
		return a.TotalGap < b.TotalGap
	}, 1))

	// 2. Least Brace Kinds: argmin (distinctBraceTypes, totalGap).
	add("Least Brace Kinds", pickTop(pool, selected, func(a, b model.DPSolution) bool {
		if a.DistinctBraceTypes != b.DistinctBraceTypes {
			return a.DistinctBraceTypes < b.DistinctBraceTypes
		}
		return a.TotalGap < b.TotalGap
	}, 1))

	// 3. Minimum Gaps x1-3, drawn only from solutions that no other pool
	// member beats on both setbackExcess and totalGap.
	var nonDominated []model.DPSolution
	for _, c := range pool {
		dominated := false
		for _, s := range pool {
			if s.SetbackExcess <= c.SetbackExcess && s.TotalGap <= c.TotalGap &&
				(s.SetbackExcess < c.SetbackExcess || s.TotalGap < c.TotalGap) {
				dominated = true
				break
			}
		}
		if !dominated {
			nonDominated = append(nonDominated, c)
		}
	}
	minGaps := pickTop(nonDominated, selected, func(a, b model.DPSolution) bool {
		if math.Abs(a.TotalGap-b.TotalGap) > mmTolerance {
			return a.TotalGap < b.TotalGap
		}
		return a.SetbackExcess < b.SetbackExcess
	}, 3)
	for i, s := range minGaps {
		if len(named) >= maxScenarios {
			break
		}
		named = append(named, NamedSolution{Name: fmt.Sprintf("Minimum Gaps %d", i+1), Solution: s})
	}

	// 4. Least Rails x1-3: column counts up to min+1 ("rails" = columns+1).
	minCols := len(pool[0].Columns)
	for _, s := range pool {
		if len(s.Columns) < minCols {
			minCols = len(s.Columns)
		}
	}
	var railEligible []model.DPSolution
	for _, s := range pool {
		if len(s.Columns) <= minCols+1 {
			railEligible = append(railEligible, s)
		}
	}
	leastRails := pickTop(railEligible, selected, func(a, b model.DPSolution) bool {
		if len(a.Columns) != len(b.Columns) {
			return len(a.Columns) < len(b.Columns)
		}
		return a.TotalGap < b.TotalGap
	}, 3)
	for i, s := range leastRails {
		if len(named) >= maxScenarios {
			break
		}
		named = append(named, NamedSolution{Name: fmt.Sprintf("Least Rails %d", i+1), Solution: s})
	}

	// 5. Least Braces x1-2.
	leastBraces := pickTop(pool, selected, func(a, b model.DPSolution) bool {
		return a.TotalBraceCount() < b.TotalBraceCount()
	}, 2)
	for i, s := range leastBraces {
		if len(named) >= maxScenarios {
			break
		}
		named = append(named, NamedSolution{Name: fmt.Sprintf("Least Braces %d", i+1), Solution: s})
	}

	// 6. Biggest Braces x1-3.
	biggest := pickTop(pool, selected, func(a, b model.DPSolution) bool {
		aArea, aCov := braceCoverage(a)
		bArea, bCov := braceCoverage(b)
		if math.Abs(aArea-bArea) > mmTolerance {
			return aArea > bArea
		}
		if math.Abs(aCov-bCov) > mmTolerance {
			return aCov > bCov
		}
		return a.TotalGap < b.TotalGap
	}, 3)
	for i, s := range biggest {
		if len(named) >= maxScenarios {
			break
		}
		named = append(named, NamedSolution{Name: fmt.Sprintf("Biggest Braces %d", i+1), Solution: s})
	}

	// 7. Balanced: knee point by normalized Euclidean distance to origin.
	minSE, maxSE := poolRange(pool, func(s model.DPSolution) float64 { return s.SetbackExcess })
	minTG, maxTG := poolRange(pool, func(s model.DPSolution) float64 { return s.TotalGap })
	balanced := pickTop(pool, selected, func(a, b model.DPSolution) bool {
		return knee(a, minSE, maxSE, minTG, maxTG) < knee(b, minSE, maxSE, minTG, maxTG)
	}, 1)
	if len(balanced) > 0 {
		named = append(named, NamedSolution{Name: "Balanced", Solution: balanced[0]})
	}

	// 8. Balanced 2...: evenly sample the pool sorted by totalGap.
	byGap := append([]model.DPSolution(nil), pool...)
	sort.SliceStable(byGap, func(i, j int) bool { return byGap[i].TotalGap < byGap[j].TotalGap })
	idx := 2
	for len(named) < maxScenarios && len(named) < minScenarioFill {
		remaining := minScenarioFill - len(named)
		if remaining <= 0 {
			break
		}
		stride := len(byGap) / (remaining + 1)
		if stride < 1 {
			stride = 1
		}
		before := len(named)
		for pos := stride; pos < len(byGap) && len(named) < maxScenarios && len(named) < minScenarioFill; pos += stride {
			s := byGap[pos]
			if selected[s.ID] {
				continue
			}
			selected[s.ID] = true
			named = append(named, NamedSolution{Name: fmt.Sprintf("Balanced %d", idx), Solution: s})
			idx++
		}
		if len(named) == before {
			break // no progress possible, avoid infinite loop
		}
	}

	// 9. Option k: final fill to reach at least minScenarioFill where available.
	k := 1
	for _, s := range byGap {
		if len(named) >= maxScenarios || len(named) >= minScenarioFill {
			break
		}
		if selected[s.ID] {
			continue
		}
		selected[s.ID] = true
		named = append(named, NamedSolution{Name: fmt.Sprintf("Option %d", k), Solution: s})
		k++
	}

	return named
}

func poolRange(pool []model.DPSolution, f func(model.DPSolution) float64) (min, max float64) {
	min, max = f(pool[0]), f(pool[0])
	for _, s := range pool[1:] {
		v := f(s)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func normalize(v, lo, hi float64) float64 {
	if hi-lo <= mmTolerance {
		return 0
	}
	return (v - lo) / (hi - lo)
}

func knee(s model.DPSolution, minSE, maxSE, minTG, maxTG float64) float64 {
	nx := normalize(s.SetbackExcess, minSE, maxSE)
	ny := normalize(s.TotalGap, minTG, maxTG)
	return math.Sqrt(nx*nx + ny*ny)
}
