package engine

import (
	"sort"

	"github.com/piwi3910/tentlayout/internal/model"
)

// paretoCap is the maximum number of solutions retained per width.
const paretoCap = 50

// dominates reports whether s dominates c on the (totalGap,
// distinctBraceTypes, columnCount) tuple: s is at least as good on every
// dimension. A tie on all three counts as domination, so a candidate equal
// to an existing member is dropped and the existing member kept (spec.md §4.4).
func dominates(s, c model.DPSolution) bool {
	return s.TotalGap <= c.TotalGap+mmTolerance &&
		s.DistinctBraceTypes <= c.DistinctBraceTypes &&
		len(s.Columns) <= len(c.Columns)
}

// paretoSet is the set of non-dominated DPSolutions reached at one width.
type paretoSet struct {
	solutions []model.DPSolution
}

// add inserts candidate into the set, dropping it if any existing member
// dominates it, and otherwise dropping any existing members the candidate
// dominates. After insertion the set is capped to paretoCap entries,
// retaining those with the smallest totalGap.
func (ps *paretoSet) add(candidate model.DPSolution) {
	for _, s := range ps.solutions {
		if dominates(s, candidate) {
			return
		}
	}

	kept := ps.solutions[:0:0]
	for _, s := range ps.solutions {
		if !dominates(candidate, s) {
			kept = append(kept, s)
		}
	}
	kept = append(kept, candidate)
	ps.solutions = kept

	if len(ps.solutions) > paretoCap {
		sort.Slice(ps.solutions, func(i, j int) bool {
			return ps.solutions[i].TotalGap < ps.solutions[j].TotalGap
		})
		ps.solutions = ps.solutions[:paretoCap]
	}
}
