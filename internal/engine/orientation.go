package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/tentlayout/internal/model"
	"golang.org/x/sync/errgroup"
)

// orientationOutcome is one orientation's pipeline result.
type orientationOutcome struct {
	railLength     float64
	columnSpan     float64
	solutions      []model.DPSolution
	diagnostic     string
	gapWaived      bool
	noColumnTypes  bool // C2 found no feasible column type at all
}

// RunOrientations runs the column-type/DP/sweep pipeline for both tent
// orientations (rails along length, and — for non-square tents — rails
// along width), merging the survivors in fixed orientation order (C6). The
// two orientation runs are dispatched concurrently; their diagnostics are
// combined into a single error only if neither orientation yields a
// survivor: NoFeasibleColumn when no orientation had any column type,
// NoFeasibleLayout otherwise.
func RunOrientations(tent model.Tent, inventory model.Inventory, constraints model.Constraints) ([]model.DPSolution, error) {
	square := math.Abs(tent.Length-tent.Width) <= mmTolerance*10 // 1 cm tolerance

	var g errgroup.Group
	var outcomeA, outcomeB orientationOutcome
	var haveB bool

	g.Go(func() error {
		outcomeA = runOrientation(tent.Length, tent.Width, inventory, constraints)
		return nil
	})
	if !square {
		haveB = true
		g.Go(func() error {
			outcomeB = runOrientation(tent.Width, tent.Length, inventory, constraints)
			return nil
		})
	}
	_ = g.Wait()

	var merged []model.DPSolution
	merged = append(merged, outcomeA.solutions...)
	if haveB {
		merged = append(merged, outcomeB.solutions...)
	}

	if len(merged) == 0 {
		msg := fmt.Sprintf("orientation(rails=length): %s", outcomeA.diagnostic)
		noColumnTypes := outcomeA.noColumnTypes
		if haveB {
			msg += fmt.Sprintf("; orientation(rails=width): %s", outcomeB.diagnostic)
			noColumnTypes = noColumnTypes && outcomeB.noColumnTypes
		}
		if noColumnTypes {
			return nil, model.NewLayoutError(model.NoFeasibleColumn, "%s", msg)
		}
		return nil, model.NewLayoutError(model.NoFeasibleLayout, "%s", msg)
	}

	return merged, nil
}

// runOrientation runs C2-C5 for one orientation assignment: rails span
// railLength, columns span columnSpan.
func runOrientation(railLength, columnSpan float64, inventory model.Inventory, constraints model.Constraints) orientationOutcome {
	outcome := orientationOutcome{railLength: railLength, columnSpan: columnSpan}

	maxUsableLength := railLength - 2*constraints.MinSetback
	targetWidth := columnSpan - 2*constraints.MinSetback

	columnTypes := EnumerateColumnTypes(inventory.Braces, maxUsableLength)
	if len(columnTypes) == 0 {
		outcome.diagnostic = "no brace type has both quantity and orientation to form a column fitting the usable length"
		outcome.noColumnTypes = true
		return outcome
	}

	dpSolutions, err := RunColumnDP(columnTypes, targetWidth, inventory, constraints)
	if err != nil {
		outcome.diagnostic = err.Error()
		return outcome
	}

	survivors := sweepAndFilter(dpSolutions, railLength, constraints, false)
	gapWaived := false
	if len(survivors) == 0 {
		survivors = sweepAndFilter(dpSolutions, railLength, constraints, true)
		gapWaived = len(survivors) > 0
		if gapWaived {
			log.Debug().Float64("railLength", railLength).Float64("columnSpan", columnSpan).
				Msg("gap cap waived to salvage feasible layouts")
		}
	}

	for i := range survivors {
		survivors[i].RailLengthUsed = railLength
		survivors[i].ColumnSpanUsed = columnSpan
	}

	outcome.solutions = survivors
	outcome.gapWaived = gapWaived
	if len(survivors) == 0 {
		outcome.diagnostic = "dynamic program reached solutions but none survived the open-end sweep"
	}
	return outcome
}

// sweepAndFilter runs the open-end sweep over every DPSolution and applies
// the downstream setback filter. When waiveGap is true the per-column gap
// cap is ignored (graceful degradation per §4.5).
func sweepAndFilter(dpSolutions []model.DPSolution, railLength float64, constraints model.Constraints, waiveGap bool) []model.DPSolution {
	effective := constraints
	if waiveGap {
		effective.MaxColumnGap = math.Inf(1)
	}

	var survivors []model.DPSolution
	for _, sol := range dpSolutions {
		refined, ok := SweepOpenEnd(sol, railLength, effective)
		if !ok {
			continue
		}
		if !passesSetbackFilter(refined, constraints) {
			continue
		}
		survivors = append(survivors, refined)
	}
	return survivors
}

// passesSetbackFilter enforces invariant 4: the span-axis setback and both
// open-end setbacks must fall within [minSetback, maxSetback].
func passesSetbackFilter(sol model.DPSolution, constraints model.Constraints) bool {
	setback := constraints.MinSetback + sol.SetbackExcess/2
	if !geq(setback, constraints.MinSetback) || !leq(setback, constraints.MaxSetback) {
		return false
	}
	if !geq(sol.OpenEndSetbackStart, constraints.MinSetback) || !leq(sol.OpenEndSetbackStart, constraints.MaxSetback) {
		return false
	}
	if !geq(sol.OpenEndSetbackEnd, constraints.MinSetback) || !leq(sol.OpenEndSetbackEnd, constraints.MaxSetback) {
		return false
	}
	return true
}
