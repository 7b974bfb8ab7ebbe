package engine

import (
	"testing"

	"github.com/piwi3910/tentlayout/internal/model"
	"github.com/stretchr/testify/assert"
)

// Scenario G from spec.md §8: a dominated solution must not appear in the
// Minimum Gaps or Best Width Fit selections.
func TestSelectScenariosExcludesDominated(t *testing.T) {
	pool := []model.DPSolution{
		{ID: "a", SetbackExcess: 0.1, TotalGap: 0.1, Columns: []model.ColumnType{{}}},
		{ID: "b", SetbackExcess: 0.2, TotalGap: 0.2, Columns: []model.ColumnType{{}}}, // dominated by a
		{ID: "c", SetbackExcess: 0.3, TotalGap: 0.05, Columns: []model.ColumnType{{}}},
	}

	named := SelectScenarios(pool)

	for _, n := range named {
		if n.Name == "Best Width Fit" || n.Name == "Minimum Gaps 1" {
			assert.NotEqual(t, "b", n.Solution.ID)
		}
	}
}

func TestSelectScenariosCapsAtTwenty(t *testing.T) {
	var pool []model.DPSolution
	for i := 0; i < 50; i++ {
		pool = append(pool, model.DPSolution{
			ID:            string(rune('a' + i%26)) + string(rune('A'+i/26)),
			SetbackExcess: float64(i) * 0.001,
			TotalGap:      float64(i) * 0.002,
			Columns:       []model.ColumnType{{}},
		})
	}
	named := SelectScenarios(pool)
	assert.LessOrEqual(t, len(named), maxScenarios)
}

func TestSelectScenariosNamesUnique(t *testing.T) {
	pool := []model.DPSolution{
		{ID: "a", SetbackExcess: 0.1, TotalGap: 0.1, Columns: []model.ColumnType{{}}},
		{ID: "b", SetbackExcess: 0.2, TotalGap: 0.2, Columns: []model.ColumnType{{}, {}}},
		{ID: "c", SetbackExcess: 0.3, TotalGap: 0.05, Columns: []model.ColumnType{{}, {}, {}}},
	}
	named := SelectScenarios(pool)
	seen := map[string]bool{}
	for _, n := range named {
		assert.False(t, seen[n.Name], "duplicate name %s", n.Name)
		seen[n.Name] = true
	}
}
