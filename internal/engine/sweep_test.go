package engine

import (
	"testing"

	"github.com/piwi3910/tentlayout/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Idempotence law (spec.md §8): when every column is pure and railLength
// minus twice minSetback is an exact multiple of the column's fillLength,
// sweeping should not change the per-column gap.
func TestSweepOpenEndPureColumnExactMultiple(t *testing.T) {
	col := model.ColumnType{
		BraceLength: 2.0, BraceWidth: 1.0, ColumnWidth: 1.0,
		FillLength: 2.0, BraceCount: 5, Gap: 0,
	}
	sol := model.DPSolution{Columns: []model.ColumnType{col}, BraceUsage: map[string]int{col.Key(): 5}}
	constraints := model.DefaultConstraints()

	// usable length exactly 10m = 5 * 2.0m fill, zero gap achievable.
	railLength := 10.0 + 2*constraints.MinSetback
	refined, ok := SweepOpenEnd(sol, railLength, constraints)
	require.True(t, ok)
	assert.InDelta(t, 0, refined.TotalGap, mmTolerance)
	assert.Len(t, refined.Columns, 1)
	assert.Equal(t, 5, refined.Columns[0].BraceCount)
}

func TestSweepOpenEndSetbacksSymmetric(t *testing.T) {
	col := model.ColumnType{BraceLength: 2.0, BraceWidth: 1.0, ColumnWidth: 1.0, FillLength: 2.0, BraceCount: 5, Gap: 0}
	sol := model.DPSolution{Columns: []model.ColumnType{col}, BraceUsage: map[string]int{col.Key(): 5}}
	constraints := model.DefaultConstraints()

	railLength := 10.3
	refined, ok := SweepOpenEnd(sol, railLength, constraints)
	require.True(t, ok)
	assert.Equal(t, refined.OpenEndSetbackStart, refined.OpenEndSetbackEnd)
}

func TestSweepOpenEndFailsWhenRailTooShort(t *testing.T) {
	col := model.ColumnType{BraceLength: 2.0, BraceWidth: 1.0, ColumnWidth: 1.0, FillLength: 2.0, BraceCount: 5, Gap: 0}
	sol := model.DPSolution{Columns: []model.ColumnType{col}, BraceUsage: map[string]int{col.Key(): 5}}
	constraints := model.DefaultConstraints()

	_, ok := SweepOpenEnd(sol, 0.1, constraints)
	assert.False(t, ok)
}
