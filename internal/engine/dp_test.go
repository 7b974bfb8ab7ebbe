package engine

import (
	"testing"

	"github.com/piwi3910/tentlayout/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunColumnDPFindsExactFit(t *testing.T) {
	columnTypes := []model.ColumnType{
		{BraceLength: 2.45, BraceWidth: 1.22, ColumnWidth: 1.22, FillLength: 2.45, BraceCount: 4, Gap: 0.2},
	}
	inventory := model.Inventory{Braces: []model.Brace{{Length: 2.45, Width: 1.22, Quantity: 100}}}
	constraints := model.DefaultConstraints()

	// Two columns of width 1.22 plus three rails (0.05 each) = 2.59.
	targetWidth := 2*1.22 + 3*model.RailThickness
	solutions, err := RunColumnDP(columnTypes, targetWidth, inventory, constraints)
	require.NoError(t, err)
	require.NotEmpty(t, solutions)

	found := false
	for _, s := range solutions {
		if len(s.Columns) == 2 {
			found = true
		}
	}
	assert.True(t, found, "expected a 2-column terminal solution")
}

func TestRunColumnDPRespectsInventoryQuantity(t *testing.T) {
	columnTypes := []model.ColumnType{
		{BraceLength: 2.45, BraceWidth: 1.22, ColumnWidth: 1.22, FillLength: 2.45, BraceCount: 4, Gap: 0.2},
	}
	// Only 4 braces total: at most one column can be built.
	inventory := model.Inventory{Braces: []model.Brace{{Length: 2.45, Width: 1.22, Quantity: 4}}}
	constraints := model.DefaultConstraints()

	targetWidth := 2*1.22 + 3*model.RailThickness
	solutions, err := RunColumnDP(columnTypes, targetWidth, inventory, constraints)
	if err == nil {
		for _, s := range solutions {
			assert.LessOrEqual(t, len(s.Columns), 1)
		}
	}
}

func TestRunColumnDPErrorsWhenNoCompositionFits(t *testing.T) {
	columnTypes := []model.ColumnType{
		{BraceLength: 5, BraceWidth: 5, ColumnWidth: 5, FillLength: 5, BraceCount: 1, Gap: 0},
	}
	inventory := model.Inventory{Braces: []model.Brace{{Length: 5, Width: 5, Quantity: 10}}}
	constraints := model.DefaultConstraints()

	_, err := RunColumnDP(columnTypes, 1.0, inventory, constraints)
	require.Error(t, err)
}
