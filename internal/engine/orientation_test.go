package engine

import (
	"errors"
	"testing"

	"github.com/piwi3910/tentlayout/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOrientationsReturnsNoFeasibleColumnWhenNoBraceFits(t *testing.T) {
	tent := model.Tent{Length: 10, Width: 8}
	// Every brace dimension exceeds the usable length in both orientations.
	inventory := model.Inventory{Braces: []model.Brace{{Length: 50, Width: 40, Quantity: 10}}}
	constraints := model.DefaultConstraints()

	_, err := RunOrientations(tent, inventory, constraints)
	require.Error(t, err)

	var layoutErr *model.LayoutError
	require.True(t, errors.As(err, &layoutErr))
	assert.Equal(t, model.NoFeasibleColumn, layoutErr.Kind)
}

func TestRunOrientationsReturnsNoFeasibleLayoutWhenColumnsExistButNoLayoutFits(t *testing.T) {
	tent := model.Tent{Length: 10, Width: 8}
	// Braces fit individually but there is only one in stock, so no
	// composition of columns can span the width axis.
	inventory := model.Inventory{Braces: []model.Brace{{Length: 2, Width: 1, Quantity: 1}}}
	constraints := model.DefaultConstraints()

	_, err := RunOrientations(tent, inventory, constraints)
	require.Error(t, err)

	var layoutErr *model.LayoutError
	require.True(t, errors.As(err, &layoutErr))
	assert.Equal(t, model.NoFeasibleLayout, layoutErr.Kind)
}

func TestRunOrientationsSquareTentRunsOneOrientation(t *testing.T) {
	tent := model.Tent{Length: 10, Width: 10}
	inventory := model.DefaultInventory()
	constraints := model.DefaultConstraints()

	solutions, err := RunOrientations(tent, inventory, constraints)
	require.NoError(t, err)
	assert.NotEmpty(t, solutions)
}
