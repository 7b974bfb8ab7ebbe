package engine

import (
	"testing"

	"github.com/piwi3910/tentlayout/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRejectsNonPositiveTent(t *testing.T) {
	req := model.CalculationRequest{Tent: model.Tent{Length: 0, Width: 5}}
	err := Validate(req, model.DefaultConstraints())
	require.Error(t, err)
	var layoutErr *model.LayoutError
	require.ErrorAs(t, err, &layoutErr)
	assert.Equal(t, model.InvalidTent, layoutErr.Kind)
}

func TestValidateRejectsInvertedConstraints(t *testing.T) {
	req := model.CalculationRequest{Tent: model.Tent{Length: 10, Width: 10}}
	bad := model.Constraints{MinSetback: 0.5, MaxSetback: 0.1, MaxColumnGap: 0.3}
	err := Validate(req, bad)
	require.Error(t, err)
	var layoutErr *model.LayoutError
	require.ErrorAs(t, err, &layoutErr)
	assert.Equal(t, model.InvalidConstraints, layoutErr.Kind)
}

func TestValidateRejectsTentSmallerThanSetbacks(t *testing.T) {
	req := model.CalculationRequest{Tent: model.Tent{Length: 0.1, Width: 0.1}}
	err := Validate(req, model.DefaultConstraints())
	require.Error(t, err)
	var layoutErr *model.LayoutError
	require.ErrorAs(t, err, &layoutErr)
	assert.Equal(t, model.InvalidTent, layoutErr.Kind)
}

func TestValidateRejectsInvalidBraceEntry(t *testing.T) {
	req := model.CalculationRequest{
		Tent:      model.Tent{Length: 10, Width: 10},
		Inventory: &model.Inventory{Braces: []model.Brace{{Length: 0, Width: 1, Quantity: 5}}},
	}
	err := Validate(req, model.DefaultConstraints())
	require.Error(t, err)
}

func TestValidateAcceptsWellFormedRequest(t *testing.T) {
	req := model.CalculationRequest{Tent: model.Tent{Length: 10, Width: 10}}
	assert.NoError(t, Validate(req, model.DefaultConstraints()))
}

func TestCheckInventoryAreaRejectsTinyInventory(t *testing.T) {
	inv := model.Inventory{Braces: []model.Brace{{Length: 0.1, Width: 0.1, Quantity: 1}}}
	err := CheckInventoryArea(inv, model.DefaultConstraints())
	require.Error(t, err)
	var layoutErr *model.LayoutError
	require.ErrorAs(t, err, &layoutErr)
	assert.Equal(t, model.InsufficientInventoryArea, layoutErr.Kind)
}

func TestCheckInventoryAreaAcceptsDefaultInventory(t *testing.T) {
	inv := model.DefaultInventory()
	assert.NoError(t, CheckInventoryArea(inv, model.DefaultConstraints()))
}

func TestCheckInventoryAreaRejectsEmptyInventory(t *testing.T) {
	err := CheckInventoryArea(model.Inventory{}, model.DefaultConstraints())
	require.Error(t, err)
}
