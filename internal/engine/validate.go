package engine

import (
	"github.com/piwi3910/tentlayout/internal/model"
)

// Validate checks a CalculationRequest's shape before the pipeline runs
// (A3): tent positivity, constraint ordering, and inventory non-negativity.
// It does not check solvability — that is the pipeline's job, surfaced as
// InsufficientInventoryArea / NoFeasibleColumn / NoFeasibleLayout.
func Validate(req model.CalculationRequest, constraints model.Constraints) error {
	if req.Tent.Length <= 0 || req.Tent.Width <= 0 {
		return model.NewLayoutError(model.InvalidTent, "tent dimensions must be positive, got length=%.3f width=%.3f",
			req.Tent.Length, req.Tent.Width)
	}
	if constraints.MinSetback > constraints.MaxSetback {
		return model.NewLayoutError(model.InvalidConstraints, "minSetback (%.3f) exceeds maxSetback (%.3f)",
			constraints.MinSetback, constraints.MaxSetback)
	}
	if constraints.MinSetback < 0 || constraints.MaxSetback < 0 || constraints.MaxColumnGap < 0 {
		return model.NewLayoutError(model.InvalidConstraints, "constraints must be non-negative")
	}
	if req.Tent.Length < 2*constraints.MinSetback || req.Tent.Width < 2*constraints.MinSetback {
		return model.NewLayoutError(model.InvalidTent, "tent dimensions (%.3f x %.3f) too small for minSetback %.3f on both sides",
			req.Tent.Length, req.Tent.Width, constraints.MinSetback)
	}

	if req.Inventory != nil {
		for _, b := range req.Inventory.Braces {
			if b.Length <= 0 || b.Width <= 0 || b.Quantity < 1 {
				return model.NewLayoutError(model.InvalidConstraints, "invalid brace entry: length=%.3f width=%.3f quantity=%d",
					b.Length, b.Width, b.Quantity)
			}
		}
		for _, r := range req.Inventory.Rails {
			if r.Length <= 0 || r.Quantity < 1 {
				return model.NewLayoutError(model.InvalidConstraints, "invalid rail entry: length=%.3f quantity=%d",
					r.Length, r.Quantity)
			}
		}
	}

	return nil
}

// CheckInventoryArea rejects a request whose total brace area is below the
// area of one minimum-width column, before the expensive pipeline runs.
func CheckInventoryArea(inventory model.Inventory, constraints model.Constraints) error {
	if len(inventory.Braces) == 0 {
		return model.NewLayoutError(model.InsufficientInventoryArea, "inventory has no braces")
	}

	minColumnWidth := inventory.Braces[0].Width
	for _, b := range inventory.Braces {
		w := b.Width
		if b.Length < w {
			w = b.Length
		}
		if w < minColumnWidth {
			minColumnWidth = w
		}
	}
	minRailLength := inventory.Braces[0].Length
	for _, b := range inventory.Braces {
		l := b.Length
		if b.Width < l {
			l = b.Width
		}
		if l < minRailLength {
			minRailLength = l
		}
	}

	minColumnArea := minColumnWidth * minRailLength
	if inventory.TotalBraceArea() < minColumnArea {
		return model.NewLayoutError(model.InsufficientInventoryArea,
			"total brace area %.3f m^2 is below the area of one minimum-width column (%.3f m^2)",
			inventory.TotalBraceArea(), minColumnArea)
	}
	return nil
}
