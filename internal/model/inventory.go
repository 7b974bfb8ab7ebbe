package model

// DefaultInventory returns a built-in catalog of common brace and rail
// sizes, used when a CalculationRequest omits inventory.
func DefaultInventory() Inventory {
	return Inventory{
		Braces: []Brace{
			NewBrace(2.45, 1.22, 1000),
			NewBrace(2.0, 1.0, 500),
			NewBrace(1.22, 1.22, 200),
			NewBrace(3.0, 1.0, 100),
		},
		Rails: []Rail{
			NewRail(6.0, 200),
			NewRail(4.0, 200),
			NewRail(3.0, 200),
			NewRail(2.0, 200),
			NewRail(1.0, 200),
		},
	}
}

// FindBraceByID returns a pointer to the brace with the given ID, or nil.
func (inv *Inventory) FindBraceByID(id string) *Brace {
	for i := range inv.Braces {
		if inv.Braces[i].ID == id {
			return &inv.Braces[i]
		}
	}
	return nil
}

// FindRailByID returns a pointer to the rail with the given ID, or nil.
func (inv *Inventory) FindRailByID(id string) *Rail {
	for i := range inv.Rails {
		if inv.Rails[i].ID == id {
			return &inv.Rails[i]
		}
	}
	return nil
}

// BraceQuantity returns the total quantity available for the given
// normalized brace key ("L×W"), summed across matching inventory entries.
func (inv Inventory) BraceQuantity(key string) int {
	total := 0
	for _, b := range inv.Braces {
		if b.Key() == key {
			total += b.Quantity
		}
	}
	return total
}

// TotalBraceArea returns the total floor area covered by all braces in
// inventory, counting quantity.
func (inv Inventory) TotalBraceArea() float64 {
	var total float64
	for _, b := range inv.Braces {
		total += b.Length * b.Width * float64(b.Quantity)
	}
	return total
}
