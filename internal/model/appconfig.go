package model

// AppConfig holds application-wide defaults for the layout engine.
type AppConfig struct {
	DefaultMinSetback     float64 `json:"default_min_setback"`
	DefaultMaxSetback     float64 `json:"default_max_setback"`
	DefaultMaxColumnGap   float64 `json:"default_max_column_gap"`
	DefaultInventoryPath  string  `json:"default_inventory_path"`

	// AltMinSetback exposes the 0.15 m alternative referenced in some
	// fixtures, as a configurable preset rather than the engine default.
	AltMinSetback float64 `json:"alt_min_setback"`
}

// DefaultAppConfig returns an AppConfig populated with the engine's
// built-in constraint defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultMinSetback:    DefaultMinSetback,
		DefaultMaxSetback:    DefaultMaxSetback,
		DefaultMaxColumnGap:  DefaultMaxColumnGap,
		DefaultInventoryPath: "",
		AltMinSetback:        0.15,
	}
}

// ApplyToConstraints copies the default values from AppConfig into a
// Constraints struct, used to seed a CalculationRequest.
func (c AppConfig) ApplyToConstraints(cons *Constraints) {
	cons.MinSetback = c.DefaultMinSetback
	cons.MaxSetback = c.DefaultMaxSetback
	cons.MaxColumnGap = c.DefaultMaxColumnGap
}
