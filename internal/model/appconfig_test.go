package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppConfigMatchesEngineDefaults(t *testing.T) {
	cfg := DefaultAppConfig()
	assert.Equal(t, DefaultMinSetback, cfg.DefaultMinSetback)
	assert.Equal(t, DefaultMaxSetback, cfg.DefaultMaxSetback)
	assert.Equal(t, DefaultMaxColumnGap, cfg.DefaultMaxColumnGap)
	assert.Equal(t, 0.15, cfg.AltMinSetback)
}

func TestApplyToConstraints(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultMinSetback = 0.15
	cfg.DefaultMaxColumnGap = 0.5

	var c Constraints
	cfg.ApplyToConstraints(&c)

	assert.Equal(t, 0.15, c.MinSetback)
	assert.Equal(t, cfg.DefaultMaxSetback, c.MaxSetback)
	assert.Equal(t, 0.5, c.MaxColumnGap)
}
