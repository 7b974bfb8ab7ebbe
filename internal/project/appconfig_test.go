package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/tentlayout/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultMinSetback = 0.15
	cfg.DefaultMaxColumnGap = 0.5
	cfg.DefaultInventoryPath = "/tmp/inv.json"

	require.NoError(t, SaveAppConfig(path, cfg))

	loaded, err := LoadAppConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 0.15, loaded.DefaultMinSetback)
	assert.Equal(t, 0.5, loaded.DefaultMaxColumnGap)
	assert.Equal(t, "/tmp/inv.json", loaded.DefaultInventoryPath)
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)

	defaults := model.DefaultAppConfig()
	assert.Equal(t, defaults.DefaultMinSetback, cfg.DefaultMinSetback)
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	require.NoError(t, os.WriteFile(path, []byte("not valid json{{{"), 0644))

	_, err := LoadAppConfig(path)
	assert.Error(t, err)
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "dir", "config.json")

	cfg := model.DefaultAppConfig()
	require.NoError(t, SaveAppConfig(path, cfg))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
