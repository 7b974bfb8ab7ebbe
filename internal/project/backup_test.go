package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/tentlayout/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportAndImportAllData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultMaxColumnGap = 0.5

	require.NoError(t, ExportAllData(path, cfg))

	backup, err := ImportAllData(path)
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", backup.Version)
	assert.NotEmpty(t, backup.CreatedAt)
	assert.Equal(t, 0.5, backup.Config.DefaultMaxColumnGap)
}

func TestImportAllDataMissingFile(t *testing.T) {
	_, err := ImportAllData(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestImportAllDataInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json}"), 0644))

	_, err := ImportAllData(path)
	assert.Error(t, err)
}

func TestImportAllDataMissingVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noversion.json")
	data := []byte(`{"config":{"default_max_column_gap":0.5}}`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	_, err := ImportAllData(path)
	assert.Error(t, err)
}

func TestExportAllDataCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "nested", "backup.json")

	cfg := model.DefaultAppConfig()
	require.NoError(t, ExportAllData(path, cfg))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
