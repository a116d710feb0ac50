package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Test Biz")
	cfg.Storage.Backend = BackendSheets
	cfg.Storage.Sheets.SpreadsheetID = "abc123"
	cfg.Storage.Sheets.SheetName = "Fatture"

	path := filepath.Join(t.TempDir(), "fatture.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Business.Name, got.Business.Name)
	assert.Equal(t, BackendSheets, got.Storage.Backend)
	assert.Equal(t, "abc123", got.Storage.Sheets.SpreadsheetID)
	assert.Equal(t, "Fatture", got.Storage.Sheets.SheetName)
	assert.Equal(t, cfg.Git.AutoCommit, got.Git.AutoCommit)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My Company")

	assert.Equal(t, "My Company", cfg.Business.Name)
	assert.Equal(t, BackendCSV, cfg.Storage.Backend)
	assert.Equal(t, "fatture.csv", cfg.Storage.CSV.Path)
	assert.Equal(t, "Sheet1", cfg.Storage.Sheets.SheetName)
	assert.True(t, cfg.Git.AutoCommit)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate_UnknownBackend(t *testing.T) {
	cfg := Default("Biz")
	cfg.Storage.Backend = "mongodb"
	require.Error(t, cfg.Validate())
}

func TestValidate_SheetsRequiresSpreadsheetID(t *testing.T) {
	cfg := Default("Biz")
	cfg.Storage.Backend = BackendSheets
	require.Error(t, cfg.Validate())

	cfg.Storage.Sheets.SpreadsheetID = "abc"
	require.NoError(t, cfg.Validate())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FATTURE_SPREADSHEET_ID", "env-sheet-id")
	t.Setenv("FATTURE_SHEETS_CREDENTIALS", "/tmp/creds.json")

	cfg := Default("Biz")
	cfg.Storage.Backend = BackendSheets
	path := filepath.Join(t.TempDir(), "fatture.yaml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-sheet-id", got.Storage.Sheets.SpreadsheetID)
	assert.Equal(t, "/tmp/creds.json", got.Storage.Sheets.CredentialsPath)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Test Biz")
	path := filepath.Join(t.TempDir(), "fatture.yaml")
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Biz")
	assert.Contains(t, contents, "backend: csv")
	assert.Contains(t, contents, "path: fatture.csv")
	assert.Contains(t, contents, "auto_commit: true")
}
