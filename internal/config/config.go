package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Backend names accepted in storage.backend.
const (
	BackendCSV    = "csv"
	BackendSheets = "sheets"
)

// Config represents the top-level fatture.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Storage  StorageConfig  `yaml:"storage"`
	Git      GitConfig      `yaml:"git"`
}

// BusinessConfig identifies the business the ledger belongs to.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	Backend string       `yaml:"backend"` // "csv" or "sheets"
	CSV     CSVConfig    `yaml:"csv"`
	Sheets  SheetsConfig `yaml:"sheets"`
}

// CSVConfig configures the local delimited-text backend.
type CSVConfig struct {
	Path string `yaml:"path"`
}

// SheetsConfig configures the Google Sheets backend. CredentialsPath and
// SpreadsheetID can be overridden from the environment so the secrets stay
// out of the config file.
type SheetsConfig struct {
	CredentialsPath string `yaml:"credentials_path"`
	SpreadsheetID   string `yaml:"spreadsheet_id"`
	SheetName       string `yaml:"sheet_name"`
}

// GitConfig controls git integration for the CSV backend.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a fatture.yaml file from disk and applies environment
// overrides. A .env file in the working directory is honored when present;
// a missing one is fine.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{Name: businessName},
		Storage: StorageConfig{
			Backend: BackendCSV,
			CSV:     CSVConfig{Path: "fatture.csv"},
			Sheets:  SheetsConfig{SheetName: "Sheet1"},
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Fatture",
			AuthorEmail: "ledger@fatture.dev",
		},
	}
}

// Validate checks that the selected backend is usable.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendCSV:
		if c.Storage.CSV.Path == "" {
			return errors.New("storage.csv.path must be set for the csv backend")
		}
	case BackendSheets:
		if c.Storage.Sheets.SpreadsheetID == "" {
			return errors.New("storage.sheets.spreadsheet_id must be set for the sheets backend (or FATTURE_SPREADSHEET_ID)")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("FATTURE_SHEETS_CREDENTIALS"); v != "" {
		c.Storage.Sheets.CredentialsPath = v
	}
	if v := os.Getenv("FATTURE_SPREADSHEET_ID"); v != "" {
		c.Storage.Sheets.SpreadsheetID = v
	}
}
