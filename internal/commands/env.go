package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/fatture-dev/fatture/internal/config"
	"github.com/fatture-dev/fatture/internal/gitops"
	"github.com/fatture-dev/fatture/internal/store"
	"github.com/fatture-dev/fatture/internal/store/csvfile"
	"github.com/fatture-dev/fatture/internal/store/sheets"
	"github.com/fatture-dev/fatture/pkg/logger"
)

// configFile is the config file name inside a ledger directory.
const configFile = "fatture.yaml"

// env bundles everything a command needs once the ledger directory is known.
type env struct {
	dir    string
	cfg    *config.Config
	store  store.Store
	logger *zap.Logger
}

// loadEnv resolves the ledger directory, loads its config and opens the
// configured store.
func loadEnv(ctx context.Context, dir string) (*env, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, configFile))
	if err != nil {
		return nil, err
	}

	log := logger.Must(logger.New())

	st, err := openStore(ctx, absDir, cfg, log)
	if err != nil {
		return nil, err
	}

	return &env{dir: absDir, cfg: cfg, store: st, logger: log}, nil
}

func openStore(ctx context.Context, dir string, cfg *config.Config, log *zap.Logger) (store.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendCSV:
		path := cfg.Storage.CSV.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		return csvfile.New(path), nil
	case config.BackendSheets:
		return sheets.New(ctx, sheets.Options{
			CredentialsPath: cfg.Storage.Sheets.CredentialsPath,
			SpreadsheetID:   cfg.Storage.Sheets.SpreadsheetID,
			SheetName:       cfg.Storage.Sheets.SheetName,
		}, logger.Named(log, "sheets"))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// commit records a ledger change in git when the CSV backend is in use and
// auto-commit is enabled. Failure to commit never fails the operation.
func (e *env) commit(message string) {
	if e.cfg.Storage.Backend != config.BackendCSV || !e.cfg.Git.AutoCommit || !gitops.IsRepo(e.dir) {
		return
	}
	if _, err := gitops.CommitAll(e.dir, message, e.cfg.Git.AuthorName, e.cfg.Git.AuthorEmail); err != nil {
		fmt.Fprintf(os.Stderr, "warning: git commit failed: %v\n", err)
	}
}
