package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fatture-dev/fatture/internal/config"
	"github.com/fatture-dev/fatture/internal/gitops"
	"github.com/fatture-dev/fatture/internal/store/csvfile"
)

func newInitCommand() *cobra.Command {
	var name string
	var backend string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledger directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, backend)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&backend, "backend", config.BackendCSV, "storage backend (csv or sheets)")

	return cmd
}

func runInit(dir, name, backend string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating ledger directory: %w", err)
	}

	cfg := config.Default(name)
	cfg.Storage.Backend = backend
	if err := config.Save(filepath.Join(dir, configFile), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if backend == config.BackendCSV {
		// Write an empty ledger so the first load finds the header row.
		st := csvfile.New(filepath.Join(dir, cfg.Storage.CSV.Path))
		if err := st.Save(context.Background(), nil); err != nil {
			return fmt.Errorf("writing empty ledger: %w", err)
		}
	}

	gitignore := ".env\ncredentials.json\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	hash, err := gitops.CommitAll(dir, "init: "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Printf("Initialized ledger for %s at %s (%s)\n", name, dir, hash)
	return nil
}
