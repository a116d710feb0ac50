package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fatture-dev/fatture/internal/importer"
	"github.com/fatture-dev/fatture/internal/ledger"
)

func newImportCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Bulk-import invoices from an exported CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, dir, args[0])
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")

	return cmd
}

func runImport(cmd *cobra.Command, dir, file string) error {
	ctx := cmd.Context()
	e, err := loadEnv(ctx, dir)
	if err != nil {
		return err
	}

	// The file is validated whole before anything is merged.
	imported, err := importer.ReadFile(file)
	if err != nil {
		return err
	}

	records, err := e.store.Load(ctx)
	if err != nil {
		return err
	}
	records = append(records, imported...)
	ledger.RecomputeAll(records, time.Now())

	if err := e.store.Save(ctx, records); err != nil {
		return err
	}
	e.commit(fmt.Sprintf("import: %d invoices from %s", len(imported), file))

	fmt.Printf("Imported %d invoices (%d total)\n", len(imported), len(records))
	return nil
}
