package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fatture-dev/fatture/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "fatture",
		Short:   "Invoicing ledger with derived payment state",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newRecomputeCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newListCommand())

	return rootCmd
}
