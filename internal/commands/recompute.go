package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fatture-dev/fatture/internal/ledger"
)

func newRecomputeCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "recompute",
		Short: "Recompute balances, statuses and settlement dates for every invoice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecompute(cmd, dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")

	return cmd
}

func runRecompute(cmd *cobra.Command, dir string) error {
	ctx := cmd.Context()
	e, err := loadEnv(ctx, dir)
	if err != nil {
		return err
	}

	records, err := e.store.Load(ctx)
	if err != nil {
		return err
	}

	ledger.RecomputeAll(records, time.Now())

	if err := e.store.Save(ctx, records); err != nil {
		return err
	}
	e.commit("recompute: refresh derived fields")

	fmt.Printf("Recomputed %d invoices\n", len(records))
	return nil
}
