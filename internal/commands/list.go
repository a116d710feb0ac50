package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every invoice in the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")

	return cmd
}

func runList(cmd *cobra.Command, dir string) error {
	ctx := cmd.Context()
	e, err := loadEnv(ctx, dir)
	if err != nil {
		return err
	}

	records, err := e.store.Load(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "Ledger is empty.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CLIENTE\tN. FATTURA\tDATA\tIMPORTO\tPAGATO\tSALDO\tSTATO\tDATA SALDO")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.Client, rec.InvoiceNumber, rec.InvoiceDate,
			rec.Billed.StringFixed(2), rec.Paid.StringFixed(2), rec.Balance.StringFixed(2),
			rec.Status, rec.SettlementDate)
	}
	return tw.Flush()
}
