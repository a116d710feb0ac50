package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fatture-dev/fatture/internal/ledger"
	"github.com/fatture-dev/fatture/internal/model"
)

func newSummaryCommand() *cobra.Command {
	var dir string
	var client string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show aggregate totals and the per-client breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, dir, client)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	cmd.Flags().StringVar(&client, "client", "", "restrict to a single client")

	return cmd
}

func runSummary(cmd *cobra.Command, dir, client string) error {
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

	if client != "" {
		records = ledger.Filter(records, client)
		printTotals(out, client, ledger.Totals(records))
		printRecords(out, records)
		return nil
	}

	printTotals(out, e.cfg.Business.Name, ledger.Totals(records))

	summaries := ledger.ClientTotals(records)
	if len(summaries) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CLIENTE\tFATTURATO\tPAGATO\tDA INCASSARE")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			s.Client, s.Billed.StringFixed(2), s.Paid.StringFixed(2), s.Outstanding.StringFixed(2))
	}
	return tw.Flush()
}

func printTotals(w io.Writer, label string, s ledger.Summary) {
	fmt.Fprintf(w, "%s\n", label)
	fmt.Fprintf(w, "  Fatturato:    € %s\n", s.Billed.StringFixed(2))
	fmt.Fprintf(w, "  Incassato:    € %s\n", s.Paid.StringFixed(2))
	fmt.Fprintf(w, "  Da incassare: € %s\n", s.Outstanding.StringFixed(2))
}

func printRecords(w io.Writer, records []model.InvoiceRecord) {
	if len(records) == 0 {
		return
	}
	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "N. FATTURA\tDATA\tIMPORTO\tPAGATO\tSALDO\tSTATO\tDATA SALDO")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.InvoiceNumber, rec.InvoiceDate,
			rec.Billed.StringFixed(2), rec.Paid.StringFixed(2), rec.Balance.StringFixed(2),
			rec.Status, rec.SettlementDate)
	}
	tw.Flush()
}
