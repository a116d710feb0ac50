package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fatture-dev/fatture/internal/ledger"
	"github.com/fatture-dev/fatture/internal/model"
	"github.com/fatture-dev/fatture/internal/money"
)

func newAddCommand() *cobra.Command {
	var dir string
	var client string
	var number string
	var date string
	var amount string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new invoice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, dir, client, number, date, amount)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	cmd.Flags().StringVar(&client, "client", "", "client name (required)")
	_ = cmd.MarkFlagRequired("client")
	cmd.Flags().StringVar(&number, "number", "", "invoice number")
	cmd.Flags().StringVar(&date, "date", "", "invoice date as DD/MM/YYYY (default today)")
	cmd.Flags().StringVar(&amount, "amount", "", "billed amount (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runAdd(cmd *cobra.Command, dir, client, number, date, amount string) error {
	ctx := cmd.Context()
	e, err := loadEnv(ctx, dir)
	if err != nil {
		return err
	}

	today := time.Now()
	if date == "" {
		date = today.Format(model.DateFormat)
	}

	rec := model.InvoiceRecord{
		Client:        client,
		InvoiceNumber: number,
		InvoiceDate:   date,
		Billed:        money.Normalize(amount),
		Paid:          decimal.Zero,
	}
	ledger.Recompute(&rec, today)

	records, err := e.store.Load(ctx)
	if err != nil {
		return err
	}
	records = append(records, rec)

	if err := e.store.Save(ctx, records); err != nil {
		return err
	}
	e.commit(fmt.Sprintf("add: invoice %s for %s", number, client))

	fmt.Printf("Recorded invoice %s for %s: € %s (%s)\n", number, client, rec.Billed.StringFixed(2), rec.Status)
	return nil
}
