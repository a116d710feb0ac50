package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fatture-dev/fatture/internal/model"
)

// Summary aggregates the monetary totals of a set of records.
type Summary struct {
	Billed      decimal.Decimal
	Paid        decimal.Decimal
	Outstanding decimal.Decimal
}

// ClientSummary is the per-client aggregation.
type ClientSummary struct {
	Client string
	Summary
}

// Totals sums billed, paid and outstanding amounts over records.
func Totals(records []model.InvoiceRecord) Summary {
	s := Summary{
		Billed:      decimal.Zero,
		Paid:        decimal.Zero,
		Outstanding: decimal.Zero,
	}
	for _, rec := range records {
		s.Billed = s.Billed.Add(rec.Billed)
		s.Paid = s.Paid.Add(rec.Paid)
		s.Outstanding = s.Outstanding.Add(rec.Balance)
	}
	return s
}

// ClientTotals groups records by client and returns one summary per client,
// sorted by outstanding balance descending (largest debtor first), with ties
// broken by client name.
func ClientTotals(records []model.InvoiceRecord) []ClientSummary {
	byClient := make(map[string][]model.InvoiceRecord)
	for _, rec := range records {
		byClient[rec.Client] = append(byClient[rec.Client], rec)
	}

	summaries := make([]ClientSummary, 0, len(byClient))
	for client, recs := range byClient {
		summaries = append(summaries, ClientSummary{Client: client, Summary: Totals(recs)})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].Outstanding.Equal(summaries[j].Outstanding) {
			return summaries[i].Outstanding.GreaterThan(summaries[j].Outstanding)
		}
		return summaries[i].Client < summaries[j].Client
	})
	return summaries
}

// Clients returns the sorted unique client names of a ledger.
func Clients(records []model.InvoiceRecord) []string {
	seen := make(map[string]bool)
	var clients []string
	for _, rec := range records {
		if !seen[rec.Client] {
			seen[rec.Client] = true
			clients = append(clients, rec.Client)
		}
	}
	sort.Strings(clients)
	return clients
}

// Filter returns the records belonging to a single client.
func Filter(records []model.InvoiceRecord, client string) []model.InvoiceRecord {
	var out []model.InvoiceRecord
	for _, rec := range records {
		if rec.Client == client {
			out = append(out, rec)
		}
	}
	return out
}
