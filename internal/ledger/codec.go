package ledger

import (
	"github.com/fatture-dev/fatture/internal/model"
	"github.com/fatture-dev/fatture/internal/money"
)

const (
	colClient         = 0
	colInvoiceNumber  = 1
	colInvoiceDate    = 2
	colBilled         = 3
	colPaid           = 4
	colBalance        = 5
	colStatus         = 6
	colSettlementDate = 7
)

// MarshalRecord converts an InvoiceRecord to a ledger row. All values are
// coerced to text; amounts are written with two decimal places.
func MarshalRecord(rec model.InvoiceRecord) []string {
	row := make([]string, model.NumColumns)
	row[colClient] = rec.Client
	row[colInvoiceNumber] = rec.InvoiceNumber
	row[colInvoiceDate] = rec.InvoiceDate
	row[colBilled] = rec.Billed.StringFixed(2)
	row[colPaid] = rec.Paid.StringFixed(2)
	row[colBalance] = rec.Balance.StringFixed(2)
	row[colStatus] = string(rec.Status)
	row[colSettlementDate] = rec.SettlementDate
	return row
}

// UnmarshalRecord converts a positional ledger row to an InvoiceRecord.
// Short rows are padded with empty columns; money fields fail soft to zero.
func UnmarshalRecord(row []string) model.InvoiceRecord {
	padded := make([]string, model.NumColumns)
	copy(padded, row)

	return model.InvoiceRecord{
		Client:         padded[colClient],
		InvoiceNumber:  padded[colInvoiceNumber],
		InvoiceDate:    padded[colInvoiceDate],
		Billed:         money.Normalize(padded[colBilled]),
		Paid:           money.Normalize(padded[colPaid]),
		Balance:        money.Normalize(padded[colBalance]),
		Status:         model.Status(padded[colStatus]),
		SettlementDate: padded[colSettlementDate],
	}
}

// FromRow reconciles a named row against the fixed schema: columns absent
// from the mapping are synthesized as empty text, money columns are
// normalized. Every external read funnels through here.
func FromRow(row map[string]string) model.InvoiceRecord {
	positional := make([]string, model.NumColumns)
	for i, col := range model.Columns {
		positional[i] = row[col]
	}
	return UnmarshalRecord(positional)
}

// ToRow converts a record to a named row keyed by the schema columns.
func ToRow(rec model.InvoiceRecord) map[string]string {
	positional := MarshalRecord(rec)
	row := make(map[string]string, model.NumColumns)
	for i, col := range model.Columns {
		row[col] = positional[i]
	}
	return row
}
