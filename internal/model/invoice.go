package model

import "github.com/shopspring/decimal"

// Status represents the payment state of an invoice. The values are the
// labels persisted in the ledger, so they must not change.
type Status string

const (
	StatusUnpaid  Status = "Non Pagata"
	StatusPartial Status = "Parziale"
	StatusPaid    Status = "Pagata"
)

// DateFormat is the DD/MM/YYYY layout used for every date crossing the
// persistence boundary. Dates are carried as text and never validated for
// calendar correctness.
const DateFormat = "02/01/2006"

// InvoiceRecord is one row of the ledger.
//
// Balance, Status and SettlementDate are derived fields: they are persisted
// as a redundant cache and recomputed on every write cycle. SettlementDate
// is derived-once — set the first time a record becomes paid, then sticky.
type InvoiceRecord struct {
	Client         string
	InvoiceNumber  string          // free-form, not guaranteed unique
	InvoiceDate    string          // DD/MM/YYYY text
	Billed         decimal.Decimal //nolint:revive // plain field name is clearest
	Paid           decimal.Decimal //nolint:revive
	Balance        decimal.Decimal // derived
	Status         Status          // derived
	SettlementDate string          // derived once, DD/MM/YYYY or empty
}
