// Package ledger computes the derived state of invoice records and provides
// the row codec and summary aggregations over the ledger.
package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fatture-dev/fatture/internal/model"
	"github.com/fatture-dev/fatture/internal/money"
)

// tolerance absorbs floating-point rounding left over from imported data: a
// balance at or below one cent counts as settled. Fixed absolute epsilon,
// regardless of amount magnitude.
var tolerance = decimal.New(1, -2) // 0.01

// Derive computes the outstanding balance, payment status and settlement
// date from the billed and paid amounts. The settlement date is set exactly
// once: when the record transitions into paid state and existingDate holds
// no value, today is stamped in DD/MM/YYYY form; a non-empty existingDate is
// always kept. Pure function of its inputs.
func Derive(billed, paid decimal.Decimal, existingDate string, today time.Time) (decimal.Decimal, model.Status, string) {
	balance := billed.Sub(paid)

	if balance.LessThanOrEqual(tolerance) {
		settlementDate := existingDate
		if missingDate(existingDate) {
			settlementDate = today.Format(model.DateFormat)
		}
		return decimal.Zero, model.StatusPaid, settlementDate
	}

	if paid.IsPositive() {
		return balance, model.StatusPartial, existingDate
	}
	return balance, model.StatusUnpaid, existingDate
}

// DeriveRaw is Derive over raw monetary strings: both amounts pass through
// money.Normalize first, so unparseable input derives as if zero.
func DeriveRaw(billedRaw, paidRaw, existingDate string, today time.Time) (decimal.Decimal, model.Status, string) {
	return Derive(money.Normalize(billedRaw), money.Normalize(paidRaw), existingDate, today)
}

// Recompute overwrites a record's derived fields in place.
func Recompute(rec *model.InvoiceRecord, today time.Time) {
	rec.Balance, rec.Status, rec.SettlementDate = Derive(rec.Billed, rec.Paid, rec.SettlementDate, today)
}

// RecomputeAll runs Recompute over every record of a ledger. Records are
// independent; order does not matter.
func RecomputeAll(records []model.InvoiceRecord, today time.Time) {
	for i := range records {
		Recompute(&records[i], today)
	}
}

// missingDate reports whether a settlement date field holds no value.
// Spreadsheet exports encode absence as "nan" or "None" as well as blank.
func missingDate(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "nan", "None":
		return true
	}
	return false
}
