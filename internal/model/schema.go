package model

// Column names of the ledger, in persisted order. The backing stores and the
// importer match on these exact headers.
const (
	ColClient         = "Cliente"
	ColInvoiceNumber  = "N. Fattura"
	ColInvoiceDate    = "Data Fatt."
	ColBilled         = "Importo Fatt. (€)"
	ColPaid           = "Importo Pagato (€)"
	ColBalance        = "Saldo (€)"
	ColStatus         = "Stato"
	ColSettlementDate = "Data Saldo"
)

// Columns is the fixed ledger schema: header row order for every store.
var Columns = []string{
	ColClient,
	ColInvoiceNumber,
	ColInvoiceDate,
	ColBilled,
	ColPaid,
	ColBalance,
	ColStatus,
	ColSettlementDate,
}

// NumColumns is the width of a ledger row.
const NumColumns = 8
