// Package store defines the persistence contract for the ledger.
package store

import (
	"context"

	"github.com/fatture-dev/fatture/internal/model"
)

// Store reads and writes the full ledger. Load returns every record; Save
// overwrites the whole backing store with a header row followed by all
// records coerced to text. There is no row-level mutation and no
// transactional guarantee across a load/save cycle.
type Store interface {
	Load(ctx context.Context) ([]model.InvoiceRecord, error)
	Save(ctx context.Context, records []model.InvoiceRecord) error
}
