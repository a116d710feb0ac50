// Package csvfile persists the ledger as a local semicolon-delimited file.
package csvfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatture-dev/fatture/internal/ledger"
	"github.com/fatture-dev/fatture/internal/model"
)

// Separator is the delimiter written by Save. Load falls back to a plain
// comma for files produced by other tools.
const Separator = ';'

// Store is a file-backed ledger store.
type Store struct {
	path string
}

// New creates a Store persisting to path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full ledger. A missing file is an empty ledger, not an
// error. Rows are reconciled against the schema, so files with missing or
// reordered columns still load.
func (s *Store) Load(_ context.Context) ([]model.InvoiceRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", s.path, err)
	}

	records, err := readRecords(data)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", s.path, err)
	}
	return records, nil
}

// Save rewrites the whole ledger file: header row first, then one row per
// record with every value coerced to text.
func (s *Store) Save(_ context.Context, records []model.InvoiceRecord) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("creating ledger %s: %w", s.path, err)
	}
	defer f.Close()

	if err := WriteRecords(f, records); err != nil {
		return fmt.Errorf("writing ledger %s: %w", s.path, err)
	}
	return nil
}

// WriteRecords writes the ledger to w (including the header row).
func WriteRecords(w io.Writer, records []model.InvoiceRecord) error {
	cw := csv.NewWriter(w)
	cw.Comma = Separator
	defer cw.Flush()

	if err := cw.Write(model.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		if err := cw.Write(ledger.MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// readRecords parses ledger bytes, trying the semicolon separator first and
// falling back to comma when the header does not split into columns.
func readRecords(data []byte) ([]model.InvoiceRecord, error) {
	for _, sep := range []rune{Separator, ','} {
		records, err := parseWith(data, sep)
		if err != nil {
			return nil, err
		}
		if records != nil {
			return records, nil
		}
	}
	return nil, nil
}

func parseWith(data []byte, sep rune) ([]model.InvoiceRecord, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = sep
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	if len(header) <= 1 {
		// Wrong separator: the whole header collapsed into one field.
		return nil, nil
	}

	records := make([]model.InvoiceRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		named := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				named[col] = row[i]
			}
		}
		records = append(records, ledger.FromRow(named))
	}
	return records, nil
}
