// Package importer reads exported invoice CSVs for bulk merge into the
// ledger. Export files come from assorted spreadsheet tools, so the reader
// tolerates either separator and repairs encoding damage in the headers
// before matching columns.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatture-dev/fatture/internal/ledger"
	"github.com/fatture-dev/fatture/internal/model"
)

// headerRepairs maps byte-corrupted header fragments back to their intended
// text. The euro sign in the schema columns is the usual casualty: UTF-8
// E2 82 AC decoded as Latin-1 or cp1252 renders as the sequences below.
var headerRepairs = strings.NewReplacer(
	"ï»¿", "",
	"ïbb¿", "",
	"â\u0082¬", "€",
	"â¬", "€",
	"ð", "€",
)

// separators tried when parsing an export, in order.
var separators = []rune{';', ','}

// MissingColumnsError reports which required schema columns an import file
// lacks. The file is rejected whole; no partial merge happens.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("import file is missing required columns: %s", strings.Join(e.Columns, ", "))
}

// ReadFile reads and validates an export file from disk.
func ReadFile(path string) ([]model.InvoiceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

// Read parses an exported CSV into invoice records. It tries each known
// separator until the header splits into more than one column and contains
// the client column, repairs corrupted header text, and requires every
// schema column to be present.
func Read(r io.Reader) ([]model.InvoiceRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading import data: %w", err)
	}

	for _, sep := range separators {
		header, rows, err := parseWith(data, sep)
		if err != nil || header == nil {
			continue
		}
		if missing := missingColumns(header); len(missing) > 0 {
			return nil, &MissingColumnsError{Columns: missing}
		}
		return toRecords(header, rows), nil
	}
	return nil, fmt.Errorf("unable to parse import file: no separator yields a %q column", model.ColClient)
}

func parseWith(data []byte, sep rune) (header []string, rows [][]string, err error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = sep
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	all, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, nil
	}

	header = CleanHeader(all[0])
	if len(header) <= 1 || !contains(header, model.ColClient) {
		return nil, nil, nil
	}
	return header, all[1:], nil
}

// CleanHeader repairs mojibake sequences and trims whitespace in every
// column name.
func CleanHeader(header []string) []string {
	cleaned := make([]string, len(header))
	for i, col := range header {
		cleaned[i] = strings.TrimSpace(headerRepairs.Replace(col))
	}
	return cleaned
}

func missingColumns(header []string) []string {
	var missing []string
	for _, col := range model.Columns {
		if !contains(header, col) {
			missing = append(missing, col)
		}
	}
	return missing
}

func toRecords(header []string, rows [][]string) []model.InvoiceRecord {
	records := make([]model.InvoiceRecord, 0, len(rows))
	for _, row := range rows {
		named := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				named[col] = row[i]
			}
		}
		records = append(records, ledger.FromRow(named))
	}
	return records
}

func contains(header []string, col string) bool {
	for _, h := range header {
		if h == col {
			return true
		}
	}
	return false
}
