// Package sheets persists the ledger in a Google Sheets spreadsheet.
package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/fatture-dev/fatture/internal/ledger"
	"github.com/fatture-dev/fatture/internal/model"
)

// Store is a Google Sheets backed ledger store. The sheet holds the header
// row followed by one row per record, all values as text.
type Store struct {
	service       *sheetsapi.Service
	spreadsheetID string
	sheetName     string
	logger        *zap.Logger
}

// Options configures the connection to the spreadsheet.
type Options struct {
	CredentialsPath string
	SpreadsheetID   string
	SheetName       string
}

// New builds a Store using service account credentials. A connection or
// auth failure here aborts the operation; nothing is retried.
func New(ctx context.Context, opts Options, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.SpreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID must not be empty")
	}
	if opts.SheetName == "" {
		opts.SheetName = "Sheet1"
	}

	service, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(opts.CredentialsPath),
		option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("initializing sheets client: %w", err)
	}

	return &Store{
		service:       service,
		spreadsheetID: opts.SpreadsheetID,
		sheetName:     opts.SheetName,
		logger:        logger,
	}, nil
}

// Load fetches every row of the sheet and reconciles each against the
// schema. An empty sheet loads as an empty ledger.
func (s *Store) Load(ctx context.Context) ([]model.InvoiceRecord, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, s.sheetName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", s.sheetName, err)
	}

	records := RowsToRecords(resp.Values)
	s.logger.Debug("ledger loaded from sheet",
		zap.String("sheet", s.sheetName),
		zap.Int("records", len(records)))
	return records, nil
}

// Save clears the sheet and rewrites it whole: header row first, then every
// record coerced to text.
func (s *Store) Save(ctx context.Context, records []model.InvoiceRecord) error {
	clearCall := s.service.Spreadsheets.Values.Clear(s.spreadsheetID, s.sheetName, &sheetsapi.ClearValuesRequest{})
	if _, err := clearCall.Context(ctx).Do(); err != nil {
		return fmt.Errorf("clearing sheet %s: %w", s.sheetName, err)
	}

	payload := &sheetsapi.ValueRange{Values: RecordsToRows(records)}
	update := s.service.Spreadsheets.Values.Update(s.spreadsheetID, s.sheetName, payload).
		ValueInputOption("RAW").
		Context(ctx)
	if _, err := update.Do(); err != nil {
		return fmt.Errorf("updating sheet %s: %w", s.sheetName, err)
	}

	s.logger.Debug("ledger saved to sheet",
		zap.String("sheet", s.sheetName),
		zap.Int("records", len(records)))
	return nil
}

// RowsToRecords converts raw sheet values (header row first) to records.
// Cells may arrive as strings or numbers depending on how the sheet was
// edited; everything is coerced to text before reconciliation.
func RowsToRecords(rows [][]interface{}) []model.InvoiceRecord {
	if len(rows) == 0 {
		return nil
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = cellText(cell)
	}

	records := make([]model.InvoiceRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		named := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				named[col] = cellText(row[i])
			}
		}
		records = append(records, ledger.FromRow(named))
	}
	return records
}

// RecordsToRows converts records to sheet values with the header row first.
func RecordsToRows(records []model.InvoiceRecord) [][]interface{} {
	rows := make([][]interface{}, 0, len(records)+1)

	header := make([]interface{}, len(model.Columns))
	for i, col := range model.Columns {
		header[i] = col
	}
	rows = append(rows, header)

	for _, rec := range records {
		cells := ledger.MarshalRecord(rec)
		row := make([]interface{}, len(cells))
		for i, cell := range cells {
			row[i] = cell
		}
		rows = append(rows, row)
	}
	return rows
}

func cellText(cell interface{}) string {
	switch v := cell.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
