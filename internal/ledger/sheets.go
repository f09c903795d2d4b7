package ledger

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var headerRow = []interface{}{"User", "Bill", "Price", "Date"}

var _ Store = &SheetsStore{}

// SheetsStore keeps bills as rows of a Google Sheets tab.
type SheetsStore struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
	sheetName     string
}

// NewSheetsStore authenticates with a service account JSON key. An
// unparsable key is reported here, before the bot starts serving.
func NewSheetsStore(ctx context.Context, credentialsJSON []byte, spreadsheetID, sheetName string) (*SheetsStore, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}
	return NewSheetsStoreWithOptions(ctx, spreadsheetID, sheetName, option.WithCredentials(creds))
}

func NewSheetsStoreWithOptions(ctx context.Context, spreadsheetID, sheetName string, opts ...option.ClientOption) (*SheetsStore, error) {
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &SheetsStore{
		values:        srv.Spreadsheets.Values,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// Init writes the header row when the first row is empty.
func (s *SheetsStore) Init(ctx context.Context) error {
	headerRange := s.sheetName + "!A1:D1"
	resp, err := s.values.Get(s.spreadsheetID, headerRange).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read header row: %w", err)
	}
	if len(resp.Values) > 0 {
		return nil
	}

	_, err = s.values.Update(s.spreadsheetID, headerRange, &sheets.ValueRange{
		Values: [][]interface{}{headerRow},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	return nil
}

func (s *SheetsStore) Append(ctx context.Context, bill Bill) error {
	_, err := s.values.Append(s.spreadsheetID, s.sheetName+"!A:D", &sheets.ValueRange{
		Values: [][]interface{}{bill.Row()},
	}).ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append bill row: %w", err)
	}
	return nil
}
