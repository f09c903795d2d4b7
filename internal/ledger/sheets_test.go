package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"google.golang.org/api/option"
)

type sheetsCall struct {
	method string
	path   string
	query  string
	body   map[string]any
}

func newFakeSheets(t *testing.T, headerValues string) (*SheetsStore, *[]sheetsCall) {
	t.Helper()
	var calls []sheetsCall
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		calls = append(calls, sheetsCall{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, body: body})

		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`{"range":"Bills!A1:D1","majorDimension":"ROWS"` + headerValues + `}`))
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	store, err := NewSheetsStoreWithOptions(context.Background(), "sheet-id", "Bills",
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
	)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store, &calls
}

func TestSheetsInitWritesHeader(t *testing.T) {
	store, calls := newFakeSheets(t, "")

	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*calls) != 2 {
		t.Fatalf("expected read and write, got %d calls", len(*calls))
	}
	write := (*calls)[1]
	if write.method != http.MethodPut {
		t.Errorf("expected PUT for header update, got %s", write.method)
	}
	if !strings.Contains(write.path, "Bills!A1:D1") {
		t.Errorf("unexpected update path %q", write.path)
	}
	if !strings.Contains(write.query, "valueInputOption=RAW") {
		t.Errorf("expected RAW input option, got %q", write.query)
	}
	rows := write.body["values"].([]any)
	header := rows[0].([]any)
	if len(header) != 4 || header[0] != "User" || header[3] != "Date" {
		t.Errorf("unexpected header %v", header)
	}
}

func TestSheetsInitKeepsExistingHeader(t *testing.T) {
	store, calls := newFakeSheets(t, `,"values":[["User","Bill","Price","Date"]]`)

	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*calls) != 1 {
		t.Fatalf("expected only the read call, got %d", len(*calls))
	}
}

func TestSheetsAppend(t *testing.T) {
	store, calls := newFakeSheets(t, "")

	bill := Bill{
		Username: "alice",
		Name:     "dinner",
		Price:    180,
		Date:     time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC),
	}
	if err := store.Append(context.Background(), bill); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	call := (*calls)[0]
	if call.method != http.MethodPost || !strings.HasSuffix(call.path, ":append") {
		t.Errorf("expected POST ...:append, got %s %s", call.method, call.path)
	}
	if !strings.Contains(call.query, "insertDataOption=INSERT_ROWS") {
		t.Errorf("expected INSERT_ROWS, got %q", call.query)
	}
	row := call.body["values"].([]any)[0].([]any)
	if row[0] != "alice" || row[1] != "dinner" || row[2] != float64(180) || row[3] != "2024-03-09" {
		t.Errorf("unexpected row %v", row)
	}
}

func TestNewSheetsStoreRejectsBadCredentials(t *testing.T) {
	_, err := NewSheetsStore(context.Background(), []byte("not json"), "sheet-id", "Bills")
	if err == nil {
		t.Fatal("expected credential parse error")
	}
}
