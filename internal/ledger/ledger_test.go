package ledger

import (
	"testing"
	"time"
)

func TestBillRow(t *testing.T) {
	bill := Bill{
		Username: "bob",
		Name:     "taxi home",
		Price:    12.5,
		Date:     time.Date(2025, 1, 31, 23, 59, 0, 0, time.UTC),
	}

	row := bill.Row()
	if len(row) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(row))
	}
	if row[0] != "bob" || row[1] != "taxi home" || row[2] != 12.5 || row[3] != "2025-01-31" {
		t.Errorf("unexpected row %v", row)
	}

	dbRow := newBillRow(bill)
	if dbRow.Username != "bob" || dbRow.Name != "taxi home" || dbRow.Price != 12.5 || dbRow.Date != "2025-01-31" {
		t.Errorf("unexpected db row %+v", dbRow)
	}
	if dbRow.TableName() != "bills" {
		t.Errorf("expected table bills, got %q", dbRow.TableName())
	}
}
