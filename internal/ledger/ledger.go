// Package ledger appends bill records to an external tabular store.
package ledger

import (
	"context"
	"time"
)

const DateLayout = "2006-01-02"

// Bill is one expense recorded by a chat user.
type Bill struct {
	Username string
	Name     string
	Price    float64
	Date     time.Time
}

// Row returns the bill as [user, billName, price, date].
func (b Bill) Row() []interface{} {
	return []interface{}{b.Username, b.Name, b.Price, b.Date.Format(DateLayout)}
}

// Store is an append-only bill table. Init prepares the table and must be
// safe to call on every startup.
type Store interface {
	Init(ctx context.Context) error
	Append(ctx context.Context, bill Bill) error
}
