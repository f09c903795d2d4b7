package ledger

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/naseer2426/command-bots/internal/db"
)

var _ Store = &PostgresStore{}

// BillRow is the bills table.
type BillRow struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"index;not null"`
	Name      string    `gorm:"not null"`
	Price     float64   `gorm:"not null"`
	Date      string    `gorm:"type:date;not null"`
	CreatedAt time.Time
}

func (BillRow) TableName() string {
	return "bills"
}

func newBillRow(b Bill) BillRow {
	return BillRow{
		Username: b.Username,
		Name:     b.Name,
		Price:    b.Price,
		Date:     b.Date.Format(DateLayout),
	}
}

// PostgresStore keeps bills in a Postgres table through GORM.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(database *gorm.DB) *PostgresStore {
	return &PostgresStore{db: database}
}

// Init migrates the bills table.
func (s *PostgresStore) Init(ctx context.Context) error {
	return db.AutoMigrate(ctx, s.db, &BillRow{})
}

func (s *PostgresStore) Append(ctx context.Context, bill Bill) error {
	row := newBillRow(bill)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}
	return nil
}
