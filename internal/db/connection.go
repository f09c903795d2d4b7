package db

import (
	"errors"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/naseer2426/command-bots/internal/logging"
)

var ErrDSNNotSet = errors.New("DATABASE_URL is not set")

// Connect establishes a GORM connection to Postgres using dsn.
func Connect(dsn string, log *slog.Logger) (*gorm.DB, error) {
	if dsn == "" {
		return nil, ErrDSNNotSet
	}

	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logging.NewGormLogger(log),
	})
}
