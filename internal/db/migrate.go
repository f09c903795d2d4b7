package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// AutoMigrate runs GORM auto-migrations for the given models.
func AutoMigrate(ctx context.Context, database *gorm.DB, models ...any) error {
	if err := database.WithContext(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
