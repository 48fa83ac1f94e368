// Package lifecycle defines contracts of the target database lifecycle.
package lifecycle

import (
	"context"

	"github.com/gnames/srameta/pkg/config"
	"gorm.io/gorm"
)

// SchemaManager defines the interface for database schema management.
// It uses GORM AutoMigrate to handle both initial schema creation and
// migrations. Schema management is idempotent.
type SchemaManager interface {
	// Create creates the initial database schema.
	Create(ctx context.Context, cfg *config.Config) error

	// Migrate updates the database schema to the latest version.
	Migrate(ctx context.Context, cfg *config.Config) error

	// GORM returns a GORM handle that shares the connection pool of
	// the database operator.
	GORM() (*gorm.DB, error)
}
