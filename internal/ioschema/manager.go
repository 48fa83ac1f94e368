// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/srameta/pkg/config"
	"github.com/gnames/srameta/pkg/db"
	"github.com/gnames/srameta/pkg/lifecycle"
	"github.com/gnames/srameta/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates studies, analyses, samples, taxonomies tables and
// their join tables.
func (m *manager) Create(
	ctx context.Context,
	cfg *config.Config,
) error {
	gormDB, err := m.GORM()
	if err != nil {
		return err
	}

	if err = schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}
	slog.Info("Schema created", "database", cfg.Database.Database)

	return nil
}

// Migrate updates the database schema to the latest version
// using GORM AutoMigrate.
func (m *manager) Migrate(
	ctx context.Context,
	cfg *config.Config,
) error {
	gormDB, err := m.GORM()
	if err != nil {
		return err
	}

	if err = schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return MigrateSchemaError(err)
	}
	slog.Info("Schema migrated", "database", cfg.Database.Database)

	return nil
}

// GORM opens GORM on top of the operator's pgx pool.
func (m *manager) GORM() (*gorm.DB, error) {
	pool := m.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}

	return gormDB, nil
}
