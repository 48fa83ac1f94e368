package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
// Join tables analysis_samples and sample_taxonomies are created
// from many2many associations.
func AllModels() []any {
	return []any{
		&Study{},
		&Analysis{},
		&Sample{},
		&Taxonomy{},
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
