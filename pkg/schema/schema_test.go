package schema_test

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gnames/srameta/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestAllModels(t *testing.T) {
	models := schema.AllModels()
	assert.Len(t, models, 4)
}

func TestMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = schema.Migrate(db)
	require.NoError(t, err)

	tables := []string{
		"studies", "analyses", "samples", "taxonomies",
		"analysis_samples", "sample_taxonomies",
	}
	for _, v := range tables {
		assert.True(t, db.Migrator().HasTable(v), v)
	}

	assert.True(t, db.Migrator().HasIndex(&schema.Study{}, "Accession"))
	assert.True(t, db.Migrator().HasColumn(&schema.Sample{}, "BioSampleAccession"))
	assert.True(t, db.Migrator().HasColumn(&schema.Analysis{}, "StudyID"))

	// migration is repeatable
	err = schema.Migrate(db)
	require.NoError(t, err)
}
