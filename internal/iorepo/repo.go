// Package iorepo implements repositories of studies, analyses, samples
// and taxonomies on top of GORM. This is an impure I/O package.
//
// Find-or-save operations insert with ON CONFLICT DO NOTHING and then
// read the stored row back, so concurrent writers of the same accession
// end up with a single row.
package iorepo

import (
	"github.com/gnames/srameta/pkg/importer"
	"gorm.io/gorm"
)

const defaultBatchSize = 1_000

// Repositories groups all repositories that share one GORM handle.
type Repositories struct {
	Studies    importer.StudyRepository
	Analyses   importer.AnalysisRepository
	Samples    importer.SampleRepository
	Taxonomies importer.TaxonomyRepository
}

// New creates repositories. The batchSize limits the number of samples
// sent to the database in one statement.
func New(db *gorm.DB, batchSize int) *Repositories {
	return &Repositories{
		Studies:    NewStudyRepo(db),
		Analyses:   NewAnalysisRepo(db),
		Samples:    NewSampleRepo(db, batchSize),
		Taxonomies: NewTaxonomyRepo(db),
	}
}
