package iorepo

import (
	"context"

	"github.com/gnames/srameta/pkg/importer"
	"github.com/gnames/srameta/pkg/schema"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type analysisRepo struct {
	db *gorm.DB
}

// NewAnalysisRepo creates an AnalysisRepository.
func NewAnalysisRepo(db *gorm.DB) importer.AnalysisRepository {
	return &analysisRepo{db: db}
}

// Save upserts the analysis row and replaces its links to samples.
// Samples and the study have to be stored already.
func (r *analysisRepo) Save(
	ctx context.Context,
	analysis *schema.Analysis,
) (*schema.Analysis, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"alias", "center", "title", "description",
					"analysis_type", "analysis_date", "study_id", "updated_at",
				}),
			}).
			Create(analysis).Error
		if err != nil {
			return err
		}

		assoc := tx.Model(analysis).Omit("Samples.*").Association("Samples")
		if len(analysis.Samples) == 0 {
			return assoc.Clear()
		}
		return assoc.Replace(analysis.Samples)
	})
	if err != nil {
		return nil, SaveError("analysis", analysis.Accession, err)
	}

	var res schema.Analysis
	err = r.db.WithContext(ctx).
		Preload("Study").
		Preload("Samples", func(db *gorm.DB) *gorm.DB {
			return db.Order("samples.accession")
		}).
		Preload("Samples.Taxonomies").
		First(&res, "id = ?", analysis.ID).Error
	if err != nil {
		return nil, SaveError("analysis", analysis.Accession, err)
	}
	return &res, nil
}
