package iorepo

import (
	"context"

	"github.com/gnames/srameta/pkg/importer"
	"github.com/gnames/srameta/pkg/schema"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type studyRepo struct {
	db *gorm.DB
}

// NewStudyRepo creates a StudyRepository.
func NewStudyRepo(db *gorm.DB) importer.StudyRepository {
	return &studyRepo{db: db}
}

// FindOrSave stores the study unless a study with the same accession
// exists, and returns the stored row.
func (r *studyRepo) FindOrSave(
	ctx context.Context,
	study *schema.Study,
) (*schema.Study, error) {
	db := r.db.WithContext(ctx)

	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(study).Error
	if err != nil {
		return nil, FindOrSaveError("study", study.Accession, err)
	}

	var res schema.Study
	err = db.Where("accession = ?", study.Accession).First(&res).Error
	if err != nil {
		return nil, FindOrSaveError("study", study.Accession, err)
	}
	return &res, nil
}
