package iorepo

import (
	"context"
	"strconv"

	"github.com/gnames/srameta/pkg/importer"
	"github.com/gnames/srameta/pkg/schema"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type taxonomyRepo struct {
	db *gorm.DB
}

// NewTaxonomyRepo creates a TaxonomyRepository.
func NewTaxonomyRepo(db *gorm.DB) importer.TaxonomyRepository {
	return &taxonomyRepo{db: db}
}

// FindOrSave stores the taxon unless its NCBI id is already known.
func (r *taxonomyRepo) FindOrSave(
	ctx context.Context,
	taxon *schema.Taxonomy,
) (*schema.Taxonomy, error) {
	db := r.db.WithContext(ctx)
	id := strconv.Itoa(taxon.ID)

	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(taxon).Error
	if err != nil {
		return nil, FindOrSaveError("taxon", id, err)
	}

	var res schema.Taxonomy
	if err = db.First(&res, taxon.ID).Error; err != nil {
		return nil, FindOrSaveError("taxon", id, err)
	}
	return &res, nil
}
