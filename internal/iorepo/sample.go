package iorepo

import (
	"context"
	"fmt"
	"slices"

	"github.com/gnames/srameta/pkg/importer"
	"github.com/gnames/srameta/pkg/schema"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sampleRepo struct {
	db        *gorm.DB
	batchSize int
}

// NewSampleRepo creates a SampleRepository. Non-positive batchSize
// falls back to the default.
func NewSampleRepo(db *gorm.DB, batchSize int) importer.SampleRepository {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &sampleRepo{db: db, batchSize: batchSize}
}

// FindOrSave stores samples with unknown accessions together with their
// taxonomy links. Known samples are returned as stored, their
// taxonomies are not changed. The result follows the input order.
func (r *sampleRepo) FindOrSave(
	ctx context.Context,
	samples []*schema.Sample,
) ([]*schema.Sample, error) {
	res := make([]*schema.Sample, 0, len(samples))
	if len(samples) == 0 {
		return res, nil
	}
	db := r.db.WithContext(ctx)

	accs := make([]string, 0, len(samples))
	seen := make(map[string]struct{})
	var unique []*schema.Sample
	for _, v := range samples {
		if _, ok := seen[v.Accession]; ok {
			continue
		}
		seen[v.Accession] = struct{}{}
		accs = append(accs, v.Accession)
		unique = append(unique, v)
	}
	key := fmt.Sprintf("%s (%d total)", accs[0], len(accs))

	existing := make(map[string]struct{})
	for chunk := range slices.Chunk(accs, r.batchSize) {
		var found []string
		err := db.Model(&schema.Sample{}).
			Where("accession IN ?", chunk).
			Pluck("accession", &found).Error
		if err != nil {
			return nil, FindOrSaveError("samples", key, err)
		}
		for _, v := range found {
			existing[v] = struct{}{}
		}
	}

	var missing []*schema.Sample
	for _, v := range unique {
		if _, ok := existing[v.Accession]; !ok {
			missing = append(missing, v)
		}
	}

	if len(missing) > 0 {
		err := db.Clauses(clause.OnConflict{DoNothing: true}).
			CreateInBatches(missing, r.batchSize).Error
		if err != nil {
			return nil, FindOrSaveError("samples", key, err)
		}
	}

	stored := make(map[string]*schema.Sample, len(accs))
	for chunk := range slices.Chunk(accs, r.batchSize) {
		var rows []*schema.Sample
		err := db.Preload("Taxonomies").
			Where("accession IN ?", chunk).
			Find(&rows).Error
		if err != nil {
			return nil, FindOrSaveError("samples", key, err)
		}
		for _, v := range rows {
			stored[v.Accession] = v
		}
	}

	for _, v := range samples {
		s, ok := stored[v.Accession]
		if !ok {
			err := fmt.Errorf("sample %s is missing after insert", v.Accession)
			return nil, FindOrSaveError("samples", key, err)
		}
		res = append(res, s)
	}
	return res, nil
}
