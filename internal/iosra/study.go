package iosra

import (
	"context"
	"sync"

	"github.com/gnames/srameta/pkg/importer"
	"github.com/gnames/srameta/pkg/schema"
	"golang.org/x/sync/singleflight"
)

// studyCache maps study accessions to resolved studies. Loads of the
// same accession are collapsed into one call. Failed loads are not
// cached.
type studyCache struct {
	mu      sync.RWMutex
	studies map[string]*schema.Study
	sf      singleflight.Group
}

func newStudyCache() *studyCache {
	return &studyCache{studies: make(map[string]*schema.Study)}
}

func (c *studyCache) get(acc string) (*schema.Study, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.studies[acc]
	return res, ok
}

func (c *studyCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.studies)
}

// getOrLoad returns a cached study or calls load once for all
// concurrent callers of the same accession.
func (c *studyCache) getOrLoad(
	acc string,
	load func() (*schema.Study, error),
) (*schema.Study, error) {
	if res, ok := c.get(acc); ok {
		return res, nil
	}

	v, err, _ := c.sf.Do(acc, func() (any, error) {
		if res, ok := c.get(acc); ok {
			return res, nil
		}
		res, err := load()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.studies[acc] = res
		c.mu.Unlock()
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*schema.Study), nil
}

// importStudyFromAnalysis resolves a study referenced by an analysis.
// A study is fetched and persisted at most once per importer. A study
// stored by an earlier run is returned instead of the fetched one.
func (d *DBImporter) importStudyFromAnalysis(
	ctx context.Context,
	accession string,
) (*schema.Study, error) {
	return d.studies.getOrLoad(accession, func() (*schema.Study, error) {
		study, err := d.fetchStudy(ctx, accession)
		if err != nil {
			return nil, err
		}
		return d.Studies.FindOrSave(ctx, study)
	})
}

// fetchStudy retrieves, parses and converts a study without persisting it.
func (d *DBImporter) fetchStudy(
	ctx context.Context,
	accession string,
) (*schema.Study, error) {
	raw, err := d.Retriever.RetrieveXML(ctx, importer.StudyQuery, accession)
	if err != nil {
		return nil, err
	}
	rec, err := d.StudyParser.Parse(raw, accession)
	if err != nil {
		return nil, err
	}
	study, err := d.StudyConverter.Convert(rec)
	if err != nil {
		return nil, err
	}
	return extractAnalysisFromStudy(study), nil
}

// extractAnalysisFromStudy leaves the study as is: a study fetched from
// the database source has no analyses to extract.
func extractAnalysisFromStudy(study *schema.Study) *schema.Study {
	return study
}
