// Package convert maps SRA XML records to persistence entities.
// Entity IDs are UUID v5 of accessions, so the same record always
// gets the same ID, independent of the import run.
package convert

import (
	"strings"

	"github.com/gnames/gnuuid"
	"github.com/gnames/srameta/pkg/schema"
	"github.com/gnames/srameta/pkg/sraxml"
)

// StudyConverter converts STUDY records.
type StudyConverter struct{}

// AnalysisConverter converts ANALYSIS records. The study of the
// analysis is not set, it is the responsibility of the importer.
type AnalysisConverter struct{}

// SampleConverter converts SAMPLE records.
type SampleConverter struct{}

// Convert creates a Study entity.
func (StudyConverter) Convert(rec *sraxml.Study) (*schema.Study, error) {
	acc := strings.TrimSpace(rec.Accession)
	if acc == "" {
		return nil, MissingAccessionError("study", rec.Alias)
	}

	d := rec.Descriptor
	res := &schema.Study{
		ID:          EntityID(acc),
		Accession:   acc,
		Alias:       strings.TrimSpace(rec.Alias),
		Center:      strings.TrimSpace(rec.CenterName),
		Title:       strings.TrimSpace(d.StudyTitle),
		Abstract:    strings.TrimSpace(d.StudyAbstract),
		Description: strings.TrimSpace(d.StudyDescription),
	}
	if d.StudyType != nil {
		res.StudyType = d.StudyType.ExistingStudyType
		if res.StudyType == "" || res.StudyType == "Other" {
			res.StudyType = firstNonEmpty(d.StudyType.NewStudyType, res.StudyType)
		}
	}
	return res, nil
}

// Convert creates an Analysis entity without study and samples.
func (AnalysisConverter) Convert(rec *sraxml.Analysis) (*schema.Analysis, error) {
	acc := strings.TrimSpace(rec.Accession)
	if acc == "" {
		return nil, MissingAccessionError("analysis", rec.Alias)
	}

	res := &schema.Analysis{
		ID:           EntityID(acc),
		Accession:    acc,
		Alias:        strings.TrimSpace(rec.Alias),
		Center:       firstNonEmpty(rec.AnalysisCenter, rec.CenterName),
		Title:        strings.TrimSpace(rec.Title),
		Description:  strings.TrimSpace(rec.Description),
		AnalysisType: rec.AnalysisType.Kind(),
		AnalysisDate: strings.TrimSpace(rec.AnalysisDate),
	}
	return res, nil
}

// Convert creates a Sample entity without taxonomies. BioSample
// accession is taken from the EXTERNAL_ID with BioSample namespace,
// if the XML has it.
func (SampleConverter) Convert(rec *sraxml.Sample) (*schema.Sample, error) {
	acc := strings.TrimSpace(rec.Accession)
	if acc == "" {
		return nil, MissingAccessionError("sample", rec.Alias)
	}

	res := &schema.Sample{
		ID:                 EntityID(acc),
		Accession:          acc,
		BioSampleAccession: rec.BioSample(),
		Alias:              strings.TrimSpace(rec.Alias),
		Center:             strings.TrimSpace(rec.CenterName),
		Title:              strings.TrimSpace(rec.Title),
		Description:        strings.TrimSpace(rec.Description),
		ScientificName:     strings.TrimSpace(rec.SampleName.ScientificName),
		TaxonID:            rec.TaxonID(),
	}
	return res, nil
}

// EntityID returns UUID v5 of an accession.
func EntityID(accession string) string {
	return gnuuid.New(accession).String()
}

// firstNonEmpty returns the first non-empty trimmed string.
func firstNonEmpty(ss ...string) string {
	for _, v := range ss {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
