// Package importer defines contracts of the SRA metadata import: query
// modes of the data source, raw sample tuples, and interfaces of the
// collaborators that retrieve, parse, convert and persist entities.
package importer

import (
	"context"

	"github.com/gnames/srameta/pkg/schema"
)

// Importer imports studies and analyses from an SRA data source.
type Importer interface {
	// ImportStudy retrieves, converts and persists a study. It always
	// reads the data source, even if the study was seen before.
	ImportStudy(ctx context.Context, accession string) (*schema.Study, error)

	// ImportAnalysis imports an analysis together with its study,
	// samples and their taxonomies.
	ImportAnalysis(ctx context.Context, accession string) (*schema.Analysis, error)
}

// Retriever provides raw XML records from the SRA data source.
type Retriever interface {
	// RetrieveXML returns the XML of a study or an analysis. The mode
	// selects the query shape and must be StudyQuery or AnalysisQuery.
	RetrieveXML(ctx context.Context, mode QueryMode, accession string) (string, error)

	// RetrieveSampleXMLs returns samples of an analysis in the order
	// given by the data source. It always uses SampleQuery.
	RetrieveSampleXMLs(ctx context.Context, analysisAccession string) ([]SampleXML, error)
}

// Parser converts raw XML into a typed record. The id is the accession
// the XML was retrieved for.
type Parser[T any] interface {
	Parse(raw, id string) (T, error)
}

// Converter maps a typed record to a persistence entity.
type Converter[R, E any] interface {
	Convert(rec R) (E, error)
}

// StudyRepository persists studies.
type StudyRepository interface {
	// FindOrSave returns a stored study with the same accession, or
	// stores the given one.
	FindOrSave(ctx context.Context, study *schema.Study) (*schema.Study, error)
}

// AnalysisRepository persists analyses.
type AnalysisRepository interface {
	// Save stores the analysis with its study reference and sample links.
	Save(ctx context.Context, analysis *schema.Analysis) (*schema.Analysis, error)
}

// SampleRepository persists samples in batches.
type SampleRepository interface {
	// FindOrSave returns stored samples for known accessions and stores
	// the rest. The result keeps the order of the input.
	FindOrSave(ctx context.Context, samples []*schema.Sample) ([]*schema.Sample, error)
}

// TaxonomyRepository persists taxonomy nodes.
type TaxonomyRepository interface {
	FindOrSave(ctx context.Context, taxon *schema.Taxonomy) (*schema.Taxonomy, error)
}

// TaxonomyImporter resolves a taxonomy id into a persisted taxon with
// its whole lineage.
type TaxonomyImporter interface {
	ImportTaxonomyTree(ctx context.Context, taxonID int) (*schema.Taxonomy, error)
}
