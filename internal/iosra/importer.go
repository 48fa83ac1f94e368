// Package iosra implements importer.Importer for SRA data sources that
// are reachable as a relational database. It fetches XML records of
// studies, analyses and samples, converts them to entities, links them
// together and persists the result.
package iosra

import (
	"context"

	"github.com/gnames/srameta/pkg/convert"
	"github.com/gnames/srameta/pkg/importer"
	"github.com/gnames/srameta/pkg/schema"
	"github.com/gnames/srameta/pkg/sraxml"
)

// Collaborators are dependencies of DBImporter. Parsers and converters
// are optional, sraxml parsers and convert converters are used by
// default.
type Collaborators struct {
	Retriever importer.Retriever

	StudyParser    importer.Parser[*sraxml.Study]
	AnalysisParser importer.Parser[*sraxml.Analysis]
	SampleParser   importer.Parser[*sraxml.Sample]

	StudyConverter    importer.Converter[*sraxml.Study, *schema.Study]
	AnalysisConverter importer.Converter[*sraxml.Analysis, *schema.Analysis]
	SampleConverter   importer.Converter[*sraxml.Sample, *schema.Sample]

	Studies    importer.StudyRepository
	Analyses   importer.AnalysisRepository
	Samples    importer.SampleRepository
	Taxonomies importer.TaxonomyImporter
}

// DBImporter imports studies and analyses from a database-backed SRA
// source. Studies referenced by analyses are resolved once per
// DBImporter, so one instance should serve a whole import run.
// It is safe for concurrent use.
type DBImporter struct {
	Collaborators
	studies *studyCache
}

var _ importer.Importer = (*DBImporter)(nil)

// New creates a DBImporter.
func New(c Collaborators) *DBImporter {
	if c.StudyParser == nil {
		c.StudyParser = sraxml.NewStudyParser()
	}
	if c.AnalysisParser == nil {
		c.AnalysisParser = sraxml.NewAnalysisParser()
	}
	if c.SampleParser == nil {
		c.SampleParser = sraxml.NewSampleParser()
	}
	if c.StudyConverter == nil {
		c.StudyConverter = convert.StudyConverter{}
	}
	if c.AnalysisConverter == nil {
		c.AnalysisConverter = convert.AnalysisConverter{}
	}
	if c.SampleConverter == nil {
		c.SampleConverter = convert.SampleConverter{}
	}
	return &DBImporter{Collaborators: c, studies: newStudyCache()}
}

// ImportStudy fetches a study from the source and persists it. The
// source is always queried, the cache of studies is neither read nor
// updated.
func (d *DBImporter) ImportStudy(
	ctx context.Context,
	accession string,
) (*schema.Study, error) {
	study, err := d.fetchStudy(ctx, accession)
	if err != nil {
		return nil, err
	}
	return d.Studies.FindOrSave(ctx, study)
}

// ImportAnalysis fetches an analysis, imports its samples with their
// taxonomies, attaches its study and persists the analysis. If any
// step fails the analysis is not persisted.
func (d *DBImporter) ImportAnalysis(
	ctx context.Context,
	accession string,
) (*schema.Analysis, error) {
	raw, err := d.Retriever.RetrieveXML(ctx, importer.AnalysisQuery, accession)
	if err != nil {
		return nil, err
	}
	rec, err := d.AnalysisParser.Parse(raw, accession)
	if err != nil {
		return nil, err
	}
	analysis, err := d.AnalysisConverter.Convert(rec)
	if err != nil {
		return nil, err
	}

	samples, err := d.importSamples(ctx, rec)
	if err != nil {
		return nil, err
	}
	analysis.Samples = samples

	return d.attachStudy(ctx, rec, analysis)
}

// CachedStudies returns the number of studies resolved by this importer.
func (d *DBImporter) CachedStudies() int {
	return d.studies.len()
}

// attachStudy resolves the study of the analysis, sets it and persists
// the analysis.
func (d *DBImporter) attachStudy(
	ctx context.Context,
	rec *sraxml.Analysis,
	analysis *schema.Analysis,
) (*schema.Analysis, error) {
	acc := rec.StudyRef.StudyAccession()
	if acc == "" {
		return nil, MissingStudyRefError(analysis.Accession)
	}

	study, err := d.importStudyFromAnalysis(ctx, acc)
	if err != nil {
		return nil, err
	}
	analysis.StudyID = study.ID
	analysis.Study = study

	return d.Analyses.Save(ctx, analysis)
}
