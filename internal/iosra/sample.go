package iosra

import (
	"context"
	"log/slog"

	"github.com/gnames/srameta/pkg/schema"
	"github.com/gnames/srameta/pkg/sraxml"
)

// importSamples imports samples of the analysis in the order given by
// the source. BioSample accessions come from the source, not from XML.
// The first failed sample aborts the whole batch, nothing is submitted
// to the sample repository in that case.
func (d *DBImporter) importSamples(
	ctx context.Context,
	rec *sraxml.Analysis,
) ([]*schema.Sample, error) {
	tuples, err := d.Retriever.RetrieveSampleXMLs(ctx, rec.Accession)
	if err != nil {
		return nil, err
	}

	samples := make([]*schema.Sample, 0, len(tuples))
	for _, v := range tuples {
		sample, err := d.importSample(ctx, v.SampleID, v.BioSampleAccession, v.XML)
		if err != nil {
			slog.Error("Cannot import sample",
				"analysis", rec.Accession,
				"sample", v.SampleID,
				"error", err.Error(),
			)
			return nil, err
		}
		samples = append(samples, sample)
	}

	if len(samples) == 0 {
		slog.Warn("Analysis has no samples", "analysis", rec.Accession)
	}

	return d.Samples.FindOrSave(ctx, samples)
}

func (d *DBImporter) importSample(
	ctx context.Context,
	sampleID, bioSample, xml string,
) (*schema.Sample, error) {
	rec, err := d.SampleParser.Parse(xml, sampleID)
	if err != nil {
		return nil, err
	}
	sample, err := d.SampleConverter.Convert(rec)
	if err != nil {
		return nil, err
	}
	sample.BioSampleAccession = bioSample

	taxon, err := d.Taxonomies.ImportTaxonomyTree(ctx, rec.TaxonID())
	if err != nil {
		return nil, err
	}
	sample.Taxonomies = []*schema.Taxonomy{taxon}
	return sample, nil
}
