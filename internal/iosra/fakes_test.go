package iosra

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gnames/srameta/pkg/importer"
	"github.com/gnames/srameta/pkg/schema"
)

type call struct {
	mode      importer.QueryMode
	accession string
}

type fakeSource struct {
	mu         sync.Mutex
	calls      []call
	studies    map[string]string
	analyses   map[string]string
	samples    map[string][]importer.SampleXML
	studyDelay time.Duration
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		studies:  make(map[string]string),
		analyses: make(map[string]string),
		samples:  make(map[string][]importer.SampleXML),
	}
}

func (s *fakeSource) record(mode importer.QueryMode, acc string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call{mode: mode, accession: acc})
}

func (s *fakeSource) RetrieveXML(
	_ context.Context,
	mode importer.QueryMode,
	acc string,
) (string, error) {
	s.record(mode, acc)

	var data map[string]string
	switch mode {
	case importer.StudyQuery:
		time.Sleep(s.studyDelay)
		data = s.studies
	case importer.AnalysisQuery:
		data = s.analyses
	default:
		return "", fmt.Errorf("unsupported mode %s", mode)
	}
	res, ok := data[acc]
	if !ok {
		return "", fmt.Errorf("%s not found", acc)
	}
	return res, nil
}

func (s *fakeSource) RetrieveSampleXMLs(
	_ context.Context,
	acc string,
) ([]importer.SampleXML, error) {
	s.record(importer.SampleQuery, acc)
	return s.samples[acc], nil
}

func (s *fakeSource) callsFor(acc string) []call {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []call
	for _, v := range s.calls {
		if v.accession == acc {
			res = append(res, v)
		}
	}
	return res
}

type fakeStudies struct {
	mu      sync.Mutex
	stored  map[string]*schema.Study
	creates int
}

func newFakeStudies() *fakeStudies {
	return &fakeStudies{stored: make(map[string]*schema.Study)}
}

func (r *fakeStudies) FindOrSave(
	_ context.Context,
	st *schema.Study,
) (*schema.Study, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res, ok := r.stored[st.Accession]; ok {
		return res, nil
	}
	r.creates++
	r.stored[st.Accession] = st
	return st, nil
}

type fakeAnalyses struct {
	mu    sync.Mutex
	saved []*schema.Analysis
}

func (r *fakeAnalyses) Save(
	_ context.Context,
	a *schema.Analysis,
) (*schema.Analysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, a)
	return a, nil
}

type fakeSamples struct {
	mu    sync.Mutex
	calls int
}

func (r *fakeSamples) FindOrSave(
	_ context.Context,
	ss []*schema.Sample,
) ([]*schema.Sample, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return ss, nil
}

type fakeTaxa struct {
	mu  sync.Mutex
	ids []int
}

func (r *fakeTaxa) ImportTaxonomyTree(
	_ context.Context,
	id int,
) (*schema.Taxonomy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, id)
	return &schema.Taxonomy{ID: id, Name: fmt.Sprintf("taxon %d", id)}, nil
}

type fixture struct {
	source   *fakeSource
	studies  *fakeStudies
	analyses *fakeAnalyses
	samples  *fakeSamples
	taxa     *fakeTaxa
	imp      *DBImporter
}

func newFixture() *fixture {
	f := &fixture{
		source:   newFakeSource(),
		studies:  newFakeStudies(),
		analyses: &fakeAnalyses{},
		samples:  &fakeSamples{},
		taxa:     &fakeTaxa{},
	}
	f.imp = New(Collaborators{
		Retriever:  f.source,
		Studies:    f.studies,
		Analyses:   f.analyses,
		Samples:    f.samples,
		Taxonomies: f.taxa,
	})
	return f
}

func studyXML(acc string) string {
	return fmt.Sprintf(`<STUDY_SET>
  <STUDY accession=%q center_name="EMG">
    <DESCRIPTOR>
      <STUDY_TITLE>Study %s</STUDY_TITLE>
      <STUDY_TYPE existing_study_type="Metagenomics"/>
    </DESCRIPTOR>
  </STUDY>
</STUDY_SET>`, acc, acc)
}

func analysisXML(acc, study string) string {
	ref := ""
	if study != "" {
		ref = fmt.Sprintf(`<STUDY_REF accession=%q/>`, study)
	}
	return fmt.Sprintf(`<ANALYSIS_SET>
  <ANALYSIS accession=%q center_name="EMG">
    <TITLE>Analysis %s</TITLE>
    %s
    <ANALYSIS_TYPE><SEQUENCE_ASSEMBLY/></ANALYSIS_TYPE>
  </ANALYSIS>
</ANALYSIS_SET>`, acc, acc, ref)
}

func sampleXML(acc string, taxonID int, bioSample string) string {
	ext := ""
	if bioSample != "" {
		ext = fmt.Sprintf(
			`<IDENTIFIERS><EXTERNAL_ID namespace="BioSample">%s</EXTERNAL_ID></IDENTIFIERS>`,
			bioSample,
		)
	}
	return fmt.Sprintf(`<SAMPLE accession=%q>
  %s
  <SAMPLE_NAME><TAXON_ID>%d</TAXON_ID></SAMPLE_NAME>
</SAMPLE>`, acc, ext, taxonID)
}

// addAnalysis registers an analysis with its study and samples.
// Samples get taxon ids 1000+index.
func (f *fixture) addAnalysis(acc, study string, samples ...string) {
	f.source.analyses[acc] = analysisXML(acc, study)
	if study != "" {
		f.source.studies[study] = studyXML(study)
	}
	for i, v := range samples {
		f.source.samples[acc] = append(f.source.samples[acc], importer.SampleXML{
			SampleID:           v,
			BioSampleAccession: "SAMEA" + v[3:],
			XML:                sampleXML(v, 1000+i, ""),
		})
	}
}
