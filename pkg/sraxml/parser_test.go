package sraxml_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/srameta/pkg/errcode"
	"github.com/gnames/srameta/pkg/sraxml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readXML(t *testing.T, file string) string {
	t.Helper()
	res, err := os.ReadFile(filepath.Join("testdata", file))
	require.NoError(t, err)
	return string(res)
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	return gnErr.Code
}

func TestParseStudy(t *testing.T) {
	p := sraxml.NewStudyParser()
	st, err := p.Parse(readXML(t, "study.xml"), "ERP001736")
	require.NoError(t, err)

	assert.Equal(t, "ERP001736", st.Accession)
	assert.Equal(t, "Tara Oceans", st.CenterName)
	assert.Equal(t, "Shotgun Sequencing of Tara Oceans DNA samples",
		st.Descriptor.StudyTitle)
	require.NotNil(t, st.Descriptor.StudyType)
	assert.Equal(t, "Metagenomics", st.Descriptor.StudyType.ExistingStudyType)
	assert.Contains(t, st.Descriptor.StudyAbstract, "Tara Oceans expedition")
	require.Len(t, st.Attributes, 1)
	assert.Equal(t, "ENA-FIRST-PUBLIC", st.Attributes[0].Tag)
}

func TestParseAnalysis(t *testing.T) {
	p := sraxml.NewAnalysisParser()
	raw := readXML(t, "analysis.xml")

	tests := []struct {
		id    string
		title string
		kind  string
		date  string
	}{
		{"ERZ000001", "Assembly of marine metagenome", "SEQUENCE_ASSEMBLY",
			"2015-04-01T00:00:00"},
		{"ERZ000002", "Second assembly", "REFERENCE_ALIGNMENT", ""},
	}

	for _, v := range tests {
		an, err := p.Parse(raw, v.id)
		require.NoError(t, err, v.id)
		assert.Equal(t, v.id, an.Accession)
		assert.Equal(t, v.title, an.Title)
		assert.Equal(t, v.kind, an.AnalysisType.Kind())
		assert.Equal(t, v.date, an.AnalysisDate)
		assert.Equal(t, "ERP001736", an.StudyRef.StudyAccession())
	}

	an, err := p.Parse(raw, "ERZ000001")
	require.NoError(t, err)
	assert.Len(t, an.SampleRefs, 2)
}

func TestParseSample(t *testing.T) {
	p := sraxml.NewSampleParser()
	sm, err := p.Parse(readXML(t, "sample.xml"), "ERS000001")
	require.NoError(t, err)

	assert.Equal(t, "ERS000001", sm.Accession)
	assert.Equal(t, 408172, sm.TaxonID())
	assert.Equal(t, "marine metagenome", sm.SampleName.ScientificName)
	assert.Equal(t, "SAMEA2619376", sm.BioSample())
	require.Len(t, sm.Attributes, 1)
	assert.Equal(t, "m", sm.Attributes[0].Units)
}

func TestParseSingleElementOtherID(t *testing.T) {
	p := sraxml.NewSampleParser()
	raw := `<SAMPLE accession="ERS999"><SAMPLE_NAME><TAXON_ID>9606</TAXON_ID></SAMPLE_NAME></SAMPLE>`
	sm, err := p.Parse(raw, "S1")
	require.NoError(t, err)
	assert.Equal(t, "ERS999", sm.Accession)
	assert.Equal(t, 9606, sm.TaxonID())
	assert.Empty(t, sm.BioSample())
}

func TestParseErrors(t *testing.T) {
	p := sraxml.NewAnalysisParser()

	tests := []struct {
		msg  string
		raw  string
		id   string
		code gn.ErrorCode
	}{
		{"empty", "", "ERZ1", errcode.XMLRecordNotFoundError},
		{"plain text", "no xml here", "ERZ1", errcode.XMLRecordNotFoundError},
		{"wrong element", `<STUDY accession="ERP1"/>`, "ERZ1",
			errcode.XMLRecordNotFoundError},
		{"malformed", `<ANALYSIS accession="ERZ1"><TITLE>`, "ERZ1",
			errcode.XMLParseError},
		{"ambiguous", readXML(t, "analysis.xml"), "ERZ3",
			errcode.XMLAmbiguousRecordError},
	}

	for _, v := range tests {
		res, err := p.Parse(v.raw, v.id)
		require.Error(t, err, v.msg)
		assert.Nil(t, res, v.msg)
		assert.Equal(t, v.code, errCode(t, err), v.msg)
	}
}

func TestStudyRefFallback(t *testing.T) {
	ref := sraxml.StudyRef{
		Identifiers: &sraxml.Identifiers{
			PrimaryID: &sraxml.Identifier{Value: " ERP000002 "},
		},
	}
	assert.Equal(t, "ERP000002", ref.StudyAccession())
	assert.Empty(t, sraxml.StudyRef{}.StudyAccession())
}
