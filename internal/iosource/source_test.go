package iosource_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/srameta/internal/iosource"
	"github.com/gnames/srameta/pkg/config"
	"github.com/gnames/srameta/pkg/errcode"
	"github.com/gnames/srameta/pkg/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ddl = `
CREATE TABLE study (study_id TEXT PRIMARY KEY, study_xml TEXT);
CREATE TABLE analysis (analysis_id TEXT PRIMARY KEY, analysis_xml TEXT);
CREATE TABLE sample (
  sample_id TEXT PRIMARY KEY, biosample_id TEXT, sample_xml TEXT
);
CREATE TABLE analysis_sample (analysis_id TEXT, sample_id TEXT);

INSERT INTO study VALUES ('ERP1', '<STUDY accession="ERP1"/>');
INSERT INTO study VALUES ('ERP2', NULL);
INSERT INTO analysis VALUES ('ERZ1', '<ANALYSIS accession="ERZ1"/>');
INSERT INTO sample VALUES ('ERS2', 'SAMEA2', '<SAMPLE accession="ERS2"/>');
INSERT INTO sample VALUES ('ERS1', 'SAMEA1', '<SAMPLE accession="ERS1"/>');
INSERT INTO sample VALUES ('ERS3', NULL, '<SAMPLE accession="ERS3"/>');
INSERT INTO analysis_sample VALUES ('ERZ1', 'ERS2');
INSERT INTO analysis_sample VALUES ('ERZ1', 'ERS1');
INSERT INTO analysis_sample VALUES ('ERZ1', 'ERS3');
`

func newSource(t *testing.T) *iosource.Source {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "era.sqlite")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, ddl)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	src, err := iosource.Open(ctx, config.SourceConfig{Driver: "sqlite", DSN: path})
	require.NoError(t, err)
	t.Cleanup(func() { src.Close() })
	return src
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	return gnErr.Code
}

func TestRetrieveXML(t *testing.T) {
	src := newSource(t)
	ctx := context.Background()

	res, err := src.RetrieveXML(ctx, importer.StudyQuery, "ERP1")
	require.NoError(t, err)
	assert.Equal(t, `<STUDY accession="ERP1"/>`, res)

	res, err = src.RetrieveXML(ctx, importer.AnalysisQuery, "ERZ1")
	require.NoError(t, err)
	assert.Equal(t, `<ANALYSIS accession="ERZ1"/>`, res)

	// mode decides the table
	_, err = src.RetrieveXML(ctx, importer.AnalysisQuery, "ERP1")
	require.Error(t, err)
	assert.Equal(t, errcode.SourceRecordNotFoundError, errCode(t, err))
}

func TestRetrieveXMLErrors(t *testing.T) {
	src := newSource(t)
	ctx := context.Background()

	tests := []struct {
		msg  string
		mode importer.QueryMode
		acc  string
		code gn.ErrorCode
	}{
		{"missing study", importer.StudyQuery, "ERP9",
			errcode.SourceRecordNotFoundError},
		{"null xml", importer.StudyQuery, "ERP2",
			errcode.SourceRecordNotFoundError},
		{"sample mode", importer.SampleQuery, "ERS1",
			errcode.SourceQueryModeError},
	}

	for _, v := range tests {
		res, err := src.RetrieveXML(ctx, v.mode, v.acc)
		require.Error(t, err, v.msg)
		assert.Empty(t, res, v.msg)
		assert.Equal(t, v.code, errCode(t, err), v.msg)
	}
}

func TestRetrieveSampleXMLs(t *testing.T) {
	src := newSource(t)
	ctx := context.Background()

	res, err := src.RetrieveSampleXMLs(ctx, "ERZ1")
	require.NoError(t, err)
	require.Len(t, res, 3)

	assert.Equal(t, importer.SampleXML{
		SampleID:           "ERS1",
		BioSampleAccession: "SAMEA1",
		XML:                `<SAMPLE accession="ERS1"/>`,
	}, res[0])
	assert.Equal(t, "ERS2", res[1].SampleID)
	assert.Equal(t, "ERS3", res[2].SampleID)
	assert.Empty(t, res[2].BioSampleAccession)

	res, err = src.RetrieveSampleXMLs(ctx, "ERZ9")
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestOpenError(t *testing.T) {
	ctx := context.Background()
	_, err := iosource.Open(ctx, config.SourceConfig{
		Driver: "nodriver",
		DSN:    "whatever",
	})
	require.Error(t, err)
	assert.Equal(t, errcode.SourceOpenError, errCode(t, err))
}
