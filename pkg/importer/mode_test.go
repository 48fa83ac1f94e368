package importer_test

import (
	"testing"

	"github.com/gnames/srameta/pkg/importer"
	"github.com/stretchr/testify/assert"
)

func TestQueryMode(t *testing.T) {
	var mode importer.QueryMode
	assert.Equal(t, importer.AnalysisQuery, mode, "resting mode")

	tests := []struct {
		mode importer.QueryMode
		res  string
	}{
		{importer.AnalysisQuery, "ANALYSIS_QUERY"},
		{importer.StudyQuery, "STUDY_QUERY"},
		{importer.SampleQuery, "SAMPLE_QUERY"},
		{importer.QueryMode(42), "UNKNOWN_QUERY"},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, v.mode.String())
	}
}
