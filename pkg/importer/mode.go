package importer

// QueryMode selects the shape of a query to the SRA data source.
type QueryMode int

const (
	// AnalysisQuery fetches analyses. It is the zero value, analyses
	// are the usual entry point of an import.
	AnalysisQuery QueryMode = iota

	// StudyQuery fetches studies.
	StudyQuery

	// SampleQuery fetches samples of an analysis.
	SampleQuery
)

// String returns the name of the mode.
func (m QueryMode) String() string {
	switch m {
	case AnalysisQuery:
		return "ANALYSIS_QUERY"
	case StudyQuery:
		return "STUDY_QUERY"
	case SampleQuery:
		return "SAMPLE_QUERY"
	default:
		return "UNKNOWN_QUERY"
	}
}

// SampleXML is a raw sample record as stored in the data source.
type SampleXML struct {
	// SampleID is the sample accession.
	SampleID string

	// BioSampleAccession is a cross-reference kept by the data source
	// next to the XML. The XML itself does not carry it.
	BioSampleAccession string

	// XML is the SAMPLE record.
	XML string
}
