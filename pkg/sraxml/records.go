// Package sraxml provides records of SRA/ENA XML documents and parsers
// that extract a single record from raw XML text.
package sraxml

import (
	"encoding/xml"
	"strings"
)

// Study is a STUDY element.
type Study struct {
	XMLName xml.Name `xml:"STUDY"`

	Alias      string `xml:"alias,attr,omitempty"`
	CenterName string `xml:"center_name,attr,omitempty"`
	BrokerName string `xml:"broker_name,attr,omitempty"`
	Accession  string `xml:"accession,attr,omitempty"`

	Identifiers *Identifiers    `xml:"IDENTIFIERS"`
	Descriptor  StudyDescriptor `xml:"DESCRIPTOR"`
	Attributes  []Attribute     `xml:"STUDY_ATTRIBUTES>STUDY_ATTRIBUTE"`
}

// StudyDescriptor describes the study.
type StudyDescriptor struct {
	StudyTitle        string     `xml:"STUDY_TITLE"`
	StudyType         *StudyType `xml:"STUDY_TYPE"`
	StudyAbstract     string     `xml:"STUDY_ABSTRACT"`
	CenterProjectName string     `xml:"CENTER_PROJECT_NAME"`
	StudyDescription  string     `xml:"STUDY_DESCRIPTION"`
}

// StudyType keeps a controlled or a new type of the study.
type StudyType struct {
	ExistingStudyType string `xml:"existing_study_type,attr"`
	NewStudyType      string `xml:"new_study_type,attr,omitempty"`
}

// Analysis is an ANALYSIS element.
type Analysis struct {
	XMLName xml.Name `xml:"ANALYSIS"`

	Alias          string `xml:"alias,attr,omitempty"`
	CenterName     string `xml:"center_name,attr,omitempty"`
	BrokerName     string `xml:"broker_name,attr,omitempty"`
	Accession      string `xml:"accession,attr,omitempty"`
	AnalysisCenter string `xml:"analysis_center,attr,omitempty"`
	AnalysisDate   string `xml:"analysis_date,attr,omitempty"`

	Identifiers  *Identifiers `xml:"IDENTIFIERS"`
	Title        string       `xml:"TITLE"`
	StudyRef     StudyRef     `xml:"STUDY_REF"`
	Description  string       `xml:"DESCRIPTION"`
	AnalysisType AnalysisType `xml:"ANALYSIS_TYPE"`
	SampleRefs   []SampleRef  `xml:"SAMPLE_REF"`
	Attributes   []Attribute  `xml:"ANALYSIS_ATTRIBUTES>ANALYSIS_ATTRIBUTE"`
}

// StudyRef points to the study of an analysis.
type StudyRef struct {
	Identifiers *Identifiers `xml:"IDENTIFIERS"`
	RefName     string       `xml:"refname,attr,omitempty"`
	RefCenter   string       `xml:"refcenter,attr,omitempty"`
	Accession   string       `xml:"accession,attr,omitempty"`
}

// SampleRef points to a sample used by an analysis.
type SampleRef struct {
	Label     string `xml:"label,attr,omitempty"`
	Accession string `xml:"accession,attr,omitempty"`
}

// AnalysisType contains one element named after the kind of analysis,
// for example SEQUENCE_ASSEMBLY or REFERENCE_ALIGNMENT.
type AnalysisType struct {
	Kinds []element `xml:",any"`
}

type element struct {
	XMLName xml.Name
}

// Sample is a SAMPLE element.
type Sample struct {
	XMLName xml.Name `xml:"SAMPLE"`

	Alias      string `xml:"alias,attr,omitempty"`
	CenterName string `xml:"center_name,attr,omitempty"`
	BrokerName string `xml:"broker_name,attr,omitempty"`
	Accession  string `xml:"accession,attr,omitempty"`

	Identifiers *Identifiers `xml:"IDENTIFIERS"`
	Title       string       `xml:"TITLE"`
	SampleName  SampleName   `xml:"SAMPLE_NAME"`
	Description string       `xml:"DESCRIPTION"`
	Attributes  []Attribute  `xml:"SAMPLE_ATTRIBUTES>SAMPLE_ATTRIBUTE"`
}

// SampleName identifies the organism of the sample.
type SampleName struct {
	DisplayName    string `xml:"display_name,attr,omitempty"`
	TaxonID        int    `xml:"TAXON_ID"`
	ScientificName string `xml:"SCIENTIFIC_NAME"`
	CommonName     string `xml:"COMMON_NAME"`
}

// Identifiers holds identifiers of a record in the archive and in
// other databases.
type Identifiers struct {
	PrimaryID    *Identifier   `xml:"PRIMARY_ID"`
	SecondaryIDs []Identifier  `xml:"SECONDARY_ID"`
	ExternalIDs  []QualifiedID `xml:"EXTERNAL_ID"`
	SubmitterIDs []QualifiedID `xml:"SUBMITTER_ID"`
}

// Identifier is a plain identifier.
type Identifier struct {
	Label string `xml:"label,attr,omitempty"`
	Value string `xml:",chardata"`
}

// QualifiedID is an identifier within a namespace.
type QualifiedID struct {
	Namespace string `xml:"namespace,attr"`
	Label     string `xml:"label,attr,omitempty"`
	Value     string `xml:",chardata"`
}

// Attribute is a tag-value pair.
type Attribute struct {
	Tag   string `xml:"TAG"`
	Value string `xml:"VALUE"`
	Units string `xml:"UNITS,omitempty"`
}

// Kind returns the name of the analysis type, or an empty string.
func (a AnalysisType) Kind() string {
	if len(a.Kinds) == 0 {
		return ""
	}
	return a.Kinds[0].XMLName.Local
}

// StudyAccession returns the accession of the referenced study. The
// accession attribute is preferred over the primary identifier.
func (r StudyRef) StudyAccession() string {
	if acc := strings.TrimSpace(r.Accession); acc != "" {
		return acc
	}
	if r.Identifiers != nil && r.Identifiers.PrimaryID != nil {
		return strings.TrimSpace(r.Identifiers.PrimaryID.Value)
	}
	return ""
}

// ExternalID returns the first identifier from the namespace,
// comparing namespaces case-insensitively.
func (i *Identifiers) ExternalID(namespace string) string {
	if i == nil {
		return ""
	}
	for _, v := range i.ExternalIDs {
		if strings.EqualFold(v.Namespace, namespace) {
			return strings.TrimSpace(v.Value)
		}
	}
	return ""
}

// TaxonID returns the taxonomy id of the sample organism.
func (s *Sample) TaxonID() int {
	return s.SampleName.TaxonID
}

// BioSample returns the BioSample accession of the sample if the XML
// has it.
func (s *Sample) BioSample() string {
	return s.Identifiers.ExternalID("BioSample")
}
