// Package schema provides database schema models for SRAmeta.
// Models are managed by GORM AutoMigrate.
package schema

import (
	"time"
)

// Study is a research project that groups analyses and samples.
type Study struct {
	// ID is UUID v5 generated from the accession.
	ID string `gorm:"type:uuid;primaryKey"`

	// Accession is the archive identifier of the study (ERP..., SRP...).
	Accession string `gorm:"type:varchar(32);uniqueIndex;not null"`

	// Alias is a submitter-provided name of the study.
	Alias string `gorm:"type:varchar(255)"`

	// Center is the name of the submitting center.
	Center string `gorm:"type:varchar(255)"`

	Title string

	// Abstract is a short summary of the study.
	Abstract string

	Description string

	// StudyType is the 'existing_study_type' of the study descriptor,
	// for example 'Metagenomics'.
	StudyType string `gorm:"type:varchar(100)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Analysis is a processed result (assembly, annotation and so on)
// produced from samples of a study.
type Analysis struct {
	// ID is UUID v5 generated from the accession.
	ID string `gorm:"type:uuid;primaryKey"`

	// Accession is the archive identifier of the analysis (ERZ...).
	Accession string `gorm:"type:varchar(32);uniqueIndex;not null"`

	Alias string `gorm:"type:varchar(255)"`

	Center string `gorm:"type:varchar(255)"`

	Title string

	Description string

	// AnalysisType is the kind of the analysis, for example
	// 'SEQUENCE_ASSEMBLY'.
	AnalysisType string `gorm:"type:varchar(100)"`

	// AnalysisDate is the date reported by the archive, as is.
	AnalysisDate string `gorm:"type:varchar(50)"`

	// StudyID refers to the study the analysis belongs to.
	StudyID string `gorm:"type:uuid;index"`

	Study *Study `gorm:"foreignKey:StudyID"`

	Samples []*Sample `gorm:"many2many:analysis_samples"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Sample is a biological specimen used by analyses.
type Sample struct {
	// ID is UUID v5 generated from the accession.
	ID string `gorm:"type:uuid;primaryKey"`

	// Accession is the archive identifier of the sample (ERS...).
	Accession string `gorm:"type:varchar(32);uniqueIndex;not null"`

	// BioSampleAccession is a cross-reference to the BioSample
	// database (SAMEA...).
	BioSampleAccession string `gorm:"type:varchar(32);index"`

	Alias string `gorm:"type:varchar(255)"`

	Center string `gorm:"type:varchar(255)"`

	Title string

	Description string

	// ScientificName is the organism name as given by the submitter.
	ScientificName string `gorm:"type:varchar(255)"`

	// TaxonID is the NCBI taxonomy id given by the submitter.
	TaxonID int

	Taxonomies []*Taxonomy `gorm:"many2many:sample_taxonomies"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Taxonomy is a node of the NCBI taxonomy tree.
type Taxonomy struct {
	// ID is the NCBI taxonomy id.
	ID int `gorm:"primaryKey;autoIncrement:false"`

	// Name is the scientific name of the taxon.
	Name string `gorm:"type:varchar(255);not null"`

	// Canonical is a simple canonical form of the name, without
	// authorship and annotations. Empty if name could not be parsed.
	Canonical string `gorm:"type:varchar(255);index"`

	Rank string `gorm:"type:varchar(50)"`

	// ParentID is the NCBI id of the parent taxon, 0 for the root.
	ParentID int `gorm:"index"`

	// Division is the NCBI division, for example 'Bacteria'.
	Division string `gorm:"type:varchar(50)"`

	CreatedAt time.Time
}
