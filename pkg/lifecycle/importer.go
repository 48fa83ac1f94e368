package lifecycle

import (
	"context"
	"time"
)

// ImportRunner imports batches of studies and analyses.
type ImportRunner interface {
	// Run imports studies first, then analyses. Failure of one accession
	// does not stop the run. An error is returned only if the run was
	// cancelled or every accession failed.
	Run(ctx context.Context, studies, analyses []string) (*Summary, error)
}

// Summary describes results of an import run.
type Summary struct {
	// RunID identifies the run in logs.
	RunID string

	// Studies is the number of imported studies.
	Studies int

	// Analyses is the number of imported analyses.
	Analyses int

	// Failed contains accessions that could not be imported.
	Failed []string

	Duration time.Duration
}
