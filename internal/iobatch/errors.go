package iobatch

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/srameta/pkg/errcode"
)

// NothingToDoError is returned when a run has no accessions.
func NothingToDoError() error {
	msg := `No accessions to import

<em>How to fix:</em>
  1. Use --study or --analysis flags
  2. Use --manifest with a YAML file of accessions`

	return &gn.Error{
		Code: errcode.ImportNothingToDoError,
		Msg:  msg,
		Err:  fmt.Errorf("no accessions to import"),
	}
}

// AllFailedError is returned when every accession of a run failed.
func AllFailedError(count int) error {
	msg := `Failed number of accessions: <em>%d</em>`
	vars := []any{count}

	plural := "s"
	if count == 1 {
		plural = ""
	}

	return &gn.Error{
		Code: errcode.ImportAllFailedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%d accession%s failed to import", count, plural),
	}
}

// CancelledError is returned when a run is interrupted.
func CancelledError(err error) error {
	msg := "Import was cancelled"

	return &gn.Error{
		Code: errcode.ImportCancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("import cancelled: %w", err),
	}
}
