package iosource

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/srameta/pkg/errcode"
	"github.com/gnames/srameta/pkg/importer"
)

// OpenError is returned when the SRA database cannot be opened.
func OpenError(driver, dsn string, err error) error {
	msg := `Cannot open SRA source database

<em>Driver:</em> %s
<em>DSN:</em> %s

<em>How to fix:</em>
  1. Check 'source' section of ~/.config/srameta/config.yaml
  2. For sqlite make sure the dump file exists`

	return &gn.Error{
		Code: errcode.SourceOpenError,
		Msg:  msg,
		Vars: []any{driver, dsn},
		Err:  fmt.Errorf("cannot open %s source: %w", driver, err),
	}
}

// QueryModeError is returned when a retrieval gets a mode it cannot
// serve.
func QueryModeError(mode importer.QueryMode) error {
	return &gn.Error{
		Code: errcode.SourceQueryModeError,
		Msg:  "Query mode %s cannot be used for a single record",
		Vars: []any{mode},
		Err:  fmt.Errorf("unsupported query mode %s", mode),
	}
}

// RecordNotFoundError is returned when the source has no record for
// the accession.
func RecordNotFoundError(mode importer.QueryMode, acc string) error {
	return &gn.Error{
		Code: errcode.SourceRecordNotFoundError,
		Msg:  "Record <em>%s</em> not found (%s)",
		Vars: []any{acc, mode},
		Err:  fmt.Errorf("record %s not found with %s", acc, mode),
	}
}

// QueryError is returned when the source query fails.
func QueryError(mode importer.QueryMode, acc string, err error) error {
	return &gn.Error{
		Code: errcode.SourceQueryError,
		Msg:  "Cannot retrieve <em>%s</em> (%s)",
		Vars: []any{acc, mode},
		Err:  fmt.Errorf("%s for %s failed: %w", mode, acc, err),
	}
}
