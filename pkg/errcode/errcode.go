package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError

	// Source errors
	SourceOpenError
	SourceQueryModeError
	SourceRecordNotFoundError
	SourceQueryError

	// XML and conversion errors
	XMLParseError
	XMLRecordNotFoundError
	XMLAmbiguousRecordError
	ConvertMissingAccessionError

	// Repository errors
	RepoFindOrSaveError
	RepoSaveError

	// Taxonomy errors
	TaxonomyIDError
	TaxonomyFetchError
	TaxonomyDecodeError
	TaxonomyNotFoundError

	// Import errors
	ImportMissingStudyRefError
	ImportManifestError
	ImportNothingToDoError
	ImportAllFailedError
	ImportCancelledError
)
