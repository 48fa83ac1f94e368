// Package iosource implements importer.Retriever on top of a relational
// SRA/ERA database. The database can be a PostgreSQL instance (driver
// "pgx") or a local SQLite dump (driver "sqlite").
package iosource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/gnames/srameta/pkg/config"
	"github.com/gnames/srameta/pkg/importer"
)

const (
	studyQuery = `SELECT study_xml FROM study WHERE study_id = ?`

	analysisQuery = `SELECT analysis_xml FROM analysis WHERE analysis_id = ?`

	sampleQuery = `
SELECT s.sample_id, s.biosample_id, s.sample_xml
  FROM sample s
    JOIN analysis_sample a ON a.sample_id = s.sample_id
  WHERE a.analysis_id = ?
  ORDER BY s.sample_id`
)

// Source reads raw XML records from the SRA database.
type Source struct {
	db     *sql.DB
	driver string
}

// Open connects to the SRA database described by the config.
func Open(ctx context.Context, cfg config.SourceConfig) (*Source, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, OpenError(cfg.Driver, cfg.DSN, err)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, OpenError(cfg.Driver, cfg.DSN, err)
	}

	return New(db, cfg.Driver), nil
}

// New creates a Source from an open database handle.
func New(db *sql.DB, driver string) *Source {
	return &Source{db: db, driver: driver}
}

// Close closes the database handle.
func (s *Source) Close() error {
	return s.db.Close()
}

// RetrieveXML returns XML of a study or an analysis.
func (s *Source) RetrieveXML(
	ctx context.Context,
	mode importer.QueryMode,
	accession string,
) (string, error) {
	var q string
	switch mode {
	case importer.StudyQuery:
		q = studyQuery
	case importer.AnalysisQuery:
		q = analysisQuery
	default:
		return "", QueryModeError(mode)
	}

	var res sql.NullString
	err := s.db.QueryRowContext(ctx, s.rebind(q), accession).Scan(&res)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !res.Valid) {
		return "", RecordNotFoundError(mode, accession)
	}
	if err != nil {
		return "", QueryError(mode, accession, err)
	}

	return res.String, nil
}

// RetrieveSampleXMLs returns samples of an analysis ordered by
// sample accession.
func (s *Source) RetrieveSampleXMLs(
	ctx context.Context,
	analysisAccession string,
) ([]importer.SampleXML, error) {
	mode := importer.SampleQuery
	rows, err := s.db.QueryContext(ctx, s.rebind(sampleQuery), analysisAccession)
	if err != nil {
		return nil, QueryError(mode, analysisAccession, err)
	}
	defer rows.Close()

	var res []importer.SampleXML
	for rows.Next() {
		var id string
		var bioSample, raw sql.NullString
		if err = rows.Scan(&id, &bioSample, &raw); err != nil {
			return nil, QueryError(mode, analysisAccession, err)
		}
		res = append(res, importer.SampleXML{
			SampleID:           id,
			BioSampleAccession: bioSample.String,
			XML:                raw.String,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, QueryError(mode, analysisAccession, err)
	}

	return res, nil
}

// rebind converts '?' placeholders to '$n' for PostgreSQL.
func (s *Source) rebind(q string) string {
	if s.driver != "pgx" {
		return q
	}

	var b strings.Builder
	var n int
	for _, r := range q {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
