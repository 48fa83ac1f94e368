// Package config provides configuration management for SRAmeta.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Source: driver, dsn
//   - Taxonomy: url, api_key
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Import.StudyAccessions, Import.AnalysisAccessions (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use SRAMETA_ prefix with underscores for nesting:
//
//	SRAMETA_DATABASE_HOST=localhost
//	SRAMETA_SOURCE_DSN=/data/era.sqlite
//	SRAMETA_TAXONOMY_API_KEY=xxxx
//	SRAMETA_LOG_LEVEL=info
//	SRAMETA_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete SRAmeta configuration.
type Config struct {
	// Database contains connection settings of the PostgreSQL database
	// that receives imported metadata.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Source describes the SRA/ERA relational database that provides
	// raw XML records of studies, analyses and samples.
	Source SourceConfig `mapstructure:"source" yaml:"source"`

	// Taxonomy contains settings of the taxonomy lineage service.
	Taxonomy TaxonomyConfig `mapstructure:"taxonomy" yaml:"taxonomy"`

	// Import contains settings specific to the import command.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of analyses imported concurrently.
	// Default value is set accoring to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the maximal number of samples submitted to the
	// database in one find-or-save round trip.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// SourceConfig describes the relational SRA data source.
type SourceConfig struct {
	// Driver is the database/sql driver name.
	// Valid values: "pgx" (PostgreSQL), "sqlite" (local dump file).
	Driver string `mapstructure:"driver" yaml:"driver"`

	// DSN is the data source name passed to the driver. For "sqlite" it
	// is a path to the dump file, for "pgx" a PostgreSQL URL.
	DSN string `mapstructure:"dsn" yaml:"dsn"`
}

// TaxonomyConfig contains settings of the NCBI E-utilities service that
// provides taxonomy lineages.
type TaxonomyConfig struct {
	// URL is the efetch endpoint.
	URL string `mapstructure:"url" yaml:"url"`

	// APIKey is an optional NCBI API key that raises request limits.
	APIKey string `mapstructure:"api_key" yaml:"api_key"`
}

// ImportConfig contains settings specific to the import command.
type ImportConfig struct {
	// StudyAccessions are studies imported directly, without analyses.
	StudyAccessions []string `mapstructure:"study_accessions" yaml:"study_accessions"`

	// AnalysisAccessions are analyses imported together with their
	// studies, samples and taxonomies.
	AnalysisAccessions []string `mapstructure:"analysis_accessions" yaml:"analysis_accessions"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "srameta",
			SSLMode:   "disable",
			BatchSize: 1_000,
		},
		Source: SourceConfig{
			Driver: "sqlite",
			DSN:    "era.sqlite",
		},
		Taxonomy: TaxonomyConfig{
			URL: "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
