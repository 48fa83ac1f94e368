package config

import (
	"slices"
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of samples saved per round trip.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptSourceDriver sets the database/sql driver of the SRA source.
// Valid values: "pgx", "sqlite".
func OptSourceDriver(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Source.Driver", s) {
			c.Source.Driver = s
		}
	}
}

// OptSourceDSN sets the data source name of the SRA source.
func OptSourceDSN(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Source DSN", s) {
			c.Source.DSN = s
		}
	}
}

// OptTaxonomyURL sets the efetch endpoint used for taxonomy lineages.
func OptTaxonomyURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Taxonomy URL", s) {
			c.Taxonomy.URL = s
		}
	}
}

// OptTaxonomyAPIKey sets the NCBI API key.
func OptTaxonomyAPIKey(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Taxonomy API Key", s) {
			c.Taxonomy.APIKey = s
		}
	}
}

// OptImportStudyAccessions sets studies to import directly.
// Accessions are trimmed, empty and duplicate entries are dropped.
// Runtime-only field - not in ToOptions().
func OptImportStudyAccessions(ss []string) Option {
	ss = cleanAccessions(ss)
	return func(c *Config) {
		if len(ss) > 0 {
			c.Import.StudyAccessions = ss
		}
	}
}

// OptImportAnalysisAccessions sets analyses to import.
// Accessions are trimmed, empty and duplicate entries are dropped.
// Runtime-only field - not in ToOptions().
func OptImportAnalysisAccessions(ss []string) Option {
	ss = cleanAccessions(ss)
	return func(c *Config) {
		if len(ss) > 0 {
			c.Import.AnalysisAccessions = ss
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for parallel operations.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

func cleanAccessions(ss []string) []string {
	var res []string
	for _, v := range ss {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(res, v) {
			continue
		}
		res = append(res, v)
	}
	return res
}
