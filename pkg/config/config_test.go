package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/srameta/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "srameta"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "srameta"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "srameta", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "srameta", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "srameta", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 1_000, cfg.Database.BatchSize)

		assert.Equal(t, "sqlite", cfg.Source.Driver)
		assert.Equal(t, "era.sqlite", cfg.Source.DSN)

		assert.Contains(t, cfg.Taxonomy.URL, "efetch.fcgi")
		assert.Empty(t, cfg.Taxonomy.APIKey)

		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
		assert.Empty(t, cfg.Import.StudyAccessions)
		assert.Empty(t, cfg.Import.AnalysisAccessions)
	})
}

func TestOptionDatabaseHost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid host",
			input:    "db.example.com",
			expected: "db.example.com",
		},
		{
			name:     "trims whitespace",
			input:    "  db.example.com  ",
			expected: "db.example.com",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "localhost",
		},
		{
			name:     "ignores whitespace-only",
			input:    "   ",
			expected: "localhost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabaseHost(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.Host)
		})
	}
}

func TestOptionDatabasePort(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"sets valid port", 6543, 6543},
		{"ignores zero", 0, 5432},
		{"ignores negative", -100, 5432},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabasePort(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Port)
		})
	}
}

func TestOptionDatabaseSSLMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets valid ssl mode - require", "require", "require"},
		{"sets valid ssl mode - verify-full", "verify-full", "verify-full"},
		{"normalizes to lowercase", "REQUIRE", "require"},
		{"ignores invalid value", "invalid", "disable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabaseSSLMode(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.SSLMode)
		})
	}
}

func TestOptionSourceDriver(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets pgx", "pgx", "pgx"},
		{"sets sqlite", "sqlite", "sqlite"},
		{"normalizes to lowercase", " PGX ", "pgx"},
		{"ignores oracle", "oracle", "sqlite"},
		{"ignores empty", "", "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptSourceDriver(tt.input)})
			assert.Equal(t, tt.expected, cfg.Source.Driver)
		})
	}
}

func TestOptionSourceDSN(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptSourceDSN("  /data/era.sqlite ")})
	assert.Equal(t, "/data/era.sqlite", cfg.Source.DSN)

	cfg.Update([]config.Option{config.OptSourceDSN("")})
	assert.Equal(t, "/data/era.sqlite", cfg.Source.DSN)
}

func TestOptionTaxonomy(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptTaxonomyURL("http://localhost:8080/efetch"),
		config.OptTaxonomyAPIKey(" secret "),
	})
	assert.Equal(t, "http://localhost:8080/efetch", cfg.Taxonomy.URL)
	assert.Equal(t, "secret", cfg.Taxonomy.APIKey)
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets valid log level - debug", "debug", "debug"},
		{"sets valid log level - error", "error", "error"},
		{"normalizes to lowercase", "DEBUG", "debug"},
		{"ignores invalid value", "trace", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogDestination(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets stdout", "stdout", "stdout"},
		{"sets stderr", "stderr", "stderr"},
		{"ignores unknown", "syslog", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogDestination(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Destination)
		})
	}
}

func TestOptionJobsNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"sets valid jobs number", 8, 8},
		{"ignores zero", 0, runtime.NumCPU()},
		{"ignores negative", -5, runtime.NumCPU()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptJobsNumber(tt.input)})
			assert.Equal(t, tt.expected, cfg.JobsNumber)
		})
	}
}

func TestOptionImportAccessions(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "sets accessions",
			input:    []string{"ERZ000001", "ERZ000002"},
			expected: []string{"ERZ000001", "ERZ000002"},
		},
		{
			name:     "trims and removes duplicates",
			input:    []string{" ERZ000001", "ERZ000001 ", "", "ERZ000003"},
			expected: []string{"ERZ000001", "ERZ000003"},
		},
		{
			name:     "ignores empty slice",
			input:    []string{},
			expected: nil,
		},
		{
			name:     "ignores blanks only",
			input:    []string{" ", ""},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{
				config.OptImportAnalysisAccessions(tt.input),
				config.OptImportStudyAccessions(tt.input),
			})
			assert.Equal(t, tt.expected, cfg.Import.AnalysisAccessions)
			assert.Equal(t, tt.expected, cfg.Import.StudyAccessions)
		})
	}
}

func TestMultipleOptions(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptDatabaseHost("custom.host.com"),
			config.OptDatabasePort(6543),
			config.OptDatabaseUser("myuser"),
			config.OptLogLevel("debug"),
			config.OptJobsNumber(16),
		}

		cfg.Update(opts)

		assert.Equal(t, "custom.host.com", cfg.Database.Host)
		assert.Equal(t, 6543, cfg.Database.Port)
		assert.Equal(t, "myuser", cfg.Database.User)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 16, cfg.JobsNumber)

		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptDatabaseHost("first.host.com"),
			config.OptDatabaseHost("second.host.com"),
		})
		assert.Equal(t, "second.host.com", cfg.Database.Host)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		original.Update([]config.Option{
			config.OptDatabaseHost("test.host.com"),
			config.OptDatabasePort(6543),
			config.OptDatabaseUser("testuser"),
			config.OptDatabasePassword("testpass"),
			config.OptDatabaseDatabase("testdb"),
			config.OptDatabaseSSLMode("require"),
			config.OptDatabaseBatchSize(500),
			config.OptSourceDriver("pgx"),
			config.OptSourceDSN("postgres://era@localhost/era"),
			config.OptTaxonomyURL("http://localhost/efetch"),
			config.OptTaxonomyAPIKey("key"),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
			config.OptJobsNumber(8),
		})

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.Database, newCfg.Database)
		assert.Equal(t, original.Source, newCfg.Source)
		assert.Equal(t, original.Taxonomy, newCfg.Taxonomy)
		assert.Equal(t, original.Log, newCfg.Log)
		assert.Equal(t, original.JobsNumber, newCfg.JobsNumber)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptImportStudyAccessions([]string{"ERP000001"}),
			config.OptImportAnalysisAccessions([]string{"ERZ000001"}),
		})

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())

		assert.Equal(t, "", newCfg.HomeDir)
		assert.Nil(t, newCfg.Import.StudyAccessions)
		assert.Nil(t, newCfg.Import.AnalysisAccessions)
	})
}
