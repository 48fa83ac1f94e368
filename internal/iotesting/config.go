// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"strconv"

	"github.com/gnames/srameta/pkg/config"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// Tests never run against the production database.
	TestDatabaseName = "srameta_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// Defaults are overridden by SRAMETA_DATABASE_* environment variables,
// the database name is always TestDatabaseName.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ... use cfg for database operations
//	}
func GetTestConfig() *config.Config {
	cfg := config.New()

	var opts []config.Option
	if s := os.Getenv("SRAMETA_DATABASE_HOST"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if s := os.Getenv("SRAMETA_DATABASE_PORT"); s != "" {
		if i, err := strconv.Atoi(s); err == nil {
			opts = append(opts, config.OptDatabasePort(i))
		}
	}
	if s := os.Getenv("SRAMETA_DATABASE_USER"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := os.Getenv("SRAMETA_DATABASE_PASSWORD"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	opts = append(opts, config.OptDatabaseDatabase(TestDatabaseName))
	cfg.Update(opts)

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}
