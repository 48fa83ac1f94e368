/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/srameta/internal/iofs"
	"github.com/gnames/srameta/internal/iologger"
	app "github.com/gnames/srameta/pkg"
	"github.com/gnames/srameta/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir  string
	cfg      *config.Config
	closeLog = func() error { return nil }
)

// getRootCmd returns the root command with all subcommands.
// Extracted as a function to facilitate testing.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "srameta",
		Short:   "SRAmeta imports SRA metadata into PostgreSQL",
		Long: `SRAmeta imports metadata of studies, analyses and samples from a
Sequence Read Archive database dump into PostgreSQL.

Features:
  - Schema Management: create and migrate the database schema
  - Metadata Import: studies, analyses, samples and NCBI taxonomy
    lineages, shared studies are imported once

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (SRAMETA_*)
  3. Config file (~/.config/srameta/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (database.host → SRAMETA_DATABASE_HOST).

  Examples:
    SRAMETA_DATABASE_HOST           PostgreSQL host
    SRAMETA_DATABASE_PASSWORD       PostgreSQL password
    SRAMETA_SOURCE_DSN              SRA database dump
    SRAMETA_TAXONOMY_API_KEY        NCBI API key
    SRAMETA_LOG_LEVEL               Log level (debug/info/warn/error)`,
		PersistentPreRunE: bootstrap,
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return closeLog()
		},
		RunE:          runRoot,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "srameta version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for srameta")

	rootCmd.AddCommand(
		getCreateCmd(),
		getMigrateCmd(),
		getImportCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if closeLog, err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings
	if err = closeLog(); err != nil {
		return err
	}
	if closeLog, err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))

	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)
	return cmd.Help()
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions().
	v.SetEnvPrefix("SRAMETA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.host", "SRAMETA_DATABASE_HOST")
	v.BindEnv("database.port", "SRAMETA_DATABASE_PORT")
	v.BindEnv("database.user", "SRAMETA_DATABASE_USER")
	v.BindEnv("database.password", "SRAMETA_DATABASE_PASSWORD")
	v.BindEnv("database.database", "SRAMETA_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "SRAMETA_DATABASE_SSL_MODE")
	v.BindEnv("database.batch_size", "SRAMETA_DATABASE_BATCH_SIZE")

	// Source configuration
	v.BindEnv("source.driver", "SRAMETA_SOURCE_DRIVER")
	v.BindEnv("source.dsn", "SRAMETA_SOURCE_DSN")

	// Taxonomy configuration
	v.BindEnv("taxonomy.url", "SRAMETA_TAXONOMY_URL")
	v.BindEnv("taxonomy.api_key", "SRAMETA_TAXONOMY_API_KEY")

	// Log configuration
	v.BindEnv("log.level", "SRAMETA_LOG_LEVEL")
	v.BindEnv("log.format", "SRAMETA_LOG_FORMAT")
	v.BindEnv("log.destination", "SRAMETA_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "SRAMETA_JOBS_NUMBER")

	v.AutomaticEnv()
}
