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
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gnames/gn"
	"github.com/gnames/srameta/internal/iobatch"
	"github.com/gnames/srameta/internal/iodb"
	"github.com/gnames/srameta/internal/iofs"
	"github.com/gnames/srameta/internal/iorepo"
	"github.com/gnames/srameta/internal/ioschema"
	"github.com/gnames/srameta/internal/iosource"
	"github.com/gnames/srameta/internal/iosra"
	"github.com/gnames/srameta/internal/iotaxonomy"
	"github.com/gnames/srameta/pkg/config"
	"github.com/gnames/srameta/pkg/manifest"
	"github.com/gnames/srameta/pkg/parserpool"
	"github.com/spf13/cobra"
)

// getImportCmd returns the import command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getImportCmd() *cobra.Command {
	var flags importFlags

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import SRA studies and analyses",
		Long: `Import studies and analyses from the SRA database source.

For every analysis this command:
  1. Fetches the analysis record
  2. Imports its samples with NCBI taxonomy lineages
  3. Imports the study of the analysis, once per study
  4. Saves the analysis with links to its study and samples

Studies given with --study are imported without analyses.
Studies already in the database are reused, not duplicated.

A manifest is a YAML file with accession lists:

  studies:
    - ERP001736
  analyses:
    - ERZ000001
    - ERZ000002

Examples:
  srameta import -a ERZ000001 -a ERZ000002
  srameta import --study ERP001736
  srameta import -m manifest.yaml -j 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args, flags)
		},
	}

	fs := importCmd.Flags()
	fs.StringSliceVarP(&flags.studies, "study", "s", nil,
		"study accession to import (repeatable)")
	fs.StringSliceVarP(&flags.analyses, "analysis", "a", nil,
		"analysis accession to import (repeatable)")
	fs.StringVarP(&flags.manifest, "manifest", "m", "",
		"YAML file with studies and analyses to import")
	fs.IntVarP(&flags.jobs, "jobs", "j", 0,
		"number of analyses imported concurrently")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false,
		"do not show progress bar")

	return importCmd
}

func runImport(
	_ *cobra.Command,
	_ []string,
	flags importFlags,
) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	opts, err := flags.options(cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	cfg.Update(opts)

	op := iodb.NewPgxOperator()
	if err = op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gormDB, err := ioschema.NewManager(op).GORM()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	src, err := iosource.Open(ctx, cfg.Source)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer src.Close()

	pool := parserpool.NewPool(cfg.JobsNumber)
	defer pool.Close()

	repos := iorepo.New(gormDB, cfg.Database.BatchSize)
	taxa := iotaxonomy.New(
		cfg.Taxonomy,
		repos.Taxonomies,
		pool,
		iotaxonomy.OptCacheDir(
			filepath.Join(config.CacheDir(cfg.HomeDir), "taxonomy"),
		),
	)

	imp := iosra.New(iosra.Collaborators{
		Retriever:  src,
		Studies:    repos.Studies,
		Analyses:   repos.Analyses,
		Samples:    repos.Samples,
		Taxonomies: taxa,
	})

	runner := iobatch.New(cfg, imp, iobatch.OptProgress(!flags.quiet))
	_, err = runner.Run(ctx, cfg.Import.StudyAccessions, cfg.Import.AnalysisAccessions)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	return nil
}

// options converts import flags to config options. Accessions from
// the manifest are appended to the ones given by flags.
func (f importFlags) options(c *config.Config) ([]config.Option, error) {
	res := []config.Option{
		config.OptImportStudyAccessions(f.studies),
		config.OptImportAnalysisAccessions(f.analyses),
	}
	if f.jobs != 0 {
		res = append(res, config.OptJobsNumber(f.jobs))
	}
	if f.manifest == "" {
		return res, nil
	}

	data, err := iofs.ReadFile(f.manifest)
	if err != nil {
		return nil, err
	}
	m, err := manifest.Parse(data)
	if err != nil {
		return nil, err
	}
	if m.Empty() {
		gn.Warn("Manifest <em>%s</em> has no accessions", f.manifest)
		return res, nil
	}

	tmp := *c
	tmp.Update(res)
	return append(res, m.Options(&tmp)...), nil
}
