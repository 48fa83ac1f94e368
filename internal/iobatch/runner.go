// Package iobatch runs imports of many studies and analyses
// concurrently. This is an impure I/O package, it reports progress
// to the terminal.
package iobatch

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/srameta/pkg/config"
	"github.com/gnames/srameta/pkg/importer"
	"github.com/gnames/srameta/pkg/lifecycle"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type runner struct {
	jobs     int
	imp      importer.Importer
	progress bool
}

// Option configures the runner.
type Option func(*runner)

// OptProgress turns the progress bar on or off. It is on by default.
func OptProgress(b bool) Option {
	return func(r *runner) {
		r.progress = b
	}
}

// New creates an ImportRunner that uses cfg.JobsNumber workers.
func New(
	cfg *config.Config,
	imp importer.Importer,
	opts ...Option,
) lifecycle.ImportRunner {
	res := &runner{
		jobs:     cfg.JobsNumber,
		imp:      imp,
		progress: true,
	}
	for _, opt := range opts {
		opt(res)
	}
	if res.jobs < 1 {
		res.jobs = 1
	}
	return res
}

type job struct {
	name string
	accs []string
	fn   func(context.Context, string) error
}

func (r *runner) Run(
	ctx context.Context,
	studies, analyses []string,
) (*lifecycle.Summary, error) {
	total := len(studies) + len(analyses)
	if total == 0 {
		return nil, NothingToDoError()
	}

	startTime := time.Now()
	res := &lifecycle.Summary{RunID: uuid.NewString()}
	log := slog.With("run-id", res.RunID)
	log.Info("Starting import",
		"studies", len(studies),
		"analyses", len(analyses),
		"jobs", r.jobs,
	)

	jobs := []job{
		{
			name: "studies",
			accs: studies,
			fn: func(ctx context.Context, acc string) error {
				_, err := r.imp.ImportStudy(ctx, acc)
				return err
			},
		},
		{
			name: "analyses",
			accs: analyses,
			fn: func(ctx context.Context, acc string) error {
				_, err := r.imp.ImportAnalysis(ctx, acc)
				return err
			},
		},
	}

	counts := make([]int, len(jobs))
	var failed []string
	for i, v := range jobs {
		n, fails, err := r.runJob(ctx, log, v)
		counts[i] = n
		failed = append(failed, fails...)
		if err != nil {
			return nil, CancelledError(err)
		}
	}

	res.Studies, res.Analyses = counts[0], counts[1]
	res.Failed = slices.Sorted(slices.Values(failed))
	res.Duration = time.Since(startTime)

	log.Info("Import complete",
		"studies", res.Studies,
		"analyses", res.Analyses,
		"failed", len(res.Failed),
		"duration", gnfmt.TimeString(res.Duration.Seconds()),
	)
	gn.Info(`Import complete
Studies: %s, analyses: %s, failed: %s.
		Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(res.Studies)),
		humanize.Comma(int64(res.Analyses)),
		humanize.Comma(int64(len(res.Failed))),
		gnfmt.TimeString(res.Duration.Seconds()),
	)

	if len(res.Failed) == total {
		return res, AllFailedError(total)
	}
	if len(res.Failed) > 0 {
		log.Warn("Some accessions failed to import",
			"failed", len(res.Failed),
			"total", total,
		)
	}
	return res, nil
}

// runJob imports accessions of one kind and returns the number of
// successful imports and the failed accessions.
func (r *runner) runJob(
	ctx context.Context,
	log *slog.Logger,
	j job,
) (int, []string, error) {
	if len(j.accs) == 0 {
		return 0, nil, nil
	}

	var bar *pb.ProgressBar
	if r.progress {
		bar = pb.Full.Start(len(j.accs))
		bar.Set("prefix", "Importing "+j.name+": ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	var mu sync.Mutex
	var count int
	var failed []string

	g := &errgroup.Group{}
	g.SetLimit(r.jobs)
	for _, acc := range j.accs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if bar != nil {
				defer bar.Increment()
			}

			if err := j.fn(ctx, acc); err != nil {
				log.Error("Cannot import accession",
					"kind", j.name,
					"accession", acc,
					"error", err,
				)
				mu.Lock()
				failed = append(failed, acc)
				mu.Unlock()
				return nil
			}

			mu.Lock()
			count++
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return count, failed, err
	}
	return count, failed, ctx.Err()
}
