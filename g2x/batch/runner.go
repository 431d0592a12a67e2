// Package batch resolves many gallery references against one shared index with
// bounded parallelism and summarizes the outcome.
package batch

import (
	"context"
	"runtime"
	"time"

	"github.com/ZanzyTHEbar/g2x/g2x/indexing"
	"github.com/ZanzyTHEbar/g2x/g2x/resolve"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"
)

// Result pairs a reference with its match.
type Result struct {
	Reference Reference
	Match     resolve.Match
}

// Runner fans references out over a worker pool. The index is only read, so
// workers share it without locking.
type Runner struct {
	resolver *resolve.Resolver
	index    *indexing.FileIndex
	strategy resolve.Strategy
	workers  int
	logger   zerolog.Logger
}

// NewRunner creates a runner. workers < 1 selects one worker per CPU.
func NewRunner(resolver *resolve.Resolver, index *indexing.FileIndex, strategy resolve.Strategy, workers int, logger zerolog.Logger) *Runner {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Runner{
		resolver: resolver,
		index:    index,
		strategy: strategy,
		workers:  workers,
		logger:   logger,
	}
}

// Run resolves refs and returns results in input order along with a report.
// Cancelling ctx stops workers from picking up further references; the
// results gathered so far are returned together with the context error.
func (r *Runner) Run(ctx context.Context, refs []Reference) ([]Result, *Report, error) {
	runID := uuid.New()
	start := time.Now()
	log := r.logger.With().Str("run_id", runID.String()).Logger()

	log.Info().
		Int("references", len(refs)).
		Int("entries", r.index.Len()).
		Int("workers", r.workers).
		Str("strategy", string(r.strategy.Type)).
		Msg("Batch resolution started")

	results := make([]Result, len(refs))
	done := make([]bool, len(refs))

	p := pool.New().WithMaxGoroutines(r.workers).WithContext(ctx)
	for i, ref := range refs {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Result{
				Reference: ref,
				Match:     r.resolver.Resolve(ref.Parsed, r.index, r.strategy),
			}
			done[i] = true
			return nil
		})
	}
	err := p.Wait()

	completed := make([]Result, 0, len(results))
	for i, res := range results {
		if done[i] {
			completed = append(completed, res)
		}
	}

	report := NewReport(runID, completed, time.Since(start))
	log.Info().
		Int("resolved", report.Resolved).
		Int("unresolved", len(report.Unresolved)).
		Dur("elapsed", report.Elapsed).
		Msg("Batch resolution finished")

	if err != nil {
		log.Warn().Err(err).Int("completed", len(completed)).Msg("Batch resolution interrupted")
		return completed, report, err
	}
	return results, report, nil
}
