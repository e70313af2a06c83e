package healthcheck

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/jonathan/api-catalog/internal/types"
)

// ResultCallback is called as each check finishes. done counts finished
// checks including this one.
type ResultCallback func(done, total int, r Result)

// RunOptions holds configuration for a health-check run
type RunOptions struct {
	Category string
	// Concurrency bounds in-flight checks; values below 1 mean one at a time
	Concurrency int
	// RatePerSecond paces check starts; zero disables pacing
	RatePerSecond float64
	OnResult      ResultCallback
}

// Run checks every working record (optionally within one category) that has
// a try-it URL. Records without one are listed as skipped. Results keep store
// order regardless of completion order.
func Run(ctx context.Context, checker *Checker, records []types.APIRecord, opts RunOptions) (*Report, error) {
	report := &Report{
		RunID:     uuid.New(),
		StartedAt: time.Now().UTC(),
		Category:  opts.Category,
		Results:   []Result{},
		Skipped:   []Skipped{},
	}

	var testable []int
	for i := range records {
		r := &records[i]
		if r.Status != types.StatusWorking {
			continue
		}
		if opts.Category != "" && r.Category != opts.Category {
			continue
		}
		report.Candidates++
		if !Testable(r) {
			report.Skipped = append(report.Skipped, Skipped{Name: r.Name, Category: r.Category})
			continue
		}
		testable = append(testable, i)
	}

	limit := rate.Inf
	if opts.RatePerSecond > 0 {
		limit = rate.Limit(opts.RatePerSecond)
	}
	limiter := rate.NewLimiter(limit, 1)

	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]Result, len(testable))
	var mu sync.Mutex
	done := 0

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for slot, idx := range testable {
		slot, idx := slot, idx
		g.Go(func() error {
			if err := limiter.Wait(gCtx); err != nil {
				return err
			}
			res := checker.Check(gCtx, idx, &records[idx])

			mu.Lock()
			results[slot] = res
			done++
			if opts.OnResult != nil {
				opts.OnResult(done, len(testable), res)
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Results = results
	report.FinishedAt = time.Now().UTC()
	return report, nil
}
