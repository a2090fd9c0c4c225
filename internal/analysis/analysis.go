// Package analysis runs batches of meeting trials and reduces them to
// aggregate statistics: the empirical meeting probability and the
// distribution of meetings over the anti-diagonal points, with
// closed-form oracles to compare against.
package analysis

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"

	"github.com/nvandessel/gridmeet/internal/walk"
)

// Params configures one analysis run.
type Params struct {
	// N is the grid dimension. Must be >= 1.
	N int

	// Trials is the number of independent trials to run. Must be >= 1.
	Trials int

	// Workers is the number of goroutines running trials. 0 selects
	// runtime.NumCPU(); 1 runs everything on the calling goroutine.
	Workers int

	// Seed seeds the trial generators. 0 selects a random seed. With a
	// non-zero seed and Workers == 1 a run is exactly reproducible.
	Seed uint64
}

// AggregateResult accumulates outcomes over a batch of trials. It is
// internally consistent at every point between trials: MeetingCount never
// exceeds TrialCount and the PerPointCounts always sum to MeetingCount.
type AggregateResult struct {
	N              int   `json:"n"`
	TrialCount     int   `json:"trial_count"`
	MeetingCount   int   `json:"meeting_count"`
	PerPointCounts []int `json:"per_point_counts"`
}

// EmpiricalProbability returns MeetingCount/TrialCount, or 0 before any
// trial has completed.
func (r *AggregateResult) EmpiricalProbability() float64 {
	if r.TrialCount == 0 {
		return 0
	}
	return float64(r.MeetingCount) / float64(r.TrialCount)
}

// PointProbability returns the fraction of meetings that happened at
// anti-diagonal point i, or 0 when no meeting has been recorded.
func (r *AggregateResult) PointProbability(i int) float64 {
	if r.MeetingCount == 0 || i < 0 || i >= len(r.PerPointCounts) {
		return 0
	}
	return float64(r.PerPointCounts[i]) / float64(r.MeetingCount)
}

// add folds one trial outcome into the aggregate.
func (r *AggregateResult) add(tr walk.TrialResult) {
	r.TrialCount++
	if !tr.Met {
		return
	}
	r.MeetingCount++
	r.PerPointCounts[tr.MeetingIndex()]++
}

// merge folds a partial aggregate (from one worker) into the receiver.
func (r *AggregateResult) merge(other *AggregateResult) {
	r.TrialCount += other.TrialCount
	r.MeetingCount += other.MeetingCount
	for i, c := range other.PerPointCounts {
		r.PerPointCounts[i] += c
	}
}

func newAggregateResult(n int) *AggregateResult {
	return &AggregateResult{N: n, PerPointCounts: make([]int, n)}
}

// Run executes params.Trials independent trials on an n×n grid and returns
// the aggregate. Trials are split across workers, each with its own coin
// source, so no generator is shared between goroutines.
//
// Cancellation is honored between trials: on ctx cancellation Run returns
// the partial (still internally consistent) aggregate together with the
// context error.
func Run(ctx context.Context, params Params) (*AggregateResult, error) {
	if params.N < 1 {
		return nil, fmt.Errorf("run analysis: n must be >= 1, got %d: %w", params.N, walk.ErrInvalidParameter)
	}
	if params.Trials < 1 {
		return nil, fmt.Errorf("run analysis: trials must be >= 1, got %d: %w", params.Trials, walk.ErrInvalidParameter)
	}

	workers := params.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > params.Trials {
		workers = params.Trials
	}

	seed := params.Seed
	if seed == 0 {
		seed = randomSeed()
	}

	if workers == 1 {
		return runSerial(ctx, params.N, params.Trials, seed)
	}

	// Fan out: each worker runs its share of trials with a derived seed
	// and reports a partial aggregate.
	perWorker := params.Trials / workers
	remainder := params.Trials % workers

	var wg sync.WaitGroup
	partials := make(chan *AggregateResult, workers)

	for w := 0; w < workers; w++ {
		trials := perWorker
		if w == workers-1 {
			trials += remainder
		}

		wg.Add(1)
		go func(worker, trials int) {
			defer wg.Done()
			partial, _ := runSerial(ctx, params.N, trials, workerSeed(seed, worker))
			partials <- partial
		}(w, trials)
	}

	go func() {
		wg.Wait()
		close(partials)
	}()

	result := newAggregateResult(params.N)
	for partial := range partials {
		result.merge(partial)
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run analysis: interrupted after %d trials: %w", result.TrialCount, err)
	}
	return result, nil
}

// runSerial runs trials on the calling goroutine, checking for
// cancellation between trials.
func runSerial(ctx context.Context, n, trials int, seed uint64) (*AggregateResult, error) {
	src := walk.NewCoinSource(seed)
	result := newAggregateResult(n)

	for i := 0; i < trials; i++ {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("run analysis: interrupted after %d trials: %w", result.TrialCount, err)
		}
		tr, err := walk.RunTrial(n, src)
		if err != nil {
			return result, err
		}
		result.add(tr)
	}

	return result, nil
}

// randomSeed draws a non-zero seed from the process entropy pool.
func randomSeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}

// workerSeed derives an independent stream seed for a worker index.
// SplitMix64 finalizer over the base seed and index.
func workerSeed(base uint64, worker int) uint64 {
	z := base + uint64(worker+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
