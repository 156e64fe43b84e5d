// SPDX-License-Identifier: MIT
// Package: lvalign/experiment
//
// experiment.go: timed alignment trials.

package experiment

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvalign/align"
	"golang.org/x/sync/errgroup"
)

// Row is the timing summary for one length.
type Row struct {
	Length int
	Trials int
	Avg    time.Duration
	Min    time.Duration
	Max    time.Duration
}

// Report is the outcome of one Run.
type Report struct {
	RunID string
	Rows  []Row
	// Slope is the fitted exponent k of time ≈ c·n^k, NaN when it cannot be fitted.
	Slope float64
}

// RandomSequence draws n symbols uniformly from alphabet.
// Panics if alphabet is empty and n > 0.
func RandomSequence(rng *rand.Rand, n int, alphabet []rune) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = alphabet[rng.Intn(len(alphabet))]
	}

	return string(out)
}

// trial is one prepared input pair.
type trial struct {
	s1, s2 string
}

// Run aligns trials random pairs for every configured length against c and
// summarizes the timings. Inputs for a length are drawn in trial order from the
// seeded generator before timing starts, so they do not depend on the worker
// count. Cancelling ctx stops scheduling new trials; Run then
// returns ctx's error.
func Run(ctx context.Context, c align.Coster, opts ...Option) (*Report, error) {
	cfg := newConfig(opts...)
	rep := &Report{RunID: uuid.NewString(), Slope: math.NaN()}

	cfg.logger.Info("experiment started",
		"run_id", rep.RunID, "lengths", cfg.lengths, "trials", cfg.trials, "workers", cfg.workers)

	for _, n := range cfg.lengths {
		inputs := make([]trial, cfg.trials)
		for k := range inputs {
			inputs[k] = trial{
				s1: RandomSequence(cfg.rng, n, cfg.alphabet),
				s2: RandomSequence(cfg.rng, n, cfg.alphabet),
			}
		}

		times, err := runTrials(ctx, c, inputs, cfg.workers)
		if err != nil {
			return nil, fmt.Errorf("experiment: length %d: %w", n, err)
		}

		row := summarize(n, times)
		rep.Rows = append(rep.Rows, row)
		cfg.logger.Info("length measured",
			"length", n, "avg", row.Avg, "min", row.Min, "max", row.Max)
	}

	if len(rep.Rows) >= 2 {
		lengths := make([]int, len(rep.Rows))
		avgs := make([]time.Duration, len(rep.Rows))
		for i, r := range rep.Rows {
			lengths[i], avgs[i] = r.Length, r.Avg
		}
		if slope, err := FitSlope(lengths, avgs); err == nil {
			rep.Slope = slope
		} else {
			cfg.logger.Warn("slope not fitted", "err", err)
		}
	}

	return rep, nil
}

// runTrials times every input, at most workers at a time.
func runTrials(ctx context.Context, c align.Coster, inputs []trial, workers int) ([]time.Duration, error) {
	times := make([]time.Duration, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k, in := range inputs {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			if _, err := align.Align(c, in.s1, in.s2, nil); err != nil {
				return err
			}
			times[k] = time.Since(start)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return times, nil
}

// summarize reduces per-trial times to a Row.
func summarize(n int, times []time.Duration) Row {
	row := Row{Length: n, Trials: len(times), Min: times[0], Max: times[0]}
	var total time.Duration
	for _, d := range times {
		total += d
		row.Min = min(row.Min, d)
		row.Max = max(row.Max, d)
	}
	row.Avg = total / time.Duration(len(times))

	return row
}
