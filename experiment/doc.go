// SPDX-License-Identifier: MIT

// Package experiment measures how alignment wall-clock time scales with input
// length.
//
// For every configured length it aligns a number of random sequence pairs,
// records per-trial durations, and fits the slope of log(time) against
// log(length). A slope near 2 confirms the quadratic cost of the DP.
//
// Usage:
//
//	rep, err := experiment.Run(ctx, model,
//		experiment.WithLengths(500, 1000, 2000),
//		experiment.WithTrials(5),
//		experiment.WithSeed(42),
//	)
//	rep.Render(os.Stdout)
//
// Sequences are drawn from one seeded stream before any trial runs, so the
// inputs are identical for a given seed whatever WithWorkers is set to. Workers > 1
// runs trials concurrently against the shared, read-only model; timings then
// include scheduler contention and are not comparable with sequential runs.
package experiment
