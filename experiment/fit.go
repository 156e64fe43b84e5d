// SPDX-License-Identifier: MIT
// Package: lvalign/experiment
//
// fit.go: log-log least-squares slope.

package experiment

import (
	"errors"
	"math"
	"time"
)

// ErrTooFewPoints indicates fewer than two usable (length > 0, time > 0) points,
// or points that all share one length.
var ErrTooFewPoints = errors.New("experiment: too few points to fit a slope")

// FitSlope returns the least-squares slope of log(time) against log(length).
// Points with a non-positive length or time are skipped. lengths and times are
// read pairwise up to the shorter of the two.
//
// Complexity: O(n).
func FitSlope(lengths []int, times []time.Duration) (float64, error) {
	n := min(len(lengths), len(times))

	var xs, ys []float64
	for i := 0; i < n; i++ {
		if lengths[i] <= 0 || times[i] <= 0 {
			continue
		}
		xs = append(xs, math.Log(float64(lengths[i])))
		ys = append(ys, math.Log(times[i].Seconds()))
	}
	if len(xs) < 2 {
		return 0, ErrTooFewPoints
	}

	var mx, my float64
	for i := range xs {
		mx += xs[i]
		my += ys[i]
	}
	mx /= float64(len(xs))
	my /= float64(len(ys))

	var sxy, sxx float64
	for i := range xs {
		dx := xs[i] - mx
		sxy += dx * (ys[i] - my)
		sxx += dx * dx
	}
	if sxx == 0 {
		return 0, ErrTooFewPoints
	}

	return sxy / sxx, nil
}
