package experiment_test

import (
	"bytes"
	"context"
	"math"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/lvalign/costmodel"
	"github.com/katalvlaran/lvalign/experiment"
	"github.com/katalvlaran/lvalign/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandomSequence checks length, alphabet and seed reproducibility.
func TestRandomSequence(t *testing.T) {
	alphabet := []rune("AGTC")
	a := experiment.RandomSequence(rand.New(rand.NewSource(9)), 64, alphabet)
	b := experiment.RandomSequence(rand.New(rand.NewSource(9)), 64, alphabet)

	assert.Equal(t, a, b, "same seed must give the same sequence")
	assert.Len(t, a, 64)
	for _, r := range a {
		assert.Contains(t, "AGTC", string(r))
	}
	assert.Empty(t, experiment.RandomSequence(rand.New(rand.NewSource(1)), 0, alphabet))
}

// TestRun_Rows runs a tiny experiment and validates the report shape.
func TestRun_Rows(t *testing.T) {
	m := costmodel.Uniform("AGTC", 0, 1, 2)

	rep, err := experiment.Run(context.Background(), m,
		experiment.WithLengths(8, 16, 32),
		experiment.WithTrials(3),
		experiment.WithSeed(5),
		experiment.WithWorkers(2),
		experiment.WithLogger(testutil.NewTestLogger(t)),
	)
	require.NoError(t, err)

	assert.NotEmpty(t, rep.RunID)
	require.Len(t, rep.Rows, 3)
	for i, n := range []int{8, 16, 32} {
		row := rep.Rows[i]
		assert.Equal(t, n, row.Length)
		assert.Equal(t, 3, row.Trials)
		assert.LessOrEqual(t, row.Min, row.Avg)
		assert.LessOrEqual(t, row.Avg, row.Max)
	}
}

// countingCoster tallies every cost lookup across concurrent trials.
type countingCoster struct {
	inner *costmodel.Model
	mu    sync.Mutex
	calls map[[2]rune]int
}

func (c *countingCoster) Cost(a, b rune) (int, error) {
	c.mu.Lock()
	c.calls[[2]rune{a, b}]++
	c.mu.Unlock()

	return c.inner.Cost(a, b)
}

// TestRun_InputsIndependentOfWorkers draws the same inputs for a seed whatever
// the worker count.
func TestRun_InputsIndependentOfWorkers(t *testing.T) {
	lookups := func(workers int) map[[2]rune]int {
		c := &countingCoster{inner: costmodel.Uniform("AGTC", 0, 1, 1), calls: map[[2]rune]int{}}
		_, err := experiment.Run(context.Background(), c,
			experiment.WithLengths(6, 12),
			experiment.WithTrials(5),
			experiment.WithSeed(42),
			experiment.WithWorkers(workers),
		)
		require.NoError(t, err)

		return c.calls
	}

	sequential := lookups(1)
	assert.NotEmpty(t, sequential)
	assert.Equal(t, sequential, lookups(4))
}

// TestRun_SingleLength leaves the slope unfitted.
func TestRun_SingleLength(t *testing.T) {
	rep, err := experiment.Run(context.Background(), costmodel.Uniform("AGTC", 0, 1, 1),
		experiment.WithLengths(4), experiment.WithTrials(1))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(rep.Slope))
}

// TestRun_UnknownSymbol surfaces the model error from inside a trial.
func TestRun_UnknownSymbol(t *testing.T) {
	_, err := experiment.Run(context.Background(), costmodel.Uniform("AG", 0, 1, 1),
		experiment.WithLengths(4), experiment.WithTrials(2), experiment.WithAlphabet("X"))
	assert.ErrorIs(t, err, costmodel.ErrUnknownSymbol)
}

// TestRun_Cancelled stops before measuring anything.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := experiment.Run(ctx, costmodel.Uniform("AGTC", 0, 1, 1),
		experiment.WithLengths(4), experiment.WithTrials(2))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, rep)
}

// TestFitSlope recovers exponents from exact power laws.
func TestFitSlope(t *testing.T) {
	lengths := []int{100, 200, 400, 800}
	quad := make([]time.Duration, len(lengths))
	lin := make([]time.Duration, len(lengths))
	for i, n := range lengths {
		quad[i] = time.Duration(n*n) * time.Microsecond
		lin[i] = time.Duration(n) * time.Millisecond
	}

	k, err := experiment.FitSlope(lengths, quad)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, k, 1e-9)

	k, err = experiment.FitSlope(lengths, lin)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, k, 1e-9)
}

// TestFitSlope_TooFewPoints rejects degenerate inputs.
func TestFitSlope_TooFewPoints(t *testing.T) {
	_, err := experiment.FitSlope([]int{10}, []time.Duration{time.Second})
	assert.ErrorIs(t, err, experiment.ErrTooFewPoints)

	_, err = experiment.FitSlope([]int{10, 20}, []time.Duration{0, time.Second})
	assert.ErrorIs(t, err, experiment.ErrTooFewPoints, "zero times are skipped")

	_, err = experiment.FitSlope([]int{10, 10}, []time.Duration{time.Second, 2 * time.Second})
	assert.ErrorIs(t, err, experiment.ErrTooFewPoints, "one distinct length")
}

// TestReport_Render checks the table carries rows and the slope caption.
func TestReport_Render(t *testing.T) {
	rep := &experiment.Report{
		RunID: "test-run",
		Rows: []experiment.Row{
			{Length: 500, Trials: 10, Avg: 250 * time.Millisecond, Min: 200 * time.Millisecond, Max: 300 * time.Millisecond},
			{Length: 1000, Trials: 10, Avg: time.Second, Min: 900 * time.Millisecond, Max: 1100 * time.Millisecond},
		},
		Slope: 2.0,
	}

	var buf bytes.Buffer
	rep.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, "run test-run")
	assert.Contains(t, out, "0.2500")
	assert.Contains(t, out, "1.1000")
	assert.Contains(t, out, "fitted slope: O(n^2.00)")

	buf.Reset()
	rep.Slope = math.NaN()
	rep.Render(&buf)
	assert.Contains(t, buf.String(), "fitted slope: n/a")
}

// TestOptions_Panics enforces option validation.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { experiment.WithLengths() })
	assert.Panics(t, func() { experiment.WithLengths(10, -1) })
	assert.Panics(t, func() { experiment.WithTrials(0) })
	assert.Panics(t, func() { experiment.WithAlphabet("") })
	assert.Panics(t, func() { experiment.WithRand(nil) })
	assert.Panics(t, func() { experiment.WithWorkers(0) })
	assert.Panics(t, func() { experiment.WithLogger(nil) })
}
