// SPDX-License-Identifier: MIT
// Package: lvalign/experiment
//
// options.go: functional options and deterministic defaults.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless inputs; Run itself
//     never panics.
//   • Later options override earlier ones.

package experiment

import (
	"log/slog"
	"math/rand"
	"unicode/utf8"
)

// Deterministic defaults.
const (
	defaultTrials   = 10
	defaultAlphabet = "AGTC"
	defaultSeed     = int64(1)
	defaultWorkers  = 1
)

// defaultLengths are the input sizes of the reference runtime experiment.
var defaultLengths = []int{500, 1000, 2000, 4000, 5000}

// config aggregates all harness knobs.
type config struct {
	lengths  []int
	trials   int
	alphabet []rune
	rng      *rand.Rand // nil means rand.New(rand.NewSource(seed))
	seed     int64
	workers  int
	logger   *slog.Logger
}

// Option customizes a Run.
type Option func(*config)

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		lengths:  append([]int(nil), defaultLengths...),
		trials:   defaultTrials,
		alphabet: []rune(defaultAlphabet),
		seed:     defaultSeed,
		workers:  defaultWorkers,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(cfg.seed))
	}

	return cfg
}

// WithLengths sets the sequence lengths to measure. Panics if empty or if any
// length is negative.
func WithLengths(lengths ...int) Option {
	if len(lengths) == 0 {
		panic("experiment: WithLengths()")
	}
	for _, n := range lengths {
		if n < 0 {
			panic("experiment: WithLengths(n<0)")
		}
	}
	cp := append([]int(nil), lengths...)

	return func(c *config) {
		c.lengths = cp
	}
}

// WithTrials sets the number of random pairs per length. Panics if n < 1.
func WithTrials(n int) Option {
	if n < 1 {
		panic("experiment: WithTrials(n<1)")
	}
	return func(c *config) {
		c.trials = n
	}
}

// WithAlphabet sets the symbols random sequences are drawn from. Panics on an
// empty or invalid UTF-8 alphabet.
func WithAlphabet(alphabet string) Option {
	if alphabet == "" || !utf8.ValidString(alphabet) {
		panic("experiment: WithAlphabet(invalid)")
	}
	syms := []rune(alphabet)

	return func(c *config) {
		c.alphabet = syms
	}
}

// WithSeed seeds the sequence generator. Ignored when WithRand is also given.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithRand supplies the generator directly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("experiment: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithWorkers sets how many trials may run at once. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("experiment: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger sets the progress logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("experiment: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
