package seedgo

import (
	"math/rand"

	"github.com/hupe1980/seedgo/distance"
)

type options struct {
	distance  DistanceFunc
	rng       RandomSource
	keepFirst bool
	logger    *Logger

	// err records a failure inside an option (e.g. an unknown metric) and is
	// surfaced by the constructor.
	err error
}

func defaultOptions() options {
	fn, _ := FromMetric(distance.MetricSquaredL2)
	return options{
		distance: fn,
		rng:      globalSource{},
		logger:   NoopLogger(),
	}
}

func applyOptions(optFns ...Option) (options, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	return o, o.err
}

// Option configures an initializer constructor.
type Option func(*options)

// WithDistanceFunc configures the distance function used to compare points.
//
// If nil is passed, the default (squared L2) is kept.
func WithDistanceFunc(fn DistanceFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.distance = fn
		}
	}
}

// WithMetric configures the distance function from a distance.Metric.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		fn, err := FromMetric(m)
		if err != nil {
			o.err = err
			return
		}
		o.distance = fn
	}
}

// WithRandomSource configures the random source used for the bootstrap draw
// and any weighted sampling.
//
// If nil is passed, the process-wide math/rand source is kept.
func WithRandomSource(rng RandomSource) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithSeed configures a deterministic random source with the given seed.
// Runs of the same initializer on the same dataset then reproduce the same
// seed set.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed)) // nolint gosec
	}
}

// WithKeepFirst controls whether the randomly drawn bootstrap point is kept
// as one of the k returned seeds (farthest-first only).
//
// By default the bootstrap point is discarded: it only scaffolds the first
// distance scan, and every returned seed is a farthest pick.
func WithKeepFirst(keep bool) Option {
	return func(o *options) {
		o.keepFirst = keep
	}
}

// WithLogger configures a logger. Selection runs log at Debug level.
//
// If nil is passed, logging stays disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
