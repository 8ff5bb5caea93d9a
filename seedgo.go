package seedgo

import (
	"context"
	"fmt"
	"math/rand"
	"slices"

	"github.com/hupe1980/seedgo/dataset"
	"github.com/hupe1980/seedgo/distance"
)

// DistanceFunc computes the distance between two vectors. It must be
// symmetric, deterministic for a fixed pair, return 0 for identical vectors
// and never return a negative or NaN value. A violating result aborts the
// selection run with *ErrInvalidDistance.
type DistanceFunc func(a, b []float32) (float32, error)

// FromMetric adapts a distance.Metric to a DistanceFunc.
func FromMetric(m distance.Metric) (DistanceFunc, error) {
	fn, err := distance.Provider(m)
	if err != nil {
		return nil, err
	}
	return func(a, b []float32) (float32, error) {
		return fn(a, b), nil
	}, nil
}

// RandomSource supplies the random draws used by the initializers.
// *rand.Rand and testutil.RNG both satisfy it.
//
// Implementations need not be thread-safe: a RandomSource is owned by a
// single initializer, and a single selection run is synchronous.
type RandomSource interface {
	// Intn returns a uniformly distributed int in [0, n).
	Intn(n int) int
	// Float64 returns a uniformly distributed float64 in [0.0, 1.0).
	Float64() float64
}

// globalSource falls back to the process-wide math/rand source, which is
// safe for concurrent use.
type globalSource struct{}

func (globalSource) Intn(n int) int   { return rand.Intn(n) } // nolint gosec
func (globalSource) Float64() float64 { return rand.Float64() }

// MeansInitializer chooses k initial cluster centers as vectors. This is the
// k-means entry point: centers are copies, detached from the dataset, so the
// consuming algorithm may move them freely.
type MeansInitializer interface {
	Means(ctx context.Context, data dataset.Dataset, k int) ([][]float32, error)
}

// MedoidsInitializer chooses k initial cluster centers as dataset indices.
// This is the k-medoids entry point: centers are actual dataset members.
type MedoidsInitializer interface {
	Medoids(ctx context.Context, data dataset.Dataset, k int) ([]int, error)
}

// validate checks the shared input contract of all initializers.
func validate(data dataset.Dataset, k int) error {
	n := data.Len()
	if n == 0 {
		return ErrEmptyDataset
	}
	if k <= 0 || k > n {
		return fmt.Errorf("%w: k=%d, dataset size=%d", ErrInvalidK, k, n)
	}
	return nil
}

// vectorsAt resolves indices to copied vectors, preserving order.
func vectorsAt(data dataset.Dataset, indices []int) [][]float32 {
	out := make([][]float32, len(indices))
	for i, idx := range indices {
		out[i] = slices.Clone(data.Vector(idx))
	}
	return out
}
