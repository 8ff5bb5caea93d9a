package seedgo

import (
	"context"

	"github.com/hupe1980/seedgo/dataset"
)

// Random selects k distinct points uniformly at random. This is the baseline
// seeding strategy; it needs no distance computations at all.
type Random struct {
	opts options
}

// NewRandom creates a uniform random initializer.
func NewRandom(optFns ...Option) (*Random, error) {
	opts, err := applyOptions(optFns...)
	if err != nil {
		return nil, err
	}
	return &Random{opts: opts}, nil
}

// Means selects k initial centers and returns them as copied vectors.
func (r *Random) Means(ctx context.Context, data dataset.Dataset, k int) ([][]float32, error) {
	indices, err := r.selectIndices(ctx, data, k)
	if err != nil {
		return nil, err
	}
	return vectorsAt(data, indices), nil
}

// Medoids selects k initial centers and returns them as dataset indices.
func (r *Random) Medoids(ctx context.Context, data dataset.Dataset, k int) ([]int, error) {
	return r.selectIndices(ctx, data, k)
}

func (r *Random) selectIndices(ctx context.Context, data dataset.Dataset, k int) ([]int, error) {
	if err := validate(data, k); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := data.Len()

	// Partial Fisher-Yates: only the first k positions are needed.
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + r.opts.rng.Intn(n-i)
		indices[i], indices[j] = indices[j], indices[i]
	}

	return indices[:k:k], nil
}
