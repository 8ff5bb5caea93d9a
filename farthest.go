package seedgo

import (
	"context"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/seedgo/dataset"
)

// FarthestPoints selects initial centers by farthest-first traversal: each
// new seed is the point maximizing the minimum distance to all previously
// chosen seeds. The resulting seeds are well separated, which typically
// reduces clustering iterations compared to purely random seeding.
//
// Note: this is less random than other initializations, so repeated runs are
// more likely to land in the same local minima.
//
// Cost is O(k*n) distance computations for n points: the minimum distance
// from each point to the chosen set is maintained incrementally, one new
// distance per point per round.
type FarthestPoints struct {
	opts options
}

// NewFarthestPoints creates a farthest-first initializer.
func NewFarthestPoints(optFns ...Option) (*FarthestPoints, error) {
	opts, err := applyOptions(optFns...)
	if err != nil {
		return nil, err
	}
	return &FarthestPoints{opts: opts}, nil
}

// Means selects k initial centers and returns them as copied vectors.
func (fp *FarthestPoints) Means(ctx context.Context, data dataset.Dataset, k int) ([][]float32, error) {
	indices, err := fp.selectIndices(ctx, data, k)
	if err != nil {
		return nil, err
	}
	return vectorsAt(data, indices), nil
}

// Medoids selects k initial centers and returns them as dataset indices.
func (fp *FarthestPoints) Medoids(ctx context.Context, data dataset.Dataset, k int) ([]int, error) {
	return fp.selectIndices(ctx, data, k)
}

// selectIndices runs the greedy loop. Both output modes share it, so the
// selection sequence is identical for a fixed random draw regardless of the
// requested representation.
func (fp *FarthestPoints) selectIndices(ctx context.Context, data dataset.Dataset, k int) ([]int, error) {
	if err := validate(data, k); err != nil {
		return nil, err
	}
	n := data.Len()

	// mind[p] is the minimum distance from p to the seeds chosen so far.
	// Chosen points move into the chosen bitmap instead of carrying a
	// sentinel value, so exclusion is explicit.
	mind := make([]float32, n)
	for i := range mind {
		mind[i] = float32(math.Inf(1))
	}
	chosen := roaring.New()

	result := make([]int, 0, k)

	// Bootstrap with one uniformly random point.
	prev := fp.opts.rng.Intn(n)
	result = append(result, prev)
	prevVec := data.Vector(prev)

	start := 1
	if !fp.opts.keepFirst {
		start = 0
	}

	for i := start; i < k; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		best := -1
		maxdist := float32(math.Inf(-1))

		for p := 0; p < n; p++ {
			if chosen.Contains(uint32(p)) {
				continue // already a seed
			}
			d, err := fp.opts.distance(prevVec, data.Vector(p))
			if err != nil {
				return nil, &ErrInvalidDistance{A: prev, B: p, cause: err}
			}
			if d < 0 || math.IsNaN(float64(d)) {
				return nil, &ErrInvalidDistance{A: prev, B: p, Value: d}
			}

			val := min(mind[p], d)
			// Don't commit distances to the bootstrap point when it is about
			// to be dropped: they would constrain the cache with a seed that
			// never makes it into the result.
			if i > 0 {
				mind[p] = val
			}
			if val > maxdist {
				maxdist = val
				best = p
			}
		}

		if i == 0 {
			result = result[:0] // the bootstrap point was only scaffolding
		}
		chosen.Add(uint32(best))
		result = append(result, best)
		prev = best
		prevVec = data.Vector(best)
	}

	fp.opts.logger.WithK(k).WithCount(n).DebugContext(ctx, "farthest-first selection completed",
		"keepfirst", fp.opts.keepFirst,
	)

	return result, nil
}
