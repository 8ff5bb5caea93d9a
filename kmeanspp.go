package seedgo

import (
	"context"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/seedgo/dataset"
)

// KMeansPlusPlus selects initial centers by weighted sampling: the first seed
// is drawn uniformly, each following seed with probability proportional to
// its distance to the nearest already-chosen seed. A middle ground between
// uniform random seeding and the fully greedy farthest-first traversal.
//
// The weights are the raw values returned by the distance function. Use a
// squared metric (the default) for classic D² sampling.
//
// Like FarthestPoints, the per-point minimum distance is maintained
// incrementally, so a run costs O(k*n) distance computations.
type KMeansPlusPlus struct {
	opts options
}

// NewKMeansPlusPlus creates a k-means++ style initializer.
func NewKMeansPlusPlus(optFns ...Option) (*KMeansPlusPlus, error) {
	opts, err := applyOptions(optFns...)
	if err != nil {
		return nil, err
	}
	return &KMeansPlusPlus{opts: opts}, nil
}

// Means selects k initial centers and returns them as copied vectors.
func (kpp *KMeansPlusPlus) Means(ctx context.Context, data dataset.Dataset, k int) ([][]float32, error) {
	indices, err := kpp.selectIndices(ctx, data, k)
	if err != nil {
		return nil, err
	}
	return vectorsAt(data, indices), nil
}

// Medoids selects k initial centers and returns them as dataset indices.
func (kpp *KMeansPlusPlus) Medoids(ctx context.Context, data dataset.Dataset, k int) ([]int, error) {
	return kpp.selectIndices(ctx, data, k)
}

func (kpp *KMeansPlusPlus) selectIndices(ctx context.Context, data dataset.Dataset, k int) ([]int, error) {
	if err := validate(data, k); err != nil {
		return nil, err
	}
	n := data.Len()

	first := kpp.opts.rng.Intn(n)
	result := make([]int, 0, k)
	result = append(result, first)

	chosen := roaring.New()
	chosen.Add(uint32(first))

	// weights[p] is the minimum distance from p to the chosen seeds, updated
	// incrementally against the most recent seed only.
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = math.Inf(1)
	}

	prev := first
	prevVec := data.Vector(first)

	for len(result) < k {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var total float64
		for p := 0; p < n; p++ {
			if chosen.Contains(uint32(p)) {
				continue
			}
			d, err := kpp.opts.distance(prevVec, data.Vector(p))
			if err != nil {
				return nil, &ErrInvalidDistance{A: prev, B: p, cause: err}
			}
			if d < 0 || math.IsNaN(float64(d)) {
				return nil, &ErrInvalidDistance{A: prev, B: p, Value: d}
			}
			weights[p] = math.Min(weights[p], float64(d))
			total += weights[p]
		}

		var next int
		if total > 0 {
			r := kpp.opts.rng.Float64() * total
			next = -1
			for p := 0; p < n; p++ {
				// Zero-weight points coincide with a seed; they must never
				// absorb the draw, even when r starts at exactly 0.
				if chosen.Contains(uint32(p)) || weights[p] == 0 {
					continue
				}
				r -= weights[p]
				if r <= 0 {
					next = p
					break
				}
			}
			if next < 0 {
				// Float rounding exhausted r before the last candidate;
				// take the last eligible point.
				for p := n - 1; p >= 0; p-- {
					if !chosen.Contains(uint32(p)) && weights[p] > 0 {
						next = p
						break
					}
				}
			}
		} else {
			// All remaining points coincide with a seed. Weighted sampling
			// degenerates, so fall back to a uniform draw among them.
			remaining := int(uint64(n) - chosen.GetCardinality())
			skip := kpp.opts.rng.Intn(remaining)
			next = -1
			for p := 0; p < n; p++ {
				if chosen.Contains(uint32(p)) {
					continue
				}
				if skip == 0 {
					next = p
					break
				}
				skip--
			}
		}

		chosen.Add(uint32(next))
		result = append(result, next)
		prev = next
		prevVec = data.Vector(next)
	}

	kpp.opts.logger.WithK(k).WithCount(n).DebugContext(ctx, "kmeans++ selection completed")

	return result, nil
}
