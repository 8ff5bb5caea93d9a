package seedgo

import (
	"context"
	"errors"
	"math"
	"runtime"

	"github.com/hupe1980/seedgo/dataset"
	"golang.org/x/sync/errgroup"
)

// Restart runs an initializer several times and keeps the seed set with the
// best spread (largest minimum pairwise distance). Trials run in parallel:
// every trial gets its own initializer from New, and with it its own
// min-distance cache and random stream, so runs never share mutable state.
//
// Restart itself implements MeansInitializer and MedoidsInitializer; the
// k-means representation is projected from the winning index sequence.
type Restart struct {
	// Trials is the number of independent selection runs. Values below 1 are
	// treated as 1.
	Trials int

	// Parallelism bounds the number of concurrent runs. Defaults to
	// GOMAXPROCS.
	Parallelism int

	// Distance scores candidate seed sets. Defaults to squared L2. It should
	// match the metric the trials select with, but only the ordering of
	// scores matters.
	Distance DistanceFunc

	// New returns the initializer for one trial. Required.
	New func(trial int) (MedoidsInitializer, error)
}

// Means runs the trials and returns the winning seeds as copied vectors.
func (r *Restart) Means(ctx context.Context, data dataset.Dataset, k int) ([][]float32, error) {
	indices, err := r.Medoids(ctx, data, k)
	if err != nil {
		return nil, err
	}
	return vectorsAt(data, indices), nil
}

// Medoids runs the trials and returns the winning seeds as dataset indices.
func (r *Restart) Medoids(ctx context.Context, data dataset.Dataset, k int) ([]int, error) {
	if r.New == nil {
		return nil, errors.New("restart: New is required")
	}
	if err := validate(data, k); err != nil {
		return nil, err
	}

	trials := r.Trials
	if trials < 1 {
		trials = 1
	}

	candidates := make([][]int, trials)

	g, gctx := errgroup.WithContext(ctx)
	if r.Parallelism > 0 {
		g.SetLimit(r.Parallelism)
	} else {
		g.SetLimit(runtime.GOMAXPROCS(0))
	}

	for t := 0; t < trials; t++ {
		t := t
		g.Go(func() error {
			init, err := r.New(t)
			if err != nil {
				return err
			}
			seeds, err := init.Medoids(gctx, data, k)
			if err != nil {
				return err
			}
			candidates[t] = seeds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dist := r.Distance
	if dist == nil {
		dist = defaultOptions().distance
	}

	best := -1
	bestScore := float32(math.Inf(-1))
	for t, seeds := range candidates {
		score, err := Spread(dist, data, seeds)
		if err != nil {
			return nil, err
		}
		if score > bestScore {
			bestScore = score
			best = t
		}
	}

	return candidates[best], nil
}

// Spread returns the minimum pairwise distance among the given seeds.
// A single seed has infinite spread.
func Spread(dist DistanceFunc, data dataset.Dataset, seeds []int) (float32, error) {
	minDist := float32(math.Inf(1))
	for i := 0; i < len(seeds); i++ {
		for j := i + 1; j < len(seeds); j++ {
			d, err := dist(data.Vector(seeds[i]), data.Vector(seeds[j]))
			if err != nil {
				return 0, &ErrInvalidDistance{A: seeds[i], B: seeds[j], cause: err}
			}
			if d < minDist {
				minDist = d
			}
		}
	}
	return minDist, nil
}
