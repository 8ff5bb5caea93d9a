package seedgo

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/hupe1980/seedgo/dataset"
	"github.com/hupe1980/seedgo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource always bootstraps from the same index. Weighted draws resolve
// to the first candidate.
type fixedSource struct {
	idx int
}

func (f fixedSource) Intn(n int) int   { return f.idx % n }
func (f fixedSource) Float64() float64 { return 0 }

// emptyDataset has no points at all.
type emptyDataset struct{}

func (emptyDataset) Len() int             { return 0 }
func (emptyDataset) Dim() int             { return 2 }
func (emptyDataset) Vector(int) []float32 { return nil }

func line1D(values ...float32) dataset.Dataset {
	vecs := make([][]float32, len(values))
	for i, v := range values {
		vecs[i] = []float32{v}
	}
	ds, err := dataset.FromSlices(vecs)
	if err != nil {
		panic(err)
	}
	return ds
}

func TestFarthestPoints_DropFirst(t *testing.T) {
	ctx := context.Background()
	// Bootstrap at 0; the farthest point is 10 (index 3), and the farthest
	// point from 10 is 0 (index 0). The bootstrap never survives the drop.
	data := line1D(0, 1, 2, 10)

	fp, err := NewFarthestPoints(WithRandomSource(fixedSource{idx: 0}))
	require.NoError(t, err)

	seeds, err := fp.Medoids(ctx, data, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0}, seeds)
}

func TestFarthestPoints_KeepFirst(t *testing.T) {
	ctx := context.Background()
	data := line1D(0, 1, 2, 10)

	fp, err := NewFarthestPoints(
		WithRandomSource(fixedSource{idx: 0}),
		WithKeepFirst(true),
	)
	require.NoError(t, err)

	seeds, err := fp.Medoids(ctx, data, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, seeds, "bootstrap point must stay first")
}

func TestFarthestPoints_KEqualsOne(t *testing.T) {
	ctx := context.Background()
	data := line1D(0, 1, 2, 10)

	t.Run("DropFirst", func(t *testing.T) {
		fp, err := NewFarthestPoints(WithRandomSource(fixedSource{idx: 0}))
		require.NoError(t, err)

		seeds, err := fp.Medoids(ctx, data, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{3}, seeds, "sole seed is the farthest point from the bootstrap")
	})

	t.Run("KeepFirst", func(t *testing.T) {
		fp, err := NewFarthestPoints(
			WithRandomSource(fixedSource{idx: 2}),
			WithKeepFirst(true),
		)
		require.NoError(t, err)

		seeds, err := fp.Medoids(ctx, data, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{2}, seeds, "sole seed is the bootstrap point")
	})
}

func TestFarthestPoints_KEqualsN(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(1)
	data, err := dataset.FromSlices(rng.UniformVectors(16, 4))
	require.NoError(t, err)

	for _, keep := range []bool{false, true} {
		fp, err := NewFarthestPoints(WithSeed(7), WithKeepFirst(keep))
		require.NoError(t, err)

		seeds, err := fp.Medoids(ctx, data, 16)
		require.NoError(t, err)
		assert.Len(t, seeds, 16)
		assert.ElementsMatch(t, seeds, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	}
}

func TestFarthestPoints_DistinctSeeds(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(2)
	data, err := dataset.FromSlices(rng.UniformVectors(50, 3))
	require.NoError(t, err)

	fp, err := NewFarthestPoints(WithSeed(3))
	require.NoError(t, err)

	seeds, err := fp.Medoids(ctx, data, 10)
	require.NoError(t, err)
	require.Len(t, seeds, 10)

	seen := make(map[int]bool, len(seeds))
	for _, s := range seeds {
		assert.False(t, seen[s], "seed %d selected twice", s)
		seen[s] = true
	}
}

func TestFarthestPoints_ModesAgree(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(4)
	data, err := dataset.FromSlices(rng.UniformVectors(30, 2))
	require.NoError(t, err)

	medoidsInit, err := NewFarthestPoints(WithRandomSource(fixedSource{idx: 11}))
	require.NoError(t, err)
	meansInit, err := NewFarthestPoints(WithRandomSource(fixedSource{idx: 11}))
	require.NoError(t, err)

	medoids, err := medoidsInit.Medoids(ctx, data, 5)
	require.NoError(t, err)
	means, err := meansInit.Means(ctx, data, 5)
	require.NoError(t, err)

	require.Len(t, means, len(medoids))
	for i, idx := range medoids {
		assert.Equal(t, data.Vector(idx), means[i], "representation must not perturb the selection sequence")
	}

	// Means are detached copies.
	means[0][0] += 100
	assert.NotEqual(t, means[0], data.Vector(medoids[0]))
}

func TestFarthestPoints_DistanceCallCount(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(5)
	data, err := dataset.FromSlices(rng.UniformVectors(40, 2))
	require.NoError(t, err)

	n, k := 40, 6

	tests := []struct {
		name      string
		keepFirst bool
		expected  int
	}{
		// Iteration i scans the points not yet chosen: n-i candidates when
		// the bootstrap is dropped, n-(i-1) when it is kept.
		{"DropFirst", false, k*n - k*(k-1)/2},
		{"KeepFirst", true, (k-1)*n - (k-1)*(k-2)/2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			counting := func(a, b []float32) (float32, error) {
				calls++
				var d float32
				for i := range a {
					d += (a[i] - b[i]) * (a[i] - b[i])
				}
				return d, nil
			}

			fp, err := NewFarthestPoints(
				WithDistanceFunc(counting),
				WithSeed(9),
				WithKeepFirst(tt.keepFirst),
			)
			require.NoError(t, err)

			_, err = fp.Medoids(ctx, data, k)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, calls, "one new distance per remaining point per round")
		})
	}
}

func TestFarthestPoints_SpreadBeatsRandom(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(6)
	data, err := dataset.FromSlices(rng.UniformVectors(200, 2))
	require.NoError(t, err)

	dist := defaultOptions().distance

	const trials = 20
	var farthestTotal, randomTotal float64

	for trial := int64(0); trial < trials; trial++ {
		fp, err := NewFarthestPoints(WithSeed(trial))
		require.NoError(t, err)
		fseeds, err := fp.Medoids(ctx, data, 5)
		require.NoError(t, err)
		fspread, err := Spread(dist, data, fseeds)
		require.NoError(t, err)
		farthestTotal += float64(fspread)

		ri, err := NewRandom(WithSeed(trial))
		require.NoError(t, err)
		rseeds, err := ri.Medoids(ctx, data, 5)
		require.NoError(t, err)
		rspread, err := Spread(dist, data, rseeds)
		require.NoError(t, err)
		randomTotal += float64(rspread)
	}

	assert.GreaterOrEqual(t, farthestTotal/trials, randomTotal/trials,
		"farthest-first seeds should be at least as spread out as random ones on average")
}

func TestFarthestPoints_DuplicatePoints(t *testing.T) {
	ctx := context.Background()
	// All pairwise distances are zero; the exclusion set alone must keep the
	// seed indices distinct.
	data := line1D(5, 5, 5, 5)

	fp, err := NewFarthestPoints(WithRandomSource(fixedSource{idx: 1}))
	require.NoError(t, err)

	seeds, err := fp.Medoids(ctx, data, 3)
	require.NoError(t, err)
	require.Len(t, seeds, 3)

	seen := make(map[int]bool)
	for _, s := range seeds {
		assert.False(t, seen[s])
		seen[s] = true
	}
}

func TestFarthestPoints_Validation(t *testing.T) {
	ctx := context.Background()
	data := line1D(0, 1, 2)

	fp, err := NewFarthestPoints()
	require.NoError(t, err)

	t.Run("KZero", func(t *testing.T) {
		_, err := fp.Medoids(ctx, data, 0)
		assert.ErrorIs(t, err, ErrInvalidK)
	})

	t.Run("KNegative", func(t *testing.T) {
		_, err := fp.Medoids(ctx, data, -1)
		assert.ErrorIs(t, err, ErrInvalidK)
	})

	t.Run("KExceedsDataset", func(t *testing.T) {
		_, err := fp.Medoids(ctx, data, 4)
		assert.ErrorIs(t, err, ErrInvalidK)
	})

	t.Run("EmptyDataset", func(t *testing.T) {
		_, err := fp.Medoids(ctx, emptyDataset{}, 1)
		assert.ErrorIs(t, err, ErrEmptyDataset)
	})
}

func TestFarthestPoints_OracleFailure(t *testing.T) {
	ctx := context.Background()
	data := line1D(0, 1, 2, 10)

	t.Run("Error", func(t *testing.T) {
		oracleErr := errors.New("oracle broke")
		fp, err := NewFarthestPoints(
			WithRandomSource(fixedSource{idx: 0}),
			WithDistanceFunc(func(a, b []float32) (float32, error) {
				return 0, oracleErr
			}),
		)
		require.NoError(t, err)

		_, err = fp.Medoids(ctx, data, 2)
		var invalid *ErrInvalidDistance
		require.ErrorAs(t, err, &invalid)
		assert.ErrorIs(t, err, oracleErr)
	})

	t.Run("Negative", func(t *testing.T) {
		fp, err := NewFarthestPoints(
			WithRandomSource(fixedSource{idx: 0}),
			WithDistanceFunc(func(a, b []float32) (float32, error) {
				return -1, nil
			}),
		)
		require.NoError(t, err)

		_, err = fp.Medoids(ctx, data, 2)
		var invalid *ErrInvalidDistance
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, float32(-1), invalid.Value)
	})

	t.Run("NaN", func(t *testing.T) {
		fp, err := NewFarthestPoints(
			WithRandomSource(fixedSource{idx: 0}),
			WithDistanceFunc(func(a, b []float32) (float32, error) {
				return float32(math.NaN()), nil
			}),
		)
		require.NoError(t, err)

		_, err = fp.Medoids(ctx, data, 2)
		var invalid *ErrInvalidDistance
		require.ErrorAs(t, err, &invalid)
		assert.True(t, math.IsNaN(float64(invalid.Value)))
	})
}

func TestFarthestPoints_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	rng := testutil.NewRNG(8)
	data, err := dataset.FromSlices(rng.UniformVectors(100, 2))
	require.NoError(t, err)

	fp, err := NewFarthestPoints(WithSeed(1))
	require.NoError(t, err)

	_, err = fp.Medoids(ctx, data, 10)
	assert.ErrorIs(t, err, context.Canceled)
}
