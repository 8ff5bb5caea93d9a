// Package distance provides public API for vector distance calculations.
package distance

import (
	"fmt"
	"slices"

	"github.com/hupe1980/seedgo/internal/math32"
)

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float32) float32 {
	return math32.Dot(a, b)
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	return math32.SquaredL2(a, b)
}

// L2 calculates the L2 (Euclidean) distance between two vectors.
func L2(a, b []float32) float32 {
	return math32.Sqrt(math32.SquaredL2(a, b))
}

// NormalizeL2InPlace L2-normalizes v in place.
// Returns false if v has zero L2 norm.
func NormalizeL2InPlace(v []float32) bool {
	if len(v) == 0 {
		return false
	}
	norm2 := math32.Dot(v, v)
	if norm2 == 0 {
		return false
	}
	inv := 1 / math32.Sqrt(norm2)
	math32.ScaleInPlace(v, inv)
	return true
}

// NormalizeL2Copy returns a normalized copy of src.
// Returns false if src has zero L2 norm.
func NormalizeL2Copy(src []float32) ([]float32, bool) {
	dst := slices.Clone(src)
	if !NormalizeL2InPlace(dst) {
		return nil, false
	}
	return dst, true
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricSquaredL2
	MetricCosine
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricSquaredL2:
		return "SquaredL2"
	case MetricCosine:
		return "Cosine"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b []float32) float32

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL2:
		return L2, nil
	case MetricSquaredL2:
		return SquaredL2, nil
	case MetricCosine:
		return cosineDistance, nil
	default:
		return nil, fmt.Errorf("unsupported metric for float32: %v", m)
	}
}

// cosineDistance is 1 - cosine similarity, so that identical directions
// yield 0 and the result stays non-negative for any input pair.
func cosineDistance(a, b []float32) float32 {
	dot := math32.Dot(a, b)
	na := math32.Sqrt(math32.Dot(a, a))
	nb := math32.Sqrt(math32.Dot(b, b))
	if na == 0 || nb == 0 {
		return 1
	}
	sim := dot / (na * nb)
	if sim > 1 {
		sim = 1
	}
	return 1 - sim
}
