package dataset

import (
	"errors"
	"fmt"
)

// ErrNoVectors is returned when a dataset is constructed without any vectors.
var ErrNoVectors = errors.New("dataset has no vectors")

// Dataset is a finite, immutable collection of points addressed by dense
// indices in [0, Len). Implementations must be safe for concurrent reads.
//
// The slice returned by Vector is backing storage, not a copy. Callers must
// not mutate it.
type Dataset interface {
	// Len returns the number of points.
	Len() int
	// Dim returns the dimensionality of each point.
	Dim() int
	// Vector returns the point at index i.
	Vector(i int) []float32
}

// Flat is a Dataset over row-major flattened storage (n * dim float32 values).
// This is the layout used for bulk vector data throughout the library.
type Flat struct {
	data []float32
	dim  int
}

// NewFlat creates a Flat dataset from flattened row-major data.
func NewFlat(data []float32, dim int) (*Flat, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("invalid dimension: %d", dim)
	}
	if len(data) == 0 {
		return nil, ErrNoVectors
	}
	if len(data)%dim != 0 {
		return nil, fmt.Errorf("data length %d is not a multiple of dimension %d", len(data), dim)
	}
	return &Flat{data: data, dim: dim}, nil
}

// Len returns the number of points.
func (f *Flat) Len() int { return len(f.data) / f.dim }

// Dim returns the dimensionality of each point.
func (f *Flat) Dim() int { return f.dim }

// Vector returns the point at index i as a subslice of the backing array.
func (f *Flat) Vector(i int) []float32 {
	return f.data[i*f.dim : (i+1)*f.dim]
}

// FromSlices creates a Flat dataset by copying vectors into a single backing
// array. All vectors must share the same dimensionality.
func FromSlices(vectors [][]float32) (*Flat, error) {
	if len(vectors) == 0 {
		return nil, ErrNoVectors
	}
	dim := len(vectors[0])
	if dim == 0 {
		return nil, fmt.Errorf("invalid dimension: %d", dim)
	}

	data := make([]float32, 0, len(vectors)*dim)
	for i, vec := range vectors {
		if len(vec) != dim {
			return nil, fmt.Errorf("vector %d has dimension %d, expected %d", i, len(vec), dim)
		}
		data = append(data, vec...)
	}

	return &Flat{data: data, dim: dim}, nil
}
