// Package dataset provides the point collections consumed by the seeding
// strategies.
//
// The core abstraction is Dataset: a finite, immutable, index-addressed
// collection of float32 vectors. Flat stores vectors in a single row-major
// backing array; FromSlices builds one from [][]float32. Load and Save
// exchange datasets in the fvecs benchmark format, optionally compressed
// with zstd or lz4 (selected by file extension).
package dataset
