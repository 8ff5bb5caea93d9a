package seedgo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not positive or exceeds the dataset size.
	ErrInvalidK = errors.New("k must be positive and at most the dataset size")

	// ErrEmptyDataset is returned when a selection run is attempted on a
	// dataset with no points.
	ErrEmptyDataset = errors.New("dataset is empty")
)

// ErrInvalidDistance indicates the distance function failed or returned a
// value outside [0, +Inf) for a pair of points. Selection aborts immediately:
// substituting a value would silently corrupt the seed set.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidDistance struct {
	A, B  int
	Value float32
	cause error
}

func (e *ErrInvalidDistance) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("distance(%d, %d): %v", e.A, e.B, e.cause)
	}
	return fmt.Sprintf("distance(%d, %d): invalid value %v", e.A, e.B, e.Value)
}

func (e *ErrInvalidDistance) Unwrap() error { return e.cause }
