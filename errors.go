package pcgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned by operations that need at least one point.
	// Binning an empty cloud is not an error.
	ErrEmptyInput = errors.New("pcgrid: empty point cloud")

	// ErrInvalidGrid is returned for a GridSpec or ImageSpec that cannot hold points.
	ErrInvalidGrid = errors.New("pcgrid: invalid grid")

	// ErrInvalidResolution is returned when a linear cell size is not positive.
	ErrInvalidResolution = errors.New("pcgrid: cell size must be positive and finite")

	// ErrNilSource is returned when a resampling call is given no random source.
	ErrNilSource = errors.New("pcgrid: nil random source")

	// ErrNilAggregator is returned when SurfaceVoxelLabels has no strategy.
	ErrNilAggregator = errors.New("pcgrid: nil aggregator")

	// ErrShapeMismatch is returned when tensors of different shapes are stacked.
	ErrShapeMismatch = errors.New("pcgrid: tensor shapes differ")

	// ErrZeroAxis is returned when a rotation axis has no direction.
	ErrZeroAxis = errors.New("pcgrid: rotation axis is zero or not finite")

	// ErrOutOfRange is wrapped by every *OutOfRangeError.
	ErrOutOfRange = errors.New("pcgrid: point outside grid")

	// ErrDimensionMismatch is wrapped by every *DimensionMismatchError.
	ErrDimensionMismatch = errors.New("pcgrid: dimension mismatch")
)

func invalidGrid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidGrid, fmt.Sprintf(format, args...))
}

// OutOfRangeError reports a point whose cell index falls outside
// [0, Resolution-1] on some axis. Non-finite coordinates are reported the
// same way.
type OutOfRangeError struct {
	Point      int
	Axis       int
	Coord      float64
	Resolution int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("pcgrid: point %d axis %d: coordinate %v outside grid of %d cells",
		e.Point, e.Axis, e.Coord, e.Resolution)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// DimensionMismatchError reports a label table whose length does not match
// the point count times the channel count.
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("pcgrid: dimension mismatch: expected %d labels, got %d", e.Expected, e.Actual)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

// BatchError names the batch item that failed.
type BatchError struct {
	Item int
	Err  error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("pcgrid: batch item %d: %v", e.Item, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }
