package pcgrid

import (
	"math"
)

// GridSpec describes a cubic grid covering [-Radius, Radius] on every binned
// axis, split into Resolution cells per axis, with NumSample points kept per
// cell.
type GridSpec struct {
	Resolution int     `json:"resolution"`
	Radius     float64 `json:"radius"`
	NumSample  int     `json:"numSample"`
}

func (g GridSpec) CellSize() float64 {
	return 2 * g.Radius / float64(g.Resolution)
}

// Validate reports ErrInvalidGrid for a grid that cannot hold any point.
func (g GridSpec) Validate() error {
	if g.Resolution <= 0 {
		return invalidGrid("resolution must be positive, got %d", g.Resolution)
	}
	if g.NumSample <= 0 {
		return invalidGrid("numSample must be positive, got %d", g.NumSample)
	}
	if !isFinite(g.Radius) || g.Radius <= 0 {
		return invalidGrid("radius must be positive and finite, got %v", g.Radius)
	}
	return nil
}

// ImageSpec is a GridSpec restricted to two projected axes.
type ImageSpec struct {
	GridSpec

	// Axes are the two coordinates the image is keyed on. {0, 0} is the zero
	// value and means {0, 1}; it is never read as a repeated axis.
	Axes [2]int `json:"axes"`

	// DropDepth keeps only the two projected coordinates in the output.
	DropDepth bool `json:"dropDepth"`
}

func (s ImageSpec) axes() []int {
	if s.Axes == [2]int{} {
		return []int{0, 1}
	}
	return []int{s.Axes[0], s.Axes[1]}
}

// Validate checks the grid and that Axes names two distinct coordinates.
func (s ImageSpec) Validate() error {
	if err := s.GridSpec.Validate(); err != nil {
		return err
	}
	ax := s.axes()
	for _, a := range ax {
		if a < 0 || a > 2 {
			return invalidGrid("axis %d out of [0, 2]", a)
		}
	}
	if ax[0] == ax[1] {
		return invalidGrid("projected axes must differ, got %v", ax)
	}
	return nil
}

// CellID is an integer cell coordinate. Axes a 2D grid does not bin are zero.
type CellID [3]int

// Labels is a row-major N x Channels table of per-point integer labels.
// Channels <= 1 means one scalar label per point.
type Labels struct {
	Values   []int32 `json:"values"`
	Channels int     `json:"channels"`
}

// ScalarLabels wraps one label per point.
func ScalarLabels(values []int32) Labels {
	return Labels{Values: values, Channels: 1}
}

func (l Labels) channels() int {
	if l.Channels <= 1 {
		return 1
	}
	return l.Channels
}

// At returns the label of point i on the given channel.
func (l Labels) At(i, channel int) int32 {
	return l.Values[i*l.channels()+channel]
}

func (l Labels) check(n int) error {
	c := l.channels()
	if len(l.Values) != n*c {
		return &DimensionMismatchError{Expected: n * c, Actual: len(l.Values)}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
