package pcgrid

import (
	"fmt"
	"math/rand/v2"

	vec3d "github.com/flywave/go3d/float64/vec3"
)

// PointCloudToVolume bins points into a Resolution^3 grid over
// [-Radius, Radius]^3 and returns a tensor of shape
// [R, R, R, NumSample, 3]. Each cell holds NumSample points expressed as
// (p - cellCenter) / cellSize. Cells with more points than NumSample are
// subsampled without replacement using src; cells with fewer repeat their
// last point; empty cells are all zero.
//
// src is required and is the only source of randomness, so equal sources
// give bit-identical results.
func PointCloudToVolume(points []vec3d.T, spec GridSpec, src rand.Source, opts ...Option) (*Tensor, error) {
	o := newOptions(opts)
	b := binning{spec: spec, axes: xyz, keep: xyz}
	return b.resample(points, src, o.logger.WithOperation("volume"))
}

// PointCloudToOccupancy returns a [R, R, R] tensor that is 1 where at least
// one point falls and 0 elsewhere.
func PointCloudToOccupancy(points []vec3d.T, resolution int, radius float64, opts ...Option) (*Tensor, error) {
	o := newOptions(opts)
	idx, err := NewIndex(points, GridSpec{Resolution: resolution, Radius: radius, NumSample: 1})
	if err != nil {
		return nil, err
	}
	vol := NewTensor(resolution, resolution, resolution)
	for _, id := range idx.Occupied() {
		vol.Data[id] = 1
	}
	o.logger.WithOperation("occupancy").Debug("built occupancy volume",
		"points", len(points),
		"occupied", idx.Len())
	return vol, nil
}

// VolumeToPointCloud returns the integer coordinates of every non-zero cell
// of a cubic rank-3 volume, in i, j, k order.
func VolumeToPointCloud(vol *Tensor) ([]vec3d.T, error) {
	if vol == nil {
		return nil, fmt.Errorf("%w: nil volume", ErrShapeMismatch)
	}
	if vol.Rank() != 3 || vol.Shape[0] != vol.Shape[1] || vol.Shape[0] != vol.Shape[2] {
		return nil, fmt.Errorf("%w: want a cubic volume, got %v", ErrShapeMismatch, vol.Shape)
	}
	n := vol.Shape[0]
	points := []vec3d.T{}
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			for c := 0; c < n; c++ {
				if vol.At(a, b, c) != 0 {
					points = append(points, vec3d.T{float64(a), float64(b), float64(c)})
				}
			}
		}
	}
	return points, nil
}
