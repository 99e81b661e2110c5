package pcgrid

import (
	"math/rand/v2"

	vec3d "github.com/flywave/go3d/float64/vec3"
)

// PointCloudToImage is PointCloudToVolume keyed on the two axes of
// spec.Axes. The result has shape [R, R, NumSample, D]. Each output point
// lists the two projected coordinates, normalized to the pixel, followed by
// the remaining coordinate unchanged; D is 2 when spec.DropDepth is set and
// 3 otherwise.
func PointCloudToImage(points []vec3d.T, spec ImageSpec, src rand.Source, opts ...Option) (*Tensor, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	axes := spec.axes()
	b := binning{
		spec: spec.GridSpec,
		axes: axes,
		keep: keepAxes(axes, !spec.DropDepth),
	}
	return b.resample(points, src, o.logger.WithOperation("image"))
}
