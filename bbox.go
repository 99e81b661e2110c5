package pcgrid

import (
	vec3d "github.com/flywave/go3d/float64/vec3"
)

// BoundingBox returns the axis-aligned box spanned by points.
func BoundingBox(points []vec3d.T) (vec3d.Box, error) {
	if len(points) == 0 {
		return vec3d.Box{}, ErrEmptyInput
	}
	r := vec3d.Box{Min: vec3d.MaxVal, Max: vec3d.MinVal}
	for i := range points {
		r.Extend(&points[i])
	}
	return r, nil
}

func boxCenter(b vec3d.Box) vec3d.T {
	return vec3d.T{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

func boxSize(b vec3d.Box) vec3d.T {
	return vec3d.T{
		b.Max[0] - b.Min[0],
		b.Max[1] - b.Min[1],
		b.Max[2] - b.Min[2],
	}
}
