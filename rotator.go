package pcgrid

import (
	"fmt"
	"math"

	mat2d "github.com/flywave/go3d/float64/mat2"
	mat3d "github.com/flywave/go3d/float64/mat3"
	"github.com/flywave/go3d/float64/quaternion"
	vec2d "github.com/flywave/go3d/float64/vec2"
	vec3d "github.com/flywave/go3d/float64/vec3"
)

// Rotator is a planar rotation by Degrees, counter-clockwise.
type Rotator struct {
	Degrees float64
}

func (r Rotator) RotateVector(v vec2d.T) vec2d.T {
	v2 := v
	mat := r.RotationMatrix()
	mat.TransformVec2(&v2)
	return v2
}

// RotationMatrix is column-major, as go3d matrices are.
func (r Rotator) RotationMatrix() (m mat2d.T) {
	rad := DegToRad(r.Degrees)

	c := math.Cos(rad)
	s := math.Sin(rad)

	m[0][0] = c
	m[0][1] = s
	m[1][0] = -s
	m[1][1] = c

	return m
}

// RotateAboutAxis rotates points by degrees around the given coordinate axis
// using the right-hand rule. The input is not modified.
func RotateAboutAxis(points []vec3d.T, axis int, degrees float64) ([]vec3d.T, error) {
	if err := checkAxes([]int{axis}); err != nil {
		return nil, err
	}
	u, v := (axis+1)%3, (axis+2)%3
	r := Rotator{degrees}
	out := make([]vec3d.T, len(points))
	for i, p := range points {
		q := r.RotateVector(vec2d.T{p[u], p[v]})
		out[i] = p
		out[i][u], out[i][v] = q[0], q[1]
	}
	return out, nil
}

// RotateAboutVector rotates points by degrees around axis, which need not be
// unit length, using the right-hand rule.
func RotateAboutVector(points []vec3d.T, axis vec3d.T, degrees float64) ([]vec3d.T, error) {
	l := axis.Length()
	if l == 0 || !isFinite(l) {
		return nil, fmt.Errorf("%w: %v", ErrZeroAxis, axis)
	}
	axis.Scale(1 / l)
	q := quaternion.FromAxisAngle(&axis, DegToRad(degrees))
	out := make([]vec3d.T, len(points))
	for i := range points {
		out[i] = q.RotatedVec3(&points[i])
	}
	return out, nil
}

// TransformPoints applies m to every point as a column vector.
func TransformPoints(points []vec3d.T, m *mat3d.T) []vec3d.T {
	out := make([]vec3d.T, len(points))
	for i := range points {
		out[i] = points[i]
		m.TransformVec3(&out[i])
	}
	return out
}
