package pcgrid

import (
	"math/rand/v2"

	vec3d "github.com/flywave/go3d/float64/vec3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// CenterToOrigin translates points so their mean is the origin.
func CenterToOrigin(points []vec3d.T) []vec3d.T {
	if len(points) == 0 {
		return []vec3d.T{}
	}
	var mean vec3d.T
	for i := range points {
		mean.Add(&points[i])
	}
	mean.Scale(1 / float64(len(points)))
	return translate(points, mean)
}

// BottomCenterToOrigin centres the bounding box on the origin on every axis
// except up, which is left untouched so the cloud keeps standing on its floor.
func BottomCenterToOrigin(points []vec3d.T, up int) ([]vec3d.T, error) {
	if err := checkAxes([]int{up}); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return []vec3d.T{}, nil
	}
	box, err := BoundingBox(points)
	if err != nil {
		return nil, err
	}
	c := boxCenter(box)
	c[up] = 0
	return translate(points, c), nil
}

// NormalizeToUnitCube scales points uniformly so the longest side of their
// bounding box is 1-tol and centres the box on the origin. A cloud with no
// extent is only centred.
func NormalizeToUnitCube(points []vec3d.T, tol float64) []vec3d.T {
	box, err := BoundingBox(points)
	if err != nil {
		return []vec3d.T{}
	}
	size := boxSize(box)
	longest := floats.Max(size[:])
	center := boxCenter(box)
	out := translate(points, center)
	if longest == 0 {
		return out
	}
	scale := (1 - tol) / longest
	for i := range out {
		out[i].Scale(scale)
	}
	return out
}

// SamplePoints draws n points from the cloud, without replacement when the
// cloud has at least n points and with replacement otherwise.
func SamplePoints(points []vec3d.T, n int, src rand.Source) ([]vec3d.T, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if n <= 0 {
		return []vec3d.T{}, nil
	}
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	idx := make([]int, n)
	if n <= len(points) {
		sampleuv.WithoutReplacement(idx, len(points), src)
	} else {
		rnd := rand.New(src)
		for i := range idx {
			idx[i] = rnd.IntN(len(points))
		}
	}
	out := make([]vec3d.T, n)
	for i, j := range idx {
		out[i] = points[j]
	}
	return out, nil
}

// AddGaussianNoise jitters every coordinate with N(mu, sigma^2) noise.
func AddGaussianNoise(points []vec3d.T, mu, sigma float64, src rand.Source) ([]vec3d.T, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	noise := distuv.Normal{Mu: mu, Sigma: sigma, Src: src}
	out := make([]vec3d.T, len(points))
	for i, p := range points {
		for a := 0; a < 3; a++ {
			out[i][a] = p[a] + noise.Rand()
		}
	}
	return out, nil
}

func translate(points []vec3d.T, by vec3d.T) []vec3d.T {
	out := make([]vec3d.T, len(points))
	for i := range points {
		out[i] = points[i]
		out[i].Sub(&by)
	}
	return out
}
