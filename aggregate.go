package pcgrid

import (
	"fmt"
	"math"
	"sort"

	vec3d "github.com/flywave/go3d/float64/vec3"
)

// Aggregator reduces the labels of one cell's points to a single label.
// members lists the cell's point indices in cloud order and is never empty.
type Aggregator interface {
	Aggregate(members []int, labels Labels, channel int) int32
}

// MajorityVote picks the most frequent label. Ties go to the lowest label.
type MajorityVote struct{}

func (MajorityVote) Aggregate(members []int, labels Labels, channel int) int32 {
	counts := make(map[int32]int, 4)
	for _, i := range members {
		counts[labels.At(i, channel)]++
	}
	var best int32
	bestCount := 0
	for v, c := range counts {
		if c > bestCount || (c == bestCount && v < best) {
			best, bestCount = v, c
		}
	}
	return best
}

// FirstSeen takes the label of the cell's first point in cloud order without
// voting. It is cheaper than MajorityVote and agrees with it only when the
// first point carries the majority label.
type FirstSeen struct{}

func (FirstSeen) Aggregate(members []int, labels Labels, channel int) int32 {
	return labels.At(members[0], channel)
}

// SurfaceVoxels is the sparse result of SurfaceVoxelLabels.
type SurfaceVoxels struct {
	// Cells are the packed ids x + y*Dims[0] + z*Dims[0]*Dims[1] of the
	// occupied cells in ascending order.
	Cells []int `json:"cells"`
	// IDs are the cell coordinates matching Cells.
	IDs []CellID `json:"ids"`
	// Labels is row-major len(Cells) x Channels.
	Labels   []int32 `json:"labels"`
	Channels int     `json:"channels"`
	// Dims is the number of cells per axis spanned by the cloud.
	Dims [3]int `json:"dims"`
}

func (s *SurfaceVoxels) Len() int {
	return len(s.Cells)
}

// Label returns the aggregated label of the i-th occupied cell.
func (s *SurfaceVoxels) Label(i, channel int) int32 {
	return s.Labels[i*s.Channels+channel]
}

const maxSurfaceCells = 1 << 53

// surfaceGrid is a grid of cubic cells of side res laid over the bounding
// box of a cloud.
type surfaceGrid struct {
	min  vec3d.T
	res  float64
	dims [3]int
}

func newSurfaceGrid(points []vec3d.T, res float64) (*surfaceGrid, error) {
	for i := range points {
		for a := 0; a < 3; a++ {
			if !isFinite(points[i][a]) {
				return nil, &OutOfRangeError{Point: i, Axis: a, Coord: points[i][a]}
			}
		}
	}
	box, err := BoundingBox(points)
	if err != nil {
		return nil, err
	}
	g := &surfaceGrid{min: box.Min, res: res}
	size := boxSize(box)
	total := 1.0
	for a := 0; a < 3; a++ {
		n := math.Max(1, math.Ceil(size[a]/res))
		total *= n
		if total > maxSurfaceCells {
			return nil, fmt.Errorf("%w: %v over extent %v needs more than %d cells",
				ErrInvalidResolution, res, size, int64(maxSurfaceCells))
		}
		g.dims[a] = int(n)
	}
	return g, nil
}

// locate returns the cell holding p. Points on the upper face of the box
// belong to the last cell.
func (g *surfaceGrid) locate(p vec3d.T) (CellID, int) {
	var c CellID
	for a := 0; a < 3; a++ {
		k := int(math.Floor((p[a] - g.min[a]) / g.res))
		c[a] = min(k, g.dims[a]-1)
	}
	return c, c[0] + g.dims[0]*(c[1]+g.dims[1]*c[2])
}

// SurfaceVoxelLabels bins points into cells of side res laid over their own
// bounding box and reduces each occupied cell's labels with agg, one result
// per label channel. An empty cloud yields no cells and zero Dims.
func SurfaceVoxelLabels(points []vec3d.T, labels Labels, res float64, agg Aggregator, opts ...Option) (*SurfaceVoxels, error) {
	if agg == nil {
		return nil, ErrNilAggregator
	}
	if !isFinite(res) || res <= 0 {
		return nil, ErrInvalidResolution
	}
	if err := labels.check(len(points)); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	channels := labels.channels()
	out := &SurfaceVoxels{Channels: channels}
	if len(points) == 0 {
		return out, nil
	}

	g, err := newSurfaceGrid(points, res)
	if err != nil {
		return nil, err
	}
	out.Dims = g.dims

	members := make(map[int][]int)
	ids := make(map[int]CellID)
	for i := range points {
		c, id := g.locate(points[i])
		if _, ok := members[id]; !ok {
			ids[id] = c
		}
		members[id] = append(members[id], i)
	}

	out.Cells = make([]int, 0, len(members))
	for id := range members {
		out.Cells = append(out.Cells, id)
	}
	sort.Ints(out.Cells)

	out.IDs = make([]CellID, len(out.Cells))
	out.Labels = make([]int32, 0, len(out.Cells)*channels)
	for i, id := range out.Cells {
		out.IDs[i] = ids[id]
		for ch := 0; ch < channels; ch++ {
			out.Labels = append(out.Labels, agg.Aggregate(members[id], labels, ch))
		}
	}

	o.logger.WithOperation("surface_voxels").Debug("aggregated labels",
		"points", len(points),
		"occupied", len(out.Cells),
		"dims", out.Dims)
	return out, nil
}
