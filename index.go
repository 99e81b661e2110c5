package pcgrid

import (
	"sort"

	vec3d "github.com/flywave/go3d/float64/vec3"
)

var xyz = []int{0, 1, 2}

// Index groups point indices by the grid cell they fall in. Cells are keyed
// by their row-major packed id; the first binned axis varies slowest.
// An Index is read-only once built.
type Index struct {
	spec   GridSpec
	axes   []int
	cells  map[int][]int
	points int
}

// NewIndex bins points on the given axes (all three when none are given).
// A point mapping outside [0, Resolution-1] on any binned axis fails the
// whole call with an *OutOfRangeError.
func NewIndex(points []vec3d.T, spec GridSpec, axes ...int) (*Index, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if len(axes) == 0 {
		axes = xyz
	}
	if err := checkAxes(axes); err != nil {
		return nil, err
	}

	idx := &Index{
		spec:   spec,
		axes:   append([]int(nil), axes...),
		cells:  make(map[int][]int),
		points: len(points),
	}

	res := spec.Resolution
	size := spec.CellSize()
	for i := range points {
		id := 0
		for _, axis := range idx.axes {
			c := points[i][axis]
			k, ok := cellIndex(c, spec.Radius, size, res)
			if !ok {
				return nil, &OutOfRangeError{Point: i, Axis: axis, Coord: c, Resolution: res}
			}
			id = id*res + k
		}
		idx.cells[id] = append(idx.cells[id], i)
	}
	return idx, nil
}

func checkAxes(axes []int) error {
	if len(axes) > 3 {
		return invalidGrid("at most 3 binned axes, got %d", len(axes))
	}
	var seen [3]bool
	for _, a := range axes {
		if a < 0 || a > 2 {
			return invalidGrid("axis %d out of [0, 2]", a)
		}
		if seen[a] {
			return invalidGrid("axis %d binned twice", a)
		}
		seen[a] = true
	}
	return nil
}

func (idx *Index) Spec() GridSpec {
	return idx.spec
}

// Dims is the number of binned axes.
func (idx *Index) Dims() int {
	return len(idx.axes)
}

// NumCells is the size of the dense grid, Resolution^Dims.
func (idx *Index) NumCells() int {
	return pow(idx.spec.Resolution, len(idx.axes))
}

// Len is the number of occupied cells.
func (idx *Index) Len() int {
	return len(idx.cells)
}

// NumPoints is the number of points the index was built from.
func (idx *Index) NumPoints() int {
	return idx.points
}

// Cell returns the point indices in cell id in cloud order, or nil when the
// cell is empty. The slice must not be modified.
func (idx *Index) Cell(id int) []int {
	return idx.cells[id]
}

// Occupied returns the packed ids of all non-empty cells in ascending order.
func (idx *Index) Occupied() []int {
	ids := make([]int, 0, len(idx.cells))
	for id := range idx.cells {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (idx *Index) Pack(c CellID) int {
	id := 0
	for a := range idx.axes {
		id = id*idx.spec.Resolution + c[a]
	}
	return id
}

func (idx *Index) Unpack(id int) CellID {
	var c CellID
	res := idx.spec.Resolution
	for a := len(idx.axes) - 1; a >= 0; a-- {
		c[a] = id % res
		id /= res
	}
	return c
}
