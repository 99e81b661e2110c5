package pcgrid

import (
	"math/rand/v2"

	vec3d "github.com/flywave/go3d/float64/vec3"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// binning is the resampling pass shared by the volume and image grids. The
// grid has len(axes) dimensions; keep lists which point coordinates are
// written, binned axes first. Coordinates beyond the binned ones are copied
// unnormalized.
type binning struct {
	spec GridSpec
	axes []int
	keep []int
}

func (b binning) pointDim() int {
	return len(b.keep)
}

func (b binning) shape() []int {
	shape := make([]int, 0, len(b.axes)+2)
	for range b.axes {
		shape = append(shape, b.spec.Resolution)
	}
	return append(shape, b.spec.NumSample, b.pointDim())
}

// resample fills a dense tensor with NumSample normalized points per cell.
// Every cell of the grid is visited; empty cells stay zero.
func (b binning) resample(points []vec3d.T, src rand.Source, log *Logger) (*Tensor, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	idx, err := NewIndex(points, b.spec, b.axes...)
	if err != nil {
		return nil, err
	}

	out := NewTensor(b.shape()...)
	dim := b.pointDim()
	stride := b.spec.NumSample * dim
	size := b.spec.CellSize()
	sel := make([]int, b.spec.NumSample)
	var center [3]float64
	var subsampled int

	for id, n := 0, idx.NumCells(); id < n; id++ {
		members := idx.Cell(id)
		if len(members) == 0 {
			continue
		}
		if len(members) > b.spec.NumSample {
			subsampled++
		}
		chosen := selectSamples(sel, members, src)

		cell := idx.Unpack(id)
		for a := range b.axes {
			center[a] = cellCenter(cell[a], size, b.spec.Radius)
		}

		dst := out.Data[id*stride : (id+1)*stride]
		for s, pi := range chosen {
			row := dst[s*dim : (s+1)*dim]
			for c, axis := range b.keep {
				v := points[pi][axis]
				if c < len(b.axes) {
					v = (v - center[c]) / size
				}
				row[c] = float32(v)
			}
		}
	}

	log.Debug("resampled point cloud",
		"points", len(points),
		"cells", idx.NumCells(),
		"occupied", idx.Len(),
		"subsampled", subsampled)
	return out, nil
}

// selectSamples fills buf with len(buf) point indices taken from members.
// Larger buckets are subsampled without replacement; smaller ones keep every
// member and repeat the last one.
func selectSamples(buf []int, members []int, src rand.Source) []int {
	n, k := len(buf), len(members)
	if k > n {
		sampleuv.WithoutReplacement(buf, k, src)
		for i, j := range buf {
			buf[i] = members[j]
		}
		return buf
	}
	copy(buf, members)
	last := members[k-1]
	for i := k; i < n; i++ {
		buf[i] = last
	}
	return buf
}

// keepAxes lists the binned axes followed, when all is set, by the remaining
// coordinates in ascending order.
func keepAxes(axes []int, all bool) []int {
	keep := append([]int(nil), axes...)
	if !all {
		return keep
	}
	for _, a := range xyz {
		found := false
		for _, b := range axes {
			if a == b {
				found = true
				break
			}
		}
		if !found {
			keep = append(keep, a)
		}
	}
	return keep
}
