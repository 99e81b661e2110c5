package pcgrid

import (
	"fmt"
)

// Tensor is a dense row-major float32 array.
type Tensor struct {
	Shape []int     `json:"shape"`
	Data  []float32 `json:"data"`
}

func NewTensor(shape ...int) *Tensor {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return &Tensor{Shape: append([]int(nil), shape...), Data: make([]float32, n)}
}

func (t *Tensor) Len() int {
	return len(t.Data)
}

func (t *Tensor) Rank() int {
	return len(t.Shape)
}

// stride returns the number of elements one step on axis moves over.
func (t *Tensor) stride(axis int) int {
	s := 1
	for _, d := range t.Shape[axis+1:] {
		s *= d
	}
	return s
}

func (t *Tensor) offset(idx []int) int {
	if len(idx) > len(t.Shape) {
		panic(fmt.Sprintf("pcgrid: %d indices into rank %d tensor", len(idx), len(t.Shape)))
	}
	off := 0
	for a, i := range idx {
		if i < 0 || i >= t.Shape[a] {
			panic(fmt.Sprintf("pcgrid: index %d out of range [0, %d) on axis %d", i, t.Shape[a], a))
		}
		off = off*t.Shape[a] + i
	}
	return off * t.stride(len(idx)-1)
}

// At returns the element at a full index.
func (t *Tensor) At(idx ...int) float32 {
	if len(idx) != len(t.Shape) {
		panic(fmt.Sprintf("pcgrid: At needs %d indices, got %d", len(t.Shape), len(idx)))
	}
	return t.Data[t.offset(idx)]
}

func (t *Tensor) Set(v float32, idx ...int) {
	if len(idx) != len(t.Shape) {
		panic(fmt.Sprintf("pcgrid: Set needs %d indices, got %d", len(t.Shape), len(idx)))
	}
	t.Data[t.offset(idx)] = v
}

// Slice returns the sub-array addressed by a prefix index. It aliases Data.
func (t *Tensor) Slice(idx ...int) []float32 {
	if len(idx) == 0 {
		return t.Data
	}
	off := t.offset(idx)
	return t.Data[off : off+t.stride(len(idx)-1)]
}

// Reshape returns a tensor sharing Data with a new shape of equal size.
func (t *Tensor) Reshape(shape ...int) (*Tensor, error) {
	n := 1
	for _, d := range shape {
		n *= d
	}
	if n != len(t.Data) {
		return nil, fmt.Errorf("%w: cannot reshape %v to %v", ErrShapeMismatch, t.Shape, shape)
	}
	return &Tensor{Shape: append([]int(nil), shape...), Data: t.Data}, nil
}

// Flatten reshapes to [Shape[0], rest], the layout of a flattened batch.
func (t *Tensor) Flatten() *Tensor {
	if len(t.Shape) == 0 {
		return &Tensor{Shape: []int{len(t.Data)}, Data: t.Data}
	}
	rest := 1
	if t.Shape[0] != 0 {
		rest = len(t.Data) / t.Shape[0]
	}
	return &Tensor{Shape: []int{t.Shape[0], rest}, Data: t.Data}
}

// Stack concatenates equally shaped tensors along a new leading batch axis.
func Stack(ts []*Tensor) (*Tensor, error) {
	if len(ts) == 0 {
		return NewTensor(0), nil
	}
	first := ts[0].Shape
	out := NewTensor(append([]int{len(ts)}, first...)...)
	n := ts[0].Len()
	for i, t := range ts {
		if !sameShape(first, t.Shape) {
			return nil, fmt.Errorf("%w: item %d has shape %v, want %v", ErrShapeMismatch, i, t.Shape, first)
		}
		copy(out.Data[i*n:(i+1)*n], t.Data)
	}
	return out, nil
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
