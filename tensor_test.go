package pcgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTensorIndexing(t *testing.T) {
	a := assert.New(t)

	x := NewTensor(2, 3, 4)
	a.Equal(24, x.Len())
	a.Equal(3, x.Rank())

	x.Set(7, 1, 2, 3)
	a.Equal(float32(7), x.At(1, 2, 3))
	a.Equal(float32(7), x.Data[23])

	x.Set(5, 1, 0, 1)
	a.Equal(float32(5), x.Data[13])
	a.Equal([]float32{0, 5, 0, 0}, x.Slice(1, 0))
	a.Len(x.Slice(1), 12)
	a.Len(x.Slice(), 24)

	a.Panics(func() { x.At(2, 0, 0) })
	a.Panics(func() { x.At(0, 0) })
}

func TestTensorReshape(t *testing.T) {
	x := NewTensor(2, 6)
	x.Data[7] = 3

	y, err := x.Reshape(3, 4)
	require.NoError(t, err)
	assert.Equal(t, float32(3), y.At(1, 3))

	_, err = x.Reshape(5, 2)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestStack(t *testing.T) {
	a := assert.New(t)

	p := NewTensor(2, 2)
	q := NewTensor(2, 2)
	p.Data[0], q.Data[3] = 1, 2

	s, err := Stack([]*Tensor{p, q})
	require.NoError(t, err)
	a.Equal([]int{2, 2, 2}, s.Shape)
	a.Equal([]float32{1, 0, 0, 0, 0, 0, 0, 2}, s.Data)
	a.Equal([]int{2, 4}, s.Flatten().Shape)

	_, err = Stack([]*Tensor{p, NewTensor(4)})
	a.ErrorIs(err, ErrShapeMismatch)

	empty, err := Stack(nil)
	require.NoError(t, err)
	a.Equal(0, empty.Len())
}
