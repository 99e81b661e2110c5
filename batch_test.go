package pcgrid

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	vec3d "github.com/flywave/go3d/float64/vec3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomClouds(seed uint64, n, size int) [][]vec3d.T {
	rnd := rand.New(rand.NewPCG(seed, 0))
	clouds := make([][]vec3d.T, n)
	for i := range clouds {
		clouds[i] = make([]vec3d.T, size)
		for j := range clouds[i] {
			clouds[i][j] = vec3d.T{rnd.Float64()*1.8 - 0.9, rnd.Float64()*1.8 - 0.9, rnd.Float64()*1.8 - 0.9}
		}
	}
	return clouds
}

func TestVolumeBatchMatchesSequential(t *testing.T) {
	clouds := randomClouds(3, 6, 150)
	spec := GridSpec{Resolution: 2, Radius: 1, NumSample: 4}

	got, err := VolumeBatch(context.Background(), clouds, spec, WithSeed(11), WithWorkers(3))
	require.NoError(t, err)
	require.Len(t, got, len(clouds))

	for i, c := range clouds {
		want, err := PointCloudToVolume(c, spec, rand.NewPCG(11, uint64(i)))
		require.NoError(t, err)
		assert.Equal(t, want.Data, got[i].Data, "item %d", i)
	}

	again, err := VolumeBatch(context.Background(), clouds, spec, WithSeed(11), WithWorkers(1))
	require.NoError(t, err)
	for i := range got {
		assert.Equal(t, got[i].Data, again[i].Data, "item %d", i)
	}
}

func TestImageBatch(t *testing.T) {
	clouds := randomClouds(5, 3, 40)
	spec := ImageSpec{GridSpec: GridSpec{Resolution: 3, Radius: 1, NumSample: 2}}

	got, err := ImageBatch(context.Background(), clouds, spec, WithSeed(2))
	require.NoError(t, err)

	stacked, err := Stack(got)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 3, 2, 3}, stacked.Shape)

	want, err := PointCloudToImage(clouds[1], spec, rand.NewPCG(2, 1))
	require.NoError(t, err)
	assert.Equal(t, want.Data, stacked.Slice(1))
}

func TestOccupancyBatch(t *testing.T) {
	a := assert.New(t)
	clouds := [][]vec3d.T{
		{{-0.9, -0.9, -0.9}},
		{},
		{{0.9, 0.9, 0.9}, {0.1, 0.1, 0.1}},
	}

	vols, err := OccupancyBatch(context.Background(), clouds, 2, 1)
	require.NoError(t, err)

	stacked, err := Stack(vols)
	require.NoError(t, err)
	flat := stacked.Flatten()
	a.Equal([]int{3, 8}, flat.Shape)
	a.Equal([]float32{1, 0, 0, 0, 0, 0, 0, 0}, flat.Slice(0))
	a.Equal(make([]float32, 8), flat.Slice(1))
	a.Equal([]float32{0, 0, 0, 0, 0, 0, 0, 1}, flat.Slice(2))
}

func TestBatchError(t *testing.T) {
	clouds := randomClouds(1, 5, 10)
	clouds[3] = append(clouds[3], vec3d.T{0, 0, 4})

	_, err := VolumeBatch(context.Background(), clouds, GridSpec{Resolution: 2, Radius: 1, NumSample: 2}, WithWorkers(2))
	require.Error(t, err)

	var be *BatchError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 3, be.Item)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := OccupancyBatch(ctx, randomClouds(1, 4, 4), 2, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatchEmpty(t *testing.T) {
	got, err := VolumeBatch(context.Background(), nil, GridSpec{Resolution: 2, Radius: 1, NumSample: 2})
	require.NoError(t, err)
	assert.Empty(t, got)
}
