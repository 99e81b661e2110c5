package pcgrid

import (
	"context"
	"math/rand/v2"

	vec3d "github.com/flywave/go3d/float64/vec3"
	"golang.org/x/sync/errgroup"
)

// VolumeBatch runs PointCloudToVolume over every cloud. Cloud i draws from
// rand.NewPCG(seed, i) where seed comes from WithSeed, so the output does
// not depend on scheduling or on WithWorkers.
func VolumeBatch(ctx context.Context, clouds [][]vec3d.T, spec GridSpec, opts ...Option) ([]*Tensor, error) {
	return runBatch(ctx, "volume_batch", clouds, opts, func(points []vec3d.T, src rand.Source, l *Logger) (*Tensor, error) {
		return PointCloudToVolume(points, spec, src, WithLogger(l))
	})
}

// ImageBatch runs PointCloudToImage over every cloud, seeded like VolumeBatch.
func ImageBatch(ctx context.Context, clouds [][]vec3d.T, spec ImageSpec, opts ...Option) ([]*Tensor, error) {
	return runBatch(ctx, "image_batch", clouds, opts, func(points []vec3d.T, src rand.Source, l *Logger) (*Tensor, error) {
		return PointCloudToImage(points, spec, src, WithLogger(l))
	})
}

// OccupancyBatch runs PointCloudToOccupancy over every cloud.
func OccupancyBatch(ctx context.Context, clouds [][]vec3d.T, resolution int, radius float64, opts ...Option) ([]*Tensor, error) {
	return runBatch(ctx, "occupancy_batch", clouds, opts, func(points []vec3d.T, _ rand.Source, l *Logger) (*Tensor, error) {
		return PointCloudToOccupancy(points, resolution, radius, WithLogger(l))
	})
}

type batchFunc func(points []vec3d.T, src rand.Source, l *Logger) (*Tensor, error)

// runBatch fans clouds out over at most o.workers goroutines. The first
// failure cancels the remaining items and is returned as a *BatchError.
func runBatch(ctx context.Context, op string, clouds [][]vec3d.T, opts []Option, fn batchFunc) ([]*Tensor, error) {
	o := newOptions(opts)
	log := o.logger.WithOperation(op)
	out := make([]*Tensor, len(clouds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := range clouds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := fn(clouds[i], rand.NewPCG(o.seed, uint64(i)), log.With("item", i))
			if err != nil {
				return &BatchError{Item: i, Err: err}
			}
			out[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Debug("batch failed", "items", len(clouds), "error", err)
		return nil, err
	}
	log.Debug("batch done", "items", len(clouds), "workers", o.workers)
	return out, nil
}
