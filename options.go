package pcgrid

import (
	"runtime"
)

type options struct {
	logger  *Logger
	workers int
	seed    uint64
}

// Option configures the binning entry points.
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{
		logger:  NoopLogger(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger used for debug output.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithWorkers bounds the number of clouds a batch call processes at once.
// Values below 1 fall back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithSeed sets the seed batch calls derive per-item random sources from.
// Item i draws from rand.NewPCG(seed, i).
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}
