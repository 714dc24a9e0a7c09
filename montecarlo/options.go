package montecarlo

import (
	"github.com/hupe1980/vecgeom/random"
	"github.com/hupe1980/vecgeom/rotation"
)

type options struct {
	seed    *uint64
	source  *random.Source
	workers int
}

// Option configures a Monte Carlo call.
type Option func(*options)

// WithSeed makes the call reproducible without disturbing the Source.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithSource draws from src instead of random.Default().
func WithSource(src *random.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithWorkers is forwarded to rotation.WithWorkers.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func newOptions(opts []Option) options {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = random.Default()
	}
	return o
}

func (o options) rotationOptions() []rotation.Option {
	return []rotation.Option{rotation.WithWorkers(o.workers)}
}
