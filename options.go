package vecgeom

import (
	"github.com/hupe1980/vecgeom/codec"
	"github.com/hupe1980/vecgeom/random"
	"github.com/hupe1980/vecgeom/vector"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	source           *random.Source
	tolerance        float64
	workers          int
	codec            codec.Codec
	compression      codec.Compression
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		tolerance:        vector.DefaultAngleTolerance,
		workers:          1,
		codec:            codec.Default,
		compression:      codec.CompressionNone,
	}
}

// Option configures a Toolkit.
type Option func(*options)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics sink. If nil is passed, metrics are discarded.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metricsCollector = m
	}
}

// WithSource sets the random source used by unseeded Monte Carlo calls.
//
// If unset or nil, random.Default() is used.
func WithSource(src *random.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithAngleTolerance sets the cosine overshoot absorbed by AnglesBetween.
// Default: vector.DefaultAngleTolerance (1e-3).
func WithAngleTolerance(tol float64) Option {
	return func(o *options) {
		o.tolerance = tol
	}
}

// WithWorkers sets how many goroutines may rotate one large batch.
// Default: 1 (sequential). The result does not depend on this value.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithCodec configures the text codec used by Marshal and Unmarshal.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures the payload compression used by EncodeBinary.
func WithCompression(c codec.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

type callOptions struct {
	seed *uint64
}

// CallOption configures a single Monte Carlo call.
type CallOption func(*callOptions)

// Seed makes a Monte Carlo call reproducible without disturbing the source.
func Seed(seed uint64) CallOption {
	return func(o *callOptions) {
		o.seed = &seed
	}
}
