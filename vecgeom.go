package vecgeom

import (
	"time"

	"github.com/hupe1980/vecgeom/codec"
	"github.com/hupe1980/vecgeom/montecarlo"
	"github.com/hupe1980/vecgeom/random"
	"github.com/hupe1980/vecgeom/vector"
)

// Toolkit bundles the vector operations with shared configuration,
// logging and metrics. It holds no per-call state and is safe for
// concurrent use.
type Toolkit struct {
	logger      *Logger
	metrics     MetricsCollector
	source      *random.Source
	tolerance   float64
	workers     int
	codec       codec.Codec
	compression codec.Compression
}

// New creates a Toolkit.
func New(optFns ...Option) *Toolkit {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.source == nil {
		opts.source = random.Default()
	}
	return &Toolkit{
		logger:      opts.logger,
		metrics:     opts.metricsCollector,
		source:      opts.source,
		tolerance:   opts.tolerance,
		workers:     opts.workers,
		codec:       opts.codec,
		compression: opts.compression,
	}
}

func (t *Toolkit) observe(op string, in *vector.Batch, start time.Time, err error) {
	t.metrics.RecordOperation(op, in.Len(), time.Since(start), err)
	t.logger.LogOperation(op, in.Len(), in.Dim(), err)
}

// Dot returns the elementwise dot product of x and y.
func (t *Toolkit) Dot(x, y *vector.Batch) (out []float64, err error) {
	defer func(start time.Time) { t.observe("dot", x, start, err) }(time.Now())
	return vector.Dot(x, y)
}

// Norm returns the Euclidean norm of each vector in x.
func (t *Toolkit) Norm(x *vector.Batch) []float64 {
	start := time.Now()
	out := vector.Norm(x)
	t.observe("norm", x, start, nil)
	return out
}

// Normalize returns x with every vector scaled to unit length.
func (t *Toolkit) Normalize(x *vector.Batch) (out *vector.Batch, err error) {
	defer func(start time.Time) { t.observe("normalize", x, start, err) }(time.Now())
	return vector.Normalize(x)
}

// AnglesBetween returns the per-pair angles between v0 and v1 using the
// configured tolerance.
func (t *Toolkit) AnglesBetween(v0, v1 *vector.Batch) (out []float64, err error) {
	defer func(start time.Time) { t.observe("angles", v0, start, err) }(time.Now())
	return vector.AnglesBetween(v0, v1, t.tolerance)
}

// RandomRotation3D applies one random rotation to every vector in v.
func (t *Toolkit) RandomRotation3D(v *vector.Batch, opts ...CallOption) (out *vector.Batch, err error) {
	defer func(start time.Time) { t.observe("random_rotation_3d", v, start, err) }(time.Now())
	return montecarlo.RandomRotation3D(v, t.monteCarloOptions("random_rotation_3d", opts)...)
}

// RandomRotation2D applies one random rotation to every vector in v.
func (t *Toolkit) RandomRotation2D(v *vector.Batch, opts ...CallOption) (out *vector.Batch, err error) {
	defer func(start time.Time) { t.observe("random_rotation_2d", v, start, err) }(time.Now())
	return montecarlo.RandomRotation2D(v, t.monteCarloOptions("random_rotation_2d", opts)...)
}

// RandomPerpendicularDirections returns a random unit vector orthogonal to
// each vector in v.
func (t *Toolkit) RandomPerpendicularDirections(v *vector.Batch, opts ...CallOption) (out *vector.Batch, err error) {
	defer func(start time.Time) { t.observe("random_perpendicular", v, start, err) }(time.Now())
	return montecarlo.RandomPerpendicularDirections(v, t.monteCarloOptions("random_perpendicular", opts)...)
}

func (t *Toolkit) monteCarloOptions(op string, opts []CallOption) []montecarlo.Option {
	var co callOptions
	for _, fn := range opts {
		fn(&co)
	}
	t.logger.LogRandomDraw(op, co.seed)

	out := []montecarlo.Option{
		montecarlo.WithSource(t.source),
		montecarlo.WithWorkers(t.workers),
	}
	if co.seed != nil {
		out = append(out, montecarlo.WithSeed(*co.seed))
	}
	return out
}

// Marshal encodes b with the configured text codec.
func (t *Toolkit) Marshal(b *vector.Batch) ([]byte, error) {
	data, err := t.codec.Marshal(b)
	t.logger.LogCodec("marshal", t.codec.Name(), len(data), err)
	return data, err
}

// Unmarshal decodes a batch with the configured text codec.
func (t *Toolkit) Unmarshal(data []byte) (*vector.Batch, error) {
	b, err := t.codec.Unmarshal(data)
	t.logger.LogCodec("unmarshal", t.codec.Name(), len(data), err)
	return b, err
}

// EncodeBinary writes b as a binary frame with the configured compression.
func (t *Toolkit) EncodeBinary(b *vector.Batch) ([]byte, error) {
	data, err := codec.EncodeBatch(b, t.compression)
	t.logger.LogCodec("encode", t.compression.String(), len(data), err)
	return data, err
}

// DecodeBinary reads a binary frame.
func (t *Toolkit) DecodeBinary(data []byte) (*vector.Batch, error) {
	b, err := codec.DecodeBatch(data)
	t.logger.LogCodec("decode", "binary", len(data), err)
	return b, err
}
