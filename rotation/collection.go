package rotation

import (
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vecgeom/vector"
)

// minParallelVectors is the batch size below which workers are not used.
const minParallelVectors = 4096

type options struct {
	workers int
}

// Option configures RotateCollection3D and RotateCollection2D.
type Option func(*options)

// WithWorkers splits large batches across up to n goroutines.
// Values below 2 rotate sequentially (the default). The result does not
// depend on n.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// RotateCollection3D applies ms to the 3D vectors in v. ms holds either one
// matrix, applied to every vector, or exactly one matrix per vector.
func RotateCollection3D(ms []Matrix3, v *vector.Batch, opts ...Option) (*vector.Batch, error) {
	if err := vector.RequireDim(v, 3); err != nil {
		return nil, err
	}
	if err := matchCount(len(ms), v); err != nil {
		return nil, err
	}

	in := v.Data()
	out := make([]float64, len(in))
	err := run(v.Len(), opts, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			m := ms[0]
			if len(ms) > 1 {
				m = ms[i]
			}
			r := m.Apply([3]float64{in[3*i], in[3*i+1], in[3*i+2]})
			copy(out[3*i:3*i+3], r[:])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return vector.New(3, out)
}

// RotateCollection2D applies ms to the 2D vectors in v, with the same
// matrix-count rule as RotateCollection3D.
func RotateCollection2D(ms []Matrix2, v *vector.Batch, opts ...Option) (*vector.Batch, error) {
	if err := vector.RequireDim(v, 2); err != nil {
		return nil, err
	}
	if err := matchCount(len(ms), v); err != nil {
		return nil, err
	}

	in := v.Data()
	out := make([]float64, len(in))
	err := run(v.Len(), opts, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			m := ms[0]
			if len(ms) > 1 {
				m = ms[i]
			}
			r := m.Apply([2]float64{in[2*i], in[2*i+1]})
			copy(out[2*i:2*i+2], r[:])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return vector.New(2, out)
}

func matchCount(matrices int, v *vector.Batch) error {
	if matrices == 1 || (matrices > 0 && matrices == v.Len()) {
		return nil
	}
	return &vector.ShapeMismatchError{
		Op:       "rotate",
		LeftLen:  matrices,
		LeftDim:  v.Dim(),
		RightLen: v.Len(),
		RightDim: v.Dim(),
	}
}

// run calls fn over [0, n) in contiguous chunks, concurrently when configured,
// and returns the first error any chunk reports.
func run(n int, opts []Option, fn func(lo, hi int) error) error {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 2 || n < minParallelVectors {
		return fn(0, n)
	}

	chunk := (n + o.workers - 1) / o.workers
	var g errgroup.Group
	g.SetLimit(o.workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			return fn(lo, hi)
		})
	}
	return g.Wait()
}
