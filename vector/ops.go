package vector

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/vecgeom/internal/kernel"
)

// DefaultAngleTolerance is the cosine overshoot AnglesBetween absorbs as
// floating-point noise.
const DefaultAngleTolerance = 1e-3

// Dot returns the dot product of each pair of corresponding vectors.
func Dot(x, y *Batch) ([]float64, error) {
	if err := check(x, y); err != nil {
		return nil, err
	}
	if err := SameShape("dot", x, y); err != nil {
		return nil, err
	}
	out := make([]float64, x.Len())
	kernel.DotBatch(x.data, y.data, x.dim, out)
	return out, nil
}

// Norm returns the Euclidean norm of each vector. A nil batch yields nil.
func Norm(x *Batch) []float64 {
	if x.Len() == 0 {
		return nil
	}
	out := make([]float64, x.Len())
	kernel.NormBatch(x.data, x.dim, out)
	return out
}

// Normalize divides each vector by its own norm.
//
// Zero-norm vectors fail the whole call with a *DegenerateVectorError.
// NaN or infinite components are not rejected and propagate into the result.
func Normalize(x *Batch) (*Batch, error) {
	if err := check(x); err != nil {
		return nil, err
	}
	out, degenerate := normalize(x)
	if degenerate != nil {
		return nil, &DegenerateVectorError{Op: "normalize", Indices: degenerate}
	}
	return out, nil
}

// normalize returns the unit batch and the positions of zero-norm vectors, if any.
func normalize(x *Batch) (*Batch, *roaring.Bitmap) {
	norms := Norm(x)
	data := make([]float64, len(x.data))
	var degenerate *roaring.Bitmap
	for i, n := range norms {
		if n == 0 {
			if degenerate == nil {
				degenerate = roaring.New()
			}
			degenerate.Add(uint32(i))
			continue
		}
		src := x.row(i)
		dst := data[i*x.dim : (i+1)*x.dim]
		for j := range dst {
			dst[j] = src[j] / n
		}
	}
	return wrap(x.dim, data), degenerate
}

// AnglesBetween returns the angle in radians, in [0, π], between each pair
// of corresponding vectors.
//
// Cosines in (1, 1+tol) are clamped to 1 and cosines in (-1-tol, -1) to -1.
// Anything further outside [-1, 1] is passed to math.Acos unchanged and
// yields NaN.
//
// tol must be zero or positive; a tolerance of 0 clamps nothing. A negative
// or NaN tol fails with ErrInvalidTolerance instead of being treated as 0.
func AnglesBetween(v0, v1 *Batch, tol float64) ([]float64, error) {
	if tol < 0 || math.IsNaN(tol) {
		return nil, ErrInvalidTolerance
	}
	if err := check(v0, v1); err != nil {
		return nil, err
	}
	if err := SameShape("angles", v0, v1); err != nil {
		return nil, err
	}

	e0, d0 := normalize(v0)
	e1, d1 := normalize(v1)
	if d0 != nil || d1 != nil {
		return nil, &DegenerateVectorError{Op: "angles", Indices: union(d0, d1)}
	}

	cos := make([]float64, v0.Len())
	kernel.DotBatch(e0.data, e1.data, e0.dim, cos)
	for i, c := range cos {
		cos[i] = math.Acos(clampCosine(c, tol))
	}
	return cos, nil
}

func clampCosine(c, tol float64) float64 {
	switch {
	case c > 1 && c < 1+tol:
		return 1
	case c < -1 && c > -1-tol:
		return -1
	default:
		return c
	}
}

func union(a, b *roaring.Bitmap) *roaring.Bitmap {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return roaring.Or(a, b)
	}
}

// Cross returns the cross product of each pair of corresponding 3D vectors.
func Cross(x, y *Batch) (*Batch, error) {
	if err := check(x, y); err != nil {
		return nil, err
	}
	if err := RequireDim(x, 3); err != nil {
		return nil, err
	}
	if err := SameShape("cross", x, y); err != nil {
		return nil, err
	}
	data := make([]float64, len(x.data))
	for i := 0; i < x.Len(); i++ {
		a, b := x.row(i), y.row(i)
		o := data[i*3 : i*3+3]
		o[0] = a[1]*b[2] - a[2]*b[1]
		o[1] = a[2]*b[0] - a[0]*b[2]
		o[2] = a[0]*b[1] - a[1]*b[0]
	}
	return wrap(3, data), nil
}

// Scale multiplies every vector by s.
func Scale(x *Batch, s float64) (*Batch, error) {
	if err := check(x); err != nil {
		return nil, err
	}
	data := make([]float64, len(x.data))
	kernel.Scale(data, x.data, s)
	return wrap(x.dim, data), nil
}

// Negate reverses every vector.
func Negate(x *Batch) (*Batch, error) {
	return Scale(x, -1)
}

// Sub returns x - y for each pair of corresponding vectors.
func Sub(x, y *Batch) (*Batch, error) {
	if err := check(x, y); err != nil {
		return nil, err
	}
	if err := SameShape("sub", x, y); err != nil {
		return nil, err
	}
	data := make([]float64, len(x.data))
	copy(data, x.data)
	kernel.Axpy(data, y.data, -1)
	return wrap(x.dim, data), nil
}

// Project returns the component of each w along the corresponding v:
// (w·v̂)v̂. The v vectors must be non-zero.
func Project(v, w *Batch) (*Batch, error) {
	if err := check(v, w); err != nil {
		return nil, err
	}
	if err := SameShape("project", v, w); err != nil {
		return nil, err
	}
	return project("project", v, w)
}

func project(op string, v, w *Batch) (*Batch, error) {
	ev, degenerate := normalize(v)
	if degenerate != nil {
		return nil, &DegenerateVectorError{Op: op, Indices: degenerate}
	}

	data := make([]float64, len(w.data))
	for i := 0; i < v.Len(); i++ {
		e := ev.row(i)
		kernel.Axpy(data[i*v.dim:(i+1)*v.dim], e, kernel.Dot(e, w.row(i)))
	}
	return wrap(v.dim, data), nil
}

// Reject returns the component of each w orthogonal to the corresponding v:
// w - (w·v̂)v̂. The v vectors must be non-zero; w may be anything.
func Reject(v, w *Batch) (*Batch, error) {
	if err := check(v, w); err != nil {
		return nil, err
	}
	if err := SameShape("reject", v, w); err != nil {
		return nil, err
	}
	p, err := project("reject", v, w)
	if err != nil {
		return nil, err
	}
	data := make([]float64, len(w.data))
	copy(data, w.data)
	kernel.Axpy(data, p.data, -1)
	return wrap(w.dim, data), nil
}
