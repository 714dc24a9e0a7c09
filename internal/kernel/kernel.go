package kernel

import "math"

var (
	dotImpl  = dotGeneric
	axpyImpl = axpyGeneric
)

// Dot calculates the dot product of two vectors.
//
// SAFETY: assumes len(a) == len(b). Callers validate shapes.
func Dot(a, b []float64) float64 {
	return dotImpl(a, b)
}

// DotBatch calculates per-row dot products of two flattened batches.
// a and b hold len(out) rows of dimension dim each.
func DotBatch(a, b []float64, dim int, out []float64) {
	if dim <= 0 {
		return
	}
	for i := range out {
		off := i * dim
		out[i] = dotImpl(a[off:off+dim], b[off:off+dim])
	}
}

// NormBatch calculates the Euclidean norm of each row of a flattened batch.
func NormBatch(a []float64, dim int, out []float64) {
	if dim <= 0 {
		return
	}
	for i := range out {
		row := a[i*dim : (i+1)*dim]
		out[i] = math.Sqrt(dotImpl(row, row))
	}
}

// Scale writes src * s into dst.
func Scale(dst, src []float64, s float64) {
	for i := range dst {
		dst[i] = src[i] * s
	}
}

// Axpy computes dst += alpha * x.
func Axpy(dst, x []float64, alpha float64) {
	axpyImpl(dst, x, alpha)
}

func dotGeneric(a, b []float64) float64 {
	var ret float64
	for i := range a {
		ret += a[i] * b[i]
	}
	return ret
}

func dotFMA(a, b []float64) float64 {
	var ret float64
	for i := range a {
		ret = math.FMA(a[i], b[i], ret)
	}
	return ret
}

func axpyGeneric(dst, x []float64, alpha float64) {
	for i := range dst {
		dst[i] += alpha * x[i]
	}
}

func axpyFMA(dst, x []float64, alpha float64) {
	for i := range dst {
		dst[i] = math.FMA(alpha, x[i], dst[i])
	}
}
