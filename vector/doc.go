// Package vector provides elementwise geometry over batches of vectors.
//
// A Batch holds N vectors of a fixed dimension D in one row-major slice.
// Every operation pairs vectors by position and returns freshly allocated
// results; inputs are never modified.
//
// # Operations
//
//   - Dot: per-pair dot product
//   - Norm: per-vector Euclidean norm
//   - Normalize: per-vector unit scaling
//   - AnglesBetween: per-pair angle in radians, [0, π]
//   - Cross, Scale, Negate, Reject: helpers for rotation code
//
// # Degenerate vectors
//
// Zero-norm vectors cannot be normalized. Every operation that normalizes
// fails with a *DegenerateVectorError listing all offending positions rather
// than producing NaN components.
//
// # Usage
//
//	x, _ := vector.FromRows([][]float64{{1, 0, 0}, {3, 4, 0}})
//	norms := vector.Norm(x)                  // [1 5]
//	unit, _ := vector.Normalize(x)
//	angles, _ := vector.AnglesBetween(x, unit, vector.DefaultAngleTolerance)
package vector
