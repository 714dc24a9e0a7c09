// Package vecgeom provides elementwise geometry and Monte Carlo rotations
// for batches of 2D and 3D vectors.
//
// It is the numeric layer used to reposition and reorient particle and halo
// vectors: dot products, norms, normalization and inter-vector angles over
// whole batches, plus random rotations and random perpendicular directions.
//
// # Quick Start
//
//	tk := vecgeom.New()
//	v, _ := vector.FromRows([][]float64{{1, 0, 0}, {0, 3, 4}})
//
//	norms := tk.Norm(v)                                  // [1 5]
//	rotated, _ := tk.RandomRotation3D(v, vecgeom.Seed(42)) // reproducible
//	perp, _ := tk.RandomPerpendicularDirections(v)
//
// # Packages
//
//   - vector: the Batch type and elementwise primitives
//   - rotation: rotation matrices and collection rotation
//   - random: injectable source with scoped seeding
//   - montecarlo: random rotations and perpendicular directions
//   - codec: JSON and compressed binary encodings of batches
//
// # Randomness
//
// Unseeded calls advance a shared random source (random.Default unless
// WithSource is given), so results differ between runs. A seeded call
// reseeds that source for its duration only and then restores it: the same
// seed always yields bit-identical output and the shared sequence is left
// as it was.
//
// # Errors
//
// Every failure is returned immediately and no partial result is produced.
// Mismatched batch shapes fail with *ShapeMismatchError and zero-norm
// vectors that would need normalizing fail with *DegenerateVectorError.
// Cosines just outside [-1, 1] (within the angle tolerance) are clamped;
// anything further out yields NaN angles.
package vecgeom
