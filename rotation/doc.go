// Package rotation builds rotation matrices and applies them to vector batches.
//
// 3D matrices are built from an angle and an axis (right-handed, Rodrigues'
// formula) or from a pair of vectors. 2D matrices need only an angle.
// Rotating a collection accepts either one matrix for every vector or one
// matrix per vector.
//
//	ms, _ := rotation.MatricesFromAngles3D([]float64{math.Pi / 2}, axes)
//	out, _ := rotation.RotateCollection3D(ms, vectors, rotation.WithWorkers(4))
package rotation
