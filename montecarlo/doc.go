// Package montecarlo applies random rotations to vector batches and draws
// random directions perpendicular to given vectors.
//
// All draws happen inside one random.Source scope per call. With WithSeed the
// call is reproducible and leaves the Source's own sequence untouched; without
// it the draws advance the Source (random.Default unless WithSource is given).
//
// # Axis distribution
//
// RandomRotation3D draws three uniforms in [0, 1), normalizes them, then maps
// each component through x*2-1. The mapped vector is not unit length and is
// biased towards the (1, 1, 1) octant; it is renormalized before being used
// as a rotation axis. The draw sequence, and therefore seeded output, is
// stable across releases.
package montecarlo
