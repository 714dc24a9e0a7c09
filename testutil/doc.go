// Package testutil provides testing utilities for vecgeom.
//
// This package is intended for use in tests and benchmarks only.
// It returns plain slices so that any package, including vector itself,
// can use it without an import cycle.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	rows := rng.UniformRangeVectors(100, 3) // components in [-1, 1)
//	unit := rng.UnitVectors(100, 3)         // uniform on the sphere
//	flat := testutil.Flatten(rows)
package testutil
