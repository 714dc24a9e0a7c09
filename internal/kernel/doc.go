// Package kernel provides the float64 inner loops used by the vector package.
//
// # Implementations
//
//   - generic: plain multiply-add in pure Go
//   - fma: fused multiply-add (math.FMA), selected when the CPU has hardware FMA
//
// Runtime CPU feature detection (golang.org/x/sys/cpu) selects the
// implementation once at package init. Set VECGEOM_KERNEL=generic|fma to
// override; an override naming an unavailable implementation is ignored.
//
// Within one process the selected kernel is fixed, so repeated calls with the
// same inputs are bit-identical.
package kernel
