package vecgeom

import (
	"github.com/hupe1980/vecgeom/codec"
	"github.com/hupe1980/vecgeom/vector"
)

// Sentinel errors, matchable with errors.Is.
var (
	// ErrEmptyBatch is returned when a batch would hold no vectors.
	ErrEmptyBatch = vector.ErrEmptyBatch

	// ErrShapeMismatch is returned when paired batches differ in length or dimension.
	ErrShapeMismatch = vector.ErrShapeMismatch

	// ErrInvalidDimension is returned for an unusable vector dimension.
	ErrInvalidDimension = vector.ErrInvalidDimension

	// ErrDegenerateVector is returned when a zero-norm vector must be normalized.
	ErrDegenerateVector = vector.ErrDegenerateVector

	// ErrInvalidTolerance is returned for a negative or NaN angle tolerance.
	ErrInvalidTolerance = vector.ErrInvalidTolerance

	// ErrInvalidFrame is returned when decoding a malformed binary frame.
	ErrInvalidFrame = codec.ErrInvalidFrame
)

// Typed errors, extractable with errors.As.
type (
	// ShapeMismatchError carries both shapes of a failed pairing.
	ShapeMismatchError = vector.ShapeMismatchError

	// InvalidDimensionError carries the offending and expected dimension.
	InvalidDimensionError = vector.InvalidDimensionError

	// DegenerateVectorError carries every zero-norm position.
	DegenerateVectorError = vector.DegenerateVectorError
)
