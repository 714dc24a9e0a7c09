package vector

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

var (
	// ErrEmptyBatch is returned when a batch would hold no vectors.
	ErrEmptyBatch = errors.New("vector batch must contain at least one vector")

	// ErrShapeMismatch matches every *ShapeMismatchError.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidDimension matches every *InvalidDimensionError.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrDegenerateVector matches every *DegenerateVectorError.
	ErrDegenerateVector = errors.New("degenerate vector")

	// ErrInvalidTolerance is returned for a negative or NaN angle tolerance.
	ErrInvalidTolerance = errors.New("angle tolerance must be a non-negative number")
)

// ShapeMismatchError indicates that two paired batches differ in length or dimension.
type ShapeMismatchError struct {
	Op       string
	LeftLen  int
	LeftDim  int
	RightLen int
	RightDim int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: shape mismatch: (%d, %d) vs (%d, %d)",
		e.Op, e.LeftLen, e.LeftDim, e.RightLen, e.RightDim)
}

// Is reports whether target is ErrShapeMismatch.
func (e *ShapeMismatchError) Is(target error) bool { return target == ErrShapeMismatch }

// InvalidDimensionError indicates a vector dimensionality that cannot be used.
//
// Expected is zero when any positive dimension would have been accepted.
// The original underlying error (if any) can be accessed via errors.Unwrap.
type InvalidDimensionError struct {
	Dimension int
	Expected  int
	cause     error
}

func (e *InvalidDimensionError) Error() string {
	if e.Expected > 0 {
		return fmt.Sprintf("invalid dimension: expected %d, got %d", e.Expected, e.Dimension)
	}
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *InvalidDimensionError) Unwrap() error { return e.cause }

// Is reports whether target is ErrInvalidDimension.
func (e *InvalidDimensionError) Is(target error) bool { return target == ErrInvalidDimension }

// DegenerateVectorError reports the positions of zero-norm vectors that
// an operation needed to normalize.
//
// Positions are stored as uint32, which bounds batches to 2^32 vectors.
type DegenerateVectorError struct {
	Op      string
	Indices *roaring.Bitmap
}

func (e *DegenerateVectorError) Error() string {
	n := e.Indices.GetCardinality()
	if n == 1 {
		return fmt.Sprintf("%s: zero-norm vector at index %d", e.Op, e.Indices.Minimum())
	}
	return fmt.Sprintf("%s: %d zero-norm vectors, first at index %d", e.Op, n, e.Indices.Minimum())
}

// Is reports whether target is ErrDegenerateVector.
func (e *DegenerateVectorError) Is(target error) bool { return target == ErrDegenerateVector }

// Positions returns the offending indices in ascending order.
func (e *DegenerateVectorError) Positions() []int {
	out := make([]int, 0, e.Indices.GetCardinality())
	it := e.Indices.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// RequireDim returns an *InvalidDimensionError unless b has dimension dim.
func RequireDim(b *Batch, dim int) error {
	if b.Dim() != dim {
		return &InvalidDimensionError{Dimension: b.Dim(), Expected: dim}
	}
	return nil
}

// SameShape returns a *ShapeMismatchError unless x and y have equal length and dimension.
func SameShape(op string, x, y *Batch) error {
	if x.Len() != y.Len() || x.Dim() != y.Dim() {
		return &ShapeMismatchError{
			Op:       op,
			LeftLen:  x.Len(),
			LeftDim:  x.Dim(),
			RightLen: y.Len(),
			RightDim: y.Dim(),
		}
	}
	return nil
}
