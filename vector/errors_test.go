package vector

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
)

func TestShapeMismatchError(t *testing.T) {
	err := &ShapeMismatchError{Op: "dot", LeftLen: 2, LeftDim: 3, RightLen: 1, RightDim: 3}
	assert.Equal(t, "dot: shape mismatch: (2, 3) vs (1, 3)", err.Error())
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.NotErrorIs(t, err, ErrDegenerateVector)
}

func TestDegenerateVectorError(t *testing.T) {
	single := &DegenerateVectorError{Op: "normalize", Indices: roaring.BitmapOf(4)}
	assert.Equal(t, "normalize: zero-norm vector at index 4", single.Error())
	assert.ErrorIs(t, single, ErrDegenerateVector)

	many := &DegenerateVectorError{Op: "angles", Indices: roaring.BitmapOf(7, 2, 9)}
	assert.Equal(t, "angles: 3 zero-norm vectors, first at index 2", many.Error())
	assert.Equal(t, []int{2, 7, 9}, many.Positions())
}

func TestInvalidDimensionError(t *testing.T) {
	assert.Equal(t, "invalid dimension: 0", (&InvalidDimensionError{}).Error())
	assert.Equal(t, "invalid dimension: expected 3, got 2",
		(&InvalidDimensionError{Dimension: 2, Expected: 3}).Error())
}

func TestRequireDim(t *testing.T) {
	b := MustOf3([3]float64{1, 2, 3})
	assert.NoError(t, RequireDim(b, 3))
	assert.ErrorIs(t, RequireDim(b, 2), ErrInvalidDimension)
}
