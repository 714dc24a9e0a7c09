package vector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		data := []float64{1, 2, 3, 4, 5, 6}
		b, err := New(3, data)
		require.NoError(t, err)
		assert.Equal(t, 2, b.Len())
		assert.Equal(t, 3, b.Dim())
		assert.Equal(t, []float64{4, 5, 6}, b.Row(1))

		// Input is copied.
		data[0] = 42
		assert.Equal(t, 1.0, b.Row(0)[0])
	})

	t.Run("Ragged", func(t *testing.T) {
		_, err := New(3, []float64{1, 2, 3, 4})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidDimension)
		var dimErr *InvalidDimensionError
		require.ErrorAs(t, err, &dimErr)
		assert.NotNil(t, errors.Unwrap(dimErr))
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := New(3, nil)
		assert.ErrorIs(t, err, ErrEmptyBatch)
	})

	t.Run("ZeroDim", func(t *testing.T) {
		_, err := New(0, []float64{1})
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})
}

func TestFromRows(t *testing.T) {
	b, err := FromRows([][]float64{{1, 0, 0}, {0, 1, 0}})
	require.NoError(t, err)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}}, b.Rows())

	_, err = FromRows([][]float64{{1, 0, 0}, {0, 1}})
	var dimErr *InvalidDimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 3, dimErr.Expected)
	assert.Equal(t, 2, dimErr.Dimension)
	assert.Equal(t, "invalid dimension: expected 3, got 2", dimErr.Error())

	_, err = FromRows(nil)
	assert.ErrorIs(t, err, ErrEmptyBatch)

	_, err = FromRows([][]float64{{}})
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestFromVectorPromotesToBatchOfOne(t *testing.T) {
	b, err := FromVector([]float64{3, 4, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 3, b.Dim())
}

func TestOf(t *testing.T) {
	b2, err := Of2([2]float64{1, 2}, [2]float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2, b2.Dim())
	assert.Equal(t, []float64{1, 2, 3, 4}, b2.Data())

	b3, err := Of3([3]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, b3.Dim())

	_, err = Of2()
	assert.ErrorIs(t, err, ErrEmptyBatch)
	_, err = Of3()
	assert.ErrorIs(t, err, ErrEmptyBatch)

	assert.Panics(t, func() { MustOf3() })
}

func TestAccessorsReturnCopies(t *testing.T) {
	b := MustOf3([3]float64{1, 2, 3})

	b.Row(0)[0] = 9
	b.Data()[1] = 9
	b.Rows()[0][2] = 9

	assert.Equal(t, []float64{1, 2, 3}, b.Row(0))
}

func TestEqual(t *testing.T) {
	a := MustOf3([3]float64{1, 2, 3})
	b := MustOf3([3]float64{1, 2, 3})
	c := MustOf3([3]float64{1, 2, 4})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))

	b2, err := Of2([2]float64{1, 2})
	require.NoError(t, err)
	assert.False(t, a.Equal(b2))
}

func TestNilBatch(t *testing.T) {
	var b *Batch
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Dim())
	assert.Nil(t, b.Rows())
	assert.Nil(t, b.Data())
	assert.Equal(t, "Batch(nil)", b.String())
	assert.Nil(t, Norm(b))

	_, err := Dot(b, b)
	assert.ErrorIs(t, err, ErrEmptyBatch)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Batch(1, 3)[[1 2 3]]", MustOf3([3]float64{1, 2, 3}).String())
}
