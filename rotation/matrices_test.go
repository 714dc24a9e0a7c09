package rotation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecgeom/testutil"
	"github.com/hupe1980/vecgeom/vector"
)

func TestMatricesFromAngles3D(t *testing.T) {
	// Unnormalized axes are accepted.
	axes := vector.MustOf3([3]float64{0, 0, 3}, [3]float64{2, 0, 0})
	ms, err := MatricesFromAngles3D([]float64{math.Pi / 2, math.Pi / 2}, axes)
	require.NoError(t, err)
	require.Len(t, ms, 2)

	got := ms[0].Apply([3]float64{1, 0, 0})
	assert.InDeltaSlice(t, []float64{0, 1, 0}, got[:], 1e-12)
	got = ms[1].Apply([3]float64{0, 1, 0})
	assert.InDeltaSlice(t, []float64{0, 0, 1}, got[:], 1e-12)
}

func TestMatricesFromAngles3DErrors(t *testing.T) {
	_, err := MatricesFromAngles3D([]float64{1}, vector.MustOf3([3]float64{0, 0, 0}))
	assert.ErrorIs(t, err, vector.ErrDegenerateVector)

	_, err = MatricesFromAngles3D([]float64{1, 2}, vector.MustOf3([3]float64{0, 0, 1}))
	assert.ErrorIs(t, err, vector.ErrShapeMismatch)

	b2, err := vector.Of2([2]float64{1, 0})
	require.NoError(t, err)
	_, err = MatricesFromAngles3D([]float64{1}, b2)
	assert.ErrorIs(t, err, vector.ErrInvalidDimension)
}

func TestMatricesFromAngles2D(t *testing.T) {
	ms := MatricesFromAngles2D([]float64{0, math.Pi})
	require.Len(t, ms, 2)
	assert.Equal(t, Matrix2{{1, 0}, {0, 1}}, ms[0])

	got := ms[1].Apply([2]float64{1, 2})
	assert.InDeltaSlice(t, []float64{-1, -2}, got[:], 1e-15)
}

func TestMatricesFromVectors3D(t *testing.T) {
	rows0 := testutil.NewRNG(1).UniformRangeVectors(200, 3)
	rows1 := testutil.NewRNG(2).UniformRangeVectors(200, 3)
	// Parallel and anti-parallel pairs.
	rows1[0] = []float64{2 * rows0[0][0], 2 * rows0[0][1], 2 * rows0[0][2]}
	rows1[1] = []float64{-rows0[1][0], -rows0[1][1], -rows0[1][2]}

	v0, err := vector.FromRows(rows0)
	require.NoError(t, err)
	v1, err := vector.FromRows(rows1)
	require.NoError(t, err)

	ms, err := MatricesFromVectors3D(v0, v1)
	require.NoError(t, err)

	rotated, err := RotateCollection3D(ms, v0)
	require.NoError(t, err)

	angles, err := vector.AnglesBetween(rotated, v1, vector.DefaultAngleTolerance)
	require.NoError(t, err)
	for i, a := range angles {
		assert.InDelta(t, 0, a, 1e-6, "pair %d", i)
		assertOrthonormal(t, ms[i])
	}
}

func TestAnyPerpendicular(t *testing.T) {
	for _, v := range [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}, {-3, 0.5, 2}} {
		p := anyPerpendicular(v)
		assert.InDelta(t, 0, p[0]*v[0]+p[1]*v[1]+p[2]*v[2], 1e-15)
		assert.Greater(t, testutil.Norm(p[:]), 0.0)
	}
}
