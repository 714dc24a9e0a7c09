package rotation

import (
	"math"

	"github.com/hupe1980/vecgeom/vector"
)

// MatricesFromAngles3D returns one rotation per (angle, axis) pair.
// Axes are normalized first; a zero axis fails with a
// *vector.DegenerateVectorError.
func MatricesFromAngles3D(angles []float64, axes *vector.Batch) ([]Matrix3, error) {
	if err := vector.RequireDim(axes, 3); err != nil {
		return nil, err
	}
	if len(angles) != axes.Len() {
		return nil, &vector.ShapeMismatchError{
			Op:       "matrices",
			LeftLen:  len(angles),
			LeftDim:  1,
			RightLen: axes.Len(),
			RightDim: 3,
		}
	}
	units, err := vector.Normalize(axes)
	if err != nil {
		return nil, err
	}

	data := units.Data()
	out := make([]Matrix3, len(angles))
	for i, angle := range angles {
		out[i] = FromAxisAngle(angle, [3]float64{data[3*i], data[3*i+1], data[3*i+2]})
	}
	return out, nil
}

// MatricesFromAngles2D returns one counter-clockwise rotation per angle.
// A 2D rotation has no axis.
func MatricesFromAngles2D(angles []float64) []Matrix2 {
	out := make([]Matrix2, len(angles))
	for i, angle := range angles {
		out[i] = FromAngle(angle)
	}
	return out
}

// MatricesFromVectors3D returns, for each pair, the rotation that turns the
// direction of v0[i] onto the direction of v1[i]. Anti-parallel pairs rotate
// by π about an arbitrary axis perpendicular to v0[i].
func MatricesFromVectors3D(v0, v1 *vector.Batch) ([]Matrix3, error) {
	if err := vector.RequireDim(v0, 3); err != nil {
		return nil, err
	}
	angles, err := vector.AnglesBetween(v0, v1, vector.DefaultAngleTolerance)
	if err != nil {
		return nil, err
	}
	axes, err := vector.Cross(v0, v1)
	if err != nil {
		return nil, err
	}

	data := axes.Data()
	norms := vector.Norm(axes)
	for i, n := range norms {
		if n != 0 {
			continue
		}
		perp := anyPerpendicular(v0.Row(i))
		copy(data[3*i:3*i+3], perp[:])
	}

	axes, err = vector.New(3, data)
	if err != nil {
		return nil, err
	}
	return MatricesFromAngles3D(angles, axes)
}

// anyPerpendicular crosses v with the coordinate axis it is least aligned with.
func anyPerpendicular(v []float64) [3]float64 {
	ax, ay, az := math.Abs(v[0]), math.Abs(v[1]), math.Abs(v[2])
	var e [3]float64
	switch {
	case ax <= ay && ax <= az:
		e[0] = 1
	case ay <= az:
		e[1] = 1
	default:
		e[2] = 1
	}
	return [3]float64{
		v[1]*e[2] - v[2]*e[1],
		v[2]*e[0] - v[0]*e[2],
		v[0]*e[1] - v[1]*e[0],
	}
}
