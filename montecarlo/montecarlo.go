package montecarlo

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/hupe1980/vecgeom/random"
	"github.com/hupe1980/vecgeom/rotation"
	"github.com/hupe1980/vecgeom/vector"
)

// RandomRotation3D rotates every vector in the (N, 3) batch v by one random
// rotation: a random axis and an angle drawn uniformly from [0, π).
func RandomRotation3D(v *vector.Batch, opts ...Option) (*vector.Batch, error) {
	if err := vector.RequireDim(v, 3); err != nil {
		return nil, err
	}
	o := newOptions(opts)

	var (
		raw   [3]float64
		angle float64
	)
	if err := o.source.Scope(o.seed, func(r *rand.Rand) error {
		random.Uniform(r, raw[:])
		angle = r.Float64() * math.Pi
		return nil
	}); err != nil {
		return nil, err
	}

	axis, err := rescaledAxis(raw)
	if err != nil {
		return nil, err
	}
	ms, err := rotation.MatricesFromAngles3D([]float64{angle}, axis)
	if err != nil {
		return nil, fmt.Errorf("random rotation axis: %w", err)
	}
	return rotation.RotateCollection3D(ms, v, o.rotationOptions()...)
}

// rescaledAxis maps a uniform draw to the rotation axis: normalize, then
// x*2-1 per component. MatricesFromAngles3D renormalizes the result.
func rescaledAxis(raw [3]float64) (*vector.Batch, error) {
	unit, err := vector.Normalize(vector.MustOf3(raw))
	if err != nil {
		return nil, fmt.Errorf("random rotation axis: %w", err)
	}
	d := unit.Data()
	for i := range d {
		d[i] = d[i]*2 - 1
	}
	return vector.New(3, d)
}

// RandomRotation2D rotates every vector in the (N, 2) batch v by one angle
// drawn uniformly from [0, π).
func RandomRotation2D(v *vector.Batch, opts ...Option) (*vector.Batch, error) {
	if err := vector.RequireDim(v, 2); err != nil {
		return nil, err
	}
	o := newOptions(opts)

	var angle float64
	if err := o.source.Scope(o.seed, func(r *rand.Rand) error {
		angle = r.Float64() * math.Pi
		return nil
	}); err != nil {
		return nil, err
	}

	ms := rotation.MatricesFromAngles2D([]float64{angle})
	return rotation.RotateCollection2D(ms, v, o.rotationOptions()...)
}

// RandomPerpendicularDirections returns, for each vector in the (N, 3) batch
// v, a unit vector orthogonal to it.
//
// A zero input vector, or a random draw that happens to be parallel to its
// input, fails with a *vector.DegenerateVectorError.
func RandomPerpendicularDirections(v *vector.Batch, opts ...Option) (*vector.Batch, error) {
	if err := vector.RequireDim(v, 3); err != nil {
		return nil, err
	}
	o := newOptions(opts)

	w := make([]float64, 3*v.Len())
	if err := o.source.Scope(o.seed, func(r *rand.Rand) error {
		random.Uniform(r, w)
		return nil
	}); err != nil {
		return nil, err
	}

	draws, err := vector.New(3, w)
	if err != nil {
		return nil, err
	}
	ew, err := vector.Normalize(draws)
	if err != nil {
		return nil, fmt.Errorf("perpendicular directions: %w", err)
	}
	perp, err := vector.Reject(v, ew)
	if err != nil {
		return nil, fmt.Errorf("perpendicular directions: %w", err)
	}
	out, err := vector.Normalize(perp)
	if err != nil {
		return nil, fmt.Errorf("perpendicular directions: %w", err)
	}
	return out, nil
}
