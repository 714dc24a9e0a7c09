package random

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draw(t *testing.T, s *Source, n int) []float64 {
	t.Helper()
	out := make([]float64, n)
	require.NoError(t, s.Do(func(r *rand.Rand) error {
		Uniform(r, out)
		return nil
	}))
	return out
}

func drawSeeded(t *testing.T, s *Source, seed uint64, n int) []float64 {
	t.Helper()
	out := make([]float64, n)
	require.NoError(t, s.WithSeed(seed, func(r *rand.Rand) error {
		Uniform(r, out)
		return nil
	}))
	return out
}

func TestNewIsDeterministic(t *testing.T) {
	assert.Equal(t, draw(t, New(1), 8), draw(t, New(1), 8))
	assert.NotEqual(t, draw(t, New(1), 8), draw(t, New(2), 8))
}

func TestDoAdvancesState(t *testing.T) {
	s := New(3)
	assert.NotEqual(t, draw(t, s, 4), draw(t, s, 4))
}

func TestWithSeedIsReproducible(t *testing.T) {
	s := New(7)
	first := drawSeeded(t, s, 42, 16)
	second := drawSeeded(t, s, 42, 16)
	assert.Equal(t, first, second)

	// Independent of the Source it runs on.
	assert.Equal(t, first, drawSeeded(t, New(99), 42, 16))

	assert.NotEqual(t, first, drawSeeded(t, s, 43, 16))
}

func TestWithSeedRestoresState(t *testing.T) {
	reference := New(11)
	expected := draw(t, reference, 10)

	s := New(11)
	head := draw(t, s, 5)
	_ = drawSeeded(t, s, 42, 100)
	tail := draw(t, s, 5)

	assert.Equal(t, expected, append(head, tail...))
}

func TestWithSeedRestoresStateOnError(t *testing.T) {
	reference := New(5)
	expected := draw(t, reference, 4)

	s := New(5)
	boom := errors.New("boom")
	err := s.WithSeed(42, func(r *rand.Rand) error {
		_ = r.Float64()
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, expected, draw(t, s, 4))
}

func TestWithSeedRestoresStateOnPanic(t *testing.T) {
	reference := New(6)
	expected := draw(t, reference, 4)

	s := New(6)
	assert.Panics(t, func() {
		_ = s.WithSeed(42, func(r *rand.Rand) error {
			_ = r.Float64()
			panic("boom")
		})
	})
	assert.Equal(t, expected, draw(t, s, 4))
}

func TestScope(t *testing.T) {
	seed := uint64(42)
	s := New(1)

	var seeded, unseeded float64
	require.NoError(t, s.Scope(&seed, func(r *rand.Rand) error {
		seeded = r.Float64()
		return nil
	}))
	assert.Equal(t, drawSeeded(t, New(8), 42, 1)[0], seeded)

	require.NoError(t, s.Scope(nil, func(r *rand.Rand) error {
		unseeded = r.Float64()
		return nil
	}))
	assert.Equal(t, draw(t, New(1), 1)[0], unseeded)
}

func TestDefault(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestUniformRange(t *testing.T) {
	for _, v := range draw(t, New(9), 1000) {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
