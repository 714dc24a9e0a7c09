package testutil

import (
	"math"
	"math/rand/v2"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewPCG(seed, seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewPCG(r.seed, r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num, dimensions int) [][]float64 {
	return r.generate(num, dimensions, func(rr *rand.Rand) float64 {
		return rr.Float64()
	})
}

// UniformRangeVectors generates random vectors with values in range [-1, 1).
func (r *RNG) UniformRangeVectors(num, dimensions int) [][]float64 {
	return r.generate(num, dimensions, func(rr *rand.Rand) float64 {
		return rr.Float64()*2 - 1
	})
}

// ScaledVectors generates random vectors with values in range [-scale, scale).
func (r *RNG) ScaledVectors(num, dimensions int, scale float64) [][]float64 {
	return r.generate(num, dimensions, func(rr *rand.Rand) float64 {
		return (rr.Float64()*2 - 1) * scale
	})
}

// GaussianVectors generates random vectors with values from a standard normal distribution.
func (r *RNG) GaussianVectors(num, dimensions int) [][]float64 {
	return r.generate(num, dimensions, func(rr *rand.Rand) float64 {
		return rr.NormFloat64()
	})
}

// UnitVectors generates L2-normalized random vectors (on the hypersphere).
// Uses Gaussian distribution for uniform distribution on the sphere.
func (r *RNG) UnitVectors(num, dimensions int) [][]float64 {
	vectors := r.GaussianVectors(num, dimensions)
	for _, vec := range vectors {
		var norm float64
		for _, v := range vec {
			norm += v * v
		}
		if norm == 0 {
			vec[0], norm = 1, 1
		}
		inv := 1 / math.Sqrt(norm)
		for j := range vec {
			vec[j] *= inv
		}
	}
	return vectors
}

func (r *RNG) generate(num, dimensions int, draw func(*rand.Rand) float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)
	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = draw(r.rand)
		}
		vectors[i] = vec
	}
	return vectors
}

// Flatten concatenates rows into one row-major slice.
func Flatten(rows [][]float64) []float64 {
	var n int
	for _, row := range rows {
		n += len(row)
	}
	out := make([]float64, 0, n)
	for _, row := range rows {
		out = append(out, row...)
	}
	return out
}

// Norm returns the Euclidean norm of v.
func Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
