package random

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// Source is a mutex-guarded PCG generator. It is safe for concurrent use;
// a scope holds the lock for its whole duration.
type Source struct {
	mu   sync.Mutex
	pcg  *rand.PCG
	rand *rand.Rand
}

// New creates a Source seeded with seed.
func New(seed uint64) *Source {
	pcg := rand.NewPCG(seed, seedStream(seed))
	return &Source{pcg: pcg, rand: rand.New(pcg)}
}

var (
	defaultOnce   sync.Once
	defaultSource *Source
)

// Default returns the process-wide Source. It is created on first use and
// seeded from the runtime's entropy source, so unseeded results differ
// between runs.
func Default() *Source {
	defaultOnce.Do(func() {
		defaultSource = New(rand.Uint64())
	})
	return defaultSource
}

// Do runs fn with the shared generator; draws advance the Source.
func (s *Source) Do(fn func(r *rand.Rand) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.rand)
}

// WithSeed runs fn with the generator reseeded to seed and restores the
// previous generator state afterwards, however fn exits.
func (s *Source) WithSeed(seed uint64, fn func(r *rand.Rand) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.pcg.MarshalBinary()
	if err != nil {
		return fmt.Errorf("snapshot random state: %w", err)
	}
	defer func() {
		if rerr := s.pcg.UnmarshalBinary(saved); rerr != nil && err == nil {
			err = fmt.Errorf("restore random state: %w", rerr)
		}
	}()

	s.pcg.Seed(seed, seedStream(seed))
	return fn(s.rand)
}

// Scope runs fn under WithSeed when seed is non-nil and under Do otherwise.
func (s *Source) Scope(seed *uint64, fn func(r *rand.Rand) error) error {
	if seed != nil {
		return s.WithSeed(*seed, fn)
	}
	return s.Do(fn)
}

// seedStream derives PCG's second seed word so that a single user seed
// selects a full generator state.
func seedStream(seed uint64) uint64 {
	// splitmix64 finalizer
	z := seed + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Uniform fills dst with values in [0, 1).
func Uniform(r *rand.Rand, dst []float64) {
	for i := range dst {
		dst[i] = r.Float64()
	}
}
