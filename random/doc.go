// Package random provides an injectable pseudo-random source with scoped
// seeding.
//
// A Source wraps a PCG generator. Unseeded draws (Do) advance its shared
// state. Seeded draws (WithSeed) snapshot that state, reseed, run the caller,
// and restore the snapshot on the way out, including when the caller returns
// an error or panics. A seeded scope therefore yields the same numbers every
// time and leaves the surrounding sequence exactly as it found it.
//
// Default returns the process-wide Source, seeded once from the runtime's
// entropy source.
//
// # Usage
//
//	src := random.Default()
//	_ = src.WithSeed(42, func(r *rand.Rand) error {
//	    angle = r.Float64() * math.Pi
//	    return nil
//	})
package random
