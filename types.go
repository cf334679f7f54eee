package goPassGen

// Source defines a public type used by goPassGen APIs.
//
// Source is the random capability the engine consumes: uniform integer
// selection and an unbiased shuffle. The default implementation is backed by
// crypto/rand; tests substitute a seeded deterministic source. A single
// Source is shared across every draw within a run and is not assumed to be
// safe for concurrent use.
type Source interface {
	// IntN returns a uniformly distributed integer in [0, n). n must be > 0.
	IntN(n int) int
	// Shuffle applies a uniform random permutation over n elements.
	Shuffle(n int, swap func(i, j int))
}
