// Package goPassGen generates random passwords under character-category
// constraints: every enabled category (and one optional custom set) is
// guaranteed at least one character in every password, remaining positions
// are filled from the combined alphabet, and an unbiased shuffle removes any
// positional pattern.
//
// The package is configured once through [Builder] and then treated as
// immutable: a built [Engine] holds its character material, length, and count
// for the lifetime of the run.
//
// # Architecture boundaries
//
// goPassGen is the public surface. It exposes [Engine], [Builder], [Config],
// the [Source] random capability, and audit/metrics value types. Character
// material lives in the charset package, digest encoding in the hash package,
// and the default crypto/rand source under internal/.
//
// # What this package must NOT do
//
//   - Apply CLI policy (minimum length 6, use-all-by-default). The engine
//     enforces only structural feasibility.
//   - Reach for a global random source. The engine draws from the injected
//     [Source] so tests can substitute a seeded one.
//   - Claim key-derivation-grade guarantees. The default source is
//     crypto/rand, but this is a utility generator, not a KDF.
package goPassGen
