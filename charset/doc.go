// Package charset builds the character material a generation run draws from.
//
// # Build model
//
// A [Config] enables any combination of the four fixed categories (lowercase,
// uppercase, digits, symbols) and may add one custom set. [Build] walks the
// categories in a fixed order and produces a [Charset]: one required set per
// enabled category (custom last), plus the deduplicated union of every
// required set as the fill alphabet.
//
// # Architecture boundaries
//
// This package is a pure transform. It never raises feasibility errors.
// Whether the alphabet is empty or the target length can accommodate the
// required sets is decided by the Engine builder, so the transform stays
// independently testable.
//
// # What this package must NOT do
//
//   - Touch a random source or generate characters.
//   - Apply the use-all-by-default policy (that belongs to the CLI layer).
//   - Import any other goPassGen package.
package charset
