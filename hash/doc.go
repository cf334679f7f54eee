// Package hash encodes generated passwords as Argon2id digests.
//
// # Output format
//
// Digests use PHC string format:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<hash>
//
// # Architecture boundaries
//
// This package owns hashing and verification only. Whether a run emits
// digests alongside plaintext is decided by the Engine configuration.
//
// # What this package must NOT do
//
//   - Store or retrieve passwords. Callers supply plaintext and receive digests.
//   - Import any other goPassGen package.
package hash
