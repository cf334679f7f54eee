// Package internal contains helper utilities that are intentionally private to goPassGen,
// including the crypto/rand-backed random source used by default.
//
// # What this package must NOT do
//
//   - Export types that appear in the public goPassGen API.
//   - Be imported by any package outside the goPassGen module.
package internal
