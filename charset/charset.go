package charset

import "errors"

const (
	// Lowercase is an exported constant or variable used by the generation engine.
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	// Uppercase is an exported constant or variable used by the generation engine.
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// Digits is an exported constant or variable used by the generation engine.
	Digits = "0123456789"
	// Symbols is an exported constant or variable used by the generation engine.
	Symbols = "!@#$%^&*()_-+=[]{}|;:,.<>?"
)

// Config defines a public type used by goPassGen APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Lower   bool
	Upper   bool
	Digits  bool
	Symbols bool
	Custom  string
}

// Charset defines a public type used by goPassGen APIs.
//
// Charset instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Charset struct {
	// Required holds one set per enabled category, custom set last.
	// Each set contributes at least one character to every password.
	Required [][]byte
	// Alphabet is the deduplicated union of all required sets, in
	// first-seen order. Remaining positions are filled from it.
	Alphabet []byte
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func Build(cfg Config) Charset {
	var required [][]byte

	categories := []struct {
		enabled bool
		set     string
	}{
		{cfg.Lower, Lowercase},
		{cfg.Upper, Uppercase},
		{cfg.Digits, Digits},
		{cfg.Symbols, Symbols},
	}

	for _, c := range categories {
		if c.enabled {
			required = append(required, []byte(c.set))
		}
	}

	if cfg.Custom != "" {
		required = append(required, []byte(cfg.Custom))
	}

	var (
		alphabet []byte
		seen     [256]bool
	)
	for _, set := range required {
		for _, b := range set {
			if !seen[b] {
				seen[b] = true
				alphabet = append(alphabet, b)
			}
		}
	}

	return Charset{
		Required: required,
		Alphabet: alphabet,
	}
}

// ValidateCustom describes the validatecustom operation and its observable behavior.
//
// ValidateCustom may return an error when input validation, dependency calls, or security checks fail.
// ValidateCustom does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func ValidateCustom(s string) error {
	if s == "" {
		return errors.New("custom character set cannot be empty")
	}

	for i := 0; i < len(s); i++ {
		b := s[i]
		if b > 0x7f {
			return errors.New("custom character set can only contain ASCII characters")
		}
		if b == ' ' || b == '\t' || b == '\n' || b == '\v' || b == '\f' || b == '\r' {
			return errors.New("custom character set cannot contain whitespace characters")
		}
		if b < 0x20 || b == 0x7f {
			return errors.New("custom character set cannot contain control characters")
		}
	}

	return nil
}
