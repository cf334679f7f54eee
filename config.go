package goPassGen

import (
	"fmt"

	"github.com/MrEthical07/goPassGen/charset"
)

// Config defines a public type used by goPassGen APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Charset charset.Config
	Length  int
	Count   int
	Hash    HashConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
HASH CONFIG
====================================
*/

// HashConfig defines a public type used by goPassGen APIs.
//
// HashConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HashConfig struct {
	Enabled     bool
	Memory      uint32 // in KB
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig defines a public type used by goPassGen APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by goPassGen APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

func defaultConfig() Config {
	return Config{
		Charset: charset.Config{
			Lower:   true,
			Upper:   true,
			Digits:  true,
			Symbols: true,
		},
		Length: 8,
		Count:  1,
		Hash: HashConfig{
			Enabled:     false,
			Memory:      65536,
			Time:        3,
			Parallelism: 2,
			SaltLength:  16,
			KeyLength:   32,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	// Config contains no reference types beyond strings, so a value copy
	// is a deep copy.
	return cfg
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	if c.Length <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidLength, c.Length)
	}
	if c.Count <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidCount, c.Count)
	}

	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return fmt.Errorf("audit buffer size must be > 0 (got %d)", c.Audit.BufferSize)
	}

	return nil
}
