package goPassGen

import (
	"errors"
	"fmt"
	"io"

	"github.com/MrEthical07/goPassGen/charset"
	"github.com/MrEthical07/goPassGen/hash"
	"github.com/MrEthical07/goPassGen/internal"
)

// Builder defines a public type used by goPassGen APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	output io.Writer
	random Source

	auditSink AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig may return an error when input validation, dependency calls, or security checks fail.
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithOutput describes the withoutput operation and its observable behavior.
//
// WithOutput may return an error when input validation, dependency calls, or security checks fail.
// WithOutput does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithOutput(w io.Writer) *Builder {
	b.output = w
	return b
}

// WithRandom describes the withrandom operation and its observable behavior.
//
// WithRandom may return an error when input validation, dependency calls, or security checks fail.
// WithRandom does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithRandom(src Source) *Builder {
	b.random = src
	return b
}

// WithCharset describes the withcharset operation and its observable behavior.
//
// WithCharset may return an error when input validation, dependency calls, or security checks fail.
// WithCharset does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithCharset(cfg charset.Config) *Builder {
	b.config.Charset = cfg
	return b
}

// WithLength describes the withlength operation and its observable behavior.
//
// WithLength may return an error when input validation, dependency calls, or security checks fail.
// WithLength does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLength(length int) *Builder {
	b.config.Length = length
	return b
}

// WithCount describes the withcount operation and its observable behavior.
//
// WithCount may return an error when input validation, dependency calls, or security checks fail.
// WithCount does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithCount(count int) *Builder {
	b.config.Count = count
	return b
}

// WithHashEnabled describes the withhashenabled operation and its observable behavior.
//
// WithHashEnabled may return an error when input validation, dependency calls, or security checks fail.
// WithHashEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithHashEnabled(enabled bool) *Builder {
	b.config.Hash.Enabled = enabled
	return b
}

// WithAuditEnabled describes the withauditenabled operation and its observable behavior.
//
// WithAuditEnabled may return an error when input validation, dependency calls, or security checks fail.
// WithAuditEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditEnabled(enabled bool) *Builder {
	b.config.Audit.Enabled = enabled
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink may return an error when input validation, dependency calls, or security checks fail.
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled may return an error when input validation, dependency calls, or security checks fail.
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
//
// WithLatencyHistograms may return an error when input validation, dependency calls, or security checks fail.
// WithLatencyHistograms does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if b.output == nil {
		return nil, ErrOutputRequired
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// -------- CHARACTER MATERIAL --------
	cs := charset.Build(cfg.Charset)

	if len(cs.Alphabet) == 0 {
		return nil, fmt.Errorf("%w: enable at least one category or supply a custom set", ErrNoCharactersSelected)
	}

	if cfg.Length < len(cs.Required) {
		return nil, fmt.Errorf(
			"%w: length %d cannot include one character from each of %d selected sets",
			ErrLengthTooShort, cfg.Length, len(cs.Required),
		)
	}

	random := b.random
	if random == nil {
		random = internal.CryptoSource{}
	}

	engine := &Engine{
		config:  cfg,
		charset: cs,
		output:  b.output,
		random:  random,
	}

	engine.audit = newAuditDispatcher(cfg.Audit, b.auditSink)
	engine.metrics = NewMetrics(cfg.Metrics)

	if cfg.Hash.Enabled {
		hasher, err := hash.New(hash.Config{
			Memory:      cfg.Hash.Memory,
			Time:        cfg.Hash.Time,
			Parallelism: cfg.Hash.Parallelism,
			SaltLength:  cfg.Hash.SaltLength,
			KeyLength:   cfg.Hash.KeyLength,
		})
		if err != nil {
			return nil, err
		}
		engine.hasher = hasher
	}

	b.built = true

	return engine, nil
}
