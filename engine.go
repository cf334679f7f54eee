package goPassGen

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MrEthical07/goPassGen/charset"
	"github.com/MrEthical07/goPassGen/hash"
	"github.com/google/uuid"
)

// Engine defines a public type used by goPassGen APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config  Config
	charset charset.Charset
	output  io.Writer
	random  Source
	audit   *auditDispatcher
	metrics *Metrics
	hasher  *hash.Hasher
}

// Close describes the close operation and its observable behavior.
//
// Close may return an error when input validation, dependency calls, or security checks fail.
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped may return an error when input validation, dependency calls, or security checks fail.
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot may return an error when input validation, dependency calls, or security checks fail.
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

// Generate describes the generate operation and its observable behavior.
//
// Generate may return an error when input validation, dependency calls, or security checks fail.
// Generate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Generate writes exactly Count passwords, one per line, drawing every
// character from the single shared Source. It stops at the first write
// failure; lines already written are not rolled back.
func (e *Engine) Generate(ctx context.Context) error {
	if e == nil || e.output == nil || e.random == nil {
		return ErrEngineNotReady
	}

	runID := uuid.NewString()
	start := time.Now()

	e.auditEmit(ctx, AuditEvent{
		Timestamp: start,
		EventType: EventGenerateStart,
		RunID:     runID,
		Length:    e.config.Length,
		Count:     e.config.Count,
		Success:   true,
	})

	written := 0
	for i := 0; i < e.config.Count; i++ {
		password := e.createOne()

		line := password
		if e.hasher != nil {
			digest, err := e.hasher.Hash(password)
			if err != nil {
				return e.failGenerate(ctx, runID, written, fmt.Errorf("hash password: %w", err))
			}
			line = password + " " + digest
		}

		if _, err := io.WriteString(e.output, line+"\n"); err != nil {
			e.metricInc(MetricWriteFailure)
			return e.failGenerate(ctx, runID, written, fmt.Errorf("%w: %v", ErrOutputWrite, err))
		}

		written++
		e.metricInc(MetricPasswordGenerated)
	}

	e.metricInc(MetricBatchSuccess)
	if e.metrics != nil {
		e.metrics.Observe(MetricBatchLatency, time.Since(start))
	}

	e.auditEmit(ctx, AuditEvent{
		Timestamp: time.Now(),
		EventType: EventGenerateComplete,
		RunID:     runID,
		Length:    e.config.Length,
		Count:     e.config.Count,
		Written:   written,
		Success:   true,
	})

	return nil
}

// createOne draws one character from each required set, fills the remaining
// slots from the full alphabet, then shuffles so the mandatory characters are
// not predictably placed at the front.
func (e *Engine) createOne() string {
	buf := make([]byte, 0, e.config.Length)

	for _, set := range e.charset.Required {
		buf = append(buf, set[e.random.IntN(len(set))])
	}

	alphabet := e.charset.Alphabet
	for len(buf) < e.config.Length {
		buf = append(buf, alphabet[e.random.IntN(len(alphabet))])
	}

	e.random.Shuffle(len(buf), func(i, j int) {
		buf[i], buf[j] = buf[j], buf[i]
	})

	return string(buf)
}

func (e *Engine) failGenerate(ctx context.Context, runID string, written int, err error) error {
	e.metricInc(MetricBatchFailure)
	e.auditEmit(ctx, AuditEvent{
		Timestamp: time.Now(),
		EventType: EventGenerateFailed,
		RunID:     runID,
		Length:    e.config.Length,
		Count:     e.config.Count,
		Written:   written,
		Success:   false,
		Error:     err.Error(),
	})
	return err
}

func (e *Engine) auditEmit(ctx context.Context, event AuditEvent) {
	if e == nil || e.audit == nil {
		return
	}
	e.audit.Emit(ctx, event)
}
