package goPassGen

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestMetricsDisabledByDefault(t *testing.T) {
	m := NewMetrics(MetricsConfig{})

	m.Inc(MetricPasswordGenerated)
	if v := m.Value(MetricPasswordGenerated); v != 0 {
		t.Fatalf("disabled metrics must not count, got %d", v)
	}

	s := m.Snapshot()
	if len(s.Counters) != 0 || len(s.Histograms) != 0 {
		t.Fatalf("disabled snapshot must be empty, got %+v", s)
	}
}

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Inc(MetricBatchSuccess)
	m.Add(MetricPasswordGenerated, 12)

	if v := m.Value(MetricBatchSuccess); v != 1 {
		t.Fatalf("expected 1, got %d", v)
	}
	if v := m.Value(MetricPasswordGenerated); v != 12 {
		t.Fatalf("expected 12, got %d", v)
	}

	s := m.Snapshot()
	if s.Counters[MetricPasswordGenerated] != 12 {
		t.Fatalf("snapshot mismatch: %+v", s.Counters)
	}
}

func TestMetricsLatencyHistogram(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: true})

	m.Observe(MetricBatchLatency, 70*time.Microsecond)
	m.Observe(MetricBatchLatency, 30*time.Millisecond)

	s := m.Snapshot()
	buckets, ok := s.Histograms[MetricBatchLatency]
	if !ok {
		t.Fatal("expected latency buckets in snapshot")
	}
	if buckets[1] != 1 {
		t.Fatalf("expected one observation in the 100us bucket, got %v", buckets)
	}
	if buckets[histBucketCount-1] != 1 {
		t.Fatalf("expected one observation in the overflow bucket, got %v", buckets)
	}
}

func TestMetricsNilReceiver(t *testing.T) {
	var m *Metrics

	m.Inc(MetricBatchSuccess)
	m.Observe(MetricBatchLatency, time.Millisecond)

	if m.Enabled() {
		t.Fatal("nil metrics must report disabled")
	}
	if v := m.Value(MetricBatchSuccess); v != 0 {
		t.Fatalf("expected 0, got %d", v)
	}
}

func TestEngineMetricsOnGenerate(t *testing.T) {
	cfg := defaultConfig()
	cfg.Count = 5
	cfg.Metrics.Enabled = true

	var out bytes.Buffer
	engine, err := New().
		WithConfig(cfg).
		WithOutput(&out).
		WithRandom(newSeededSource(11)).
		Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	defer engine.Close()

	if err := engine.Generate(context.Background()); err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	s := engine.MetricsSnapshot()
	if s.Counters[MetricPasswordGenerated] != 5 {
		t.Fatalf("expected 5 generated, got %d", s.Counters[MetricPasswordGenerated])
	}
	if s.Counters[MetricBatchSuccess] != 1 {
		t.Fatalf("expected 1 batch success, got %d", s.Counters[MetricBatchSuccess])
	}
	if s.Counters[MetricBatchFailure] != 0 {
		t.Fatalf("expected 0 batch failures, got %d", s.Counters[MetricBatchFailure])
	}
}

func TestEngineMetricsOnWriteFailure(t *testing.T) {
	cfg := defaultConfig()
	cfg.Count = 5
	cfg.Metrics.Enabled = true

	engine, err := New().
		WithConfig(cfg).
		WithOutput(&failAfterWriter{allowed: 1}).
		WithRandom(newSeededSource(11)).
		Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	defer engine.Close()

	if err := engine.Generate(context.Background()); err == nil {
		t.Fatal("expected Generate to fail")
	}

	s := engine.MetricsSnapshot()
	if s.Counters[MetricWriteFailure] != 1 {
		t.Fatalf("expected 1 write failure, got %d", s.Counters[MetricWriteFailure])
	}
	if s.Counters[MetricBatchFailure] != 1 {
		t.Fatalf("expected 1 batch failure, got %d", s.Counters[MetricBatchFailure])
	}
	if s.Counters[MetricPasswordGenerated] != 1 {
		t.Fatalf("expected 1 generated before failure, got %d", s.Counters[MetricPasswordGenerated])
	}
}

func BenchmarkMetricsInc(b *testing.B) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m.Inc(MetricPasswordGenerated)
	}
}

func BenchmarkMetricsIncDisabled(b *testing.B) {
	m := NewMetrics(MetricsConfig{Enabled: false})
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m.Inc(MetricPasswordGenerated)
	}
}
