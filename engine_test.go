package goPassGen

import (
	"bytes"
	"context"
	"errors"
	mathrand "math/rand/v2"
	"strings"
	"testing"

	"github.com/MrEthical07/goPassGen/charset"
)

type seededSource struct {
	r *mathrand.Rand
}

func newSeededSource(seed uint64) *seededSource {
	return &seededSource{r: mathrand.New(mathrand.NewPCG(seed, 0))}
}

func (s *seededSource) IntN(n int) int {
	return s.r.IntN(n)
}

func (s *seededSource) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

type failAfterWriter struct {
	buf     bytes.Buffer
	allowed int
	writes  int
}

func (f *failAfterWriter) Write(p []byte) (int, error) {
	if f.writes >= f.allowed {
		return 0, errors.New("sink closed")
	}
	f.writes++
	return f.buf.Write(p)
}

func buildEngine(t *testing.T, cfg Config, out *bytes.Buffer) *Engine {
	t.Helper()

	engine, err := New().
		WithConfig(cfg).
		WithOutput(out).
		WithRandom(newSeededSource(1)).
		Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	t.Cleanup(engine.Close)

	return engine
}

func outputLines(t *testing.T, out *bytes.Buffer) []string {
	t.Helper()

	raw := out.String()
	if raw == "" {
		return nil
	}
	if !strings.HasSuffix(raw, "\n") {
		t.Fatalf("output does not end with newline: %q", raw)
	}
	return strings.Split(strings.TrimSuffix(raw, "\n"), "\n")
}

func TestGenerateConcreteLowerDigits(t *testing.T) {
	cfg := defaultConfig()
	cfg.Charset = charset.Config{Lower: true, Digits: true}
	cfg.Length = 8
	cfg.Count = 1

	var out bytes.Buffer
	engine := buildEngine(t, cfg, &out)

	if err := engine.Generate(context.Background()); err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	lines := outputLines(t, &out)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	pw := lines[0]
	if len(pw) != 8 {
		t.Fatalf("expected length 8, got %d (%q)", len(pw), pw)
	}

	hasLower, hasDigit := false, false
	for i := 0; i < len(pw); i++ {
		c := pw[i]
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= '0' && c <= '9':
			hasDigit = true
		default:
			t.Fatalf("character %q outside lowercase+digits alphabet in %q", c, pw)
		}
	}
	if !hasLower || !hasDigit {
		t.Fatalf("password missing categories: lower=%v digit=%v pw=%q", hasLower, hasDigit, pw)
	}
}

func TestGenerateCoverageInvariant(t *testing.T) {
	cfg := defaultConfig()
	cfg.Charset = charset.Config{Lower: true, Upper: true, Digits: true, Symbols: true, Custom: "~~"}
	cfg.Length = 6
	cfg.Count = 500

	var out bytes.Buffer
	engine := buildEngine(t, cfg, &out)

	if err := engine.Generate(context.Background()); err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	lines := outputLines(t, &out)
	if len(lines) != 500 {
		t.Fatalf("expected 500 lines, got %d", len(lines))
	}

	for _, pw := range lines {
		if len(pw) != 6 {
			t.Fatalf("expected length 6, got %d (%q)", len(pw), pw)
		}
		var lower, upper, digit, symbol, custom bool
		for i := 0; i < len(pw); i++ {
			c := pw[i]
			switch {
			case c >= 'a' && c <= 'z':
				lower = true
			case c >= 'A' && c <= 'Z':
				upper = true
			case c >= '0' && c <= '9':
				digit = true
			case c == '~':
				custom = true
			case strings.IndexByte(charset.Symbols, c) >= 0:
				symbol = true
			default:
				t.Fatalf("character %q outside alphabet in %q", c, pw)
			}
		}
		if !lower || !upper || !digit || !symbol || !custom {
			t.Fatalf("missing required category in %q: l=%v u=%v d=%v s=%v c=%v",
				pw, lower, upper, digit, symbol, custom)
		}
	}
}

func TestGenerateAlphabetContainment(t *testing.T) {
	cfg := defaultConfig()
	cfg.Charset = charset.Config{Upper: true, Symbols: true}
	cfg.Length = 12
	cfg.Count = 200

	var out bytes.Buffer
	engine := buildEngine(t, cfg, &out)

	if err := engine.Generate(context.Background()); err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	alphabet := charset.Uppercase + charset.Symbols
	for _, pw := range outputLines(t, &out) {
		for i := 0; i < len(pw); i++ {
			if strings.IndexByte(alphabet, pw[i]) < 0 {
				t.Fatalf("character %q not in alphabet (%q)", pw[i], pw)
			}
		}
	}
}

func TestGenerateBatchCount(t *testing.T) {
	cfg := defaultConfig()
	cfg.Count = 37

	var out bytes.Buffer
	engine := buildEngine(t, cfg, &out)

	if err := engine.Generate(context.Background()); err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if lines := outputLines(t, &out); len(lines) != 37 {
		t.Fatalf("expected 37 lines, got %d", len(lines))
	}
}

func TestGenerateDeterministicWithSeededSource(t *testing.T) {
	run := func() string {
		var out bytes.Buffer
		engine, err := New().
			WithLength(16).
			WithCount(10).
			WithOutput(&out).
			WithRandom(newSeededSource(42)).
			Build()
		if err != nil {
			t.Fatalf("Build error: %v", err)
		}
		defer engine.Close()

		if err := engine.Generate(context.Background()); err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		return out.String()
	}

	if first, second := run(), run(); first != second {
		t.Fatalf("same seed produced different batches:\n%q\n%q", first, second)
	}
}

func TestBuildLengthTooShort(t *testing.T) {
	cfg := defaultConfig()
	cfg.Charset = charset.Config{Lower: true, Upper: true, Digits: true, Symbols: true}
	cfg.Length = 3

	var out bytes.Buffer
	_, err := New().WithConfig(cfg).WithOutput(&out).Build()
	if !errors.Is(err, ErrLengthTooShort) {
		t.Fatalf("expected ErrLengthTooShort, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestBuildLengthOneAllCategories(t *testing.T) {
	cfg := defaultConfig()
	cfg.Charset = charset.Config{Lower: true, Upper: true, Digits: true, Symbols: true}
	cfg.Length = 1

	var out bytes.Buffer
	_, err := New().WithConfig(cfg).WithOutput(&out).Build()
	if !errors.Is(err, ErrLengthTooShort) {
		t.Fatalf("expected ErrLengthTooShort, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected zero output lines, got %q", out.String())
	}
}

func TestBuildNoCharactersSelected(t *testing.T) {
	cfg := defaultConfig()
	cfg.Charset = charset.Config{}

	var out bytes.Buffer
	_, err := New().WithConfig(cfg).WithOutput(&out).Build()
	if !errors.Is(err, ErrNoCharactersSelected) {
		t.Fatalf("expected ErrNoCharactersSelected, got %v", err)
	}
}

func TestBuildLengthEqualsRequiredSets(t *testing.T) {
	cfg := defaultConfig()
	cfg.Charset = charset.Config{Lower: true, Upper: true, Digits: true, Symbols: true}
	cfg.Length = 4
	cfg.Count = 50

	var out bytes.Buffer
	engine := buildEngine(t, cfg, &out)

	if err := engine.Generate(context.Background()); err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	for _, pw := range outputLines(t, &out) {
		if len(pw) != 4 {
			t.Fatalf("expected length 4, got %q", pw)
		}
	}
}

func TestBuildRequiresOutput(t *testing.T) {
	_, err := New().Build()
	if !errors.Is(err, ErrOutputRequired) {
		t.Fatalf("expected ErrOutputRequired, got %v", err)
	}
}

func TestBuilderSingleUse(t *testing.T) {
	var out bytes.Buffer
	b := New().WithOutput(&out)

	if _, err := b.Build(); err != nil {
		t.Fatalf("first Build error: %v", err)
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("expected second Build to fail")
	}
}

func TestGenerateWriteFailureAborts(t *testing.T) {
	cfg := defaultConfig()
	cfg.Count = 10

	sink := &failAfterWriter{allowed: 3}
	engine, err := New().
		WithConfig(cfg).
		WithOutput(sink).
		WithRandom(newSeededSource(7)).
		Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	defer engine.Close()

	err = engine.Generate(context.Background())
	if !errors.Is(err, ErrOutputWrite) {
		t.Fatalf("expected ErrOutputWrite, got %v", err)
	}

	lines := strings.Count(sink.buf.String(), "\n")
	if lines != 3 {
		t.Fatalf("expected 3 lines written before failure, got %d", lines)
	}
}

func TestGenerateUniformSingleCategory(t *testing.T) {
	cfg := defaultConfig()
	cfg.Charset = charset.Config{Digits: true}
	cfg.Length = 10
	cfg.Count = 3000

	var out bytes.Buffer
	engine := buildEngine(t, cfg, &out)

	if err := engine.Generate(context.Background()); err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	counts := map[byte]int{}
	total := 0
	for _, pw := range outputLines(t, &out) {
		for i := 0; i < len(pw); i++ {
			counts[pw[i]]++
			total++
		}
	}

	if len(counts) != 10 {
		t.Fatalf("expected all 10 digits to appear, got %d", len(counts))
	}

	// With 30000 draws the expected frequency per digit is 3000; a 10%
	// band is far wider than the sampling noise of a uniform source.
	expected := total / 10
	for c, n := range counts {
		if n < expected*9/10 || n > expected*11/10 {
			t.Fatalf("digit %q frequency %d outside tolerance around %d", c, n, expected)
		}
	}
}

func TestGenerateNilEngine(t *testing.T) {
	var engine *Engine
	if err := engine.Generate(context.Background()); !errors.Is(err, ErrEngineNotReady) {
		t.Fatalf("expected ErrEngineNotReady, got %v", err)
	}
}
