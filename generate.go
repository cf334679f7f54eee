package goPassGen

import (
	"context"
	"io"
)

// Generate describes the generate operation and its observable behavior.
//
// Generate may return an error when input validation, dependency calls, or security checks fail.
// Generate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Generate is the single-call entry point: it builds an engine for cfg,
// writes one password per line to out, and returns the first fatal error.
func Generate(cfg Config, out io.Writer) error {
	engine, err := New().WithConfig(cfg).WithOutput(out).Build()
	if err != nil {
		return err
	}
	defer engine.Close()

	return engine.Generate(context.Background())
}
