package goPassGen

import "errors"

var (
	// ErrLengthTooShort is an exported constant or variable used by the generation engine.
	ErrLengthTooShort = errors.New("password length too short for selected sets")
	// ErrNoCharactersSelected is an exported constant or variable used by the generation engine.
	ErrNoCharactersSelected = errors.New("no character sets selected")
	// ErrInvalidLength is an exported constant or variable used by the generation engine.
	ErrInvalidLength = errors.New("password length must be > 0")
	// ErrInvalidCount is an exported constant or variable used by the generation engine.
	ErrInvalidCount = errors.New("password count must be > 0")
	// ErrOutputRequired is an exported constant or variable used by the generation engine.
	ErrOutputRequired = errors.New("output writer required")
	// ErrOutputWrite is an exported constant or variable used by the generation engine.
	ErrOutputWrite = errors.New("output write failed")
	// ErrEngineNotReady is an exported constant or variable used by the generation engine.
	ErrEngineNotReady = errors.New("engine not initialized")
)
