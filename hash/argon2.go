package hash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	minMemoryKB    uint32 = 8 * 1024
	minTimeCost    uint32 = 1
	minParallelism uint8  = 1
	minSaltLength  uint32 = 16
	minKeyLength   uint32 = 16
	algorithmID           = "argon2id"
)

// Config defines a public type used by goPassGen APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// Hasher defines a public type used by goPassGen APIs.
//
// Hasher instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Hasher struct {
	config Config
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New(cfg Config) (*Hasher, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return &Hasher{config: cfg}, nil
}

// Hash describes the hash operation and its observable behavior.
//
// Hash may return an error when input validation, dependency calls, or security checks fail.
// Hash does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.config.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	digest := argon2.IDKey(
		[]byte(password),
		salt,
		h.config.Time,
		h.config.Memory,
		h.config.Parallelism,
		h.config.KeyLength,
	)

	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmID,
		argon2.Version,
		h.config.Memory,
		h.config.Time,
		h.config.Parallelism,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(digest),
	), nil
}

// Verify describes the verify operation and its observable behavior.
//
// Verify may return an error when input validation, dependency calls, or security checks fail.
// Verify does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (h *Hasher) Verify(password string, encoded string) (bool, error) {
	memory, time, parallelism, salt, digest, err := parsePHC(encoded)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey(
		[]byte(password),
		salt,
		time,
		memory,
		parallelism,
		uint32(len(digest)),
	)

	return subtle.ConstantTimeCompare(computed, digest) == 1, nil
}

func parsePHC(encoded string) (memory, time uint32, parallelism uint8, salt, digest []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return 0, 0, 0, nil, nil, errors.New("invalid PHC format")
	}
	if parts[1] != algorithmID {
		return 0, 0, 0, nil, nil, errors.New("unsupported algorithm")
	}

	version, convErr := strconv.Atoi(strings.TrimPrefix(parts[2], "v="))
	if !strings.HasPrefix(parts[2], "v=") || convErr != nil || version != argon2.Version {
		return 0, 0, 0, nil, nil, errors.New("unsupported argon2 version")
	}

	if _, scanErr := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &parallelism); scanErr != nil {
		return 0, 0, 0, nil, nil, errors.New("invalid parameter format")
	}
	if memory < minMemoryKB || time < minTimeCost || parallelism < minParallelism {
		return 0, 0, 0, nil, nil, errors.New("parameters below minimum")
	}

	salt, err = base64.StdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) < int(minSaltLength) {
		return 0, 0, 0, nil, nil, errors.New("invalid salt")
	}

	digest, err = base64.StdEncoding.DecodeString(parts[5])
	if err != nil || len(digest) == 0 {
		return 0, 0, 0, nil, nil, errors.New("invalid digest")
	}

	return memory, time, parallelism, salt, digest, nil
}

func validateConfig(cfg Config) error {
	if cfg.Memory < minMemoryKB {
		return errors.New("hash memory must be >= 8192 KB")
	}
	if cfg.Time < minTimeCost {
		return errors.New("hash time must be >= 1")
	}
	if cfg.Parallelism < minParallelism {
		return errors.New("hash parallelism must be >= 1")
	}
	if cfg.SaltLength < minSaltLength {
		return errors.New("hash salt length must be >= 16")
	}
	if cfg.KeyLength < minKeyLength {
		return errors.New("hash key length must be >= 16")
	}

	return nil
}
