package internal

import (
	"crypto/rand"
	"encoding/binary"
)

type CryptoSource struct{}

func (CryptoSource) IntN(n int) int {
	if n <= 0 {
		panic("IntN: n must be > 0")
	}

	// Rejection sampling: accept only values below the largest multiple
	// of n, so every residue is equally likely.
	limit := ^uint64(0) - ^uint64(0)%uint64(n)

	var buf [8]byte
	for {
		// crypto/rand.Read never returns an error on supported platforms.
		_, _ = rand.Read(buf[:])
		v := binary.LittleEndian.Uint64(buf[:])
		if v < limit {
			return int(v % uint64(n))
		}
	}
}

func (s CryptoSource) Shuffle(n int, swap func(i, j int)) {
	// Fisher-Yates, iterating from the tail
	for i := n - 1; i > 0; i-- {
		swap(i, s.IntN(i+1))
	}
}
