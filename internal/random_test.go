package internal

import "testing"

func TestIntNBounds(t *testing.T) {
	src := CryptoSource{}

	for _, n := range []int{1, 2, 10, 26, 255, 1 << 20} {
		for i := 0; i < 200; i++ {
			v := src.IntN(n)
			if v < 0 || v >= n {
				t.Fatalf("IntN(%d) = %d out of range", n, v)
			}
		}
	}
}

func TestIntNOne(t *testing.T) {
	src := CryptoSource{}
	for i := 0; i < 50; i++ {
		if v := src.IntN(1); v != 0 {
			t.Fatalf("IntN(1) = %d, want 0", v)
		}
	}
}

func TestIntNPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for n <= 0")
		}
	}()
	CryptoSource{}.IntN(0)
}

func TestShufflePreservesElements(t *testing.T) {
	src := CryptoSource{}

	buf := []byte("abcdefghij0123456789")
	counts := map[byte]int{}
	for _, b := range buf {
		counts[b]++
	}

	src.Shuffle(len(buf), func(i, j int) {
		buf[i], buf[j] = buf[j], buf[i]
	})

	for _, b := range buf {
		counts[b]--
	}
	for b, n := range counts {
		if n != 0 {
			t.Fatalf("shuffle changed multiset: %q off by %d", b, n)
		}
	}
}

func TestShuffleSingleElement(t *testing.T) {
	src := CryptoSource{}
	src.Shuffle(1, func(i, j int) {
		t.Fatalf("unexpected swap(%d, %d) for single element", i, j)
	})
	src.Shuffle(0, func(i, j int) {
		t.Fatalf("unexpected swap(%d, %d) for empty input", i, j)
	})
}
