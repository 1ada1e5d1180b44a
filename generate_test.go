// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

import (
	"math/rand"
	"testing"
)

func TestRandomProbablePrimeBitLength(t *testing.T) {
	rnd := rand.New(rand.NewSource(17))
	for _, bits := range []int{2, 8, 16, 64, 128, 512} {
		n, err := RandomProbablePrime(rnd, bits)
		if err != nil {
			t.Fatalf("RandomProbablePrime(%d): %s", bits, err)
		}
		if n.BitLen() != bits {
			t.Errorf("got a %d-bit value, want exactly %d bits", n.BitLen(), bits)
		}
		if !BPSW(n).IsPrime() {
			t.Errorf("generated value %s is not a probable prime", n)
		}
	}
}

func TestRandomProbablePrimeReproducible(t *testing.T) {
	a, err := RandomProbablePrime(rand.New(rand.NewSource(42)), 256)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RandomProbablePrime(rand.New(rand.NewSource(42)), 256)
	if err != nil {
		t.Fatal(err)
	}
	if a.Cmp(b) != 0 {
		t.Errorf("same seed gave different primes: %s vs %s", a, b)
	}
}

func TestRandomProbablePrimeBadSize(t *testing.T) {
	for _, bits := range []int{-1, 0, 1} {
		if _, err := RandomProbablePrime(nil, bits); err == nil {
			t.Errorf("RandomProbablePrime(%d) should fail", bits)
		}
	}
}
