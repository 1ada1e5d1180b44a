// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

import (
	"math/big"
	"math/rand"
	"testing"
)

// sieveTo returns a primality table for [0, limit) computed by trial
// sieving, used as the oracle for the probabilistic tests.
func sieveTo(limit int) []bool {
	isPrime := make([]bool, limit)
	for i := 2; i < limit; i++ {
		isPrime[i] = true
	}
	for i := 2; i*i < limit; i++ {
		if isPrime[i] {
			for j := i * i; j < limit; j += i {
				isPrime[j] = false
			}
		}
	}
	return isPrime
}

//********************************************************************************************

func TestMillerRabinSmallPrimes(t *testing.T) {
	limit := 1000000
	if testing.Short() {
		limit = 100000
	}
	oracle := sieveTo(limit)
	rnd := rand.New(rand.NewSource(1))
	for n := 2; n < limit; n++ {
		if !oracle[n] {
			continue
		}
		v := MillerRabin(big.NewInt(int64(n)), Rounds(2), WithRand(rnd))
		if !v.IsPrime() {
			t.Fatalf("MillerRabin(%d): expected prime verdict, got %s", n, v)
		}
	}
}

func TestMillerRabinComposites(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	// includes Carmichael numbers, which fool the Fermat test but not the
	// strong test
	for _, n := range []int64{4, 341, 561, 645, 1105, 1729, 2465, 2821, 6601, 8911, 62745, 162401} {
		v := MillerRabin(big.NewInt(n), Rounds(20), WithRand(rnd))
		if v.Kind != Composite {
			t.Errorf("MillerRabin(%d): expected composite, got %s", n, v)
		}
	}
}

func TestMillerRabinConfidence(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	n, _ := new(big.Int).SetString("359334085968622831041960188598043661065388726959079837", 10) // Bell prime
	var confidenceTests = []struct {
		rounds   int
		expected float64
	}{
		{1, 0.75},
		{2, 0.9375},
		{5, 1 - 1.0/1024},
	}
	for _, tt := range confidenceTests {
		v := MillerRabin(n, Rounds(tt.rounds), WithRand(rnd))
		if v.Kind != ProbablyPrime {
			t.Fatalf("MillerRabin rounds=%d: expected probably prime, got %s", tt.rounds, v)
		}
		if v.Confidence != tt.expected {
			t.Errorf("MillerRabin rounds=%d: confidence %v, expected %v", tt.rounds, v.Confidence, tt.expected)
		}
	}
}

func TestMillerRabinDeterministicSet(t *testing.T) {
	oracle := sieveTo(100000)
	for n := 300; n < 100000; n++ {
		bn := big.NewInt(int64(n))
		if _, screened := trialDivision(bn); screened {
			continue
		}
		v := millerRabin(bn, deterministicWitnesses(bn), true, nil)
		if v.IsPrime() != oracle[n] {
			t.Fatalf("deterministic millerRabin(%d): got %s, oracle says prime=%v", n, v, oracle[n])
		}
		if v.Kind != Prime && v.Kind != Composite {
			t.Fatalf("deterministic millerRabin(%d): verdict %s is not exact", n, v)
		}
	}
}

func TestMillerRabinLargePrime(t *testing.T) {
	// M607 is prime and large enough to exercise the big-exponent path
	m := MersenneCandidate(607)
	rnd := rand.New(rand.NewSource(4))
	if v := MillerRabin(m, Rounds(5), WithRand(rnd)); !v.IsPrime() {
		t.Errorf("MillerRabin(M607): expected prime verdict, got %s", v)
	}
	// M601 = 2^601-1 is composite
	c := MersenneCandidate(601)
	if v := MillerRabin(c, Rounds(5), WithRand(rnd)); v.Kind != Composite {
		t.Errorf("MillerRabin(M601): expected composite, got %s", v)
	}
}
