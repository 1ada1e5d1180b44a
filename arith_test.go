// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

import (
	"math/big"
	"math/rand"
	"testing"
)

func TestTrialDivision(t *testing.T) {
	var trialTests = []struct {
		n    int64
		kind Kind
		ok   bool
	}{
		{-7, Composite, true},
		{0, Composite, true},
		{1, Composite, true},
		{2, Prime, true},
		{293, Prime, true},    // last table prime
		{299, Composite, true}, // 13 * 23
		{90000, Composite, true},
		{307, Composite, false}, // prime, but past the table
		{1000003, Composite, false},
	}
	for _, tt := range trialTests {
		v, ok := trialDivision(big.NewInt(tt.n))
		if ok != tt.ok {
			t.Errorf("trialDivision(%d) conclusive = %v, want %v", tt.n, ok, tt.ok)
			continue
		}
		if ok && v.Kind != tt.kind {
			t.Errorf("trialDivision(%d) = %s, want %s", tt.n, v.Kind, tt.kind)
		}
	}
}

func TestDecompose(t *testing.T) {
	var decomposeTests = []struct {
		m int64
		s int
		d int64
	}{
		{1, 0, 1},
		{2, 1, 1},
		{96, 5, 3},
		{1 << 20, 20, 1},
		{7 * 1024, 10, 7},
	}
	for _, tt := range decomposeTests {
		s, d := decompose(big.NewInt(tt.m))
		if s != tt.s || d.Int64() != tt.d {
			t.Errorf("decompose(%d) = (%d, %s), want (%d, %d)", tt.m, s, d, tt.s, tt.d)
		}
	}
}

func TestMersenneReduceMatchesMod(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for _, p := range []uint{5, 13, 61, 127, 521} {
		m := MersenneCandidate(int(p))
		limit := new(big.Int).Mul(m, m) // squarings never exceed m^2
		want := new(big.Int)
		for i := 0; i < 50; i++ {
			x := new(big.Int).Rand(rnd, limit)
			want.Mod(x, m)
			mersenneReduce(x, m, p)
			if x.Cmp(want) != 0 {
				t.Fatalf("mersenneReduce mod 2^%d-1 = %s, want %s", p, x, want)
			}
		}
		// the modulus itself reduces to zero
		x := new(big.Int).Set(m)
		mersenneReduce(x, m, p)
		if x.Sign() != 0 {
			t.Errorf("mersenneReduce(m, m, %d) = %s, want 0", p, x)
		}
	}
}

func TestHalveMod(t *testing.T) {
	n := big.NewInt(101)
	for v := int64(0); v < 101; v++ {
		x := big.NewInt(v)
		halveMod(x, n)
		// 2 * halveMod(v) == v (mod n)
		back := new(big.Int).Lsh(x, 1)
		back.Mod(back, n)
		if back.Int64() != v {
			t.Fatalf("halveMod(%d, 101) = %s does not double back", v, x)
		}
	}
}

func TestIsMersenne(t *testing.T) {
	var shapeTests = []struct {
		n  int64
		p  int
		ok bool
	}{
		{0, 0, false},
		{1, 0, false},
		{3, 2, true},
		{7, 3, true},
		{15, 4, true},
		{31, 5, true},
		{8191, 13, true},
		{8189, 0, false},
		{1 << 20, 0, false},
	}
	for _, tt := range shapeTests {
		p, ok := isMersenne(big.NewInt(tt.n))
		if ok != tt.ok || (ok && p != tt.p) {
			t.Errorf("isMersenne(%d) = (%d, %v), want (%d, %v)", tt.n, p, ok, tt.p, tt.ok)
		}
	}
}

func TestIsPrimeInt(t *testing.T) {
	sieve := sieveTo(100000)
	for n := 0; n < 100000; n++ {
		if isPrimeInt(n) != sieve[n] {
			t.Fatalf("isPrimeInt(%d) = %v", n, isPrimeInt(n))
		}
	}
}
