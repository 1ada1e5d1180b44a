// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

import "math/big"

// helpers for exact arbitrary-precision arithmetic shared by every test

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// smallPrimes lists the primes below 300, used for trial-division
// pre-filtering before any expensive modular exponentiation.
var smallPrimes = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61,
	67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137,
	139, 149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211,
	223, 227, 229, 233, 239, 241, 251, 257, 263, 269, 271, 277, 281, 283,
	293,
}

// smallPrimesProduct is the product of the odd primes up to 53. Reducing a
// candidate by this single modulus lets us test divisibility by each of
// them with uint64 arithmetic only.
var smallPrimesProduct = new(big.Int).SetUint64(16294579238595022365)

// trialDivision screens n against smallPrimes. It returns a Verdict when
// the table is conclusive (n is one of the table primes, or divisible by
// one), and ok == false when n passed the screen and needs a real test.
func trialDivision(n *big.Int) (v Verdict, ok bool) {
	if n.Cmp(two) < 0 {
		return composite(), true
	}
	r := new(big.Int)
	for _, p := range smallPrimes {
		bp := big.NewInt(p)
		if n.Cmp(bp) == 0 {
			return prime(), true
		}
		if r.Mod(n, bp).Sign() == 0 {
			return composite(), true
		}
	}
	return Verdict{}, false
}

// decompose writes m = 2^s * d with d odd. m must be positive.
func decompose(m *big.Int) (s int, d *big.Int) {
	if m.Sign() <= 0 {
		fault("decompose called on non-positive %s", m)
	}
	s = 0
	d = new(big.Int).Set(m)
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}
	return s, d
}

// mersenneReduce replaces x with x mod (2^p - 1), where m == 2^p - 1. It
// folds p-bit chunks of x instead of dividing, which is the dominant cost
// saver in the Lucas-Lehmer inner loop.
func mersenneReduce(x, m *big.Int, p uint) {
	hi := new(big.Int)
	for x.BitLen() > int(p) {
		hi.Rsh(x, p)
		x.And(x, m)
		x.Add(x, hi)
	}
	for x.Cmp(m) >= 0 {
		x.Sub(x, m)
	}
}

// halveMod replaces x with (x mod n) / 2 in the field sense, assuming n is
// odd: when the reduced value is odd, adding n makes it even without
// changing its residue.
func halveMod(x, n *big.Int) {
	x.Mod(x, n)
	if x.Bit(0) == 1 {
		x.Add(x, n)
	}
	x.Rsh(x, 1)
}

// isMersenne reports whether n has the shape 2^p - 1 with p >= 2, and the
// exponent when it does.
func isMersenne(n *big.Int) (p int, ok bool) {
	if n.Cmp(big.NewInt(3)) < 0 {
		return 0, false
	}
	m := new(big.Int).Add(n, one)
	// m is a power of two iff m & (m-1) == 0
	mm := new(big.Int).Sub(m, one)
	if mm.And(m, mm).Sign() != 0 {
		return 0, false
	}
	return m.BitLen() - 1, true
}

// isPrimeInt answers primality of a small machine integer exactly, using
// the deterministic-witness Miller-Rabin path. It is used to vet Mersenne
// exponents during automatic selection.
func isPrimeInt(p int) bool {
	if p < 2 {
		return false
	}
	n := big.NewInt(int64(p))
	if v, ok := trialDivision(n); ok {
		return v.IsPrime()
	}
	return millerRabin(n, deterministicWitnesses(n), true, nil).IsPrime()
}
