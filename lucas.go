// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

import (
	"fmt"
	"math/big"
)

// Lucas runs the strong Lucas probable prime test on n, with Lucas
// sequence parameters chosen by the standard Selfridge procedure: the
// first D in 5, -7, 9, -11, ... with Jacobi symbol (D/n) == -1, then P = 1
// and Q = (1-D)/4. Used standalone and as the second leg of BPSW. A
// nontrivial gcd(D, n) proves compositeness deterministically.
func Lucas(n *big.Int, options ...Option) Verdict {
	cfg := makeconfigs()
	for _, f := range options {
		f(cfg)
	}
	if v, ok := trialDivision(n); ok {
		return v
	}
	var tr *tracker
	if n.BitLen() > 1000 {
		tr = newTracker(cfg.sink, fmt.Sprintf("lucas (%d bits)", n.BitLen()), lucasSteps(n), 0)
	}
	return lucasStrong(n, tr)
}

// lucasSteps is the checkpoint count of the fast-doubling ladder for n:
// one step per bit of d plus one per squaring of the trailing power of
// two, where n+1 = d * 2^s.
func lucasSteps(n *big.Int) int {
	s, d := decompose(new(big.Int).Add(n, one))
	return d.BitLen() - 1 + s
}

// selfridgeD finds the discriminant for n, alternating 5, -7, 9, -11, ...
// It returns ok == false when n was proven composite instead: either a
// nontrivial gcd(D, n) surfaced, or n is a perfect square (squares admit
// no D with (D/n) == -1, so after a few failed attempts we pay for one
// exact square root).
func selfridgeD(n *big.Int) (d *big.Int, ok bool) {
	abs := int64(5)
	sign := int64(1)
	g := new(big.Int)
	for attempt := 0; ; attempt++ {
		D := big.NewInt(abs * sign)
		switch big.Jacobi(D, n) {
		case -1:
			return D, true
		case 0:
			// gcd(D, n) > 1; conclusive unless n itself divides D
			g.GCD(nil, nil, new(big.Int).Abs(D), n)
			if g.Cmp(n) != 0 {
				return nil, false
			}
		}
		if attempt == 20 {
			r := new(big.Int).Sqrt(n)
			if r.Mul(r, r).Cmp(n) == 0 {
				return nil, false
			}
		}
		abs += 2
		sign = -sign
	}
}

// lucasStrong assumes n odd, n > 3, and not divisible by any of the
// trial-division primes.
func lucasStrong(n *big.Int, tr *tracker) Verdict {
	D, ok := selfridgeD(n)
	if !ok {
		return composite()
	}

	// P = 1, Q = (1 - D) / 4
	Q := new(big.Int).Sub(one, D)
	if Q.Bit(0) != 0 || Q.Bit(1) != 0 {
		fault("selfridge discriminant %s with 1-D not divisible by 4", D)
	}
	Q.Rsh(Q, 2)
	Q.Mod(Q, n)

	// n+1 = d * 2^s with d odd, mirroring the strong Miller-Rabin
	// decomposition but over Lucas sequences
	s, d := decompose(new(big.Int).Add(n, one))

	// fast-doubling ladder for U_d, V_d and Q^d (mod n), one step per bit
	// of d from the most significant down
	U := big.NewInt(1)
	V := big.NewInt(1) // V_1 = P = 1
	Qk := new(big.Int).Set(Q)
	t := new(big.Int)
	step := 0
	for i := d.BitLen() - 2; i >= 0; i-- {
		// (U, V, Qk) at index k becomes index 2k
		U.Mul(U, V)
		U.Mod(U, n)
		V.Mul(V, V)
		V.Sub(V, t.Lsh(Qk, 1))
		V.Mod(V, n)
		Qk.Mul(Qk, Qk)
		Qk.Mod(Qk, n)
		if d.Bit(i) == 1 {
			// index 2k becomes 2k+1: U' = (U+V)/2, V' = (D*U+V)/2
			t.Add(U, V)
			V.Add(V, new(big.Int).Mul(D, U))
			halveMod(V, n)
			U.Set(t)
			halveMod(U, n)
			Qk.Mul(Qk, Q)
			Qk.Mod(Qk, n)
		}
		step++
		if !tr.step(step) {
			return cancelled()
		}
	}

	// strong Lucas condition: U_d == 0, or V_{d*2^r} == 0 for some r in
	// [0, s)
	if U.Sign() == 0 || V.Sign() == 0 {
		tr.finish()
		return probably(1)
	}
	for r := 1; r < s; r++ {
		V.Mul(V, V)
		V.Sub(V, t.Lsh(Qk, 1))
		V.Mod(V, n)
		if V.Sign() == 0 {
			tr.finish()
			return probably(1)
		}
		Qk.Mul(Qk, Qk)
		Qk.Mod(Qk, n)
		step++
		if !tr.step(step) {
			return cancelled()
		}
	}
	tr.finish()
	return composite()
}
