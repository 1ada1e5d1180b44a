// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

import (
	"fmt"
	"math/big"
)

// LucasLehmer tests the Mersenne number M = 2^p - 1 for primality. The
// test is deterministic: starting from s = 4, it squares s modulo M for
// p-2 iterations, and M is prime iff the final residue is zero. For large
// exponents this loop dominates runtime and is the canonical case the
// progress contract exists for; one event is emitted per iteration, at the
// throttled cadence, whenever p is above a thousand.
//
// The test is valid for any p >= 2 (it simply is only interesting when p
// itself is prime, since 2^ab - 1 is divisible by 2^a - 1).
func LucasLehmer(p int, options ...Option) Verdict {
	cfg := makeconfigs()
	for _, f := range options {
		f(cfg)
	}
	if p < 2 {
		return invalid("lucas-lehmer requires an exponent p >= 2")
	}
	if p == 2 {
		return prime() // M2 = 3
	}
	var tr *tracker
	if p > 1000 {
		tr = newTracker(cfg.sink, fmt.Sprintf("lucas-lehmer M%d", p), p-2, 0)
	}
	return lucasLehmer(p, tr)
}

func lucasLehmer(p int, tr *tracker) Verdict {
	m := MersenneCandidate(p)
	s := big.NewInt(4)
	for i := 0; i < p-2; i++ {
		s.Mul(s, s)
		s.Sub(s, two)
		// Mersenne-shortcut reduction: fold p-bit chunks instead of
		// dividing by m
		mersenneReduce(s, m, uint(p))
		if s.Sign() < 0 {
			s.Add(s, m)
		}
		if !tr.step(i + 1) {
			return cancelled()
		}
	}
	tr.finish()
	if s.Sign() == 0 {
		return prime()
	}
	return composite()
}
