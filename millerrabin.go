// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

import (
	"fmt"
	"math/big"
	"math/rand"
)

// detWitnessBound is the bound below which the first twelve primes form a
// provably deterministic Miller-Rabin witness set (Sorenson and Webster,
// 2015): every composite below 3,317,044,064,679,887,385,961,981 fails at
// least one of them. The automatic selection policy relies on the same
// constant.
var detWitnessBound, _ = new(big.Int).SetString("3317044064679887385961981", 10)

// detWitnesses is that witness set.
var detWitnesses = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// deterministicWitnesses returns the fixed witness set for n, dropping the
// bases that are not below n.
func deterministicWitnesses(n *big.Int) []*big.Int {
	ws := make([]*big.Int, 0, len(detWitnesses))
	for _, w := range detWitnesses {
		bw := big.NewInt(w)
		if bw.Cmp(n) < 0 {
			ws = append(ws, bw)
		}
	}
	return ws
}

// randomWitnesses draws rounds bases uniformly from [2, n-2]. The generator
// only needs to be statistically uniform; reproducibility is available by
// injecting a seeded source with WithRand.
func randomWitnesses(n *big.Int, rounds int, rnd *rand.Rand) []*big.Int {
	if rnd == nil {
		rnd = defaultRand()
	}
	span := new(big.Int).Sub(n, big.NewInt(3)) // size of [2, n-2]
	ws := make([]*big.Int, rounds)
	for i := range ws {
		w := new(big.Int).Rand(rnd, span)
		ws[i] = w.Add(w, two)
	}
	return ws
}

// MillerRabin runs the strong Miller-Rabin probable prime test on n with
// the configured number of random witness rounds (20 by default, see
// Rounds). A single failing witness proves compositeness and returns
// immediately; if every witness passes, the verdict is ProbablyPrime with
// confidence 1 - 4^-rounds. Progress is reported once per witness, and only
// when the round count or the modulus size makes the run worth reporting.
func MillerRabin(n *big.Int, options ...Option) Verdict {
	cfg := makeconfigs()
	for _, f := range options {
		f(cfg)
	}
	if v, ok := trialDivision(n); ok {
		return v
	}
	ws := randomWitnesses(n, cfg.rounds, cfg.rnd)
	var tr *tracker
	if cfg.rounds > 20 || n.BitLen() > 1000 {
		tr = newTracker(cfg.sink, fmt.Sprintf("miller-rabin (%d bits)", n.BitLen()), len(ws), 0)
	}
	return millerRabin(n, ws, false, tr)
}

// millerRabin is the common witness loop. With deterministic == true the
// witness set is assumed exhaustive for n and a full pass proves primality;
// otherwise the verdict is probabilistic with one factor of 1/4 per
// witness.
func millerRabin(n *big.Int, witnesses []*big.Int, deterministic bool, tr *tracker) Verdict {
	// n is odd and > 3 here: trivial cases are screened by the callers
	s, d := decompose(new(big.Int).Sub(n, one))
	nm1 := new(big.Int).Sub(n, one)
	x := new(big.Int)
	for i, a := range witnesses {
		if !mrWitness(x, a, n, nm1, d, s) {
			return composite()
		}
		if !tr.step(i + 1) {
			return cancelled()
		}
	}
	tr.finish()
	if deterministic {
		return prime()
	}
	return probably(mrConfidence(len(witnesses)))
}

// mrConfidence is the standard error bound 1 - 4^-rounds, computed
// exactly. It reflects the round count actually used, never a requested
// one. Beyond 26 rounds the bound is indistinguishable from 1 in float64.
func mrConfidence(rounds int) float64 {
	if rounds > 26 {
		return 1
	}
	return 1 - 1/float64(uint64(1)<<uint(2*rounds))
}

// mrWitness reports whether witness a is inconclusive for n (true means n
// is still possibly prime). x is scratch space. Uses binary
// square-and-multiply modular exponentiation throughout, so the cost is
// O(log d) multiplications.
func mrWitness(x, a, n, nm1, d *big.Int, s int) bool {
	x.Exp(a, d, n)
	if x.Cmp(one) == 0 || x.Cmp(nm1) == 0 {
		return true
	}
	for i := 0; i < s-1; i++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(nm1) == 0 {
			return true
		}
		if x.Cmp(one) == 0 {
			return false
		}
	}
	return false
}
