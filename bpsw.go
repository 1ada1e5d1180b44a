// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

import (
	"fmt"
	"math/big"
)

// BPSW runs the Baillie-PSW test: one strong Miller-Rabin pass with base 2,
// then, only when that pass is inconclusive, one strong Lucas pass. Either
// leg failing proves compositeness. Both legs passing yields ProbablyPrime
// with no known counterexample, which we report as confidence 1: there is
// no round parameter, since repeating a test with no known pseudoprimes
// adds no proven benefit.
func BPSW(n *big.Int, options ...Option) Verdict {
	cfg := makeconfigs()
	for _, f := range options {
		f(cfg)
	}
	if v, ok := trialDivision(n); ok {
		return v
	}
	if v := millerRabin(n, []*big.Int{two}, false, nil); !v.IsPrime() {
		return v
	}
	// the Lucas leg dominates the cost, so it owns the progress cadence
	var tr *tracker
	if n.BitLen() > 1000 {
		tr = newTracker(cfg.sink, fmt.Sprintf("bpsw (%d bits)", n.BitLen()), lucasSteps(n), 0)
	}
	if v := lucasStrong(n, tr); v.Kind != ProbablyPrime {
		return v
	}
	return probably(1)
}
