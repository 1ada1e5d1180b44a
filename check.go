// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"
)

// Check is the single-candidate entry point of the engine: it screens out
// trivial inputs, consults the accelerator when one is configured and the
// candidate fits its eligible width, resolves a Plan (see Select), and
// runs the planned test. A *SelectionError from an impossible explicit
// request is reported as an Invalid verdict carrying the reason.
func Check(c *Candidate, options ...Option) Verdict {
	cfg := makeconfigs()
	for _, f := range options {
		f(cfg)
	}
	return check(c, cfg)
}

// CheckString parses raw and checks the resulting candidate. Parse
// failures surface as the returned error, not as a verdict.
func CheckString(raw string, options ...Option) (Verdict, error) {
	c, err := Parse(raw)
	if err != nil {
		return Verdict{}, err
	}
	return Check(c, options...), nil
}

func check(c *Candidate, cfg *configs) Verdict {
	n := c.Value

	// trivial pre-filters, applied before any heavy algorithm regardless
	// of the plan
	if n.Cmp(two) < 0 {
		return composite()
	}
	if v, ok := trialDivision(n); ok {
		return v
	}

	if cfg.algorithm == AlgAuto {
		if v, ok := tryAccelerator(cfg.accel, n); ok {
			return v
		}
		if n.BitLen() <= 64 {
			// exact in this range: the twelve fixed witnesses are an
			// exhaustive set far beyond 2^64
			return millerRabin(n, deterministicWitnesses(n), true, nil)
		}
	}

	plan, err := selectPlan(c, cfg)
	if err != nil {
		return invalid(err.Error())
	}
	logger.Debug("algorithm selected",
		zap.String("algorithm", plan.Algorithm.String()),
		zap.Int("bits", n.BitLen()),
		zap.Bool("deterministic", plan.Deterministic),
	)

	switch plan.Algorithm {
	case AlgMillerRabin:
		if plan.Deterministic {
			var tr *tracker
			if n.BitLen() > 1000 {
				tr = newTracker(cfg.sink, fmt.Sprintf("miller-rabin (%d bits)", n.BitLen()), len(detWitnesses), 0)
			}
			return millerRabin(n, deterministicWitnesses(n), true, tr)
		}
		return MillerRabin(n, Rounds(plan.Rounds), WithProgress(cfg.sink), WithRand(cfg.rnd))
	case AlgLucas:
		return Lucas(n, WithProgress(cfg.sink))
	case AlgBPSW:
		return BPSW(n, WithProgress(cfg.sink))
	case AlgLucasLehmer:
		return LucasLehmer(plan.Exponent, WithProgress(cfg.sink))
	}
	return invalid("no algorithm selected")
}

// tryAccelerator delegates an eligible candidate to the configured fast
// path. Any unavailability or refusal falls through to the CPU engine.
func tryAccelerator(a Accelerator, n *big.Int) (Verdict, bool) {
	if a == nil || !a.Available() || n.BitLen() > a.MaxBits() {
		return Verdict{}, false
	}
	isPrime, ok := a.IsPrime(n)
	if !ok {
		logger.Debug("accelerator declined, falling back to CPU path",
			zap.Int("bits", n.BitLen()),
		)
		return Verdict{}, false
	}
	if isPrime {
		return prime(), true
	}
	return composite(), true
}
