// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

import "math/big"

// Plan is the outcome of algorithm selection: which test to run on a
// candidate and with what parameters.
type Plan struct {
	Algorithm Algorithm
	// Rounds is the witness count for a probabilistic Miller-Rabin run.
	Rounds int
	// Exponent is the Mersenne exponent for a Lucas-Lehmer run.
	Exponent int
	// Deterministic marks a Miller-Rabin plan using the fixed witness set
	// that is exhaustive below detWitnessBound; such a run proves
	// primality instead of bounding it.
	Deterministic bool
}

// Select resolves the test to run on c. With the default AlgAuto request
// the policy is, in order:
//
//  1. a candidate of Mersenne shape with known exponent p >= 2 gets
//     Lucas-Lehmer, the exact and cheapest correct choice for that shape;
//  2. a candidate below detWitnessBound gets Miller-Rabin with the
//     deterministic witness set;
//  3. anything larger gets BPSW, which has no known pseudoprime and is
//     cheaper than raising Miller-Rabin round counts arbitrarily.
//
// An explicit request (see Use) is only validated, never overridden:
// Lucas-Lehmer in particular requires the candidate to be exactly 2^p-1
// for a known p, and fails with a *SelectionError otherwise.
func Select(c *Candidate, options ...Option) (Plan, error) {
	cfg := makeconfigs()
	for _, f := range options {
		f(cfg)
	}
	return selectPlan(c, cfg)
}

func selectPlan(c *Candidate, cfg *configs) (Plan, error) {
	if cfg.algorithm == AlgLucasLehmer {
		p := cfg.exponent
		if p == 0 {
			p = c.Exponent
		}
		if p < 2 {
			return Plan{}, &SelectionError{Msg: "lucas-lehmer requires a Mersenne exponent p >= 2"}
		}
		if c.Value.Cmp(MersenneCandidate(p)) != 0 {
			return Plan{}, &SelectionError{Msg: "not a Mersenne number for given p"}
		}
		return Plan{Algorithm: AlgLucasLehmer, Exponent: p}, nil
	}
	if cfg.algorithm != AlgAuto {
		return Plan{Algorithm: cfg.algorithm, Rounds: cfg.rounds}, nil
	}

	// automatic policy
	if p, ok := mersenneExponent(c); ok {
		return Plan{Algorithm: AlgLucasLehmer, Exponent: p}, nil
	}
	if c.Value.Cmp(detWitnessBound) < 0 {
		return Plan{Algorithm: AlgMillerRabin, Deterministic: true}, nil
	}
	return Plan{Algorithm: AlgBPSW}, nil
}

// mersenneExponent returns the exponent to hand to Lucas-Lehmer under
// automatic selection. A candidate tagged by the parser qualifies
// directly. An untagged candidate of Mersenne shape qualifies only when
// its exponent is itself prime: 2^p-1 with composite p is composite, and
// the general tests dispose of it more cheaply than p-2 squarings would.
func mersenneExponent(c *Candidate) (int, bool) {
	if c.Source == SourceMersenne && c.Exponent >= 2 {
		return c.Exponent, true
	}
	if p, ok := isMersenne(c.Value); ok && isPrimeInt(p) {
		return p, true
	}
	return 0, false
}

// MersenneCandidate returns the Mersenne number 2^p - 1.
func MersenneCandidate(p int) *big.Int {
	m := new(big.Int).Lsh(one, uint(p))
	return m.Sub(m, one)
}
