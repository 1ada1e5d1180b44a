// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

// Kind is the classification carried by a Verdict.
type Kind int

const (
	// Composite means the candidate is proven composite.
	Composite Kind = iota
	// Prime means the candidate is proven prime.
	Prime
	// ProbablyPrime means the candidate passed a probabilistic test; the
	// associated confidence bounds the false-positive probability.
	ProbablyPrime
	// Invalid means no classification was produced; the Reason field of the
	// Verdict explains why (bad parameters, cancellation, ...).
	Invalid
)

var kindnames = [4]string{
	Composite:     "composite",
	Prime:         "prime",
	ProbablyPrime: "probably prime",
	Invalid:       "invalid",
}

func (k Kind) String() string {
	return kindnames[k]
}

// Verdict is the result of a primality test. Miller-Rabin with random
// witnesses and BPSW return probabilistic verdicts (no false negatives on
// primes); Lucas-Lehmer, trial division and the deterministic-witness
// Miller-Rabin path return exact ones.
type Verdict struct {
	Kind Kind
	// Confidence is the probability bound on a ProbablyPrime verdict. A
	// Miller-Rabin run with k random rounds reports 1 - 4^-k. BPSW reports
	// 1: the combined test has no known pseudoprime, so no meaningful
	// per-round bound applies.
	Confidence float64
	// Reason is only set on Invalid verdicts.
	Reason string
}

// IsPrime reports whether the verdict classifies the candidate as prime,
// either exactly or probabilistically.
func (v Verdict) IsPrime() bool {
	return v.Kind == Prime || v.Kind == ProbablyPrime
}

func (v Verdict) String() string {
	if v.Kind == Invalid && v.Reason != "" {
		return "invalid: " + v.Reason
	}
	return v.Kind.String()
}

func prime() Verdict {
	return Verdict{Kind: Prime, Confidence: 1}
}

func composite() Verdict {
	return Verdict{Kind: Composite}
}

func probably(confidence float64) Verdict {
	return Verdict{Kind: ProbablyPrime, Confidence: confidence}
}

func invalid(reason string) Verdict {
	return Verdict{Kind: Invalid, Reason: reason}
}

// cancelled is the verdict returned when a progress sink requests a stop.
func cancelled() Verdict {
	return invalid("cancelled")
}
