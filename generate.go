// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

import (
	"math/big"
	"math/rand"

	goerrors "github.com/go-errors/errors"
)

// RandomProbablePrime draws random odd integers of exactly the requested
// bit length until one passes BPSW. Candidates sharing a factor with the
// small-primes product are discarded with a single modular reduction
// before any expensive test runs. rnd may be nil for a time-seeded source.
func RandomProbablePrime(rnd *rand.Rand, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, goerrors.Errorf("prime size must be at least 2 bits, got %d", bits)
	}
	top := new(big.Int).Lsh(one, uint(bits-1))
	span := new(big.Int).Set(top) // candidates are top + uniform[0, 2^(bits-1))
	mod := new(big.Int)
	for {
		n := new(big.Int)
		if rnd == nil {
			n = randomBelow(span)
		} else {
			n.Rand(rnd, span)
		}
		n.Add(n, top)
		n.SetBit(n, 0, 1) // make it odd

		// cheap coprimality screen, skipped for tiny sizes where the
		// candidate might equal one of the screen primes itself
		if bits > 6 {
			m := mod.Mod(n, smallPrimesProduct).Uint64()
			if hasSmallOddFactor(m) {
				continue
			}
		}
		if BPSW(n).IsPrime() {
			return n, nil
		}
	}
}

// hasSmallOddFactor tests divisibility of the reduced candidate by each
// odd prime behind smallPrimesProduct using machine arithmetic only.
func hasSmallOddFactor(m uint64) bool {
	for _, p := range smallPrimes[1:16] { // odd primes 3..53
		if m%uint64(p) == 0 {
			return true
		}
	}
	return false
}

// randomBelow draws a uniform value in [0, span) from the default source.
func randomBelow(span *big.Int) *big.Int {
	return new(big.Int).Rand(defaultRand(), span)
}
