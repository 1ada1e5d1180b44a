//go:build gmp

// Copyright (c) 2026 SiestaCat
//
// MIT License

// GMP-backed accelerator, conditionally compiled with the "gmp" build tag
// so that the default build stays pure Go and portable. Requires libgmp on
// the system (libgmp-dev on Debian/Ubuntu, brew install gmp on macOS).

package prime

import (
	"math/big"

	"github.com/ncw/gmp"
)

func init() {
	RegisterAccelerator(gmpAccelerator{})
}

// gmpAccelerator answers primality for candidates up to 64 bits through
// libgmp. mpz_probab_prime_p runs BPSW plus extra Miller-Rabin rounds,
// which is exact in this range, so its verdicts are bit-identical to the
// engine's own deterministic small path.
type gmpAccelerator struct{}

func (gmpAccelerator) Available() bool {
	return true
}

func (gmpAccelerator) MaxBits() int {
	return 64
}

func (gmpAccelerator) IsPrime(n *big.Int) (bool, bool) {
	if n.BitLen() > 64 || n.Sign() <= 0 {
		return false, false
	}
	z := new(gmp.Int).SetBytes(n.Bytes())
	return z.ProbablyPrime(25), true
}
