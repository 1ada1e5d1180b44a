// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

import "math/big"

// Accelerator is an injectable fast path for small-integer primality
// checks, an optional execution unit the engine may delegate to for
// candidates below a bit-width threshold. Implementations must produce
// verdicts bit-identical to the CPU path for every input within their
// eligible range. Absence or failure of an accelerator is a normal,
// expected condition: the engine falls back to the CPU path with no change
// in the returned verdict.
type Accelerator interface {
	// Available reports whether the accelerator can currently be used.
	Available() bool
	// MaxBits is the bit-width eligibility threshold, inclusive.
	MaxBits() int
	// IsPrime answers exactly for an eligible n. ok == false means the
	// accelerator could not answer and the caller must fall back.
	IsPrime(n *big.Int) (prime bool, ok bool)
}

// defaultAccelerator is set by an accelerated build (see the gmp build
// tag); nil in the portable build.
var defaultAccelerator Accelerator

// RegisterAccelerator installs a process-wide default accelerator,
// retrievable with DefaultAccelerator. Typically called from an init
// function of a build-tagged implementation.
func RegisterAccelerator(a Accelerator) {
	defaultAccelerator = a
}

// DefaultAccelerator returns the registered default accelerator, or nil
// when this build carries none.
func DefaultAccelerator() Accelerator {
	return defaultAccelerator
}

// AcceleratorAvailable reports whether a default accelerator is registered
// and usable.
func AcceleratorAvailable() bool {
	return defaultAccelerator != nil && defaultAccelerator.Available()
}
