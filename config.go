// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// defaultRand builds the time-seeded source used when no generator is
// injected with WithRand.
func defaultRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// logger is the zap logger used by this package; default is a no-op logger.
var logger = zap.NewNop()

// SetLogger changes the zap logger instance used by this package. The
// engine only logs at Debug level (selection decisions, accelerator
// fallback), never inside a per-iteration hot loop.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// configs stores the parameters of one test invocation
type configs struct {
	algorithm Algorithm   // requested algorithm, AlgAuto by default
	rounds    int         // Miller-Rabin round count
	exponent  int         // Mersenne exponent p, 0 when unknown
	sink      Sink        // progress sink, nil for none
	rnd       *rand.Rand  // witness source, nil for a time-seeded one
	accel     Accelerator // small-integer fast path, nil for none
	workers   int         // batch parallelism, 1 by default
}

// _DEFAULTROUNDS is the default number of Miller-Rabin rounds when none is
// requested. 20 rounds bound the false-positive probability by 4^-20.
const _DEFAULTROUNDS int = 20

func makeconfigs() *configs {
	return &configs{
		algorithm: AlgAuto,
		rounds:    _DEFAULTROUNDS,
		workers:   1,
	}
}

// Option is a configuration option (function) accepted by Check, Select,
// the standalone tests and NewRunner. Options are built with the functions
// below and applied in order.
type Option func(*configs)

// Use is a configuration option (function). Used as a parameter in Check or
// Select it requests an explicit algorithm instead of automatic selection.
// The selector then only validates preconditions and honors the request
// verbatim.
func Use(alg Algorithm) Option {
	return func(c *configs) {
		c.algorithm = alg
	}
}

// Rounds is a configuration option (function). Used as a parameter in Check
// or MillerRabin it sets the number of random witnesses tried before
// declaring a candidate probably prime. The confidence of the resulting
// verdict always reflects the round count actually used.
func Rounds(n int) Option {
	return func(c *configs) {
		if n > 0 {
			c.rounds = n
		}
	}
}

// Exponent is a configuration option (function). Used as a parameter in
// Check it supplies the Mersenne exponent p when requesting Lucas-Lehmer on
// a candidate that was not parsed from the 2^p-1 shorthand.
func Exponent(p int) Option {
	return func(c *configs) {
		c.exponent = p
	}
}

// WithProgress is a configuration option (function). Used as a parameter in
// Check or any standalone test it attaches a progress sink. Long-running
// tests invoke the sink at their checkpoint boundaries; cheap tests skip
// reporting entirely.
func WithProgress(s Sink) Option {
	return func(c *configs) {
		c.sink = s
	}
}

// WithRand is a configuration option (function). Used as a parameter in
// Check or MillerRabin it injects the source of random witnesses, making
// probabilistic runs reproducible when seeded. The default is a
// time-seeded source.
func WithRand(r *rand.Rand) Option {
	return func(c *configs) {
		c.rnd = r
	}
}

// WithAccelerator is a configuration option (function). Used as a parameter
// in Check it injects a small-integer fast path, typically the one returned
// by DefaultAccelerator. Candidates within the accelerator's eligible bit
// width are delegated to it; unavailability or failure falls back to the
// CPU engine transparently.
func WithAccelerator(a Accelerator) Option {
	return func(c *configs) {
		c.accel = a
	}
}

// Workers is a configuration option (function). Used as a parameter in
// NewRunner it sets the number of batch items tested concurrently. Each
// individual test remains sequential; results are indexed back to input
// position regardless of completion order. The default is 1.
func Workers(n int) Option {
	return func(c *configs) {
		if n > 0 {
			c.workers = n
		}
	}
}
