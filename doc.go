// Copyright (c) 2026 SiestaCat
//
// MIT License

/*
Package prime decides whether arbitrarily large integers, up to millions of
decimal digits, are prime. It implements four tests — strong Miller-Rabin,
strong Lucas, Baillie-PSW and Lucas-Lehmer — behind a selection policy that
picks the cheapest correct one for the shape and size of each candidate,
and a batch coordinator that evaluates many candidates with cooperative
progress feedback.

Basics

Candidates enter the engine through Parse, which accepts a plain decimal
numeral, the Mersenne shorthand 2^p-1, or a restricted arithmetic
expression over integer literals and the operators + - * ** (no
identifiers, no function calls). Check runs the selected test and returns a
Verdict: Prime and Composite are exact; ProbablyPrime carries the
confidence bound of a probabilistic run; Invalid reports why no
classification was produced. Options follow the functional style: for
example

	c, _ := prime.Parse("2^127-1")
	v := prime.Check(c)                                  // Lucas-Lehmer, exact
	v = prime.MillerRabin(n, prime.Rounds(40))           // explicit test

Selection

Under the default automatic policy, Mersenne-shaped candidates get
Lucas-Lehmer; candidates below the documented deterministic-witness bound
(about 3.3e24) get Miller-Rabin with a fixed, exhaustive witness set; and
everything larger gets Baillie-PSW, which has no known pseudoprime.
Trivial cases are screened by trial division first, so cheap inputs never
pay for modular exponentiation.

Progress and cancellation

Long-running tests report fractional completion through a caller-supplied
Sink at well-defined checkpoints: witness boundaries for Miller-Rabin,
ladder steps for Lucas, and squaring iterations for Lucas-Lehmer. The sink
decides rendering; the engine only guarantees monotonically non-decreasing
counts and a constant total per invocation. A sink returning false is a
cooperative stop request, honored at the next checkpoint with an Invalid
verdict carrying the reason "cancelled".

Use of build tags

The default build is pure Go on top of math/big. Building with the tag
`gmp` links against libgmp through github.com/ncw/gmp and registers an
accelerated fast path for candidates up to 64 bits; its verdicts are
bit-identical to the portable path, and its absence is handled as a normal
condition, never an error.
*/
package prime

// Version of the library, reported by the prime-check command.
const Version = "1.0.0"
