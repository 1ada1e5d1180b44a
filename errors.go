// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// ParseErrorKind discriminates the ways an input string can fail to parse.
type ParseErrorKind int

const (
	// InvalidFormat means the input is not a decimal numeral, a supported
	// arithmetic expression, or the 2^p-1 Mersenne shorthand.
	InvalidFormat ParseErrorKind = iota
	// EvaluationError means the input parsed but could not be evaluated
	// (for instance an exponent too large to materialize).
	EvaluationError
	// NegativeOrZero means the input evaluates to an integer that is not a
	// positive natural number.
	NegativeOrZero
)

var parsekindnames = [3]string{
	InvalidFormat:   "invalid format",
	EvaluationError: "evaluation error",
	NegativeOrZero:  "negative or zero",
}

func (k ParseErrorKind) String() string {
	return parsekindnames[k]
}

// ParseError is returned by Parse when an input string does not denote a
// testable candidate. It is always recoverable: in a batch it is attached to
// the offending item and never aborts sibling items.
type ParseError struct {
	Kind  ParseErrorKind
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s (%s)", e.Input, e.Msg, e.Kind)
}

// SelectionError is returned by Select when an explicitly requested
// algorithm cannot be applied to the candidate, for instance Lucas-Lehmer
// without a valid Mersenne exponent.
type SelectionError struct {
	Msg string
}

func (e *SelectionError) Error() string {
	return "selection: " + e.Msg
}

// fault reports an arithmetic contract violation. These should not occur
// under correct use; we panic with a stack-carrying error so that the batch
// coordinator can capture the fault on the single offending item without
// corrupting its siblings.
func fault(format string, a ...interface{}) {
	panic(goerrors.Errorf("arithmetic fault: "+format, a...))
}
