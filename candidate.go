// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// Source records the textual form a Candidate was parsed from.
type Source int

const (
	SourcePlain      Source = iota // plain decimal numeral
	SourceExpression               // restricted arithmetic expression
	SourceMersenne                 // 2^p-1 shorthand
)

var sourcenames = [3]string{
	SourcePlain:      "plain",
	SourceExpression: "expression",
	SourceMersenne:   "mersenne",
}

func (s Source) String() string {
	return sourcenames[s]
}

// Candidate is a parsed, immutable test subject: an exact positive integer
// plus the provenance of its textual form. When the Mersenne shorthand was
// used, Exponent records p for later reuse by Lucas-Lehmer.
type Candidate struct {
	Value    *big.Int
	Source   Source
	Exponent int // Mersenne exponent p, only set when Source == SourceMersenne
	Raw      string
}

// Bits returns the bit length of the candidate value.
func (c *Candidate) Bits() int {
	return c.Value.BitLen()
}

// _MAXEXPONENT caps the exponents accepted by the parser, bounding results
// to roughly forty million decimal digits.
const _MAXEXPONENT = 1 << 27

var mersenneRe = regexp.MustCompile(`^2\^([0-9]+)\s*-\s*1$`)
var decimalRe = regexp.MustCompile(`^[0-9]+$`)

// Parse converts a textual candidate into a Candidate. Three forms are
// accepted: a plain decimal integer, the Mersenne shorthand 2^p-1 (spaces
// allowed around the minus sign), and a restricted arithmetic expression
// over integer literals with the operators + - * ** and parentheses. No
// identifiers or function calls are ever evaluated. Parse is a pure
// function; it fails with a *ParseError.
func Parse(raw string) (*Candidate, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, &ParseError{Kind: InvalidFormat, Input: raw, Msg: "empty input"}
	}
	if m := mersenneRe.FindStringSubmatch(s); m != nil {
		p, err := strconv.Atoi(m[1])
		if err != nil || p > _MAXEXPONENT {
			return nil, &ParseError{Kind: EvaluationError, Input: raw, Msg: "exponent out of range"}
		}
		if p < 1 {
			return nil, &ParseError{Kind: NegativeOrZero, Input: raw, Msg: "2^0-1 is zero"}
		}
		return &Candidate{Value: MersenneCandidate(p), Source: SourceMersenne, Exponent: p, Raw: raw}, nil
	}
	if decimalRe.MatchString(s) {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, &ParseError{Kind: InvalidFormat, Input: raw, Msg: "not a decimal numeral"}
		}
		if v.Sign() <= 0 {
			return nil, &ParseError{Kind: NegativeOrZero, Input: raw, Msg: "candidate must be positive"}
		}
		return &Candidate{Value: v, Source: SourcePlain, Raw: raw}, nil
	}
	v, err := evalExpression(s)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Input = raw
			return nil, pe
		}
		return nil, &ParseError{Kind: InvalidFormat, Input: raw, Msg: err.Error()}
	}
	if v.Sign() <= 0 {
		return nil, &ParseError{Kind: NegativeOrZero, Input: raw, Msg: "expression is not positive"}
	}
	return &Candidate{Value: v, Source: SourceExpression, Raw: raw}, nil
}

// ******************************************************************************************************

// expression grammar (recursive descent, over big.Int only):
//
//	expr   := term  { ('+' | '-') term }
//	term   := factor { '*' factor }
//	factor := '-' factor | power
//	power  := primary [ '**' factor ]
//	primary:= '(' expr ')' | literal
type exprParser struct {
	input string
	pos   int
}

func evalExpression(s string) (*big.Int, error) {
	p := &exprParser{input: s}
	v, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if p.pos != len(p.input) {
		return nil, p.errf(InvalidFormat, "unexpected %q", p.input[p.pos:])
	}
	return v, nil
}

func (p *exprParser) errf(kind ParseErrorKind, format string, a ...interface{}) error {
	return &ParseError{Kind: kind, Msg: "position " + strconv.Itoa(p.pos) + ": " + fmt.Sprintf(format, a...)}
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

// accept consumes the literal token tok when it is next in the input.
func (p *exprParser) accept(tok string) bool {
	p.skipSpaces()
	if strings.HasPrefix(p.input[p.pos:], tok) {
		p.pos += len(tok)
		return true
	}
	return false
}

func (p *exprParser) expr() (*big.Int, error) {
	v, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.accept("+"):
			w, err := p.term()
			if err != nil {
				return nil, err
			}
			v.Add(v, w)
		case p.accept("-"):
			w, err := p.term()
			if err != nil {
				return nil, err
			}
			v.Sub(v, w)
		default:
			return v, nil
		}
	}
}

func (p *exprParser) term() (*big.Int, error) {
	v, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		// disambiguate '*' from '**'
		p.skipSpaces()
		if strings.HasPrefix(p.input[p.pos:], "**") || !p.accept("*") {
			return v, nil
		}
		w, err := p.factor()
		if err != nil {
			return nil, err
		}
		v.Mul(v, w)
	}
}

func (p *exprParser) factor() (*big.Int, error) {
	if p.accept("-") {
		v, err := p.factor()
		if err != nil {
			return nil, err
		}
		return v.Neg(v), nil
	}
	return p.power()
}

func (p *exprParser) power() (*big.Int, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	if !p.accept("**") {
		return base, nil
	}
	exp, err := p.factor()
	if err != nil {
		return nil, err
	}
	if exp.Sign() < 0 {
		return nil, p.errf(EvaluationError, "negative exponent")
	}
	if !exp.IsInt64() || exp.Int64() > _MAXEXPONENT {
		return nil, p.errf(EvaluationError, "exponent out of range")
	}
	e := exp.Int64()
	if int64(base.BitLen())*e > _MAXEXPONENT {
		return nil, p.errf(EvaluationError, "result too large")
	}
	return base.Exp(base, exp, nil), nil
}

func (p *exprParser) primary() (*big.Int, error) {
	if p.accept("(") {
		v, err := p.expr()
		if err != nil {
			return nil, err
		}
		if !p.accept(")") {
			return nil, p.errf(InvalidFormat, "missing closing parenthesis")
		}
		return v, nil
	}
	p.skipSpaces()
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return nil, p.errf(InvalidFormat, "expected integer literal")
	}
	v, ok := new(big.Int).SetString(p.input[start:p.pos], 10)
	if !ok {
		return nil, p.errf(InvalidFormat, "bad integer literal")
	}
	return v, nil
}
