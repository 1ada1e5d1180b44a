// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseForms(t *testing.T) {
	var parseTests = []struct {
		input    string
		value    string
		source   Source
		exponent int
	}{
		{"97", "97", SourcePlain, 0},
		{" 1000003 ", "1000003", SourcePlain, 0},
		{"2^7-1", "127", SourceMersenne, 7},
		{"2^7 - 1", "127", SourceMersenne, 7},
		{"2^127-1", "170141183460469231731687303715884105727", SourceMersenne, 127},
		{"3*5+2", "17", SourceExpression, 0},
		{"2**10", "1024", SourceExpression, 0},
		{"(2**5 - 1) * 3", "93", SourceExpression, 0},
		{"10**20 + 39", "100000000000000000039", SourceExpression, 0},
		{"2**2**3", "256", SourceExpression, 0}, // right-associative
		{"100 - 3", "97", SourceExpression, 0},
	}
	for _, tt := range parseTests {
		c, err := Parse(tt.input)
		require.NoError(t, err, "Parse(%q)", tt.input)
		want, _ := new(big.Int).SetString(tt.value, 10)
		assert.Zero(t, c.Value.Cmp(want), "Parse(%q): got %s, want %s", tt.input, c.Value, tt.value)
		assert.Equal(t, tt.source, c.Source, "Parse(%q): source", tt.input)
		assert.Equal(t, tt.exponent, c.Exponent, "Parse(%q): exponent", tt.input)
	}
}

func TestParseErrors(t *testing.T) {
	var errorTests = []struct {
		input string
		kind  ParseErrorKind
	}{
		{"", InvalidFormat},
		{"not-a-number", InvalidFormat},
		{"12abc", InvalidFormat},
		{"os.system('x')", InvalidFormat},
		{"1/2", InvalidFormat},
		{"(1+2", InvalidFormat},
		{"0", NegativeOrZero},
		{"-7", NegativeOrZero},
		{"3-5", NegativeOrZero},
		{"2^0-1", NegativeOrZero},
		{"2**-3", EvaluationError},
		{"10**999999999999", EvaluationError},
		{"2^999999999999-1", EvaluationError},
	}
	for _, tt := range errorTests {
		_, err := Parse(tt.input)
		require.Error(t, err, "Parse(%q)", tt.input)
		var pe *ParseError
		require.ErrorAs(t, err, &pe, "Parse(%q)", tt.input)
		assert.Equal(t, tt.kind, pe.Kind, "Parse(%q): kind, got error %v", tt.input, err)
	}
}

func TestParseIsPure(t *testing.T) {
	c1, err := Parse("2^31-1")
	require.NoError(t, err)
	c2, err := Parse("2^31-1")
	require.NoError(t, err)
	require.Zero(t, c1.Value.Cmp(c2.Value))

	// the verdict must not depend on prior runs: candidates are never
	// mutated by a test
	before := new(big.Int).Set(c1.Value)
	v1 := Check(c1)
	v2 := Check(c1)
	assert.Equal(t, v1.Kind, v2.Kind)
	assert.Zero(t, c1.Value.Cmp(before), "candidate mutated by Check")
}
