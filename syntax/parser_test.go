package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleExpr(t *testing.T) {
	tests := []struct {
		src  string
		repr string
	}{
		{"(+ 1 2)", "(+ 1 2)"},
		{"1", "1"},
		{"-3", "(- 3)"},
		{"read", "read"},
		{"(( (+ 1 (3) )))", "(+ 1 3)"},
		{"(+ 10 (- (+ 5 3)))", "(+ 10 (- (+ 5 3)))"},
		{"- (- read) (+ 3 (- 5))", "(- (- read) (+ 3 (- 5)))"},
	}

	for _, test := range tests {
		expr, err := ParseString(test.src)
		require.NoError(t, err, "parse `%s`", test.src)
		assert.Equal(t, test.repr, expr.Repr())
	}
}

func TestParseLetExpr(t *testing.T) {
	tests := []struct {
		src  string
		repr string
	}{
		{"(let ([x 1]) x)", "(let ([x 1]) x)"},
		{"let ([x 1]) x", "(let ([x 1]) x)"},
		{"(let ([x1 1]) x)", "(let ([x1 1]) x)"},
		{"(((let ([a1b (+ 12 20)]) (+ 10 x))))", "(let ([a1b (+ 12 20)]) (+ 10 x))"},
		{"(let ([x (32)]) (+ (let ([x 10]) x) (x)))", "(let ([x 32]) (+ (let ([x 10]) x) x))"},
		{
			"(let ([x (read)]) (let ([y (read)]) (+ x (- y))))",
			"(let ([x read]) (let ([y read]) (+ x (- y))))",
		},
	}

	for _, test := range tests {
		expr, err := ParseString(test.src)
		require.NoError(t, err, "parse `%s`", test.src)
		assert.Equal(t, test.repr, expr.Repr())
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		src     string
		message string
	}{
		{"18446744073709551616", "integer literal out of range: 18446744073709551616"},
		{" + 3", "operator `+` cannot take 1 operand(s)"},
		{" + 3 3 1", "operator `+` cannot take 3 operand(s)"},
		{"- 3 3 1", "operator `-` cannot take 3 operand(s)"},
		{" * 3 3 1", "unknown rune: `*`"},
		{" (+ 2 3", "unclosed `(`"},
		// The missing closer wins over the body's own parse error.
		{"(+ 1", "unclosed `(`"},
		{"(let ([x 1]) ", "unclosed `(`"},
		{"3 3", "unexpected token: `3`"},
		{"(3))", "unexpected token: `)`"},
		{"let [x 10] 10", "unexpected token: `[`"},
		{"let ([(x) 10]) 10", "unexpected token: `(`"},
		{"let ([x 1 2]) 10", "unclosed `[`"},
		{"", "unexpected end of file"},
	}

	for _, test := range tests {
		_, err := ParseString(test.src)
		require.Error(t, err, "parse `%s`", test.src)
		assert.Equal(t, test.message, err.Error(), "parse `%s`", test.src)
	}
}
