package interp

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lilac/ast"
	"lilac/report"
	"lilac/syntax"
)

// evalString parses and evaluates a source string, feeding input to any `read`
// expressions it contains.
func evalString(t *testing.T, src, input string) (int64, error) {
	expr, err := syntax.ParseString(src)
	require.NoError(t, err, "parse `%s`", src)

	return NewInterpreter(strings.NewReader(input)).EvalExpr(expr)
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		src   string
		value int64
	}{
		{"255", 255},
		{"- 3", -3},
		{"(- (- 5))", 5},
		{"(+ 1 2)", 3},
		{"(+ 10 (- (+ 5 3)))", 2},
		{"- (- 1) (+ 3 (- 5))", 1},
	}

	for _, test := range tests {
		value, err := evalString(t, test.src, "")
		require.NoError(t, err, "eval `%s`", test.src)
		assert.Equal(t, test.value, value, "eval `%s`", test.src)
	}
}

func TestEvalLet(t *testing.T) {
	tests := []struct {
		src   string
		value int64
	}{
		{"(let ([x 1]) x)", 1},
		{"(let ([x 32]) (+ (let ([x 10]) x) x))", 42},
		// The initializer of the inner binding resolves in the outer scope.
		{"(let ([x 2]) (let ([x (+ x x)]) (+ x 1)))", 5},
	}

	for _, test := range tests {
		value, err := evalString(t, test.src, "")
		require.NoError(t, err, "eval `%s`", test.src)
		assert.Equal(t, test.value, value, "eval `%s`", test.src)
	}
}

func TestEvalRead(t *testing.T) {
	value, err := evalString(t, "(let ([x read]) (let ([y read]) (+ x (- y))))", "50\n8\n")
	require.NoError(t, err)
	assert.Equal(t, int64(42), value)

	_, err = evalString(t, "read", "")
	require.Error(t, err)
	assert.Equal(t, "expected an integer on input", err.Error())

	_, err = evalString(t, "read", "banana\n")
	require.Error(t, err)
	assert.Equal(t, "invalid integer on input: banana", err.Error())
}

func TestEvalErrors(t *testing.T) {
	const maxInt64 = "9223372036854775807"

	tests := []struct {
		src     string
		message string
	}{
		{
			fmt.Sprintf("(- (- (- %s) 1))", maxInt64),
			"arithmetic overflow: -(-9223372036854775808)",
		},
		{
			fmt.Sprintf("(- (- (- %s) 1) 1)", maxInt64),
			"arithmetic overflow: -9223372036854775808 - 1",
		},
		{
			fmt.Sprintf("(+ %s 1)", maxInt64),
			"arithmetic overflow: 9223372036854775807 + 1",
		},
		{"(let ([x1 1]) x)", "unknown identifier: `x`"},
	}

	for _, test := range tests {
		_, err := evalString(t, test.src, "")
		require.Error(t, err, "eval `%s`", test.src)
		assert.Equal(t, test.message, err.Error(), "eval `%s`", test.src)
	}
}

func TestEvalUnknownIdentifierSpan(t *testing.T) {
	expr, err := syntax.ParseString("(+ 1 oops)")
	require.NoError(t, err)

	_, err = NewInterpreter(strings.NewReader("")).EvalExpr(expr)
	require.Error(t, err)

	// The error points at the offending identifier.
	lce, ok := err.(*report.LocalCompileError)
	require.True(t, ok)

	ident := expr.(*ast.BinaryOp).Rhs.(*ast.Identifier)
	assert.Equal(t, ident.Span(), lce.Span)
}
