package rename

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lilac/syntax"
)

func TestUniquify(t *testing.T) {
	tests := []struct {
		src  string
		repr string
	}{
		{"let ([x 0]) x", "(let ([x0 0]) x0)"},
		{"let ([x0 0]) x0", "(let ([x0 0]) x0)"},
		{"let ([x1 0]) x1", "(let ([x0 0]) x0)"},
		// Shadowing: the inner binding's initializer resolves to the outer
		// binding.
		{
			"let ([x (+ 1 2)]) (+ (let ([x x]) x) x)",
			"(let ([x0 (+ 1 2)]) (+ (let ([x1 x0]) x1) x0))",
		},
		{
			"let ([x0 (let ([x0 1]) (+ x0 2))]) (- x0)",
			"(let ([x1 (let ([x0 1]) (+ x0 2))]) (- x1))",
		},
	}

	for _, test := range tests {
		expr, err := syntax.ParseString(test.src)
		require.NoError(t, err, "parse `%s`", test.src)

		renamed, err := UniquifyExpr(expr)
		require.NoError(t, err, "uniquify `%s`", test.src)
		assert.Equal(t, test.repr, renamed.Repr(), "uniquify `%s`", test.src)
	}
}

func TestUniquifyLeavesOperatorsIntact(t *testing.T) {
	expr, err := syntax.ParseString("(+ read (- 3))")
	require.NoError(t, err)

	renamed, err := UniquifyExpr(expr)
	require.NoError(t, err)
	assert.Equal(t, "(+ read (- 3))", renamed.Repr())
}

func TestUniquifyUnknownIdentifier(t *testing.T) {
	tests := []string{
		"x",
		"let ([x1 1]) x",
		"let ([x x]) x",
	}

	for _, src := range tests {
		expr, err := syntax.ParseString(src)
		require.NoError(t, err, "parse `%s`", src)

		_, err = UniquifyExpr(expr)
		require.Error(t, err, "uniquify `%s`", src)
		assert.Contains(t, err.Error(), "unknown identifier", "uniquify `%s`", src)
	}
}
