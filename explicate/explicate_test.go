package explicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lilac/syntax"
	"lilac/tac"
)

// explicateString parses an already-flat source string and explicates it.
func explicateString(t *testing.T, src string) *tac.Program {
	expr, err := syntax.ParseString(src)
	require.NoError(t, err, "parse `%s`", src)

	return ExplicateControl(expr)
}

func TestExplicateControl(t *testing.T) {
	assert.Equal(t,
		"start:\n"+
			"    return (+ 1 2);\n",
		explicateString(t, "+ 1 2").Repr(),
	)

	assert.Equal(t,
		"local: [x1, x2, y]\n"+
			"start:\n"+
			"    x1 = 20;\n"+
			"    x2 = 22;\n"+
			"    y = (+ x1 x2);\n"+
			"    return y;\n",
		explicateString(t, "let ([y (let ([x1 20]) (let ([x2 22]) (+ x1 x2)))]) y").Repr(),
	)

	assert.Equal(t,
		"local: [tmp0, tmp1, tmp2, tmp3, tmp4, tmp5, tmp6]\n"+
			"start:\n"+
			"    tmp0 = (- 3);\n"+
			"    tmp1 = (- 2);\n"+
			"    tmp2 = (+ 1 tmp1);\n"+
			"    tmp3 = (+ tmp0 tmp2);\n"+
			"    tmp4 = (+ 1 2);\n"+
			"    tmp5 = (- 1);\n"+
			"    tmp6 = (- tmp4 tmp5);\n"+
			"    return (+ tmp3 tmp6);\n",
		explicateString(t, `(let ([tmp0 (- 3)])
			(let ([tmp1 (- 2)])
				(let ([tmp2 (+ 1 tmp1)])
					(let ([tmp3 (+ tmp0 tmp2)])
						(let ([tmp4 (+ 1 2)])
							(let ([tmp5 (- 1)])
								(let ([tmp6 (- tmp4 tmp5)])
									(+ tmp3 tmp6)
								)
							)
						)
					)
				)
			)
		)`).Repr(),
	)
}

func TestExplicateRead(t *testing.T) {
	assert.Equal(t,
		"local: [x]\n"+
			"start:\n"+
			"    x = read;\n"+
			"    return (- x);\n",
		explicateString(t, "let ([x read]) (- x)").Repr(),
	)
}

func TestExplicateTerminatesOnce(t *testing.T) {
	prog := explicateString(t, "let ([a 1]) (let ([b 2]) (+ a b))")

	returns := 0
	for _, stmt := range prog.Body {
		if _, ok := stmt.(*tac.Return); ok {
			returns++
		}
	}

	require.Equal(t, 1, returns)

	_, ok := prog.Body[len(prog.Body)-1].(*tac.Return)
	assert.True(t, ok, "the return statement is last")
}
