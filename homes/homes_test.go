package homes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lilac/explicate"
	"lilac/flatten"
	"lilac/isel"
	"lilac/syntax"
	"lilac/x86"
)

// lowerString runs a source string through flattening, explication, and
// instruction selection.  The fixture sources use unique bound names already,
// so alpha renaming is skipped to keep the expected strings readable.
func lowerString(t *testing.T, src string) *x86.Program {
	expr, err := syntax.ParseString(src)
	require.NoError(t, err, "parse `%s`", src)

	return isel.SelectInstructions(explicate.ExplicateControl(flatten.FlattenExpr(expr)))
}

func TestAssignHomes(t *testing.T) {
	assert.Equal(t,
		strings.TrimLeft(`
main:
    movq    $0x2a, -8(%rbp)
    movq    -8(%rbp), -16(%rbp)
    movq    -16(%rbp), %rax
    jmp     conclusion
conclusion:
`, "\n"),
		AssignHomes(lowerString(t, "let ([a 42]) (let ([b a]) b)")).Repr(),
	)

	assert.Equal(t,
		strings.TrimLeft(`
main:
    movq    $0x14, -8(%rbp)
    negq    -8(%rbp)
    movq    $0x16, -16(%rbp)
    movq    -8(%rbp), -24(%rbp)
    addq    -16(%rbp), -24(%rbp)
    movq    -24(%rbp), %rax
    jmp     conclusion
conclusion:
`, "\n"),
		AssignHomes(lowerString(t, "let ([y (let ([x1 (- 20)]) (let ([x2 22]) (+ x1 x2)))]) y")).Repr(),
	)
}

func TestAssignHomesClearsLocals(t *testing.T) {
	prog := AssignHomes(lowerString(t, "let ([a 1]) a"))
	assert.Empty(t, prog.Locals)
}

func TestAssignHomesOffsets(t *testing.T) {
	prog := AssignHomes(lowerString(t, "let ([a 1]) (let ([b 2]) (let ([c 3]) (+ a (- b c))))"))

	// Every variable operand is replaced by a distinct %rbp-relative slot,
	// slots are 8 bytes wide, and the frame is dense.
	seen := make(map[int64]bool)
	for _, block := range prog.Blocks {
		for _, instr := range block.Instructions {
			for _, arg := range instructionArgs(instr) {
				_, isVar := arg.(x86.Var)
				assert.False(t, isVar, "no symbolic operand survives the pass")

				if deref, ok := arg.(x86.Deref); ok {
					assert.Equal(t, x86.RBP, deref.Reg)
					assert.Zero(t, deref.Offset%8)
					assert.Less(t, deref.Offset, int64(0))
					seen[deref.Offset] = true
				}
			}
		}
	}

	for offset := int64(-8); offset >= -8*int64(len(seen)); offset -= 8 {
		assert.Contains(t, seen, offset)
	}
}

// instructionArgs returns the operand list of an instruction.
func instructionArgs(instr x86.Instruction) []x86.Arg {
	switch v := instr.(type) {
	case *x86.Addq:
		return []x86.Arg{v.Lhs, v.Rhs}
	case *x86.Subq:
		return []x86.Arg{v.Lhs, v.Rhs}
	case *x86.Movq:
		return []x86.Arg{v.From, v.To}
	case *x86.Negq:
		return []x86.Arg{v.Operand}
	case *x86.Pushq:
		return []x86.Arg{v.Operand}
	case *x86.Popq:
		return []x86.Arg{v.Operand}
	default:
		return nil
	}
}
