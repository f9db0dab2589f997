package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileSource(t *testing.T) {
	tests := []struct {
		name string
		src  string
		asm  string
	}{
		{
			name: "chained lets",
			src:  "let ([a 42]) (let ([b a]) b)",
			asm: `
main:
    movq    $0x2a, -8(%rbp)
    movq    -8(%rbp), %rax
    movq    %rax, -16(%rbp)
    movq    -16(%rbp), %rax
    jmp     conclusion
conclusion:
`,
		},
		{
			name: "read and arithmetic",
			src:  "let ([x1 read]) (let ([x2 (- x1 15)]) (+ x1 x2))",
			asm: `
main:
    callq   read_int
    movq    %rax, -8(%rbp)
    movq    -8(%rbp), %rax
    movq    %rax, -16(%rbp)
    subq    $0xf, -16(%rbp)
    movq    -8(%rbp), %rax
    addq    -16(%rbp), %rax
    jmp     conclusion
conclusion:
`,
		},
		{
			name: "wide immediate into memory",
			src:  "(+ (let ([x 65537]) x) 1)",
			asm: `
main:
    movq    $0x10001, %rax
    movq    %rax, -8(%rbp)
    movq    -8(%rbp), %rax
    movq    %rax, -16(%rbp)
    movq    -16(%rbp), %rax
    addq    $0x1, %rax
    jmp     conclusion
conclusion:
`,
		},
		{
			name: "constant program",
			src:  "(+ 1 2)",
			asm: `
main:
    movq    $0x1, %rax
    addq    $0x2, %rax
    jmp     conclusion
conclusion:
`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			asm, err := CompileSource(test.src)
			require.NoError(t, err)
			assert.Equal(t, strings.TrimLeft(test.asm, "\n"), asm)
		})
	}
}

func TestCompileSourceErrors(t *testing.T) {
	tests := []struct {
		src     string
		message string
	}{
		{"let ([x 1]) y", "unknown identifier: `y`"},
		{"(+ 1", "unclosed `(`"},
		{"+ 1", "operator `+` cannot take 1 operand(s)"},
	}

	for _, test := range tests {
		_, err := CompileSource(test.src)
		require.Error(t, err, "compile `%s`", test.src)
		assert.Equal(t, test.message, err.Error(), "compile `%s`", test.src)
	}
}
