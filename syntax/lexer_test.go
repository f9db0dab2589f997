package syntax

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lexAll drains the lexer, returning every token up to and including EOF.
func lexAll(t *testing.T, src string) []*Token {
	l := NewLexer(bufio.NewReader(strings.NewReader(src)))

	var toks []*Token
	for {
		tok, err := l.NextToken()
		require.NoError(t, err)

		toks = append(toks, tok)
		if tok.Kind == TOK_EOF {
			return toks
		}
	}
}

func TestLexTokenKinds(t *testing.T) {
	toks := lexAll(t, "let ([x1 (+ 10 read)]) x1")

	kinds := make([]int, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}

	assert.Equal(t, []int{
		TOK_LET, TOK_LPAREN, TOK_LBRACKET, TOK_IDENT, TOK_LPAREN, TOK_PLUS,
		TOK_INTLIT, TOK_READ, TOK_RPAREN, TOK_RBRACKET, TOK_RPAREN, TOK_IDENT,
		TOK_EOF,
	}, kinds)

	assert.Equal(t, "x1", toks[3].Value)
	assert.Equal(t, "10", toks[6].Value)
}

func TestLexSpans(t *testing.T) {
	toks := lexAll(t, "let\n  value")

	require.Len(t, toks, 3)

	assert.Equal(t, 0, toks[0].Span.StartLine)
	assert.Equal(t, 0, toks[0].Span.StartCol)
	assert.Equal(t, 3, toks[0].Span.EndCol)

	assert.Equal(t, "value", toks[1].Value)
	assert.Equal(t, 1, toks[1].Span.StartLine)
	assert.Equal(t, 2, toks[1].Span.StartCol)
	assert.Equal(t, 7, toks[1].Span.EndCol)
}

func TestLexUnknownRune(t *testing.T) {
	l := NewLexer(bufio.NewReader(strings.NewReader("* 1 2")))

	_, err := l.NextToken()
	require.Error(t, err)
	assert.Equal(t, "unknown rune: `*`", err.Error())
}
