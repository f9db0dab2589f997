package syntax

import "lilac/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.
	Value string

	// The text span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_LET = iota
	TOK_READ

	TOK_PLUS
	TOK_MINUS

	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACKET
	TOK_RBRACKET

	TOK_IDENT
	TOK_INTLIT

	TOK_EOF
)

// tokKindRepr converts a token kind into a user-displayable string.
func tokKindRepr(kind int) string {
	switch kind {
	case TOK_LET:
		return "`let`"
	case TOK_READ:
		return "`read`"
	case TOK_PLUS:
		return "`+`"
	case TOK_MINUS:
		return "`-`"
	case TOK_LPAREN:
		return "`(`"
	case TOK_RPAREN:
		return "`)`"
	case TOK_LBRACKET:
		return "`[`"
	case TOK_RBRACKET:
		return "`]`"
	case TOK_IDENT:
		return "identifier"
	case TOK_INTLIT:
		return "integer literal"
	default:
		return "end of file"
	}
}
