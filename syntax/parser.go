package syntax

import (
	"bufio"
	"strconv"
	"strings"

	"lilac/ast"
	"lilac/report"
)

// Parser is the parser for a Lilac source file: a recursive descent parser
// over the token stream produced by the lexer.  A source file contains exactly
// one expression.  All parsing functions assume that they begin with the
// parser positioned on the first token of their production and must consume
// all tokens (including the last) of their production, leaving the parser on
// the next token.  Errors are returned as `*report.LocalCompileError` values
// carrying the offending text span.
type Parser struct {
	// lexer is the Lexer this parser is using to lex the source file.
	lexer *Lexer

	// tok is the current token the parser is positioned on.
	tok *Token
}

// NewParser creates a new parser for the given file reader.
func NewParser(r *bufio.Reader) *Parser {
	return &Parser{lexer: NewLexer(r)}
}

// Parse parses the file as a single whole-input expression: trailing tokens
// after the expression are an error.
func (p *Parser) Parse() (ast.Expr, error) {
	// Move the parser onto the first token.
	if err := p.next(); err != nil {
		return nil, err
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if !p.got(TOK_EOF) {
		return nil, p.reject()
	}

	return expr, nil
}

// ParseString parses a source string as a single expression.  It is the
// convenience boundary used by tests and the driver's expression mode.
func ParseString(src string) (ast.Expr, error) {
	return NewParser(bufio.NewReader(strings.NewReader(src))).Parse()
}

// -----------------------------------------------------------------------------

// parseExpr parses any expression form:
//
//	expr := INTLIT | 'read' | IDENT | oper_expr | paren_expr | let_expr
func (p *Parser) parseExpr() (ast.Expr, error) {
	switch p.tok.Kind {
	case TOK_INTLIT:
		return p.parseIntLit()
	case TOK_READ:
		tok := p.tok
		if err := p.next(); err != nil {
			return nil, err
		}

		return &ast.ReadExpr{ASTBase: ast.NewASTBaseOn(tok.Span)}, nil
	case TOK_IDENT:
		tok := p.tok
		if err := p.next(); err != nil {
			return nil, err
		}

		return &ast.Identifier{ASTBase: ast.NewASTBaseOn(tok.Span), Name: tok.Value}, nil
	case TOK_PLUS, TOK_MINUS:
		return p.parseOperExpr()
	case TOK_LPAREN:
		return p.parseParenExpr()
	case TOK_LET:
		return p.parseLetExpr()
	default:
		return nil, p.reject()
	}
}

// parseIntLit parses an integer literal token into a literal node.
func (p *Parser) parseIntLit() (ast.Expr, error) {
	tok := p.tok
	if err := p.next(); err != nil {
		return nil, err
	}

	value, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		return nil, report.Raise(tok.Span, "integer literal out of range: %s", tok.Value)
	}

	return &ast.IntLit{ASTBase: ast.NewASTBaseOn(tok.Span), Value: value}, nil
}

// parseOperExpr parses a prefix operator application:
//
//	oper_expr := ('+' | '-') expr {expr}
//
// The operand list is parsed greedily; `+` accepts exactly two operands and
// `-` accepts one (negation) or two (subtraction).
func (p *Parser) parseOperExpr() (ast.Expr, error) {
	operTok := p.tok
	if err := p.next(); err != nil {
		return nil, err
	}

	var operands []ast.Expr
	for p.atExprStart() {
		operand, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		operands = append(operands, operand)
	}

	switch {
	case operTok.Kind == TOK_PLUS && len(operands) == 2:
		return &ast.BinaryOp{
			ASTBase: ast.NewASTBaseOver(operTok.Span, operands[1].Span()),
			OpKind:  ast.OpAdd,
			Lhs:     operands[0],
			Rhs:     operands[1],
		}, nil
	case operTok.Kind == TOK_MINUS && len(operands) == 2:
		return &ast.BinaryOp{
			ASTBase: ast.NewASTBaseOver(operTok.Span, operands[1].Span()),
			OpKind:  ast.OpSub,
			Lhs:     operands[0],
			Rhs:     operands[1],
		}, nil
	case operTok.Kind == TOK_MINUS && len(operands) == 1:
		return &ast.UnaryOp{
			ASTBase: ast.NewASTBaseOver(operTok.Span, operands[0].Span()),
			OpKind:  ast.OpNeg,
			Operand: operands[0],
		}, nil
	default:
		return nil, report.Raise(
			operTok.Span,
			"operator `%s` cannot take %d operand(s)", operTok.Value, len(operands),
		)
	}
}

// parseParenExpr parses a parenthesized expression.  Parentheses group freely:
// any expression (including a bare literal) may be wrapped any number of times.
func (p *Parser) parseParenExpr() (ast.Expr, error) {
	lparenTok := p.tok
	if err := p.next(); err != nil {
		return nil, err
	}

	body, bodyErr := p.parseExpr()

	// The closing paren is checked before any body error propagates: a
	// missing closer is reported at the opener, even when the body itself
	// failed to parse.
	if err := p.wantClosing(TOK_RPAREN, lparenTok); err != nil {
		return nil, err
	}

	return body, bodyErr
}

// parseLetExpr parses a let binding:
//
//	let_expr := 'let' '(' '[' IDENT expr ']' ')' expr
func (p *Parser) parseLetExpr() (ast.Expr, error) {
	letTok := p.tok
	if err := p.next(); err != nil {
		return nil, err
	}

	lparenTok := p.tok
	if err := p.assertAndNext(TOK_LPAREN); err != nil {
		return nil, err
	}

	lbracketTok := p.tok
	if err := p.assertAndNext(TOK_LBRACKET); err != nil {
		return nil, err
	}

	nameTok := p.tok
	if err := p.assertAndNext(TOK_IDENT); err != nil {
		return nil, err
	}

	init, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.wantClosing(TOK_RBRACKET, lbracketTok); err != nil {
		return nil, err
	}

	if err := p.wantClosing(TOK_RPAREN, lparenTok); err != nil {
		return nil, err
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.LetExpr{
		ASTBase:  ast.NewASTBaseOver(letTok.Span, body.Span()),
		Name:     nameTok.Value,
		NameSpan: nameTok.Span,
		Init:     init,
		Body:     body,
	}, nil
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}

	p.tok = tok
	return nil
}

// got returns true if the parser is on a token of a given kind.
func (p *Parser) got(kind int) bool {
	return p.tok.Kind == kind
}

// assertAndNext checks that the parser is on a token of the given kind,
// rejecting the token if not, and moves the parser forward.
func (p *Parser) assertAndNext(kind int) error {
	if !p.got(kind) {
		return p.reject()
	}

	return p.next()
}

// wantClosing checks that the parser is on the closing token of the given kind
// and moves forward; if not, the mismatch is reported at the opening token.
func (p *Parser) wantClosing(kind int, openTok *Token) error {
	if !p.got(kind) {
		return report.Raise(openTok.Span, "unclosed %s", tokKindRepr(openTok.Kind))
	}

	return p.next()
}

// atExprStart returns whether the current token can begin an expression.
func (p *Parser) atExprStart() bool {
	switch p.tok.Kind {
	case TOK_INTLIT, TOK_READ, TOK_IDENT, TOK_PLUS, TOK_MINUS, TOK_LPAREN, TOK_LET:
		return true
	default:
		return false
	}
}

// reject returns an unexpected token error for the current token.
func (p *Parser) reject() error {
	if p.got(TOK_EOF) {
		return report.Raise(p.tok.Span, "unexpected end of file")
	}

	return report.Raise(p.tok.Span, "unexpected token: `%s`", p.tok.Value)
}
