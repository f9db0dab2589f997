package ast

import "lilac/report"

// Expr represents a surface expression.  All expression nodes implement the
// `Expr` interface.  Expression trees are immutable once built: passes never
// mutate an expression in place, they build replacement trees.
type Expr interface {
	ASTNode

	// Repr returns the parenthesized prefix rendering of the expression.
	Repr() string
}

// Enumeration of unary operator kinds.
const (
	OpNeg = iota // -
)

// Enumeration of binary operator kinds.
const (
	OpAdd = iota // +
	OpSub        // -
)

// -----------------------------------------------------------------------------

// IntLit represents an integer literal.
type IntLit struct {
	ASTBase

	Value int64
}

// ReadExpr represents a use of the `read` input operation.
type ReadExpr struct {
	ASTBase
}

// Identifier represents a named value.
type Identifier struct {
	ASTBase

	Name string
}

// UnaryOp represents a unary operator application.
type UnaryOp struct {
	ASTBase

	// OpKind must be one of the enumerated unary operator kinds.
	OpKind  int
	Operand Expr
}

// BinaryOp represents a binary operator application.
type BinaryOp struct {
	ASTBase

	// OpKind must be one of the enumerated binary operator kinds.
	OpKind   int
	Lhs, Rhs Expr
}

// LetExpr represents a let binding: the initializer is evaluated in the
// enclosing scope and the body in a scope extended with the bound name.
type LetExpr struct {
	ASTBase

	Name string

	// The span of the bound name itself (for error reporting).
	NameSpan *report.TextSpan

	Init Expr
	Body Expr
}
