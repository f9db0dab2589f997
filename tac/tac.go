// Package tac defines the three-address imperative IR the explicate pass
// lowers flattened expressions into: an ordered list of assignment statements
// ending in one return statement, plus a flat list of local variable
// declarations.
package tac

import (
	"lilac/report"
	"lilac/util"
)

// Atom represents an atomic operand: an integer literal or a variable
// reference, never a compound expression.  Atoms are themselves valid
// expressions.
type Atom interface {
	Expr

	atom()
}

// Int is an integer literal atom.
type Int struct {
	Value int64
}

// Var is a variable reference atom.
type Var struct {
	Name string
}

func (Int) atom() {}
func (Var) atom() {}

// -----------------------------------------------------------------------------

// Expr represents a non-recursive right-hand-side expression: operands are
// always atoms, never nested expressions.
type Expr interface {
	// Repr returns the diagnostic rendering of the expression.
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

// Read represents a use of the external integer-read routine.
type Read struct{}

// UnaryExpr is a unary operator application over an atom.
type UnaryExpr struct {
	// OpKind must be one of the enumerated unary operator kinds.
	OpKind  int
	Operand Atom
}

// BinaryExpr is a binary operator application over atoms.
type BinaryExpr struct {
	// OpKind must be one of the enumerated binary operator kinds.
	OpKind   int
	Lhs, Rhs Atom
}

// -----------------------------------------------------------------------------

// Stmt represents a single statement of the program body.
type Stmt interface {
	// Repr returns the diagnostic rendering of the statement.
	Repr() string
}

// Assign assigns the value of an expression to a named local.
type Assign struct {
	LHS string
	RHS Expr
}

// Return terminates the program with the value of an expression.  It is
// always the final statement of a program body, exactly once.
type Return struct {
	Value Expr
}

// -----------------------------------------------------------------------------

// Program is a whole three-address program.
type Program struct {
	// Locals is the list of local variable names in declaration order.
	Locals []string

	// Body is the ordered statement list.
	Body []Stmt
}

// NewProgram creates a new empty program.
func NewProgram() *Program {
	return &Program{}
}

// DeclareLocal appends a local variable declaration.  Declaring the same name
// twice indicates an upstream renaming bug.
func (p *Program) DeclareLocal(name string) {
	if util.Contains(p.Locals, name) {
		report.ReportICE("local `%s` declared multiple times", name)
	}

	p.Locals = append(p.Locals, name)
}

// AddAssign appends an assignment statement to the body.
func (p *Program) AddAssign(lhs string, rhs Expr) {
	p.Body = append(p.Body, &Assign{LHS: lhs, RHS: rhs})
}

// Terminate appends the final return statement to the body.
func (p *Program) Terminate(value Expr) {
	p.Body = append(p.Body, &Return{Value: value})
}
