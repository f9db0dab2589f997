// Package explicate implements the explicate-control pass: it lowers a
// flattened expression into a three-address program, making the order of
// evaluation explicit as a statement sequence.
package explicate

import (
	"lilac/ast"
	"lilac/report"
	"lilac/tac"
)

// Explicator is responsible for converting an expression into a three-address
// program.
type Explicator struct {
	// The program being built.  Statements and local declarations are appended
	// in evaluation order.
	prog *tac.Program
}

// ExplicateControl converts a flattened surface expression into a
// three-address program: exactly one return statement, always last, and every
// let-bound name declared in first-declaration order.
func ExplicateControl(expr ast.Expr) *tac.Program {
	e := &Explicator{prog: tac.NewProgram()}
	e.explicateTail(expr)
	return e.prog
}

// explicateTail explicates an expression in tail position: its value is the
// value of the whole program.
func (e *Explicator) explicateTail(expr ast.Expr) {
	if let, ok := expr.(*ast.LetExpr); ok {
		rhs := e.explicateAssign(let.Init)
		e.prog.DeclareLocal(let.Name)
		e.prog.AddAssign(let.Name, rhs)

		e.explicateTail(let.Body)
		return
	}

	e.prog.Terminate(e.explicateAssign(expr))
}

// explicateAssign explicates an expression in assignment position: the
// returned expression is the value the enclosing statement binds or returns.
// A let in this position is bound like any other and explication continues
// into its body as the value of the enclosing assignment.
func (e *Explicator) explicateAssign(expr ast.Expr) tac.Expr {
	switch v := expr.(type) {
	case *ast.IntLit:
		return tac.Int{Value: v.Value}

	case *ast.ReadExpr:
		return tac.Read{}

	case *ast.Identifier:
		return tac.Var{Name: v.Name}

	case *ast.UnaryOp:
		return &tac.UnaryExpr{
			OpKind:  convertUnaryOp(v.OpKind),
			Operand: e.genAtom(v.Operand),
		}

	case *ast.BinaryOp:
		return &tac.BinaryExpr{
			OpKind: convertBinaryOp(v.OpKind),
			Lhs:    e.genAtom(v.Lhs),
			Rhs:    e.genAtom(v.Rhs),
		}

	case *ast.LetExpr:
		init := e.explicateAssign(v.Init)
		e.prog.DeclareLocal(v.Name)
		e.prog.AddAssign(v.Name, init)

		return e.explicateAssign(v.Body)

	default:
		report.ReportICE("explicator received unknown expression node %T", expr)
		return nil
	}
}

// genAtom converts an operand expression into an atom.  The flattener's
// postcondition guarantees operand atomicity: anything else here is an
// upstream pass bug, not a user error.
func (e *Explicator) genAtom(expr ast.Expr) tac.Atom {
	switch v := expr.(type) {
	case *ast.IntLit:
		return tac.Int{Value: v.Value}

	case *ast.Identifier:
		return tac.Var{Name: v.Name}

	default:
		report.ReportICE("non-atomic operand `%s` survived flattening", v.Repr())
		return nil
	}
}

// convertUnaryOp converts a surface unary operator kind to its three-address
// counterpart.
func convertUnaryOp(kind int) int {
	switch kind {
	case ast.OpNeg:
		return tac.OpNeg
	default:
		report.ReportICE("unknown unary operator kind %d", kind)
		return 0
	}
}

// convertBinaryOp converts a surface binary operator kind to its
// three-address counterpart.
func convertBinaryOp(kind int) int {
	switch kind {
	case ast.OpAdd:
		return tac.OpAdd
	case ast.OpSub:
		return tac.OpSub
	default:
		report.ReportICE("unknown binary operator kind %d", kind)
		return 0
	}
}
