// Package interp implements the reference tree-walking evaluator for surface
// expressions.  It is not part of the compilation pipeline: the driver's `run`
// output mode and the test suites use it to pin down the value a compiled
// program must produce.
package interp

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"lilac/ast"
	"lilac/report"
)

// Interpreter evaluates surface expressions directly.
type Interpreter struct {
	// The stack of local scopes used to look up bound names.
	scopes []map[string]int64

	// The input source backing `read` expressions.
	in *bufio.Scanner
}

// NewInterpreter creates a new interpreter reading `read` input from in.
func NewInterpreter(in io.Reader) *Interpreter {
	return &Interpreter{in: bufio.NewScanner(in)}
}

// EvalExpr evaluates an expression to a signed 64-bit integer.  All arithmetic
// is overflow checked: wrapping results are reported as errors rather than
// silently produced.
func (it *Interpreter) EvalExpr(expr ast.Expr) (int64, error) {
	switch v := expr.(type) {
	case *ast.IntLit:
		return v.Value, nil

	case *ast.ReadExpr:
		return it.readInt(v)

	case *ast.Identifier:
		if value, ok := it.lookup(v.Name); ok {
			return value, nil
		}

		return 0, report.Raise(v.Span(), "unknown identifier: `%s`", v.Name)

	case *ast.UnaryOp:
		operand, err := it.EvalExpr(v.Operand)
		if err != nil {
			return 0, err
		}

		if operand == math.MinInt64 {
			return 0, report.Raise(v.Span(), "arithmetic overflow: -(%d)", operand)
		}

		return -operand, nil

	case *ast.BinaryOp:
		lhs, err := it.EvalExpr(v.Lhs)
		if err != nil {
			return 0, err
		}

		rhs, err := it.EvalExpr(v.Rhs)
		if err != nil {
			return 0, err
		}

		return it.applyBinaryOp(v, lhs, rhs)

	case *ast.LetExpr:
		// The initializer is evaluated before entering the scope of the let
		// expression so that it sees the binding in the enclosing scope.
		init, err := it.EvalExpr(v.Init)
		if err != nil {
			return 0, err
		}

		it.pushScope()
		defer it.popScope()
		it.declare(v.Name, init)

		return it.EvalExpr(v.Body)

	default:
		report.ReportICE("interpreter received unknown expression node %T", expr)
		return 0, nil
	}
}

// applyBinaryOp applies an overflow-checked binary operation.
func (it *Interpreter) applyBinaryOp(bop *ast.BinaryOp, lhs, rhs int64) (int64, error) {
	switch bop.OpKind {
	case ast.OpAdd:
		if (rhs > 0 && lhs > math.MaxInt64-rhs) || (rhs < 0 && lhs < math.MinInt64-rhs) {
			return 0, report.Raise(bop.Span(), "arithmetic overflow: %d + %d", lhs, rhs)
		}

		return lhs + rhs, nil

	case ast.OpSub:
		if (rhs < 0 && lhs > math.MaxInt64+rhs) || (rhs > 0 && lhs < math.MinInt64+rhs) {
			return 0, report.Raise(bop.Span(), "arithmetic overflow: %d - %d", lhs, rhs)
		}

		return lhs - rhs, nil

	default:
		report.ReportICE("interpreter received unknown binary operator kind %d", bop.OpKind)
		return 0, nil
	}
}

// readInt reads one line of input and parses it as a signed 64-bit integer.
func (it *Interpreter) readInt(r *ast.ReadExpr) (int64, error) {
	if !it.in.Scan() {
		return 0, report.Raise(r.Span(), "expected an integer on input")
	}

	value, err := strconv.ParseInt(strings.TrimSpace(it.in.Text()), 10, 64)
	if err != nil {
		return 0, report.Raise(r.Span(), "invalid integer on input: %s", it.in.Text())
	}

	return value, nil
}

// -----------------------------------------------------------------------------

// lookup looks up a bound name in all visible scopes, innermost first.
func (it *Interpreter) lookup(name string) (int64, bool) {
	// Traverse local scopes in reverse order to implement shadowing.
	for i := len(it.scopes) - 1; i > -1; i-- {
		if value, ok := it.scopes[i][name]; ok {
			return value, true
		}
	}

	return 0, false
}

// declare defines a name in the innermost scope.
func (it *Interpreter) declare(name string, value int64) {
	it.scopes[len(it.scopes)-1][name] = value
}

// pushScope pushes a scope onto the local scope stack.
func (it *Interpreter) pushScope() {
	it.scopes = append(it.scopes, make(map[string]int64))
}

// popScope pops a scope from the local scope stack.
func (it *Interpreter) popScope() {
	it.scopes = it.scopes[:len(it.scopes)-1]
}
