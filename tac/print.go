package tac

import (
	"fmt"
	"strings"
)

// The renderings below are the diagnostic/test fixture format for
// three-address programs:
//
//	local: [x1, x2, y]
//	start:
//	    x1 = 20;
//	    x2 = 22;
//	    y = (+ x1 x2);
//	    return y;

func (a Int) Repr() string {
	return fmt.Sprintf("%d", a.Value)
}

func (a Var) Repr() string {
	return a.Name
}

func (Read) Repr() string {
	return "read"
}

func (e *UnaryExpr) Repr() string {
	return fmt.Sprintf("(%s %s)", unaryOpRepr(e.OpKind), e.Operand.Repr())
}

func (e *BinaryExpr) Repr() string {
	return fmt.Sprintf("(%s %s %s)", binaryOpRepr(e.OpKind), e.Lhs.Repr(), e.Rhs.Repr())
}

func (s *Assign) Repr() string {
	return fmt.Sprintf("%s = %s;", s.LHS, s.RHS.Repr())
}

func (s *Return) Repr() string {
	return fmt.Sprintf("return %s;", s.Value.Repr())
}

// Repr returns the full textual representation of the program.  The `local:`
// line is omitted when there are no locals.
func (p *Program) Repr() string {
	sb := strings.Builder{}

	if len(p.Locals) > 0 {
		sb.WriteString("local: [")
		sb.WriteString(strings.Join(p.Locals, ", "))
		sb.WriteString("]\n")
	}

	sb.WriteString("start:\n")
	for _, stmt := range p.Body {
		sb.WriteString("    ")
		sb.WriteString(stmt.Repr())
		sb.WriteRune('\n')
	}

	return sb.String()
}

// unaryOpRepr converts a unary operator kind into its source spelling.
func unaryOpRepr(kind int) string {
	switch kind {
	case OpNeg:
		return "-"
	default:
		return "<unknown>"
	}
}

// binaryOpRepr converts a binary operator kind into its source spelling.
func binaryOpRepr(kind int) string {
	switch kind {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	default:
		return "<unknown>"
	}
}
