package ast

import (
	"fmt"
	"strings"
)

// The renderings below are the diagnostic/test fixture format for surface
// expressions: prefix-parenthesized, eg. `(let ([x 1]) (+ x 2))`.

func (lit *IntLit) Repr() string {
	return fmt.Sprintf("%d", lit.Value)
}

func (r *ReadExpr) Repr() string {
	return "read"
}

func (id *Identifier) Repr() string {
	return id.Name
}

func (uop *UnaryOp) Repr() string {
	return fmt.Sprintf("(%s %s)", unaryOpRepr(uop.OpKind), uop.Operand.Repr())
}

func (bop *BinaryOp) Repr() string {
	return fmt.Sprintf("(%s %s %s)", binaryOpRepr(bop.OpKind), bop.Lhs.Repr(), bop.Rhs.Repr())
}

func (let *LetExpr) Repr() string {
	sb := strings.Builder{}

	sb.WriteString("(let ([")
	sb.WriteString(let.Name)
	sb.WriteRune(' ')
	sb.WriteString(let.Init.Repr())
	sb.WriteString("]) ")
	sb.WriteString(let.Body.Repr())
	sb.WriteRune(')')

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
