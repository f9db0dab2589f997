// Package flatten implements the remove-complex-operands pass: it rewrites a
// renamed surface expression into administrative normal form, where every
// operand of a unary or binary operator is an integer literal, a `read`, or an
// identifier.  Compound sub-operands are hoisted into fresh let bindings
// inserted immediately above the expression that needs them.
package flatten

import (
	"lilac/ast"
	"lilac/report"
	"lilac/util"
)

// binding is a hoisted (name, initializer) pair that must be bound above the
// expression the associated atom appears in.
type binding struct {
	name string
	init ast.Expr
}

// Flattener is responsible for converting an expression into ANF.
type Flattener struct {
	// The generator for hoisted temporary names.
	nameGen *util.NameGenerator
}

// FlattenExpr returns an equivalent expression in administrative normal form.
// The input must already be alpha-renamed: the pass introduces temporaries and
// relies on bound-name uniqueness to keep them collision free.
func FlattenExpr(expr ast.Expr) ast.Expr {
	f := &Flattener{nameGen: util.NewNameGenerator("tmp")}
	return f.flattenExpr(expr)
}

// flattenExpr flattens an expression in a position that permits any ANF shape:
// hoisted bindings from the children are folded into let wrappers around the
// result.
func (f *Flattener) flattenExpr(expr ast.Expr) ast.Expr {
	switch v := expr.(type) {
	case *ast.IntLit, *ast.ReadExpr, *ast.Identifier:
		return expr

	case *ast.UnaryOp:
		operand, bindings := f.flattenToAtom(v.Operand)

		return wrapBindings(bindings, ast.Expr(&ast.UnaryOp{
			ASTBase: ast.NewASTBaseOn(v.Span()),
			OpKind:  v.OpKind,
			Operand: operand,
		}))

	case *ast.BinaryOp:
		lhs, lhsBindings := f.flattenToAtom(v.Lhs)
		rhs, rhsBindings := f.flattenToAtom(v.Rhs)

		// The right operand's bindings are wrapped innermost (closest to the
		// operator), then the left operand's outside them: left-to-right
		// evaluation order is preserved.
		bindings := append(lhsBindings, rhsBindings...)

		return wrapBindings(bindings, ast.Expr(&ast.BinaryOp{
			ASTBase: ast.NewASTBaseOn(v.Span()),
			OpKind:  v.OpKind,
			Lhs:     lhs,
			Rhs:     rhs,
		}))

	case *ast.LetExpr:
		// Let expressions flatten structurally: they produce no bindings of
		// their own.
		return &ast.LetExpr{
			ASTBase:  ast.NewASTBaseOn(v.Span()),
			Name:     v.Name,
			NameSpan: v.NameSpan,
			Init:     f.flattenExpr(v.Init),
			Body:     f.flattenExpr(v.Body),
		}

	default:
		report.ReportICE("flattener received unknown expression node %T", expr)
		return nil
	}
}

// flattenToAtom flattens an expression in an operand position: the result is
// an atomic expression plus the ordered list of bindings that must be bound
// above it.
func (f *Flattener) flattenToAtom(expr ast.Expr) (ast.Expr, []binding) {
	switch v := expr.(type) {
	case *ast.IntLit, *ast.ReadExpr, *ast.Identifier:
		return expr, nil

	case *ast.UnaryOp:
		operand, bindings := f.flattenToAtom(v.Operand)

		name := f.nameGen.Generate()
		bindings = append(bindings, binding{
			name: name,
			init: &ast.UnaryOp{
				ASTBase: ast.NewASTBaseOn(v.Span()),
				OpKind:  v.OpKind,
				Operand: operand,
			},
		})

		return &ast.Identifier{ASTBase: ast.NewASTBaseOn(v.Span()), Name: name}, bindings

	case *ast.BinaryOp:
		lhs, bindings := f.flattenToAtom(v.Lhs)
		rhs, rhsBindings := f.flattenToAtom(v.Rhs)
		bindings = append(bindings, rhsBindings...)

		name := f.nameGen.Generate()
		bindings = append(bindings, binding{
			name: name,
			init: &ast.BinaryOp{
				ASTBase: ast.NewASTBaseOn(v.Span()),
				OpKind:  v.OpKind,
				Lhs:     lhs,
				Rhs:     rhs,
			},
		})

		return &ast.Identifier{ASTBase: ast.NewASTBaseOn(v.Span()), Name: name}, bindings

	case *ast.LetExpr:
		// A let used as an operand is flattened structurally and then hoisted
		// whole into a temporary: the let's body becomes the value assigned to
		// the temporary downstream.
		name := f.nameGen.Generate()
		bindings := []binding{{name: name, init: f.flattenExpr(v)}}

		return &ast.Identifier{ASTBase: ast.NewASTBaseOn(v.Span()), Name: name}, bindings

	default:
		report.ReportICE("flattener received unknown expression node %T", expr)
		return nil, nil
	}
}

// wrapBindings nests the given bindings around a body expression, last binding
// innermost.
func wrapBindings(bindings []binding, body ast.Expr) ast.Expr {
	for i := len(bindings) - 1; i > -1; i-- {
		body = &ast.LetExpr{
			ASTBase: ast.NewASTBaseOn(body.Span()),
			Name:    bindings[i].name,
			Init:    bindings[i].init,
			Body:    body,
		}
	}

	return body
}
