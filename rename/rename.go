// Package rename implements the uniquify pass: it rewrites a surface
// expression so that every bound name is globally unique, and detects
// references to unbound identifiers.
package rename

import (
	"lilac/ast"
	"lilac/report"
	"lilac/util"
)

// Renamer is responsible for alpha-renaming a surface expression.
type Renamer struct {
	// The generator for fresh bound names.
	nameGen *util.NameGenerator

	// The stack of local scopes mapping source names to their unique names.
	scopes []map[string]string
}

// UniquifyExpr returns a semantically equivalent expression in which every
// bound identifier is replaced by a fresh, globally unique name.  A reference
// with no enclosing binding is returned as a compile error carrying the
// reference's span.
func UniquifyExpr(expr ast.Expr) (ast.Expr, error) {
	r := &Renamer{nameGen: util.NewNameGenerator("x")}
	return r.renameExpr(expr)
}

// renameExpr rewrites one expression node and its children.
func (r *Renamer) renameExpr(expr ast.Expr) (ast.Expr, error) {
	switch v := expr.(type) {
	case *ast.IntLit, *ast.ReadExpr:
		return expr, nil

	case *ast.Identifier:
		if unique, ok := r.lookup(v.Name); ok {
			return &ast.Identifier{ASTBase: ast.NewASTBaseOn(v.Span()), Name: unique}, nil
		}

		return nil, report.Raise(v.Span(), "unknown identifier: `%s`", v.Name)

	case *ast.UnaryOp:
		operand, err := r.renameExpr(v.Operand)
		if err != nil {
			return nil, err
		}

		return &ast.UnaryOp{
			ASTBase: ast.NewASTBaseOn(v.Span()),
			OpKind:  v.OpKind,
			Operand: operand,
		}, nil

	case *ast.BinaryOp:
		lhs, err := r.renameExpr(v.Lhs)
		if err != nil {
			return nil, err
		}

		rhs, err := r.renameExpr(v.Rhs)
		if err != nil {
			return nil, err
		}

		return &ast.BinaryOp{
			ASTBase: ast.NewASTBaseOn(v.Span()),
			OpKind:  v.OpKind,
			Lhs:     lhs,
			Rhs:     rhs,
		}, nil

	case *ast.LetExpr:
		// The initializer is renamed before entering the scope of the let
		// expression so that `let ([x x]) ...` resolves the initializer's `x`
		// to the binding in the enclosing scope.
		init, err := r.renameExpr(v.Init)
		if err != nil {
			return nil, err
		}

		r.pushScope()
		defer r.popScope()
		unique := r.declare(v.Name)

		body, err := r.renameExpr(v.Body)
		if err != nil {
			return nil, err
		}

		return &ast.LetExpr{
			ASTBase:  ast.NewASTBaseOn(v.Span()),
			Name:     unique,
			NameSpan: v.NameSpan,
			Init:     init,
			Body:     body,
		}, nil

	default:
		report.ReportICE("renamer received unknown expression node %T", expr)
		return nil, nil
	}
}

// -----------------------------------------------------------------------------

// lookup resolves a source name to its unique name, innermost scope first.
func (r *Renamer) lookup(name string) (string, bool) {
	// Traverse local scopes in reverse order to implement shadowing.
	for i := len(r.scopes) - 1; i > -1; i-- {
		if unique, ok := r.scopes[i][name]; ok {
			return unique, true
		}
	}

	return "", false
}

// declare generates a fresh unique name for a source name and binds it in the
// innermost scope.
func (r *Renamer) declare(name string) string {
	unique := r.nameGen.Generate()
	r.scopes[len(r.scopes)-1][name] = unique
	return unique
}

// pushScope pushes a scope onto the local scope stack.
func (r *Renamer) pushScope() {
	r.scopes = append(r.scopes, make(map[string]string))
}

// popScope pops a scope from the local scope stack.
func (r *Renamer) popScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}
