// Package isel implements instruction selection: it maps a three-address
// program onto pseudo-assembly instructions over symbolic variable operands.
package isel

import (
	"lilac/report"
	"lilac/tac"
	"lilac/x86"
)

// ReadIntFunc is the symbol name of the external integer-read routine.  The
// downstream linking environment must supply it as a routine returning a
// signed 64-bit integer in the accumulator.
const ReadIntFunc = "read_int"

// Selector is responsible for converting a three-address program into
// pseudo-assembly.
type Selector struct {
	// The block computed statements are emitted into.
	main *x86.Block
}

// SelectInstructions converts a three-address program into a pseudo-assembly
// program with two blocks: `main` holds all computed statements and ends in a
// jump to `conclusion`; `conclusion` is left empty for a downstream emission
// stage to fill with the epilogue.
func SelectInstructions(prog *tac.Program) *x86.Program {
	s := &Selector{main: x86.NewBlock("main")}

	for _, stmt := range prog.Body {
		s.selectStmt(stmt)
	}

	result := x86.NewProgram()
	result.Locals = prog.Locals
	result.Blocks = append(result.Blocks, s.main, x86.NewBlock("conclusion"))

	return result
}

// selectStmt emits the instructions computing one statement.
func (s *Selector) selectStmt(stmt tac.Stmt) {
	switch v := stmt.(type) {
	case *tac.Assign:
		s.selectExpr(v.RHS, x86.Var{Name: v.LHS})

	case *tac.Return:
		s.selectExpr(v.Value, x86.RAX)
		s.main.Add(&x86.Jmp{Target: "conclusion"})

	default:
		report.ReportICE("instruction selector received unknown statement %T", stmt)
	}
}

// selectExpr emits the instructions that compute an expression and deposit its
// value into the result operand.
func (s *Selector) selectExpr(expr tac.Expr, result x86.Arg) {
	switch v := expr.(type) {
	case tac.Int, tac.Var:
		if mv := moveToResult(result, atomArg(v.(tac.Atom))); mv != nil {
			s.main.Add(mv)
		}

	case tac.Read:
		s.main.Add(&x86.Callq{Callee: ReadIntFunc})
		s.main.Add(&x86.Movq{From: x86.RAX, To: result})

	case *tac.UnaryExpr:
		if mv := moveToResult(result, atomArg(v.Operand)); mv != nil {
			s.main.Add(mv)
		}

		switch v.OpKind {
		case tac.OpNeg:
			s.main.Add(&x86.Negq{Operand: result})
		default:
			report.ReportICE("unknown unary operator kind %d", v.OpKind)
		}

	case *tac.BinaryExpr:
		if mv := moveToResult(result, atomArg(v.Lhs)); mv != nil {
			s.main.Add(mv)
		}

		switch v.OpKind {
		case tac.OpAdd:
			s.main.Add(&x86.Addq{Lhs: result, Rhs: atomArg(v.Rhs)})
		case tac.OpSub:
			// Encoded so the instruction computes result := result - rhs.
			s.main.Add(&x86.Subq{Lhs: result, Rhs: atomArg(v.Rhs)})
		default:
			report.ReportICE("unknown binary operator kind %d", v.OpKind)
		}

	default:
		report.ReportICE("instruction selector received unknown expression %T", expr)
	}
}

// moveToResult builds the move depositing an operand into the result location.
// The move is elided (nil) only when the result is a symbolic variable equal
// to the operand: equal-by-value immediates must still be materialized.
func moveToResult(result, operand x86.Arg) *x86.Movq {
	if v, ok := result.(x86.Var); ok && v == operand {
		return nil
	}

	return &x86.Movq{From: operand, To: result}
}

// atomArg converts a three-address atom into an instruction operand.
func atomArg(atom tac.Atom) x86.Arg {
	switch v := atom.(type) {
	case tac.Int:
		return x86.Imm{Value: v.Value}
	case tac.Var:
		return x86.Var{Name: v.Name}
	default:
		report.ReportICE("instruction selector received unknown atom %T", atom)
		return nil
	}
}
