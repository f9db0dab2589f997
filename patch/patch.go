// Package patch implements instruction legalization: instructions whose
// operand combination is not encodable by the target instruction set are
// rewritten into an equivalent two-instruction sequence mediated by the
// accumulator.  The pass is purely local: it never reorders, merges, or
// carries state between instructions, and block labels are preserved.
package patch

import "lilac/x86"

// maxImmValue is the largest immediate value encodable in an arithmetic or
// move instruction's immediate field.
const maxImmValue = 0x10000

// PatchInstructions rewrites every instruction that either references memory
// in both operand positions or carries an over-width immediate alongside a
// memory operand.  All other instructions pass through unchanged.
func PatchInstructions(prog *x86.Program) *x86.Program {
	result := x86.NewProgram()
	result.Locals = prog.Locals

	for _, block := range prog.Blocks {
		result.Blocks = append(result.Blocks, patchBlock(block))
	}

	return result
}

// patchBlock rewrites one block instruction by instruction.
func patchBlock(block *x86.Block) *x86.Block {
	result := x86.NewBlock(block.Label)

	for _, instr := range block.Instructions {
		switch v := instr.(type) {
		case *x86.Addq:
			patchArith(result, v.Lhs, v.Rhs, func(lhs, rhs x86.Arg) x86.Instruction {
				return &x86.Addq{Lhs: lhs, Rhs: rhs}
			})

		case *x86.Subq:
			patchArith(result, v.Lhs, v.Rhs, func(lhs, rhs x86.Arg) x86.Instruction {
				return &x86.Subq{Lhs: lhs, Rhs: rhs}
			})

		case *x86.Movq:
			patchMove(result, v)

		default:
			result.Add(instr)
		}
	}

	return result
}

// patchArith legalizes a two-operand arithmetic instruction built by mk.
func patchArith(block *x86.Block, lhs, rhs x86.Arg, mk func(lhs, rhs x86.Arg) x86.Instruction) {
	_, lhsIsMem := lhs.(x86.Deref)

	// Both operands in memory: route the right-hand side through the
	// accumulator.
	if _, rhsIsMem := rhs.(x86.Deref); lhsIsMem && rhsIsMem {
		block.Add(&x86.Movq{From: rhs, To: x86.RAX})
		block.Add(mk(lhs, x86.RAX))
		return
	}

	// Memory destination with an over-width immediate: materialize the
	// immediate in the accumulator first.
	if imm, ok := rhs.(x86.Imm); ok && lhsIsMem && imm.Value > maxImmValue {
		block.Add(&x86.Movq{From: rhs, To: x86.RAX})
		block.Add(mk(lhs, x86.RAX))
		return
	}

	block.Add(mk(lhs, rhs))
}

// patchMove legalizes a move instruction.
func patchMove(block *x86.Block, mv *x86.Movq) {
	_, toIsMem := mv.To.(x86.Deref)

	// Memory-to-memory move: stage through the accumulator.
	if _, fromIsMem := mv.From.(x86.Deref); fromIsMem && toIsMem {
		block.Add(&x86.Movq{From: mv.From, To: x86.RAX})
		block.Add(&x86.Movq{From: x86.RAX, To: mv.To})
		return
	}

	// Over-width immediate into memory: materialize it in the accumulator and
	// move the accumulator into the destination.
	if imm, ok := mv.From.(x86.Imm); ok && toIsMem && imm.Value > maxImmValue {
		block.Add(&x86.Movq{From: mv.From, To: x86.RAX})
		block.Add(&x86.Movq{From: x86.RAX, To: mv.To})
		return
	}

	block.Add(mv)
}
