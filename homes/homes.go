// Package homes implements home assignment: every symbolic variable operand is
// replaced by a concrete stack-frame-relative memory operand.  True register
// allocation is out of scope: every variable gets its own stack slot.
package homes

import (
	"lilac/report"
	"lilac/x86"
)

// slotSize is the fixed width of one stack slot in bytes.
const slotSize = 8

// HomeAssigner is responsible for mapping symbolic variables to stack homes.
type HomeAssigner struct {
	// Maps each variable to the offset of its storage relative to %rbp.
	locations map[string]int64
}

// AssignHomes replaces every symbolic variable operand in the program with a
// memory operand at a unique stack offset and clears the variable list.
// Offsets are assigned in declaration order: the first declared name lives at
// -8, each subsequent name one slot below it.
func AssignHomes(prog *x86.Program) *x86.Program {
	h := &HomeAssigner{locations: make(map[string]int64)}

	offset := int64(-slotSize)
	for _, name := range prog.Locals {
		h.locations[name] = offset
		offset -= slotSize
	}
	prog.Locals = nil

	for _, block := range prog.Blocks {
		for i, instr := range block.Instructions {
			block.Instructions[i] = h.assignInstr(instr)
		}
	}

	return prog
}

// assignInstr rewrites the operand positions of a single instruction.  Callee
// names and jump labels are untouched.
func (h *HomeAssigner) assignInstr(instr x86.Instruction) x86.Instruction {
	switch v := instr.(type) {
	case *x86.Addq:
		return &x86.Addq{Lhs: h.assignArg(v.Lhs), Rhs: h.assignArg(v.Rhs)}
	case *x86.Subq:
		return &x86.Subq{Lhs: h.assignArg(v.Lhs), Rhs: h.assignArg(v.Rhs)}
	case *x86.Movq:
		return &x86.Movq{From: h.assignArg(v.From), To: h.assignArg(v.To)}
	case *x86.Negq:
		return &x86.Negq{Operand: h.assignArg(v.Operand)}
	case *x86.Pushq:
		return &x86.Pushq{Operand: h.assignArg(v.Operand)}
	case *x86.Popq:
		return &x86.Popq{Operand: h.assignArg(v.Operand)}
	case *x86.Callq, *x86.Retq, *x86.Jmp:
		return instr
	default:
		report.ReportICE("home assigner received unknown instruction %T", instr)
		return nil
	}
}

// assignArg rewrites a symbolic variable operand to its stack home.  A
// variable with no recorded home indicates an upstream pass bug.
func (h *HomeAssigner) assignArg(arg x86.Arg) x86.Arg {
	if v, ok := arg.(x86.Var); ok {
		offset, ok := h.locations[v.Name]
		if !ok {
			report.ReportICE("no home assigned for variable `%s`", v.Name)
		}

		return x86.Deref{Reg: x86.RBP, Offset: offset}
	}

	return arg
}
