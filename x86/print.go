package x86

import (
	"fmt"
	"strings"

	"lilac/util"
)

// regNames maps registers to their AT&T renderings.
var regNames = [...]string{
	RSP: "%rsp", RBP: "%rbp", RAX: "%rax", RBX: "%rbx",
	RCX: "%rcx", RDX: "%rdx", RSI: "%rsi", RDI: "%rdi",
	R8: "%r8", R9: "%r9", R10: "%r10", R11: "%r11",
	R12: "%r12", R13: "%r13", R14: "%r14", R15: "%r15",
}

func (r Reg) Repr() string {
	return regNames[r]
}

// Immediates render in hex; the sign bit, if any, renders in two's complement.
func (a Imm) Repr() string {
	return fmt.Sprintf("$0x%x", uint64(a.Value))
}

func (a Deref) Repr() string {
	return fmt.Sprintf("%d(%s)", a.Offset, a.Reg.Repr())
}

func (a Var) Repr() string {
	return a.Name
}

// -----------------------------------------------------------------------------

// Instruction renderings.  Note that the operand order of the two-operand
// arithmetic forms follows the AT&T convention: the destination comes last,
// so `addq a, b` computes b := b + a.

func (i *Addq) Repr() string {
	return fmt.Sprintf("addq    %s, %s", i.Rhs.Repr(), i.Lhs.Repr())
}

func (i *Subq) Repr() string {
	return fmt.Sprintf("subq    %s, %s", i.Rhs.Repr(), i.Lhs.Repr())
}

func (i *Negq) Repr() string {
	return fmt.Sprintf("negq    %s", i.Operand.Repr())
}

func (i *Movq) Repr() string {
	return fmt.Sprintf("movq    %s, %s", i.From.Repr(), i.To.Repr())
}

func (i *Pushq) Repr() string {
	return fmt.Sprintf("pushq   %s", i.Operand.Repr())
}

func (i *Popq) Repr() string {
	return fmt.Sprintf("popq    %s", i.Operand.Repr())
}

func (i *Callq) Repr() string {
	return fmt.Sprintf("callq   %s", i.Callee)
}

func (i *Retq) Repr() string {
	return "retq"
}

func (i *Jmp) Repr() string {
	return fmt.Sprintf("jmp     %s", i.Target)
}

// -----------------------------------------------------------------------------

// Repr returns the textual rendering of the block: the label line followed by
// one indented line per instruction.
func (b *Block) Repr() string {
	sb := strings.Builder{}

	sb.WriteString(b.Label)
	sb.WriteString(":\n")
	for _, instr := range b.Instructions {
		sb.WriteString("    ")
		sb.WriteString(instr.Repr())
		sb.WriteRune('\n')
	}

	return sb.String()
}

// Repr returns the full textual rendering of the program: the pipeline's
// observable output artifact.
func (p *Program) Repr() string {
	return strings.Join(util.Map(p.Blocks, (*Block).Repr), "")
}
