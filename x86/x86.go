// Package x86 defines the pseudo-assembly IR the backend passes operate on:
// blocks of x86-64 instructions whose operands may still be symbolic variables
// before home assignment.  The same instruction shapes serve both the symbolic
// and the finalized stage; home assignment establishes the invariant that no
// symbolic variable operand remains.
package x86

// Reg identifies one of the 16 general-purpose architectural registers.
type Reg int

const (
	RSP Reg = iota
	RBP
	RAX
	RBX
	RCX
	RDX
	RSI
	RDI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
)

// Arg represents an instruction operand.
type Arg interface {
	// Repr returns the AT&T-style rendering of the operand.
	Repr() string
}

// Imm is an immediate operand.
type Imm struct {
	Value int64
}

// Deref is a memory operand: base register plus byte offset.
type Deref struct {
	Reg    Reg
	Offset int64
}

// Var is a symbolic variable operand.  It only exists before home assignment.
type Var struct {
	Name string
}

// -----------------------------------------------------------------------------

// Instruction represents a single pseudo-assembly instruction.
type Instruction interface {
	// Repr returns the textual rendering of the instruction.
	Repr() string
}

// Addq computes lhs := lhs + rhs.
type Addq struct {
	Lhs, Rhs Arg
}

// Subq computes lhs := lhs - rhs.
type Subq struct {
	Lhs, Rhs Arg
}

// Negq negates its operand in place.
type Negq struct {
	Operand Arg
}

// Movq copies From into To.
type Movq struct {
	From, To Arg
}

// Pushq pushes its operand onto the stack.
type Pushq struct {
	Operand Arg
}

// Popq pops the top of the stack into its operand.
type Popq struct {
	Operand Arg
}

// Callq calls a routine by symbol name.
type Callq struct {
	Callee string
}

// Retq returns from the current routine.
type Retq struct{}

// Jmp jumps unconditionally to a label.
type Jmp struct {
	Target string
}

// -----------------------------------------------------------------------------

// Block is a labeled instruction sequence.
type Block struct {
	Label        string
	Instructions []Instruction
}

// NewBlock creates a new empty block with the given label.
func NewBlock(label string) *Block {
	return &Block{Label: label}
}

// Add appends an instruction to the block.
func (b *Block) Add(instr Instruction) {
	b.Instructions = append(b.Instructions, instr)
}

// Program is a whole pseudo-assembly program.
type Program struct {
	// Locals is the list of symbolic variable names in declaration order,
	// carried over from the three-address program.  Home assignment consumes
	// and clears it.
	Locals []string

	// Blocks is the ordered block list.
	Blocks []*Block
}

// NewProgram creates a new empty program.
func NewProgram() *Program {
	return &Program{}
}
