package tern

import "fmt"

// Op identifies a single VM opcode.
type Op int

const (
	OpAtom Op = iota
	OpVariable
	OpUnify
	OpConj2
	OpDisj2
	OpSolve
	OpNext
	OpPop
	OpNewTable
	OpSetTable
	OpGetTable
	OpSetEnv
	OpGetEnv
	OpCall
	OpRet
	OpCallable
	OpPrint
)

func (op Op) String() string {
	switch op {
	case OpAtom:
		return "Atom"
	case OpVariable:
		return "Variable"
	case OpUnify:
		return "Unify"
	case OpConj2:
		return "Conj2"
	case OpDisj2:
		return "Disj2"
	case OpSolve:
		return "Solve"
	case OpNext:
		return "Next"
	case OpPop:
		return "Pop"
	case OpNewTable:
		return "NewTable"
	case OpSetTable:
		return "SetTable"
	case OpGetTable:
		return "GetTable"
	case OpSetEnv:
		return "SetEnv"
	case OpGetEnv:
		return "GetEnv"
	case OpCall:
		return "Call"
	case OpRet:
		return "Ret"
	case OpCallable:
		return "Callable"
	case OpPrint:
		return "Print"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Instr is a single bytecode instruction. Id operand carries the interned
// id for Atom/Variable; Callable carries the literal value for the
// Callable instruction. Unused fields are the type's zero value.
type Instr struct {
	Op       Op
	Id       Id
	Callable *Callable
}

func (in Instr) String() string {
	switch in.Op {
	case OpAtom, OpVariable:
		return fmt.Sprintf("%s(%d)", in.Op, in.Id)
	case OpCallable:
		return fmt.Sprintf("Callable{params=%d, instrs=%d}", len(in.Callable.Params), len(in.Callable.Instrs))
	default:
		return in.Op.String()
	}
}
