package tern

import (
	"github.com/sirupsen/logrus"
)

// Frame is a call-stack activation: a shared reference to an instruction
// buffer plus a current instruction pointer. Callable is nil for the
// outermost (program-level) frame.
type Frame struct {
	Instrs   []Instr
	IP       int
	Callable *Callable
}

// Option configures a VM at construction time.
type Option func(*VM)

// WithLogger overrides the VM's diagnostic logger. Defaults to
// logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(vm *VM) { vm.logger = l }
}

// WithStepLimit bounds the number of opcode dispatches Run will perform
// before giving up, guarding tests against a runaway relation. Zero (the
// default) means unlimited: a non-terminating relation will loop.
func WithStepLimit(n int) Option {
	return func(vm *VM) { vm.stepLimit = n }
}

// WithWindow sets the disassembly window radius used by DisassemblyReport
// (disasm.go). Defaults to 10 instructions on each side of the failing ip.
func WithWindow(n int) Option {
	return func(vm *VM) { vm.window = n }
}

// VM is the stack-based bytecode interpreter: a value stack, a call
// stack of activation frames, an interner, and an environment used only
// for let-bindings. Execution is single-threaded and cooperative; Run
// never spawns a goroutine and the dispatch loop never blocks except on
// the caller's own goroutine.
type VM struct {
	Stack  []Value
	Frames []*Frame
	Env    map[Id]Value

	Interner *Interner

	logger    logrus.FieldLogger
	stepLimit int
	window    int
}

// NewVM constructs a VM sharing the given Interner (populated by the code
// generator during Generate).
func NewVM(interner *Interner, opts ...Option) *VM {
	vm := &VM{
		Interner: interner,
		Env:      make(map[Id]Value),
		logger:   logrus.StandardLogger(),
		window:   10,
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// Run executes instrs as the program's root activation frame: fetch the
// top frame's instruction at its ip, dispatch by opcode, then
// post-increment the ip of whatever frame is now top (dispatch may have
// changed which frame that is); if that ip equals its buffer's length,
// pop the frame. Execution halts normally when the call stack empties.
func (vm *VM) Run(instrs []Instr) error {
	vm.Frames = append(vm.Frames, &Frame{Instrs: instrs})

	steps := 0
	for len(vm.Frames) > 0 {
		if vm.stepLimit > 0 && steps >= vm.stepLimit {
			top := vm.Frames[len(vm.Frames)-1]
			return newRuntimeError(ErrStepLimitExceeded, top.IP, Instr{})
		}
		steps++

		top := vm.Frames[len(vm.Frames)-1]
		if top.IP >= len(top.Instrs) {
			vm.Frames = vm.Frames[:len(vm.Frames)-1]
			continue
		}

		instr := top.Instrs[top.IP]
		ip := top.IP
		vm.logger.WithFields(logrus.Fields{
			"ip":         ip,
			"opcode":     instr.Op.String(),
			"stackDepth": len(vm.Stack),
		}).Debug("dispatch")

		if err := vm.dispatch(ip, instr); err != nil {
			return err
		}

		if len(vm.Frames) == 0 {
			break
		}
		vm.Frames[len(vm.Frames)-1].IP++
	}
	return nil
}

func (vm *VM) push(v Value) {
	vm.Stack = append(vm.Stack, v)
}

func (vm *VM) pop(ip int, instr Instr) (Value, error) {
	if len(vm.Stack) == 0 {
		return Value{}, newRuntimeError(ErrStackUnderflow, ip, instr)
	}
	v := vm.Stack[len(vm.Stack)-1]
	vm.Stack = vm.Stack[:len(vm.Stack)-1]
	return v, nil
}

func (vm *VM) popTerm(ip int, instr Instr) (Term, error) {
	v, err := vm.pop(ip, instr)
	if err != nil {
		return nil, err
	}
	if v.Kind != KindTerm {
		return nil, newRuntimeError(ErrTypeMismatch, ip, instr, "Term", v.Kind.String())
	}
	return v.Term, nil
}

func (vm *VM) popGoal(ip int, instr Instr) (Goal, error) {
	v, err := vm.pop(ip, instr)
	if err != nil {
		return nil, err
	}
	if v.Kind != KindGoal {
		return nil, newRuntimeError(ErrTypeMismatch, ip, instr, "Goal", v.Kind.String())
	}
	return v.Goal, nil
}

func (vm *VM) popStream(ip int, instr Instr) (Stream, error) {
	v, err := vm.pop(ip, instr)
	if err != nil {
		return nil, err
	}
	if v.Kind != KindStream {
		return nil, newRuntimeError(ErrTypeMismatch, ip, instr, "Stream", v.Kind.String())
	}
	return v.Stream, nil
}

func (vm *VM) popTable(ip int, instr Instr) (*Table, error) {
	v, err := vm.pop(ip, instr)
	if err != nil {
		return nil, err
	}
	if v.Kind != KindTable {
		return nil, newRuntimeError(ErrTypeMismatch, ip, instr, "Table", v.Kind.String())
	}
	return v.Table, nil
}

func (vm *VM) popCallable(ip int, instr Instr) (*Callable, error) {
	v, err := vm.pop(ip, instr)
	if err != nil {
		return nil, err
	}
	if v.Kind != KindCallable {
		return nil, newRuntimeError(ErrInvalidCallTarget, ip, instr)
	}
	return v.Callable, nil
}

// dispatch executes a single opcode against the VM's stacks and
// environment. ip is the instruction pointer the instruction was fetched
// from, used only for error reporting (the frame's own ip has already
// been read by Run before dispatch is called).
func (vm *VM) dispatch(ip int, instr Instr) error {
	switch instr.Op {
	case OpAtom:
		vm.push(TermValue(Atom{ID: instr.Id}))
		return nil

	case OpVariable:
		vm.push(TermValue(Variable{ID: instr.Id}))
		return nil

	case OpUnify:
		right, err := vm.popTerm(ip, instr)
		if err != nil {
			return err
		}
		left, err := vm.popTerm(ip, instr)
		if err != nil {
			return err
		}
		vm.push(GoalValue(NewUnify(left, right)))
		return nil

	case OpConj2:
		right, err := vm.popGoal(ip, instr)
		if err != nil {
			return err
		}
		left, err := vm.popGoal(ip, instr)
		if err != nil {
			return err
		}
		vm.push(GoalValue(NewConj2(left, right)))
		return nil

	case OpDisj2:
		right, err := vm.popGoal(ip, instr)
		if err != nil {
			return err
		}
		left, err := vm.popGoal(ip, instr)
		if err != nil {
			return err
		}
		vm.push(GoalValue(NewDisj2(left, right)))
		return nil

	case OpSolve:
		g, err := vm.popGoal(ip, instr)
		if err != nil {
			return err
		}
		vm.push(StreamValue(g.Solve(NewSubstitution())))
		return nil

	case OpNext:
		s, err := vm.popStream(ip, instr)
		if err != nil {
			return err
		}
		sub, rest, ok := s()
		if !ok {
			vm.push(NoneValue())
			return nil
		}
		vm.push(StreamValue(rest))
		vm.push(TableValue(tableFromSubstitution(sub)))
		return nil

	case OpPop:
		_, err := vm.pop(ip, instr)
		return err

	case OpNewTable:
		vm.push(TableValue(NewTable()))
		return nil

	case OpSetTable:
		value, err := vm.pop(ip, instr)
		if err != nil {
			return err
		}
		key, err := vm.popTerm(ip, instr)
		if err != nil {
			return err
		}
		tbl, err := vm.popTable(ip, instr)
		if err != nil {
			return err
		}
		tbl.Set(key, value.Term)
		vm.push(TableValue(tbl))
		return nil

	case OpGetTable:
		key, err := vm.popTerm(ip, instr)
		if err != nil {
			return err
		}
		tbl, err := vm.popTable(ip, instr)
		if err != nil {
			return err
		}
		vm.push(TableValue(tbl))
		if v, ok := tbl.Get(key); ok {
			vm.push(TermValue(v))
		} else {
			vm.push(NoneValue())
		}
		return nil

	case OpSetEnv:
		value, err := vm.pop(ip, instr)
		if err != nil {
			return err
		}
		keyTerm, err := vm.popTerm(ip, instr)
		if err != nil {
			return err
		}
		v, ok := keyTerm.(Variable)
		if !ok {
			return newRuntimeError(ErrNonVariableEnvKey, ip, instr)
		}
		vm.Env[v.ID] = value
		return nil

	case OpGetEnv:
		keyTerm, err := vm.popTerm(ip, instr)
		if err != nil {
			return err
		}
		v, ok := keyTerm.(Variable)
		if !ok {
			return newRuntimeError(ErrNonVariableEnvKey, ip, instr)
		}
		stored, ok := vm.Env[v.ID]
		if !ok {
			return newRuntimeError(ErrUnknownEnvName, ip, instr, v.ID)
		}
		if stored.Kind == KindStream {
			return newRuntimeError(ErrStreamFromEnv, ip, instr)
		}
		vm.push(cloneValue(stored))
		return nil

	case OpCall:
		return vm.dispatchCall(ip, instr)

	case OpRet:
		return vm.dispatchRet(ip, instr)

	case OpCallable:
		vm.push(CallableValue(instr.Callable))
		return nil

	case OpPrint:
		if len(vm.Stack) == 0 {
			return newRuntimeError(ErrStackUnderflow, ip, instr)
		}
		top := vm.Stack[len(vm.Stack)-1]
		vm.logger.WithField("value", Present(top, vm.Interner)).Info("print")
		return nil

	default:
		return newRuntimeError(ErrTypeMismatch, ip, instr, "known opcode", instr.Op.String())
	}
}

// dispatchCall makes the Callable on top of the stack the new top
// activation frame, with its arguments left in place beneath it on the
// shared value stack for Ret to consume. The new frame's IP starts at -1
// so that Run's generic post-dispatch `top.IP++` lands it on
// instruction 0.
func (vm *VM) dispatchCall(ip int, instr Instr) error {
	c, err := vm.popCallable(ip, instr)
	if err != nil {
		return err
	}
	vm.Frames = append(vm.Frames, &Frame{Instrs: c.Instrs, IP: -1, Callable: c})
	return nil
}

// dispatchRet pops the active activation. A Relation wraps its returned
// Goal against its parameters and arguments; a Function simply leaves
// whatever the body left behind.
func (vm *VM) dispatchRet(ip int, instr Instr) error {
	if len(vm.Frames) == 0 {
		return newRuntimeError(ErrCallStackUnderflow, ip, instr)
	}
	frame := vm.Frames[len(vm.Frames)-1]
	vm.Frames = vm.Frames[:len(vm.Frames)-1]

	c := frame.Callable
	if c == nil || c.Kind == KindFunction {
		return nil
	}

	body, err := vm.popGoal(ip, instr)
	if err != nil {
		return err
	}
	args := make([]Term, len(c.Params))
	for i := len(c.Params) - 1; i >= 0; i-- {
		arg, err := vm.popTerm(ip, instr)
		if err != nil {
			return err
		}
		args[i] = arg
	}
	vm.push(GoalValue(wrapRelationResult(c.Params, args, body)))
	return nil
}
