package tern

import errors "gopkg.in/src-d/go-errors.v1"

// Error kinds, not types: each runtime failure class is a package-level
// *errors.Kind instantiated once, instanced with call-site data via
// .New(...). Callers distinguish kinds with Kind.Is(err), never string
// matching.
var (
	ErrStackUnderflow      = errors.NewKind("stack underflow at ip %d (%s)")
	ErrTypeMismatch        = errors.NewKind("type mismatch at ip %d (%s): expected %s, got %s")
	ErrNonVariableEnvKey   = errors.NewKind("environment key must be a Variable term at ip %d (%s)")
	ErrUnknownEnvName      = errors.NewKind("unknown environment binding at ip %d (%s): id %d")
	ErrStreamFromEnv       = errors.NewKind("cannot retrieve a Stream from the environment at ip %d (%s)")
	ErrInvalidCallTarget   = errors.NewKind("call target is not a Callable at ip %d (%s)")
	ErrCallStackUnderflow  = errors.NewKind("Ret with no active call frame at ip %d (%s)")
	ErrUndefinedBuiltin    = errors.NewKind("undefined built-in function %q at offset %d")

	// ErrStepLimitExceeded backs the test-only WithStepLimit safety
	// valve (vm.go) and is never produced by a correctly running
	// program.
	ErrStepLimitExceeded = errors.NewKind("step limit exceeded at ip %d (%s)")
)

// RuntimeError wraps one of the Kind instances above with the failing
// instruction pointer and the Instr that was executing; both also appear
// in the error message. The disassembly report marks the failing line by
// each frame's own instruction pointer.
type RuntimeError struct {
	Err   error
	IP    int
	Instr Instr
}

func (e *RuntimeError) Error() string { return e.Err.Error() }

// Unwrap and Cause both expose the underlying *errors.Kind instance, so
// callers can distinguish kinds with Kind.Is(err) regardless of which
// unwrapping convention they use.
func (e *RuntimeError) Unwrap() error { return e.Err }
func (e *RuntimeError) Cause() error  { return e.Err }

func newRuntimeError(kind *errors.Kind, ip int, instr Instr, args ...interface{}) *RuntimeError {
	full := append([]interface{}{ip, instr.String()}, args...)
	return &RuntimeError{Err: kind.New(full...), IP: ip, Instr: instr}
}

// CodegenError wraps ErrUndefinedBuiltin with the source offset of the
// call site that caused it.
type CodegenError struct {
	Err    error
	Offset int
}

func (e *CodegenError) Error() string { return e.Err.Error() }
func (e *CodegenError) Unwrap() error { return e.Err }
func (e *CodegenError) Cause() error  { return e.Err }

func newCodegenError(name string, offset int) *CodegenError {
	return &CodegenError{Err: ErrUndefinedBuiltin.New(name, offset), Offset: offset}
}
