package tern

// ValueKind tags which variant of the heterogeneous Value union is
// populated.
type ValueKind int

const (
	KindTerm ValueKind = iota
	KindGoal
	KindStream
	KindTable
	KindCallable
	KindNone
)

func (k ValueKind) String() string {
	switch k {
	case KindTerm:
		return "Term"
	case KindGoal:
		return "Goal"
	case KindStream:
		return "Stream"
	case KindTable:
		return "Table"
	case KindCallable:
		return "Callable"
	case KindNone:
		return "None"
	default:
		return "Unknown"
	}
}

// Value is the VM's heterogeneous stack element: a tagged union of Term,
// Goal, Stream, Table, Callable, and the distinguished None sentinel.
// Only Term and Table are safely cloneable; a Stream owns unique
// traversal state and is move-only by contract.
type Value struct {
	Kind     ValueKind
	Term     Term
	Goal     Goal
	Stream   Stream
	Table    *Table
	Callable *Callable
}

// TermValue wraps a Term as a Value.
func TermValue(t Term) Value { return Value{Kind: KindTerm, Term: t} }

// GoalValue wraps a Goal as a Value.
func GoalValue(g Goal) Value { return Value{Kind: KindGoal, Goal: g} }

// StreamValue wraps a Stream as a Value.
func StreamValue(s Stream) Value { return Value{Kind: KindStream, Stream: s} }

// TableValue wraps a Table as a Value.
func TableValue(t *Table) Value { return Value{Kind: KindTable, Table: t} }

// CallableValue wraps a Callable as a Value.
func CallableValue(c *Callable) Value { return Value{Kind: KindCallable, Callable: c} }

// NoneValue is the distinguished "no more answers" sentinel.
func NoneValue() Value { return Value{Kind: KindNone} }

// CallableKind distinguishes a plain Function callable, whose Ret simply
// pops the frame, from a Relation, whose Ret wraps the returned Goal
// against its parameters.
type CallableKind int

const (
	KindFunction CallableKind = iota
	KindRelation
)

// Callable is a record of (kind, parameter-id list, instruction buffer,
// resume-ip). A relation literal always materialises one with IP 0.
type Callable struct {
	Kind   CallableKind
	Params []Id
	Instrs []Instr
	IP     int
}

// cloneValue deep-copies a Value retrieved from the environment. Callers
// must reject a Stream-kind Value before calling cloneValue for a GetEnv
// result; cloneValue itself does not enforce that, since SetEnv is
// permitted to store a Stream.
func cloneValue(v Value) Value {
	switch v.Kind {
	case KindTerm:
		return TermValue(Clone(v.Term))
	case KindTable:
		return TableValue(v.Table.Clone())
	default:
		return v
	}
}
