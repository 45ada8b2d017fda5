package tern

import "fmt"

// Term is the sum type at the center of the data model: an Atom, a
// Variable, or a Tuple of sub-terms. Terms are value-semantic: cloning a
// Tuple deep-copies its element slice, while Atom and Variable are cheap
// to copy by value since they carry nothing but an Id.
type Term interface {
	fmt.Stringer
	isTerm()
}

// Atom is a ground symbolic constant.
type Atom struct {
	ID Id
}

func (Atom) isTerm() {}

func (a Atom) String() string {
	return fmt.Sprintf("Atom(%d)", a.ID)
}

// Variable is a logic variable that may be bound to a Term via a
// Substitution.
type Variable struct {
	ID Id
}

func (Variable) isTerm() {}

func (v Variable) String() string {
	return fmt.Sprintf("Variable(%d)", v.ID)
}

// Tuple is a structurally unified composite of fixed arity.
type Tuple struct {
	Elems []Term
}

func (Tuple) isTerm() {}

func (t Tuple) String() string {
	s := "Tuple("
	for i, e := range t.Elems {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + ")"
}

// Clone deep-copies t. Atom and Variable are returned as-is (they are
// already immutable value types); Tuple copies its element slice
// recursively.
func Clone(t Term) Term {
	switch v := t.(type) {
	case Tuple:
		elems := make([]Term, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = Clone(e)
		}
		return Tuple{Elems: elems}
	default:
		return t
	}
}

// Equal reports whether a and b are structurally identical terms. It does
// not consult a substitution; callers that want equality under bindings
// should Walk both sides first.
func Equal(a, b Term) bool {
	switch av := a.(type) {
	case Atom:
		bv, ok := b.(Atom)
		return ok && av.ID == bv.ID
	case Variable:
		bv, ok := b.(Variable)
		return ok && av.ID == bv.ID
	case Tuple:
		bv, ok := b.(Tuple)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
