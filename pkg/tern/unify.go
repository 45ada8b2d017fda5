package tern

// Unify attempts to extend subst so that a and b become structurally
// equal, mutating subst in place. On success it returns true; on failure
// it returns false, leaving any bindings added before the first conflict
// in place; callers that need transactional rollback clone subst before
// calling Unify, which is exactly what the unify goal (goal.go) does.
func Unify(a, b Term, subst *Substitution) bool {
	a = Walk(a, subst)
	b = Walk(b, subst)

	av, aIsVar := a.(Variable)
	bv, bIsVar := b.(Variable)

	switch {
	case aIsVar && bIsVar:
		if av.ID == bv.ID {
			return true
		}
		subst.bind(av.ID, b)
		return true
	case aIsVar:
		subst.bind(av.ID, b)
		return true
	case bIsVar:
		subst.bind(bv.ID, a)
		return true
	}

	aAtom, aIsAtom := a.(Atom)
	bAtom, bIsAtom := b.(Atom)
	if aIsAtom && bIsAtom {
		return aAtom.ID == bAtom.ID
	}

	aTuple, aIsTuple := a.(Tuple)
	bTuple, bIsTuple := b.(Tuple)
	if aIsTuple && bIsTuple {
		if len(aTuple.Elems) != len(bTuple.Elems) {
			return false
		}
		for i := range aTuple.Elems {
			if !Unify(aTuple.Elems[i], bTuple.Elems[i], subst) {
				return false
			}
		}
		return true
	}

	return false
}
