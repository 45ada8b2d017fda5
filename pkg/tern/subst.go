package tern

// Substitution is a mapping from variable-id to term that accumulates
// bindings during a single answer's derivation. Per the data model, a key
// appears at most once and no entry ever maps a variable to itself.
type Substitution struct {
	bindings map[Id]Term
}

// NewSubstitution returns an empty substitution.
func NewSubstitution() *Substitution {
	return &Substitution{bindings: make(map[Id]Term)}
}

// Clone returns a shallow copy: the binding map is copied, but the Term
// values inside it are shared, since Atom and Variable are immutable and
// Tuple is only ever mutated by replacement, never in place.
func (s *Substitution) Clone() *Substitution {
	cp := make(map[Id]Term, len(s.bindings))
	for k, v := range s.bindings {
		cp[k] = v
	}
	return &Substitution{bindings: cp}
}

// Lookup returns the term bound to v, if any.
func (s *Substitution) Lookup(v Id) (Term, bool) {
	t, ok := s.bindings[v]
	return t, ok
}

// bind records the binding of v to t. Callers are responsible for the
// "never bind a variable to itself" invariant; Unify enforces it before
// calling bind.
func (s *Substitution) bind(v Id, t Term) {
	s.bindings[v] = t
}

// Size reports the number of bindings currently recorded.
func (s *Substitution) Size() int {
	return len(s.bindings)
}

// Entries calls fn for every binding in the substitution. Iteration order
// is unspecified; callers that need a deterministic answer presentation
// build a Table instead, which preserves insertion order.
func (s *Substitution) Entries(fn func(Id, Term)) {
	for k, v := range s.bindings {
		fn(k, v)
	}
}

// Walk resolves t through subst until it reaches an atom, an unbound
// variable, or a compound. It is pure and performs no occurs-check. It
// follows only chains of bound variables and does not descend into a
// Tuple, so a cyclic binding such as Variable v -> Tuple[Variable v]
// (which Unify permits) is returned as that Tuple. See DESIGN.md for the
// occurs-check policy.
func Walk(t Term, subst *Substitution) Term {
	for {
		v, ok := t.(Variable)
		if !ok {
			return t
		}
		bound, ok := subst.Lookup(v.ID)
		if !ok {
			return t
		}
		t = bound
	}
}
