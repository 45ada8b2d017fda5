package tern

// Goal is the shared capability of the goal variants: given a
// substitution, produce a lazy stream of substitutions. Goals are
// referentially shared and must be re-entrant; Solve is called many
// times from different input substitutions over the life of a program,
// and must never mutate its argument.
type Goal interface {
	Solve(sub *Substitution) Stream
}

// unifyGoal is the equality goal. The unification is attempted lazily,
// on the first pull, and yields at most one answer.
type unifyGoal struct {
	left, right Term
}

// NewUnify constructs the Unify(left, right) goal.
func NewUnify(left, right Term) Goal {
	return unifyGoal{left: left, right: right}
}

func (g unifyGoal) Solve(sub *Substitution) Stream {
	return func() (*Substitution, Stream, bool) {
		working := sub.Clone()
		if Unify(g.left, g.right, working) {
			return working, emptyStream(), true
		}
		return nil, nil, false
	}
}

// disj2Goal is binary disjunction: fair round-robin interleaving of the
// two sub-streams, falling back to the other side when the selected side
// is empty.
type disj2Goal struct {
	g1, g2 Goal
}

// NewDisj2 constructs the Disj2(g1, g2) goal.
func NewDisj2(g1, g2 Goal) Goal {
	return disj2Goal{g1: g1, g2: g2}
}

func (g disj2Goal) Solve(sub *Substitution) Stream {
	return disj2Step(g.g1.Solve(sub), g.g2.Solve(sub), true)
}

// disj2Step pulls from whichever of left/right is "current" (per
// currentLeft), falling back to the other side within the same pull if
// the current side is exhausted, then flips which side is current for
// the next call regardless of which side actually produced the answer.
func disj2Step(left, right Stream, currentLeft bool) Stream {
	return func() (*Substitution, Stream, bool) {
		if currentLeft {
			if sub, rest, ok := left(); ok {
				return sub, disj2Step(rest, right, false), true
			}
			if sub, rest, ok := right(); ok {
				return sub, disj2Step(left, rest, false), true
			}
			return nil, nil, false
		}
		if sub, rest, ok := right(); ok {
			return sub, disj2Step(left, rest, true), true
		}
		if sub, rest, ok := left(); ok {
			return sub, disj2Step(rest, right, true), true
		}
		return nil, nil, false
	}
}

// conj2Goal is binary conjunction: flat-map g2's stream over every
// substitution g1 produces, advancing g1 once the current g2 stream is
// exhausted.
type conj2Goal struct {
	g1, g2 Goal
}

// NewConj2 constructs the Conj2(g1, g2) goal.
func NewConj2(g1, g2 Goal) Goal {
	return conj2Goal{g1: g1, g2: g2}
}

func (g conj2Goal) Solve(sub *Substitution) Stream {
	return conj2Step(g.g1.Solve(sub), nil, g.g2)
}

func conj2Step(left Stream, right Stream, g2 Goal) Stream {
	return func() (*Substitution, Stream, bool) {
		for {
			if right != nil {
				if sub, rest, ok := right(); ok {
					return sub, conj2Step(left, rest, g2), true
				}
				right = nil
			}
			if left == nil {
				return nil, nil, false
			}
			lsub, lrest, ok := left()
			if !ok {
				left = nil
				return nil, nil, false
			}
			left = lrest
			right = g2.Solve(lsub)
		}
	}
}

// wrapRelationResult implements the relation return protocol: for each
// declared parameter i, right to left, construct
// Conj2(Unify(Variable(parameter_i), argument_i), acc), with acc
// initialised to the body goal.
func wrapRelationResult(params []Id, args []Term, body Goal) Goal {
	acc := body
	for i := len(params) - 1; i >= 0; i-- {
		acc = NewConj2(NewUnify(Variable{ID: params[i]}, args[i]), acc)
	}
	return acc
}
