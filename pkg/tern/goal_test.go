package tern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s Stream, max int) []*Substitution {
	t.Helper()
	var out []*Substitution
	for i := 0; i < max; i++ {
		sub, rest, ok := s()
		if !ok {
			return out
		}
		out = append(out, sub)
		s = rest
	}
	return out
}

func TestUnifyGoalYieldsOnceOnSuccess(t *testing.T) {
	g := NewUnify(Atom{ID: 1}, Atom{ID: 1})
	results := drain(t, g.Solve(NewSubstitution()), 5)
	require.Len(t, results, 1)
}

func TestUnifyGoalYieldsNothingOnFailure(t *testing.T) {
	g := NewUnify(Atom{ID: 1}, Atom{ID: 2})
	results := drain(t, g.Solve(NewSubstitution()), 5)
	assert.Empty(t, results)
}

func TestUnifyGoalDoesNotMutateInput(t *testing.T) {
	sub := NewSubstitution()
	g := NewUnify(Variable{ID: 1}, Atom{ID: 1})
	_, _, _ = g.Solve(sub)()
	assert.Equal(t, 0, sub.Size(), "Solve must not mutate the substitution handed to it")
}

// TestDisj2InterleavesLeftFirst is scenario S4: disj{q == 'olive | q ==
// 'oil} yields olive then oil, in that order.
func TestDisj2InterleavesLeftFirst(t *testing.T) {
	const q, olive, oil = Id(1), Id(2), Id(3)
	g := NewDisj2(
		NewUnify(Variable{ID: q}, Atom{ID: olive}),
		NewUnify(Variable{ID: q}, Atom{ID: oil}),
	)
	results := drain(t, g.Solve(NewSubstitution()), 10)
	require.Len(t, results, 2)

	first, ok := results[0].Lookup(q)
	require.True(t, ok)
	assert.Equal(t, Atom{ID: olive}, first)

	second, ok := results[1].Lookup(q)
	require.True(t, ok)
	assert.Equal(t, Atom{ID: oil}, second)
}

// TestDisj2FairnessFallsBackToOtherSide: when the currently-selected
// side is momentarily empty, the other side is still consulted within
// the same pull rather than being skipped.
func TestDisj2FairnessFallsBackToOtherSide(t *testing.T) {
	failing := NewUnify(Atom{ID: 1}, Atom{ID: 2})
	succeeding := NewUnify(Atom{ID: 3}, Atom{ID: 3})
	g := NewDisj2(failing, succeeding)
	results := drain(t, g.Solve(NewSubstitution()), 10)
	require.Len(t, results, 1)
}

// TestConj2AnswersAreCrossProduct: answers are the left-outer by
// right-inner cross product.
func TestConj2AnswersAreCrossProduct(t *testing.T) {
	const x, y = Id(1), Id(2)
	left := NewDisj2(
		NewUnify(Variable{ID: x}, Atom{ID: 10}),
		NewUnify(Variable{ID: x}, Atom{ID: 11}),
	)
	right := NewDisj2(
		NewUnify(Variable{ID: y}, Atom{ID: 20}),
		NewUnify(Variable{ID: y}, Atom{ID: 21}),
	)
	g := NewConj2(left, right)
	results := drain(t, g.Solve(NewSubstitution()), 10)
	require.Len(t, results, 4)

	seen := map[[2]Id]bool{}
	for _, r := range results {
		xv, _ := r.Lookup(x)
		yv, _ := r.Lookup(y)
		seen[[2]Id{xv.(Atom).ID, yv.(Atom).ID}] = true
	}
	assert.True(t, seen[[2]Id{10, 20}])
	assert.True(t, seen[[2]Id{10, 21}])
	assert.True(t, seen[[2]Id{11, 20}])
	assert.True(t, seen[[2]Id{11, 21}])
}

// TestSolveIsDeterministic: successive Solve calls on the same goal and
// substitution yield equivalent answer sets.
func TestSolveIsDeterministic(t *testing.T) {
	g := NewDisj2(
		NewUnify(Variable{ID: 1}, Atom{ID: 2}),
		NewUnify(Variable{ID: 1}, Atom{ID: 3}),
	)
	sub := NewSubstitution()
	first := drain(t, g.Solve(sub), 10)
	second := drain(t, g.Solve(sub), 10)
	require.Len(t, first, len(second))
	for i := range first {
		fv, _ := first[i].Lookup(1)
		sv, _ := second[i].Lookup(1)
		assert.Equal(t, fv, sv)
	}
}

func TestWrapRelationResultConjoinsParametersRightToLeft(t *testing.T) {
	params := []Id{1, 2}
	args := []Term{Atom{ID: 10}, Atom{ID: 20}}
	body := NewUnify(Atom{ID: 99}, Atom{ID: 99})
	g := wrapRelationResult(params, args, body)

	results := drain(t, g.Solve(NewSubstitution()), 5)
	require.Len(t, results, 1)
	v1, ok := results[0].Lookup(1)
	require.True(t, ok)
	assert.Equal(t, Atom{ID: 10}, v1)
	v2, ok := results[0].Lookup(2)
	require.True(t, ok)
	assert.Equal(t, Atom{ID: 20}, v2)
}
