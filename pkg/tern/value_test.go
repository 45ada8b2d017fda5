package tern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneValueDeepCopiesTermAndTable(t *testing.T) {
	orig := TermValue(Tuple{Elems: []Term{Atom{ID: 1}}})
	cp := cloneValue(orig)
	cp.Term.(Tuple).Elems[0] = Atom{ID: 99}
	assert.Equal(t, Id(1), orig.Term.(Tuple).Elems[0].(Atom).ID)
}

func TestCloneValuePassesThroughGoalStreamCallable(t *testing.T) {
	g := NewUnify(Atom{ID: 1}, Atom{ID: 1})
	v := GoalValue(g)
	cp := cloneValue(v)
	assert.Equal(t, KindGoal, cp.Kind)
}

func TestValueKindString(t *testing.T) {
	assert.Equal(t, "Term", KindTerm.String())
	assert.Equal(t, "None", KindNone.String())
}
