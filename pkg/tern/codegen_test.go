package tern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEquals(t *testing.T) {
	in := NewInterner()
	g := NewGenerator(in)
	node := EqualsNode{Left: AtomNode{Name: "olive"}, Right: AtomNode{Name: "olive"}}
	instrs, err := g.Generate(node)
	require.NoError(t, err)
	require.Len(t, instrs, 3)
	assert.Equal(t, OpAtom, instrs[0].Op)
	assert.Equal(t, OpAtom, instrs[1].Op)
	assert.Equal(t, OpUnify, instrs[2].Op)
	assert.Equal(t, instrs[0].Id, instrs[1].Id, "repeated atom literals dedupe to the same id")
}

func TestGenerateConjInterleavesConj2(t *testing.T) {
	in := NewInterner()
	g := NewGenerator(in)
	node := ConjNode{Children: []Node{
		EqualsNode{Left: AtomNode{Name: "a"}, Right: AtomNode{Name: "a"}},
		EqualsNode{Left: AtomNode{Name: "b"}, Right: AtomNode{Name: "b"}},
		EqualsNode{Left: AtomNode{Name: "c"}, Right: AtomNode{Name: "c"}},
	}}
	instrs, err := g.Generate(node)
	require.NoError(t, err)
	// 3 statements * 3 instrs + 2 Conj2 instructions between them.
	require.Len(t, instrs, 11)
	conj2Count := 0
	for _, in := range instrs {
		if in.Op == OpConj2 {
			conj2Count++
		}
	}
	assert.Equal(t, 2, conj2Count)
}

func TestGenerateVarBlockScopesDeclaredNames(t *testing.T) {
	in := NewInterner()
	g := NewGenerator(in)
	node := VarNode{
		Declared: []string{"q"},
		Body:     EqualsNode{Left: VariableNode{Name: "q"}, Right: AtomNode{Name: "olive"}},
	}
	instrs, err := g.Generate(node)
	require.NoError(t, err)
	require.Len(t, instrs, 3)
	assert.Equal(t, OpVariable, instrs[0].Op)
	name, ok := in.Lookup(instrs[0].Id)
	require.True(t, ok)
	assert.Equal(t, "q", name)
}

func TestGenerateFnCallKnownBuiltins(t *testing.T) {
	in := NewInterner()
	g := NewGenerator(in)
	node := FnCallNode{Name: "solve", Args: []Node{EqualsNode{Left: AtomNode{Name: "a"}, Right: AtomNode{Name: "a"}}}}
	instrs, err := g.Generate(node)
	require.NoError(t, err)
	assert.Equal(t, OpSolve, instrs[len(instrs)-1].Op)
}

func TestGenerateFnCallUnknownBuiltinIsCodegenError(t *testing.T) {
	in := NewInterner()
	g := NewGenerator(in)
	node := FnCallNode{Name: "bogus", Offset: 42}
	_, err := g.Generate(node)
	require.Error(t, err)
}

func TestGenerateAccumulatesMultipleUndefinedBuiltins(t *testing.T) {
	in := NewInterner()
	g := NewGenerator(in)
	node := ProgramNode{Statements: []Node{
		FnCallNode{Name: "nope1", Offset: 1},
		FnCallNode{Name: "nope2", Offset: 2},
	}}
	_, err := g.Generate(node)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope1")
	assert.Contains(t, err.Error(), "nope2")
}

func TestGenerateTableLiteral(t *testing.T) {
	in := NewInterner()
	g := NewGenerator(in)
	node := TableNode{Pairs: []TablePair{
		{Key: AtomNode{Name: "x"}, Value: AtomNode{Name: "olive"}},
	}}
	instrs, err := g.Generate(node)
	require.NoError(t, err)
	require.Len(t, instrs, 4)
	assert.Equal(t, OpNewTable, instrs[0].Op)
	assert.Equal(t, OpSetTable, instrs[3].Op)
}

func TestGenerateLetAndBindingRefShareId(t *testing.T) {
	in := NewInterner()
	g := NewGenerator(in)
	node := ProgramNode{Statements: []Node{
		LetBindingNode{Name: "z", Value: AtomNode{Name: "olive"}},
		BindingRefNode{Name: "z"},
	}}
	instrs, err := g.Generate(node)
	require.NoError(t, err)
	// let: Variable, Atom, SetEnv (3); ref: Variable, GetEnv (2)
	require.Len(t, instrs, 5)
	assert.Equal(t, instrs[0].Id, instrs[3].Id, "the let-binding and its reference must resolve to the same id")
}

func TestGenerateRelationLiteralUsesIsolatedScope(t *testing.T) {
	in := NewInterner()
	g := NewGenerator(in)
	// The enclosing scope declares "q"; the relation parameter is a
	// distinct "x" that must not see "q".
	node := VarNode{
		Declared: []string{"q"},
		Body: RelationNode{
			Params: []string{"x"},
			Body:   EqualsNode{Left: VariableNode{Name: "x"}, Right: AtomNode{Name: "sarah"}},
		},
	}
	instrs, err := g.Generate(node)
	require.NoError(t, err)
	require.Len(t, instrs, 1)
	require.Equal(t, OpCallable, instrs[0].Op)
	assert.Len(t, instrs[0].Callable.Params, 1)
}

func TestGenerateIsDeterministicModuloIds(t *testing.T) {
	build := func() Node {
		return EqualsNode{Left: AtomNode{Name: "olive"}, Right: AtomNode{Name: "olive"}}
	}
	in1 := NewInterner()
	instrs1, err := NewGenerator(in1).Generate(build())
	require.NoError(t, err)

	in2 := NewInterner()
	instrs2, err := NewGenerator(in2).Generate(build())
	require.NoError(t, err)

	require.Len(t, instrs1, len(instrs2))
	for i := range instrs1 {
		assert.Equal(t, instrs1[i].Op, instrs2[i].Op)
	}
}
