package tern

// Node is the AST shape the code generator consumes. The parser that
// produces these trees lives outside this package; cmd/tern constructs
// them directly as Go values rather than parsing source text.
type Node interface {
	isNode()
}

// ConjNode is a conjunction of N child goals.
type ConjNode struct {
	Children []Node
}

func (ConjNode) isNode() {}

// DisjNode is a disjunction of N child goals.
type DisjNode struct {
	Children []Node
}

func (DisjNode) isNode() {}

// EqualsNode is an equality constraint between two expressions.
type EqualsNode struct {
	Left, Right Node
}

func (EqualsNode) isNode() {}

// VarNode introduces one lexical scope of fresh variables around Body.
type VarNode struct {
	Declared []string
	Body     Node
}

func (VarNode) isNode() {}

// AtomNode is an atom literal.
type AtomNode struct {
	Name string
}

func (AtomNode) isNode() {}

// VariableNode is a reference to a (declared or implicitly fresh)
// variable name.
type VariableNode struct {
	Name string
}

func (VariableNode) isNode() {}

// FnCallNode is a call to a built-in function (solve or next). Offset is
// the source offset used by CodegenError when Name is unrecognised.
type FnCallNode struct {
	Name   string
	Args   []Node
	Offset int
}

func (FnCallNode) isNode() {}

// TablePair is one key/value pair of a TableNode literal.
type TablePair struct {
	Key, Value Node
}

// TableNode is an associative literal `{k: v, ...}`.
type TableNode struct {
	Pairs []TablePair
}

func (TableNode) isNode() {}

// LetBindingNode binds Name to the result of evaluating Value in the
// process-wide environment.
type LetBindingNode struct {
	Name  string
	Value Node
}

func (LetBindingNode) isNode() {}

// BindingRefNode reads a name previously bound by a LetBindingNode.
type BindingRefNode struct {
	Name string
}

func (BindingRefNode) isNode() {}

// RelationNode is a first-class relation literal `rel (params) { body }`.
type RelationNode struct {
	Params []string
	Body   Node
}

func (RelationNode) isNode() {}

// ProgramNode concatenates a sequence of top-level statements.
type ProgramNode struct {
	Statements []Node
}

func (ProgramNode) isNode() {}
