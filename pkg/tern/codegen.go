package tern

import (
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// builtins maps the built-in function names the generator recognises to
// the opcode they compile to. Unknown names are a CodegenError carrying
// the source offset.
var builtins = map[string]Op{
	"solve": OpSolve,
	"next":  OpNext,
}

// GenOption configures a Generator at construction time.
type GenOption func(*Generator)

// WithGenLogger overrides the generator's diagnostic logger. Defaults to
// logrus.StandardLogger().
func WithGenLogger(l logrus.FieldLogger) GenOption {
	return func(g *Generator) { g.logger = l }
}

// Generator is a recursive AST walker that threads a lexically scoped
// name-to-id table and emits instructions. Names are registered into the
// Interner as a side effect of code generation.
type Generator struct {
	interner *Interner
	atoms    map[string]Id
	scopes   []map[string]Id
	logger   logrus.FieldLogger
	errs     *multierror.Error
}

// NewGenerator constructs a Generator that registers names into interner.
// The generator starts with a single root lexical scope, used for
// top-level variable references, let-bindings, and binding references
// that appear outside any var/rel block.
func NewGenerator(interner *Interner, opts ...GenOption) *Generator {
	g := &Generator{
		interner: interner,
		atoms:    make(map[string]Id),
		scopes:   []map[string]Id{make(map[string]Id)},
		logger:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// subGenerator returns a Generator for a relation body: it shares the
// interner and atom cache but starts a fresh, isolated scope stack.
// Relation bodies do not inherit the enclosing scope; they see only
// their parameters.
func (g *Generator) subGenerator() *Generator {
	return &Generator{
		interner: g.interner,
		atoms:    g.atoms,
		scopes:   []map[string]Id{make(map[string]Id)},
		logger:   g.logger,
	}
}

func (g *Generator) pushScope() {
	g.scopes = append(g.scopes, make(map[string]Id))
}

func (g *Generator) popScope() {
	g.scopes = g.scopes[:len(g.scopes)-1]
}

// declareVar interns a fresh id for name into the innermost scope,
// unconditionally. Freshness is required for logic variables introduced
// by var/rel to avoid accidental capture across scopes.
func (g *Generator) declareVar(name string) Id {
	id := g.interner.Intern(name)
	g.scopes[len(g.scopes)-1][name] = id
	return id
}

// lookupOrInternVar searches innermost to outermost for name; if absent
// anywhere, it interns a fresh id into the innermost scope.
func (g *Generator) lookupOrInternVar(name string) Id {
	for i := len(g.scopes) - 1; i >= 0; i-- {
		if id, ok := g.scopes[i][name]; ok {
			return id
		}
	}
	return g.declareVar(name)
}

// internAtom interns name once per distinct atom text seen by this
// generator (and any relation sub-generators, which share the atoms
// cache). Atom ids may be deduplicated; variable ids never are.
func (g *Generator) internAtom(name string) Id {
	if id, ok := g.atoms[name]; ok {
		return id
	}
	id := g.interner.Intern(name)
	g.atoms[name] = id
	return id
}

// Generate compiles node into a linear instruction buffer. If any
// undefined built-in calls were encountered while walking the tree, they
// are accumulated via go-multierror and returned together rather than
// stopping at the first one.
func (g *Generator) Generate(node Node) ([]Instr, error) {
	instrs := g.gen(node)
	if err := g.errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return instrs, nil
}

func (g *Generator) gen(node Node) []Instr {
	switch n := node.(type) {
	case ProgramNode:
		var instrs []Instr
		for _, stmt := range n.Statements {
			instrs = append(instrs, g.gen(stmt)...)
		}
		return instrs

	case ConjNode:
		var instrs []Instr
		for i, child := range n.Children {
			instrs = append(instrs, g.gen(child)...)
			if i > 0 {
				instrs = append(instrs, Instr{Op: OpConj2})
			}
		}
		return instrs

	case DisjNode:
		var instrs []Instr
		for i, child := range n.Children {
			instrs = append(instrs, g.gen(child)...)
			if i > 0 {
				instrs = append(instrs, Instr{Op: OpDisj2})
			}
		}
		return instrs

	case EqualsNode:
		instrs := g.gen(n.Left)
		instrs = append(instrs, g.gen(n.Right)...)
		instrs = append(instrs, Instr{Op: OpUnify})
		return instrs

	case VarNode:
		g.pushScope()
		for _, name := range n.Declared {
			g.declareVar(name)
		}
		g.logger.WithField("names", n.Declared).Debug("var scope pushed")
		body := g.gen(n.Body)
		g.popScope()
		g.logger.WithField("names", n.Declared).Debug("var scope popped")
		return body

	case AtomNode:
		id := g.internAtom(n.Name)
		return []Instr{{Op: OpAtom, Id: id}}

	case VariableNode:
		id := g.lookupOrInternVar(n.Name)
		return []Instr{{Op: OpVariable, Id: id}}

	case FnCallNode:
		var instrs []Instr
		for _, arg := range n.Args {
			instrs = append(instrs, g.gen(arg)...)
		}
		op, ok := builtins[n.Name]
		if !ok {
			g.errs = multierror.Append(g.errs, newCodegenError(n.Name, n.Offset))
			return nil
		}
		return append(instrs, Instr{Op: op})

	case TableNode:
		instrs := []Instr{{Op: OpNewTable}}
		for _, pair := range n.Pairs {
			instrs = append(instrs, g.gen(pair.Key)...)
			instrs = append(instrs, g.gen(pair.Value)...)
			instrs = append(instrs, Instr{Op: OpSetTable})
		}
		return instrs

	case LetBindingNode:
		id := g.lookupOrInternVar(n.Name)
		instrs := []Instr{{Op: OpVariable, Id: id}}
		instrs = append(instrs, g.gen(n.Value)...)
		instrs = append(instrs, Instr{Op: OpSetEnv})
		return instrs

	case BindingRefNode:
		id := g.lookupOrInternVar(n.Name)
		return []Instr{{Op: OpVariable, Id: id}, {Op: OpGetEnv}}

	case RelationNode:
		sub := g.subGenerator()
		params := make([]Id, len(n.Params))
		for i, name := range n.Params {
			params[i] = sub.declareVar(name)
		}
		body := sub.gen(n.Body)
		if sub.errs != nil {
			g.errs = multierror.Append(g.errs, sub.errs.Errors...)
		}
		callable := &Callable{Kind: KindRelation, Params: params, Instrs: body, IP: 0}
		return []Instr{{Op: OpCallable, Callable: callable}}

	default:
		return nil
	}
}
