// Package tern implements the core of the Tern logic-programming language:
// unification over ground atoms and variables, a goal algebra of
// conjunction/disjunction/equality, and the stack-based bytecode virtual
// machine that executes compiled programs. A lexer, parser, and REPL
// driver are deliberately out of scope here; callers supply an AST built
// either by an external parser or, as in cmd/tern, by constructing Node
// values directly.
package tern

import "fmt"

// Id is an interned handle shared by both atom names and variable names.
// A single Id space is used for both: an Id by itself does not say
// whether it names an atom or a variable; that is determined by which
// Term variant wraps it.
type Id uint64

// Interner is a monotonic, append-only name table. Intern never
// deduplicates: every call allocates a fresh Id, even for a name seen
// before. This is deliberate: the code generator relies on freshness to
// avoid accidental variable capture across lexical scopes introduced by
// var and rel. Callers that want atom deduplication (this package does,
// for atom literals) must keep their own name->Id cache in front of
// Intern.
type Interner struct {
	names []string
}

// NewInterner creates an empty interner, starting Id allocation at 0.
func NewInterner() *Interner {
	return &Interner{}
}

// Intern allocates and records a fresh Id for name.
func (in *Interner) Intern(name string) Id {
	id := Id(len(in.names))
	in.names = append(in.names, name)
	return id
}

// Lookup returns the name registered for id, or false if id was never
// interned by this table.
func (in *Interner) Lookup(id Id) (string, bool) {
	if int(id) < 0 || int(id) >= len(in.names) {
		return "", false
	}
	return in.names[id], true
}

// MustLookup is Lookup but falls back to the numeric id, rendered in the
// presentation layer's "unknown ids fall back to the numeric id" style.
func (in *Interner) MustLookup(id Id) string {
	if name, ok := in.Lookup(id); ok {
		return name
	}
	return fmt.Sprintf("%d", id)
}

// Len reports how many names have been interned.
func (in *Interner) Len() int {
	return len(in.names)
}
