package main

import "github.com/ternlang/tern/pkg/tern"

// program is one of the fixed built-in demonstration programs the run
// subcommand can execute, identified by name.
type program struct {
	name        string
	description string
	build       func() tern.Node
}

// programs is the fixed set of demonstrations: each is small enough to
// read in full and shows one piece of the language.
var programs = []program{
	{
		name:        "atoms-equal",
		description: "'olive == 'olive, then solve/next",
		build: func() tern.Node {
			return tern.ProgramNode{Statements: []tern.Node{
				tern.FnCallNode{Name: "next", Args: []tern.Node{
					tern.FnCallNode{Name: "solve", Args: []tern.Node{
						tern.EqualsNode{
							Left:  tern.AtomNode{Name: "olive"},
							Right: tern.AtomNode{Name: "olive"},
						},
					}},
				}},
			}}
		},
	},
	{
		name:        "atoms-differ",
		description: "'apple == 'orange, then solve/next",
		build: func() tern.Node {
			return tern.ProgramNode{Statements: []tern.Node{
				tern.FnCallNode{Name: "next", Args: []tern.Node{
					tern.FnCallNode{Name: "solve", Args: []tern.Node{
						tern.EqualsNode{
							Left:  tern.AtomNode{Name: "apple"},
							Right: tern.AtomNode{Name: "orange"},
						},
					}},
				}},
			}}
		},
	},
	{
		name:        "fresh-variable",
		description: "var (q) { q == 'olive }, then solve/next",
		build: func() tern.Node {
			return tern.ProgramNode{Statements: []tern.Node{
				tern.FnCallNode{Name: "next", Args: []tern.Node{
					tern.FnCallNode{Name: "solve", Args: []tern.Node{
						tern.VarNode{
							Declared: []string{"q"},
							Body: tern.EqualsNode{
								Left:  tern.VariableNode{Name: "q"},
								Right: tern.AtomNode{Name: "olive"},
							},
						},
					}},
				}},
			}}
		},
	},
	{
		name:        "disjunction",
		description: "disj { q == 'olive | q == 'oil }, then solve/next",
		build: func() tern.Node {
			return tern.ProgramNode{Statements: []tern.Node{
				tern.FnCallNode{Name: "next", Args: []tern.Node{
					tern.FnCallNode{Name: "solve", Args: []tern.Node{
						tern.VarNode{
							Declared: []string{"q"},
							Body: tern.DisjNode{Children: []tern.Node{
								tern.EqualsNode{Left: tern.VariableNode{Name: "q"}, Right: tern.AtomNode{Name: "olive"}},
								tern.EqualsNode{Left: tern.VariableNode{Name: "q"}, Right: tern.AtomNode{Name: "oil"}},
							}},
						},
					}},
				}},
			}}
		},
	},
	{
		name:        "relation",
		description: "rel(x) { disj { x == 'sarah | x == 'milcah | x == 'yiscah } }, as a value",
		build: func() tern.Node {
			return tern.ProgramNode{Statements: []tern.Node{
				tern.RelationNode{
					Params: []string{"x"},
					Body: tern.DisjNode{Children: []tern.Node{
						tern.EqualsNode{Left: tern.VariableNode{Name: "x"}, Right: tern.AtomNode{Name: "sarah"}},
						tern.EqualsNode{Left: tern.VariableNode{Name: "x"}, Right: tern.AtomNode{Name: "milcah"}},
						tern.EqualsNode{Left: tern.VariableNode{Name: "x"}, Right: tern.AtomNode{Name: "yiscah"}},
					}},
				},
			}}
		},
	},
	{
		name:        "let-bindings",
		description: "let x = {x: 'olive, y: 'oil}; let y = 'banana == 'apple; let z = solve('banana == 'banana)",
		build: func() tern.Node {
			return tern.ProgramNode{Statements: []tern.Node{
				tern.LetBindingNode{
					Name: "x",
					Value: tern.TableNode{Pairs: []tern.TablePair{
						{Key: tern.AtomNode{Name: "x"}, Value: tern.AtomNode{Name: "olive"}},
						{Key: tern.AtomNode{Name: "y"}, Value: tern.AtomNode{Name: "oil"}},
					}},
				},
				tern.LetBindingNode{
					Name: "y",
					Value: tern.EqualsNode{
						Left:  tern.AtomNode{Name: "banana"},
						Right: tern.AtomNode{Name: "apple"},
					},
				},
				tern.LetBindingNode{
					Name: "z",
					Value: tern.FnCallNode{Name: "solve", Args: []tern.Node{
						tern.EqualsNode{Left: tern.AtomNode{Name: "banana"}, Right: tern.AtomNode{Name: "banana"}},
					}},
				},
				tern.BindingRefNode{Name: "x"},
				tern.BindingRefNode{Name: "y"},
			}}
		},
	},
}

func findProgram(name string) *program {
	for i := range programs {
		if programs[i].name == name {
			return &programs[i]
		}
	}
	return nil
}
