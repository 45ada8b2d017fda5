package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/cli"

	"github.com/ternlang/tern/pkg/tern"
)

// RunCommand compiles and executes one of the built-in demonstration
// programs, then prints the presentation-layer rendering of the result
// (or, on a runtime error, the disassembly and stack dump).
type RunCommand struct {
	UI cli.Ui
}

func (c *RunCommand) Help() string {
	return strings.TrimSpace(`
Usage: tern run [-trace] <program>

  Compiles and executes one of the built-in demonstration programs.
  Run "tern list" to see the available program names.

Options:

  -trace   Raise the diagnostic log level to Debug, logging every opcode
           dispatch and every code-generation scope push/pop.
`)
}

func (c *RunCommand) Synopsis() string {
	return "Run a built-in demonstration program"
}

func (c *RunCommand) Run(args []string) int {
	var trace bool
	flags := flag.NewFlagSet("run", flag.ContinueOnError)
	flags.BoolVar(&trace, "trace", false, "raise the log level to Debug")
	flags.Usage = func() { c.UI.Output(c.Help()) }
	if err := flags.Parse(args); err != nil {
		return 1
	}

	rest := flags.Args()
	if len(rest) != 1 {
		c.UI.Error("This command takes one argument: the program name.")
		c.UI.Error(c.Help())
		return 1
	}

	p := findProgram(rest[0])
	if p == nil {
		c.UI.Error(fmt.Sprintf("Unknown program %q. Run \"tern list\" to see the available names.", rest[0]))
		return 1
	}

	logger := newLogger(trace)
	interner := tern.NewInterner()
	gen := tern.NewGenerator(interner, tern.WithGenLogger(logger))

	instrs, err := gen.Generate(p.build())
	if err != nil {
		c.UI.Error(color.RedString("code generation failed: %s", err))
		return 1
	}

	vm := tern.NewVM(interner, tern.WithLogger(logger))
	if err := vm.Run(instrs); err != nil {
		if rerr, ok := err.(*tern.RuntimeError); ok {
			c.UI.Error(tern.DisassemblyReport(vm, rerr))
		} else {
			c.UI.Error(err.Error())
		}
		return 1
	}

	if len(vm.Stack) == 0 {
		c.UI.Output(color.YellowString("(no value left on the stack)"))
		return 0
	}
	top := vm.Stack[len(vm.Stack)-1]
	c.UI.Output(tern.Present(top, interner))
	return 0
}
