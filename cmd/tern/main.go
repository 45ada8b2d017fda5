// Command tern is a thin demonstration driver over pkg/tern. It builds
// AST trees programmatically, as plain Go values rather than by parsing
// source text, and runs them through the code generator and VM. There is
// no lexer or parser here.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := cli.NewCLI("tern", version)
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"run":  func() (cli.Command, error) { return &RunCommand{UI: ui}, nil },
		"list": func() (cli.Command, error) { return &ListCommand{UI: ui}, nil },
	}

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}

// version is the CLI's reported version. Tern has no release process of
// its own; this is a placeholder the way a small internal tool would use
// one.
const version = "0.1.0"

// newLogger builds the logrus logger used by the run command, honoring
// its -trace flag by raising the level to Debug.
func newLogger(trace bool) logrus.FieldLogger {
	l := logrus.New()
	if trace {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.WarnLevel)
	}
	return l
}
