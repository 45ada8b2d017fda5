package main

import (
	"fmt"

	"github.com/hashicorp/cli"
)

// ListCommand prints the names of the built-in demonstration programs
// the run subcommand accepts.
type ListCommand struct {
	UI cli.Ui
}

func (c *ListCommand) Help() string {
	return "Usage: tern list\n\n  Lists the built-in demonstration programs."
}

func (c *ListCommand) Synopsis() string {
	return "List built-in demonstration programs"
}

func (c *ListCommand) Run(args []string) int {
	for _, p := range programs {
		c.UI.Output(fmt.Sprintf("%-16s %s", p.name, p.description))
	}
	return 0
}
