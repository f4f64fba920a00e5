// Package collections implements the collection-related CLI commands.
package collections

import (
	"github.com/mitchellh/cli"

	"github.com/catalogkit/purview-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Inspect and manage collections"
}

func (c *Command) Help() string {
	return `Usage: purview collections <subcommand> [options] [args]

  This command groups subcommands for working with collections.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
