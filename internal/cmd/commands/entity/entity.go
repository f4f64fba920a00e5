// Package entity implements the entity-related CLI commands.
package entity

import (
	"github.com/mitchellh/cli"

	"github.com/catalogkit/purview-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Upload and move catalog entities"
}

func (c *Command) Help() string {
	return `Usage: purview entity <subcommand> [options] [args]

  This command groups subcommands for working with catalog entities.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
