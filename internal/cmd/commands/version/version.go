// Package version implements the version CLI command.
package version

import (
	"github.com/mitchellh/cli"

	"github.com/catalogkit/purview-go/internal/version"
)

type Command struct {
	UI cli.Ui
}

func (c *Command) Synopsis() string {
	return "Print the CLI version"
}

func (c *Command) Help() string {
	return `Usage: purview version`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
