package collections

import (
	"context"

	"github.com/catalogkit/purview-go/internal/cmd/base"
)

type TreeCommand struct {
	*base.Command
}

func (c *TreeCommand) Synopsis() string {
	return "Render the collection hierarchy as a tree"
}

func (c *TreeCommand) Help() string {
	return `Usage: purview collections tree [options]

  Renders the account's collection hierarchy as an indented ASCII
  tree. Collections with missing parents or cyclic parent chains are
  shown as roots and reported as warnings.

Options:

  -config=path  Path to the HCL config file.`
}

func (c *TreeCommand) Run(args []string) int {
	f := c.FlagSet("collections tree")
	if err := f.Parse(args); err != nil {
		return 1
	}

	ctx := context.Background()
	client, err := c.CollectionsClient(ctx)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	lines, warnings, err := client.Hierarchy(ctx)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	for _, line := range lines {
		c.UI.Output(line)
	}
	for _, w := range warnings {
		c.UI.Warn(w.String())
	}
	return 0
}
