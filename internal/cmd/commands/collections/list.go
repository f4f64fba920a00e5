package collections

import (
	"context"
	"fmt"

	"github.com/catalogkit/purview-go/internal/cmd/base"
)

type ListCommand struct {
	*base.Command

	FlagNamesOnly bool
}

func (c *ListCommand) Synopsis() string {
	return "List the collections in the account"
}

func (c *ListCommand) Help() string {
	return `Usage: purview collections list [options]

  Lists every collection in the account with its internal id and
  friendly name.

Options:

  -names        Print friendly names only.
  -config=path  Path to the HCL config file.`
}

func (c *ListCommand) Run(args []string) int {
	f := c.FlagSet("collections list")
	f.BoolVar(&c.FlagNamesOnly, "names", false, "print friendly names only")
	if err := f.Parse(args); err != nil {
		return 1
	}

	ctx := context.Background()
	client, err := c.CollectionsClient(ctx)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if c.FlagNamesOnly {
		names, err := client.ListNames(ctx)
		if err != nil {
			c.UI.Error(err.Error())
			return 1
		}
		for _, name := range names {
			c.UI.Output(name)
		}
		return 0
	}

	dir, err := client.Directory(ctx)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	for _, id := range dir.IDs() {
		rec, _ := dir.Get(id)
		c.UI.Output(fmt.Sprintf("%s\t%s", rec.ID, rec.FriendlyName))
	}
	return 0
}
