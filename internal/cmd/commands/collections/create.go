package collections

import (
	"context"
	"fmt"
	"strings"

	"github.com/catalogkit/purview-go/internal/cmd/base"
)

type CreateCommand struct {
	*base.Command

	FlagStart string
}

func (c *CreateCommand) Synopsis() string {
	return "Create nested collections from path strings"
}

func (c *CreateCommand) Help() string {
	return `Usage: purview collections create -start=<collection> <path> [<path> ...]

  Ensures each slash-delimited path of collections exists under the
  starting collection, creating missing ones parent before child.
  Path segments may be friendly names or internal ids; existing
  collections are never recreated.

  Example:

    purview collections create -start="Root" "Finance/Invoices/2024"

Options:

  -start=value  Starting collection (id or friendly name). Required.
  -config=path  Path to the HCL config file.`
}

func (c *CreateCommand) Run(args []string) int {
	f := c.FlagSet("collections create")
	f.StringVar(&c.FlagStart, "start", "", "starting collection (id or friendly name)")
	if err := f.Parse(args); err != nil {
		return 1
	}

	paths := f.Args()
	if c.FlagStart == "" {
		c.UI.Error("the -start flag is required")
		return 1
	}
	if len(paths) == 0 {
		c.UI.Error("at least one path argument is required")
		return 1
	}

	ctx := context.Background()
	client, err := c.CollectionsClient(ctx)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	results, err := client.EnsurePaths(ctx, c.FlagStart, paths)
	for _, res := range results {
		switch {
		case len(res.Created) > 0:
			c.UI.Output(fmt.Sprintf("%s: created %s", res.Path, strings.Join(res.Created, ", ")))
		default:
			c.UI.Output(fmt.Sprintf("%s: nothing to create", res.Path))
		}
	}
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
