package entity

import (
	"context"
	"fmt"

	"github.com/catalogkit/purview-go/internal/cmd/base"
)

type MoveCommand struct {
	*base.Command

	FlagCollection string
}

func (c *MoveCommand) Synopsis() string {
	return "Move entities into a collection by guid"
}

func (c *MoveCommand) Help() string {
	return `Usage: purview entity move -collection=<id> <guid> [<guid> ...]

  Moves one or more entities, identified by guid, into the target
  collection.

Options:

  -collection=id  Target collection id. Required.
  -config=path    Path to the HCL config file.`
}

func (c *MoveCommand) Run(args []string) int {
	f := c.FlagSet("entity move")
	f.StringVar(&c.FlagCollection, "collection", "", "target collection id")
	if err := f.Parse(args); err != nil {
		return 1
	}

	if c.FlagCollection == "" {
		c.UI.Error("the -collection flag is required")
		return 1
	}
	guids := f.Args()
	if len(guids) == 0 {
		c.UI.Error("at least one entity guid argument is required")
		return 1
	}

	ctx := context.Background()
	client, err := c.CollectionsClient(ctx)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if _, err := client.MoveEntities(ctx, c.FlagCollection, guids); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	c.UI.Output(fmt.Sprintf("moved %d entities to collection %s", len(guids), c.FlagCollection))
	return 0
}
