package entity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"

	"github.com/catalogkit/purview-go/internal/cmd/base"
	entitypkg "github.com/catalogkit/purview-go/pkg/entity"
)

type UploadCommand struct {
	*base.Command

	// FS is the filesystem entity files are read from. Defaults to the
	// OS filesystem; tests substitute an in-memory one.
	FS afero.Fs

	FlagCollection string
}

func (c *UploadCommand) Synopsis() string {
	return "Upload entities from a JSON file into a collection"
}

func (c *UploadCommand) Help() string {
	return `Usage: purview entity upload -collection=<id> <file.json>

  Creates or updates the entities in the given JSON file inside a
  collection. The file may contain a single entity object or an array
  of entities; arrays are sent through the bulk endpoint.

Options:

  -collection=id  Target collection id. Required.
  -config=path    Path to the HCL config file.`
}

// readEntities parses the file as either one entity or an array.
func (c *UploadCommand) readEntities(path string) ([]*entitypkg.Entity, error) {
	data, err := afero.ReadFile(c.FS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var batch []map[string]interface{}
	if err := json.Unmarshal(data, &batch); err != nil {
		var single map[string]interface{}
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("%s is neither an entity object nor an array of entities", path)
		}
		batch = []map[string]interface{}{single}
	}

	entities := make([]*entitypkg.Entity, 0, len(batch))
	for i, raw := range batch {
		e, err := entitypkg.FromMap(raw)
		if err != nil {
			return nil, fmt.Errorf("entity %d in %s: %w", i, path, err)
		}
		entities = append(entities, e)
	}
	return entities, nil
}

func (c *UploadCommand) Run(args []string) int {
	f := c.FlagSet("entity upload")
	f.StringVar(&c.FlagCollection, "collection", "", "target collection id")
	if err := f.Parse(args); err != nil {
		return 1
	}

	if c.FlagCollection == "" {
		c.UI.Error("the -collection flag is required")
		return 1
	}
	if len(f.Args()) != 1 {
		c.UI.Error("exactly one entity file argument is required")
		return 1
	}
	if c.FS == nil {
		c.FS = afero.NewOsFs()
	}

	entities, err := c.readEntities(f.Args()[0])
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx := context.Background()
	client, err := c.CollectionsClient(ctx)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if len(entities) == 1 {
		_, err = client.UploadEntity(ctx, c.FlagCollection, entities[0])
	} else {
		_, err = client.UploadEntities(ctx, c.FlagCollection, entities)
	}
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	c.UI.Output(fmt.Sprintf("uploaded %d entities to collection %s", len(entities), c.FlagCollection))
	return 0
}
