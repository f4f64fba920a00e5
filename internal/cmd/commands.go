package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/catalogkit/purview-go/internal/cmd/base"
	collectionscmd "github.com/catalogkit/purview-go/internal/cmd/commands/collections"
	entitycmd "github.com/catalogkit/purview-go/internal/cmd/commands/entity"
	versioncmd "github.com/catalogkit/purview-go/internal/cmd/commands/version"
)

// Commands is the mapping of all available CLI commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	newBase := func() *base.Command {
		return &base.Command{
			UI:  ui,
			Log: log,
		}
	}

	Commands = map[string]cli.CommandFactory{
		"collections": func() (cli.Command, error) {
			return &collectionscmd.Command{Command: newBase()}, nil
		},
		"collections list": func() (cli.Command, error) {
			return &collectionscmd.ListCommand{Command: newBase()}, nil
		},
		"collections tree": func() (cli.Command, error) {
			return &collectionscmd.TreeCommand{Command: newBase()}, nil
		},
		"collections create": func() (cli.Command, error) {
			return &collectionscmd.CreateCommand{Command: newBase()}, nil
		},
		"entity": func() (cli.Command, error) {
			return &entitycmd.Command{Command: newBase()}, nil
		},
		"entity upload": func() (cli.Command, error) {
			return &entitycmd.UploadCommand{Command: newBase()}, nil
		},
		"entity move": func() (cli.Command, error) {
			return &entitycmd.MoveCommand{Command: newBase()}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{UI: ui}, nil
		},
	}
}
