// Package base provides shared plumbing for CLI commands.
package base

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/catalogkit/purview-go/internal/config"
	"github.com/catalogkit/purview-go/pkg/atlas"
	"github.com/catalogkit/purview-go/pkg/collections"
)

// DefaultConfigPath is used when neither -config nor PURVIEW_CONFIG is
// set.
const DefaultConfigPath = "purview.hcl"

// Command is embedded by every CLI command.
type Command struct {
	UI  cli.Ui
	Log hclog.Logger

	// FlagConfig is the path to the HCL config file.
	FlagConfig string
}

// FlagSet returns a flag set pre-populated with the common flags.
func (c *Command) FlagSet(name string) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.StringVar(&c.FlagConfig, "config", "", "Path to the HCL config file (default: $PURVIEW_CONFIG or ./purview.hcl)")
	return f
}

// configPath resolves the config file path from the flag, the
// PURVIEW_CONFIG environment variable, or the default.
func (c *Command) configPath() string {
	if c.FlagConfig != "" {
		return c.FlagConfig
	}
	if env := os.Getenv("PURVIEW_CONFIG"); env != "" {
		return env
	}
	return DefaultConfigPath
}

// CollectionsClient builds a collections client from the resolved
// config file.
func (c *Command) CollectionsClient(ctx context.Context) (*collections.Client, error) {
	cfg, err := config.FromFile(c.configPath())
	if err != nil {
		return nil, err
	}

	provider, err := cfg.NewAuthProvider(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to configure authentication: %w", err)
	}

	ac, err := atlas.NewClient(cfg.AtlasConfig(), provider, c.Log)
	if err != nil {
		return nil, err
	}

	return collections.NewClient(ac, c.Log), nil
}
