// Package cli provides the command-line interface for uilocator.
package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/uilocator/pkg/config"
	"github.com/devicelab-dev/uilocator/pkg/logger"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "config",
		Usage:   "Path to config.yaml",
		EnvVars: []string{"UILOCATOR_CONFIG"},
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable verbose logging",
		EnvVars: []string{"UILOCATOR_VERBOSE"},
	},
}

// Execute runs the CLI.
func Execute() {
	app := &cli.App{
		Name:    "uilocator",
		Usage:   "Convert UI locators between XPath, UiSelector and map form",
		Version: Version,
		Description: `uilocator translates element locators losslessly between three
notations: XPath, the UiSelector fluent builder DSL, and a canonical
attribute map in YAML.

Examples:
  uilocator convert --to uiselector "//*[@text='OK']"
  uilocator convert --to xpath 'new UiSelector().clickable(true);'
  uilocator convert --from map --to xpath locator.yaml
  uilocator validate "//*[@text='OK'][@textContains='O']"
  uilocator catalog list catalogs/`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			convertCommand,
			validateCommand,
			catalogCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads configuration and wires the logger for a command run.
func setup(c *cli.Context) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadFromDir(".")
	}
	if err != nil {
		return nil, err
	}

	if cfg.LogFile != "" {
		if err := logger.Init(cfg.LogFile); err != nil {
			return nil, err
		}
	}
	if c.Bool("verbose") {
		logger.SetWriter(os.Stderr)
	}
	return cfg, nil
}
