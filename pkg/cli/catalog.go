package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/uilocator/pkg/catalog"
	"github.com/devicelab-dev/uilocator/pkg/config"
	"github.com/devicelab-dev/uilocator/pkg/locator/convert"
)

var catalogCommand = &cli.Command{
	Name:  "catalog",
	Usage: "Work with named-locator catalogs",
	Subcommands: []*cli.Command{
		{
			Name:      "list",
			Usage:     "List the locators defined in a catalog file or directory",
			ArgsUsage: "[path]",
			Description: `List every named locator. Without a path argument the configured
catalog globs are scanned, falling back to <home>/catalogs.`,
			Action: runCatalogList,
		},
		{
			Name:      "show",
			Usage:     "Resolve a catalog.locator reference and print it",
			ArgsUsage: "[path] <catalog.locator>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "to",
					Aliases: []string{"t"},
					Usage:   "Output form (map, xpath, uiselector); defaults from config",
				},
			},
			Action: runCatalogShow,
		},
	},
}

// defaultCatalogPaths resolves the catalog locations to scan when a
// command is given no explicit path: the configured globs first, then
// the workspace catalogs directory.
func defaultCatalogPaths(cfg *config.Config) ([]string, error) {
	var paths []string
	for _, pattern := range cfg.Catalogs {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad catalog glob %q: %v", pattern, err)
		}
		paths = append(paths, matches...)
	}
	if len(paths) > 0 {
		return paths, nil
	}
	dir := config.GetCatalogsDir()
	if _, err := os.Stat(dir); err == nil {
		return []string{dir}, nil
	}
	return nil, fmt.Errorf("no catalog path given, no catalog globs configured, and %s does not exist", dir)
}

// loadCatalogs parses and validates catalogs at the given paths,
// failing on any validation error.
func loadCatalogs(paths []string) (*catalog.Result, error) {
	merged := &catalog.Result{}
	v := catalog.New()
	for _, path := range paths {
		result := v.Validate(path)
		merged.Catalogs = append(merged.Catalogs, result.Catalogs...)
		merged.Errors = append(merged.Errors, result.Errors...)
	}
	if !merged.IsValid() {
		for _, err := range merged.Errors {
			fmt.Printf("FAIL %v\n", err)
		}
		return nil, fmt.Errorf("%d invalid", len(merged.Errors))
	}
	return merged, nil
}

func runCatalogList(c *cli.Context) error {
	cfg, err := setup(c)
	if err != nil {
		return err
	}

	paths := c.Args().Slice()
	if len(paths) == 0 {
		paths, err = defaultCatalogPaths(cfg)
		if err != nil {
			return err
		}
	}

	result, err := loadCatalogs(paths)
	if err != nil {
		return err
	}
	for _, cat := range result.Catalogs {
		for _, name := range cat.Locators.Names() {
			m, _ := cat.Locators.Get(name)
			fmt.Printf("%s.%s\t%s\n", cat.Name, name, m)
		}
	}
	return nil
}

func runCatalogShow(c *cli.Context) error {
	cfg, err := setup(c)
	if err != nil {
		return err
	}

	var paths []string
	var ref string
	switch c.NArg() {
	case 1:
		ref = c.Args().Get(0)
		paths, err = defaultCatalogPaths(cfg)
		if err != nil {
			return err
		}
	case 2:
		paths = []string{c.Args().Get(0)}
		ref = c.Args().Get(1)
	default:
		return fmt.Errorf("expected a catalog.locator reference, optionally preceded by a catalog path")
	}

	result, err := loadCatalogs(paths)
	if err != nil {
		return err
	}
	m, ok := result.Lookup(ref)
	if !ok {
		return fmt.Errorf("locator %q not found in %s", ref, strings.Join(paths, ", "))
	}

	to := c.String("to")
	if to == "" {
		to = cfg.DefaultFormat
	}
	conv, err := newConverter(cfg)
	if err != nil {
		return err
	}
	out, err := render(conv, convert.FromMap(m), to)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
