package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/uilocator/pkg/catalog"
	"github.com/devicelab-dev/uilocator/pkg/locator/convert"
)

var validateCommand = &cli.Command{
	Name:      "validate",
	Usage:     "Validate locators or locator catalogs",
	ArgsUsage: "[locator-text-or-path]...",
	Description: `Validate each argument. An argument naming an existing file or
directory is validated as a locator catalog; anything else is treated
as locator text. Without arguments the configured catalog globs are
validated, falling back to <home>/catalogs.

Examples:
  uilocator validate "//*[@text='OK']"
  uilocator validate catalogs/
  uilocator validate`,
	Action: runValidate,
}

func runValidate(c *cli.Context) error {
	cfg, err := setup(c)
	if err != nil {
		return err
	}

	args := c.Args().Slice()
	if len(args) == 0 {
		args, err = defaultCatalogPaths(cfg)
		if err != nil {
			return err
		}
	}

	conv, err := newConverter(cfg)
	if err != nil {
		return err
	}

	failed := 0
	for _, arg := range args {
		if _, err := os.Stat(arg); err == nil {
			failed += validateCatalog(arg)
			continue
		}
		if err := validateLocator(conv, arg); err != nil {
			fmt.Printf("FAIL %s: %v\n", arg, err)
			failed++
			continue
		}
		fmt.Printf("OK   %s\n", arg)
	}

	if failed > 0 {
		return fmt.Errorf("%d invalid", failed)
	}
	return nil
}

func validateLocator(conv converter, text string) error {
	in, err := convert.Detect(text)
	if err != nil {
		return err
	}
	return conv.Validate(in)
}

// validateCatalog validates a catalog file or directory and returns the
// number of errors found.
func validateCatalog(path string) int {
	result := catalog.New().Validate(path)
	for _, err := range result.Errors {
		fmt.Printf("FAIL %v\n", err)
	}
	if result.IsValid() {
		total := 0
		for _, cat := range result.Catalogs {
			total += cat.Locators.Len()
		}
		fmt.Printf("OK   %s: %d catalogs, %d locators\n", path, len(result.Catalogs), total)
	}
	return len(result.Errors)
}
