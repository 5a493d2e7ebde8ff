package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/uilocator/pkg/config"
	"github.com/devicelab-dev/uilocator/pkg/locator"
	"github.com/devicelab-dev/uilocator/pkg/locator/convert"
)

var convertCommand = &cli.Command{
	Name:      "convert",
	Usage:     "Convert a locator between XPath, UiSelector and map form",
	ArgsUsage: "<locator-text-or-yaml-file>",
	Description: `Convert one locator to another notation.

The input form is detected from the text unless --from is given. Map
input is read from a YAML file argument or inline YAML text.

Examples:
  uilocator convert --to uiselector "//*[@text='OK']"
  uilocator convert --to map 'new UiSelector().clickable(true);'
  uilocator convert --from map --to xpath locator.yaml`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "from",
			Usage: "Input form (auto, xpath, uiselector, map)",
			Value: "auto",
		},
		&cli.StringFlag{
			Name:    "to",
			Aliases: []string{"t"},
			Usage:   "Output form (map, xpath, uiselector); defaults from config",
		},
	},
	Action: runConvert,
}

// converter is satisfied by both the plain and the caching converter.
type converter interface {
	ToMap(convert.Input) (*locator.Map, error)
	ToXPath(convert.Input) (string, error)
	ToUiSelector(convert.Input) (string, error)
	Validate(convert.Input) error
}

func newConverter(cfg *config.Config) (converter, error) {
	if cfg.CacheSize > 0 {
		return convert.NewCaching(cfg.CacheSize)
	}
	return convert.New(), nil
}

func runConvert(c *cli.Context) error {
	cfg, err := setup(c)
	if err != nil {
		return err
	}
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one locator argument")
	}

	in, err := resolveInput(c.String("from"), c.Args().First())
	if err != nil {
		return err
	}

	to := c.String("to")
	if to == "" {
		to = cfg.DefaultFormat
	}

	conv, err := newConverter(cfg)
	if err != nil {
		return err
	}

	out, err := render(conv, in, to)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// resolveInput turns the raw CLI argument into converter input.
func resolveInput(from, raw string) (convert.Input, error) {
	switch from {
	case "xpath":
		return convert.XPath(raw), nil
	case "uiselector":
		return convert.Selector(raw), nil
	case "map":
		return mapInput(raw)
	case "auto", "":
		if isYAMLFile(raw) {
			return mapInput(raw)
		}
		return convert.Detect(raw)
	}
	return nil, fmt.Errorf("unknown input form %q", from)
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// mapInput reads a map locator from a YAML file argument, or from the
// argument itself as inline YAML.
func mapInput(raw string) (convert.Input, error) {
	data := []byte(raw)
	if _, err := os.Stat(raw); err == nil {
		data, err = os.ReadFile(raw) //#nosec G304 -- user-provided locator file
		if err != nil {
			return nil, err
		}
	}
	m := locator.NewMap()
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, err
	}
	return convert.FromMap(m), nil
}

func render(conv converter, in convert.Input, to string) (string, error) {
	switch to {
	case config.FormatXPath:
		return conv.ToXPath(in)
	case config.FormatUiSelector:
		return conv.ToUiSelector(in)
	case config.FormatMap:
		m, err := conv.ToMap(in)
		if err != nil {
			return "", err
		}
		data, err := yaml.Marshal(m)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\n"), nil
	}
	return "", fmt.Errorf("unknown output form %q", to)
}
