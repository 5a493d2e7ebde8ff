// Package catalog loads named-locator catalogs: YAML documents that
// give stable names to locators so tests and tools can refer to
// "login.submit-button" instead of repeating raw expressions.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/uilocator/pkg/locator"
)

// Catalog is one parsed catalog file: a name plus an ordered set of
// named locators.
type Catalog struct {
	Name     string `yaml:"name"`
	Locators *Set   `yaml:"locators"`

	// File is the path the catalog was parsed from.
	File string `yaml:"-"`
}

// Set is an ordered collection of named locator maps. Document order is
// preserved so rendered output stays diffable.
type Set struct {
	names  []string
	byName map[string]*locator.Map
}

// Add stores a locator under a name, appending new names at the end.
func (s *Set) Add(name string, m *locator.Map) {
	if s.byName == nil {
		s.byName = make(map[string]*locator.Map)
	}
	if _, ok := s.byName[name]; !ok {
		s.names = append(s.names, name)
	}
	s.byName[name] = m
}

// Get returns the locator stored under a name.
func (s *Set) Get(name string) (*locator.Map, bool) {
	m, ok := s.byName[name]
	return m, ok
}

// Names returns the locator names in document order.
func (s *Set) Names() []string { return s.names }

// Len returns the number of named locators.
func (s *Set) Len() int { return len(s.names) }

// UnmarshalYAML decodes the locators mapping, preserving document order.
func (s *Set) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("locators must be a mapping of name to locator")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		m := locator.NewMap()
		if err := m.UnmarshalYAML(valNode); err != nil {
			return fmt.Errorf("locator %q: %w", keyNode.Value, err)
		}
		s.Add(keyNode.Value, m)
	}
	return nil
}

// MarshalYAML renders the set as a mapping in document order.
func (s *Set) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range s.names {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: name}
		valNode := &yaml.Node{}
		if err := valNode.Encode(s.byName[name]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// ParseFile parses a catalog file. A missing name defaults to the file
// name without extension.
func ParseFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided catalog file
	if err != nil {
		return nil, err
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if c.Name == "" {
		base := filepath.Base(path)
		c.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if c.Locators == nil {
		c.Locators = &Set{}
	}
	c.File = path
	return &c, nil
}
