package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/devicelab-dev/uilocator/pkg/locator"
)

// ValidationError reports one problem found while validating catalogs.
type ValidationError struct {
	File    string
	Locator string // offending locator name, "" for file-level problems
	Message string
}

func (e *ValidationError) Error() string {
	if e.Locator != "" {
		return fmt.Sprintf("%s: %s: %s", e.File, e.Locator, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

// Result contains the validation outcome.
type Result struct {
	// Catalogs lists the successfully parsed catalogs in scan order.
	Catalogs []*Catalog
	// Errors contains all validation errors found.
	Errors []error
}

// IsValid returns true if there are no validation errors.
func (r *Result) IsValid() bool {
	return len(r.Errors) == 0
}

// Lookup resolves a qualified "catalog.locator" reference across the
// parsed catalogs.
func (r *Result) Lookup(ref string) (*locator.Map, bool) {
	catName, locName, ok := strings.Cut(ref, ".")
	if !ok {
		return nil, false
	}
	for _, c := range r.Catalogs {
		if c.Name != catName {
			continue
		}
		if m, ok := c.Locators.Get(locName); ok {
			return m, true
		}
	}
	return nil, false
}

// Validator parses and validates catalog files.
type Validator struct{}

// New creates a new Validator.
func New() *Validator { return &Validator{} }

// Validate validates a catalog file or a directory of catalog files.
// Every locator in every catalog is checked against the structural
// invariants; all problems are collected rather than stopping at the
// first.
func (v *Validator) Validate(path string) *Result {
	result := &Result{}

	info, err := os.Stat(path)
	if err != nil {
		result.Errors = append(result.Errors, &ValidationError{
			File:    path,
			Message: fmt.Sprintf("cannot access: %v", err),
		})
		return result
	}

	var files []string
	if info.IsDir() {
		files, err = collectCatalogFiles(path)
		if err != nil {
			result.Errors = append(result.Errors, &ValidationError{
				File:    path,
				Message: fmt.Sprintf("failed to scan directory: %v", err),
			})
			return result
		}
	} else {
		files = []string{path}
	}

	seen := make(map[string]string) // catalog name -> file
	for _, file := range files {
		v.validateFile(file, result, seen)
	}

	return result
}

// collectCatalogFiles finds all .yaml/.yml files in a directory.
func collectCatalogFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

// validateFile parses one catalog and checks its locators.
func (v *Validator) validateFile(filePath string, result *Result, seen map[string]string) {
	c, err := ParseFile(filePath)
	if err != nil {
		result.Errors = append(result.Errors, &ValidationError{
			File:    filePath,
			Message: fmt.Sprintf("parse error: %v", err),
		})
		return
	}

	if prev, ok := seen[c.Name]; ok {
		result.Errors = append(result.Errors, &ValidationError{
			File:    filePath,
			Message: fmt.Sprintf("duplicate catalog name %q, first defined in %s", c.Name, prev),
		})
	} else {
		seen[c.Name] = filePath
	}

	for _, name := range c.Locators.Names() {
		m, _ := c.Locators.Get(name)
		if err := locator.Validate(m); err != nil {
			result.Errors = append(result.Errors, &ValidationError{
				File:    filePath,
				Locator: name,
				Message: err.Error(),
			})
		}
	}

	result.Catalogs = append(result.Catalogs, c)
}
