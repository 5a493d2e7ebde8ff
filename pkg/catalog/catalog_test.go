package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/devicelab-dev/uilocator/pkg/locator"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "login.yaml", `name: login
locators:
  submit:
    text: Submit
    clickable: true
  username:
    resource-id: com.app:id/username
  first-row:
    class: android.widget.ListView
    childSelector:
      index: 0
`)

	c, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if c.Name != "login" {
		t.Errorf("got name %q, want %q", c.Name, "login")
	}

	names := c.Locators.Names()
	want := []string{"submit", "username", "first-row"}
	if len(names) != len(want) {
		t.Fatalf("got %d locators, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("name[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	m, ok := c.Locators.Get("submit")
	if !ok {
		t.Fatalf("submit locator missing")
	}
	if v, _ := m.Get(locator.KeyClickable); !v.Bool {
		t.Errorf("got clickable=%v, want true", v.Bool)
	}
}

func TestParseFileNameDefaultsToFileName(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "checkout.yaml", `locators:
  pay:
    text: Pay
`)

	c, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if c.Name != "checkout" {
		t.Errorf("got name %q, want %q", c.Name, "checkout")
	}
}

func TestValidateDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", `name: a
locators:
  ok:
    text: OK
`)
	writeFile(t, dir, "b.yaml", `name: b
locators:
  conflicted:
    text: a
    textContains: b
`)
	writeFile(t, dir, "c.yaml", `name: c
locators:
  misspelled:
    texx: nope
`)

	result := New().Validate(dir)
	if result.IsValid() {
		t.Fatalf("expected validation errors")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(result.Errors), result.Errors)
	}
	// a.yaml still parses and resolves.
	if m, ok := result.Lookup("a.ok"); !ok || m == nil {
		t.Errorf("a.ok not resolvable")
	}
}

func TestValidateDuplicateCatalogNames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "name: shared\nlocators:\n  x:\n    text: X\n")
	writeFile(t, dir, "b.yaml", "name: shared\nlocators:\n  y:\n    text: Y\n")

	result := New().Validate(dir)
	if result.IsValid() {
		t.Fatalf("expected duplicate name error")
	}
}

func TestLookup(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "login.yaml", "name: login\nlocators:\n  submit:\n    text: Submit\n")

	result := New().Validate(dir)
	if !result.IsValid() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if _, ok := result.Lookup("login.submit"); !ok {
		t.Errorf("login.submit not found")
	}
	if _, ok := result.Lookup("login.missing"); ok {
		t.Errorf("login.missing should not resolve")
	}
	if _, ok := result.Lookup("unqualified"); ok {
		t.Errorf("reference without a dot should not resolve")
	}
}
