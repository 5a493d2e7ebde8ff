package locator

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       *Map
		wantErr string
	}{
		{
			name: "valid leaf locator",
			m:    NewMap().Set(KeyText, StringValue("OK")).Set(KeyClickable, BoolValue(true)),
		},
		{
			name: "valid hierarchical locator",
			m: NewMap().
				Set(KeyClass, StringValue("android.widget.ListView")).
				Set(KeyChildSelector, SelectorValue(NewMap().Set(KeyInstance, IntValue(3)))),
		},
		{
			name:    "empty map",
			m:       NewMap(),
			wantErr: "empty",
		},
		{
			name:    "nil map",
			m:       nil,
			wantErr: "empty",
		},
		{
			name:    "text family conflict",
			m:       NewMap().Set(KeyText, StringValue("a")).Set(KeyTextContains, StringValue("b")),
			wantErr: "conflicts with text",
		},
		{
			name: "description family conflict",
			m: NewMap().
				Set(KeyDescriptionMatches, StringValue(".*")).
				Set(KeyDescription, StringValue("menu")),
			wantErr: "conflicts with content-descMatches",
		},
		{
			name:    "value kind mismatch",
			m:       NewMap().Set(KeyIndex, StringValue("2")),
			wantErr: "value kind",
		},
		{
			name:    "hierarchical value not a map",
			m:       NewMap().Set(KeyFromParent, SelectorValue(nil)),
			wantErr: "hierarchical value",
		},
		{
			name: "nested map validated recursively",
			m: NewMap().Set(KeySibling, SelectorValue(
				NewMap().Set(KeyText, StringValue("a")).Set(KeyTextMatches, StringValue("b")))),
			wantErr: "conflicts with text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.m)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateDepthCap(t *testing.T) {
	m := NewMap().Set(KeyText, StringValue("leaf"))
	for i := 0; i <= MaxDepth+1; i++ {
		m = NewMap().Set(KeyChildSelector, SelectorValue(m))
	}
	if err := Validate(m); err == nil {
		t.Fatalf("expected nesting error, got nil")
	}
}
