package locator

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestMapInsertionOrder(t *testing.T) {
	m := NewMap()
	m.Set(KeyClickable, BoolValue(true))
	m.Set(KeyText, StringValue("OK"))
	m.Set(KeyIndex, IntValue(2))

	want := []Key{KeyClickable, KeyText, KeyIndex}
	got := m.Keys()
	if len(got) != len(want) {
		t.Fatalf("got %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMapSetKeepsPositionOnOverwrite(t *testing.T) {
	m := NewMap()
	m.Set(KeyText, StringValue("first"))
	m.Set(KeyClickable, BoolValue(true))
	m.Set(KeyText, StringValue("second"))

	if m.Len() != 2 {
		t.Fatalf("got %d entries, want 2", m.Len())
	}
	if m.Keys()[0] != KeyText {
		t.Errorf("key[0] = %q, want %q", m.Keys()[0], KeyText)
	}
	v, _ := m.Get(KeyText)
	if v.Str != "second" {
		t.Errorf("got text=%q, want %q", v.Str, "second")
	}
}

func TestMapEqual(t *testing.T) {
	a := NewMap().Set(KeyText, StringValue("OK")).Set(KeyEnabled, BoolValue(true))
	b := NewMap().Set(KeyText, StringValue("OK")).Set(KeyEnabled, BoolValue(true))
	c := NewMap().Set(KeyEnabled, BoolValue(true)).Set(KeyText, StringValue("OK"))

	if !a.Equal(b) {
		t.Errorf("equal maps reported as different")
	}
	if a.Equal(c) {
		t.Errorf("maps with different key order reported as equal")
	}
}

func TestMapYAMLRoundTrip(t *testing.T) {
	src := `text: OK
clickable: true
index: 2
childSelector:
    class: android.widget.Button
    instance: 0
`
	m := NewMap()
	if err := yaml.Unmarshal([]byte(src), m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	nested, ok := m.Get(KeyChildSelector)
	if !ok || nested.Kind != KindSelector {
		t.Fatalf("childSelector missing or wrong kind")
	}
	if v, _ := nested.Sel.Get(KeyInstance); v.Int != 0 {
		t.Errorf("got nested instance=%d, want 0", v.Int)
	}

	out, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != src {
		t.Errorf("round trip changed document:\ngot:\n%s\nwant:\n%s", out, src)
	}
}

func TestMapYAMLUnknownKey(t *testing.T) {
	m := NewMap()
	err := yaml.Unmarshal([]byte("texx: OK\n"), m)

	var strictErr *StrictConversionError
	if !errors.As(err, &strictErr) {
		t.Fatalf("got %v, want StrictConversionError", err)
	}
	if strictErr.Suggestion != "text" {
		t.Errorf("got suggestion %q, want %q", strictErr.Suggestion, "text")
	}
}

func TestMapYAMLWrongValueKind(t *testing.T) {
	m := NewMap()
	err := yaml.Unmarshal([]byte("clickable: sometimes\n"), m)

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if valErr.Key != KeyClickable {
		t.Errorf("got key %q, want %q", valErr.Key, KeyClickable)
	}
}

func TestMapJSON(t *testing.T) {
	m := NewMap()
	m.Set(KeyText, StringValue(`say "hi"`))
	m.Set(KeyEnabled, BoolValue(false))
	m.Set(KeySibling, SelectorValue(NewMap().Set(KeyIndex, IntValue(1))))

	data, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"text":"say \"hi\"","enabled":false,"sibling":{"index":1}}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}
