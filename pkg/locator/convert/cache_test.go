package convert

import (
	"testing"

	"github.com/devicelab-dev/uilocator/pkg/locator"
)

func TestCachingConverter(t *testing.T) {
	conv, err := NewCaching(8)
	if err != nil {
		t.Fatalf("NewCaching: %v", err)
	}

	src := XPath(`//*[@text='OK']`)
	first, err := conv.ToUiSelector(src)
	if err != nil {
		t.Fatalf("ToUiSelector: %v", err)
	}
	if conv.Len() != 1 {
		t.Fatalf("got %d cached entries, want 1", conv.Len())
	}

	second, err := conv.ToUiSelector(src)
	if err != nil {
		t.Fatalf("ToUiSelector (cached): %v", err)
	}
	if first != second {
		t.Errorf("cached result differs: %q vs %q", first, second)
	}
	if conv.Len() != 1 {
		t.Errorf("got %d cached entries after hit, want 1", conv.Len())
	}

	// Same text, different target: separate entry.
	if _, err := conv.ToXPath(src); err != nil {
		t.Fatalf("ToXPath: %v", err)
	}
	if conv.Len() != 2 {
		t.Errorf("got %d cached entries, want 2", conv.Len())
	}
}

func TestCachingConverterSkipsNonTextInput(t *testing.T) {
	conv, err := NewCaching(8)
	if err != nil {
		t.Fatalf("NewCaching: %v", err)
	}

	m := locator.NewMap().Set(locator.KeyText, locator.StringValue("OK"))
	out, err := conv.ToXPath(FromMap(m))
	if err != nil {
		t.Fatalf("ToXPath: %v", err)
	}
	if out != `//*[@text='OK']` {
		t.Errorf("got %q, want %q", out, `//*[@text='OK']`)
	}
	if conv.Len() != 0 {
		t.Errorf("map input should not be cached, got %d entries", conv.Len())
	}
}

func TestCachingConverterErrorsNotCached(t *testing.T) {
	conv, err := NewCaching(8)
	if err != nil {
		t.Fatalf("NewCaching: %v", err)
	}
	if _, err := conv.ToUiSelector(XPath(`//bad`)); err == nil {
		t.Fatalf("expected parse error")
	}
	if conv.Len() != 0 {
		t.Errorf("failed conversion cached, got %d entries", conv.Len())
	}
}
