package uiselector

import "testing"

func TestBuilderString(t *testing.T) {
	got := NewBuilder().
		ResourceID("com.app:id/list").
		Scrollable(true).
		ChildSelector(NewBuilder().Text("Row").Index(3)).
		String()
	want := `new UiSelector().resourceId("com.app:id/list").scrollable(true).childSelector(new UiSelector().text("Row").index(3));`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuilderMatchesParsedSelector(t *testing.T) {
	src := `new UiSelector().descriptionContains("Set").longClickable(false).fromParent(new UiSelector().instance(1));`
	built := NewBuilder().
		DescriptionContains("Set").
		LongClickable(false).
		FromParent(NewBuilder().Instance(1))
	if got := built.String(); got != src {
		t.Errorf("got %q, want %q", got, src)
	}

	fromText, err := Parse(src).ToMap()
	if err != nil {
		t.Fatalf("ToMap(parsed): %v", err)
	}
	fromBuilder, err := built.Selector().ToMap()
	if err != nil {
		t.Fatalf("ToMap(built): %v", err)
	}
	if !fromBuilder.Equal(fromText) {
		t.Errorf("builder and parser disagree: %s vs %s", fromBuilder, fromText)
	}
}
