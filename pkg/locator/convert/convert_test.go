package convert

import (
	"errors"
	"testing"

	"github.com/devicelab-dev/uilocator/pkg/locator"
	"github.com/devicelab-dev/uilocator/pkg/locator/uiselector"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Input
	}{
		{"xpath", `//*[@text='OK']`, XPath(`//*[@text='OK']`)},
		{"grouped xpath", `(//*[@text='OK'])[1]`, XPath(`(//*[@text='OK'])[1]`)},
		{"uiselector", `new UiSelector().text("OK");`, Selector(`new UiSelector().text("OK");`)},
		{"bare chain", `.text("OK");`, Selector(`.text("OK");`)},
		{"quoted wrapper", `'//*[@text='OK']'`, XPath(`//*[@text='OK']`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.in)
			if err != nil {
				t.Fatalf("Detect: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDetectUnsupported(t *testing.T) {
	_, err := Detect("click the second button")
	var ufErr *locator.UnsupportedFormatError
	if !errors.As(err, &ufErr) {
		t.Fatalf("got %v, want UnsupportedFormatError", err)
	}
}

func TestConverterRoutes(t *testing.T) {
	conv := New()
	m := locator.NewMap().
		Set(locator.KeyText, locator.StringValue("OK")).
		Set(locator.KeyClickable, locator.BoolValue(true))

	tests := []struct {
		name string
		run  func() (string, error)
		want string
	}{
		{
			name: "map to xpath",
			run:  func() (string, error) { return conv.ToXPath(FromMap(m)) },
			want: `//*[@text='OK'][@clickable='true']`,
		},
		{
			name: "map to uiselector",
			run:  func() (string, error) { return conv.ToUiSelector(FromMap(m)) },
			want: `new UiSelector().text("OK").clickable(true);`,
		},
		{
			name: "xpath to uiselector",
			run:  func() (string, error) { return conv.ToUiSelector(XPath(`//*[@text='OK'][@clickable='true']`)) },
			want: `new UiSelector().text("OK").clickable(true);`,
		},
		{
			name: "uiselector to xpath",
			run:  func() (string, error) { return conv.ToXPath(Selector(`new UiSelector().text("OK").clickable(true);`)) },
			want: `//*[@text='OK'][@clickable='true']`,
		},
		{
			name: "xpath passthrough",
			run:  func() (string, error) { return conv.ToXPath(XPath(`//*[@text='OK']`)) },
			want: `//*[@text='OK']`,
		},
		{
			name: "canonical uiselector text is a fixed point",
			run:  func() (string, error) { return conv.ToUiSelector(Selector(`new UiSelector().enabled(true);`)) },
			want: `new UiSelector().enabled(true);`,
		},
		{
			name: "builder to xpath",
			run: func() (string, error) {
				return conv.ToXPath(FromBuilder(uiselector.NewBuilder().Text("OK").Clickable(true)))
			},
			want: `//*[@text='OK'][@clickable='true']`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.run()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToUiSelectorNormalizesDSLInput(t *testing.T) {
	conv := New()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "missing semicolon and prefix are restored",
			in:   `.text("OK")`,
			want: `new UiSelector().text("OK");`,
		},
		{
			name: "quoted wrapper is stripped",
			in:   `'new UiSelector().clickable(true);'`,
			want: `new UiSelector().clickable(true);`,
		},
		{
			name: "malformed text degrades to the no-op selector",
			in:   `new UiSelector().text("OK`,
			want: `new UiSelector();`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.ToUiSelector(Selector(tt.in))
			if err != nil {
				t.Fatalf("ToUiSelector: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConverterToMapIsHub(t *testing.T) {
	conv := New()

	fromXPath, err := conv.ToMap(XPath(`//*[@resource-id='com.app:id/ok'][2]`))
	if err != nil {
		t.Fatalf("ToMap(xpath): %v", err)
	}
	fromDSL, err := conv.ToMap(Selector(`new UiSelector().resourceId("com.app:id/ok").instance(1);`))
	if err != nil {
		t.Fatalf("ToMap(uiselector): %v", err)
	}
	if !fromXPath.Equal(fromDSL) {
		t.Errorf("hub disagreement: %s vs %s", fromXPath, fromDSL)
	}
}

func TestConverterRoundTrip(t *testing.T) {
	conv := New()
	src := `//*[@class='android.widget.ListView']/*[contains(@text, 'Row')][position()=2]`

	dsl, err := conv.ToUiSelector(XPath(src))
	if err != nil {
		t.Fatalf("ToUiSelector: %v", err)
	}
	back, err := conv.ToXPath(Selector(dsl))
	if err != nil {
		t.Fatalf("ToXPath: %v", err)
	}
	if back != src {
		t.Errorf("got %s, want %s", back, src)
	}
}

func TestConverterValidate(t *testing.T) {
	conv := New()
	if err := conv.Validate(XPath(`//*[@text='OK']`)); err != nil {
		t.Errorf("valid locator rejected: %v", err)
	}
	if err := conv.Validate(XPath(`//*`)); err == nil {
		t.Errorf("empty locator accepted")
	}
	if err := conv.Validate(XPath(`//*[@text='a'][contains(@text, 'b')]`)); err == nil {
		t.Errorf("text family conflict accepted")
	}
}
