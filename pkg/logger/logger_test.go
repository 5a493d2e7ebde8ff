package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerWritesWithLevelPrefix(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(nil)

	Warn("something %s happened", "odd")
	Info("count=%d", 3)

	out := buf.String()
	if !strings.Contains(out, "[WARN] something odd happened") {
		t.Errorf("missing warn line, got %q", out)
	}
	if !strings.Contains(out, "[INFO] count=3") {
		t.Errorf("missing info line, got %q", out)
	}
}

func TestLoggerDisabledByDefault(t *testing.T) {
	SetWriter(nil)
	// Must not panic with no writer configured.
	Debug("dropped %d", 1)
	Error("dropped too")
}
