package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Info("hello", "key", "value")

	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "key=value") {
		t.Errorf("output = %q", out)
	}
}

func TestNewMultiLoggerWritesToAllOutputs(t *testing.T) {
	var a, b bytes.Buffer
	l := NewMultiLogger(&a, &b)
	l.Info("conversion started", "id", "42")

	for name, buf := range map[string]*bytes.Buffer{"first": &a, "second": &b} {
		if !strings.Contains(buf.String(), "conversion started") {
			t.Errorf("%s sink missing the log line: %q", name, buf.String())
		}
	}
}

func TestDiscardProducesNoOutput(t *testing.T) {
	l := Discard()
	l.Error("should vanish")
}
