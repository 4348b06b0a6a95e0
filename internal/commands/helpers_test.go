package commands

import (
	"reflect"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		fallback string
		want     string
	}{
		{"notes.md", "rst", "markdown"},
		{"notes.markdown", "rst", "markdown"},
		{"README.RST", "markdown", "rst"},
		{"manual.rest", "markdown", "rst"},
		{"-", "rst", "rst"},
		{"file.txt", "markdown", "markdown"},
	}

	for _, tt := range tests {
		if got := detectFormat(tt.path, tt.fallback); got != tt.want {
			t.Errorf("detectFormat(%q, %q) = %q, want %q", tt.path, tt.fallback, got, tt.want)
		}
	}
}

func TestFlagValue(t *testing.T) {
	args := []string{"input.rst", "--to", "ast", "--output", "out.txt"}

	if got := flagValue(args, "--to"); got != "ast" {
		t.Errorf("flagValue(--to) = %q, want ast", got)
	}
	if got := flagValue(args, "--from"); got != "" {
		t.Errorf("flagValue(--from) = %q, want empty", got)
	}
	if got := flagValue([]string{"--to"}, "--to"); got != "" {
		t.Error("trailing flag without value must return empty")
	}
}

func TestPositionalArgs(t *testing.T) {
	args := []string{"old.rst", "--to", "docbook", "new.md"}
	want := []string{"old.rst", "new.md"}

	if got := positionalArgs(args); !reflect.DeepEqual(got, want) {
		t.Errorf("positionalArgs() = %v, want %v", got, want)
	}
}

func TestPositionalArgsAfterBooleanFlag(t *testing.T) {
	args := []string{"--verbose", "input.rst", "--to", "docbook"}
	want := []string{"input.rst"}

	if got := positionalArgs(args); !reflect.DeepEqual(got, want) {
		t.Errorf("positionalArgs() = %v, want %v", got, want)
	}
}

func TestHasFlag(t *testing.T) {
	args := []string{"input.rst", "--verbose"}

	if !hasFlag(args, "--verbose") {
		t.Error("hasFlag(--verbose) = false, want true")
	}
	if hasFlag(args, "--quiet") {
		t.Error("hasFlag(--quiet) = true, want false")
	}
}
