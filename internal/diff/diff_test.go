package diff

import (
	"strings"
	"testing"
)

func TestGenerateEquivalentDocuments(t *testing.T) {
	old := Input{Path: "a.rst", Content: "Hello *world*.\n", Format: "rst"}
	new := Input{Path: "b.md", Content: "Hello *world*.\n", Format: "markdown"}

	unified, err := Generate(old, new, "docbook")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if unified != "" {
		t.Errorf("expected empty diff, got:\n%s", unified)
	}
}

func TestGenerateDifference(t *testing.T) {
	old := Input{Path: "docs/old.rst", Content: "one\n", Format: "rst"}
	new := Input{Path: "docs/new.rst", Content: "two\n", Format: "rst"}

	unified, err := Generate(old, new, "docbook")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for _, want := range []string{
		"--- old.rst",
		"+++ new.rst",
		"-  <para>one</para>",
		"+  <para>two</para>",
	} {
		if !strings.Contains(unified, want) {
			t.Errorf("diff missing %q:\n%s", want, unified)
		}
	}
}

func TestGenerateUnknownFormat(t *testing.T) {
	bad := Input{Path: "a.adoc", Content: "x", Format: "asciidoc"}
	good := Input{Path: "b.rst", Content: "x\n", Format: "rst"}

	if _, err := Generate(bad, good, "docbook"); err == nil {
		t.Error("unknown old format must error")
	}
	if _, err := Generate(good, bad, "docbook"); err == nil {
		t.Error("unknown new format must error")
	}
}
