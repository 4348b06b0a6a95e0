// Package diff compares two documents, possibly written in different
// markup dialects, by converting both to the same output format and
// producing a unified diff.
package diff

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/Hocdoc/sandoc/internal/converter"
)

// Input is one side of a comparison.
type Input struct {
	Path    string
	Content string
	Format  string
}

// Generate converts both inputs to the output format and returns a
// unified diff of the results. An empty diff means the documents are
// equivalent under conversion.
func Generate(old, new Input, to string) (string, error) {
	conv := converter.NewConverter(nil)

	oldResult, err := conv.Convert(old.Content, old.Format, to)
	if err != nil {
		return "", fmt.Errorf("failed to convert %s: %w", old.Path, err)
	}
	newResult, err := conv.Convert(new.Content, new.Format, to)
	if err != nil {
		return "", fmt.Errorf("failed to convert %s: %w", new.Path, err)
	}

	oldName := filepath.Base(old.Path)
	newName := filepath.Base(new.Path)
	edits := myers.ComputeEdits(span.URIFromPath(oldName), oldResult.Output, newResult.Output)
	return fmt.Sprint(gotextdiff.ToUnified(oldName, newName, oldResult.Output, edits)), nil
}

// RenderTerminal wraps a unified diff in a fenced block and renders it
// with Glamour for terminal display. The plain diff is returned when
// rendering fails.
func RenderTerminal(unified string, width int) string {
	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return diffMarkdown
	}

	rendered, err := renderer.Render(diffMarkdown)
	if err != nil {
		return diffMarkdown
	}
	return rendered
}
