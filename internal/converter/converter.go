// Package converter wires the conversion pipeline: dialect parsing,
// reference rewriting and rendering.
package converter

import (
	"fmt"

	"github.com/Hocdoc/sandoc/internal/doc"
	"github.com/Hocdoc/sandoc/internal/markdown"
	"github.com/Hocdoc/sandoc/internal/render"
	"github.com/Hocdoc/sandoc/internal/rewrite"
	"github.com/Hocdoc/sandoc/internal/rst"
)

// Converter runs full source-to-output conversions
type Converter struct {
	// Floor is the minimum diagnostic severity rendered into the
	// output; nil renders fallbacks only.
	Floor *doc.MessageLevel

	// Title overrides the document title from the source metadata.
	Title string
}

// NewConverter creates a new converter instance
func NewConverter(floor *doc.MessageLevel) *Converter {
	return &Converter{Floor: floor}
}

// Diagnostic is one problem found while resolving the document.
type Diagnostic struct {
	Severity doc.MessageLevel
	Message  string
}

// Result carries the rendered output plus everything found on the way.
type Result struct {
	Output      string
	Title       string
	Diagnostics []Diagnostic
}

// Convert parses src in the given input format, resolves references and
// renders the requested output format.
func (c *Converter) Convert(src, from, to string) (*Result, error) {
	parsed, err := Parse(src, from)
	if err != nil {
		return nil, err
	}
	if c.Title != "" {
		if parsed.Meta == nil {
			parsed.Meta = map[string]string{}
		}
		parsed.Meta["title"] = c.Title
	}

	resolved := rewrite.Apply(parsed, dialectRules(from)...)

	renderer, err := render.New(render.Format(to), c.Floor)
	if err != nil {
		return nil, err
	}

	return &Result{
		Output:      renderer.Render(resolved),
		Title:       resolved.Title(),
		Diagnostics: Diagnostics(resolved),
	}, nil
}

// Parse runs only the first pipeline stage, producing the raw tree.
func Parse(src, from string) (*doc.Document, error) {
	switch from {
	case "rst":
		return rst.ParseDocument(src), nil
	case "markdown", "md":
		return markdown.ParseDocument(src), nil
	}
	return nil, fmt.Errorf("unknown input format %q", from)
}

func dialectRules(from string) []doc.Rule {
	if from == "rst" {
		return rst.RewriteRules()
	}
	return nil
}

// Diagnostics collects the messages attached to invalid nodes, in
// document order.
func Diagnostics(d *doc.Document) []Diagnostic {
	var out []Diagnostic
	doc.Visit(d, func(e doc.Element) {
		inv, ok := e.(doc.Invalid)
		if !ok {
			return
		}
		if msg := inv.Message(); msg != nil {
			out = append(out, Diagnostic{Severity: msg.Level, Message: msg.Content})
		}
	})
	return out
}

// MaxSeverity returns the highest severity among the diagnostics, and
// false when there are none.
func MaxSeverity(diags []Diagnostic) (doc.MessageLevel, bool) {
	if len(diags) == 0 {
		return 0, false
	}
	max := diags[0].Severity
	for _, d := range diags[1:] {
		if d.Severity > max {
			max = d.Severity
		}
	}
	return max, true
}
