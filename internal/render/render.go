// Package render turns resolved document trees into output text. Each
// renderer walks the tree through a shared element dispatch; the Writer
// handles indentation and escaping.
package render

import (
	"fmt"
	"strings"

	"github.com/Hocdoc/sandoc/internal/doc"
)

// Format names an output format.
type Format string

const (
	DocBookFormat Format = "docbook"
	ASTFormat     Format = "ast"
)

// Renderer produces output text from a resolved document. The input
// tree must be rewritten first; leftover temporary nodes render as
// invalid content, never panic.
type Renderer interface {
	Render(d *doc.Document) string
}

// New returns the renderer for a format name.
func New(format Format, floor *doc.MessageLevel) (Renderer, error) {
	switch format {
	case DocBookFormat:
		return &DocBook{MessageFloor: floor}, nil
	case ASTFormat:
		return &ASTDump{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// Writer accumulates output with indentation tracking.
type Writer struct {
	b       strings.Builder
	depth   int
	midline bool
}

// Raw appends text verbatim.
func (w *Writer) Raw(s string) {
	if !w.midline && s != "" {
		w.b.WriteString(strings.Repeat("  ", w.depth))
		w.midline = true
	}
	w.b.WriteString(s)
}

// Text appends XML-escaped text.
func (w *Writer) Text(s string) {
	w.Raw(escape(s))
}

// Newline terminates the current line. Consecutive calls emit a single
// newline.
func (w *Writer) Newline() {
	if w.midline {
		w.b.WriteByte('\n')
		w.midline = false
	}
}

// Line writes one complete raw line at the current indent.
func (w *Writer) Line(s string) {
	w.Newline()
	w.Raw(s)
	w.Newline()
}

func (w *Writer) Indent() { w.depth++ }
func (w *Writer) Dedent() { w.depth-- }

func (w *Writer) String() string {
	w.Newline()
	return w.b.String()
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return escaper.Replace(s)
}

// attr formats one XML attribute, escaped.
func attr(name, value string) string {
	return fmt.Sprintf(` %s=%q`, name, escape(value))
}

// commonAttrs renders the id and style names of an Options value as
// attributes.
func commonAttrs(opts doc.Options) string {
	var b strings.Builder
	if opts.ID != "" {
		b.WriteString(attr("xml:id", opts.ID))
	}
	if len(opts.Styles) > 0 {
		b.WriteString(attr("role", strings.Join(opts.Styles, " ")))
	}
	return b.String()
}

// optionsOf extracts the Options of a customizable element.
func optionsOf(e doc.Element) doc.Options {
	if c, ok := e.(doc.Customizable); ok {
		return c.Opts()
	}
	return doc.NoOptions
}
