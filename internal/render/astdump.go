package render

import (
	"fmt"
	"strings"

	"github.com/Hocdoc/sandoc/internal/doc"
)

// ASTDump renders the tree structure itself, one node per line, for
// debugging and golden tests. Every node renders, including temporary
// and invalid ones.
type ASTDump struct{}

func (r *ASTDump) Render(d *doc.Document) string {
	w := &Writer{}
	r.node(w, d)
	return w.String()
}

func (r *ASTDump) node(w *Writer, e doc.Element) {
	w.Line(describe(e))
	w.Indent()
	defer w.Dedent()

	switch n := e.(type) {
	case *doc.Table:
		for _, row := range n.Head {
			r.node(w, row)
		}
		for _, row := range n.Body {
			r.node(w, row)
		}
		return
	case *doc.QuotedBlock:
		for _, b := range n.Content {
			r.node(w, b)
		}
		if len(n.Attribution) > 0 {
			w.Line("Attribution")
			w.Indent()
			for _, s := range n.Attribution {
				r.node(w, s)
			}
			w.Dedent()
		}
		return
	case *doc.DefinitionList:
		for _, item := range n.Items {
			w.Line("DefinitionListItem")
			w.Indent()
			w.Line("Term")
			w.Indent()
			for _, s := range item.Term {
				r.node(w, s)
			}
			w.Dedent()
			for _, b := range item.Definition {
				r.node(w, b)
			}
			w.Dedent()
		}
		return
	case doc.Invalid:
		if msg := n.Message(); msg != nil {
			r.node(w, msg)
		}
		if fb := n.FallbackElement(); fb != nil {
			w.Line("Fallback")
			w.Indent()
			r.node(w, fb)
			w.Dedent()
		}
		return
	}

	switch n := e.(type) {
	case doc.BlockContainer:
		for _, b := range n.Blocks() {
			r.node(w, b)
		}
	case doc.SpanContainer:
		for _, s := range n.Spans() {
			r.node(w, s)
		}
	case doc.ListContainer:
		for _, item := range n.ListItems() {
			r.node(w, item)
		}
	}
}

// describe renders one node as its bare type name plus the fields that
// identify it.
func describe(e doc.Element) string {
	var b strings.Builder
	b.WriteString(typeName(e))

	switch n := e.(type) {
	case *doc.Header:
		fmt.Fprintf(&b, " level=%d", n.Level)
	case *doc.DecoratedHeader:
		fmt.Fprintf(&b, " char=%q overline=%t", string(n.Decoration.Char), n.Decoration.Overline)
	case *doc.Text:
		fmt.Fprintf(&b, " %q", n.Content)
	case *doc.Literal:
		fmt.Fprintf(&b, " %q", n.Content)
	case *doc.LiteralBlock:
		fmt.Fprintf(&b, " %q", n.Content)
	case *doc.DoctestBlock:
		fmt.Fprintf(&b, " %q", n.Content)
	case *doc.Comment:
		fmt.Fprintf(&b, " %q", n.Content)
	case *doc.ExternalLink:
		fmt.Fprintf(&b, " url=%q", n.URL)
	case *doc.InternalLink:
		fmt.Fprintf(&b, " ref=%q", n.Ref)
	case *doc.FootnoteLink:
		fmt.Fprintf(&b, " ref=%q label=%q", n.Ref, n.Label)
	case *doc.CitationLink:
		fmt.Fprintf(&b, " label=%q", n.Label)
	case *doc.Image:
		fmt.Fprintf(&b, " url=%q alt=%q", n.URL, n.AltText)
	case *doc.EnumList:
		fmt.Fprintf(&b, " style=%s start=%d", n.Format.Style, n.Start)
	case *doc.BulletList:
		fmt.Fprintf(&b, " bullet=%q", n.Bullet)
	case *doc.Footnote:
		fmt.Fprintf(&b, " id=%q label=%q", n.ID, n.Label)
	case *doc.Citation:
		fmt.Fprintf(&b, " label=%q", n.Label)
	case *doc.SystemMessage:
		fmt.Fprintf(&b, " level=%s %q", n.Level, n.Content)
	case *doc.LinkReference:
		fmt.Fprintf(&b, " id=%q", n.ID)
	case *doc.SubstitutionReference:
		fmt.Fprintf(&b, " id=%q", n.ID)
	case *doc.InterpretedText:
		fmt.Fprintf(&b, " role=%q %q", n.Role, n.Text)
	case doc.Target:
		fmt.Fprintf(&b, " id=%q", n.TargetID())
	}

	if opts := optionsOf(e); !opts.IsEmpty() {
		if opts.ID != "" {
			fmt.Fprintf(&b, " opts.id=%q", opts.ID)
		}
		if len(opts.Styles) > 0 {
			fmt.Fprintf(&b, " opts.styles=%v", opts.Styles)
		}
	}
	return b.String()
}

func typeName(e doc.Element) string {
	name := fmt.Sprintf("%T", e)
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
