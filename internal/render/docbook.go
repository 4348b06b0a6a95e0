package render

import (
	"fmt"

	"github.com/Hocdoc/sandoc/internal/doc"
)

// DocBook renders a resolved tree as a DocBook 5 article.
type DocBook struct {
	// MessageFloor gates diagnostics on invalid nodes: a message renders
	// only when its severity reaches the floor. A nil floor suppresses
	// all messages, leaving only the fallbacks.
	MessageFloor *doc.MessageLevel
}

func (r *DocBook) Render(d *doc.Document) string {
	w := &Writer{}
	w.Line(`<?xml version="1.0" encoding="UTF-8"?>`)
	w.Line(`<article xmlns="http://docbook.org/ns/docbook" xmlns:xlink="http://www.w3.org/1999/xlink" version="5.0">`)
	w.Indent()
	if title := d.Title(); title != "" {
		w.Newline()
		w.Raw("<title>")
		w.Text(title)
		w.Raw("</title>")
		w.Newline()
	}
	r.blocks(w, d.Content)
	w.Dedent()
	w.Line(`</article>`)
	return w.String()
}

func (r *DocBook) blocks(w *Writer, blocks []doc.Block) {
	for _, b := range blocks {
		r.element(w, b)
	}
}

func (r *DocBook) spans(w *Writer, spans []doc.Span) {
	for _, s := range spans {
		r.element(w, s)
	}
}

// element dispatches one node. Specific types come first; elements
// outside the catalogue fall back to their capability interfaces.
func (r *DocBook) element(w *Writer, e doc.Element) {
	switch n := e.(type) {
	case *doc.SystemMessage:
		r.message(w, n)
	case *doc.Table:
		r.table(w, n)
	case *doc.Section:
		w.Newline()
		w.Raw("<section" + commonAttrs(n.Options) + ">")
		w.Newline()
		w.Indent()
		r.blocks(w, n.Content)
		w.Dedent()
		w.Line("</section>")
	case *doc.Header:
		w.Newline()
		w.Raw(fmt.Sprintf("<bridgehead renderas=%q", fmt.Sprintf("sect%d", n.Level)) + commonAttrs(n.Options) + ">")
		r.spans(w, n.Content)
		w.Raw("</bridgehead>")
		w.Newline()
	case *doc.Paragraph:
		w.Newline()
		w.Raw("<para" + commonAttrs(n.Options) + ">")
		r.spans(w, n.Content)
		w.Raw("</para>")
		w.Newline()
	case *doc.SpanSequence:
		r.spans(w, n.Content)
	case *doc.LiteralBlock:
		w.Newline()
		open := "<programlisting"
		if len(n.Options.Styles) > 0 {
			open += attr("language", n.Options.Styles[0])
		}
		w.Raw(open + ">")
		w.Text(n.Content)
		w.Raw("</programlisting>")
		w.Newline()
	case *doc.DoctestBlock:
		w.Newline()
		w.Raw(`<programlisting role="doctest">`)
		w.Text(n.Content)
		w.Raw("</programlisting>")
		w.Newline()
	case *doc.QuotedBlock:
		w.Line("<blockquote" + commonAttrs(n.Options) + ">")
		w.Indent()
		if len(n.Attribution) > 0 {
			w.Newline()
			w.Raw("<attribution>")
			r.spans(w, n.Attribution)
			w.Raw("</attribution>")
			w.Newline()
		}
		r.blocks(w, n.Content)
		w.Dedent()
		w.Line("</blockquote>")
	case *doc.Transition:
		w.Line("<!-- transition -->")
	case *doc.Comment:
		w.Newline()
		w.Raw("<!-- ")
		w.Text(n.Content)
		w.Raw(" -->")
		w.Newline()
	case *doc.BulletList:
		w.Line("<itemizedlist" + commonAttrs(n.Options) + ">")
		w.Indent()
		for _, item := range n.Items {
			r.listItem(w, item.Content)
		}
		w.Dedent()
		w.Line("</itemizedlist>")
	case *doc.EnumList:
		open := "<orderedlist" + attr("numeration", n.Format.Style.String())
		if n.Start > 1 {
			open += attr("startingnumber", fmt.Sprint(n.Start))
		}
		w.Line(open + commonAttrs(n.Options) + ">")
		w.Indent()
		for _, item := range n.Items {
			r.listItem(w, item.Content)
		}
		w.Dedent()
		w.Line("</orderedlist>")
	case *doc.DefinitionList:
		w.Line("<variablelist" + commonAttrs(n.Options) + ">")
		w.Indent()
		for _, item := range n.Items {
			w.Line("<varlistentry>")
			w.Indent()
			w.Newline()
			w.Raw("<term>")
			r.spans(w, item.Term)
			w.Raw("</term>")
			w.Newline()
			r.listItem(w, item.Definition)
			w.Dedent()
			w.Line("</varlistentry>")
		}
		w.Dedent()
		w.Line("</variablelist>")
	case *doc.LineBlock:
		w.Newline()
		w.Raw("<literallayout" + commonAttrs(n.Options) + ">")
		for i, line := range n.Content {
			if i > 0 {
				w.Raw("\n")
			}
			r.element(w, line)
		}
		w.Raw("</literallayout>")
		w.Newline()
	case *doc.Line:
		r.spans(w, n.Content)
	case *doc.Footnote:
		w.Newline()
		w.Raw("<footnote" + attr("xml:id", n.ID) + attr("label", n.Label) + ">")
		w.Newline()
		w.Indent()
		r.blocks(w, n.Content)
		w.Dedent()
		w.Line("</footnote>")
	case *doc.Citation:
		w.Newline()
		w.Raw("<bibliomixed" + attr("xml:id", n.Label) + ">")
		w.Newline()
		w.Indent()
		r.blocks(w, n.Content)
		w.Dedent()
		w.Line("</bibliomixed>")
	case *doc.InternalLinkTarget:
		w.Raw("<anchor" + attr("xml:id", n.ID) + "/>")
		r.spans(w, n.Content)

	case *doc.Text:
		w.Text(n.Content)
	case *doc.Emphasized:
		w.Raw("<emphasis" + commonAttrs(n.Options) + ">")
		r.spans(w, n.Content)
		w.Raw("</emphasis>")
	case *doc.Strong:
		w.Raw(`<emphasis role="strong">`)
		r.spans(w, n.Content)
		w.Raw("</emphasis>")
	case *doc.Literal:
		w.Raw("<literal" + commonAttrs(n.Options) + ">")
		w.Text(n.Content)
		w.Raw("</literal>")
	case *doc.LineBreak:
		w.Raw("\n")
	case *doc.ExternalLink:
		w.Raw("<link" + attr("xlink:href", n.URL) + ">")
		r.spans(w, n.Content)
		w.Raw("</link>")
	case *doc.InternalLink:
		w.Raw("<link" + attr("linkend", n.Ref) + ">")
		r.spans(w, n.Content)
		w.Raw("</link>")
	case *doc.FootnoteLink:
		w.Raw("<footnoteref" + attr("linkend", n.Ref) + "/>")
	case *doc.CitationLink:
		w.Raw("<citation>")
		w.Text(n.Label)
		w.Raw("</citation>")
	case *doc.Image:
		r.image(w, n)

	default:
		r.fallback(w, e)
	}
}

// listItem wraps item content in <listitem>, collapsing a single
// paragraph to its spans.
func (r *DocBook) listItem(w *Writer, blocks []doc.Block) {
	w.Newline()
	if para, ok := soleParagraph(blocks); ok {
		w.Raw("<listitem><para>")
		r.spans(w, para.Content)
		w.Raw("</para></listitem>")
		w.Newline()
		return
	}
	w.Line("<listitem>")
	w.Indent()
	r.blocks(w, blocks)
	w.Dedent()
	w.Line("</listitem>")
}

// soleParagraph reports whether the block list is exactly one plain
// paragraph.
func soleParagraph(blocks []doc.Block) (*doc.Paragraph, bool) {
	if len(blocks) != 1 {
		return nil, false
	}
	para, ok := blocks[0].(*doc.Paragraph)
	if !ok || !para.Options.IsEmpty() {
		return nil, false
	}
	return para, true
}

func (r *DocBook) image(w *Writer, n *doc.Image) {
	w.Raw("<inlinemediaobject><imageobject><imagedata" + attr("fileref", n.URL) + "/></imageobject>")
	if n.AltText != "" {
		w.Raw("<textobject><phrase>")
		w.Text(n.AltText)
		w.Raw("</phrase></textobject>")
	}
	w.Raw("</inlinemediaobject>")
}

// table renders an informal table. The column count comes from the
// column spec when present, otherwise it is inferred from the first
// body row.
func (r *DocBook) table(w *Writer, t *doc.Table) {
	cols := 0
	if t.Columns != nil {
		cols = len(t.Columns.Cols)
	} else if len(t.Body) > 0 {
		cols = len(t.Body[0].Cells)
	} else if len(t.Head) > 0 {
		cols = len(t.Head[0].Cells)
	}

	w.Line("<informaltable" + commonAttrs(t.Options) + ">")
	w.Indent()
	w.Line("<tgroup" + attr("cols", fmt.Sprint(cols)) + ">")
	w.Indent()
	if len(t.Head) > 0 {
		w.Line("<thead>")
		w.Indent()
		for _, row := range t.Head {
			r.tableRow(w, row)
		}
		w.Dedent()
		w.Line("</thead>")
	}
	w.Line("<tbody>")
	w.Indent()
	for _, row := range t.Body {
		r.tableRow(w, row)
	}
	w.Dedent()
	w.Line("</tbody>")
	w.Dedent()
	w.Line("</tgroup>")
	w.Dedent()
	w.Line("</informaltable>")
}

func (r *DocBook) tableRow(w *Writer, row *doc.Row) {
	w.Line("<row>")
	w.Indent()
	for _, cell := range row.Cells {
		open := "<entry"
		if cell.RowSpan > 1 {
			open += attr("morerows", fmt.Sprint(cell.RowSpan-1))
		}
		w.Newline()
		if para, ok := soleParagraph(cell.Content); ok {
			w.Raw(open + ">")
			r.spans(w, para.Content)
			w.Raw("</entry>")
			w.Newline()
			continue
		}
		w.Line(open + ">")
		w.Indent()
		r.blocks(w, cell.Content)
		w.Dedent()
		w.Line("</entry>")
	}
	w.Dedent()
	w.Line("</row>")
}

func (r *DocBook) message(w *Writer, m *doc.SystemMessage) {
	if r.MessageFloor == nil || m.Level < *r.MessageFloor {
		return
	}
	w.Raw("<remark" + attr("role", m.Level.String()) + ">")
	w.Text(m.Content)
	w.Raw("</remark>")
}

// fallback handles nodes outside the concrete catalogue, in the
// canonical capability order.
func (r *DocBook) fallback(w *Writer, e doc.Element) {
	switch n := e.(type) {
	case doc.Reference:
		// A reference here means the rewrite pass never ran over it.
		r.element(w, doc.NewInvalidSpan("unresolved reference", n.Source()))
	case doc.Invalid:
		r.message(w, n.Message())
		if fb := n.FallbackElement(); fb != nil {
			r.element(w, fb)
		}
	case doc.BlockContainer:
		r.blocks(w, n.Blocks())
	case doc.SpanContainer:
		r.spans(w, n.Spans())
	case doc.ListContainer:
		for _, item := range n.ListItems() {
			r.element(w, item)
		}
	case doc.TextContainer:
		w.Text(n.Text())
	default:
		w.Raw(fmt.Sprintf("<!-- unrenderable node %T -->", e))
	}
}
