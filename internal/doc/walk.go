package doc

// Action is the outcome of applying a rewrite Rule to one node.
type Action int

const (
	// Unchanged passes the node through untouched.
	Unchanged Action = iota
	// Replaced substitutes the returned element for the node.
	Replaced
	// Removed deletes the node from its parent's child sequence.
	Removed
)

// Rule is a partial substitution function over tree nodes. A rule that
// does not apply to a node returns Unchanged.
type Rule func(Element) (Element, Action)

// Cascade combines rules into an ordered cascade: the first rule that
// matches a node wins, unmatched nodes pass through unchanged.
func Cascade(rules ...Rule) Rule {
	return func(e Element) (Element, Action) {
		for _, r := range rules {
			if out, action := r(e); action != Unchanged {
				return out, action
			}
		}
		return e, Unchanged
	}
}

// RewriteDocument produces a new document by structural substitution,
// applying the rule bottom-up to every node. The input tree is not
// mutated.
func RewriteDocument(d *Document, rule Rule) *Document {
	return &Document{
		Content: RewriteBlocks(d.Content, rule),
		Meta:    d.Meta,
	}
}

// RewriteBlocks rewrites a block sequence bottom-up: children first, then
// the block itself. Removed blocks are dropped. A replacement that is a
// span rather than a block is wrapped in a SpanSequence so content never
// vanishes on a role mismatch.
func RewriteBlocks(blocks []Block, rule Rule) []Block {
	out := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		rewritten := rewriteChildren(b, rule)
		replaced, action := rule(rewritten)
		switch action {
		case Removed:
			continue
		case Replaced:
			if rb, ok := replaced.(Block); ok && rb != nil {
				out = append(out, rb)
			} else if rs, ok := replaced.(Span); ok && rs != nil {
				out = append(out, &SpanSequence{Content: []Span{rs}})
			}
		default:
			out = append(out, rewritten.(Block))
		}
	}
	return out
}

// RewriteSpans rewrites a span sequence bottom-up, mirroring
// RewriteBlocks.
func RewriteSpans(spans []Span, rule Rule) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		rewritten := rewriteChildren(s, rule)
		replaced, action := rule(rewritten)
		switch action {
		case Removed:
			continue
		case Replaced:
			if rs, ok := replaced.(Span); ok && rs != nil {
				out = append(out, rs)
			}
		default:
			out = append(out, rewritten.(Span))
		}
	}
	return out
}

// rewriteChildren rebuilds one node with all child sequences rewritten.
// Leaf nodes are returned as-is.
func rewriteChildren(e Element, rule Rule) Element {
	switch n := e.(type) {
	case *Document:
		return RewriteDocument(n, rule)
	case *Section:
		header := n.Header
		if header != nil {
			header = &Header{Level: header.Level, Content: RewriteSpans(header.Content, rule), Options: header.Options}
		}
		return &Section{Header: header, Content: RewriteBlocks(n.Content, rule), Options: n.Options}
	case *Header:
		return &Header{Level: n.Level, Content: RewriteSpans(n.Content, rule), Options: n.Options}
	case *DecoratedHeader:
		return &DecoratedHeader{Decoration: n.Decoration, Content: RewriteSpans(n.Content, rule), Options: n.Options}
	case *Paragraph:
		return &Paragraph{Content: RewriteSpans(n.Content, rule), Options: n.Options}
	case *SpanSequence:
		return &SpanSequence{Content: RewriteSpans(n.Content, rule), Options: n.Options}
	case *QuotedBlock:
		return &QuotedBlock{
			Content:     RewriteBlocks(n.Content, rule),
			Attribution: RewriteSpans(n.Attribution, rule),
			Options:     n.Options,
		}
	case *BulletList:
		items := make([]*BulletListItem, 0, len(n.Items))
		for _, it := range n.Items {
			items = append(items, &BulletListItem{Content: RewriteBlocks(it.Content, rule)})
		}
		return &BulletList{Items: items, Bullet: n.Bullet, Options: n.Options}
	case *EnumList:
		items := make([]*EnumListItem, 0, len(n.Items))
		for _, it := range n.Items {
			items = append(items, &EnumListItem{Content: RewriteBlocks(it.Content, rule), Position: it.Position})
		}
		return &EnumList{Items: items, Format: n.Format, Start: n.Start, Options: n.Options}
	case *DefinitionList:
		items := make([]*DefinitionListItem, 0, len(n.Items))
		for _, it := range n.Items {
			items = append(items, &DefinitionListItem{
				Term:       RewriteSpans(it.Term, rule),
				Definition: RewriteBlocks(it.Definition, rule),
			})
		}
		return &DefinitionList{Items: items, Options: n.Options}
	case *LineBlock:
		return &LineBlock{Content: RewriteBlocks(n.Content, rule), Options: n.Options}
	case *Line:
		return &Line{Content: RewriteSpans(n.Content, rule), Options: n.Options}
	case *Table:
		return &Table{
			Head:    rewriteRows(n.Head, rule),
			Body:    rewriteRows(n.Body, rule),
			Columns: n.Columns,
			Options: n.Options,
		}
	case *FootnoteDefinition:
		return &FootnoteDefinition{Label: n.Label, Content: RewriteBlocks(n.Content, rule)}
	case *Footnote:
		return &Footnote{ID: n.ID, Label: n.Label, Content: RewriteBlocks(n.Content, rule), Options: n.Options}
	case *Citation:
		return &Citation{Label: n.Label, Content: RewriteBlocks(n.Content, rule), Options: n.Options}
	case *Emphasized:
		return &Emphasized{Content: RewriteSpans(n.Content, rule), Options: n.Options}
	case *Strong:
		return &Strong{Content: RewriteSpans(n.Content, rule), Options: n.Options}
	case *ExternalLink:
		return &ExternalLink{Content: RewriteSpans(n.Content, rule), URL: n.URL, Title: n.Title, Options: n.Options}
	case *InternalLink:
		return &InternalLink{Content: RewriteSpans(n.Content, rule), Ref: n.Ref, Options: n.Options}
	case *LinkReference:
		return &LinkReference{Content: RewriteSpans(n.Content, rule), ID: n.ID, Src: n.Src}
	case *InternalLinkTarget:
		if n.Content == nil {
			return n
		}
		return &InternalLinkTarget{ID: n.ID, Content: RewriteSpans(n.Content, rule), Options: n.Options}
	}
	return e
}

func rewriteRows(rows []*Row, rule Rule) []*Row {
	if rows == nil {
		return nil
	}
	out := make([]*Row, 0, len(rows))
	for _, r := range rows {
		cells := make([]*Cell, 0, len(r.Cells))
		for _, c := range r.Cells {
			cells = append(cells, &Cell{
				Type:    c.Type,
				Content: RewriteBlocks(c.Content, rule),
				ColSpan: c.ColSpan,
				RowSpan: c.RowSpan,
			})
		}
		out = append(out, &Row{Cells: cells})
	}
	return out
}

// Visit calls fn for e and every descendant, depth-first in document
// order. The tree is read-only during the visit.
func Visit(e Element, fn func(Element)) {
	fn(e)
	for _, child := range children(e) {
		Visit(child, fn)
	}
}

// Select collects every node in the tree (including e itself) matching
// the predicate, in document order.
func Select(e Element, pred func(Element) bool) []Element {
	var out []Element
	Visit(e, func(n Element) {
		if pred(n) {
			out = append(out, n)
		}
	})
	return out
}

// children enumerates the direct child elements of a node in document
// order, across all container kinds.
func children(e Element) []Element {
	var out []Element
	switch n := e.(type) {
	case *Section:
		if n.Header != nil {
			out = append(out, n.Header)
		}
	case *QuotedBlock:
		// attribution spans follow the quoted content below
	case *DefinitionList:
		for _, it := range n.Items {
			out = append(out, it)
		}
		return out
	case *Table:
		for _, r := range n.Head {
			out = append(out, r)
		}
		for _, r := range n.Body {
			out = append(out, r)
		}
		return out
	case *Row:
		for _, c := range n.Cells {
			out = append(out, c)
		}
		return out
	}
	if bc, ok := e.(BlockContainer); ok {
		for _, b := range bc.Blocks() {
			out = append(out, b)
		}
	}
	if sc, ok := e.(SpanContainer); ok {
		for _, s := range sc.Spans() {
			out = append(out, s)
		}
	}
	if lc, ok := e.(ListContainer); ok {
		out = append(out, lc.ListItems()...)
	}
	switch n := e.(type) {
	case *QuotedBlock:
		for _, s := range n.Attribution {
			out = append(out, s)
		}
	case *DefinitionListItem:
		items := make([]Element, 0, len(n.Term)+len(n.Definition))
		for _, s := range n.Term {
			items = append(items, s)
		}
		for _, b := range n.Definition {
			items = append(items, b)
		}
		return items
	case *SubstitutionDefinition:
		if n.Content != nil {
			out = append(out, n.Content)
		}
	case *InvalidSpan:
		if n.Fallback != nil {
			out = append(out, n.Fallback)
		}
	case *InvalidBlock:
		if n.Fallback != nil {
			out = append(out, n.Fallback)
		}
	}
	return out
}
