package doc

// Document is the root of a parsed tree.
type Document struct {
	Content []Block
	// Meta holds document metadata such as the title, typically taken
	// from front matter or the CLI.
	Meta map[string]string
}

func (d *Document) element()        {}
func (d *Document) block()          {}
func (d *Document) Blocks() []Block { return d.Content }

// Title returns the document title from metadata, or "".
func (d *Document) Title() string {
	if d.Meta == nil {
		return ""
	}
	return d.Meta["title"]
}

// Section groups a header with the blocks that follow it.
type Section struct {
	Header  *Header
	Content []Block
	Options Options
}

func (s *Section) element()        {}
func (s *Section) block()          {}
func (s *Section) Blocks() []Block { return s.Content }
func (s *Section) Opts() Options   { return s.Options }

// Header is a section heading with a known nesting level.
type Header struct {
	Level   int
	Content []Span
	Options Options
}

func (h *Header) element()      {}
func (h *Header) block()        {}
func (h *Header) Spans() []Span { return h.Content }
func (h *Header) Opts() Options { return h.Options }

// HeaderDecoration identifies the punctuation styling of a
// reStructuredText header: the decoration character and whether an
// overline accompanies the underline.
type HeaderDecoration struct {
	Char     byte
	Overline bool
}

// DecoratedHeader is a header whose nesting level is not yet known.
// The rewrite pass maps the first-seen decoration style to level 1, the
// second distinct style to level 2, and so on.
type DecoratedHeader struct {
	Decoration HeaderDecoration
	Content    []Span
	Options    Options
}

func (h *DecoratedHeader) element()      {}
func (h *DecoratedHeader) block()        {}
func (h *DecoratedHeader) temporary()    {}
func (h *DecoratedHeader) Spans() []Span { return h.Content }
func (h *DecoratedHeader) Opts() Options { return h.Options }

// Paragraph is the default block: a run of spans.
type Paragraph struct {
	Content []Span
	Options Options
}

func (p *Paragraph) element()      {}
func (p *Paragraph) block()        {}
func (p *Paragraph) Spans() []Span { return p.Content }
func (p *Paragraph) Opts() Options { return p.Options }

// SpanSequence is a bare sequence of spans in block position, used where
// a block slot holds inline content without paragraph semantics (for
// example a quote attribution promoted to a block).
type SpanSequence struct {
	Content []Span
	Options Options
}

func (s *SpanSequence) element()      {}
func (s *SpanSequence) block()        {}
func (s *SpanSequence) Spans() []Span { return s.Content }
func (s *SpanSequence) Opts() Options { return s.Options }

// LiteralBlock is preformatted text rendered verbatim.
type LiteralBlock struct {
	Content string
	Options Options
}

func (b *LiteralBlock) element()      {}
func (b *LiteralBlock) block()        {}
func (b *LiteralBlock) Text() string  { return b.Content }
func (b *LiteralBlock) Opts() Options { return b.Options }

// DoctestBlock is a reStructuredText interactive-session block.
type DoctestBlock struct {
	Content string
	Options Options
}

func (b *DoctestBlock) element()      {}
func (b *DoctestBlock) block()        {}
func (b *DoctestBlock) Text() string  { return b.Content }
func (b *DoctestBlock) Opts() Options { return b.Options }

// QuotedBlock is a block quote with an optional attribution span
// sequence. An absent attribution is the empty sequence.
type QuotedBlock struct {
	Content     []Block
	Attribution []Span
	Options     Options
}

func (q *QuotedBlock) element()        {}
func (q *QuotedBlock) block()          {}
func (q *QuotedBlock) Blocks() []Block { return q.Content }
func (q *QuotedBlock) Opts() Options   { return q.Options }

// Transition is a horizontal rule separating two parts of a document.
type Transition struct {
	Options Options
}

func (t *Transition) element()      {}
func (t *Transition) block()        {}
func (t *Transition) Opts() Options { return t.Options }

// Comment is markup commentary that carries no visible content.
type Comment struct {
	Content string
	Options Options
}

func (c *Comment) element()      {}
func (c *Comment) block()        {}
func (c *Comment) Text() string  { return c.Content }
func (c *Comment) Opts() Options { return c.Options }

// --- lists -----------------------------------------------------------------

// BulletList holds items introduced by the same bullet character.
type BulletList struct {
	Items   []*BulletListItem
	Bullet  string
	Options Options
}

func (l *BulletList) element()      {}
func (l *BulletList) block()        {}
func (l *BulletList) Opts() Options { return l.Options }
func (l *BulletList) ListItems() []Element {
	items := make([]Element, len(l.Items))
	for i, it := range l.Items {
		items[i] = it
	}
	return items
}

// BulletListItem is one entry of a BulletList.
type BulletListItem struct {
	Content []Block
}

func (i *BulletListItem) element()        {}
func (i *BulletListItem) Blocks() []Block { return i.Content }

// EnumStyle is the numbering style of an enumerated list.
type EnumStyle int

const (
	Arabic EnumStyle = iota
	LowerAlpha
	UpperAlpha
	LowerRoman
	UpperRoman
)

func (s EnumStyle) String() string {
	switch s {
	case Arabic:
		return "arabic"
	case LowerAlpha:
		return "loweralpha"
	case UpperAlpha:
		return "upperalpha"
	case LowerRoman:
		return "lowerroman"
	case UpperRoman:
		return "upperroman"
	}
	return "arabic"
}

// EnumFormat describes how enumerated list labels are written: the
// numbering style plus the literal prefix and suffix around the number.
type EnumFormat struct {
	Style  EnumStyle
	Prefix string
	Suffix string
}

// EnumList is an ordered list with an explicit start index.
type EnumList struct {
	Items   []*EnumListItem
	Format  EnumFormat
	Start   int
	Options Options
}

func (l *EnumList) element()      {}
func (l *EnumList) block()        {}
func (l *EnumList) Opts() Options { return l.Options }
func (l *EnumList) ListItems() []Element {
	items := make([]Element, len(l.Items))
	for i, it := range l.Items {
		items[i] = it
	}
	return items
}

// EnumListItem is one entry of an EnumList.
type EnumListItem struct {
	Content  []Block
	Position int
}

func (i *EnumListItem) element()        {}
func (i *EnumListItem) Blocks() []Block { return i.Content }

// DefinitionList is a sequence of term/definition pairs.
type DefinitionList struct {
	Items   []*DefinitionListItem
	Options Options
}

func (l *DefinitionList) element()      {}
func (l *DefinitionList) block()        {}
func (l *DefinitionList) Opts() Options { return l.Options }
func (l *DefinitionList) ListItems() []Element {
	items := make([]Element, len(l.Items))
	for i, it := range l.Items {
		items[i] = it
	}
	return items
}

// DefinitionListItem is one term with its definition blocks.
type DefinitionListItem struct {
	Term       []Span
	Definition []Block
}

func (i *DefinitionListItem) element()        {}
func (i *DefinitionListItem) Blocks() []Block { return i.Definition }

// LineBlock preserves line breaks; its children are Lines or nested
// LineBlocks.
type LineBlock struct {
	Content []Block
	Options Options
}

func (l *LineBlock) element()      {}
func (l *LineBlock) block()        {}
func (l *LineBlock) Opts() Options { return l.Options }
func (l *LineBlock) ListItems() []Element {
	items := make([]Element, len(l.Content))
	for i, c := range l.Content {
		items[i] = c
	}
	return items
}

// Line is a single line inside a LineBlock.
type Line struct {
	Content []Span
	Options Options
}

func (l *Line) element()      {}
func (l *Line) block()        {}
func (l *Line) Spans() []Span { return l.Content }
func (l *Line) Opts() Options { return l.Options }

// --- tables ----------------------------------------------------------------

// CellType distinguishes header cells from body cells.
type CellType int

const (
	BodyCell CellType = iota
	HeadCell
)

// Cell is one table cell, spanning one or more columns and rows.
type Cell struct {
	Type    CellType
	Content []Block
	ColSpan int
	RowSpan int
}

func (c *Cell) element()        {}
func (c *Cell) Blocks() []Block { return c.Content }

// Row is one table row.
type Row struct {
	Cells []*Cell
}

func (r *Row) element() {}
func (r *Row) ListItems() []Element {
	items := make([]Element, len(r.Cells))
	for i, c := range r.Cells {
		items[i] = c
	}
	return items
}

// Column carries per-column options (styles, widths as style names).
type Column struct {
	Options Options
}

func (c *Column) element()      {}
func (c *Column) Opts() Options { return c.Options }

// Columns is the optional column-specification of a table.
type Columns struct {
	Cols []*Column
}

func (c *Columns) element() {}
func (c *Columns) ListItems() []Element {
	items := make([]Element, len(c.Cols))
	for i, col := range c.Cols {
		items[i] = col
	}
	return items
}

// Table is a block table with optional head rows and a column spec.
type Table struct {
	Head    []*Row
	Body    []*Row
	Columns *Columns
	Options Options
}

func (t *Table) element()      {}
func (t *Table) block()        {}
func (t *Table) Opts() Options { return t.Options }
func (t *Table) ListItems() []Element {
	items := make([]Element, 0, len(t.Head)+len(t.Body))
	for _, r := range t.Head {
		items = append(items, r)
	}
	for _, r := range t.Body {
		items = append(items, r)
	}
	return items
}
