package doc

// Text is a plain run of characters.
type Text struct {
	Content string
	Options Options
}

func (t *Text) element()      {}
func (t *Text) span()         {}
func (t *Text) Text() string  { return t.Content }
func (t *Text) Opts() Options { return t.Options }

// Emphasized is usually rendered italic.
type Emphasized struct {
	Content []Span
	Options Options
}

func (e *Emphasized) element()      {}
func (e *Emphasized) span()         {}
func (e *Emphasized) Spans() []Span { return e.Content }
func (e *Emphasized) Opts() Options { return e.Options }

// Strong is usually rendered bold.
type Strong struct {
	Content []Span
	Options Options
}

func (s *Strong) element()      {}
func (s *Strong) span()         {}
func (s *Strong) Spans() []Span { return s.Content }
func (s *Strong) Opts() Options { return s.Options }

// Literal is inline verbatim text.
type Literal struct {
	Content string
	Options Options
}

func (l *Literal) element()      {}
func (l *Literal) span()         {}
func (l *Literal) Text() string  { return l.Content }
func (l *Literal) Opts() Options { return l.Options }

// LineBreak is an explicit hard break inside a paragraph.
type LineBreak struct {
	Options Options
}

func (b *LineBreak) element()      {}
func (b *LineBreak) span()         {}
func (b *LineBreak) Opts() Options { return b.Options }

// ExternalLink points at a URL outside the document.
type ExternalLink struct {
	Content []Span
	URL     string
	Title   string
	Options Options
}

func (l *ExternalLink) element()      {}
func (l *ExternalLink) span()         {}
func (l *ExternalLink) Spans() []Span { return l.Content }
func (l *ExternalLink) Opts() Options { return l.Options }

// InternalLink points at a link target inside the document.
type InternalLink struct {
	Content []Span
	Ref     string
	Options Options
}

func (l *InternalLink) element()      {}
func (l *InternalLink) span()         {}
func (l *InternalLink) Spans() []Span { return l.Content }
func (l *InternalLink) Opts() Options { return l.Options }

// FootnoteLink is a resolved reference to a footnote body.
type FootnoteLink struct {
	Ref     string
	Label   string
	Options Options
}

func (l *FootnoteLink) element()      {}
func (l *FootnoteLink) span()         {}
func (l *FootnoteLink) Opts() Options { return l.Options }

// CitationLink is a resolved reference to a citation body.
type CitationLink struct {
	Ref     string
	Label   string
	Options Options
}

func (l *CitationLink) element()      {}
func (l *CitationLink) span()         {}
func (l *CitationLink) Opts() Options { return l.Options }

// Image embeds an image with alt text.
type Image struct {
	AltText string
	URL     string
	Title   string
	Options Options
}

func (i *Image) element()      {}
func (i *Image) span()         {}
func (i *Image) Text() string  { return i.AltText }
func (i *Image) Opts() Options { return i.Options }

// --- temporary reference spans --------------------------------------------

// LinkReference names a link target by id; the rewrite pass replaces it
// with an ExternalLink or InternalLink.
type LinkReference struct {
	Content []Span
	ID      string
	Src     string
}

func (r *LinkReference) element()       {}
func (r *LinkReference) span()          {}
func (r *LinkReference) temporary()     {}
func (r *LinkReference) Source() string { return r.Src }
func (r *LinkReference) Spans() []Span  { return r.Content }

// ImageReference names an image definition by id.
type ImageReference struct {
	AltText string
	ID      string
	Src     string
}

func (r *ImageReference) element()       {}
func (r *ImageReference) span()          {}
func (r *ImageReference) temporary()     {}
func (r *ImageReference) Source() string { return r.Src }

// FootnoteReference names a footnote by label.
type FootnoteReference struct {
	Label FootnoteLabel
	Src   string
}

func (r *FootnoteReference) element()       {}
func (r *FootnoteReference) span()          {}
func (r *FootnoteReference) temporary()     {}
func (r *FootnoteReference) Source() string { return r.Src }

// CitationReference names a citation by label.
type CitationReference struct {
	Label string
	Src   string
}

func (r *CitationReference) element()       {}
func (r *CitationReference) span()          {}
func (r *CitationReference) temporary()     {}
func (r *CitationReference) Source() string { return r.Src }

// SubstitutionReference names a substitution definition by id.
type SubstitutionReference struct {
	ID  string
	Src string
}

func (r *SubstitutionReference) element()       {}
func (r *SubstitutionReference) span()          {}
func (r *SubstitutionReference) temporary()     {}
func (r *SubstitutionReference) Source() string { return r.Src }

// InterpretedText is role-tagged text; the rewrite pass applies the role
// function from the text-role table.
type InterpretedText struct {
	Role string
	Text string
	Src  string
}

func (t *InterpretedText) element()       {}
func (t *InterpretedText) span()          {}
func (t *InterpretedText) temporary()     {}
func (t *InterpretedText) Source() string { return t.Src }
