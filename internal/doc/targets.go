package doc

// FootnoteLabel is the label variant of a footnote definition or
// reference.
type FootnoteLabel interface {
	footnoteLabel()
}

// Autonumber is the `#` label: numbered in order of appearance.
type Autonumber struct{}

// Autosymbol is the `*` label: symbols assigned in order of appearance.
type Autosymbol struct{}

// NumericLabel is an explicit numeric label.
type NumericLabel struct {
	Number int
}

// AutonumberLabel is an auto-numbered label that is also referable by
// name.
type AutonumberLabel struct {
	ID string
}

func (Autonumber) footnoteLabel()      {}
func (Autosymbol) footnoteLabel()      {}
func (NumericLabel) footnoteLabel()    {}
func (AutonumberLabel) footnoteLabel() {}

// --- temporary definition targets ------------------------------------------

// ExternalLinkDefinition maps an id to a URL, e.g. a reStructuredText
// `.. _name: http://...` target or a Markdown `[id]: url` definition.
type ExternalLinkDefinition struct {
	ID    string
	URL   string
	Title string
}

func (d *ExternalLinkDefinition) element()         {}
func (d *ExternalLinkDefinition) block()           {}
func (d *ExternalLinkDefinition) temporary()       {}
func (d *ExternalLinkDefinition) TargetID() string { return d.ID }

// LinkAlias is an indirect target pointing at another target id.
// Consecutive anonymous internal targets fold into chains of these.
type LinkAlias struct {
	ID     string
	Target string
}

func (a *LinkAlias) element()         {}
func (a *LinkAlias) block()           {}
func (a *LinkAlias) temporary()       {}
func (a *LinkAlias) TargetID() string { return a.ID }

// FootnoteDefinition is the unresolved body of a footnote; the rewrite
// pass assigns numbers/symbols and produces Footnote blocks.
type FootnoteDefinition struct {
	Label   FootnoteLabel
	Content []Block
}

func (d *FootnoteDefinition) element()        {}
func (d *FootnoteDefinition) block()          {}
func (d *FootnoteDefinition) temporary()      {}
func (d *FootnoteDefinition) Blocks() []Block { return d.Content }

// SubstitutionDefinition maps a substitution id to its replacement span.
type SubstitutionDefinition struct {
	ID      string
	Content Span
}

func (d *SubstitutionDefinition) element()         {}
func (d *SubstitutionDefinition) block()           {}
func (d *SubstitutionDefinition) temporary()       {}
func (d *SubstitutionDefinition) TargetID() string { return d.ID }

// --- resolved targets -------------------------------------------------------

// InternalLinkTarget is an anchor inside the document that internal
// links resolve to. It survives rewriting and renders as an anchor.
// Inline targets keep their visible text in Content; block-level
// targets have none.
type InternalLinkTarget struct {
	ID      string
	Content []Span
	Options Options
}

func (t *InternalLinkTarget) element()         {}
func (t *InternalLinkTarget) block()           {}
func (t *InternalLinkTarget) span()            {}
func (t *InternalLinkTarget) TargetID() string { return t.ID }
func (t *InternalLinkTarget) Spans() []Span    { return t.Content }
func (t *InternalLinkTarget) Opts() Options    { return t.Options }

// Footnote is a resolved footnote body with its assigned label.
type Footnote struct {
	ID      string
	Label   string
	Content []Block
	Options Options
}

func (f *Footnote) element()         {}
func (f *Footnote) block()           {}
func (f *Footnote) TargetID() string { return f.ID }
func (f *Footnote) Blocks() []Block  { return f.Content }
func (f *Footnote) Opts() Options    { return f.Options }

// Citation is a resolved citation body.
type Citation struct {
	Label   string
	Content []Block
	Options Options
}

func (c *Citation) element()         {}
func (c *Citation) block()           {}
func (c *Citation) TargetID() string { return c.Label }
func (c *Citation) Blocks() []Block  { return c.Content }
func (c *Citation) Opts() Options    { return c.Options }
