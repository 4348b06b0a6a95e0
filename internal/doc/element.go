// Package doc defines the format-independent document tree that every
// markup dialect parses into and every renderer consumes.
package doc

// Element is the universal node type of the document tree.
type Element interface {
	element()
}

// Block is a block-level node: paragraphs, lists, quotes and the like.
// Blocks compose into document, section and list-item content.
type Block interface {
	Element
	block()
}

// Span is an inline node: a run of text or markup inside a block.
type Span interface {
	Element
	span()
}

// BlockContainer is an element holding an ordered sequence of blocks.
type BlockContainer interface {
	Element
	Blocks() []Block
}

// SpanContainer is an element holding an ordered sequence of spans.
type SpanContainer interface {
	Element
	Spans() []Span
}

// ListContainer is an element holding an ordered sequence of list items
// (bullet items, enum items, definition items, lines, table rows).
type ListContainer interface {
	Element
	ListItems() []Element
}

// TextContainer is a leaf element wrapping a single string payload.
type TextContainer interface {
	Element
	Text() string
}

// Customizable is an element carrying an Options value.
type Customizable interface {
	Element
	Opts() Options
}

// Temporary marks a node that exists only in the raw, pre-rewrite tree.
// The rewrite pass must eliminate every Temporary node; a renderer never
// sees one on the primary path.
type Temporary interface {
	Element
	temporary()
}

// Reference is a temporary node naming a target by id. The rewrite pass
// replaces it with the resolved form, or with an Invalid node carrying the
// original source text when the target is unknown.
type Reference interface {
	Temporary
	Source() string
}

// Target is a node a reference can resolve to. Target ids are unique
// across the whole document regardless of the target subtype, so
// resolution is a plain lookup.
type Target interface {
	Element
	TargetID() string
}

// Invalid wraps a diagnostic message plus a rendering-safe fallback.
// Renderers decide per configured minimum severity whether to show the
// message, the fallback, or both.
type Invalid interface {
	Element
	Message() *SystemMessage
	FallbackElement() Element
}
