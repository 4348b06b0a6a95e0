package rst

import (
	"testing"

	"github.com/Hocdoc/sandoc/internal/doc"
)

func TestLiteralBlockPromotion(t *testing.T) {
	d := ParseDocument("Example::\n\n    code line\n\nafter\n")
	if len(d.Content) != 3 {
		t.Fatalf("got %d blocks, want 3", len(d.Content))
	}
	para, ok := d.Content[0].(*doc.Paragraph)
	if !ok {
		t.Fatalf("first block = %#v, want paragraph", d.Content[0])
	}
	if got := doc.TextOf(para); got != "Example" {
		t.Errorf("paragraph text = %q, want %q (double colon must be stripped)", got, "Example")
	}
	lit, ok := d.Content[1].(*doc.LiteralBlock)
	if !ok {
		t.Fatalf("second block = %#v, want literal block", d.Content[1])
	}
	if lit.Content != "code line" {
		t.Errorf("literal content = %q", lit.Content)
	}
}

func TestExpandedLiteralMarkerLeavesNoParagraph(t *testing.T) {
	d := ParseDocument("::\n\n    just code\n")
	if len(d.Content) != 1 {
		t.Fatalf("got %d blocks, want 1", len(d.Content))
	}
	if _, ok := d.Content[0].(*doc.LiteralBlock); !ok {
		t.Fatalf("got %#v, want literal block", d.Content[0])
	}
}

func TestQuotedLiteralBlock(t *testing.T) {
	d := ParseDocument("Code::\n\n> one\n> two\n")
	lit, ok := d.Content[1].(*doc.LiteralBlock)
	if !ok {
		t.Fatalf("second block = %#v, want literal block", d.Content[1])
	}
	if lit.Content != "> one\n> two" {
		t.Errorf("quoted literal = %q", lit.Content)
	}
}

func TestUnderlinedHeader(t *testing.T) {
	d := ParseDocument("My Header\n=========\n")
	header, ok := d.Content[0].(*doc.DecoratedHeader)
	if !ok {
		t.Fatalf("got %#v, want decorated header", d.Content[0])
	}
	if header.Decoration.Char != '=' || header.Decoration.Overline {
		t.Errorf("decoration = %#v", header.Decoration)
	}
	if got, want := header.Options.ID, "my-header"; got != want {
		t.Errorf("id = %q, want %q", got, want)
	}
}

func TestOverlinedHeader(t *testing.T) {
	d := ParseDocument("#########\n  Title\n#########\n")
	header, ok := d.Content[0].(*doc.DecoratedHeader)
	if !ok {
		t.Fatalf("got %#v, want decorated header", d.Content[0])
	}
	if header.Decoration.Char != '#' || !header.Decoration.Overline {
		t.Errorf("decoration = %#v", header.Decoration)
	}
	if got := doc.TextOf(header); got != "Title" {
		t.Errorf("text = %q", got)
	}
}

func TestShortUnderlineIsNoHeader(t *testing.T) {
	d := ParseDocument("A long title\n==\n")
	if _, ok := d.Content[0].(*doc.DecoratedHeader); ok {
		t.Fatal("short underline must not form a header")
	}
}

func TestTransition(t *testing.T) {
	d := ParseDocument("before\n\n----\n\nafter\n")
	if len(d.Content) != 3 {
		t.Fatalf("got %d blocks, want 3", len(d.Content))
	}
	if _, ok := d.Content[1].(*doc.Transition); !ok {
		t.Fatalf("middle block = %#v, want rule", d.Content[1])
	}
}

func TestBulletListNested(t *testing.T) {
	d := ParseDocument("- outer\n\n  - inner\n")
	list, ok := d.Content[0].(*doc.BulletList)
	if !ok {
		t.Fatalf("got %#v, want bullet list", d.Content[0])
	}
	if len(list.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(list.Items))
	}
	var nested *doc.BulletList
	doc.Visit(list.Items[0], func(e doc.Element) {
		if l, ok := e.(*doc.BulletList); ok {
			nested = l
		}
	})
	if nested == nil {
		t.Fatal("inner list was not parsed")
	}
}

func TestEnumListStyles(t *testing.T) {
	tests := []struct {
		src   string
		style doc.EnumStyle
		start int
	}{
		{"1. one\n2. two\n", doc.Arabic, 1},
		{"a) alpha\nb) beta\n", doc.LowerAlpha, 1},
		{"ii. two\niii. three\n", doc.LowerRoman, 2},
		{"#. auto\n#. matic\n", doc.Arabic, 1},
	}
	for _, tt := range tests {
		d := ParseDocument(tt.src)
		list, ok := d.Content[0].(*doc.EnumList)
		if !ok {
			t.Fatalf("%q: got %#v, want enum list", tt.src, d.Content[0])
		}
		if list.Format.Style != tt.style {
			t.Errorf("%q: style = %v, want %v", tt.src, list.Format.Style, tt.style)
		}
		if list.Start != tt.start {
			t.Errorf("%q: start = %d, want %d", tt.src, list.Start, tt.start)
		}
		if len(list.Items) != 2 {
			t.Errorf("%q: got %d items, want 2", tt.src, len(list.Items))
		}
	}
}

func TestDefinitionList(t *testing.T) {
	d := ParseDocument("term\n    its definition\n")
	list, ok := d.Content[0].(*doc.DefinitionList)
	if !ok {
		t.Fatalf("got %#v, want definition list", d.Content[0])
	}
	if len(list.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(list.Items))
	}
	item := list.Items[0]
	if got := flattenText(item.Term); got != "term" {
		t.Errorf("term = %q", got)
	}
	if got := doc.TextOf(&doc.Document{Content: item.Definition}); got != "its definition" {
		t.Errorf("definition = %q", got)
	}
}

func TestBlockQuoteWithAttribution(t *testing.T) {
	d := ParseDocument("    To be or not to be.\n\n    -- Shakespeare\n")
	quote, ok := d.Content[0].(*doc.QuotedBlock)
	if !ok {
		t.Fatalf("got %#v, want quoted block", d.Content[0])
	}
	if got := flattenText(quote.Attribution); got != "Shakespeare" {
		t.Errorf("attribution = %q", got)
	}
	if got := doc.TextOf(&doc.Document{Content: quote.Content}); got != "To be or not to be." {
		t.Errorf("quote body = %q", got)
	}
}

func TestDoctestBlock(t *testing.T) {
	d := ParseDocument(">>> 1 + 1\n2\n")
	block, ok := d.Content[0].(*doc.DoctestBlock)
	if !ok {
		t.Fatalf("got %#v, want doctest block", d.Content[0])
	}
	if block.Content != ">>> 1 + 1\n2" {
		t.Errorf("content = %q", block.Content)
	}
}

func TestLineBlock(t *testing.T) {
	d := ParseDocument("| first line\n| second line\n")
	block, ok := d.Content[0].(*doc.LineBlock)
	if !ok {
		t.Fatalf("got %#v, want line block", d.Content[0])
	}
	if len(block.Content) != 2 {
		t.Fatalf("got %d lines, want 2", len(block.Content))
	}
}

func TestFootnoteAndCitationDefinitions(t *testing.T) {
	d := ParseDocument(".. [1] numbered note\n\n.. [#] auto note\n\n.. [CIT2002] a citation\n")
	if len(d.Content) != 3 {
		t.Fatalf("got %d blocks, want 3", len(d.Content))
	}
	fn1, ok := d.Content[0].(*doc.FootnoteDefinition)
	if !ok {
		t.Fatalf("first block = %#v, want footnote definition", d.Content[0])
	}
	if label, ok := fn1.Label.(doc.NumericLabel); !ok || label.Number != 1 {
		t.Errorf("label = %#v, want numeric 1", fn1.Label)
	}
	fn2, ok := d.Content[1].(*doc.FootnoteDefinition)
	if !ok {
		t.Fatalf("second block = %#v, want footnote definition", d.Content[1])
	}
	if _, ok := fn2.Label.(doc.Autonumber); !ok {
		t.Errorf("label = %#v, want autonumber", fn2.Label)
	}
	cit, ok := d.Content[2].(*doc.Citation)
	if !ok {
		t.Fatalf("third block = %#v, want citation", d.Content[2])
	}
	if cit.Label != "cit2002" {
		t.Errorf("citation label = %q", cit.Label)
	}
}

func TestSubstitutionDefinitions(t *testing.T) {
	d := ParseDocument(".. |name| replace:: The Project\n\n.. |logo| image:: logo.png\n")
	def1, ok := d.Content[0].(*doc.SubstitutionDefinition)
	if !ok {
		t.Fatalf("first block = %#v, want substitution definition", d.Content[0])
	}
	if text, ok := def1.Content.(*doc.Text); !ok || text.Content != "The Project" {
		t.Errorf("replacement = %#v", def1.Content)
	}
	def2, ok := d.Content[1].(*doc.SubstitutionDefinition)
	if !ok {
		t.Fatalf("second block = %#v, want substitution definition", d.Content[1])
	}
	if img, ok := def2.Content.(*doc.Image); !ok || img.URL != "logo.png" {
		t.Errorf("replacement = %#v", def2.Content)
	}
}

func TestLinkTargets(t *testing.T) {
	d := ParseDocument(".. _docs: https://example.com\n\n.. _here:\n\nparagraph\n")
	def, ok := d.Content[0].(*doc.ExternalLinkDefinition)
	if !ok {
		t.Fatalf("first block = %#v, want external link definition", d.Content[0])
	}
	if def.ID != "docs" || def.URL != "https://example.com" {
		t.Errorf("definition = %#v", def)
	}
	if _, ok := d.Content[1].(*doc.InternalLinkTarget); !ok {
		t.Fatalf("second block = %#v, want internal target", d.Content[1])
	}
}

func TestTargetFolding(t *testing.T) {
	d := ParseDocument(".. _one:\n.. _two: https://example.com\n")
	if len(d.Content) != 1 {
		t.Fatalf("got %d blocks, want 1 (target folded into definition)", len(d.Content))
	}
	def, ok := d.Content[0].(*doc.ExternalLinkDefinition)
	if !ok {
		t.Fatalf("got %#v, want external link definition", d.Content[0])
	}
	if def.ID != "one" || def.URL != "https://example.com" {
		t.Errorf("folded definition = %#v", def)
	}
}

func TestTargetChainBecomesAlias(t *testing.T) {
	d := ParseDocument(".. _alias:\n.. _real:\n\ncontent\n")
	alias, ok := d.Content[0].(*doc.LinkAlias)
	if !ok {
		t.Fatalf("first block = %#v, want alias", d.Content[0])
	}
	if alias.ID != "alias" || alias.Target != "real" {
		t.Errorf("alias = %#v", alias)
	}
}

func TestAnonymousTargets(t *testing.T) {
	d := ParseDocument("__ https://first.example\n\n__ https://second.example\n")
	first, ok := d.Content[0].(*doc.ExternalLinkDefinition)
	if !ok {
		t.Fatalf("first block = %#v, want external link definition", d.Content[0])
	}
	second, ok := d.Content[1].(*doc.ExternalLinkDefinition)
	if !ok {
		t.Fatalf("second block = %#v, want external link definition", d.Content[1])
	}
	if first.ID == second.ID {
		t.Errorf("anonymous targets share id %q", first.ID)
	}
}

func TestComment(t *testing.T) {
	d := ParseDocument(".. just a comment\n   with a body line\n")
	comment, ok := d.Content[0].(*doc.Comment)
	if !ok {
		t.Fatalf("got %#v, want comment", d.Content[0])
	}
	if comment.Content != "just a comment\nwith a body line" {
		t.Errorf("content = %q", comment.Content)
	}
}

func TestParsingIsTotal(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"   \n\t\n",
		"*",
		"``",
		".. [",
		".. |",
		".. _",
		"| ",
		">>> ",
		"====\n",
		"a\n=\nb\n-\n",
		"::",
	}
	for _, src := range inputs {
		d := ParseDocument(src)
		if d == nil {
			t.Fatalf("ParseDocument(%q) returned nil", src)
		}
	}
}
