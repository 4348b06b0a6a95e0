package rst

import (
	"testing"

	"github.com/Hocdoc/sandoc/internal/doc"
	"github.com/Hocdoc/sandoc/internal/inline"
)

func parseSpans(t *testing.T, src string) []doc.Span {
	t.Helper()
	p := &parser{}
	p.spans = p.spanMap()
	return inline.Parse(src, p.spans)
}

func TestEmphasisStrongLiteral(t *testing.T) {
	spans := parseSpans(t, "*em* **strong** ``lit``")
	if len(spans) != 5 {
		t.Fatalf("got %d spans, want 5", len(spans))
	}
	if _, ok := spans[0].(*doc.Emphasized); !ok {
		t.Errorf("spans[0] = %#v, want emphasized", spans[0])
	}
	if _, ok := spans[2].(*doc.Strong); !ok {
		t.Errorf("spans[2] = %#v, want strong", spans[2])
	}
	lit, ok := spans[4].(*doc.Literal)
	if !ok || lit.Content != "lit" {
		t.Errorf("spans[4] = %#v, want literal %q", spans[4], "lit")
	}
}

func TestDefaultRole(t *testing.T) {
	spans := parseSpans(t, "see `Some Title`")
	it, ok := spans[len(spans)-1].(*doc.InterpretedText)
	if !ok {
		t.Fatalf("got %#v, want interpreted text", spans[len(spans)-1])
	}
	if it.Role != DefaultTextRole || it.Text != "Some Title" {
		t.Errorf("interpreted text = %#v", it)
	}
}

func TestPhraseReference(t *testing.T) {
	spans := parseSpans(t, "`Phrase Ref`_")
	ref, ok := spans[0].(*doc.LinkReference)
	if !ok {
		t.Fatalf("got %#v, want link reference", spans[0])
	}
	if ref.ID != "phrase-ref" {
		t.Errorf("id = %q, want %q", ref.ID, "phrase-ref")
	}
	if ref.Source() != "`Phrase Ref`_" {
		t.Errorf("source = %q", ref.Source())
	}
}

func TestEmbeddedTarget(t *testing.T) {
	spans := parseSpans(t, "`docs <https://example.com>`_")
	link, ok := spans[0].(*doc.ExternalLink)
	if !ok {
		t.Fatalf("got %#v, want external link", spans[0])
	}
	if link.URL != "https://example.com" || doc.TextOf(link) != "docs" {
		t.Errorf("link = %#v", link)
	}
}

func TestAnonymousReferencesGetOrdinalIDs(t *testing.T) {
	p := &parser{}
	p.spans = p.spanMap()
	spans := inline.Parse("`first`__ then `second`__", p.spans)
	var refs []*doc.LinkReference
	for _, s := range spans {
		if r, ok := s.(*doc.LinkReference); ok {
			refs = append(refs, r)
		}
	}
	if len(refs) != 2 {
		t.Fatalf("got %d references, want 2", len(refs))
	}
	if refs[0].ID != "anonymous-target-1" || refs[1].ID != "anonymous-target-2" {
		t.Errorf("ids = %q, %q", refs[0].ID, refs[1].ID)
	}
}

func TestSubstitutionReference(t *testing.T) {
	spans := parseSpans(t, "the |product| name")
	var ref *doc.SubstitutionReference
	for _, s := range spans {
		if r, ok := s.(*doc.SubstitutionReference); ok {
			ref = r
		}
	}
	if ref == nil || ref.ID != "product" {
		t.Fatalf("reference = %#v", ref)
	}
}

func TestFootnoteAndCitationReferences(t *testing.T) {
	tests := []struct {
		src       string
		wantLabel doc.FootnoteLabel
	}{
		{"x [1]_", doc.NumericLabel{Number: 1}},
		{"x [#]_", doc.Autonumber{}},
		{"x [#note]_", doc.AutonumberLabel{ID: "note"}},
		{"x [*]_", doc.Autosymbol{}},
	}
	for _, tt := range tests {
		spans := parseSpans(t, tt.src)
		ref, ok := spans[len(spans)-1].(*doc.FootnoteReference)
		if !ok {
			t.Fatalf("%q: got %#v, want footnote reference", tt.src, spans[len(spans)-1])
		}
		if ref.Label != tt.wantLabel {
			t.Errorf("%q: label = %#v, want %#v", tt.src, ref.Label, tt.wantLabel)
		}
	}

	spans := parseSpans(t, "x [CIT2002]_")
	cit, ok := spans[len(spans)-1].(*doc.CitationReference)
	if !ok {
		t.Fatalf("got %#v, want citation reference", spans[len(spans)-1])
	}
	if cit.Label != "cit2002" {
		t.Errorf("label = %q", cit.Label)
	}
}

func TestFootnoteRefRequiresTrailingUnderscore(t *testing.T) {
	spans := parseSpans(t, "a [1] b")
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	text, ok := spans[0].(*doc.Text)
	if !ok || text.Content != "a [1] b" {
		t.Errorf("got %#v, want literal text", spans[0])
	}
}

func TestInlineInternalTarget(t *testing.T) {
	spans := parseSpans(t, "see _`a target` here")
	var target *doc.InternalLinkTarget
	for _, s := range spans {
		if tgt, ok := s.(*doc.InternalLinkTarget); ok {
			target = tgt
		}
	}
	if target == nil || target.ID != "a-target" {
		t.Fatalf("target = %#v", target)
	}
	if got := doc.TextOf(target); got != "a target" {
		t.Errorf("target text = %q, want the visible text kept", got)
	}
}

func TestExplicitRole(t *testing.T) {
	spans := parseSpans(t, ":superscript:`2`")
	it, ok := spans[0].(*doc.InterpretedText)
	if !ok {
		t.Fatalf("got %#v, want interpreted text", spans[0])
	}
	if it.Role != "superscript" || it.Text != "2" {
		t.Errorf("interpreted text = %#v", it)
	}
}

func TestColonWithoutRoleStaysText(t *testing.T) {
	spans := parseSpans(t, "note: nothing here")
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if got := doc.TextOf(spans[0]); got != "note: nothing here" {
		t.Errorf("text = %q", got)
	}
}

func TestEscapes(t *testing.T) {
	spans := parseSpans(t, `\*literal star\*`)
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if got := doc.TextOf(spans[0]); got != "*literal star*" {
		t.Errorf("text = %q", got)
	}
}

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Simple", "simple"},
		{"Phrase Ref", "phrase-ref"},
		{"  lots -- of ## junk  ", "lots-of-junk"},
		{"already-normal", "already-normal"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := NormalizeID(tt.in); got != tt.want {
			t.Errorf("NormalizeID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
