package doc

import (
	"testing"
)

func sampleTree() *Document {
	return &Document{
		Content: []Block{
			&Paragraph{Content: []Span{
				&Text{Content: "hello "},
				&Emphasized{Content: []Span{&Text{Content: "world"}}},
			}},
			&QuotedBlock{
				Content:     []Block{&Paragraph{Content: []Span{&Text{Content: "quoted"}}}},
				Attribution: []Span{&Text{Content: "author"}},
			},
			&BulletList{
				Bullet: "*",
				Items: []*BulletListItem{
					{Content: []Block{&Paragraph{Content: []Span{&Text{Content: "item one"}}}}},
					{Content: []Block{&Paragraph{Content: []Span{&Text{Content: "item two"}}}}},
				},
			},
		},
	}
}

func TestRewriteReplacesNestedSpans(t *testing.T) {
	rewritten := RewriteDocument(sampleTree(), func(e Element) (Element, Action) {
		if txt, ok := e.(*Text); ok && txt.Content == "world" {
			return &Text{Content: "tree"}, Replaced
		}
		return e, Unchanged
	})

	found := Select(rewritten, func(e Element) bool {
		txt, ok := e.(*Text)
		return ok && txt.Content == "tree"
	})
	if len(found) != 1 {
		t.Fatalf("expected 1 replaced text node, found %d", len(found))
	}

	// The input tree must be untouched.
	original := sampleTree()
	leftover := Select(original, func(e Element) bool {
		txt, ok := e.(*Text)
		return ok && txt.Content == "world"
	})
	if len(leftover) != 1 {
		t.Errorf("original tree no longer contains the source node")
	}
}

func TestRewriteRemovesBlocks(t *testing.T) {
	rewritten := RewriteDocument(sampleTree(), func(e Element) (Element, Action) {
		if _, ok := e.(*QuotedBlock); ok {
			return nil, Removed
		}
		return e, Unchanged
	})
	if len(rewritten.Content) != 2 {
		t.Fatalf("expected 2 top-level blocks after removal, got %d", len(rewritten.Content))
	}
	for _, b := range rewritten.Content {
		if _, ok := b.(*QuotedBlock); ok {
			t.Error("removed block still present")
		}
	}
}

func TestCascadeFirstMatchWins(t *testing.T) {
	first := func(e Element) (Element, Action) {
		if _, ok := e.(*Text); ok {
			return &Text{Content: "first"}, Replaced
		}
		return e, Unchanged
	}
	second := func(e Element) (Element, Action) {
		if _, ok := e.(*Text); ok {
			return &Text{Content: "second"}, Replaced
		}
		return e, Unchanged
	}

	out, action := Cascade(first, second)(&Text{Content: "in"})
	if action != Replaced {
		t.Fatalf("cascade did not match, action = %d", action)
	}
	if out.(*Text).Content != "first" {
		t.Errorf("cascade applied %q, want the first matching rule", out.(*Text).Content)
	}
}

func TestVisitReachesAttributionAndItems(t *testing.T) {
	var texts []string
	Visit(sampleTree(), func(e Element) {
		if txt, ok := e.(*Text); ok {
			texts = append(texts, txt.Content)
		}
	})

	want := []string{"hello ", "world", "quoted", "author", "item one", "item two"}
	if len(texts) != len(want) {
		t.Fatalf("visited %d text nodes (%v), want %d", len(texts), texts, len(want))
	}
	for i, w := range want {
		if texts[i] != w {
			t.Errorf("visit order[%d] = %q, want %q", i, texts[i], w)
		}
	}
}

func TestRewriteTableCells(t *testing.T) {
	table := &Table{
		Body: []*Row{
			{Cells: []*Cell{
				{Type: BodyCell, Content: []Block{&Paragraph{Content: []Span{&Text{Content: "cell"}}}}, ColSpan: 1, RowSpan: 1},
			}},
		},
	}
	out := RewriteBlocks([]Block{table}, func(e Element) (Element, Action) {
		if txt, ok := e.(*Text); ok && txt.Content == "cell" {
			return &Text{Content: "rewritten"}, Replaced
		}
		return e, Unchanged
	})

	got := Select(out[0], func(e Element) bool {
		txt, ok := e.(*Text)
		return ok && txt.Content == "rewritten"
	})
	if len(got) != 1 {
		t.Errorf("table cell content not rewritten")
	}
}
