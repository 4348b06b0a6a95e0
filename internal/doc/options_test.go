package doc

import (
	"reflect"
	"testing"
)

func TestOptionsMergeIdentity(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "empty", opts: NoOptions},
		{name: "id only", opts: Options{ID: "intro"}},
		{name: "styles only", opts: Options{Styles: []string{"wide", "shaded"}}},
		{name: "id and styles", opts: Options{ID: "x", Styles: []string{"a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := tt.opts.Merge(NoOptions)
			right := NoOptions.Merge(tt.opts)
			if left.ID != tt.opts.ID || right.ID != tt.opts.ID {
				t.Errorf("identity merge changed id: left=%q right=%q want %q", left.ID, right.ID, tt.opts.ID)
			}
			if !sameStyles(left.Styles, tt.opts.Styles) || !sameStyles(right.Styles, tt.opts.Styles) {
				t.Errorf("identity merge changed styles: left=%v right=%v want %v", left.Styles, right.Styles, tt.opts.Styles)
			}
		})
	}
}

func TestOptionsMergeIdempotent(t *testing.T) {
	opts := Options{ID: "sec-1", Styles: []string{"a", "b"}}
	merged := opts.Merge(opts)
	if merged.ID != "sec-1" {
		t.Errorf("self-merge id = %q, want %q", merged.ID, "sec-1")
	}
	if !reflect.DeepEqual(merged.Styles, []string{"a", "b"}) {
		t.Errorf("self-merge styles = %v, want deduplicated [a b]", merged.Styles)
	}
}

func TestOptionsMergeRightWins(t *testing.T) {
	left := Options{ID: "old", Styles: []string{"one"}, Fallback: &Text{Content: "left"}}
	right := Options{ID: "new", Styles: []string{"two", "one"}, Fallback: &Text{Content: "right"}}

	merged := left.Merge(right)
	if merged.ID != "new" {
		t.Errorf("merged id = %q, want right operand's %q", merged.ID, "new")
	}
	if fb, ok := merged.Fallback.(*Text); !ok || fb.Content != "right" {
		t.Errorf("merged fallback = %#v, want right operand's fallback", merged.Fallback)
	}
	if !reflect.DeepEqual(merged.Styles, []string{"one", "two"}) {
		t.Errorf("merged styles = %v, want first-seen order [one two]", merged.Styles)
	}
}

func TestOptionsMergeAssociative(t *testing.T) {
	a := Options{ID: "a", Styles: []string{"s1"}}
	b := Options{Styles: []string{"s2", "s1"}}
	c := Options{ID: "c", Styles: []string{"s3"}}

	left := a.Merge(b).Merge(c)
	right := a.Merge(b.Merge(c))
	if left.ID != right.ID || !reflect.DeepEqual(left.Styles, right.Styles) {
		t.Errorf("merge not associative: (a+b)+c=%+v a+(b+c)=%+v", left, right)
	}
}

func sameStyles(a, b []string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}
