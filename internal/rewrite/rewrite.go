// Package rewrite implements the second pass over a parsed document
// tree: resolving forward references (substitutions, interpreted-text
// roles, link targets, footnotes, citations) and eliminating every
// temporary node. Unresolved references become typed invalid nodes
// carrying a diagnostic; the pass itself never fails.
package rewrite

import (
	"fmt"

	"github.com/Hocdoc/sandoc/internal/doc"
)

// Apply resolves a raw tree into a render-ready tree. Dialect-supplied
// rules are tried before the generic resolution rules; the first
// matching rule wins. The input tree is left untouched.
func Apply(d *doc.Document, dialectRules ...doc.Rule) *doc.Document {
	ctx := scan(d)
	rules := append(append([]doc.Rule{}, dialectRules...), ctx.genericRules()...)
	return doc.RewriteDocument(d, doc.Cascade(rules...))
}

// footnoteSymbols are assigned to auto-symbol footnotes in order of
// appearance, doubling once the set is exhausted.
var footnoteSymbols = []string{"*", "†", "‡", "§", "¶", "#"}

type footnoteAssignment struct {
	id    string
	label string
	auto  bool
	sym   bool
	name  string
}

// context holds the lookup tables built by the single document scan.
type context struct {
	substitutions map[string]doc.Span
	externals     map[string]*doc.ExternalLinkDefinition
	aliases       map[string]string
	internals     map[string]bool
	citations     map[string]bool
	decorations   []doc.HeaderDecoration

	// footnote assignments in definition order, consumed again in the
	// same order during the rewrite pass
	assignments []footnoteAssignment
	byNumber    map[int]footnoteAssignment
	byName      map[string]footnoteAssignment
	autoQueue   []footnoteAssignment
	symQueue    []footnoteAssignment

	// target-id registry for the uniqueness invariant, threaded through
	// the rewrite pass in document order
	seen map[string]bool
}

// scan walks the raw tree once, building every lookup table the rules
// need: the substitution table, link-target tables, footnote number
// assignment and the first-seen order of header decoration styles.
func scan(d *doc.Document) *context {
	ctx := &context{
		substitutions: map[string]doc.Span{},
		externals:     map[string]*doc.ExternalLinkDefinition{},
		aliases:       map[string]string{},
		internals:     map[string]bool{},
		citations:     map[string]bool{},
		byNumber:      map[int]footnoteAssignment{},
		byName:        map[string]footnoteAssignment{},
		seen:          map[string]bool{},
	}

	var footnotes []*doc.FootnoteDefinition
	doc.Visit(d, func(e doc.Element) {
		switch n := e.(type) {
		case *doc.SubstitutionDefinition:
			if _, dup := ctx.substitutions[n.ID]; !dup {
				ctx.substitutions[n.ID] = n.Content
			}
		case *doc.ExternalLinkDefinition:
			if _, dup := ctx.externals[n.ID]; !dup {
				ctx.externals[n.ID] = n
			}
		case *doc.LinkAlias:
			if _, dup := ctx.aliases[n.ID]; !dup {
				ctx.aliases[n.ID] = n.Target
			}
		case *doc.InternalLinkTarget:
			ctx.internals[n.ID] = true
		case *doc.Citation:
			ctx.citations[n.Label] = true
		case *doc.FootnoteDefinition:
			footnotes = append(footnotes, n)
		case *doc.DecoratedHeader:
			if !containsDecoration(ctx.decorations, n.Decoration) {
				ctx.decorations = append(ctx.decorations, n.Decoration)
			}
		}
	})

	ctx.assignFootnotes(footnotes)
	return ctx
}

func containsDecoration(list []doc.HeaderDecoration, d doc.HeaderDecoration) bool {
	for _, existing := range list {
		if existing == d {
			return true
		}
	}
	return false
}

// assignFootnotes gives every footnote definition its number or symbol:
// explicit numbers are reserved first, auto-numbered definitions then
// take the lowest unused numbers in definition order.
func (ctx *context) assignFootnotes(defs []*doc.FootnoteDefinition) {
	used := map[int]bool{}
	for _, def := range defs {
		if label, ok := def.Label.(doc.NumericLabel); ok {
			used[label.Number] = true
		}
	}

	nextNumber := func() int {
		n := 1
		for used[n] {
			n++
		}
		used[n] = true
		return n
	}
	symbolIndex := 0
	nextSymbol := func() string {
		base := footnoteSymbols[symbolIndex%len(footnoteSymbols)]
		repeat := symbolIndex/len(footnoteSymbols) + 1
		symbolIndex++
		s := ""
		for range repeat {
			s += base
		}
		return s
	}

	for _, def := range defs {
		var a footnoteAssignment
		switch label := def.Label.(type) {
		case doc.NumericLabel:
			a = footnoteAssignment{
				id:    fmt.Sprintf("footnote-%d", label.Number),
				label: fmt.Sprintf("%d", label.Number),
			}
			ctx.byNumber[label.Number] = a
		case doc.Autonumber:
			n := nextNumber()
			a = footnoteAssignment{
				id:    fmt.Sprintf("footnote-%d", n),
				label: fmt.Sprintf("%d", n),
				auto:  true,
			}
			ctx.byNumber[n] = a
			ctx.autoQueue = append(ctx.autoQueue, a)
		case doc.AutonumberLabel:
			n := nextNumber()
			a = footnoteAssignment{
				id:    label.ID,
				label: fmt.Sprintf("%d", n),
				auto:  true,
				name:  label.ID,
			}
			ctx.byNumber[n] = a
			ctx.byName[label.ID] = a
			ctx.autoQueue = append(ctx.autoQueue, a)
		case doc.Autosymbol:
			a = footnoteAssignment{
				id:    fmt.Sprintf("footnote-sym-%d", symbolIndex+1),
				label: nextSymbol(),
				sym:   true,
			}
			ctx.symQueue = append(ctx.symQueue, a)
		}
		ctx.assignments = append(ctx.assignments, a)
	}
}

// genericRules returns the resolution cascade shared by all dialects.
func (ctx *context) genericRules() []doc.Rule {
	return []doc.Rule{
		ctx.uniqueTargetRule,
		ctx.decoratedHeaderRule,
		ctx.substitutionRule,
		ctx.unknownRoleRule,
		ctx.linkReferenceRule,
		ctx.imageReferenceRule,
		ctx.footnoteRule,
		ctx.citationRule,
		dropDefinitionsRule,
	}
}

// uniqueTargetRule enforces the unique-id invariant: a target whose id
// was already claimed earlier in the document degrades to an invalid
// block.
func (ctx *context) uniqueTargetRule(e doc.Element) (doc.Element, doc.Action) {
	target, ok := e.(doc.Target)
	if !ok {
		return e, doc.Unchanged
	}
	id := target.TargetID()
	if _, isSubstitution := e.(*doc.SubstitutionDefinition); isSubstitution {
		// substitutions live in their own namespace
		return e, doc.Unchanged
	}
	if ctx.seen[id] {
		msg := doc.NewSystemMessage(doc.Error, fmt.Sprintf("duplicate target id: %s", id))
		// Span-capable targets must degrade to a span so the invalid
		// node survives in inline position; block rewriting wraps a
		// span replacement rather than dropping it.
		if _, isSpan := e.(doc.Span); isSpan {
			return &doc.InvalidSpan{
				SystemMessage: msg,
				Fallback:      &doc.Text{Content: id},
			}, doc.Replaced
		}
		if _, isBlock := e.(doc.Block); isBlock {
			return &doc.InvalidBlock{
				SystemMessage: msg,
				Fallback:      &doc.Paragraph{Content: []doc.Span{&doc.Text{Content: id}}},
			}, doc.Replaced
		}
		return e, doc.Unchanged
	}
	ctx.seen[id] = true
	return e, doc.Unchanged
}

// decoratedHeaderRule assigns nesting levels by first-seen decoration
// style: the first style anywhere in the document is level 1, the
// second distinct style level 2, and so on.
func (ctx *context) decoratedHeaderRule(e doc.Element) (doc.Element, doc.Action) {
	header, ok := e.(*doc.DecoratedHeader)
	if !ok {
		return e, doc.Unchanged
	}
	level := 1
	for idx, d := range ctx.decorations {
		if d == header.Decoration {
			level = idx + 1
			break
		}
	}
	return &doc.Header{Level: level, Content: header.Content, Options: header.Options}, doc.Replaced
}

func (ctx *context) substitutionRule(e doc.Element) (doc.Element, doc.Action) {
	ref, ok := e.(*doc.SubstitutionReference)
	if !ok {
		return e, doc.Unchanged
	}
	if replacement, found := ctx.substitutions[ref.ID]; found {
		return replacement, doc.Replaced
	}
	return doc.NewInvalidSpan(fmt.Sprintf("unknown substitution id: %s", ref.ID), ref.Src), doc.Replaced
}

// unknownRoleRule catches interpreted text no dialect rule claimed.
func (ctx *context) unknownRoleRule(e doc.Element) (doc.Element, doc.Action) {
	it, ok := e.(*doc.InterpretedText)
	if !ok {
		return e, doc.Unchanged
	}
	return doc.NewInvalidSpan(fmt.Sprintf("unknown text role: %s", it.Role), it.Src), doc.Replaced
}

// resolveAlias follows alias chains with a depth guard against cycles.
func (ctx *context) resolveAlias(id string) string {
	for range 32 {
		target, ok := ctx.aliases[id]
		if !ok {
			return id
		}
		id = target
	}
	return id
}

func (ctx *context) linkReferenceRule(e doc.Element) (doc.Element, doc.Action) {
	ref, ok := e.(*doc.LinkReference)
	if !ok {
		return e, doc.Unchanged
	}
	id := ctx.resolveAlias(ref.ID)
	if def, found := ctx.externals[id]; found {
		return &doc.ExternalLink{Content: ref.Content, URL: def.URL, Title: def.Title}, doc.Replaced
	}
	if ctx.internals[id] {
		return &doc.InternalLink{Content: ref.Content, Ref: id}, doc.Replaced
	}
	return doc.NewInvalidSpan(fmt.Sprintf("unresolved link reference: %s", ref.ID), ref.Src), doc.Replaced
}

func (ctx *context) imageReferenceRule(e doc.Element) (doc.Element, doc.Action) {
	ref, ok := e.(*doc.ImageReference)
	if !ok {
		return e, doc.Unchanged
	}
	if def, found := ctx.externals[ctx.resolveAlias(ref.ID)]; found {
		return &doc.Image{AltText: ref.AltText, URL: def.URL, Title: def.Title}, doc.Replaced
	}
	return doc.NewInvalidSpan(fmt.Sprintf("unresolved image reference: %s", ref.ID), ref.Src), doc.Replaced
}

// footnoteRule handles both sides: definitions become resolved Footnote
// blocks (consuming the precomputed assignments in document order) and
// references become typed links.
func (ctx *context) footnoteRule(e doc.Element) (doc.Element, doc.Action) {
	switch n := e.(type) {
	case *doc.FootnoteDefinition:
		if len(ctx.assignments) == 0 {
			return e, doc.Unchanged
		}
		a := ctx.assignments[0]
		ctx.assignments = ctx.assignments[1:]
		return &doc.Footnote{ID: a.id, Label: a.label, Content: n.Content}, doc.Replaced
	case *doc.FootnoteReference:
		if a, found := ctx.lookupFootnote(n.Label); found {
			return &doc.FootnoteLink{Ref: a.id, Label: a.label}, doc.Replaced
		}
		return doc.NewInvalidSpan("unresolved footnote reference", n.Src), doc.Replaced
	}
	return e, doc.Unchanged
}

// lookupFootnote matches a reference label against the assignment
// tables; auto-numbered and auto-symbol references consume their queues
// in document order.
func (ctx *context) lookupFootnote(label doc.FootnoteLabel) (footnoteAssignment, bool) {
	switch l := label.(type) {
	case doc.NumericLabel:
		a, ok := ctx.byNumber[l.Number]
		return a, ok
	case doc.AutonumberLabel:
		a, ok := ctx.byName[l.ID]
		return a, ok
	case doc.Autonumber:
		if len(ctx.autoQueue) == 0 {
			return footnoteAssignment{}, false
		}
		a := ctx.autoQueue[0]
		ctx.autoQueue = ctx.autoQueue[1:]
		return a, true
	case doc.Autosymbol:
		if len(ctx.symQueue) == 0 {
			return footnoteAssignment{}, false
		}
		a := ctx.symQueue[0]
		ctx.symQueue = ctx.symQueue[1:]
		return a, true
	}
	return footnoteAssignment{}, false
}

func (ctx *context) citationRule(e doc.Element) (doc.Element, doc.Action) {
	ref, ok := e.(*doc.CitationReference)
	if !ok {
		return e, doc.Unchanged
	}
	if ctx.citations[ref.Label] {
		return &doc.CitationLink{Ref: ref.Label, Label: ref.Label}, doc.Replaced
	}
	return doc.NewInvalidSpan(fmt.Sprintf("unresolved citation reference: %s", ref.Label), ref.Src), doc.Replaced
}

// dropDefinitionsRule deletes nodes that are obsolete once resolution
// is done.
func dropDefinitionsRule(e doc.Element) (doc.Element, doc.Action) {
	switch e.(type) {
	case *doc.SubstitutionDefinition, *doc.ExternalLinkDefinition, *doc.LinkAlias:
		return nil, doc.Removed
	}
	return e, doc.Unchanged
}
