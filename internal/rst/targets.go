package rst

import (
	"strings"

	"github.com/Hocdoc/sandoc/internal/doc"
)

func isExplicitMarkup(line string) bool {
	return line == ".." || strings.HasPrefix(line, ".. ")
}

// parseExplicitMarkup dispatches on the content after the `.. ` marker:
// footnote and citation definitions, link targets, substitution
// definitions, the minimal directive set, and comments as the fallback.
// A nil block means the construct leaves nothing in the tree.
func (p *parser) parseExplicitMarkup(lines []string, i int) (doc.Block, int) {
	rest := strings.TrimPrefix(lines[i], "..")
	rest = strings.TrimPrefix(rest, " ")

	body, next := takeExplicitBody(lines, i+1)

	switch {
	case strings.HasPrefix(rest, "["):
		if block, ok := p.parseFootnoteOrCitation(rest, body); ok {
			return block, next
		}
	case strings.HasPrefix(rest, "|"):
		if block, ok := p.parseSubstitutionDefinition(rest); ok {
			return block, next
		}
	case strings.HasPrefix(rest, "__:") || rest == "__":
		url := strings.TrimSpace(strings.TrimPrefix(rest, "__:"))
		url += strings.Join(trimIndents(body), "")
		if url == "" {
			return &doc.InternalLinkTarget{ID: p.nextAnonymousTargetID()}, next
		}
		return &doc.ExternalLinkDefinition{ID: p.nextAnonymousTargetID(), URL: url}, next
	case strings.HasPrefix(rest, "_"):
		if block, ok := p.parseLinkTarget(rest, body); ok {
			return block, next
		}
	case strings.HasPrefix(rest, "image::"):
		uri := strings.TrimSpace(strings.TrimPrefix(rest, "image::"))
		if uri != "" {
			return &doc.SpanSequence{Content: []doc.Span{&doc.Image{URL: uri, AltText: uri}}}, next
		}
	}

	// Everything else is a comment.
	text := rest
	if len(body) > 0 {
		text = strings.TrimRight(text+"\n"+strings.Join(dedent(body), "\n"), "\n")
	}
	return &doc.Comment{Content: text}, next
}

// takeExplicitBody collects the indented continuation lines of an
// explicit markup block.
func takeExplicitBody(lines []string, i int) ([]string, int) {
	return takeIndented(lines, i)
}

// parseFootnoteOrCitation handles `.. [label] content`. Numeric and
// auto labels produce footnote definitions; other labels produce
// citations.
func (p *parser) parseFootnoteOrCitation(rest string, body []string) (doc.Block, bool) {
	end := strings.Index(rest, "]")
	if end <= 1 {
		return nil, false
	}
	labelText := rest[1:end]
	first := strings.TrimSpace(rest[end+1:])

	content := dedent(body)
	if first != "" {
		content = append([]string{first}, content...)
	}
	blocks := p.parseBlocks(content)

	if label, ok := parseFootnoteLabel(labelText); ok {
		return &doc.FootnoteDefinition{Label: label, Content: blocks}, true
	}
	if NormalizeID(labelText) == "" {
		return nil, false
	}
	return &doc.Citation{Label: NormalizeID(labelText), Content: blocks}, true
}

// parseSubstitutionDefinition handles `.. |name| replace:: text` and
// `.. |name| image:: uri`.
func (p *parser) parseSubstitutionDefinition(rest string) (doc.Block, bool) {
	end := strings.Index(rest[1:], "|")
	if end <= 0 {
		return nil, false
	}
	id := NormalizeID(rest[1 : 1+end])
	directive := strings.TrimSpace(rest[end+2:])

	switch {
	case strings.HasPrefix(directive, "replace::"):
		text := strings.TrimSpace(strings.TrimPrefix(directive, "replace::"))
		return &doc.SubstitutionDefinition{ID: id, Content: &doc.Text{Content: text}}, true
	case strings.HasPrefix(directive, "image::"):
		uri := strings.TrimSpace(strings.TrimPrefix(directive, "image::"))
		return &doc.SubstitutionDefinition{ID: id, Content: &doc.Image{URL: uri, AltText: id}}, true
	}
	return nil, false
}

// parseLinkTarget handles `.. _name: url`, `.. _name:` internal targets
// and `.. _name: other_` indirect targets.
func (p *parser) parseLinkTarget(rest string, body []string) (doc.Block, bool) {
	rest = rest[1:] // drop leading underscore
	var name, remainder string
	if strings.HasPrefix(rest, "`") {
		end := strings.Index(rest[1:], "`")
		if end < 0 {
			return nil, false
		}
		name = rest[1 : 1+end]
		remainder = rest[end+2:]
	} else {
		colon := strings.Index(rest, ":")
		if colon < 0 {
			return nil, false
		}
		name = rest[:colon]
		remainder = rest[colon:]
	}
	if !strings.HasPrefix(remainder, ":") {
		return nil, false
	}
	id := NormalizeID(name)
	if id == "" {
		return nil, false
	}
	target := strings.TrimSpace(remainder[1:])
	// URLs may continue on indented lines.
	target += strings.Join(trimIndents(body), "")

	switch {
	case target == "":
		return &doc.InternalLinkTarget{ID: id}, true
	case strings.HasSuffix(target, "_") && !strings.Contains(target, ":"):
		alias := strings.TrimSuffix(target, "_")
		alias = strings.Trim(alias, "`")
		return &doc.LinkAlias{ID: id, Target: NormalizeID(alias)}, true
	default:
		return &doc.ExternalLinkDefinition{ID: id, URL: target}, true
	}
}
