package markdown

import (
	"strings"

	"github.com/Hocdoc/sandoc/internal/doc"
	"github.com/Hocdoc/sandoc/internal/inline"
	"github.com/Hocdoc/sandoc/internal/rst"
)

// spanMap builds the dispatch table for Markdown inline markup.
func (p *parser) spanMap() inline.Map {
	return inline.Map{
		'*':  p.parseStarDelimited,
		'_':  p.parseUnderscoreDelimited,
		'`':  parseCodeSpan,
		'[':  p.parseLink,
		'!':  p.parseImage,
		'<':  parseAutolink,
		'\\': parseEscape,
	}
}

// parseStarDelimited handles *emphasis* and **strong**. pos points
// after the first star.
func (p *parser) parseStarDelimited(src string, pos int) (doc.Span, int, bool) {
	return p.parseDelimited(src, pos, '*')
}

func (p *parser) parseUnderscoreDelimited(src string, pos int) (doc.Span, int, bool) {
	return p.parseDelimited(src, pos, '_')
}

func (p *parser) parseDelimited(src string, pos int, delim byte) (doc.Span, int, bool) {
	d := string(delim)
	if pos < len(src) && src[pos] == delim {
		content, next, ok := inline.Until(src, pos+1, d+d)
		if !ok || badDelimContent(content) {
			return nil, pos, false
		}
		return &doc.Strong{Content: inline.Parse(content, p.spans)}, next, true
	}
	content, next, ok := inline.Until(src, pos, d)
	if !ok || badDelimContent(content) {
		return nil, pos, false
	}
	return &doc.Emphasized{Content: inline.Parse(content, p.spans)}, next, true
}

// parseCodeSpan handles single- and double-backtick code spans; the
// double form may contain literal backticks.
func parseCodeSpan(src string, pos int) (doc.Span, int, bool) {
	if pos < len(src) && src[pos] == '`' {
		content, next, ok := inline.Until(src, pos+1, "``")
		if !ok {
			return nil, pos, false
		}
		return &doc.Literal{Content: strings.TrimSpace(content)}, next, true
	}
	content, next, ok := inline.Until(src, pos, "`")
	if !ok {
		return nil, pos, false
	}
	return &doc.Literal{Content: content}, next, true
}

// parseLink handles [text](url "title"), [text][id] reference links and
// [text] shortcut references. pos points after the opening bracket.
func (p *parser) parseLink(src string, pos int) (doc.Span, int, bool) {
	text, next, ok := inline.Until(src, pos, "]")
	if !ok || text == "" {
		return nil, pos, false
	}
	content := inline.Parse(text, p.spans)

	if url, title, after, ok := parseLinkDestination(src, next); ok {
		return &doc.ExternalLink{Content: content, URL: url, Title: title}, after, true
	}
	if id, after, ok := parseReferenceLabel(src, next); ok {
		if id == "" {
			id = rst.NormalizeID(text)
		}
		return &doc.LinkReference{
			Content: content,
			ID:      id,
			Src:     src[pos-1 : after],
		}, after, true
	}
	// Shortcut reference: [text] with nothing following.
	return &doc.LinkReference{
		Content: content,
		ID:      rst.NormalizeID(text),
		Src:     src[pos-1 : next],
	}, next, true
}

// parseImage handles ![alt](url "title") and ![alt][id]. pos points
// after the bang; the bracket must follow immediately.
func (p *parser) parseImage(src string, pos int) (doc.Span, int, bool) {
	if pos >= len(src) || src[pos] != '[' {
		return nil, pos, false
	}
	alt, next, ok := inline.Until(src, pos+1, "]")
	if !ok {
		return nil, pos, false
	}
	if url, title, after, ok := parseLinkDestination(src, next); ok {
		return &doc.Image{AltText: alt, URL: url, Title: title}, after, true
	}
	if id, after, ok := parseReferenceLabel(src, next); ok {
		if id == "" {
			id = rst.NormalizeID(alt)
		}
		return &doc.ImageReference{
			AltText: alt,
			ID:      id,
			Src:     src[pos-1 : after],
		}, after, true
	}
	return &doc.ImageReference{
		AltText: alt,
		ID:      rst.NormalizeID(alt),
		Src:     src[pos-1 : next],
	}, next, true
}

// parseLinkDestination consumes `(url "title")` at pos.
func parseLinkDestination(src string, pos int) (url, title string, next int, ok bool) {
	if pos >= len(src) || src[pos] != '(' {
		return "", "", pos, false
	}
	inner, next, ok := inline.Until(src, pos+1, ")")
	if !ok {
		return "", "", pos, false
	}
	url = strings.TrimSpace(inner)
	if quote := strings.Index(url, ` "`); quote >= 0 && strings.HasSuffix(url, `"`) {
		title = url[quote+2 : len(url)-1]
		url = strings.TrimSpace(url[:quote])
	}
	if url == "" {
		return "", "", pos, false
	}
	return url, title, next, true
}

// parseReferenceLabel consumes `[id]` at pos. An empty label is the
// collapsed form `[text][]`.
func parseReferenceLabel(src string, pos int) (id string, next int, ok bool) {
	if pos >= len(src) || src[pos] != '[' {
		return "", pos, false
	}
	if pos+1 < len(src) && src[pos+1] == ']' {
		return "", pos + 2, true
	}
	inner, next, ok := inline.Until(src, pos+1, "]")
	if !ok {
		return "", pos, false
	}
	return rst.NormalizeID(inner), next, true
}

// parseAutolink handles <http://url> and <user@host> autolinks.
func parseAutolink(src string, pos int) (doc.Span, int, bool) {
	inner, next, ok := inline.Until(src, pos, ">")
	if !ok || strings.ContainsAny(inner, " \n") {
		return nil, pos, false
	}
	switch {
	case strings.Contains(inner, "://"):
		return &doc.ExternalLink{
			Content: []doc.Span{&doc.Text{Content: inner}},
			URL:     inner,
		}, next, true
	case strings.Contains(inner, "@"):
		return &doc.ExternalLink{
			Content: []doc.Span{&doc.Text{Content: inner}},
			URL:     "mailto:" + inner,
		}, next, true
	}
	return nil, pos, false
}

// parseEscape emits the escaped character literally; a backslash before
// a newline is a hard break.
func parseEscape(src string, pos int) (doc.Span, int, bool) {
	if pos >= len(src) {
		return nil, pos, false
	}
	if src[pos] == '\n' {
		return &doc.LineBreak{}, pos + 1, true
	}
	return &doc.Text{Content: string(src[pos])}, pos + 1, true
}

func badDelimContent(content string) bool {
	return content == "" ||
		strings.HasPrefix(content, " ") || strings.HasSuffix(content, " ")
}
