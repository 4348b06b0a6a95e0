package rst

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Hocdoc/sandoc/internal/doc"
	"github.com/Hocdoc/sandoc/internal/inline"
)

// DefaultTextRole is the role applied to interpreted text without an
// explicit role prefix or suffix.
const DefaultTextRole = "title-reference"

// spanMap builds the dispatch table for reStructuredText inline markup.
// The parsers are closures over the parser instance because anonymous
// references are matched to anonymous targets by document order.
func (p *parser) spanMap() inline.Map {
	return inline.Map{
		'*':  p.parseEmphasisOrStrong,
		'`':  p.parseLiteralOrPhrase,
		'|':  p.parseSubstitutionRef,
		'[':  p.parseFootnoteOrCitationRef,
		'_':  p.parseInlineTarget,
		':':  p.parseRole,
		'\\': parseEscape,
	}
}

// parseEmphasisOrStrong handles *emphasized* and **strong** text.
// pos points after the first star.
func (p *parser) parseEmphasisOrStrong(src string, pos int) (doc.Span, int, bool) {
	if pos < len(src) && src[pos] == '*' {
		content, next, ok := inline.Until(src, pos+1, "**")
		if !ok || badInlineContent(content) {
			return nil, pos, false
		}
		return &doc.Strong{Content: []doc.Span{&doc.Text{Content: content}}}, next, true
	}
	content, next, ok := inline.Until(src, pos, "*")
	if !ok || badInlineContent(content) {
		return nil, pos, false
	}
	return &doc.Emphasized{Content: []doc.Span{&doc.Text{Content: content}}}, next, true
}

// parseLiteralOrPhrase handles double-backtick literals, `phrase references`_,
// anonymous `references`__, embedded targets `text <url>`_ and
// default-role interpreted text.
func (p *parser) parseLiteralOrPhrase(src string, pos int) (doc.Span, int, bool) {
	if pos < len(src) && src[pos] == '`' {
		content, next, ok := inline.Until(src, pos+1, "``")
		if !ok {
			return nil, pos, false
		}
		return &doc.Literal{Content: content}, next, true
	}
	content, next, ok := inline.Until(src, pos, "`")
	if !ok || badInlineContent(content) {
		return nil, pos, false
	}
	underscores := 0
	for next+underscores < len(src) && src[next+underscores] == '_' && underscores < 2 {
		underscores++
	}
	switch underscores {
	case 0:
		return &doc.InterpretedText{
			Role: DefaultTextRole,
			Text: content,
			Src:  "`" + content + "`",
		}, next, true
	case 1:
		if text, url, ok := splitEmbeddedTarget(content); ok {
			return &doc.ExternalLink{
				Content: []doc.Span{&doc.Text{Content: text}},
				URL:     url,
			}, next + 1, true
		}
		return &doc.LinkReference{
			Content: []doc.Span{&doc.Text{Content: content}},
			ID:      NormalizeID(content),
			Src:     "`" + content + "`_",
		}, next + 1, true
	default:
		return &doc.LinkReference{
			Content: []doc.Span{&doc.Text{Content: content}},
			ID:      p.nextAnonymousRefID(),
			Src:     "`" + content + "`__",
		}, next + 2, true
	}
}

// parseSubstitutionRef handles |name| substitution references. A
// trailing underscore pair combining substitution and link reference is
// consumed but the link part is ignored.
func (p *parser) parseSubstitutionRef(src string, pos int) (doc.Span, int, bool) {
	content, next, ok := inline.Until(src, pos, "|")
	if !ok || badInlineContent(content) || strings.Contains(content, "\n") {
		return nil, pos, false
	}
	for next < len(src) && src[next] == '_' {
		next++
	}
	return &doc.SubstitutionReference{
		ID:  NormalizeID(content),
		Src: "|" + content + "|",
	}, next, true
}

// parseFootnoteOrCitationRef handles [1]_, [#]_, [#name]_, [*]_ and
// [LABEL]_ references. The trailing underscore is mandatory.
func (p *parser) parseFootnoteOrCitationRef(src string, pos int) (doc.Span, int, bool) {
	content, next, ok := inline.Until(src, pos, "]")
	if !ok || badInlineContent(content) || strings.ContainsAny(content, " \n") {
		return nil, pos, false
	}
	if next >= len(src) || src[next] != '_' {
		return nil, pos, false
	}
	next++
	source := "[" + content + "]_"
	if label, ok := parseFootnoteLabel(content); ok {
		return &doc.FootnoteReference{Label: label, Src: source}, next, true
	}
	return &doc.CitationReference{Label: NormalizeID(content), Src: source}, next, true
}

// parseInlineTarget handles _`inline internal targets`.
func (p *parser) parseInlineTarget(src string, pos int) (doc.Span, int, bool) {
	if pos >= len(src) || src[pos] != '`' {
		return nil, pos, false
	}
	content, next, ok := inline.Until(src, pos+1, "`")
	if !ok || badInlineContent(content) {
		return nil, pos, false
	}
	return &doc.InternalLinkTarget{
		ID:      NormalizeID(content),
		Content: []doc.Span{&doc.Text{Content: content}},
	}, next, true
}

// parseRole handles :role:`interpreted text` with a role prefix.
func (p *parser) parseRole(src string, pos int) (doc.Span, int, bool) {
	role, next, ok := inline.Until(src, pos, ":")
	if !ok || badRoleName(role) {
		return nil, pos, false
	}
	if next >= len(src) || src[next] != '`' {
		return nil, pos, false
	}
	content, next, ok := inline.Until(src, next+1, "`")
	if !ok || badInlineContent(content) {
		return nil, pos, false
	}
	return &doc.InterpretedText{
		Role: role,
		Text: content,
		Src:  fmt.Sprintf(":%s:`%s`", role, content),
	}, next, true
}

// parseEscape handles backslash escapes: the escaped character is
// emitted literally, a backslash before a newline becomes a hard break.
func parseEscape(src string, pos int) (doc.Span, int, bool) {
	if pos >= len(src) {
		return nil, pos, false
	}
	if src[pos] == '\n' {
		return &doc.LineBreak{}, pos + 1, true
	}
	return &doc.Text{Content: string(src[pos])}, pos + 1, true
}

// parseFootnoteLabel classifies a footnote label; ok is false for
// citation labels.
func parseFootnoteLabel(content string) (doc.FootnoteLabel, bool) {
	switch {
	case content == "#":
		return doc.Autonumber{}, true
	case content == "*":
		return doc.Autosymbol{}, true
	case strings.HasPrefix(content, "#"):
		return doc.AutonumberLabel{ID: NormalizeID(content[1:])}, true
	}
	if n, err := strconv.Atoi(content); err == nil && n > 0 {
		return doc.NumericLabel{Number: n}, true
	}
	return nil, false
}

// splitEmbeddedTarget splits `text <url>` content into text and url.
func splitEmbeddedTarget(content string) (text, url string, ok bool) {
	if !strings.HasSuffix(content, ">") {
		return "", "", false
	}
	open := strings.LastIndex(content, "<")
	if open <= 0 {
		return "", "", false
	}
	text = strings.TrimRight(content[:open], " ")
	url = content[open+1 : len(content)-1]
	if text == "" || url == "" {
		return "", "", false
	}
	return text, url, true
}

// badInlineContent rejects content that inline markup rules disallow:
// empty strings and leading/trailing whitespace.
func badInlineContent(content string) bool {
	return content == "" ||
		strings.HasPrefix(content, " ") || strings.HasSuffix(content, " ")
}

func badRoleName(role string) bool {
	if role == "" {
		return true
	}
	for i := 0; i < len(role); i++ {
		c := role[i]
		if !isAlphanumeric(c) && c != '-' && c != '_' && c != '.' {
			return true
		}
	}
	return false
}

func isAlphanumeric(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// NormalizeID derives a stable identifier from arbitrary text:
// lower-cased, non-alphanumeric runs replaced by a single hyphen,
// leading and trailing hyphens trimmed.
func NormalizeID(text string) string {
	var b strings.Builder
	pendingHyphen := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'A' && c <= 'Z':
			c += 'a' - 'A'
			fallthrough
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteByte(c)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}
