// Package inline implements the generic span parsing engine shared by
// every markup dialect. The engine scans raw text and hands off to
// dialect-supplied parsers keyed by trigger character; everything else is
// plain text. Inline parsing never fails outright: a trigger whose parser
// does not match degrades to literal text.
package inline

import (
	"strings"

	"github.com/Hocdoc/sandoc/internal/doc"
)

// SpanParser attempts to parse one span from src. pos points at the
// first character after the trigger character. On success it returns the
// parsed span and the position of the first unconsumed character; on
// failure ok is false and the caller treats the trigger as literal text.
type SpanParser func(src string, pos int) (span doc.Span, next int, ok bool)

// Map is the dispatch table from trigger character to span parser.
type Map map[byte]SpanParser

// Parse scans src as runs of plain text terminated by any trigger
// character present in the dispatch map. Every byte of input ends up in
// the result, either inside a recognized span or as literal text.
// Adjacent text runs are merged into a single Text node.
func Parse(src string, m Map) []doc.Span {
	var spans []doc.Span
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			spans = append(spans, &doc.Text{Content: text.String()})
			text.Reset()
		}
	}

	pos := 0
	for pos < len(src) {
		c := src[pos]
		parser, triggered := m[c]
		if !triggered {
			text.WriteByte(c)
			pos++
			continue
		}
		span, next, ok := parser(src, pos+1)
		if !ok {
			// Malformed markup degrades to literal text.
			text.WriteByte(c)
			pos++
			continue
		}
		flush()
		if span != nil {
			spans = append(spans, span)
		}
		pos = next
	}
	flush()

	return mergeText(spans)
}

// mergeText collapses adjacent plain Text nodes into one, keeping the
// tree shallow and stable for equality comparison.
func mergeText(spans []doc.Span) []doc.Span {
	if len(spans) < 2 {
		return spans
	}
	out := spans[:0]
	for _, s := range spans {
		if txt, ok := s.(*doc.Text); ok && len(out) > 0 {
			if prev, ok := out[len(out)-1].(*doc.Text); ok && prev.Options.IsEmpty() && txt.Options.IsEmpty() {
				out[len(out)-1] = &doc.Text{Content: prev.Content + txt.Content}
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

// Until scans forward from pos for the delimiter, returning the enclosed
// text and the position after the delimiter. Used by dialect span
// parsers for single-delimiter constructs. Fails when the delimiter is
// absent or the enclosed text would be empty.
func Until(src string, pos int, delim string) (content string, next int, ok bool) {
	idx := strings.Index(src[pos:], delim)
	if idx <= 0 {
		return "", pos, false
	}
	return src[pos : pos+idx], pos + idx + len(delim), true
}
