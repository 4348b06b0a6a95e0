package rst

import (
	"strconv"
	"strings"

	"github.com/Hocdoc/sandoc/internal/doc"
)

// parseEnumMarker recognizes an enumerated list marker at the start of a
// line: an optional `(` prefix, an enumerator (arabic number, `#`,
// single letter, or roman numeral) and a `.` or `)` suffix, followed by
// a space or end of line. width is the column where item content
// starts.
func parseEnumMarker(line string) (format doc.EnumFormat, start, width int, ok bool) {
	if len(line) == 0 || indentOf(line) > 0 {
		return format, 0, 0, false
	}
	pos := 0
	prefix := ""
	if line[0] == '(' {
		prefix = "("
		pos = 1
	}

	tokenStart := pos
	for pos < len(line) && line[pos] != '.' && line[pos] != ')' {
		pos++
	}
	if pos >= len(line) || pos == tokenStart {
		return format, 0, 0, false
	}
	token := line[tokenStart:pos]
	suffix := string(line[pos])
	if prefix == "(" && suffix != ")" {
		return format, 0, 0, false
	}
	pos++
	if pos < len(line) && line[pos] != ' ' {
		return format, 0, 0, false
	}
	for pos < len(line) && line[pos] == ' ' {
		pos++
	}

	style, number, valid := classifyEnumerator(token)
	if !valid {
		return format, 0, 0, false
	}
	return doc.EnumFormat{Style: style, Prefix: prefix, Suffix: suffix}, number, pos, true
}

// classifyEnumerator determines the numbering style and the start value
// of an enumerator token. A lone letter that is also a roman numeral is
// read as roman only for `i`/`I`, matching the common reading of
// `i. ii. iii.` sequences.
func classifyEnumerator(token string) (doc.EnumStyle, int, bool) {
	if token == "#" {
		return doc.Arabic, 1, true
	}
	if n, err := strconv.Atoi(token); err == nil && n >= 0 {
		return doc.Arabic, n, true
	}
	lower := strings.ToLower(token)
	upper := token != lower
	if upper && strings.ToUpper(token) != token {
		return doc.Arabic, 0, false
	}
	if n, ok := romanValue(lower); ok && (len(token) > 1 || lower == "i") {
		if upper {
			return doc.UpperRoman, n, true
		}
		return doc.LowerRoman, n, true
	}
	if len(token) == 1 {
		c := token[0]
		switch {
		case c >= 'a' && c <= 'z':
			return doc.LowerAlpha, int(c-'a') + 1, true
		case c >= 'A' && c <= 'Z':
			return doc.UpperAlpha, int(c-'A') + 1, true
		}
	}
	return doc.Arabic, 0, false
}

var romanDigits = map[byte]int{
	'i': 1, 'v': 5, 'x': 10, 'l': 50, 'c': 100, 'd': 500, 'm': 1000,
}

// romanValue parses a lower-case roman numeral.
func romanValue(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	total := 0
	prev := 0
	for i := len(s) - 1; i >= 0; i-- {
		v, ok := romanDigits[s[i]]
		if !ok {
			return 0, false
		}
		if v < prev {
			total -= v
		} else {
			total += v
			prev = v
		}
	}
	return total, true
}
