package doc

import "strings"

// TextOf flattens an element to its literal text content, concatenating
// every TextContainer in document order. Reference nodes contribute
// their original source text so diagnostics can show what the author
// wrote.
func TextOf(e Element) string {
	var b strings.Builder
	Visit(e, func(n Element) {
		switch t := n.(type) {
		case TextContainer:
			b.WriteString(t.Text())
		case Reference:
			b.WriteString(t.Source())
		}
	})
	return b.String()
}
