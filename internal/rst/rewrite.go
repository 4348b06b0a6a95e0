package rst

import (
	"github.com/Hocdoc/sandoc/internal/doc"
)

// textRoles maps the supported interpreted-text roles to their span
// constructors. Roles missing here fall through to the generic
// unknown-role rule.
var textRoles = map[string]func(text string) doc.Span{
	"emphasis": func(text string) doc.Span {
		return &doc.Emphasized{Content: []doc.Span{&doc.Text{Content: text}}}
	},
	"strong": func(text string) doc.Span {
		return &doc.Strong{Content: []doc.Span{&doc.Text{Content: text}}}
	},
	"literal": func(text string) doc.Span {
		return &doc.Literal{Content: text}
	},
	"code": func(text string) doc.Span {
		return &doc.Literal{Content: text}
	},
	"subscript": func(text string) doc.Span {
		return &doc.Text{Content: text, Options: doc.Styled("subscript")}
	},
	"superscript": func(text string) doc.Span {
		return &doc.Text{Content: text, Options: doc.Styled("superscript")}
	},
	DefaultTextRole: func(text string) doc.Span {
		return &doc.Emphasized{Content: []doc.Span{&doc.Text{Content: text}}, Options: doc.Styled(DefaultTextRole)}
	},
}

// RewriteRules returns the reStructuredText-specific rules applied
// before the generic resolution cascade.
func RewriteRules() []doc.Rule {
	return []doc.Rule{interpretedTextRule}
}

func interpretedTextRule(e doc.Element) (doc.Element, doc.Action) {
	it, ok := e.(*doc.InterpretedText)
	if !ok {
		return e, doc.Unchanged
	}
	role, known := textRoles[it.Role]
	if !known {
		return e, doc.Unchanged
	}
	return role(it.Text), doc.Replaced
}
