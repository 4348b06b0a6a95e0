// Package rst parses reStructuredText into the generic document tree.
package rst

import (
	"fmt"
	"strings"

	"github.com/Hocdoc/sandoc/internal/doc"
	"github.com/Hocdoc/sandoc/internal/inline"
)

// headerPunct is the set of characters allowed as header decorations and
// transitions.
const headerPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

type parser struct {
	spans            inline.Map
	anonymousTargets int
	anonymousRefs    int
}

// ParseDocument parses a complete reStructuredText source into a raw
// document tree. Parsing is total: unrecognized constructs fall through
// to the paragraph grammar, never to an error.
func ParseDocument(src string) *doc.Document {
	p := &parser{}
	p.spans = p.spanMap()
	blocks := p.parseBlocks(splitLines(src))
	return &doc.Document{Content: blocks}
}

func splitLines(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.ReplaceAll(src, "\t", "    ")
	return strings.Split(src, "\n")
}

// parseBlocks runs the block grammar over a dedented line sequence.
// Lookahead-sensitive state (literal-block promotion, target folding)
// is threaded across adjacent blocks of the same sequence.
func (p *parser) parseBlocks(lines []string) []doc.Block {
	var blocks []doc.Block
	literalNext := false

	i := 0
	for i < len(lines) {
		line := lines[i]
		if isBlank(line) {
			i++
			continue
		}

		if literalNext {
			literalNext = false
			if block, next, ok := p.parseLiteralBlock(lines, i); ok {
				blocks = append(blocks, block)
				i = next
				continue
			}
		}

		switch {
		case isExplicitMarkup(line):
			block, next := p.parseExplicitMarkup(lines, i)
			if block != nil {
				blocks = append(blocks, block)
			}
			i = next

		case strings.HasPrefix(line, "__ "):
			blocks = append(blocks, &doc.ExternalLinkDefinition{
				ID:  p.nextAnonymousTargetID(),
				URL: strings.TrimSpace(line[3:]),
			})
			i++

		case strings.HasPrefix(line, ">>> "):
			block, next := p.parseDoctest(lines, i)
			blocks = append(blocks, block)
			i = next

		case strings.HasPrefix(line, "| ") || line == "|":
			block, next := p.parseLineBlock(lines, i)
			blocks = append(blocks, block)
			i = next

		case isOverlinedHeader(lines, i):
			block, next := p.parseOverlinedHeader(lines, i)
			blocks = append(blocks, block)
			i = next

		case isTransition(lines, i):
			blocks = append(blocks, &doc.Transition{})
			i++

		case bulletMarker(line) != 0:
			block, next := p.parseBulletList(lines, i)
			blocks = append(blocks, block)
			i = next

		case isEnumMarker(line):
			block, next := p.parseEnumList(lines, i)
			blocks = append(blocks, block)
			i = next

		case indentOf(line) > 0:
			block, next := p.parseBlockQuote(lines, i)
			blocks = append(blocks, block)
			i = next

		case isUnderlinedHeader(lines, i):
			block, next := p.parseUnderlinedHeader(lines, i)
			blocks = append(blocks, block)
			i = next

		case isDefinitionItem(lines, i):
			block, next := p.parseDefinitionList(lines, i)
			blocks = append(blocks, block)
			i = next

		default:
			block, next, promote := p.parseParagraph(lines, i)
			if block != nil {
				blocks = append(blocks, block)
			}
			literalNext = promote
			i = next
		}
	}

	return p.foldTargets(blocks)
}

// --- paragraphs and literal blocks -----------------------------------------

// parseParagraph consumes a run of non-blank lines. A trailing `::`
// marker is stripped (dropping one preceding space) and promotes the
// following block to the literal-block grammar.
func (p *parser) parseParagraph(lines []string, i int) (doc.Block, int, bool) {
	start := i
	for i < len(lines) && !isBlank(lines[i]) {
		i++
	}
	text := strings.Join(trimIndents(lines[start:i]), " ")

	promote := false
	if strings.HasSuffix(text, "::") {
		promote = true
		text = strings.TrimSuffix(text, "::")
		text = strings.TrimSuffix(text, " ")
	}
	if text == "" {
		return nil, i, promote
	}
	return &doc.Paragraph{Content: inline.Parse(text, p.spans)}, i, promote
}

// parseLiteralBlock parses the indented (or quoted) block following a
// paragraph that ended in `::`.
func (p *parser) parseLiteralBlock(lines []string, i int) (doc.Block, int, bool) {
	if indentOf(lines[i]) > 0 {
		chunk, next := takeIndented(lines, i)
		return &doc.LiteralBlock{Content: strings.Join(dedent(chunk), "\n")}, next, true
	}
	// Quoted literal block: consecutive lines sharing the same leading
	// punctuation character at column zero.
	quote := lines[i][0]
	if !strings.ContainsRune(headerPunct, rune(quote)) {
		return nil, i, false
	}
	start := i
	for i < len(lines) && !isBlank(lines[i]) && lines[i][0] == quote {
		i++
	}
	if i == start {
		return nil, i, false
	}
	return &doc.LiteralBlock{Content: strings.Join(lines[start:i], "\n")}, i, true
}

// parseDoctest consumes an interactive-session block.
func (p *parser) parseDoctest(lines []string, i int) (doc.Block, int) {
	start := i
	for i < len(lines) && !isBlank(lines[i]) {
		i++
	}
	return &doc.DoctestBlock{Content: strings.Join(lines[start:i], "\n")}, i
}

// parseLineBlock consumes consecutive `| ` lines.
func (p *parser) parseLineBlock(lines []string, i int) (doc.Block, int) {
	var content []doc.Block
	for i < len(lines) && (strings.HasPrefix(lines[i], "| ") || lines[i] == "|") {
		text := ""
		if lines[i] != "|" {
			text = lines[i][2:]
		}
		content = append(content, &doc.Line{Content: inline.Parse(text, p.spans)})
		i++
	}
	return &doc.LineBlock{Content: content}, i
}

// --- headers and transitions ------------------------------------------------

func isOverlinedHeader(lines []string, i int) bool {
	c, ok := punctRun(lines[i])
	if !ok || i+2 >= len(lines) {
		return false
	}
	if isBlank(lines[i+1]) {
		return false
	}
	c2, ok2 := punctRun(lines[i+2])
	return ok2 && c2 == c && len(lines[i+2]) >= len(strings.TrimRight(lines[i+1], " "))
}

func isTransition(lines []string, i int) bool {
	if _, ok := punctRun(lines[i]); !ok || len(lines[i]) < 4 {
		return false
	}
	return i+1 >= len(lines) || isBlank(lines[i+1])
}

func isUnderlinedHeader(lines []string, i int) bool {
	if indentOf(lines[i]) > 0 || i+1 >= len(lines) {
		return false
	}
	_, ok := punctRun(lines[i+1])
	return ok && len(lines[i+1]) >= len(strings.TrimRight(lines[i], " "))
}

func (p *parser) parseOverlinedHeader(lines []string, i int) (doc.Block, int) {
	char, _ := punctRun(lines[i])
	text := strings.TrimSpace(lines[i+1])
	return p.decoratedHeader(doc.HeaderDecoration{Char: char, Overline: true}, text), i + 3
}

func (p *parser) parseUnderlinedHeader(lines []string, i int) (doc.Block, int) {
	char, _ := punctRun(lines[i+1])
	text := strings.TrimSpace(lines[i])
	return p.decoratedHeader(doc.HeaderDecoration{Char: char}, text), i + 2
}

// decoratedHeader builds the temporary header node, attaching the
// derived identifier through an Options merge rather than mutation.
func (p *parser) decoratedHeader(decoration doc.HeaderDecoration, text string) doc.Block {
	spans := inline.Parse(text, p.spans)
	id := NormalizeID(flattenText(spans))
	return &doc.DecoratedHeader{
		Decoration: decoration,
		Content:    spans,
		Options:    doc.NoOptions.Merge(doc.WithIDOption(id)),
	}
}

// --- lists -------------------------------------------------------------------

// bulletMarker returns the bullet character when the line opens a bullet
// list item, otherwise 0.
func bulletMarker(line string) byte {
	if len(line) == 0 || indentOf(line) > 0 {
		return 0
	}
	c := line[0]
	if c != '-' && c != '*' && c != '+' {
		return 0
	}
	if len(line) == 1 || line[1] == ' ' {
		return c
	}
	return 0
}

func (p *parser) parseBulletList(lines []string, i int) (doc.Block, int) {
	bullet := bulletMarker(lines[i])
	var items []*doc.BulletListItem
	for i < len(lines) {
		if isBlank(lines[i]) {
			if nextContentIsMarker(lines, i, func(l string) bool { return bulletMarker(l) == bullet }) {
				i++
				continue
			}
			break
		}
		if bulletMarker(lines[i]) != bullet {
			break
		}
		itemLines, next := takeListItem(lines, i, 2)
		items = append(items, &doc.BulletListItem{Content: p.parseBlocks(itemLines)})
		i = next
	}
	return &doc.BulletList{Items: items, Bullet: string(bullet), Options: doc.NoOptions}, i
}

func isEnumMarker(line string) bool {
	_, _, _, ok := parseEnumMarker(line)
	return ok
}

func (p *parser) parseEnumList(lines []string, i int) (doc.Block, int) {
	format, start, _, _ := parseEnumMarker(lines[i])
	var items []*doc.EnumListItem
	position := start
	for i < len(lines) {
		if isBlank(lines[i]) {
			if nextContentIsMarker(lines, i, func(l string) bool {
				f, _, _, ok := parseEnumMarker(l)
				return ok && f == format
			}) {
				i++
				continue
			}
			break
		}
		f, _, width, ok := parseEnumMarker(lines[i])
		if !ok || f != format {
			break
		}
		itemLines, next := takeListItem(lines, i, width)
		items = append(items, &doc.EnumListItem{Content: p.parseBlocks(itemLines), Position: position})
		position++
		i = next
	}
	return &doc.EnumList{Items: items, Format: format, Start: start, Options: doc.NoOptions}, i
}

// takeListItem collects one list item: the marker line with the marker
// stripped, plus every following line indented at least by the marker
// width (or blank), dedented by that width.
func takeListItem(lines []string, i, width int) ([]string, int) {
	first := lines[i]
	if len(first) > width {
		first = first[width:]
	} else {
		first = ""
	}
	item := []string{first}
	i++
	for i < len(lines) {
		line := lines[i]
		if isBlank(line) {
			item = append(item, "")
			i++
			continue
		}
		if indentOf(line) < width {
			break
		}
		item = append(item, line[width:])
		i++
	}
	return item, i
}

// nextContentIsMarker looks past blank lines for the next content line
// and reports whether it continues the current list.
func nextContentIsMarker(lines []string, i int, match func(string) bool) bool {
	for i < len(lines) && isBlank(lines[i]) {
		i++
	}
	return i < len(lines) && match(lines[i])
}

// --- definition lists ---------------------------------------------------------

func isDefinitionItem(lines []string, i int) bool {
	if indentOf(lines[i]) > 0 || i+1 >= len(lines) {
		return false
	}
	return !isBlank(lines[i+1]) && indentOf(lines[i+1]) > 0
}

func (p *parser) parseDefinitionList(lines []string, i int) (doc.Block, int) {
	var items []*doc.DefinitionListItem
	for i < len(lines) && isDefinitionItem(lines, i) {
		term := inline.Parse(strings.TrimSpace(lines[i]), p.spans)
		i++
		chunk, next := takeIndented(lines, i)
		items = append(items, &doc.DefinitionListItem{
			Term:       term,
			Definition: p.parseBlocks(dedent(chunk)),
		})
		i = next
		for i < len(lines) && isBlank(lines[i]) {
			if !nextContentIsDefinition(lines, i) {
				break
			}
			i++
		}
	}
	return &doc.DefinitionList{Items: items, Options: doc.NoOptions}, i
}

func nextContentIsDefinition(lines []string, i int) bool {
	for i < len(lines) && isBlank(lines[i]) {
		i++
	}
	return i+1 < len(lines) && isDefinitionItem(lines, i)
}

// --- block quotes -------------------------------------------------------------

// parseBlockQuote consumes a contiguous indented chunk. A trailing
// chunk introduced by an attribution marker at the quote's indent
// becomes the attribution span sequence.
func (p *parser) parseBlockQuote(lines []string, i int) (doc.Block, int) {
	chunk, next := takeIndented(lines, i)
	body := dedent(chunk)

	var attribution []doc.Span
	if start, text, ok := findAttribution(body); ok {
		attribution = inline.Parse(text, p.spans)
		body = body[:start]
	}

	return &doc.QuotedBlock{
		Content:     p.parseBlocks(body),
		Attribution: attribution,
		Options:     doc.NoOptions,
	}, next
}

// findAttribution locates a final paragraph starting with an em-dash or
// a double/triple hyphen.
func findAttribution(body []string) (start int, text string, ok bool) {
	// locate the last chunk after a blank line
	last := 0
	for idx, line := range body {
		if isBlank(line) && idx+1 < len(body) && !isBlank(body[idx+1]) {
			last = idx + 1
		}
	}
	line := body[last]
	for _, marker := range []string{"--- ", "-- ", "— ", "—"} {
		if strings.HasPrefix(line, marker) {
			rest := append([]string{strings.TrimPrefix(line, marker)}, body[last+1:]...)
			return last, strings.Join(trimIndents(rest), " "), true
		}
	}
	return 0, "", false
}

// --- cross-block target folding ----------------------------------------------

// foldTargets runs the single left-to-right pass over an emitted block
// sequence: consecutive internal link targets collapse into alias
// chains, and an internal target immediately followed by an external
// link definition hands its id to the definition and disappears.
func (p *parser) foldTargets(blocks []doc.Block) []doc.Block {
	out := make([]doc.Block, 0, len(blocks))
	for i := 0; i < len(blocks); i++ {
		target, ok := blocks[i].(*doc.InternalLinkTarget)
		if !ok || i+1 >= len(blocks) {
			out = append(out, blocks[i])
			continue
		}
		switch next := blocks[i+1].(type) {
		case *doc.InternalLinkTarget:
			out = append(out, &doc.LinkAlias{ID: target.ID, Target: next.ID})
		case *doc.ExternalLinkDefinition:
			out = append(out, &doc.ExternalLinkDefinition{
				ID:    target.ID,
				URL:   next.URL,
				Title: next.Title,
			})
			i++
		default:
			out = append(out, blocks[i])
		}
	}
	return out
}

// --- line helpers -------------------------------------------------------------

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

// punctRun reports whether the line is a run of one repeated punctuation
// character of length two or more.
func punctRun(line string) (byte, bool) {
	if len(line) < 2 {
		return 0, false
	}
	c := line[0]
	if !strings.ContainsRune(headerPunct, rune(c)) {
		return 0, false
	}
	for i := 1; i < len(line); i++ {
		if line[i] != c {
			return 0, false
		}
	}
	return c, true
}

// takeIndented collects the contiguous chunk of indented lines starting
// at i, tolerating interior blank lines.
func takeIndented(lines []string, i int) ([]string, int) {
	var chunk []string
	for i < len(lines) {
		line := lines[i]
		if isBlank(line) {
			if !followedByIndent(lines, i+1) {
				break
			}
			chunk = append(chunk, "")
			i++
			continue
		}
		if indentOf(line) == 0 {
			break
		}
		chunk = append(chunk, line)
		i++
	}
	return chunk, i
}

func followedByIndent(lines []string, i int) bool {
	for i < len(lines) && isBlank(lines[i]) {
		i++
	}
	return i < len(lines) && indentOf(lines[i]) > 0
}

// dedent strips the smallest common indent from a chunk.
func dedent(chunk []string) []string {
	min := -1
	for _, line := range chunk {
		if isBlank(line) {
			continue
		}
		if ind := indentOf(line); min == -1 || ind < min {
			min = ind
		}
	}
	if min <= 0 {
		return chunk
	}
	out := make([]string, len(chunk))
	for i, line := range chunk {
		if len(line) >= min {
			out[i] = line[min:]
		}
	}
	return out
}

func trimIndents(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimSpace(line)
	}
	return out
}

func flattenText(spans []doc.Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(doc.TextOf(s))
	}
	return b.String()
}

func (p *parser) nextAnonymousTargetID() string {
	p.anonymousTargets++
	return fmt.Sprintf("anonymous-target-%d", p.anonymousTargets)
}

func (p *parser) nextAnonymousRefID() string {
	p.anonymousRefs++
	return fmt.Sprintf("anonymous-target-%d", p.anonymousRefs)
}
