// Package markdown parses Markdown into the generic document tree,
// using the same inline dispatch engine as the reStructuredText
// dialect.
package markdown

import (
	"regexp"
	"strings"

	"github.com/Hocdoc/sandoc/internal/doc"
	"github.com/Hocdoc/sandoc/internal/inline"
	"github.com/Hocdoc/sandoc/internal/rst"
)

type parser struct {
	spans inline.Map
}

// ParseDocument parses a complete Markdown source into a raw document
// tree. YAML front matter becomes document metadata. Parsing is total:
// unrecognized constructs fall through to the paragraph grammar.
func ParseDocument(src string) *doc.Document {
	p := &parser{}
	p.spans = p.spanMap()

	meta, body := extractFrontMatter(src)
	blocks := p.parseBlocks(splitLines(body))
	return &doc.Document{Content: blocks, Meta: meta}
}

func splitLines(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.ReplaceAll(src, "\t", "    ")
	return strings.Split(src, "\n")
}

var linkDefPattern = regexp.MustCompile(`^\[([^\]]+)\]:\s*(\S+)(?:\s+"([^"]*)")?\s*$`)

func (p *parser) parseBlocks(lines []string) []doc.Block {
	var blocks []doc.Block

	i := 0
	for i < len(lines) {
		line := lines[i]
		if isBlank(line) {
			i++
			continue
		}

		switch {
		case isHorizontalRule(line):
			blocks = append(blocks, &doc.Transition{})
			i++

		case atxLevel(line) > 0:
			blocks = append(blocks, p.parseATXHeader(line))
			i++

		case strings.HasPrefix(line, "```") || strings.HasPrefix(line, "~~~"):
			block, next := p.parseFencedCode(lines, i)
			blocks = append(blocks, block)
			i = next

		case strings.HasPrefix(line, "    "):
			block, next := p.parseIndentedCode(lines, i)
			blocks = append(blocks, block)
			i = next

		case strings.HasPrefix(line, ">"):
			block, next := p.parseBlockQuote(lines, i)
			blocks = append(blocks, block)
			i = next

		case bulletMarker(line) != 0:
			block, next := p.parseBulletList(lines, i)
			blocks = append(blocks, block)
			i = next

		case orderedMarkerWidth(line) > 0:
			block, next := p.parseOrderedList(lines, i)
			blocks = append(blocks, block)
			i = next

		case linkDefPattern.MatchString(line):
			m := linkDefPattern.FindStringSubmatch(line)
			blocks = append(blocks, &doc.ExternalLinkDefinition{
				ID:    rst.NormalizeID(m[1]),
				URL:   m[2],
				Title: m[3],
			})
			i++

		case isSetextHeader(lines, i):
			block, next := p.parseSetextHeader(lines, i)
			blocks = append(blocks, block)
			i = next

		default:
			block, next := p.parseParagraph(lines, i)
			blocks = append(blocks, block)
			i = next
		}
	}
	return blocks
}

// --- headers -----------------------------------------------------------------

func atxLevel(line string) int {
	hashes := 0
	for hashes < len(line) && line[hashes] == '#' {
		hashes++
	}
	if hashes == 0 || hashes > 6 {
		return 0
	}
	if hashes < len(line) && line[hashes] != ' ' {
		return 0
	}
	return hashes
}

func (p *parser) parseATXHeader(line string) doc.Block {
	level := atxLevel(line)
	text := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(line[level:]), "#"))
	spans := inline.Parse(text, p.spans)
	return &doc.Header{
		Level:   level,
		Content: spans,
		Options: doc.NoOptions.Merge(doc.WithIDOption(rst.NormalizeID(text))),
	}
}

func isSetextHeader(lines []string, i int) bool {
	if i+1 >= len(lines) || isBlank(lines[i]) || indentOf(lines[i]) > 0 {
		return false
	}
	return isSetextUnderline(lines[i+1])
}

func isSetextUnderline(line string) bool {
	if len(line) == 0 {
		return false
	}
	c := line[0]
	if c != '=' && c != '-' {
		return false
	}
	for j := 1; j < len(line); j++ {
		if line[j] != c {
			return false
		}
	}
	return true
}

func (p *parser) parseSetextHeader(lines []string, i int) (doc.Block, int) {
	level := 1
	if lines[i+1][0] == '-' {
		level = 2
	}
	text := strings.TrimSpace(lines[i])
	return &doc.Header{
		Level:   level,
		Content: inline.Parse(text, p.spans),
		Options: doc.NoOptions.Merge(doc.WithIDOption(rst.NormalizeID(text))),
	}, i + 2
}

// --- code blocks -------------------------------------------------------------

func (p *parser) parseFencedCode(lines []string, i int) (doc.Block, int) {
	fence := lines[i][:3]
	language := strings.TrimSpace(lines[i][3:])
	i++
	start := i
	for i < len(lines) && !strings.HasPrefix(lines[i], fence) {
		i++
	}
	block := &doc.LiteralBlock{Content: strings.Join(lines[start:i], "\n")}
	if language != "" {
		block.Options = doc.Styled(language)
	}
	if i < len(lines) {
		i++ // closing fence
	}
	return block, i
}

func (p *parser) parseIndentedCode(lines []string, i int) (doc.Block, int) {
	var chunk []string
	for i < len(lines) {
		switch {
		case strings.HasPrefix(lines[i], "    "):
			chunk = append(chunk, lines[i][4:])
			i++
		case isBlank(lines[i]) && i+1 < len(lines) && strings.HasPrefix(lines[i+1], "    "):
			chunk = append(chunk, "")
			i++
		default:
			return &doc.LiteralBlock{Content: strings.Join(chunk, "\n")}, i
		}
	}
	return &doc.LiteralBlock{Content: strings.Join(chunk, "\n")}, i
}

// --- block quotes ------------------------------------------------------------

func (p *parser) parseBlockQuote(lines []string, i int) (doc.Block, int) {
	var inner []string
	for i < len(lines) && strings.HasPrefix(lines[i], ">") {
		stripped := strings.TrimPrefix(lines[i], ">")
		stripped = strings.TrimPrefix(stripped, " ")
		inner = append(inner, stripped)
		i++
	}
	return &doc.QuotedBlock{Content: p.parseBlocks(inner), Options: doc.NoOptions}, i
}

// --- thematic breaks ---------------------------------------------------------

func isHorizontalRule(line string) bool {
	trimmed := strings.ReplaceAll(strings.TrimSpace(line), " ", "")
	if len(trimmed) < 3 {
		return false
	}
	c := trimmed[0]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	for j := 1; j < len(trimmed); j++ {
		if trimmed[j] != c {
			return false
		}
	}
	return true
}

// --- lists -------------------------------------------------------------------

func bulletMarker(line string) byte {
	if len(line) < 2 || indentOf(line) > 0 {
		return 0
	}
	c := line[0]
	if (c == '-' || c == '*' || c == '+') && line[1] == ' ' {
		return c
	}
	return 0
}

// orderedMarkerWidth returns the content column of an ordered list
// marker like `1. ` or `2) `, or 0 when the line is no marker.
func orderedMarkerWidth(line string) int {
	if indentOf(line) > 0 {
		return 0
	}
	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	if digits == 0 || digits >= len(line) {
		return 0
	}
	if line[digits] != '.' && line[digits] != ')' {
		return 0
	}
	pos := digits + 1
	if pos >= len(line) || line[pos] != ' ' {
		return 0
	}
	for pos < len(line) && line[pos] == ' ' {
		pos++
	}
	return pos
}

func (p *parser) parseBulletList(lines []string, i int) (doc.Block, int) {
	bullet := bulletMarker(lines[i])
	var items []*doc.BulletListItem
	for i < len(lines) {
		if isBlank(lines[i]) {
			if continuesList(lines, i, func(l string) bool { return bulletMarker(l) == bullet }) {
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

func (p *parser) parseOrderedList(lines []string, i int) (doc.Block, int) {
	start := orderedStart(lines[i])
	var items []*doc.EnumListItem
	position := start
	for i < len(lines) {
		if isBlank(lines[i]) {
			if continuesList(lines, i, func(l string) bool { return orderedMarkerWidth(l) > 0 }) {
				i++
				continue
			}
			break
		}
		width := orderedMarkerWidth(lines[i])
		if width == 0 {
			break
		}
		itemLines, next := takeListItem(lines, i, width)
		items = append(items, &doc.EnumListItem{Content: p.parseBlocks(itemLines), Position: position})
		position++
		i = next
	}
	return &doc.EnumList{
		Items:   items,
		Format:  doc.EnumFormat{Style: doc.Arabic, Suffix: "."},
		Start:   start,
		Options: doc.NoOptions,
	}, i
}

func orderedStart(line string) int {
	n := 0
	for j := 0; j < len(line) && line[j] >= '0' && line[j] <= '9'; j++ {
		n = n*10 + int(line[j]-'0')
	}
	if n == 0 {
		n = 1
	}
	return n
}

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

func continuesList(lines []string, i int, match func(string) bool) bool {
	for i < len(lines) && isBlank(lines[i]) {
		i++
	}
	return i < len(lines) && (match(lines[i]) || indentOf(lines[i]) >= 2)
}

// --- paragraphs --------------------------------------------------------------

func (p *parser) parseParagraph(lines []string, i int) (doc.Block, int) {
	start := i
	for i < len(lines) && !isBlank(lines[i]) {
		if i > start && (isSetextUnderline(lines[i]) || atxLevel(lines[i]) > 0 || isHorizontalRule(lines[i])) {
			break
		}
		i++
	}
	text := joinParagraph(trimIndents(lines[start:i]))
	return &doc.Paragraph{Content: inline.Parse(text, p.spans)}, i
}

// joinParagraph merges paragraph lines with spaces, keeping the newline
// after a trailing backslash so the inline escape parser can turn it
// into a hard break.
func joinParagraph(lines []string) string {
	var b strings.Builder
	for i, line := range lines {
		b.WriteString(line)
		if i == len(lines)-1 {
			break
		}
		if strings.HasSuffix(line, `\`) {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

func trimIndents(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimSpace(line)
	}
	return out
}
