package markdown

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// extractFrontMatter splits an optional YAML front matter block off the
// start of the source. Scalar top-level values become metadata entries;
// nested values are skipped. Malformed front matter is left in the body
// untouched.
func extractFrontMatter(src string) (map[string]string, string) {
	normalized := strings.ReplaceAll(src, "\r\n", "\n")
	if !strings.HasPrefix(normalized, "---\n") {
		return nil, src
	}
	rest := normalized[4:]
	end := frontMatterEnd(rest)
	if end < 0 {
		return nil, src
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(rest[:end]), &raw); err != nil || len(raw) == 0 {
		return nil, src
	}

	meta := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			meta[key] = v
		case int, int64, float64, bool:
			meta[key] = fmt.Sprint(v)
		}
	}
	body := rest[end:]
	if idx := strings.Index(body, "\n"); idx >= 0 {
		body = body[idx+1:]
	} else {
		body = ""
	}
	return meta, body
}

// frontMatterEnd finds the offset of the closing `---` or `...` line.
func frontMatterEnd(rest string) int {
	offset := 0
	for _, line := range strings.Split(rest, "\n") {
		if line == "---" || line == "..." {
			return offset
		}
		offset += len(line) + 1
	}
	return -1
}
