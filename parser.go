package scaffold

import (
	"fmt"
	"regexp"
	"strings"
)

const mkdirLang = "mkdir"

var pathInHintRegex = regexp.MustCompile("^`([^`\\s]+)`:?$")

var customFooter = []string{"", "Project structure updated successfully!"}

// ParseManifest builds a manifest from a Markdown document. A ```mkdir block
// lists directories one per line. Any other fenced block whose preceding
// paragraph is a path in backticks becomes a file holding the
// block body. Entries keep document order.
func ParseManifest(name string, content []byte) (*Manifest, error) {
	blocks, err := ExtractCodeBlocks(content)
	if err != nil {
		return nil, fmt.Errorf("could not parse manifest %s: %w", name, err)
	}

	m := &Manifest{Name: name, Footer: append([]string(nil), customFooter...)}
	for _, b := range blocks {
		if b.Lang == mkdirLang {
			m.Entries = append(m.Entries, parseDirBlock(b)...)
			continue
		}

		path := ExtractPathFromHint(b.Hint)
		if path == "" {
			continue
		}
		m.Entries = append(m.Entries, File(path, b.Content))
	}

	if len(m.Entries) == 0 {
		return nil, fmt.Errorf("manifest %s has no entries", name)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", name, err)
	}
	return m, nil
}

func parseDirBlock(b CodeBlock) []Entry {
	var entries []Entry
	for _, line := range strings.Split(b.Content, "\n") {
		trimmed := strings.TrimSuffix(strings.TrimSpace(line), "/")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		entries = append(entries, Dir(trimmed))
	}
	return entries
}

// ExtractPathFromHint returns the path named by a block's hint paragraph, or
// "" when the hint is not a single path.
func ExtractPathFromHint(hint string) string {
	lines := strings.Split(strings.TrimSpace(hint), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if match := pathInHintRegex.FindStringSubmatch(last); len(match) > 1 {
		return match[1]
	}
	return ""
}
