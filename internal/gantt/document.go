package gantt

import "strings"

// Document is the ordered, trimmed lines of a chart source.
type Document struct {
	lines []string
}

// ParseDocument splits text into lines on "\n" (a trailing "\r" is removed
// with the rest of the surrounding whitespace). A final newline does not
// produce an extra empty line.
func ParseDocument(text string) Document {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return Document{}
	}
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = strings.TrimSpace(line)
	}
	return Document{lines: lines}
}

// Len returns the number of lines.
func (d Document) Len() int {
	return len(d.lines)
}

// Lines returns a copy of the trimmed lines.
func (d Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}
