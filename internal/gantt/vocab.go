package gantt

import "strings"

const (
	// DiagramKeyword opens a Gantt chart.
	DiagramKeyword = "gantt"
	// SectionKeyword starts a section header line.
	SectionKeyword = "section"
	// CommentMarker starts a comment line.
	CommentMarker = "%%"
	// DirectiveMarker starts an init directive such as %%{init: {...}}%%.
	DirectiveMarker = "%%{"
)

// Tag is one of the fixed task status tags.
type Tag string

const (
	TagDone      Tag = "done"
	TagActive    Tag = "active"
	TagCrit      Tag = "crit"
	TagMilestone Tag = "milestone"
)

var taskTags = [...]Tag{TagDone, TagActive, TagCrit, TagMilestone}

// Tags returns the tag vocabulary in declaration order.
func Tags() []Tag {
	return taskTags[:]
}

// IsTag reports whether token exactly equals a tag.
func IsTag(token string) bool {
	for _, tag := range taskTags {
		if token == string(tag) {
			return true
		}
	}
	return false
}

// defaultKeywords are configuration directives that may appear at the top of
// a chart or between sections. Not an exhaustive list of Mermaid options.
var defaultKeywords = [...]string{
	"accDescr",
	"accTitle",
	"axisFormat",
	"barGap",
	"barHeight",
	"bottomMarginAdj",
	"click",
	"dateFormat",
	"displayMode",
	"excludes",
	"fontSize",
	"gridLineStartPadding",
	"includes",
	"inclusiveEndDates",
	"leftPadding",
	"mirrorActor",
	"numberSectionStyles",
	"rightPadding",
	"sectionFontSize",
	"tickInterval",
	"title",
	"titleTopMargin",
	"todayMarker",
	"topAxis",
	"topPadding",
	"weekday",
	"weekend",
}

// Vocabulary is the set of configuration keywords recognized on keyword
// lines. The zero value recognizes nothing; use DefaultVocabulary.
type Vocabulary struct {
	keywords []string
}

// DefaultVocabulary returns the built-in keyword vocabulary.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{keywords: defaultKeywords[:]}
}

// WithKeywords returns a copy of v that also recognizes extra. Blank and
// duplicate entries are ignored. v itself is not modified.
func (v Vocabulary) WithKeywords(extra ...string) Vocabulary {
	keywords := make([]string, len(v.keywords), len(v.keywords)+len(extra))
	copy(keywords, v.keywords)
	for _, kw := range extra {
		kw = strings.TrimSpace(kw)
		if kw == "" || containsString(keywords, kw) {
			continue
		}
		keywords = append(keywords, kw)
	}
	return Vocabulary{keywords: keywords}
}

// Keywords returns a copy of the recognized keywords.
func (v Vocabulary) Keywords() []string {
	out := make([]string, len(v.keywords))
	copy(out, v.keywords)
	return out
}

// IsKeywordLine reports whether a trimmed line starts with a keyword.
func (v Vocabulary) IsKeywordLine(line string) bool {
	for _, kw := range v.keywords {
		if hasWordPrefix(line, kw) {
			return true
		}
	}
	return false
}

// hasWordPrefix reports whether line starts with word followed by the end of
// the line, whitespace, or a colon. "titlebar" does not start with "title".
func hasWordPrefix(line, word string) bool {
	if !strings.HasPrefix(line, word) {
		return false
	}
	if len(line) == len(word) {
		return true
	}
	switch line[len(word)] {
	case ' ', '\t', ':':
		return true
	}
	return false
}

// containsWord reports whether word appears in s delimited by non-letters.
func containsWord(s, word string) bool {
	for offset := 0; ; {
		i := strings.Index(s[offset:], word)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(word)
		if (start == 0 || !isWordByte(s[start-1])) && (end == len(s) || !isWordByte(s[end])) {
			return true
		}
		offset = start + 1
	}
}

func isWordByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
