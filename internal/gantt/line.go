package gantt

import "strings"

// Kind is the category of a classified line.
type Kind int

const (
	KindBlank Kind = iota
	KindTitle
	KindKeyword
	KindComment
	KindDirective
	KindCommentedSection
	KindSection
	KindTask
	KindOther
	// KindSkip is a blank line dropped because a section header follows.
	KindSkip
)

var kindNames = map[Kind]string{
	KindBlank:            "blank",
	KindTitle:            "title",
	KindKeyword:          "keyword",
	KindComment:          "comment",
	KindDirective:        "directive",
	KindCommentedSection: "commented-section",
	KindSection:          "section",
	KindTask:             "task",
	KindOther:            "other",
	KindSkip:             "skip",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Line is a classified, trimmed source line.
type Line struct {
	Kind Kind
	// Text is the trimmed source line.
	Text string
	// Title is the section title or the task title.
	Title string
	// Metadata is the raw text after a task's first colon.
	Metadata string
	// Commented marks a task line that starts with the comment marker.
	Commented bool
}

// StartsWithBlank reports whether rendering l emits its own leading blank line.
func (l Line) StartsWithBlank() bool {
	return l.Kind == KindSection || l.Kind == KindCommentedSection
}

// Classifier assigns a Kind to lines using a keyword vocabulary.
type Classifier struct {
	Vocabulary Vocabulary
}

// NewClassifier creates a classifier for vocab.
func NewClassifier(vocab Vocabulary) Classifier {
	return Classifier{Vocabulary: vocab}
}

// Classify classifies one line on its content alone. It never returns
// KindSkip; see ClassifyAt.
//
// Rules are applied in a fixed order and the first match wins:
// title, keyword, directive, commented section, comment, blank, section,
// task, other.
func (c Classifier) Classify(line string) Line {
	line = strings.TrimSpace(line)
	l := Line{Text: line}

	switch {
	case hasWordPrefix(line, DiagramKeyword):
		l.Kind = KindTitle
	case c.Vocabulary.IsKeywordLine(line):
		l.Kind = KindKeyword
	case strings.HasPrefix(line, DirectiveMarker):
		l.Kind = KindDirective
	case strings.HasPrefix(line, CommentMarker) && containsWord(line, SectionKeyword):
		l.Kind = KindCommentedSection
	case strings.HasPrefix(line, CommentMarker) && !strings.Contains(line, ":"):
		l.Kind = KindComment
	case line == "":
		l.Kind = KindBlank
	case hasSectionPrefix(line):
		l.Kind = KindSection
		l.Title = strings.TrimSpace(line[len(SectionKeyword):])
	case strings.Contains(line, ":"):
		l.Kind = KindTask
		body := line
		if strings.HasPrefix(body, CommentMarker) {
			l.Commented = true
			body = body[len(CommentMarker):]
		}
		title, meta, _ := strings.Cut(body, ":")
		l.Title = strings.TrimSpace(title)
		l.Metadata = strings.TrimSpace(meta)
	default:
		l.Kind = KindOther
	}
	return l
}

// ClassifyAt classifies lines[i]. A blank line is KindSkip when the next
// non-blank line renders with its own leading blank line, so a section header
// is never preceded by more than one blank line.
func (c Classifier) ClassifyAt(lines []string, i int) Line {
	l := c.Classify(lines[i])
	if l.Kind != KindBlank {
		return l
	}
	for j := i + 1; j < len(lines); j++ {
		next := c.Classify(lines[j])
		if next.Kind == KindBlank {
			continue
		}
		if next.StartsWithBlank() {
			l.Kind = KindSkip
		}
		break
	}
	return l
}

// ClassifyAll classifies every line of a document in order.
func (c Classifier) ClassifyAll(lines []string) []Line {
	out := make([]Line, len(lines))
	// Walk backwards so the blank-run lookahead is a single remembered value.
	nextStartsWithBlank := false
	for i := len(lines) - 1; i >= 0; i-- {
		l := c.Classify(lines[i])
		switch {
		case l.Kind == KindBlank:
			if nextStartsWithBlank {
				l.Kind = KindSkip
			}
		default:
			nextStartsWithBlank = l.StartsWithBlank()
		}
		out[i] = l
	}
	return out
}

// hasSectionPrefix reports whether the first word of line is "section".
func hasSectionPrefix(line string) bool {
	if !strings.HasPrefix(line, SectionKeyword) {
		return false
	}
	rest := line[len(SectionKeyword):]
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}
