// Package formatter re-indents and column-aligns Mermaid Gantt chart sources.
package formatter

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/ganttfmt/internal/gantt"
)

// Formatter formats Gantt chart sources.
type Formatter struct {
	// Vocabulary lists the configuration keywords (default: gantt.DefaultVocabulary).
	Vocabulary gantt.Vocabulary
	// Measure computes column widths and padding (default: gantt.RuneWidth).
	Measure gantt.WidthFunc
	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithVocabulary sets the keyword vocabulary.
func WithVocabulary(v gantt.Vocabulary) Option {
	return func(f *Formatter) {
		f.Vocabulary = v
	}
}

// WithMeasure sets the width measure.
func WithMeasure(measure gantt.WidthFunc) Option {
	return func(f *Formatter) {
		if measure != nil {
			f.Measure = measure
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(f *Formatter) {
		f.Logger = logger
	}
}

// New creates a Formatter with default settings.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		Vocabulary: gantt.DefaultVocabulary(),
		Measure:    gantt.RuneWidth,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format reformats source. It never fails: lines it does not recognize are
// passed through unchanged.
func (f *Formatter) Format(source string) string {
	return f.FormatWithResult(source).Content
}

// FormatResult contains the result of formatting a source.
type FormatResult struct {
	// Content is the formatted content.
	Content string
	// Changed indicates if the content was different from the original.
	Changed bool
	// Widths are the task column widths used for alignment.
	Widths gantt.Widths
}

// FormatWithResult formats source and reports whether it changed.
func (f *Formatter) FormatWithResult(source string) FormatResult {
	measure := f.Measure
	if measure == nil {
		measure = gantt.RuneWidth
	}

	doc := gantt.ParseDocument(source)
	lines := gantt.NewClassifier(f.Vocabulary).ClassifyAll(doc.Lines())
	widths := gantt.ComputeWidths(lines, measure)
	f.logger().Debug("column widths",
		"title", widths.Title, "id", widths.ID, "start", widths.Start, "end", widths.End)

	r := newRenderer(widths, measure)
	for _, l := range lines {
		r.render(l)
	}
	content := strings.Join(r.lines(), "\n")

	return FormatResult{
		Content: content,
		Changed: content != source,
		Widths:  widths,
	}
}

var discardLogger = log.New(io.Discard)

func (f *Formatter) logger() *log.Logger {
	if f.Logger == nil {
		return discardLogger
	}
	return f.Logger
}
