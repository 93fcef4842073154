package gantt

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// WidthFunc measures the rendered width of a string.
type WidthFunc func(string) int

// RuneWidth counts Unicode scalar values. It is the default measure.
func RuneWidth(s string) int {
	return utf8.RuneCountInString(s)
}

// DisplayWidth measures terminal cells, counting east-asian wide characters
// as two columns.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Widths holds the widest value seen for each task column. A column that no
// task supplies has width 0.
type Widths struct {
	Title int
	ID    int
	Start int
	End   int
}

// widthAccumulator folds task lines into a Widths value.
type widthAccumulator struct {
	measure WidthFunc
	widths  Widths
}

func (a *widthAccumulator) add(l Line) {
	if l.Kind != KindTask {
		return
	}
	a.widths.Title = max(a.widths.Title, a.measure(l.Title))

	f := SplitMetadata(l.Metadata).Fields()
	if f.HasID {
		a.widths.ID = max(a.widths.ID, a.measure(f.ID))
	}
	if f.HasStart {
		a.widths.Start = max(a.widths.Start, a.measure(f.Start))
	}
	if f.HasEnd {
		a.widths.End = max(a.widths.End, a.measure(f.End))
	}
}

// ComputeWidths scans every task line, commented or not, and returns the
// column widths. A nil measure means RuneWidth.
func ComputeWidths(lines []Line, measure WidthFunc) Widths {
	if measure == nil {
		measure = RuneWidth
	}
	acc := widthAccumulator{measure: measure}
	for _, l := range lines {
		acc.add(l)
	}
	return acc.widths
}
