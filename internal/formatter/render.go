package formatter

import (
	"strings"

	"github.com/nibzard/ganttfmt/internal/gantt"
)

const (
	keywordIndent = "  "
	sectionIndent = "  "
	taskIndent    = "    "
	// commentedTaskPrefix replaces taskIndent and has the same width.
	commentedTaskPrefix = gantt.CommentMarker + "  "

	titleSeparator = "  : "
	itemSeparator  = ",  "
	// itemGap stands in for itemSeparator after an omitted column.
	itemGap = "   "
)

// Tag block sub-columns. Each is its own fixed width whether or not the tag
// is present, so the whole block is always 9+7+12 characters.
const (
	activeColumn    = "active,  "
	doneColumn      = "done  ,  "
	critColumn      = "crit,  "
	milestoneColumn = "milestone,  "
)

// TagBlockWidth is the width of the rendered tag block.
const TagBlockWidth = len(activeColumn) + len(critColumn) + len(milestoneColumn)

// renderer turns classified lines into output lines.
type renderer struct {
	widths  gantt.Widths
	measure gantt.WidthFunc
	out     []string
}

func newRenderer(widths gantt.Widths, measure gantt.WidthFunc) *renderer {
	return &renderer{widths: widths, measure: measure}
}

// render appends the output for l.
func (r *renderer) render(l gantt.Line) {
	switch l.Kind {
	case gantt.KindTitle, gantt.KindComment, gantt.KindDirective, gantt.KindOther:
		r.emit(l.Text)
	case gantt.KindKeyword:
		r.emit(keywordIndent + l.Text)
	case gantt.KindCommentedSection:
		r.emit("")
		r.emit(l.Text)
	case gantt.KindSection:
		r.emit("")
		r.emit(sectionIndent + gantt.SectionKeyword + " " + l.Title)
	case gantt.KindTask:
		r.emit(r.taskLine(l))
	case gantt.KindBlank:
		r.emit("")
	case gantt.KindSkip:
	}
}

func (r *renderer) emit(s string) {
	r.out = append(r.out, s)
}

// lines returns the rendered output with trailing blank lines collapsed and a
// single final empty line, so joining with "\n" ends in exactly one newline.
func (r *renderer) lines() []string {
	out := r.out
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return append(out, "")
}

func (r *renderer) taskLine(l gantt.Line) string {
	var b strings.Builder
	if l.Commented {
		b.WriteString(commentedTaskPrefix)
	} else {
		b.WriteString(taskIndent)
	}
	b.WriteString(r.pad(l.Title, r.widths.Title))
	b.WriteString(titleSeparator)

	meta := gantt.SplitMetadata(l.Metadata)
	writeTagBlock(&b, meta.Tags)
	r.writeItems(&b, meta.Fields())
	return b.String()
}

// writeTagBlock writes the three tag sub-columns. active wins over done.
func writeTagBlock(b *strings.Builder, tags gantt.TagSet) {
	switch {
	case tags.Active:
		b.WriteString(activeColumn)
	case tags.Done:
		b.WriteString(doneColumn)
	default:
		b.WriteString(blank(len(activeColumn)))
	}
	if tags.Crit {
		b.WriteString(critColumn)
	} else {
		b.WriteString(blank(len(critColumn)))
	}
	if tags.Milestone {
		b.WriteString(milestoneColumn)
	} else {
		b.WriteString(blank(len(milestoneColumn)))
	}
}

// writeItems writes the id, start and end columns. A column the task does not
// supply is filled with spaces so later columns stay aligned.
func (r *renderer) writeItems(b *strings.Builder, f gantt.Fields) {
	if !f.HasEnd {
		return
	}
	if f.HasID {
		b.WriteString(r.pad(f.ID, r.widths.ID))
		b.WriteString(itemSeparator)
	} else {
		b.WriteString(blank(r.widths.ID))
		b.WriteString(itemGap)
	}
	if f.HasStart {
		b.WriteString(r.pad(f.Start, r.widths.Start))
		b.WriteString(itemSeparator)
	} else {
		b.WriteString(blank(r.widths.Start))
		b.WriteString(itemGap)
	}
	b.WriteString(r.pad(f.End, r.widths.End))
	for _, extra := range f.Extra {
		b.WriteString(itemSeparator)
		b.WriteString(extra)
	}
}

// pad right-pads s with spaces to width columns. s is returned unchanged if
// it is already that wide.
func (r *renderer) pad(s string, width int) string {
	n := width - r.measure(s)
	if n <= 0 {
		return s
	}
	return s + blank(n)
}

func blank(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
