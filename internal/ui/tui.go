// Package ui provides optional terminal interfaces.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Decision is what the user chose to do with a previewed result.
type Decision int

const (
	DecisionPending Decision = iota
	DecisionWrite
	DecisionDiscard
)

const defaultHeight = 24

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	footerStyle  = lipgloss.NewStyle().Faint(true)
)

// RunPreview shows formatted next to a toggle for original and returns
// DecisionWrite if the user accepted the result.
func RunPreview(ctx context.Context, path, original, formatted string) (Decision, error) {
	if !IsTTY(os.Stdout) {
		return DecisionDiscard, fmt.Errorf("preview requires a TTY")
	}

	model := newPreviewModel(path, original, formatted)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return DecisionDiscard, err
	}
	if m, ok := finalModel.(*previewModel); ok && m.decision == DecisionWrite {
		return DecisionWrite, nil
	}
	return DecisionDiscard, nil
}

type previewModel struct {
	path         string
	original     []string
	formatted    []string
	changed      []bool
	changedCount int
	showOriginal bool
	offset       int
	height       int
	decision     Decision
}

func newPreviewModel(path, original, formatted string) *previewModel {
	m := &previewModel{
		path:      path,
		original:  strings.Split(original, "\n"),
		formatted: strings.Split(formatted, "\n"),
		height:    defaultHeight,
	}

	// A formatted line counts as changed if the original has no identical line.
	seen := make(map[string]int, len(m.original))
	for _, line := range m.original {
		seen[line]++
	}
	m.changed = make([]bool, len(m.formatted))
	for i, line := range m.formatted {
		if seen[line] > 0 {
			seen[line]--
			continue
		}
		m.changed[i] = true
		m.changedCount++
	}
	return m
}

func (m *previewModel) Init() tea.Cmd {
	return nil
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.clampOffset()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.decision = DecisionDiscard
			return m, tea.Quit
		case "w", "enter":
			m.decision = DecisionWrite
			return m, tea.Quit
		case "tab":
			m.showOriginal = !m.showOriginal
			m.clampOffset()
		case "j", "down":
			m.offset++
			m.clampOffset()
		case "k", "up":
			m.offset--
			m.clampOffset()
		case "pgdown", " ":
			m.offset += m.bodyHeight()
			m.clampOffset()
		case "pgup":
			m.offset -= m.bodyHeight()
			m.clampOffset()
		case "g", "home":
			m.offset = 0
		case "G", "end":
			m.offset = len(m.lines())
			m.clampOffset()
		}
	}
	return m, nil
}

func (m *previewModel) View() string {
	var b strings.Builder

	view := "formatted"
	if m.showOriginal {
		view = "original"
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)", m.path, view)))
	b.WriteString(fmt.Sprintf("  %d changed line(s)\n", m.changedCount))

	lines := m.lines()
	end := min(m.offset+m.bodyHeight(), len(lines))
	for i := m.offset; i < end; i++ {
		if !m.showOriginal && m.changed[i] {
			b.WriteString(changedStyle.Render("~ " + lines[i]))
		} else {
			b.WriteString("  " + lines[i])
		}
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render("j/k scroll | tab original/formatted | w write | q discard"))
	return b.String()
}

func (m *previewModel) lines() []string {
	if m.showOriginal {
		return m.original
	}
	return m.formatted
}

// bodyHeight leaves room for the header and footer lines.
func (m *previewModel) bodyHeight() int {
	return max(m.height-2, 1)
}

func (m *previewModel) clampOffset() {
	maxOffset := max(len(m.lines())-m.bodyHeight(), 0)
	m.offset = min(max(m.offset, 0), maxOffset)
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
