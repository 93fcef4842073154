package ui

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewPreviewModelChangedLines(t *testing.T) {
	original := "gantt\n\nsection A\nx : 1d\n"
	formatted := "gantt\n\n  section A\n    x  :  1d\n"

	m := newPreviewModel("chart.mmd", original, formatted)

	want := []bool{false, false, true, true, false}
	if len(m.changed) != len(want) {
		t.Fatalf("changed has %d entries, want %d", len(m.changed), len(want))
	}
	for i := range want {
		if m.changed[i] != want[i] {
			t.Errorf("changed[%d] = %v, want %v (%q)", i, m.changed[i], want[i], m.formatted[i])
		}
	}
	if m.changedCount != 2 {
		t.Errorf("changedCount = %d, want 2", m.changedCount)
	}
}

func TestNewPreviewModelRepeatedLines(t *testing.T) {
	m := newPreviewModel("c", "a\n", "a\na\n")
	if m.changedCount != 1 {
		t.Errorf("changedCount = %d, want 1", m.changedCount)
	}
}

func TestPreviewDecisions(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want Decision
	}{
		{"q discards", keyRunes("q"), DecisionDiscard},
		{"esc discards", tea.KeyMsg{Type: tea.KeyEsc}, DecisionDiscard},
		{"ctrl+c discards", tea.KeyMsg{Type: tea.KeyCtrlC}, DecisionDiscard},
		{"w writes", keyRunes("w"), DecisionWrite},
		{"enter writes", tea.KeyMsg{Type: tea.KeyEnter}, DecisionWrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newPreviewModel("chart.mmd", "a\n", "b\n")
			_, cmd := m.Update(tt.key)
			if !isQuit(cmd) {
				t.Error("expected quit command")
			}
			if m.decision != tt.want {
				t.Errorf("decision = %v, want %v", m.decision, tt.want)
			}
		})
	}
}

func TestPreviewToggle(t *testing.T) {
	m := newPreviewModel("chart.mmd", "gantt\ntitle X\n", "gantt\n  title X\n")

	if !strings.Contains(m.View(), "chart.mmd (formatted)") {
		t.Errorf("default view should be formatted:\n%s", m.View())
	}
	if !strings.Contains(m.View(), "1 changed line(s)") {
		t.Errorf("header should count changes:\n%s", m.View())
	}
	if !strings.Contains(m.View(), "~ "+"  title X") {
		t.Errorf("changed line should be marked:\n%s", m.View())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if cmd != nil {
		t.Error("tab should not return a command")
	}
	view := m.View()
	if !strings.Contains(view, "chart.mmd (original)") {
		t.Errorf("tab should switch to original:\n%s", view)
	}
	if strings.Contains(view, "~ ") {
		t.Errorf("original view should not mark lines:\n%s", view)
	}
	if m.decision != DecisionPending {
		t.Errorf("decision = %v, want pending", m.decision)
	}
}

func TestPreviewScrolling(t *testing.T) {
	var b bytes.Buffer
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	text := b.String()
	m := newPreviewModel("chart.mmd", text, text)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})

	// 31 lines including the final empty one, 10 visible.
	maxOffset := 31 - 10

	m.Update(keyRunes("k"))
	if m.offset != 0 {
		t.Errorf("offset after up at top = %d, want 0", m.offset)
	}
	m.Update(keyRunes("j"))
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.offset != 2 {
		t.Errorf("offset after two downs = %d, want 2", m.offset)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if m.offset != 12 {
		t.Errorf("offset after pgdown = %d, want 12", m.offset)
	}
	m.Update(keyRunes("G"))
	if m.offset != maxOffset {
		t.Errorf("offset after end = %d, want %d", m.offset, maxOffset)
	}
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if m.offset != maxOffset {
		t.Errorf("offset past end = %d, want %d", m.offset, maxOffset)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	if m.offset != maxOffset-10 {
		t.Errorf("offset after pgup = %d, want %d", m.offset, maxOffset-10)
	}
	m.Update(keyRunes("g"))
	if m.offset != 0 {
		t.Errorf("offset after home = %d, want 0", m.offset)
	}

	view := m.View()
	if !strings.Contains(view, "line 9") || strings.Contains(view, "line 10") {
		t.Errorf("view should show lines 0-9:\n%s", view)
	}
}

func TestPreviewTinyWindow(t *testing.T) {
	m := newPreviewModel("c", "a\nb\nc\n", "a\nb\nc\n")
	m.Update(tea.WindowSizeMsg{Width: 10, Height: 1})
	if got := m.bodyHeight(); got != 1 {
		t.Errorf("bodyHeight = %d, want 1", got)
	}
}

func TestIsTTY(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("a buffer is not a TTY")
	}
}
