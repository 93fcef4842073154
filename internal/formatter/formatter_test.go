package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/nibzard/ganttfmt/internal/gantt"
)

const mermaidExample = `gantt
    title A Gantt Diagram
    dateFormat YYYY-MM-DD
    section Section
        A task          :done, a1, 2014-01-01, 30d
        Another task    :active, a2, after a1, 20d
        A milestone : milestone, after a2
    section Another
        Task in Another :crit,taskid1,2014-01-12, 12d
        another task    :taskid2,after taskid1, 24d
`

func joinLines(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		widths gantt.Widths
	}{
		{
			name:  "mermaid example",
			input: mermaidExample,
			want: joinLines(
				"gantt",
				"  title A Gantt Diagram",
				"  dateFormat YYYY-MM-DD",
				"",
				"  section Section",
				"    A task           : done  ,                     a1     ,  2014-01-01   ,  30d     ",
				"    Another task     : active,                     a2     ,  after a1     ,  20d     ",
				"    A milestone      :                 milestone,                            after a2",
				"",
				"  section Another",
				"    Task in Another  :          crit,              taskid1,  2014-01-12   ,  12d     ",
				"    another task     :                             taskid2,  after taskid1,  24d     ",
				"",
			),
			widths: gantt.Widths{Title: 15, ID: 7, Start: 13, End: 8},
		},
		{
			name:  "commented task",
			input: "gantt\nsection S\n  A task :done, a1, 2014-01-01, 30d\n%% Old task :crit, 2d\n",
			want: joinLines(
				"gantt",
				"",
				"  section S",
				"    A task    : done  ,                     a1,  2014-01-01,  30d",
				"%%  Old task  :          crit,                                2d ",
				"",
			),
			widths: gantt.Widths{Title: 8, ID: 2, Start: 10, End: 3},
		},
		{
			name:  "blank lines",
			input: "gantt\ndateFormat YYYY-MM-DD\n\n\n\nsection A\nx : 1d\n\n\ny : 2d\n\n%% section B\n\n\n",
			want: joinLines(
				"gantt",
				"  dateFormat YYYY-MM-DD",
				"",
				"  section A",
				"    x  :                                   1d",
				"",
				"",
				"    y  :                                   2d",
				"",
				"%% section B",
				"",
			),
			widths: gantt.Widths{Title: 1, End: 2},
		},
		{
			name:  "extra items",
			input: "gantt\nsection S\nT : a, b, c, d, e\nLonger title : 1d\n",
			want: joinLines(
				"gantt",
				"",
				"  section S",
				"    T             :                             a,  b,  c ,  d,  e",
				"    Longer title  :                                     1d",
				"",
			),
			widths: gantt.Widths{Title: 12, ID: 1, Start: 1, End: 2},
		},
		{
			name:  "directive and keywords",
			input: "%%{init: {'theme': 'forest'}}%%\ngantt\n  accTitle: Plan\ntitle  Plan\nsection S\nÄpfel : crit, 2d\n",
			want: joinLines(
				"%%{init: {'theme': 'forest'}}%%",
				"gantt",
				"  accTitle: Plan",
				"  title  Plan",
				"",
				"  section S",
				"    Äpfel  :          crit,                    2d",
				"",
			),
			widths: gantt.Widths{Title: 5, End: 2},
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only blank lines",
			input: "\n\n\n",
			want:  "",
		},
		{
			name:  "no trailing newline",
			input: "gantt\n%% note",
			want:  "gantt\n%% note\n",
		},
		{
			name:  "unrecognized lines pass through trimmed",
			input: "   gantt\n  something odd  \n",
			want:  "gantt\nsomething odd\n",
		},
		{
			name:   "task without items",
			input:  "gantt\nPlanning : done\n",
			want:   "gantt\n    Planning  : done  ,                     \n",
			widths: gantt.Widths{Title: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := New().FormatWithResult(tt.input)
			if res.Content != tt.want {
				t.Errorf("Format() mismatch\ngot:\n%q\nwant:\n%q", res.Content, tt.want)
			}
			if res.Widths != tt.widths {
				t.Errorf("Widths = %+v, want %+v", res.Widths, tt.widths)
			}
		})
	}
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		mermaidExample,
		"gantt\nsection S\n  A task :done, a1, 2014-01-01, 30d\n%% Old task :crit, 2d\n",
		"gantt\ndateFormat YYYY-MM-DD\n\n\n\nsection A\nx : 1d\n\n\ny : 2d\n\n%% section B\n\n\n",
		"gantt\nsection S\nT : a, b, c, d, e\nLonger title : 1d\n",
		"%%{init: {'theme': 'forest'}}%%\ngantt\n  accTitle: Plan\ntitle  Plan\nsection S\nÄpfel : crit, 2d\n",
	}

	f := New()
	for _, input := range inputs {
		once := f.Format(input)
		twice := f.FormatWithResult(once)
		if twice.Content != once {
			t.Errorf("second pass changed output\nfirst:\n%q\nsecond:\n%q", once, twice.Content)
		}
		if twice.Changed {
			t.Errorf("Changed = true on already formatted input %q", once)
		}
	}
}

func TestFormatAlignment(t *testing.T) {
	out := New().Format(mermaidExample)

	colon := -1
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "    ") {
			continue
		}
		idx := strings.Index(line, titleSeparator)
		if idx < 0 {
			t.Fatalf("task line without separator: %q", line)
		}
		if colon == -1 {
			colon = idx
		} else if idx != colon {
			t.Errorf("separator at %d, want %d in %q", idx, colon, line)
		}

		rest := line[idx+len(titleSeparator):]
		if len(rest) < TagBlockWidth {
			t.Errorf("tag block shorter than %d in %q", TagBlockWidth, line)
		}
	}
	if colon == -1 {
		t.Fatal("no task lines found")
	}
}

func TestFormatSectionSpacing(t *testing.T) {
	out := New().Format("gantt\n\n\n\nsection A\na : 1d\nsection B\n\n%% section C\nb : 1d\n")

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if line != "  section A" && line != "  section B" && line != "%% section C" {
			continue
		}
		if i == 0 || lines[i-1] != "" {
			t.Errorf("%q not preceded by a blank line", line)
		}
		if i >= 2 && lines[i-2] == "" {
			t.Errorf("%q preceded by more than one blank line", line)
		}
	}
	if !strings.HasSuffix(out, "\n") || strings.HasSuffix(out, "\n\n") {
		t.Errorf("output should end in exactly one newline: %q", out)
	}
}

func TestFormatActiveWinsOverDone(t *testing.T) {
	out := New().Format("x : done, active, 1d\n")
	want := "    x  : active,                           1d\n"
	if out != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestFormatChanged(t *testing.T) {
	f := New()
	if !f.FormatWithResult("gantt\nsection A\n").Changed {
		t.Error("Changed = false for unformatted input")
	}
	if f.FormatWithResult("gantt\n\n  section A\n").Changed {
		t.Error("Changed = true for formatted input")
	}
}

func TestFormatDisplayWidth(t *testing.T) {
	input := "設計 : 1d\nab : 2d\n"

	runes := New().Format(input)
	display := New(WithMeasure(gantt.DisplayWidth)).Format(input)

	if want := "    設計  :                                   1d\n    ab  :                                   2d\n"; runes != want {
		t.Errorf("rune width output = %q, want %q", runes, want)
	}
	if want := "    設計  :                                   1d\n    ab    :                                   2d\n"; display != want {
		t.Errorf("display width output = %q, want %q", display, want)
	}
}

func TestFormatExtraKeywords(t *testing.T) {
	input := "gantt\ncustomOption on\n"

	if got := New().Format(input); got != input {
		t.Errorf("default vocabulary output = %q, want %q", got, input)
	}
	f := New(WithVocabulary(gantt.DefaultVocabulary().WithKeywords("customOption")))
	if got, want := f.Format(input), "gantt\n  customOption on\n"; got != want {
		t.Errorf("extended vocabulary output = %q, want %q", got, want)
	}
}

func TestWithMeasureNil(t *testing.T) {
	f := New(WithMeasure(nil))
	if f.Measure == nil {
		t.Fatal("WithMeasure(nil) cleared the measure")
	}
}

func TestFormatLogsWidths(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	New(WithLogger(logger)).Format(mermaidExample)

	got := buf.String()
	if !strings.Contains(got, "column widths") || !strings.Contains(got, "title=15") {
		t.Errorf("debug log = %q, want column widths entry", got)
	}
}
