package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"bible-tui/internal/scripture"
	"bible-tui/internal/theme"
)

func TestWrapLine_ShortLineUnchanged(t *testing.T) {
	for _, highlighted := range []bool{false, true} {
		got := WrapLine("(1) Jesus wept.", highlighted, 40)
		if len(got) != 1 || got[0].Text != "(1) Jesus wept." || got[0].Highlighted != highlighted {
			t.Fatalf("WrapLine = %+v, want the line unchanged", got)
		}
	}
	exact := strings.Repeat("x", 10)
	if got := WrapLine(exact, false, 10); len(got) != 1 || got[0].Text != exact {
		t.Fatalf("WrapLine at exact width = %+v", got)
	}
}

func TestWrapLine_BreaksBetweenWords(t *testing.T) {
	text := "(16) For God so loved the world, that he gave his only begotten Son"
	got := WrapLine(text, true, 20)
	if len(got) < 4 {
		t.Fatalf("WrapLine produced %d lines, want at least 4", len(got))
	}
	var words []string
	for _, line := range got {
		if !line.Highlighted {
			t.Fatalf("wrapped line %q lost its highlight", line.Text)
		}
		if w := ansi.StringWidth(line.Text); w > 20 {
			t.Fatalf("line %q is %d wide, want <= 20", line.Text, w)
		}
		words = append(words, strings.Fields(line.Text)...)
	}
	if strings.Join(words, " ") != text {
		t.Fatalf("wrapping changed the words: %q", strings.Join(words, " "))
	}
}

func TestWrapLine_LongWordKeptWhole(t *testing.T) {
	got := WrapLine("a Mahershalalhashbaz b", false, 8)
	found := false
	for _, line := range got {
		if strings.Contains(line.Text, "Mahershalalhashbaz") {
			found = true
		}
	}
	if !found {
		t.Fatalf("long word was split: %+v", got)
	}
}

func TestWrap_Passage(t *testing.T) {
	passage := []scripture.VerseText{
		{Label: "(1)", Body: "Blessed are the poor in spirit", Highlighted: true},
		{Label: "(2)", Body: "And he said", Highlighted: false},
	}
	got := Wrap(passage, 15)
	if got[0].Text != "(1) Blessed are" || !got[0].Highlighted {
		t.Fatalf("first line = %+v", got[0])
	}
	last := got[len(got)-1]
	if last.Text != "(2) And he said" || last.Highlighted {
		t.Fatalf("last line = %+v", last)
	}
}

func TestTextPane_Render(t *testing.T) {
	styles := theme.NewStyles(theme.Classic)
	pane := NewTextPane(20, 5)
	lines := []Line{
		{Text: "first"},
		{Text: "second line that is far too long", Highlighted: true},
		{Text: "third"},
		{Text: "fourth is dropped"},
	}
	rows := strings.Split(pane.Render("John 3:16 [KJV]", lines, styles), "\n")
	if len(rows) != 5 {
		t.Fatalf("Render produced %d rows, want 5", len(rows))
	}
	for i, row := range rows {
		if w := ansi.StringWidth(row); w != 20 {
			t.Fatalf("row %d %q is %d wide, want 20", i, row, w)
		}
	}
	top := ansi.Strip(rows[0])
	if !strings.Contains(top, "John 3:16 [KJV]") || !strings.HasPrefix(top, "┌") || !strings.HasSuffix(top, "┐") {
		t.Fatalf("top border = %q", top)
	}
	if got := ansi.Strip(rows[2]); got != "│second line that i│" {
		t.Fatalf("row 2 = %q, want truncated line", got)
	}
	if strings.Contains(strings.Join(rows, "\n"), "fourth") {
		t.Fatalf("line past capacity was rendered")
	}
	if got := ansi.Strip(rows[4]); !strings.HasPrefix(got, "└") {
		t.Fatalf("bottom border = %q", got)
	}
}

func TestTextPane_Geometry(t *testing.T) {
	pane := NewTextPane(60, 24)
	if pane.WrapWidth() != 57 {
		t.Fatalf("WrapWidth = %d, want 57", pane.WrapWidth())
	}
	if pane.Capacity() != 22 {
		t.Fatalf("Capacity = %d, want 22", pane.Capacity())
	}
	pane.SetSize(1, 1)
	if got := pane.Render("t", nil, theme.NewStyles(theme.Classic)); got != "" {
		t.Fatalf("Render on a degenerate pane = %q, want empty", got)
	}
}
