package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"bible-tui/internal/redletter"
	"bible-tui/internal/scripture"
	"bible-tui/internal/scripture/scripturetest"
	"bible-tui/internal/theme"
)

func newTestModel(t *testing.T, store Store) Model {
	t.Helper()
	m, err := NewModel(store, Options{
		Width:  100,
		Height: 24,
		Book:   "Matthew",
		Theme:  theme.Classic,
	})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, cmd := m.Update(k)
		m = next.(Model)
		if m.Err() != nil {
			t.Fatalf("Update(%s) failed: %v", k, m.Err())
		}
		if cmd != nil {
			t.Fatalf("Update(%s) returned a command", k)
		}
	}
	return m
}

func TestModel_StartState(t *testing.T) {
	m := newTestModel(t, scripturetest.Library(redletter.Default()))
	nav := m.Navigator()
	if nav.Focus() != ListBook {
		t.Fatalf("Focus = %d, want book list", nav.Focus())
	}
	want := Reference{Translation: "KJV", Book: "Matthew", Chapter: "1", Verse: "1"}
	if got := nav.Selection(); got != want {
		t.Fatalf("Selection = %+v, want %+v", got, want)
	}
	if nav.List(ListChapter).PageSize() != 22 {
		t.Fatalf("PageSize = %d, want rows-2", nav.List(ListChapter).PageSize())
	}
	if len(m.Lines()) == 0 || !strings.HasPrefix(m.Lines()[0].Text, "(1) Matthew 1:1") {
		t.Fatalf("first passage line = %+v", m.Lines())
	}
}

func TestModel_ThreeDownsOnChapterList(t *testing.T) {
	m := newTestModel(t, scripturetest.Library(redletter.Default()))
	m = press(t, m, runeKey('l'), runeKey('j'), runeKey('j'), runeKey('j'))

	chapters := m.Navigator().List(ListChapter)
	if got := chapters.Selection().Value; got != "4" {
		t.Fatalf("chapter = %q, want 4", got)
	}
	if lower, _ := chapters.Bounds(); lower != 0 {
		t.Fatalf("chapter window lower = %d, want 0", lower)
	}
	if !strings.Contains(ansi.Strip(m.View()), "Matthew 4:1 [KJV]") {
		t.Fatalf("View does not show the new title")
	}
}

func TestModel_RedLetterLines(t *testing.T) {
	m := newTestModel(t, scripturetest.Library(redletter.Default()))
	m = press(t, m, runeKey('l'))
	for i := 0; i < 4; i++ {
		m = press(t, m, runeKey('j'))
	}
	m = press(t, m, runeKey('l'), runeKey('j'), runeKey('j'))

	if m.Navigator().Title() != "Matthew 5:3 [KJV]" {
		t.Fatalf("Title = %q", m.Navigator().Title())
	}
	for _, line := range m.Lines() {
		if !line.Highlighted {
			t.Fatalf("line %q of Matthew 5:3.. not highlighted", line.Text)
		}
	}
}

func TestModel_UnknownKeyStillRefreshes(t *testing.T) {
	m := newTestModel(t, scripturetest.Library(nil))
	before := m.Navigator().Selection()
	m = press(t, m, runeKey('x'), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Navigator().Selection() != before {
		t.Fatalf("unknown keys changed the selection")
	}
	if len(m.Lines()) == 0 {
		t.Fatalf("passage missing after unknown key")
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, scripturetest.Library(nil))
	for _, k := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("Update(%s) returned no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("Update(%s) did not quit", k)
		}
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t, scripturetest.Library(nil))
	m = press(t, m, runeKey('?'))
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Next column") {
		t.Fatalf("help overlay not shown")
	}
	m = press(t, m, runeKey('?'))
	if strings.Contains(ansi.Strip(m.View()), "Next column") {
		t.Fatalf("help overlay not hidden")
	}
}

func TestModel_Resize(t *testing.T) {
	m := newTestModel(t, scripturetest.Library(nil))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = next.(Model)
	for i, l := range m.Navigator().Lists() {
		if l.PageSize() != 8 {
			t.Fatalf("list %d PageSize = %d, want 8", i, l.PageSize())
		}
	}
	rows := strings.Split(m.View(), "\n")
	if len(rows) != 10 {
		t.Fatalf("View has %d rows, want 10", len(rows))
	}
	for _, line := range m.Lines() {
		if w := ansi.StringWidth(line.Text); w > 80-listsWidth-3 {
			t.Fatalf("line %q wider than the wrap width", line.Text)
		}
	}
}

// failingStore serves a normal library until broken is set.
type failingStore struct {
	*scripture.Library
	broken bool
}

var errBroken = errors.New("broken store")

func (s *failingStore) ChapterText(translation, book, chapter string, verseStart int) ([]scripture.VerseText, error) {
	if s.broken {
		return nil, errBroken
	}
	return s.Library.ChapterText(translation, book, chapter, verseStart)
}

func TestModel_StoreErrorQuits(t *testing.T) {
	store := &failingStore{Library: scripturetest.Library(nil)}
	m := newTestModel(t, store)
	store.broken = true

	next, cmd := m.Update(runeKey('j'))
	m = next.(Model)
	if !errors.Is(m.Err(), errBroken) {
		t.Fatalf("Err = %v, want errBroken", m.Err())
	}
	if cmd == nil {
		t.Fatalf("store error did not quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("store error returned %T, want tea.QuitMsg", cmd())
	}
}

func TestNewModel_StoreErrorFails(t *testing.T) {
	store := &failingStore{Library: scripturetest.Library(nil), broken: true}
	if _, err := NewModel(store, Options{Width: 80, Height: 24}); !errors.Is(err, errBroken) {
		t.Fatalf("NewModel error = %v, want errBroken", err)
	}
}
