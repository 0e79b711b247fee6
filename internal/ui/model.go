package ui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bible-tui/internal/theme"
)

type Options struct {
	Width       int
	Height      int
	Translation string
	Book        string
	Theme       theme.Theme
}

// Model is the bubbletea program: four selection lists on the left and the
// passage on the right. Every key press is fully handled, including the
// passage lookup, before the next one is read.
type Model struct {
	nav      *Navigator
	text     *TextPane
	keys     keyMap
	help     help.Model
	styles   theme.Styles
	lines    []Line
	showHelp bool
	width    int
	height   int
	err      error
}

// NewModel builds the lists and loads the first passage. Any store error
// is returned before the program starts.
func NewModel(store Store, opts Options) (Model, error) {
	if opts.Theme.Name == "" {
		opts.Theme = theme.CatppuccinMocha
	}
	nav, err := NewNavigator(store, NavigatorOptions{
		PageSize:    opts.Height - 2,
		Translation: opts.Translation,
		Book:        opts.Book,
	})
	if err != nil {
		return Model{}, err
	}

	styles := theme.NewStyles(opts.Theme)
	h := help.New()
	h.Styles.FullKey = styles.FrameTitle
	h.Styles.FullDesc = styles.Default
	h.Styles.FullSeparator = styles.Help

	m := Model{
		nav:    nav,
		text:   NewTextPane(opts.Width-listsWidth, opts.Height),
		keys:   DefaultKeyMap(),
		help:   h,
		styles: styles,
		width:  opts.Width,
		height: opts.Height,
	}
	if err := m.nav.Refresh(); err != nil {
		return Model{}, err
	}
	if err := m.loadPassage(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Help) {
			m.showHelp = !m.showHelp
		}
		quit, err := m.nav.Dispatch(commandFor(msg, m.keys))
		if quit {
			return m, tea.Quit
		}
		if err == nil {
			err = m.loadPassage()
		}
		if err != nil {
			return m.fail(err)
		}

	case tea.WindowSizeMsg:
		if msg.Width == m.width && msg.Height == m.height {
			return m, nil
		}
		m.width, m.height = msg.Width, msg.Height
		m.nav.SetPageSize(msg.Height - 2)
		m.text.SetSize(msg.Width-listsWidth, msg.Height)
		if err := m.loadPassage(); err != nil {
			return m.fail(err)
		}
	}
	return m, nil
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	slog.Error("lookup failed", slog.Any("error", err))
	m.err = err
	return m, tea.Quit
}

// loadPassage fetches and wraps the text for the current selection.
func (m *Model) loadPassage() error {
	passage, err := m.nav.Passage()
	if err != nil {
		return err
	}
	m.lines = Wrap(passage, m.text.WrapWidth())
	return nil
}

func (m Model) View() string {
	if m.err != nil {
		return ""
	}
	columns := make([]string, 0, listCount+1)
	for _, l := range m.nav.Lists() {
		columns = append(columns, l.View(m.styles))
	}

	lines := m.lines
	if m.showHelp {
		lines = nil
		for _, row := range strings.Split(m.help.FullHelpView(m.keys.FullHelp()), "\n") {
			lines = append(lines, Line{Text: row})
		}
	}
	columns = append(columns, m.text.Render(m.nav.Title(), lines, m.styles))
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// Err returns the lookup error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Navigator() *Navigator {
	return m.nav
}

// Lines returns the wrapped passage currently on screen.
func (m Model) Lines() []Line {
	return m.lines
}
