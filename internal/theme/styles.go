package theme

import "github.com/charmbracelet/lipgloss"

// Styles is the fixed palette the panes render with.
type Styles struct {
	Default     lipgloss.Style
	Accent      lipgloss.Style // unselected list items
	Highlighted lipgloss.Style // selected item of an unfocused list
	Standout    lipgloss.Style // selected item of the focused list
	RedLetter   lipgloss.Style
	Title       lipgloss.Style // list column headings
	FrameTitle  lipgloss.Style
	Border      lipgloss.Style
	Help        lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Default:     lipgloss.NewStyle().Foreground(t.Primary),
		Accent:      lipgloss.NewStyle().Foreground(t.Secondary),
		Highlighted: lipgloss.NewStyle().Foreground(t.Selected).Bold(true),
		Standout:    lipgloss.NewStyle().Reverse(true),
		RedLetter:   lipgloss.NewStyle().Foreground(t.RedLetter),
		Title:       lipgloss.NewStyle().Underline(true),
		FrameTitle:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Border:      lipgloss.NewStyle().Foreground(t.Border),
		Help:        lipgloss.NewStyle().Foreground(t.Muted),
	}
}
