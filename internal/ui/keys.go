package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Command is a navigation action decoded from a key press.
type Command int

const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandFocusLeft
	CommandFocusRight
	CommandTop
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandFocusLeft:
		return "focus-left"
	case CommandFocusRight:
		return "focus-right"
	case CommandTop:
		return "top"
	case CommandQuit:
		return "quit"
	default:
		return "none"
	}
}

// keyMap defines all keyboard bindings for the reader.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Top   key.Binding
	Quit  key.Binding
	Help  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k/up", "Previous item"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j/down", "Next item"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("h/left", "Previous column"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("l/right", "Next column"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "First item"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top},
		{k.Left, k.Right},
		{k.Help, k.Quit},
	}
}

// commands is the complete key table. Keys matching no entry decode to
// CommandNone.
func (k keyMap) commands() []struct {
	binding key.Binding
	command Command
} {
	return []struct {
		binding key.Binding
		command Command
	}{
		{k.Up, CommandUp},
		{k.Down, CommandDown},
		{k.Left, CommandFocusLeft},
		{k.Right, CommandFocusRight},
		{k.Top, CommandTop},
		{k.Quit, CommandQuit},
	}
}

func commandFor(msg tea.KeyMsg, k keyMap) Command {
	for _, entry := range k.commands() {
		if key.Matches(msg, entry.binding) {
			return entry.command
		}
	}
	return CommandNone
}
