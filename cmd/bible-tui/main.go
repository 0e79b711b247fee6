package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"bible-tui/internal/cache"
	"bible-tui/internal/redletter"
	"bible-tui/internal/scripture"
	"bible-tui/internal/settings"
	"bible-tui/internal/theme"
	"bible-tui/internal/ui"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (optional)")
	logPath := flag.String("log", "", "write logs to this file (optional)")
	flag.Parse()

	s, err := settings.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bible-tui: %v\n", err)
		return 1
	}
	if *logPath != "" {
		s.LogFile = *logPath
	}

	closeLog, err := setupLogging(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bible-tui: %v\n", err)
		return 1
	}
	defer closeLog()

	model, err := newModel(s)
	if err != nil {
		slog.Error("startup failed", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "bible-tui: %v\n", err)
		return 1
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return 1
	}
	if m, ok := final.(ui.Model); ok && m.Err() != nil {
		fmt.Fprintf(os.Stderr, "bible-tui: %v\n", m.Err())
		return 1
	}
	return 0
}

func newModel(s settings.Settings) (ui.Model, error) {
	c, err := cache.New(s.DataDir)
	if err != nil {
		return ui.Model{}, err
	}
	bibles, err := c.LoadAll()
	if err != nil {
		return ui.Model{}, err
	}
	if len(bibles) == 0 {
		return ui.Model{}, fmt.Errorf("no translations in %s (add .xml or .json files)", c.Dir())
	}
	if size, err := c.GetCacheSize(); err == nil {
		slog.Debug("translation dir", slog.String("dir", c.Dir()), slog.Int64("bytes", size))
	}

	table := redletter.Default()
	slog.Debug("red-letter table", slog.Int("books", table.Books()))
	lib, err := scripture.NewLibrary(bibles, table)
	if err != nil {
		return ui.Model{}, err
	}

	width, height := terminalSize()
	return ui.NewModel(lib, ui.Options{
		Width:       width,
		Height:      height,
		Translation: s.Translation,
		Book:        s.Book,
		Theme:       theme.GetTheme(s.Theme),
	})
}

// terminalSize reads the geometry once at startup.
func terminalSize() (int, int) {
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}

// setupLogging installs the default slog logger. The terminal belongs to
// the UI, so logs go to a file or nowhere.
func setupLogging(s settings.Settings) (func(), error) {
	level := slog.LevelInfo
	if s.Debug {
		level = slog.LevelDebug
	}
	if s.LogFile == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}
	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return func() { _ = f.Close() }, nil
}
