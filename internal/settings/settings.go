// Package settings loads the optional bible-tui config file.
// The file lives at ~/.config/bible-tui/config.toml and is never written.
package settings

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

type Settings struct {
	DataDir     string
	Translation string // empty selects the first available translation
	Book        string
	Theme       string
	LogFile     string // empty discards logs
	Debug       bool
}

const (
	defaultConfigPath = "~/.config/bible-tui/config.toml"
	defaultDataDir    = "~/.local/share/bible-tui/translations"
	defaultBook       = "Matthew"
	defaultTheme      = "catppuccin-mocha"
)

// Defaults returns the settings used when no config file exists.
func Defaults() Settings {
	return Settings{
		DataDir: mustExpand(defaultDataDir),
		Book:    defaultBook,
		Theme:   defaultTheme,
	}
}

// Load reads path, or the default location when path is blank. A missing
// file yields Defaults.
func Load(path string) (Settings, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Settings{}, err
	}

	s := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return Settings{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return Settings{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataDir     string `toml:"data_dir"`
		Translation string `toml:"translation"`
		Book        string `toml:"book"`
		Theme       string `toml:"theme"`
		LogFile     string `toml:"log_file"`
		Debug       bool   `toml:"debug"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Settings{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		s.DataDir = mustExpand(dir)
	}
	s.Translation = strings.TrimSpace(raw.Translation)
	if book := strings.TrimSpace(raw.Book); book != "" {
		s.Book = book
	}
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		s.Theme = theme
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		s.LogFile = mustExpand(logFile)
	}
	s.Debug = raw.Debug

	return s, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
