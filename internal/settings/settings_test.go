package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := filepath.Join(home, ".local/share/bible-tui/translations")
	if s.DataDir != want {
		t.Fatalf("DataDir = %q, want %q", s.DataDir, want)
	}
	if s.Book != defaultBook || s.Theme != defaultTheme {
		t.Fatalf("Book/Theme = %q/%q, want %q/%q", s.Book, s.Theme, defaultBook, defaultTheme)
	}
	if s.Translation != "" || s.LogFile != "" || s.Debug {
		t.Fatalf("unexpected non-zero optional settings: %+v", s)
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !strings.HasPrefix(s.DataDir, home) {
		t.Fatalf("DataDir = %q, want it under HOME %q", s.DataDir, home)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
data_dir = "  ~/bibles  "
translation = " KJV "
book = "John"
theme = "dracula"
log_file = "~/bible.log"
debug = true
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s.DataDir != filepath.Join(home, "bibles") {
		t.Fatalf("DataDir = %q, want %q", s.DataDir, filepath.Join(home, "bibles"))
	}
	if s.Translation != "KJV" {
		t.Fatalf("Translation = %q, want KJV", s.Translation)
	}
	if s.Book != "John" || s.Theme != "dracula" {
		t.Fatalf("Book/Theme = %q/%q, want John/dracula", s.Book, s.Theme)
	}
	if s.LogFile != filepath.Join(home, "bible.log") {
		t.Fatalf("LogFile = %q, want %q", s.LogFile, filepath.Join(home, "bible.log"))
	}
	if !s.Debug {
		t.Fatalf("Debug = false, want true")
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
data_dir = "   "
book = ""
theme = " "
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := Defaults(); s != want {
		t.Fatalf("Load = %+v, want %+v", s, want)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := writeConfig(t, `book = [`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
