package util

import (
	"path/filepath"
	"testing"
)

func TestDataDirUsesXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)
	if got, want := DataDir("proffy"), filepath.Join(base, "proffy"); got != want {
		t.Fatalf("DataDir = %q, want %q", got, want)
	}
}

func TestConfigDirUsesXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	if got, want := ConfigDir("proffy"), filepath.Join(base, "proffy"); got != want {
		t.Fatalf("ConfigDir = %q, want %q", got, want)
	}
}

func TestReportsDirUppercasesApp(t *testing.T) {
	docs := t.TempDir()
	t.Setenv("XDG_DOCUMENTS_DIR", docs)
	if got, want := ReportsDir("proffy"), filepath.Join(docs, "PROFFY"); got != want {
		t.Fatalf("ReportsDir = %q, want %q", got, want)
	}
}

func TestParseUserDir(t *testing.T) {
	data := "# comment\nXDG_DESKTOP_DIR=\"$HOME/Desktop\"\nXDG_DOCUMENTS_DIR=\"$HOME/Docs\"\n"
	if got := parseUserDir(data, "XDG_DOCUMENTS_DIR"); got != "$HOME/Docs" {
		t.Fatalf("parseUserDir = %q", got)
	}
	if got := parseUserDir(data, "XDG_MUSIC_DIR"); got != "" {
		t.Fatalf("expected empty for missing key, got %q", got)
	}
}
