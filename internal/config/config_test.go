package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Layout.CellWidth != DefaultCellWidth {
		t.Errorf("expected default cell width, got %v", cfg.Layout.CellWidth)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "textchain.toml", `
theme = "theme.json"

[layout]
cell_width = 8.0
cell_height = 16.0
region_gap = 2.0
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "theme.json" {
		t.Errorf("expected theme path, got %q", cfg.Theme)
	}
	if cfg.Layout.CellWidth != 8 || cfg.Layout.CellHeight != 16 || cfg.Layout.RegionGap != 2 {
		t.Errorf("unexpected layout %+v", cfg.Layout)
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := writeFile(t, "bad.toml", "not [valid")
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoadNormalizesValues(t *testing.T) {
	path := writeFile(t, "textchain.toml", `
[layout]
cell_width = -4.0
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Layout.CellWidth != DefaultCellWidth {
		t.Errorf("non-positive cell width should fall back, got %v", cfg.Layout.CellWidth)
	}
}

func TestLoadTheme(t *testing.T) {
	path := writeFile(t, "theme.json", `{
		"text": "#ffffff",
		"selection": "#0000ff",
		"unknown": 42
	}`)
	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatal(err)
	}
	if theme.Text.Hex() != "#ffffff" {
		t.Errorf("expected #ffffff, got %s", theme.Text.Hex())
	}
	if theme.Selection.Hex() != "#0000ff" {
		t.Errorf("expected #0000ff, got %s", theme.Selection.Hex())
	}
	// Keys not present keep their defaults.
	if theme.Caret != DefaultTheme().Caret {
		t.Error("missing keys should keep defaults")
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	theme, err := LoadTheme(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing theme should not be an error: %v", err)
	}
	if theme != DefaultTheme() {
		t.Error("expected default theme")
	}
}

func TestLoadThemeInvalidJSON(t *testing.T) {
	path := writeFile(t, "theme.json", "{broken")
	if _, err := LoadTheme(path); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}

func TestLoadThemeBadColorIgnored(t *testing.T) {
	path := writeFile(t, "theme.json", `{"caret": "notacolor"}`)
	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatal(err)
	}
	if theme.Caret != DefaultTheme().Caret {
		t.Error("unparseable colors should keep the default")
	}
}
