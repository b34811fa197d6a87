package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	size, err := cfg.PaperSize()
	if err != nil {
		t.Fatal(err)
	}
	if size.Width != 595 || size.Height != 842 {
		t.Errorf("default paper = %+v, want A4", size)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writePreset(t, `
page:
  size: letter
  margin: 36
  landscape: true
table:
  row_height: 22
font:
  family: Courier
  size: 9
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Page.Size != "letter" || cfg.Page.Margin != 36 || !cfg.Page.Landscape {
		t.Errorf("page config = %+v", cfg.Page)
	}
	if cfg.Table.RowHeight != 22 {
		t.Errorf("row height = %g, want 22", cfg.Table.RowHeight)
	}
	// Unset keys keep their defaults.
	if cfg.Table.CellMargin != 2 {
		t.Errorf("cell margin = %g, want default 2", cfg.Table.CellMargin)
	}
	if cfg.Font.Family != "Courier" || cfg.Font.Size != 9 {
		t.Errorf("font config = %+v", cfg.Font)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct{ name, yaml string }{
		{"unknown size", "page:\n  size: tabloid\n"},
		{"negative margin", "page:\n  margin: -1\n"},
		{"zero row height", "table:\n  row_height: 0\n"},
		{"unknown font", "font:\n  family: Comic-Sans\n"},
		{"zero font size", "font:\n  size: 0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writePreset(t, tc.yaml)); err == nil {
				t.Error("bad preset accepted")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestExplicitPageDimensions(t *testing.T) {
	cfg := Default()
	cfg.Page.Width = 400
	cfg.Page.Height = 600
	size, err := cfg.PaperSize()
	if err != nil {
		t.Fatal(err)
	}
	if size.Width != 400 || size.Height != 600 {
		t.Errorf("explicit size ignored: %+v", size)
	}
}

func TestDrawingArea(t *testing.T) {
	cfg := Default() // A4, margin 20
	w, h, err := cfg.DrawingArea()
	if err != nil {
		t.Fatal(err)
	}
	if w != 555 || h != 802 {
		t.Errorf("portrait area = %gx%g, want 555x802", w, h)
	}

	cfg.Page.Landscape = true
	w, h, err = cfg.DrawingArea()
	if err != nil {
		t.Fatal(err)
	}
	if w != 802 || h != 555 {
		t.Errorf("landscape area = %gx%g, want 802x555", w, h)
	}
}
