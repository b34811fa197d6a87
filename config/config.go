// Package config handles report layout presets loaded from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gridpdf/gridpdf/builder"
	"github.com/gridpdf/gridpdf/fonts"
	"github.com/gridpdf/gridpdf/ir/semantic"
)

// Config is the root configuration structure.
type Config struct {
	Page  PageConfig  `yaml:"page"`
	Table TableConfig `yaml:"table"`
	Font  FontConfig  `yaml:"font"`
}

// PageConfig holds page geometry settings. Width/Height override Size when
// both are set.
type PageConfig struct {
	Size      string  `yaml:"size"` // a4, a5, letter, legal
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Margin    float64 `yaml:"margin"`
	Landscape bool    `yaml:"landscape"`
}

// TableConfig holds table band settings.
type TableConfig struct {
	RowHeight  float64 `yaml:"row_height"`
	CellMargin float64 `yaml:"cell_margin"`
}

// FontConfig selects one of the built-in fonts.
type FontConfig struct {
	Family string  `yaml:"family"`
	Size   float64 `yaml:"size"`
}

// Default returns the default configuration: portrait A4, 20pt margins,
// Helvetica 10 on 15pt rows.
func Default() *Config {
	return &Config{
		Page:  PageConfig{Size: "a4", Margin: 20},
		Table: TableConfig{RowHeight: 15, CellMargin: 2},
		Font:  FontConfig{Family: "Helvetica", Size: 10},
	}
}

// Load reads a YAML preset over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the preset for values rendering cannot work with.
func (c *Config) Validate() error {
	if _, err := c.PaperSize(); err != nil {
		return err
	}
	if c.Page.Margin < 0 {
		return fmt.Errorf("config: negative margin %g", c.Page.Margin)
	}
	if c.Table.RowHeight <= 0 {
		return fmt.Errorf("config: row height %g must be positive", c.Table.RowHeight)
	}
	if c.Table.CellMargin < 0 {
		return fmt.Errorf("config: negative cell margin %g", c.Table.CellMargin)
	}
	if c.Font.Size <= 0 {
		return fmt.Errorf("config: font size %g must be positive", c.Font.Size)
	}
	if _, err := c.ResolveFont(); err != nil {
		return err
	}
	return nil
}

// PaperSize resolves the configured page size in points.
func (c *Config) PaperSize() (builder.PaperSize, error) {
	if c.Page.Width > 0 && c.Page.Height > 0 {
		return builder.PaperSize{Width: c.Page.Width, Height: c.Page.Height}, nil
	}
	size, ok := builder.Paper(c.Page.Size)
	if !ok {
		return builder.PaperSize{}, fmt.Errorf("config: unknown page size %q", c.Page.Size)
	}
	return size, nil
}

// ResolveFont returns the configured built-in font.
func (c *Config) ResolveFont() (*semantic.Font, error) {
	return fonts.Standard(c.Font.Family)
}

// DrawingArea returns the usable logical width and height between margins.
// In landscape the logical axes swap: the vertical drawing axis runs along
// the physical page width.
func (c *Config) DrawingArea() (width, height float64, err error) {
	size, err := c.PaperSize()
	if err != nil {
		return 0, 0, err
	}
	if c.Page.Landscape {
		return size.Height - 2*c.Page.Margin, size.Width - 2*c.Page.Margin, nil
	}
	return size.Width - 2*c.Page.Margin, size.Height - 2*c.Page.Margin, nil
}
