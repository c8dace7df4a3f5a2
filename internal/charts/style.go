// Package charts renders the five simulation chart artifacts as PNG files.
package charts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Style is the process-wide chart styling, passed by value into every
// renderer so none of them depend on ambient global state. Zero values
// are not meaningful; start from DefaultStyle and override.
type Style struct {
	Width          int     `yaml:"width"`           // timeline/composite panel width, px
	Height         int     `yaml:"height"`          // timeline panel height, px
	PieWidth       int     `yaml:"pie_width"`       // single pie panel width, px
	PieHeight      int     `yaml:"pie_height"`      // single pie panel height, px
	FontSize       float64 `yaml:"font_size"`       // base label font size, pt
	LineWidth      float64 `yaml:"line_width"`      // series stroke width, px
	BandAlpha      uint8   `yaml:"band_alpha"`      // regime background opacity, 0-255
	HighlightAlpha uint8   `yaml:"highlight_alpha"` // breach highlight opacity, 0-255
}

// DefaultStyle mirrors the reference figure sizing (roughly 14x6 inches
// at screen resolution) and the 15%/20% band opacities.
func DefaultStyle() Style {
	return Style{
		Width:          1400,
		Height:         600,
		PieWidth:       1000,
		PieHeight:      800,
		FontSize:       11,
		LineWidth:      1.5,
		BandAlpha:      38,
		HighlightAlpha: 51,
	}
}

// LoadStyle reads YAML overrides on top of DefaultStyle.
func LoadStyle(path string) (Style, error) {
	st := DefaultStyle()

	raw, err := os.ReadFile(path)
	if err != nil {
		return st, fmt.Errorf("failed to read style file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &st); err != nil {
		return st, fmt.Errorf("failed to parse style file %s: %w", path, err)
	}
	return st, nil
}
