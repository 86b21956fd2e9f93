// seehuhn.de/go/spider - interactive radar charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package spider

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Margin is the space around the chart area, in pixels.
type Margin struct {
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
}

// Palette assigns a color to each model, by model index.
type Palette func(i int) color.Color

// Config holds the layout and style parameters of a chart.
// A Config is not modified after the chart has been rendered.
type Config struct {
	// W and H are the width and height of the chart area.
	// The radius of the outermost ring is min(W/2, H/2).
	W, H float64

	// Margin is added around the chart area to make room for labels.
	Margin Margin

	// Levels is the number of background rings.
	Levels int

	// MaxValue is the value represented by the outermost ring.
	MaxValue float64

	// LabelPositionRatio gives the distance of the axis labels from the
	// centre, relative to the outermost ring.
	LabelPositionRatio float64

	// TextWrapWidth is the width in pixels after which axis labels are
	// broken into several lines.
	TextWrapWidth float64

	// AreaOpacity is the fill opacity of the model areas.
	AreaOpacity float64

	// VertexRadius is the radius of the vertex markers.
	VertexRadius float64

	// BackgroundOpacity is the fill opacity of the background rings.
	BackgroundOpacity float64

	// StrokeWidth is the width of the model outlines.
	StrokeWidth float64

	// Color assigns colors to models.
	Color Palette

	// Logger receives debug messages.  If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultConfig returns the default chart configuration.
func DefaultConfig() Config {
	return Config{
		W:                  300,
		H:                  300,
		Margin:             Margin{Top: 60, Right: 60, Bottom: 60, Left: 60},
		Levels:             5,
		MaxValue:           1.0,
		LabelPositionRatio: 1.2,
		TextWrapWidth:      60,
		AreaOpacity:        0.35,
		VertexRadius:       6,
		BackgroundOpacity:  0.1,
		StrokeWidth:        2,
		Color:              Category10,
	}
}

// Radius returns the radius of the outermost ring.
func (c Config) Radius() float64 {
	return min(c.W/2, c.H/2)
}

// Overrides lists configuration values which replace the defaults.
// Nil fields keep the default value.  Overrides can be decoded from TOML;
// keys which are not recognised are ignored.
type Overrides struct {
	W                  *float64 `toml:"w"`
	H                  *float64 `toml:"h"`
	Margin             *Margin  `toml:"margin"`
	Levels             *int     `toml:"levels"`
	MaxValue           *float64 `toml:"max_value"`
	LabelPositionRatio *float64 `toml:"label_position_ratio"`
	TextWrapWidth      *float64 `toml:"text_wrap_width"`
	AreaOpacity        *float64 `toml:"area_opacity"`
	VertexRadius       *float64 `toml:"vertex_radius"`
	BackgroundOpacity  *float64 `toml:"background_opacity"`
	StrokeWidth        *float64 `toml:"stroke_width"`

	// Colors is a list of hex colors, used in order and repeated as needed.
	// Color takes precedence if both are set.
	Colors []string `toml:"colors"`

	Color  Palette      `toml:"-"`
	Logger *slog.Logger `toml:"-"`
}

// Apply returns a copy of c with all non-nil fields of o applied.
func (c Config) Apply(o *Overrides) (Config, error) {
	if o == nil {
		return c, nil
	}
	set(&c.W, o.W)
	set(&c.H, o.H)
	set(&c.Margin, o.Margin)
	set(&c.Levels, o.Levels)
	set(&c.MaxValue, o.MaxValue)
	set(&c.LabelPositionRatio, o.LabelPositionRatio)
	set(&c.TextWrapWidth, o.TextWrapWidth)
	set(&c.AreaOpacity, o.AreaOpacity)
	set(&c.VertexRadius, o.VertexRadius)
	set(&c.BackgroundOpacity, o.BackgroundOpacity)
	set(&c.StrokeWidth, o.StrokeWidth)

	switch {
	case o.Color != nil:
		c.Color = o.Color
	case len(o.Colors) > 0:
		p, err := HexPalette(o.Colors...)
		if err != nil {
			return c, err
		}
		c.Color = p
	}
	if o.Logger != nil {
		c.Logger = o.Logger
	}
	return c, c.check()
}

// check reports options which cannot be drawn.
func (c Config) check() error {
	switch {
	case !(c.W > 0) || !(c.H > 0):
		return fmt.Errorf("%w: chart size %gx%g", ErrInvalidConfig, c.W, c.H)
	case c.Levels < 0:
		return fmt.Errorf("%w: %d levels", ErrInvalidConfig, c.Levels)
	case !(c.MaxValue > 0):
		return fmt.Errorf("%w: maximum value %g", ErrInvalidConfig, c.MaxValue)
	}
	return nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Category10 is the default palette, with ten distinct colors.
func Category10(i int) color.Color {
	return category10[mod(i, len(category10))]
}

var category10 = mustHexColors(
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
)

// HexPalette returns a palette which cycles through the given colors.
// Colors are given as "#rrggbb" or "#rgb".
func HexPalette(hex ...string) (Palette, error) {
	if len(hex) == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	colors, err := hexColors(hex...)
	if err != nil {
		return nil, err
	}
	return func(i int) color.Color {
		return colors[mod(i, len(colors))]
	}, nil
}

func hexColors(hex ...string) ([]color.Color, error) {
	res := make([]color.Color, len(hex))
	for i, h := range hex {
		digits := strings.TrimPrefix(strings.TrimSpace(h), "#")
		if len(digits) != 3 && len(digits) != 6 || strings.Trim(digits, "0123456789abcdefABCDEF") != "" {
			return nil, fmt.Errorf("invalid color %q", h)
		}
		res[i] = drawing.ColorFromHex(digits)
	}
	return res, nil
}

func mustHexColors(hex ...string) []color.Color {
	res, err := hexColors(hex...)
	if err != nil {
		panic(err)
	}
	return res
}

func mod(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
