// Package color models the displayable colors a highlight rule can carry:
// a fixed set of named terminal presets or an explicit 24-bit RGB triple.
// Values are immutable once constructed and render to ANSI escape
// sequences as a pure function.
package color

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/hilite/pkg/errors"
)

// Reset is the ANSI escape that terminates every colorized span.
const Reset = "\x1b[0m"

// Preset identifies one of the fixed named terminal foreground colors.
type Preset int

const (
	Red Preset = iota
	Yellow
	Blue
	Green
	Cyan
	Magenta
)

// presetNames maps preset values to their configuration-file names.
var presetNames = map[Preset]string{
	Red:     "Red",
	Yellow:  "Yellow",
	Blue:    "Blue",
	Green:   "Green",
	Cyan:    "Cyan",
	Magenta: "Magenta",
}

// presetEscapes maps preset values to the standard 8-color foreground escapes.
var presetEscapes = map[Preset]string{
	Red:     "\x1b[31m",
	Yellow:  "\x1b[33m",
	Blue:    "\x1b[34m",
	Green:   "\x1b[32m",
	Cyan:    "\x1b[36m",
	Magenta: "\x1b[35m",
}

// String returns the configuration-file name of the preset
func (p Preset) String() string {
	if name, ok := presetNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePreset parses a configuration-file color name into a Preset
func ParsePreset(name string) (Preset, error) {
	for p, n := range presetNames {
		if n == name {
			return p, nil
		}
	}
	return 0, errors.Newf(errors.ErrConfigValid, "unknown color name %q", name)
}

// Color is an immutable displayable color: either a named preset or an
// explicit RGB triple.
type Color struct {
	preset  Preset
	r, g, b uint8
	isRGB   bool
}

// NewPreset creates a Color from a named preset
func NewPreset(p Preset) Color {
	return Color{preset: p}
}

// NewRGB creates a Color from explicit 8-bit channel values
func NewRGB(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b, isRGB: true}
}

// IsRGB reports whether the color is an explicit RGB triple
func (c Color) IsRGB() bool {
	return c.isRGB
}

// ANSI renders the color as a foreground escape sequence. Presets use the
// standard 8-color codes; RGB triples use the 24-bit set-foreground form.
func (c Color) ANSI() string {
	if c.isRGB {
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.r, c.g, c.b)
	}
	return presetEscapes[c.preset]
}

// String returns a human-readable description, used in logs
func (c Color) String() string {
	if c.isRGB {
		return fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b)
	}
	return c.preset.String()
}

// rgbDoc is the mapping form a color takes in a configuration document.
// Pointers distinguish missing channels from zero ones.
type rgbDoc struct {
	R *int `yaml:"r"`
	G *int `yaml:"g"`
	B *int `yaml:"b"`
}

// UnmarshalYAML decodes a color from either form a configuration document
// allows: a preset name scalar or an {r, g, b} mapping.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var name string
		if err := value.Decode(&name); err != nil {
			return errors.Wrap(err, errors.ErrConfigParse, "invalid color value")
		}
		p, err := ParsePreset(name)
		if err != nil {
			return err
		}
		*c = NewPreset(p)
		return nil

	case yaml.MappingNode:
		var doc rgbDoc
		if err := value.Decode(&doc); err != nil {
			return errors.Wrap(err, errors.ErrConfigParse, "invalid rgb color")
		}
		channels := map[string]*int{"r": doc.R, "g": doc.G, "b": doc.B}
		for name, ch := range channels {
			if ch == nil {
				return errors.Newf(errors.ErrConfigValid, "rgb color is missing channel %q", name)
			}
			if *ch < 0 || *ch > 255 {
				return errors.Newf(errors.ErrConfigValid, "rgb channel %q out of range: %d", name, *ch)
			}
		}
		*c = NewRGB(uint8(*doc.R), uint8(*doc.G), uint8(*doc.B))
		return nil

	default:
		return errors.New(errors.ErrConfigValid, "color must be a preset name or an {r, g, b} mapping")
	}
}
