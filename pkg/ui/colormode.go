// Package ui decides how output should be presented based on flags,
// environment, and terminal capabilities.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode controls whether the output stream is colorized
type ColorMode int

const (
	// ColorAuto colorizes only when stdout is a color-capable terminal
	ColorAuto ColorMode = iota
	// ColorAlways colorizes unconditionally
	ColorAlways
	// ColorNever passes lines through unchanged
	ColorNever
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses a --color flag value into a ColorMode
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode: %s", s)
	}
}

// ShouldColorize reports whether the run should emit color escapes on
// output. In auto mode it checks NO_COLOR, whether output is a terminal,
// and whether the terminal supports color at all.
func ShouldColorize(mode ColorMode, output *os.File) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}
