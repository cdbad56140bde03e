package style

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode selects when listings are colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses a --color value. The empty string means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode: %s", s)
	}
}

// IsTerminal reports whether w is a terminal that should receive colors.
// NO_COLOR disables colors regardless of the terminal.
func IsTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewRenderer returns a lipgloss renderer for w honouring mode.
func NewRenderer(w io.Writer, mode ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)

	switch mode {
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		if !IsTerminal(w) {
			// Nothing to query for the profile or background.
			r.SetColorProfile(termenv.ANSI256)
			r.SetHasDarkBackground(true)
		}
	default:
		if !IsTerminal(w) {
			r.SetColorProfile(termenv.Ascii)
		}
	}

	return r
}
