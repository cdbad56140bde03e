package style

import (
	_ "embed"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/pacls/pkg/errors"
)

// Style names recognised in theme files.
const (
	StyleRepo      = "Repo"
	StylePackage   = "Package"
	StyleVersion   = "Version"
	StyleInstalled = "Installed"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Faint      bool   `yaml:"faint,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// ThemeConfig is the YAML layout of a theme file.
type ThemeConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Theme holds the styles for the four pieces of a listing line.
type Theme struct {
	Repo      lipgloss.Style
	Package   lipgloss.Style
	Version   lipgloss.Style
	Installed lipgloss.Style
}

//go:embed theme.yaml
var embeddedTheme []byte

// DefaultTheme builds the embedded theme for renderer r.
func DefaultTheme(r *lipgloss.Renderer) *Theme {
	theme, err := LoadThemeData(embeddedTheme, r)
	if err != nil {
		return unstyledTheme(r)
	}
	return theme
}

// LoadThemeFile reads a YAML theme from path.
func LoadThemeFile(path string, r *lipgloss.Renderer) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeLoad, "read theme %s", path).
			WithDetail("path", path)
	}
	theme, err := LoadThemeData(data, r)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeLoad, "load theme %s", path).
			WithDetail("path", path)
	}
	return theme, nil
}

// LoadThemeData parses a YAML theme. Styles missing from the data render
// text unchanged.
func LoadThemeData(data []byte, r *lipgloss.Renderer) (*Theme, error) {
	var cfg ThemeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrThemeLoad, "parse theme")
	}

	colors := builtinColors()
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	build := func(name string) lipgloss.Style {
		def, ok := cfg.Styles[name]
		if !ok {
			return r.NewStyle()
		}
		return buildStyle(r, def, colors)
	}

	return &Theme{
		Repo:      build(StyleRepo),
		Package:   build(StylePackage),
		Version:   build(StyleVersion),
		Installed: build(StyleInstalled),
	}, nil
}

func unstyledTheme(r *lipgloss.Renderer) *Theme {
	return &Theme{
		Repo:      r.NewStyle(),
		Package:   r.NewStyle(),
		Version:   r.NewStyle(),
		Installed: r.NewStyle(),
	}
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(r *lipgloss.Renderer, def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := r.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Faint {
		style = style.Faint(true)
	}

	if def.Foreground != "" {
		style = style.Foreground(resolveColor(def.Foreground, colors))
	}
	if def.Background != "" {
		style = style.Background(resolveColor(def.Background, colors))
	}

	return style
}

// resolveColor looks name up in the color table and otherwise treats it
// as a literal lipgloss color.
func resolveColor(name string, colors map[string]lipgloss.AdaptiveColor) lipgloss.TerminalColor {
	if c, ok := colors[name]; ok {
		return c
	}
	return lipgloss.Color(name)
}

// Decorators returns the theme's styles as listing decorators.
func (t *Theme) Decorators() Decorators {
	return Decorators{
		Repo:      fromStyle(t.Repo),
		Package:   fromStyle(t.Package),
		Version:   fromStyle(t.Version),
		Installed: fromStyle(t.Installed),
	}
}
