package style

import (
	"github.com/charmbracelet/lipgloss"
)

// ErrorStyle renders fatal errors on stderr.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ErrorColor).
	Bold(true)

// Decorator paints one piece of a listing line.
type Decorator func(string) string

// Decorators holds one decorator per piece of a decorated listing line.
type Decorators struct {
	Repo      Decorator
	Package   Decorator
	Version   Decorator
	Installed Decorator
}

// Plain returns decorators that leave text untouched.
func Plain() Decorators {
	identity := func(s string) string { return s }
	return Decorators{
		Repo:      identity,
		Package:   identity,
		Version:   identity,
		Installed: identity,
	}
}

func fromStyle(s lipgloss.Style) Decorator {
	return func(text string) string { return s.Render(text) }
}
