package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Built-in adaptive colors. Themes loaded from YAML refer to these by name
// and may add their own.
var (
	RepoColor = lipgloss.AdaptiveColor{
		Light: "#7C3AED", // Violet
		Dark:  "#C084FC",
	}

	PackageColor = lipgloss.AdaptiveColor{
		Light: "#212529", // Almost black
		Dark:  "#F8F9FA", // Almost white
	}

	VersionColor = lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	}

	InstalledColor = lipgloss.AdaptiveColor{
		Light: "#0EA5E9", // Sky blue
		Dark:  "#38BDF8",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}
)

func builtinColors() map[string]lipgloss.AdaptiveColor {
	return map[string]lipgloss.AdaptiveColor{
		"repo":      RepoColor,
		"package":   PackageColor,
		"version":   VersionColor,
		"installed": InstalledColor,
		"error":     ErrorColor,
	}
}
