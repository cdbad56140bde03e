package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
func GetHomeDirectory() (string, bool) {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home, true
	}
	if home := os.Getenv("HOME"); home != "" {
		return home, true
	}
	return "", false
}

// ExpandPath expands a leading ~ and environment variables in a path.
// Paths that cannot be expanded are returned unchanged.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	path = os.ExpandEnv(path)

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, ok := GetHomeDirectory()
		if !ok {
			return path
		}
		return filepath.Join(home, path[1:])
	}

	return path
}
