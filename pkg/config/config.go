package config

import (
	"time"

	"github.com/knadh/koanf/v2"
)

// Config is the effective pacls configuration. Components receive the
// section they read rather than the whole value.
type Config struct {
	AUR       AURConfig     `koanf:"aur"`
	HTTP      HTTPConfig    `koanf:"http"`
	Pacman    PacmanConfig  `koanf:"pacman"`
	Databases []string      `koanf:"databases"`
	Display   DisplayConfig `koanf:"display"`

	k *koanf.Koanf
}

// AURConfig locates the remote package index.
type AURConfig struct {
	URL       string `koanf:"url"`
	UserAgent string `koanf:"user_agent"`
}

// HTTPConfig tunes the HTTP client used for the index.
type HTTPConfig struct {
	// Timeout bounds the whole index request. Zero means no limit.
	Timeout time.Duration `koanf:"timeout"`
}

// PacmanConfig locates pacman and its databases.
type PacmanConfig struct {
	Bin    string `koanf:"bin"`
	Conf   string `koanf:"conf"`
	DBPath string `koanf:"dbpath"`
}

// DisplayConfig controls how listings look.
type DisplayConfig struct {
	Color string `koanf:"color"`
	Theme string `koanf:"theme"`
}
