// Package config handles configuration management for pacls.
// It supports loading configuration from multiple sources including
// TOML files, environment variables, and command-line flags.
//
// Sources are applied in this order, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file: --config, or $XDG_CONFIG_HOME/pacls/pacls.toml
//  3. PACLS_* environment variables (PACLS_AUR_URL sets aur.url)
//  4. command-line overrides
package config
