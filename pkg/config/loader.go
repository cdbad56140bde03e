package config

import (
	_ "embed"
	stderrors "errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/pacls/pkg/errors"
	"github.com/arthur-debert/pacls/pkg/logging"
	"github.com/arthur-debert/pacls/pkg/style"
	"github.com/arthur-debert/pacls/pkg/utils"
)

// EnvPrefix prefixes every environment variable read as configuration.
const EnvPrefix = "PACLS_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions selects the sources layered over the defaults.
type LoadOptions struct {
	// File is an explicit configuration file. It must exist when set.
	File string
	// Overrides are dotted keys set from the command line.
	Overrides map[string]interface{}
}

// DefaultFile is the user configuration file read when no --config is given.
func DefaultFile() string {
	return filepath.Join(xdg.ConfigHome, "pacls", "pacls.toml")
}

// Load builds the effective configuration.
func Load(opts LoadOptions) (*Config, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	path := utils.ExpandPath(opts.File)
	if path == "" {
		path = DefaultFile()
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", path).
			WithDetail("path", path)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		log.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment: PACLS_AUR_USER_AGENT sets aur.user_agent
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg := Config{k: k}
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	cfg.expandPaths()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// expandPaths resolves ~ and environment variables in file settings.
func (c *Config) expandPaths() {
	c.Pacman.Bin = utils.ExpandPath(c.Pacman.Bin)
	c.Pacman.Conf = utils.ExpandPath(c.Pacman.Conf)
	c.Pacman.DBPath = utils.ExpandPath(c.Pacman.DBPath)
	c.Display.Theme = utils.ExpandPath(c.Display.Theme)
}

// envSections are the top-level keys that may be set from the environment.
var envSections = map[string]bool{
	"aur":       true,
	"http":      true,
	"pacman":    true,
	"databases": true,
	"display":   true,
}

// envKey maps PACLS_SECTION_KEY to section.key. Only the first underscore
// separates; the rest belong to the key name. Variables outside the known
// sections, such as PACLS_LOG_FILE, are skipped.
func envKey(s string) string {
	key := strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	section, _, _ := strings.Cut(key, ".")
	if !envSections[section] {
		return ""
	}
	return key
}

// Validate checks values no component can work without.
func (c *Config) Validate() error {
	if c.AUR.URL == "" {
		return errors.New(errors.ErrConfigValid, "aur.url must not be empty")
	}
	if _, err := url.Parse(c.AUR.URL); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "aur.url %q", c.AUR.URL)
	}
	if c.HTTP.Timeout < 0 {
		return errors.Newf(errors.ErrConfigValid, "http.timeout must not be negative, got %s", c.HTTP.Timeout)
	}
	if c.Pacman.Bin == "" {
		return errors.New(errors.ErrConfigValid, "pacman.bin must not be empty")
	}
	if _, err := style.ParseColorMode(c.Display.Color); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "display.color")
	}
	return nil
}

// TOML renders the merged configuration sources.
func (c *Config) TOML() ([]byte, error) {
	if c.k == nil {
		return nil, errors.New(errors.ErrInternal, "configuration was not loaded")
	}
	return gotoml.Marshal(c.k.Raw())
}
