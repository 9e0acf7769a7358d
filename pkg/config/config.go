// Package config loads CLI defaults for bashglob. The library itself
// never reads configuration; only the command line seeds its options
// from here.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/bashglob/pkg/bashglob"
	"github.com/arthur-debert/bashglob/pkg/errors"
)

// ConfigFileName is looked up in the working directory first, then in
// the XDG config directory under bashglob/.
const ConfigFileName = ".bashglob.toml"

// Config holds the default match options applied by the CLI before
// per-invocation flags.
type Config struct {
	Dotglob      bool   `koanf:"dotglob"`
	Extglob      bool   `koanf:"extglob"`
	Failglob     bool   `koanf:"failglob"`
	Globstar     bool   `koanf:"globstar"`
	Nocaseglob   bool   `koanf:"nocaseglob"`
	Nullglob     bool   `koanf:"nullglob"`
	StrictErrors bool   `koanf:"strict_errors"`
	Cwd          string `koanf:"cwd"`
}

// defaults mirror the zero value of bashglob.MatchOptions: every
// toggle off, lenient error handling.
var defaults = map[string]interface{}{
	"dotglob":       false,
	"extglob":       false,
	"failglob":      false,
	"globstar":      false,
	"nocaseglob":    false,
	"nullglob":      false,
	"strict_errors": false,
	"cwd":           "",
}

// Load builds the configuration by layering an optional config file
// over the built-in defaults. dir is the directory searched first for
// the config file; empty means the process working directory.
func Load(dir string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if path := findConfigFile(dir); path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	return &cfg, nil
}

// Options converts the configuration into a raw options record, ready
// for bashglob.Normalize.
func (c *Config) Options() *bashglob.MatchOptions {
	return &bashglob.MatchOptions{
		Dotglob:      c.Dotglob,
		Extglob:      c.Extglob,
		Failglob:     c.Failglob,
		Globstar:     c.Globstar,
		Nocaseglob:   c.Nocaseglob,
		Nullglob:     c.Nullglob,
		StrictErrors: c.StrictErrors,
		Cwd:          c.Cwd,
	}
}

// findConfigFile returns the first existing config file, or "" when
// none is present.
func findConfigFile(dir string) string {
	if dir == "" {
		dir = "."
	}

	candidates := []string{
		filepath.Join(dir, ConfigFileName),
		filepath.Join(configHome(), "bashglob", "bashglob.toml"),
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// configHome honors XDG_CONFIG_HOME even when it changed after process
// start (xdg caches the environment at init).
func configHome() string {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return home
	}
	return xdg.ConfigHome
}
