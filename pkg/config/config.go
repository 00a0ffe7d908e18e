// Package config loads chaosnote settings from a TOML file.
//
// Missing keys keep their defaults, unknown keys are rejected, and every
// value is validated before use:
//
//	speed_ms    = 750                   # note mutation period, 100-2000 step 50
//	headline_ms = 120                   # headline tick period
//	headline    = "Заметки-Метаморфозы"
//	seed        = 0                     # 0 seeds from the clock
//	save        = true                  # persist the note between sessions
//	autostart   = true                  # start the chaos on launch
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chaosnote/pkg/errors"
	"github.com/matzehuels/chaosnote/pkg/headline"
)

const appName = "chaosnote"

// Config holds all user settings.
type Config struct {
	SpeedMS    int    `toml:"speed_ms"`
	HeadlineMS int    `toml:"headline_ms"`
	Headline   string `toml:"headline"`
	Seed       uint64 `toml:"seed"`
	Save       bool   `toml:"save"`
	Autostart  bool   `toml:"autostart"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		SpeedMS:    750,
		HeadlineMS: 120,
		Headline:   headline.Default,
		Save:       true,
		Autostart:  true,
	}
}

// Load reads path over the defaults. A missing file yields the defaults
// unless required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return Default(), nil
		}
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeNotFound, err, "config file %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := errors.ValidateSpeed(c.SpeedMS); err != nil {
		return err
	}
	if err := errors.ValidatePeriod("headline_ms", c.HeadlineMS); err != nil {
		return err
	}
	return errors.ValidateHeadline(c.Headline)
}

// Speed returns the note mutation period.
func (c Config) Speed() time.Duration {
	return time.Duration(c.SpeedMS) * time.Millisecond
}

// HeadlinePeriod returns the headline tick period.
func (c Config) HeadlinePeriod() time.Duration {
	return time.Duration(c.HeadlineMS) * time.Millisecond
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// DefaultPath returns the config file path using XDG standard
// (~/.config/chaosnote/config.toml).
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
