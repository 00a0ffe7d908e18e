package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chaosnote/pkg/config"
	"github.com/matzehuels/chaosnote/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "chaosnote"

	// logFileName is where the editor logs while it owns the terminal.
	logFileName = "chaosnote.log"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Session identifies one invocation in the logs.
	Session string

	configPath string
	seed       uint64
	noSave     bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig reads the config file and applies the global flags on top.
// An explicit --config must exist; the default location is optional.
// Without a resolvable default location the built-in defaults are used.
func (c *CLI) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	path, required := c.configPath, true
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path, required = p, false
		}
	}

	if path != "" {
		var err error
		if cfg, err = config.Load(path, required); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = c.seed
	}
	if c.noSave {
		cfg.Save = false
	}
	return cfg, cfg.Validate()
}

// =============================================================================
// Store Factory
// =============================================================================

// newStore returns the note store, or a null store when saving is off.
func newStore(save bool) (store.Store, error) {
	if !save {
		return store.NewNullStore(), nil
	}
	dir, err := dataDir()
	if err != nil {
		return store.NewNullStore(), nil
	}
	return store.NewFileStore(dir)
}

// =============================================================================
// Paths
// =============================================================================

// dataDir returns the note directory using XDG standard (~/.local/share/chaosnote/).
func dataDir() (string, error) {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// stateDir returns the log directory using XDG standard (~/.local/state/chaosnote/).
func stateDir() (string, error) {
	return xdgDir("XDG_STATE_HOME", ".local", "state")
}

func xdgDir(env string, fallback ...string) (string, error) {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append(append([]string{home}, fallback...), appName)...), nil
}
