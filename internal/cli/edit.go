package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chaosnote/pkg/buildinfo"
	"github.com/matzehuels/chaosnote/pkg/config"
	"github.com/matzehuels/chaosnote/pkg/errors"
	"github.com/matzehuels/chaosnote/pkg/random"
	"github.com/matzehuels/chaosnote/pkg/scheduler"
	"github.com/matzehuels/chaosnote/pkg/store"
)

// editOptions holds flags for the edit command.
type editOptions struct {
	speed    int
	headline string
	paused   bool
	logFile  string
}

// editCommand creates the edit command, which is also the root default.
func (c *CLI) editCommand() *cobra.Command {
	var opts editOptions

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the chaotic note editor",
		Long: `Open the full-screen note editor.

The note is mutated every --speed milliseconds and the headline drifts on
its own timer. Both stop while chaos is paused.

Keys:
  ctrl+p         pause or resume chaos
  ctrl+l         clear the note
  ctrl+up/down   slow down or speed up by 50ms
  esc, ctrl+c    quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("speed") {
				cfg.SpeedMS = opts.speed
			}
			if cmd.Flags().Changed("headline") {
				cfg.Headline = opts.headline
			}
			if opts.paused {
				cfg.Autostart = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return c.runEditor(cmd.Context(), cfg, opts.logFile)
		},
	}

	cmd.Flags().IntVar(&opts.speed, "speed", 0, "note mutation period in ms (100-2000, step 50)")
	cmd.Flags().StringVar(&opts.headline, "headline", "", "headline to animate")
	cmd.Flags().BoolVar(&opts.paused, "paused", false, "start with chaos paused")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "log file (default $XDG_STATE_HOME/chaosnote/chaosnote.log)")
	_ = cmd.RegisterFlagCompletionFunc("speed", completeSpeed)

	return cmd
}

func (c *CLI) runEditor(ctx context.Context, cfg config.Config, logPath string) error {
	restore, err := c.redirectLog(logPath)
	if err != nil {
		return err
	}
	defer restore()

	logger := c.Logger
	ctx = withLogger(ctx, logger)

	st, err := newStore(cfg.Save)
	if err != nil {
		return fmt.Errorf("open note store: %w", err)
	}
	defer st.Close()

	note, _, err := st.Get(ctx, store.NoteKey)
	if err != nil {
		logger.Warn("load note", "error", err)
	}

	ticks := make(chan tickKind, tickBuffer)
	sched := scheduler.New(ctx, bridgeHandlers(ticks), scheduler.Options{
		Period:         cfg.Speed(),
		HeadlinePeriod: cfg.HeadlinePeriod(),
	})
	defer func() {
		sched.Close()
		close(ticks)
	}()
	if cfg.Autostart {
		sched.Start()
	}

	m := newEditorModel(ctx, sched, ticks, st, editorOptions{
		Random:   random.New(cfg.Seed),
		Headline: cfg.Headline,
		Note:     note,
		SpeedMS:  cfg.SpeedMS,
		Running:  cfg.Autostart,
		Logger:   logger,
	})

	logger.Info("editor opened", "version", buildinfo.Short(), "speed", cfg.Speed(), "save", cfg.Save)
	finalModel, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "run editor")
	}
	if fm, ok := finalModel.(EditorModel); ok {
		logger.Info("editor closed", "note_len", len([]rune(fm.Note())))
	}
	return nil
}

// redirectLog points the logger at a file while the editor owns the
// terminal. The returned func restores stderr.
func (c *CLI) redirectLog(path string) (func(), error) {
	if path == "" {
		dir, err := stateDir()
		if err != nil {
			c.Logger.SetOutput(io.Discard)
			return func() { c.Logger.SetOutput(os.Stderr) }, nil
		}
		path = filepath.Join(dir, logFileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	c.Logger.SetOutput(f)
	return func() {
		c.Logger.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
