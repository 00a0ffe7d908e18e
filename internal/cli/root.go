package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chaosnote/pkg/buildinfo"
	"github.com/matzehuels/chaosnote/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command without a subcommand opens the editor.
func (c *CLI) RootCommand() *cobra.Command {
	edit := c.editCommand()

	root := &cobra.Command{
		Use:   appName,
		Short: "chaosnote is a note editor that will not leave your notes alone",
		Long: `chaosnote is a terminal note editor that keeps rewriting what you type.

While the chaos runs, the note is mutated on a timer: symbols appear,
letters swap and change case, words turn to gibberish. The headline drifts
through random Cyrillic letters, and the rendered note is restyled on every
frame.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.Session = uuid.NewString()
			c.Logger = c.Logger.With("session", c.Session[:8])
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))

			hooks := newLogHooks(c.Logger)
			observability.SetMutationHooks(hooks)
			observability.SetHeadlineHooks(hooks)
			observability.SetSchedulerHooks(hooks)
			return nil
		},
		RunE: edit.RunE,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/chaosnote/config.toml)")
	root.PersistentFlags().Uint64Var(&c.seed, "seed", 0, "random seed (0 seeds from the clock)")
	root.PersistentFlags().BoolVar(&c.noSave, "no-save", false, "do not load or save the note")
	root.Flags().AddFlagSet(edit.LocalFlags())

	// Register all subcommands
	root.AddCommand(edit)
	root.AddCommand(c.mutateCommand())
	root.AddCommand(c.headlineCommand())
	root.AddCommand(c.noteCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}
