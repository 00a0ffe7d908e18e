package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chaosnote/pkg/store"
)

// noteCommand creates the note management command.
func (c *CLI) noteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Inspect the saved note",
	}

	cmd.AddCommand(c.noteShowCommand())
	cmd.AddCommand(c.noteClearCommand())
	cmd.AddCommand(c.notePathCommand())

	return cmd
}

// noteShowCommand creates the "note show" subcommand.
func (c *CLI) noteShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openNoteStore()
			if err != nil {
				return err
			}
			defer st.Close()

			note, ok, err := st.Get(cmd.Context(), store.NoteKey)
			if err != nil {
				return fmt.Errorf("read note: %w", err)
			}
			if !ok || note == "" {
				printInfo("No note saved")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), note)
			return nil
		},
	}
}

// noteClearCommand creates the "note clear" subcommand.
func (c *CLI) noteClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openNoteStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(cmd.Context(), store.NoteKey); err != nil {
				return fmt.Errorf("clear note: %w", err)
			}
			printSuccess("Note cleared")
			printDetail("Directory: %s", st.Dir())
			return nil
		},
	}
}

// notePathCommand creates the "note path" subcommand.
func (c *CLI) notePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the note file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openNoteStore()
			if err != nil {
				return err
			}
			defer st.Close()
			fmt.Fprintln(cmd.OutOrStdout(), st.Path(store.NoteKey))
			return nil
		},
	}
}

func openNoteStore() (*store.FileStore, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, fmt.Errorf("get data dir: %w", err)
	}
	return store.NewFileStore(dir)
}
