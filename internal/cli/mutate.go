package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chaosnote/pkg/errors"
	"github.com/matzehuels/chaosnote/pkg/glitch"
	"github.com/matzehuels/chaosnote/pkg/mutate"
	"github.com/matzehuels/chaosnote/pkg/random"
)

// mutateOptions holds flags for the mutate command.
type mutateOptions struct {
	generations int
	all         bool
	styled      bool
}

// mutateCommand creates the mutate command for headless mutation.
func (c *CLI) mutateCommand() *cobra.Command {
	var opts mutateOptions

	cmd := &cobra.Command{
		Use:   "mutate [text...]",
		Short: "Apply random mutations to text",
		Long: `Apply the note mutation engine to text and print the result.

Text comes from the arguments, or from stdin when it is piped. With neither,
mutation starts from an empty note. Use --seed to make a run reproducible.`,
		Example: `  chaosnote mutate "hello world" -n 5 --all
  echo "Привет мир" | chaosnote mutate --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if opts.generations < 1 {
				return errors.New(errors.ErrCodeInvalidInput, "generations must be at least 1, got %d", opts.generations)
			}
			text, err := mutateInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return runMutate(cmd, random.New(cfg.Seed), text, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.generations, "generations", "n", 1, "number of mutations to apply")
	cmd.Flags().BoolVar(&opts.all, "all", false, "print every generation, not just the last")
	cmd.Flags().BoolVar(&opts.styled, "styled", false, "render output with random per-character styles")

	return cmd
}

func runMutate(cmd *cobra.Command, r random.Source, text string, opts mutateOptions) error {
	ctx := cmd.Context()
	prog := newProgress(loggerFromContext(ctx))
	m := mutate.New(r)
	out := cmd.OutOrStdout()

	for i := 1; i <= opts.generations; i++ {
		text = m.Mutate(ctx, text)
		if !opts.all && i < opts.generations {
			continue
		}
		line := text
		if opts.styled {
			line = glitch.Render(r, text)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	prog.done(fmt.Sprintf("Applied %d mutations", opts.generations))
	return nil
}

// mutateInput joins args, or reads stdin when it is not a terminal.
func mutateInput(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return "", nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
