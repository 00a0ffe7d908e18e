package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chaosnote/pkg/errors"
	"github.com/matzehuels/chaosnote/pkg/headline"
	"github.com/matzehuels/chaosnote/pkg/random"
	"github.com/matzehuels/chaosnote/pkg/scheduler"
)

// headlineCommand creates the headline command, which animates the
// headline on the current terminal line.
func (c *CLI) headlineCommand() *cobra.Command {
	var (
		frames int
		text   string
	)

	cmd := &cobra.Command{
		Use:   "headline",
		Short: "Animate the headline in the terminal",
		Long: `Animate the headline on a single terminal line.

Runs for --frames ticks, or until interrupted when --frames is 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("text") {
				cfg.Headline = text
				if err := errors.ValidateHeadline(text); err != nil {
					return err
				}
			}
			if frames < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "frames cannot be negative, got %d", frames)
			}

			ctx := cmd.Context()
			anim := headline.New(random.New(cfg.Seed), cfg.Headline)
			line := newLiveLine(cmd.OutOrStdout())
			line.Set(renderHeadline(anim.Text()))

			done := make(chan struct{})
			n := 0
			sched := scheduler.New(ctx, scheduler.Handlers{
				Headline: func(ctx context.Context) {
					if frames > 0 && n >= frames {
						return
					}
					line.Set(renderHeadline(anim.Step(ctx)))
					n++
					if frames > 0 && n >= frames {
						close(done)
					}
				},
			}, scheduler.Options{HeadlinePeriod: cfg.HeadlinePeriod()})
			sched.Start()

			select {
			case <-done:
			case <-ctx.Done():
			}
			sched.Close()
			line.Done()

			// Interrupting an endless animation is the normal way out.
			if frames > 0 && ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&frames, "frames", 0, "number of ticks to animate (0 runs until interrupted)")
	cmd.Flags().StringVar(&text, "text", "", "headline to animate (default from config)")

	return cmd
}
