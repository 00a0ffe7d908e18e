package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chaosnote/pkg/errors"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for chaosnote.

Bash:
  $ source <(chaosnote completion bash)

Zsh:
  $ chaosnote completion zsh > "${fpath[1]}/_chaosnote"

Fish:
  $ chaosnote completion fish > ~/.config/fish/completions/chaosnote.fish

PowerShell:
  PS> chaosnote completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// completeSpeed offers every valid --speed value.
func completeSpeed(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	var values []string
	for ms := errors.MinSpeedMS; ms <= errors.MaxSpeedMS; ms += errors.SpeedStepMS {
		values = append(values, strconv.Itoa(ms))
	}
	return values, cobra.ShellCompDirectiveNoFileComp
}
