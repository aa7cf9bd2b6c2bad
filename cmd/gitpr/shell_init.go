package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/connormckay/gitpr/internal/shell"
)

var shellInitCmd = &cobra.Command{
	Use:   "shell-init <shell>",
	Short: "Generate shell integration code",
	Long: `Generate shell integration code for the specified shell.

This sets up:
  - A shell function wrapping gitpr so directory changes requested by
    the work-dir update flow happen in your interactive shell
  - Tab completion for gitpr commands

The function gives each invocation its own signal file (exported as
GITPR_CHDIR_FILE), runs the real binary with your arguments and
terminal untouched, changes directory if the binary asked for it, and
returns the binary's exit status.

Supported shells: bash, zsh, fish

Setup:
  For bash, add to ~/.bashrc:
    eval "$(gitpr shell-init bash)"

  For zsh, add to ~/.zshrc:
    eval "$(gitpr shell-init zsh)"

  For fish, add to ~/.config/fish/config.fish:
    gitpr shell-init fish | source

Examples:
  gitpr shell-init bash
  gitpr shell-init zsh
  gitpr shell-init fish`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish"},
	RunE:      runShellInit,
}

func runShellInit(cmd *cobra.Command, args []string) error {
	script, err := shell.Script(args[0])
	if err != nil {
		return err
	}

	fmt.Print(script)
	return nil
}
