package main

import (
	"github.com/spf13/cobra"

	"github.com/connormckay/gitpr/internal/update"
)

var continueUpdateCmd = &cobra.Command{
	Use:     "continue-update",
	Aliases: []string{"cu"},
	Short:   "Continue an update after fixing conflicts",
	Long: `Continue the current update after conflicts have been fixed:
commits the merge (or continues the rebase), then returns from the
work directory to the original checkout.

Examples:
  gitpr continue-update
  gitpr cu`,
	Args: cobra.NoArgs,
	RunE: runContinueUpdate,
}

func runContinueUpdate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	a.printer.Status("Continuing update from %s", a.exec.DefaultBranch())

	updater := update.New(a.opts, a.printer, a.signal)
	if err := updater.Continue(); err != nil {
		return err
	}

	a.printer.Println()
	a.showStatus()
	return nil
}
