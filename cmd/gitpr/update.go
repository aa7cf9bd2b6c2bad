package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/connormckay/gitpr/internal/pullrequest"
	"github.com/connormckay/gitpr/internal/update"
)

var updateCmd = &cobra.Command{
	Use:   "update [pull-request-id or branch-name]",
	Short: "Update a pull request branch from the default branch",
	Long: `Update the current pull request (or the specified one) with the
local changes in the default branch, using either a merge or a rebase
('update-method' option).

With the 'work-dir' option the update runs in a dedicated checkout;
your shell follows it there via the shell-init integration. The work
directory is hard reset before every update, so do no work there other
than conflict merges.

Examples:
  gitpr update
  gitpr update 12
  gitpr update pull-request-12-LPS-3456`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	var branchName string
	if len(args) == 0 {
		branchName, err = a.currentPullRequestBranch()
		if err != nil {
			return err
		}
	} else if number, convErr := strconv.Atoi(args[0]); convErr == nil {
		pull, err := a.client.GetPull(a.repoName, number)
		if err != nil {
			return err
		}
		branchName = pullrequest.BranchName(pull)
	} else {
		branchName = args[0]
	}

	a.printer.Status("Updating %s from %s", branchName, a.exec.DefaultBranch())

	updater := update.New(a.opts, a.printer, a.signal)
	if err := updater.UpdateBranch(branchName); err != nil {
		return err
	}

	a.printer.Println()
	a.showStatus()
	return nil
}
