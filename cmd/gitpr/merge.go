package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/connormckay/gitpr/internal/pullrequest"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [comment]",
	Short: "Merge the current pull request branch into the default branch",
	Long: `Merge the current pull request branch into the default branch and
delete the branch. With the 'merge-auto-close' option (the default)
the pull request is closed on github afterwards, posting the optional
comment.

Examples:
  gitpr merge
  gitpr merge "Merged, thanks!"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMerge,
}

func runMerge(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	branchName, err := a.currentPullRequestBranch()
	if err != nil {
		return err
	}
	number, err := pullrequest.Number(branchName)
	if err != nil {
		return err
	}

	defaultBranch := a.exec.DefaultBranch()

	a.printer.Status("Merging %s into %s", branchName, defaultBranch)
	a.printer.Println()

	if err := a.exec.Checkout(defaultBranch); err != nil {
		return err
	}

	if err := a.exec.Merge(branchName); err != nil {
		return fmt.Errorf("merge with %s failed. Resolve conflicts, switch back into the pull request branch, and merge again", defaultBranch)
	}

	a.printer.Status("Deleting branch %s", branchName)
	if err := a.exec.DeleteBranch(branchName); err != nil {
		return err
	}

	if a.opts.MergeAutoClose {
		a.printer.Status("Closing pull request")
		var comment string
		if len(args) > 0 {
			comment = args[0]
		}
		if err := closePullRequest(a, number, comment); err != nil {
			return err
		}
	}

	a.printer.Println()
	a.printer.Success("Merge completed")
	a.printer.Println()
	a.showStatus()
	return nil
}
