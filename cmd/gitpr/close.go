package main

import (
	"github.com/spf13/cobra"

	"github.com/connormckay/gitpr/internal/pullrequest"
)

var closeCmd = &cobra.Command{
	Use:   "close [comment]",
	Short: "Close the current pull request and delete its branch",
	Long: `Close the pull request for the current branch on github, posting an
optional comment first, then check out the default branch and delete
the pull request branch.

Without an argument the 'close-default-comment' option is posted, if
set.

Examples:
  gitpr close
  gitpr close "Fixed in master"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClose,
}

func runClose(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	a.printer.Status("Closing pull request")
	a.printer.Println()

	branchName, err := a.currentPullRequestBranch()
	if err != nil {
		return err
	}
	number, err := pullrequest.Number(branchName)
	if err != nil {
		return err
	}

	pull, err := a.client.GetPull(a.repoName, number)
	if err != nil {
		return err
	}
	a.printer.ShowPullRequest(pull)

	var comment string
	if len(args) > 0 {
		comment = args[0]
	}
	if err := closePullRequest(a, number, comment); err != nil {
		return err
	}

	if err := a.exec.Checkout(a.exec.DefaultBranch()); err != nil {
		return err
	}

	a.printer.Status("Deleting branch %s", branchName)
	if err := a.exec.DeleteBranch(branchName); err != nil {
		return err
	}

	a.printer.Println()
	a.printer.Success("Pull request closed")
	a.printer.Println()
	a.showStatus()
	return nil
}

// closePullRequest posts the comment (or the configured default) and
// closes the request on github.
func closePullRequest(a *app, number int, comment string) error {
	if comment == "" {
		comment = a.opts.CloseDefaultComment
	}
	if comment != "" {
		if err := a.client.Comment(a.repoName, number, comment); err != nil {
			return err
		}
	}
	return a.client.ClosePull(a.repoName, number)
}
