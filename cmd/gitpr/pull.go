package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/connormckay/gitpr/internal/pullrequest"
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull remote changes into the pull request branch",
	Long: `Pull changes from the contributor's remote branch into the local
pull request branch. Use this when the contributor pushed new commits
after you fetched.

Examples:
  gitpr pull`,
	Args: cobra.NoArgs,
	RunE: runPull,
}

func runPull(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	branchName, err := a.currentPullRequestBranch()
	if err != nil {
		return err
	}

	a.printer.Status("Pulling remote changes into %s", branchName)

	number, err := pullrequest.Number(branchName)
	if err != nil {
		return err
	}

	pull, err := a.client.GetPull(a.repoName, number)
	if err != nil {
		return err
	}

	repoURL, err := pullrequest.CloneURL(pull)
	if err != nil {
		return err
	}

	a.printer.Status("Pulling from %s (%s)", repoURL, pull.Head.Ref)

	if err := a.exec.Pull(repoURL, pull.Head.Ref); err != nil {
		return fmt.Errorf("pull failed, resolve conflicts: %w", err)
	}

	a.printer.Println()
	a.printer.Success("Updating %s from remote completed", branchName)
	a.printer.Println()
	a.showStatus()
	return nil
}
