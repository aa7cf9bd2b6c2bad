package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/connormckay/gitpr/internal/github"
	"github.com/connormckay/gitpr/internal/pullrequest"
)

var submitCmd = &cobra.Command{
	Use:   "submit [body] [title]",
	Short: "Send a pull request to your reviewer",
	Long: `Push the current branch to origin and open a pull request against
your reviewer's repository.

The reviewer comes from -u, the 'github.reviewer' git config, or the
upstream remote, in that order. The title defaults to the issue key
found in the branch name, or the branch name itself. With the
'submit-open-github' option (the default) the new request is opened in
the browser.

Examples:
  gitpr submit
  gitpr submit "Fixes the login timeout" "LPS-1234 Fix login"`,
	Args: cobra.MaximumNArgs(2),
	RunE: runSubmit,
}

func runSubmit(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	branchName, err := a.exec.CurrentBranch()
	if err != nil {
		return err
	}

	a.printer.Status("Submitting pull request for %s", branchName)

	targetRepo, err := resolveTargetRepo(a)
	if err != nil {
		return err
	}

	a.printer.Status("Pushing local branch %s to origin", branchName)
	if err := a.exec.Push("origin", branchName); err != nil {
		return fmt.Errorf("could not push this branch to your origin: %w", err)
	}

	var body, title string
	if len(args) > 0 {
		body = args[0]
	}
	if len(args) > 1 {
		title = args[1]
	}
	if title == "" {
		title = pullrequest.Title(branchName)
	}

	a.printer.Status("Sending pull request to %s", targetRepo)

	pull, err := a.client.CreatePull(targetRepo, github.NewPull{
		Title: title,
		Body:  body,
		Head:  a.username + ":" + branchName,
		Base:  a.exec.DefaultBranch(),
	})
	if err != nil {
		return err
	}

	a.printer.Println()
	a.printer.ShowPullRequest(pull)
	a.printer.Println()

	a.printer.Success("Pull request submitted")
	a.printer.Println()
	a.showStatus()

	if a.opts.SubmitOpenGithub {
		return openURL(pull.HTMLURL)
	}
	return nil
}

// resolveTargetRepo determines the repository the pull request is sent
// to: the reviewer's fork of the current repository. The reviewer may
// be a bare username or a full user/repo name; when unset, the
// upstream remote is used.
func resolveTargetRepo(a *app) (string, error) {
	reviewer := a.reviewer
	if reviewer == "" {
		reviewer = a.exec.RepoNameForRemote("upstream")
	}
	if reviewer == "" {
		return "", fmt.Errorf("could not determine a repo to submit this pull request to: set -u, 'github.reviewer', or an upstream remote")
	}

	if strings.Contains(reviewer, "/") {
		return reviewer, nil
	}

	_, repoBase, ok := strings.Cut(a.repoName, "/")
	if !ok {
		return "", fmt.Errorf("invalid repository name: %s", a.repoName)
	}
	return reviewer + "/" + repoBase, nil
}
