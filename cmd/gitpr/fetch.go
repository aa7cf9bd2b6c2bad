package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/connormckay/gitpr/internal/github"
	"github.com/connormckay/gitpr/internal/pullrequest"
	"github.com/connormckay/gitpr/internal/update"
)

var (
	fetchUpdate   bool
	fetchNoUpdate bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <pull-request-id>",
	Short: "Fetch a pull request into a local branch",
	Long: `Fetch a pull request into a local branch named
pull-request-<id>, optionally updating it from the default branch and
checking it out.

The 'fetch-auto-checkout' option checks out the new branch; the
'fetch-auto-update' option (or --update) also merges or rebases the
default branch into it.

A bare ID works too: 'gitpr 12' is the same as 'gitpr fetch 12'.

Examples:
  gitpr fetch 12
  gitpr fetch 12 --update
  gitpr 12`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	// Persistent so the bare-ID form accepts them too: 'gitpr --update 12'
	// behaves like 'gitpr fetch --update 12'.
	rootCmd.PersistentFlags().BoolVar(&fetchUpdate, "update", false, "Update the fetched branch from the default branch")
	rootCmd.PersistentFlags().BoolVar(&fetchNoUpdate, "no-update", false, "Do not update the fetched branch")
}

func runFetch(cmd *cobra.Command, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid pull request ID: %s", args[0])
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	a.printer.Status("Fetching pull request")
	a.printer.Println()

	pull, err := a.client.GetPull(a.repoName, number)
	if err != nil {
		return err
	}
	a.printer.ShowPullRequest(pull)

	branchName, err := fetchPullRequest(a, pull)
	if err != nil {
		return err
	}

	autoUpdate := a.opts.FetchAutoUpdate
	if fetchUpdate {
		autoUpdate = true
	}
	if fetchNoUpdate {
		autoUpdate = false
	}

	if autoUpdate {
		updater := update.New(a.opts, a.printer, a.signal)
		if err := updater.UpdateBranch(branchName); err != nil {
			return err
		}
	} else if a.opts.FetchAutoCheckout {
		if err := a.exec.Checkout(branchName); err != nil {
			return err
		}
	}

	a.printer.Println()
	a.printer.Success("Fetch completed")
	a.printer.Println()
	a.showStatus()
	return nil
}

// fetchPullRequest fetches a pull request's head into its local branch
// and returns the branch name.
func fetchPullRequest(a *app, pull *github.PullRequest) (string, error) {
	branchName := pullrequest.BranchName(pull)

	repoURL, err := pullrequest.CloneURL(pull)
	if err != nil {
		return "", err
	}

	if err := a.exec.FetchBranch(repoURL, pull.Head.Ref, branchName); err != nil {
		return "", fmt.Errorf("fetch failed: %w", err)
	}

	return branchName, nil
}
