package main

import (
	"github.com/spf13/cobra"
)

var fetchAllCmd = &cobra.Command{
	Use:   "fetch-all",
	Short: "Fetch all open pull requests into local branches",
	Long: `Fetch every open pull request on this repository into its local
pull-request-<id> branch.

Examples:
  gitpr fetch-all
  gitpr -r upstream fetch-all`,
	Args: cobra.NoArgs,
	RunE: runFetchAll,
}

func runFetchAll(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	a.printer.Status("Fetching all pull requests")
	a.printer.Println()

	pulls, err := a.client.ListPulls(a.repoName)
	if err != nil {
		return err
	}

	for i := range pulls {
		if _, err := fetchPullRequest(a, &pulls[i]); err != nil {
			return err
		}
		a.printer.ShowPullRequestMinimal(&pulls[i])
		a.printer.Println()
	}

	a.showStatus()
	return nil
}
