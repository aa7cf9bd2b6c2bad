package main

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the open pull requests on this repository",
	Long: `List the open pull requests on this repository.

This is also the default when gitpr is run without a command.

Examples:
  gitpr
  gitpr list
  gitpr -r upstream list`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	a.printer.Status("Loading open pull requests for %s", a.repoName)
	a.printer.Println()

	pulls, err := a.client.ListPulls(a.repoName)
	if err != nil {
		return err
	}

	if len(pulls) == 0 {
		a.printer.Println("No open pull requests found")
	}
	for i := range pulls {
		a.printer.ShowPullRequest(&pulls[i])
	}

	a.showStatus()
	return nil
}
