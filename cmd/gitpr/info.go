package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show open pull request counts per repository",
	Long: `Show all of the configured user's repositories with open pull
requests, and the total count.

The user comes from the 'github.user' git config.

Examples:
  gitpr info`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if a.username == "" {
		return fmt.Errorf("github user not configured. Please run:\n  git config --global github.user <username>")
	}

	a.printer.Status("Loading information on repositories for %s", a.username)
	a.printer.Println()

	repos, err := a.client.Repositories(a.username)
	if err != nil {
		return err
	}

	total := 0
	for _, repo := range repos {
		if repo.OpenIssues == 0 {
			continue
		}
		a.printer.Println(fmt.Sprintf("  %s: %s",
			a.printer.Colorize(repo.Name, "display-info-repo-title", false),
			a.printer.Colorize(fmt.Sprintf("%d", repo.OpenIssues), "display-info-repo-count", false)))
		total += repo.OpenIssues
	}

	a.printer.Println("-")
	a.printer.Println(fmt.Sprintf("%s: %s",
		a.printer.Colorize("Total pull requests", "display-info-total-title", true),
		a.printer.Colorize(fmt.Sprintf("%d", total), "display-info-total-count", true)))
	a.printer.Println()
	a.showStatus()
	return nil
}
