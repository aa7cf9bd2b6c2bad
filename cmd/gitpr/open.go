package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/connormckay/gitpr/internal/pullrequest"
)

var openCmd = &cobra.Command{
	Use:   "open [pull-request-id]",
	Short: "Open a pull request on github",
	Long: `Open either the current pull request or the specified request in
the browser.

Examples:
  gitpr open
  gitpr open 12`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	var number int
	if len(args) > 0 {
		number, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid pull request ID: %s", args[0])
		}
	} else {
		branchName, err := a.currentPullRequestBranch()
		if err != nil {
			return err
		}
		number, err = pullrequest.Number(branchName)
		if err != nil {
			return err
		}
	}

	pull, err := a.client.GetPull(a.repoName, number)
	if err != nil {
		return err
	}

	return openURL(pull.HTMLURL)
}

// openURL launches the platform browser.
func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}
