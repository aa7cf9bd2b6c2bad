package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/connormckay/gitpr/internal/chdir"
	"github.com/connormckay/gitpr/internal/config"
	"github.com/connormckay/gitpr/internal/display"
	"github.com/connormckay/gitpr/internal/git"
	"github.com/connormckay/gitpr/internal/github"
	"github.com/connormckay/gitpr/internal/pullrequest"
)

// app bundles the collaborators every command needs: git access,
// options, the github client, output and the chdir signal file.
type app struct {
	exec     *git.Executor
	opts     *config.Options
	printer  *display.Printer
	client   *github.Client
	signal   *chdir.SignalFile
	repoName string
	reviewer string
	username string
}

// newApp resolves configuration and the target repository. Commands
// that do not need a repository (shell-init, config) construct their
// dependencies directly instead.
func newApp() (*app, error) {
	exec := git.NewExecutor("")
	opts := config.Load(exec)

	a := &app{
		exec:     exec,
		opts:     opts,
		printer:  display.NewPrinter(os.Stdout, opts.Colors, display.IsTerminal(os.Stdout)),
		signal:   chdir.New(),
		username: exec.ConfigGet("github.user"),
	}

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		token = exec.ConfigGet("github.token")
	}
	a.client = github.NewClient(token)

	repoName, err := resolveRepoName(exec)
	if err != nil {
		return nil, err
	}
	a.repoName = repoName

	a.reviewer = reviewerFlag
	if a.reviewer == "" {
		a.reviewer = exec.ConfigGet("github.reviewer")
	}

	return a, nil
}

// resolveRepoName picks the repository: the -r flag (a full user/repo
// name or a remote name), then 'github.repo', then the origin remote.
func resolveRepoName(exec *git.Executor) (string, error) {
	if repoFlag != "" {
		if strings.Contains(repoFlag, "/") {
			return repoFlag, nil
		}
		if repoName := exec.RepoNameForRemote(repoFlag); repoName != "" {
			return repoName, nil
		}
		return "", fmt.Errorf("remote '%s' does not point at a github repository", repoFlag)
	}

	return exec.DefaultRepoName()
}

// currentPullRequestBranch returns the current branch, requiring it to
// follow the pull request naming convention.
func (a *app) currentPullRequestBranch() (string, error) {
	branch, err := a.exec.CurrentBranch()
	if err != nil {
		return "", err
	}
	if !pullrequest.IsBranch(branch) {
		return "", fmt.Errorf("invalid branch: %s is not a pull request branch", branch)
	}
	return branch, nil
}

// showStatus prints the closing "Current branch" line.
func (a *app) showStatus() {
	branch, err := a.exec.CurrentBranch()
	if err != nil {
		return
	}
	a.printer.ShowCurrentBranch(branch)
}
