package git

import (
	"fmt"
	"regexp"
	"strings"
)

// remoteLineRegex matches one line of 'git remote -v' output, capturing
// the remote name and URL. Lines look like:
//
//	origin  git@github.com:user/repo.git (fetch)
var remoteLineRegex = regexp.MustCompile(`^(\S+)\s+(\S+)\s+\((fetch|push)\)$`)

// githubRepoRegex extracts the "user/repo" part from a GitHub remote
// URL in either SSH (git@github.com:user/repo.git) or HTTPS/git
// (https://github.com/user/repo.git) form.
var githubRepoRegex = regexp.MustCompile(`github\.com[:/](.+?)(?:\.git)?$`)

// Remotes returns the raw 'git remote -v' output.
func (e *Executor) Remotes() (string, error) {
	return e.Execute("remote", "-v")
}

// RepoNameForRemote resolves a remote name to its GitHub repository
// name ("user/repo"). Returns an empty string if the remote does not
// exist or does not point at GitHub.
func (e *Executor) RepoNameForRemote(remoteName string) string {
	output, err := e.Remotes()
	if err != nil {
		return ""
	}
	return ParseRepoName(output, remoteName)
}

// ParseRepoName scans 'git remote -v' output for the named remote and
// returns its GitHub repository name, or "" when not found.
func ParseRepoName(remotesOutput, remoteName string) string {
	for _, line := range strings.Split(remotesOutput, "\n") {
		matches := remoteLineRegex.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil || matches[1] != remoteName {
			continue
		}

		if repo := githubRepoRegex.FindStringSubmatch(matches[2]); repo != nil {
			return repo[1]
		}
	}
	return ""
}

// DefaultRepoName determines the repository to operate on: the
// 'github.repo' config value if set, otherwise the origin remote.
func (e *Executor) DefaultRepoName() (string, error) {
	if repoName := e.ConfigGet("github.repo"); repoName != "" {
		return repoName, nil
	}

	if repoName := e.RepoNameForRemote("origin"); repoName != "" {
		return repoName, nil
	}

	return "", fmt.Errorf("failed to determine github repository name: set 'git config github.repo' or add a github origin remote")
}
