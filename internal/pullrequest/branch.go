// Package pullrequest holds the naming conventions tying local
// branches to github pull requests.
//
// A fetched pull request lives on a branch named
// "pull-request-<number>", with the issue key from the contributor's
// branch appended when one is present (e.g. "pull-request-12-LPS-3456").
// The number embedded in the branch name is what connects later close,
// merge and update operations back to the request on github.
package pullrequest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/connormckay/gitpr/internal/github"
)

// BranchPrefix starts every local pull request branch.
const BranchPrefix = "pull-request-"

var (
	issueKeyPrefixRegex = regexp.MustCompile(`^[A-Z]{3,}-\d+`)
	issueKeyRegex       = regexp.MustCompile(`([A-Z]{3,}-\d+)`)
	branchNumberRegex   = regexp.MustCompile(`^pull-request-(\d+)`)
)

// BranchName returns the local branch a pull request should be fetched
// into.
func BranchName(pull *github.PullRequest) string {
	branchName := fmt.Sprintf("%s%d", BranchPrefix, pull.Number)

	if key := issueKeyPrefixRegex.FindString(pull.Head.Ref); key != "" {
		branchName = branchName + "-" + key
	}

	return branchName
}

// Title returns the default title for a pull request submitted from the
// named branch: the issue key when the branch carries one, otherwise
// the branch name itself.
func Title(branchName string) string {
	if key := issueKeyRegex.FindString(branchName); key != "" {
		return key
	}
	return branchName
}

// Number extracts the pull request number from a local branch name.
func Number(branchName string) (int, error) {
	matches := branchNumberRegex.FindStringSubmatch(branchName)
	if matches == nil {
		return 0, fmt.Errorf("invalid branch: %s is not a pull request branch", branchName)
	}
	return strconv.Atoi(matches[1])
}

// IsBranch reports whether the named branch follows the pull request
// convention.
func IsBranch(branchName string) bool {
	return strings.HasPrefix(branchName, BranchPrefix)
}

// CloneURL returns the git URL to fetch a pull request's head from.
// Private repositories need the SSH form; public ones use the anonymous
// git protocol URL.
func CloneURL(pull *github.PullRequest) (string, error) {
	if pull.Head.Repo == nil {
		return "", fmt.Errorf("pull request %d has no source repository (deleted fork?)", pull.Number)
	}

	if pull.Head.Repo.Private {
		return pull.Head.Repo.SSHURL, nil
	}
	if pull.Head.Repo.GitURL != "" {
		return pull.Head.Repo.GitURL, nil
	}
	return pull.Head.Repo.CloneURL, nil
}
