package git

import (
	"fmt"
	"strings"
)

// CurrentBranch returns the name of the branch HEAD points to.
func (e *Executor) CurrentBranch() (string, error) {
	output, err := e.Execute("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to determine current branch: %w", err)
	}
	return output, nil
}

// DefaultBranch detects the repository's default branch from
// origin/HEAD, falling back to the common names.
func (e *Executor) DefaultBranch() string {
	output, err := e.Execute("symbolic-ref", "refs/remotes/origin/HEAD")
	if err == nil {
		return strings.TrimPrefix(output, "refs/remotes/origin/")
	}

	for _, branch := range []string{"master", "main"} {
		if e.localBranchExists(branch) {
			return branch
		}
	}
	return "master"
}

// Checkout switches the working tree to the given branch.
func (e *Executor) Checkout(branch string) error {
	if err := e.ExecuteInteractive("checkout", branch); err != nil {
		return fmt.Errorf("could not checkout %s: %w", branch, err)
	}
	return nil
}

// DeleteBranch force-deletes a local branch.
func (e *Executor) DeleteBranch(branch string) error {
	if err := e.ExecuteInteractive("branch", "-D", branch); err != nil {
		return fmt.Errorf("could not delete branch %s: %w", branch, err)
	}
	return nil
}

// FetchBranch fetches a remote branch into a local branch without
// checking it out.
func (e *Executor) FetchBranch(repoURL, remoteBranch, localBranch string) error {
	return e.ExecuteInteractive("fetch", repoURL, remoteBranch+":"+localBranch)
}

// Push pushes a local branch to the named remote.
func (e *Executor) Push(remote, branch string) error {
	return e.ExecuteInteractive("push", remote, branch)
}

// Pull pulls a remote branch into the current branch.
func (e *Executor) Pull(repoURL, remoteBranch string) error {
	return e.ExecuteInteractive("pull", repoURL, remoteBranch)
}

// Merge merges the given ref into the current branch.
func (e *Executor) Merge(ref string) error {
	return e.ExecuteInteractive("merge", ref)
}

// Rebase rebases the current branch onto the given ref.
func (e *Executor) Rebase(ref string) error {
	return e.ExecuteInteractive("rebase", ref)
}

// ResetHardClean discards all local modifications and untracked files.
// Used on the dedicated work directory before reusing it for an update.
func (e *Executor) ResetHardClean() error {
	if err := e.ExecuteInteractive("reset", "--hard"); err != nil {
		return err
	}
	return e.ExecuteInteractive("clean", "-f")
}

// localBranchExists checks if a local branch exists
func (e *Executor) localBranchExists(branch string) bool {
	_, err := e.Execute("show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	return err == nil
}
