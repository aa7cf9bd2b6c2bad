// Package update implements updating pull request branches from the
// default branch, optionally inside a dedicated work directory.
//
// The work directory is a second checkout sharing the original clone's
// git config through a symlink. Performing merges there keeps IDEs
// watching the main tree from rebuilding on every update. Entering and
// leaving the work directory is relayed to the invoking shell through
// the chdir signal file.
package update

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/connormckay/gitpr/internal/chdir"
	"github.com/connormckay/gitpr/internal/config"
	"github.com/connormckay/gitpr/internal/display"
	"github.com/connormckay/gitpr/internal/git"
)

// conflictHint is shown whenever a merge or rebase stops on conflicts.
const conflictHint = "Resolve conflicts and 'git add' files, then run 'gitpr continue-update'"

// Updater runs the update workflow.
type Updater struct {
	opts    *config.Options
	printer *display.Printer
	signal  *chdir.SignalFile
}

// New creates an Updater.
func New(opts *config.Options, printer *display.Printer, signal *chdir.SignalFile) *Updater {
	return &Updater{opts: opts, printer: printer, signal: signal}
}

// UpdateBranch merges or rebases the default branch into branchName,
// switching into the configured work directory first when one is set.
func (u *Updater) UpdateBranch(branchName string) error {
	exec := git.NewExecutor("")

	inWork, err := InWorkDir(exec)
	if err != nil {
		return err
	}
	if inWork {
		return fmt.Errorf("cannot perform an update from within the work directory\nIf you are done fixing conflicts run 'gitpr continue-update' to complete the update")
	}

	if u.opts.WorkDir != "" {
		u.printer.Status("Switching to work directory")
		if err := os.Chdir(u.opts.WorkDir); err != nil {
			return fmt.Errorf("failed to switch to work directory: %w", err)
		}
		if err := exec.ResetHardClean(); err != nil {
			return fmt.Errorf("cleaning up work directory failed, update not performed: %w", err)
		}
	}

	if err := exec.Checkout(branchName); err != nil {
		return fmt.Errorf("update not performed: %w", err)
	}

	defaultBranch := exec.DefaultBranch()

	var updateErr error
	switch u.opts.UpdateMethod {
	case config.UpdateMethodRebase:
		updateErr = exec.Rebase(defaultBranch)
	default:
		updateErr = exec.Merge(defaultBranch)
	}

	if updateErr != nil {
		if u.opts.WorkDir != "" {
			// Leave the user's shell in the work directory so the
			// conflicts are right in front of them.
			if err := u.signal.Request(u.opts.WorkDir); err != nil {
				u.printer.Warning("Warning: failed to record directory change: %v", err)
			}
		}
		return fmt.Errorf("updating %s from %s failed\n%s", branchName, defaultBranch, conflictHint)
	}

	return u.completeUpdate(exec, branchName, defaultBranch)
}

// Continue resumes an update after the user resolved conflicts.
func (u *Updater) Continue() error {
	exec := git.NewExecutor("")

	var err error
	switch u.opts.UpdateMethod {
	case config.UpdateMethodRebase:
		err = exec.ExecuteInteractive("rebase", "--continue")
	default:
		err = exec.ExecuteInteractive("commit")
	}
	if err != nil {
		return fmt.Errorf("updating from %s failed\n%s", exec.DefaultBranch(), conflictHint)
	}

	// The branch name is not correct until the merge/rebase completes.
	branchName, err := exec.CurrentBranch()
	if err != nil {
		return err
	}

	return u.completeUpdate(exec, branchName, exec.DefaultBranch())
}

// completeUpdate returns from the work directory to the original clone
// and syncs the updated branch there.
func (u *Updater) completeUpdate(exec *git.Executor, branchName, defaultBranch string) error {
	inWork, err := InWorkDir(exec)
	if err != nil {
		return err
	}

	if inWork {
		if err := exec.Checkout(defaultBranch); err != nil {
			return fmt.Errorf("could not checkout %s branch in work directory: %w", defaultBranch, err)
		}

		originalDir, err := OriginalDirPath(exec)
		if err != nil {
			return err
		}

		u.printer.Status("Switching to original directory")
		if err := os.Chdir(originalDir); err != nil {
			return fmt.Errorf("failed to switch to original directory: %w", err)
		}
		if err := u.signal.Request(originalDir); err != nil {
			u.printer.Warning("Warning: failed to record directory change: %v", err)
		}

		current, err := exec.CurrentBranch()
		if err != nil {
			return err
		}
		if current == branchName {
			if err := exec.ResetHardClean(); err != nil {
				return fmt.Errorf("syncing branch %s with work directory failed: %w", branchName, err)
			}
		} else {
			if err := exec.Checkout(branchName); err != nil {
				return err
			}
		}
	}

	u.printer.Println()
	u.printer.Success("Updating %s from %s complete", branchName, defaultBranch)
	return nil
}

// InWorkDir reports whether the current checkout is the dedicated work
// directory, identified by its .git/config being a symlink into the
// original clone.
func InWorkDir(exec *git.Executor) (bool, error) {
	topLevel, err := exec.TopLevel()
	if err != nil {
		return false, err
	}
	return InWorkDirPath(topLevel), nil
}

// InWorkDirPath reports whether the checkout rooted at topLevel is a
// work directory.
func InWorkDirPath(topLevel string) bool {
	info, err := os.Lstat(filepath.Join(topLevel, ".git", "config"))
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

// OriginalDirPath resolves the original clone's root from inside the
// work directory by following the .git/config symlink.
func OriginalDirPath(exec *git.Executor) (string, error) {
	topLevel, err := exec.TopLevel()
	if err != nil {
		return "", err
	}
	return OriginalDirFromPath(topLevel)
}

// OriginalDirFromPath resolves the original clone's root for the
// checkout rooted at topLevel.
func OriginalDirFromPath(topLevel string) (string, error) {
	configPath, err := os.Readlink(filepath.Join(topLevel, ".git", "config"))
	if err != nil {
		return "", fmt.Errorf("not in a work directory: %w", err)
	}
	// <original>/.git/config -> <original>
	return filepath.Dir(filepath.Dir(configPath)), nil
}
