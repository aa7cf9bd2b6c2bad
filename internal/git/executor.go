package git

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Executor executes git commands
type Executor struct {
	workDir string
}

// NewExecutor creates a new git command executor
func NewExecutor(workDir string) *Executor {
	return &Executor{workDir: workDir}
}

// Execute runs a git command and returns the output
func (e *Executor) Execute(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	if e.workDir != "" {
		cmd.Dir = e.workDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w\nstderr: %s", strings.Join(args, " "), err, stderr.String())
	}

	return strings.TrimSpace(stdout.String()), nil
}

// ExecuteInteractive runs a git command with the terminal attached so
// the user sees progress and can answer prompts (conflict editors,
// push credentials, and so on).
func (e *Executor) ExecuteInteractive(args ...string) error {
	cmd := exec.Command("git", args...)
	if e.workDir != "" {
		cmd.Dir = e.workDir
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
	}
	return nil
}

// ConfigGet reads a single git config value. Missing keys return an
// empty string rather than an error: absence is an expected state for
// every key gitpr reads.
func (e *Executor) ConfigGet(key string) string {
	output, err := e.Execute("config", "--get", key)
	if err != nil {
		return ""
	}
	return output
}

// ConfigList returns the raw 'git config -l' output.
func (e *Executor) ConfigList() (string, error) {
	return e.Execute("config", "-l")
}

// TopLevel returns the root directory of the current working tree.
func (e *Executor) TopLevel() (string, error) {
	return e.Execute("rev-parse", "--show-toplevel")
}
