// Package shell generates the integration scripts installed by 'gitpr
// shell-init'.
//
// The scripts wrap the gitpr binary in a shell function so the
// directory-change relay can work: a child process cannot change its
// parent shell's working directory, so the function runs in the shell
// itself and performs the cd on the binary's behalf. Per invocation the
// function creates a fresh empty signal file, exports its path in
// GITPR_CHDIR_FILE, runs the real binary with the argument vector and
// terminal untouched, then reads the signal file and changes directory
// if the binary requested it. The delegate's exit status is preserved.
package shell

import "fmt"

// Script returns the integration script for the named shell.
func Script(shellType string) (string, error) {
	switch shellType {
	case "bash":
		return BashScript, nil
	case "zsh":
		return ZshScript, nil
	case "fish":
		return FishScript, nil
	default:
		return "", fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", shellType)
	}
}
