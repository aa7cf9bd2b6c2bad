package shell_test

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connormckay/gitpr/internal/shell"
)

// relayShells lists the shells the integration scripts target. The
// end-to-end tests run once per shell and skip the ones that are not
// installed.
var relayShells = []string{"bash", "zsh", "fish"}

func forEachShell(t *testing.T, fn func(t *testing.T, shellType string)) {
	for _, shellType := range relayShells {
		t.Run(shellType, func(t *testing.T) {
			fn(t, shellType)
		})
	}
}

// relayRun sources an integration script with a stub gitpr binary on
// PATH and runs one wrapped invocation. The stub records the argument
// vector it received and optionally writes a directory into the signal
// file, exiting with the given status.
type relayRun struct {
	argsFile   string
	pwdFile    string
	statusFile string
}

func runRelay(t *testing.T, shellType, stubBody string, args ...string) relayRun {
	t.Helper()

	shellBin, err := exec.LookPath(shellType)
	if err != nil {
		t.Skipf("%s not available", shellType)
	}

	dir := t.TempDir()
	run := relayRun{
		argsFile:   filepath.Join(dir, "args"),
		pwdFile:    filepath.Join(dir, "pwd"),
		statusFile: filepath.Join(dir, "status"),
	}

	binDir := filepath.Join(dir, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0755))

	stub := "#!/bin/sh\n" +
		fmt.Sprintf("printf '%%s\\n' \"$@\" > %q\n", run.argsFile) +
		stubBody
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "gitpr"), []byte(stub), 0755))

	script, err := shell.Script(shellType)
	require.NoError(t, err)

	var quoted []string
	for _, arg := range args {
		quoted = append(quoted, fmt.Sprintf("%q", arg))
	}

	// fish spells the last exit status $status, bash and zsh $?.
	statusVar := "$?"
	if shellType == "fish" {
		statusVar = "$status"
	}

	driver := script + "\n" +
		"gitpr " + strings.Join(quoted, " ") + "\n" +
		fmt.Sprintf("echo %s > %q\n", statusVar, run.statusFile) +
		fmt.Sprintf("pwd > %q\n", run.pwdFile)

	cmd := exec.Command(shellBin, "-c", driver)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "PATH="+binDir+":"+os.Getenv("PATH"))
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	return run
}

func (r relayRun) read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.TrimSpace(string(data))
}

func TestRelayForwardsArgumentVector(t *testing.T) {
	forEachShell(t, func(t *testing.T, shellType string) {
		run := runRelay(t, shellType, "exit 0\n", "fetch", "12", "--update", "two words")

		args := run.read(t, run.argsFile)
		assert.Equal(t, "fetch\n12\n--update\ntwo words", args)
	})
}

func TestRelayChangesDirectoryOnRequest(t *testing.T) {
	forEachShell(t, func(t *testing.T, shellType string) {
		target := t.TempDir()

		run := runRelay(t, shellType, fmt.Sprintf("printf '%%s' %q > \"$GITPR_CHDIR_FILE\"\nexit 0\n", target))

		assert.Equal(t, target, run.read(t, run.pwdFile))
		assert.Equal(t, "0", run.read(t, run.statusFile))
	})
}

func TestRelayNoRequestIsNoop(t *testing.T) {
	forEachShell(t, func(t *testing.T, shellType string) {
		run := runRelay(t, shellType, "exit 0\n")

		pwd := run.read(t, run.pwdFile)
		assert.NotEmpty(t, pwd)
		assert.Equal(t, "0", run.read(t, run.statusFile))

		// The shell stayed where it started (the driver's working dir).
		assert.Equal(t, filepath.Base(filepath.Dir(run.pwdFile)), filepath.Base(pwd))
	})
}

func TestRelayIgnoresMissingTargetDirectory(t *testing.T) {
	forEachShell(t, func(t *testing.T, shellType string) {
		run := runRelay(t, shellType, "printf '%s' /no/such/directory > \"$GITPR_CHDIR_FILE\"\nexit 0\n")

		pwd := run.read(t, run.pwdFile)
		assert.NotEqual(t, "/no/such/directory", pwd)
		assert.Equal(t, "0", run.read(t, run.statusFile))
	})
}

func TestRelayPropagatesExitStatus(t *testing.T) {
	forEachShell(t, func(t *testing.T, shellType string) {
		run := runRelay(t, shellType, "exit 3\n")

		assert.Equal(t, "3", run.read(t, run.statusFile))
	})
}

func TestRelayStatusSurvivesDirectoryChange(t *testing.T) {
	forEachShell(t, func(t *testing.T, shellType string) {
		target := t.TempDir()

		run := runRelay(t, shellType, fmt.Sprintf("printf '%%s' %q > \"$GITPR_CHDIR_FILE\"\nexit 4\n", target))

		assert.Equal(t, target, run.read(t, run.pwdFile))
		assert.Equal(t, "4", run.read(t, run.statusFile))
	})
}
