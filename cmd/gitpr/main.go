package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configcmd "github.com/connormckay/gitpr/cmd/gitpr/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Persistent flags shared by every command.
var (
	repoFlag     string
	reviewerFlag string
)

var rootCmd = &cobra.Command{
	Use:   "gitpr [pull-request-id]",
	Short: "gitpr - Automate common tasks involving github pull requests",
	Long: `gitpr automates the day-to-day pull request workflow: listing,
fetching into local branches, updating from the default branch,
merging, closing and submitting.

Run without arguments to list the open pull requests on this
repository. A bare pull request ID performs a fetch.

Directory changes (switching to and from the configured work
directory) only reach your interactive shell through the function
installed by 'gitpr shell-init'. Add to your shell configuration:
  eval "$(gitpr shell-init bash)"   # for bash
  eval "$(gitpr shell-init zsh)"    # for zsh
  gitpr shell-init fish | source    # for fish

Configuration is read from git-config 'git-pull-request.*' keys, the
repository from '-r', 'github.repo' or the origin remote, and
credentials from 'github.user' and 'github.token' (or GITHUB_TOKEN).`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runRoot,
}

var versionCmd = &cobra.Command{
	Use:    "version",
	Short:  "Print version information",
	Hidden: true, // Use --version flag instead; this is kept for backward compatibility
	Run: func(cmd *cobra.Command, args []string) {
		printVersion()
	},
}

func printVersion() {
	fmt.Printf("gitpr %s\n", version)
	fmt.Printf("  commit: %s\n", commit)
	fmt.Printf("  built:  %s\n", date)
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("gitpr %s\n  commit: %s\n  built:  %s\n", version, commit, date))

	// Disable the auto-generated completion command (shell-init installs
	// completion along with the relay function)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&repoFlag, "repo", "r", "", "Github repo to use instead of 'remote origin' or 'github.repo' (remote name or user/repo)")
	rootCmd.PersistentFlags().StringVarP(&reviewerFlag, "reviewer", "u", "", "Send pull requests to this reviewer instead of 'github.reviewer'")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(fetchAllCmd)
	rootCmd.AddCommand(closeCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(continueUpdateCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(shellInitCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configcmd.Cmd)
}

// runRoot implements the two no-command forms: a bare invocation lists
// open pull requests, a bare ID fetches that pull request.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return listCmd.RunE(cmd, nil)
	}
	return fetchCmd.RunE(cmd, args)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
