package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/connormckay/gitpr/internal/config"
	"github.com/connormckay/gitpr/internal/git"
)

var (
	importGlobal bool
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import gitpr configuration from a TOML file",
	Long: `Import gitpr configuration from a TOML file, writing the settings
into git-config under the 'git-pull-request' section.

Only settings that differ from the defaults are written. Use --global
to write to your global git config instead of the repository's.

Examples:
  gitpr config import gitpr.toml
  gitpr config import --global gitpr.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importGlobal, "global", false, "Write to the global git config")
}

func runImport(cmd *cobra.Command, args []string) error {
	opts, err := config.LoadFromTOMLFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to import config: %w", err)
	}

	exec := git.NewExecutor("")
	entries := config.GitConfigEntries(opts)

	for _, entry := range entries {
		configArgs := []string{"config"}
		if importGlobal {
			configArgs = append(configArgs, "--global")
		}
		configArgs = append(configArgs, entry.Key, entry.Value)

		if _, err := exec.Execute(configArgs...); err != nil {
			return fmt.Errorf("failed to set %s: %w", entry.Key, err)
		}
	}

	fmt.Printf("Imported %d setting(s) from %s\n", len(entries), args[0])
	return nil
}
