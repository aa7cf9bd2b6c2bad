package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/connormckay/gitpr/internal/config"
	"github.com/connormckay/gitpr/internal/git"
)

var (
	exportFile string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export gitpr configuration to TOML format",
	Long: `Export the current gitpr configuration to TOML format.

This exports all git-pull-request settings, including the color
scheme, fetch/merge automation and the work directory.

By default, outputs to stdout. Use -o to write to a file.

Examples:
  gitpr config export                  # Output to stdout
  gitpr config export -o gitpr.toml    # Write to file`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFile, "output", "o", "", "Output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	opts := config.Load(git.NewExecutor(""))

	tomlContent, err := config.ExportToTOML(opts)
	if err != nil {
		return fmt.Errorf("failed to export config: %w", err)
	}

	if exportFile != "" {
		if err := os.WriteFile(exportFile, []byte(tomlContent), 0644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		fmt.Printf("Exported gitpr configuration to %s\n", exportFile)
	} else {
		fmt.Print(tomlContent)
	}

	return nil
}
