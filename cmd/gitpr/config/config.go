package config

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for configuration operations
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Export or import gitpr configuration",
	Long: `Export or import gitpr configuration.

Runtime configuration lives in git-config under the
'git-pull-request' section. These commands convert it to and from a
TOML file for sharing between machines or repositories.

Examples:
  gitpr config export
  gitpr config import gitpr.toml`,
}

func init() {
	Cmd.AddCommand(exportCmd)
	Cmd.AddCommand(importCmd)
}
