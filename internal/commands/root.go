package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/capitex-dev/capitex/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "capitex",
		Short:   "Flat-file single-station banking demo",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newSignupCommand())
	rootCmd.AddCommand(newLoginCommand())

	return rootCmd
}
