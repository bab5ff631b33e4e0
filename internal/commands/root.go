package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerloom-dev/ledgerloom/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dir string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "ledgerloom",
		Short:   "Keyword-based bank statement categorization",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dir, "dir", ".", "project directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newCategoryCommand())
	rootCmd.AddCommand(newLearnCommand())
	rootCmd.AddCommand(newCorrectCommand())
	rootCmd.AddCommand(newHistoryCommand())

	return rootCmd
}
