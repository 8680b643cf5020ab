package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rgould/covenant/internal/ui"
)

var (
	// Version is set at build time
	Version = "dev"
)

// targetDir is the project to operate on; never the implicit working
// directory below the CLI layer.
var targetDir string

var rootCmd = &cobra.Command{
	Use:   "covenant",
	Short: "Workflow suite installer for AI agents",
	Long: `Covenant installs a suite of workflow commands and settings into a
project's .claude directory, merging non-destructively with whatever is
already there and flagging conflicts before it writes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&targetDir, "dir", "d", ".", "Target project directory")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(upgradeCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("covenant %s\n", Version)
	},
}

// exitWithError prints an error and exits
func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, ui.Error.Render("Error: "+msg))
	os.Exit(1)
}
