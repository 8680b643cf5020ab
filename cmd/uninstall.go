package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgould/covenant/internal/claudedir"
	"github.com/rgould/covenant/internal/installer"
	"github.com/rgould/covenant/internal/ui"
)

var uninstallCmd = &cobra.Command{
	Use:     "uninstall",
	Aliases: []string{"remove"},
	Short:   "Remove the workflow suite from a project",
	Long: `Remove covenant's command files and strip its ownership marker from
settings. Every other setting in the file, including anything you added by
hand, is left exactly as it was.`,
	Run: runUninstall,
}

func runUninstall(cmd *cobra.Command, args []string) {
	dirs := claudedir.At(targetDir)

	fmt.Println()
	fmt.Println(ui.Title.Render("  Removing covenant from " + dirs.Claude))
	fmt.Println()

	if err := installer.Uninstall(dirs); err != nil {
		exitWithError(err.Error())
	}

	fmt.Println(ui.Success.Render("  Removed command files and ownership marker."))
	fmt.Println(ui.Muted.Render("  Your own settings were left untouched."))
	fmt.Println()
}
