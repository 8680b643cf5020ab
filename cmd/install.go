package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgould/covenant/internal/claudedir"
	"github.com/rgould/covenant/internal/installer"
	"github.com/rgould/covenant/internal/ui"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the workflow suite into a project",
	Long: `Install covenant's workflow commands and settings into the target
project's .claude directory.

Existing settings are merged, never clobbered: your own keys survive, and
the suite only claims the keys it owns. Detected conflicts abort the
install unless --force is given.

Examples:
  covenant install
  covenant install --plugin flow
  covenant install --dir ../other-project --force`,
	Run: runInstall,
}

var (
	installForce   bool
	installPlugins []string
)

func init() {
	installCmd.Flags().BoolVarP(&installForce, "force", "f", false, "Proceed past detected conflicts")
	installCmd.Flags().StringSliceVarP(&installPlugins, "plugin", "p", nil, "Install only the named plugins")
}

func runInstall(cmd *cobra.Command, args []string) {
	dirs := claudedir.At(targetDir)

	fmt.Println()
	fmt.Println(ui.Title.Render("  Installing into " + dirs.Claude))
	fmt.Println()

	result, err := installer.Install(dirs, installer.Options{
		Force:   installForce,
		Plugins: installPlugins,
		Version: Version,
	})
	if err != nil {
		exitWithError(err.Error())
	}

	if result.Aborted {
		fmt.Println(ui.Warning.Render("  Conflicts detected; nothing was written."))
		fmt.Println()
		printConflicts(result.Report)
		fmt.Println(ui.Muted.Render("  Resolve the conflicts or rerun with --force."))
		fmt.Println()
		return
	}

	for _, name := range result.Plugins {
		fmt.Println(ui.Success.Render("  Installed plugin ") + ui.Highlight.Render(name))
	}
	fmt.Println(ui.Muted.Render(fmt.Sprintf("  %d command files written", len(result.Written))))
	fmt.Println(ui.Muted.Render("  Settings merged into " + dirs.Settings))
	fmt.Println()
	fmt.Println(ui.Divider(50))
	fmt.Println()
	fmt.Println(ui.Success.Render("  Done."))
	fmt.Println()
}
