package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgould/covenant/internal/claudedir"
	"github.com/rgould/covenant/internal/installer"
	"github.com/rgould/covenant/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the installation state of a project",
	Run:   runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	dirs := claudedir.At(targetDir)

	existing, plugins, err := installer.Status(dirs)
	if err != nil {
		exitWithError(err.Error())
	}

	fmt.Println()
	fmt.Println(ui.Title.Render("  Covenant status for " + dirs.Claude))
	fmt.Println()

	if existing.Installed {
		fmt.Println(ui.Success.Render("  Installed ") + ui.Highlight.Render(existing.Version))
		if existing.InstalledAt != "" {
			fmt.Println(ui.Muted.Render("    since " + existing.InstalledAt))
		}
	} else {
		fmt.Println(ui.Muted.Render("  Not installed."))
	}
	fmt.Println()

	for _, p := range plugins {
		state := ui.Muted.Render("absent")
		if p.Installed {
			state = ui.Success.Render("installed")
		}
		fmt.Printf("  %s  %s\n", ui.Highlight.Render(fmt.Sprintf("%-10s", p.Name)), state)
		fmt.Println(ui.Muted.Render("    " + p.Description))
	}
	fmt.Println()
}
