package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgould/covenant/internal/claudedir"
	"github.com/rgould/covenant/internal/conflict"
	"github.com/rgould/covenant/internal/layout"
	"github.com/rgould/covenant/internal/settings"
	"github.com/rgould/covenant/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Detect conflicts without writing anything",
	Long: `Run the same conflict checks an install would run and print the
report: near-duplicate command names, keys defined in both settings files,
duplicate MCP servers, and any prior covenant installation.`,
	Run: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	dirs := claudedir.At(targetDir)

	shared, _, err := settings.ReadTree(dirs.Settings)
	if err != nil {
		exitWithError(err.Error())
	}
	local, _, err := settings.ReadTree(dirs.LocalSettings)
	if err != nil {
		exitWithError(err.Error())
	}
	installed, err := layout.Scan(dirs.Commands)
	if err != nil {
		exitWithError(err.Error())
	}

	report := conflict.RunAllChecks(installed, shared, local, conflict.Options{})

	fmt.Println()
	fmt.Println(ui.Title.Render("  Conflict check for " + dirs.Claude))
	fmt.Println()

	if !report.HasConflicts {
		fmt.Println(ui.Success.Render("  No conflicts found."))
		fmt.Println()
		return
	}

	printConflicts(report)
}

// printConflicts renders a report's records, shared with install.
func printConflicts(report conflict.Report) {
	for _, r := range report.Conflicts {
		fmt.Printf("  %s %s\n", ui.ConflictBadge(string(r.Kind)), r.Message)
	}
	fmt.Println()
	fmt.Println(ui.Muted.Render(fmt.Sprintf("  %d conflict(s) found.", len(report.Conflicts))))
	fmt.Println()
}
