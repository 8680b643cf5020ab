package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rgould/covenant/internal/ghclient"
	"github.com/rgould/covenant/internal/ui"
)

// Release source for upgrade checks.
const (
	releaseOwner = "rgould"
	releaseRepo  = "covenant"
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Check for a newer covenant release",
	Long: `Check GitHub for the latest covenant release and compare against the
running version. Checking only; it never modifies the installed binary.`,
	Run: runUpgrade,
}

func runUpgrade(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := ghclient.New()
	release, err := client.LatestRelease(ctx, releaseOwner, releaseRepo)
	if err != nil {
		exitWithError(err.Error())
	}

	fmt.Println()
	if release.Tag == Version || release.Tag == "v"+Version {
		fmt.Println(ui.Success.Render("  You are on the latest release (" + Version + ")."))
	} else {
		fmt.Println(ui.Info.Render("  Newer release available: ") + ui.Highlight.Render(release.Tag))
		fmt.Println(ui.Muted.Render("  Running: " + Version))
		fmt.Println(ui.Muted.Render("  " + release.URL))
	}
	fmt.Println()
}
