package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/allanhanan/duvc-ctl-sub002/internal/logging"
	"github.com/allanhanan/duvc-ctl-sub002/internal/updater"
	"github.com/allanhanan/duvc-ctl-sub002/internal/version"
)

// CreateUpdateCmd creates the update command.
func CreateUpdateCmd() *cobra.Command {
	var checkOnly bool
	var devBuild bool
	var rollback bool
	var prerelease bool
	var repository string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update duvc-ctl to the latest release",
		Long:  `Checks GitHub releases for a newer version and replaces the running binary in place. The previous binary is kept as a backup; use --rollback to restore it.`,
		Run: func(cobraCmd *cobra.Command, _ []string) {
			// Update progress is worth seeing, so log at info here
			logging.Initialize(logging.Config{
				Level:  "info",
				Format: "text",
			})

			svc, err := updater.NewService(&updater.Options{
				Repository: repository,
				Prerelease: prerelease,
			})
			if err != nil {
				exitErr(err)
			}
			if !svc.IsEnabled() {
				exitErr(fmt.Errorf("updates unavailable: %s", svc.DisabledReason()))
			}

			ctx := cobraCmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			switch {
			case rollback:
				if err := svc.Rollback(ctx); err != nil {
					exitErr(err)
				}
				fmt.Println("Previous version restored")

			case devBuild:
				fmt.Println("Applying latest dev build...")
				if err := svc.ApplyDevBuild(ctx); err != nil {
					exitErr(err)
				}
				fmt.Println("Dev build applied")

			default:
				info, err := svc.CheckForUpdate(ctx)
				if err != nil {
					exitErr(err)
				}
				if !info.UpdateAvailable {
					fmt.Printf("Already up to date (%s)\n", version.Version)
					return
				}

				fmt.Printf("Update available: %s -> %s\n", info.CurrentVersion, info.LatestVersion)
				if checkOnly {
					fmt.Printf("Release: %s\n", info.ReleaseURL)
					return
				}

				fmt.Println("Downloading...")
				if err := svc.ApplyUpdate(ctx); err != nil {
					exitErr(err)
				}
				fmt.Printf("Updated to %s\n", info.LatestVersion)
			}
		},
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "Only check for updates, do not apply")
	cmd.Flags().BoolVar(&devBuild, "dev", false, "Apply the latest dev build regardless of version")
	cmd.Flags().BoolVar(&rollback, "rollback", false, "Restore the previously backed up version")
	cmd.Flags().BoolVar(&prerelease, "prerelease", false, "Include prerelease versions")
	cmd.Flags().StringVar(&repository, "repository", "allanhanan/duvc-ctl-sub002", "GitHub repository to update from")
	return cmd
}
