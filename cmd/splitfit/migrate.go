// ABOUTME: CLI command for migrating data between storage backends.
// ABOUTME: Copies the logged-in user's data from one backend to another.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/splitfitapp/splitfit/internal/config"
	"github.com/splitfitapp/splitfit/internal/repo"
)

var (
	migrateFrom   string
	migrateTo     string
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate data between storage backends",
	Long: `Copy all of your data from one storage backend to another.

Use this when switching between local-only Badger storage and Charm
Cloud sync. Ids are preserved, so re-running a migration overwrites
rather than duplicates.

USAGE:

  splitfit migrate --from badger --to charm   # start syncing
  splitfit migrate --from charm --to badger   # go local-only
  splitfit migrate --from badger --to charm --dry-run

AFTER MIGRATION:

  Set the new backend as your default:
    splitfit --backend <backend> ... , or edit
    ~/.config/splitfit/config.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateFrom == migrateTo {
			return fmt.Errorf("source and destination backends are both %q", migrateFrom)
		}

		acct, err := requireUser()
		if err != nil {
			return err
		}

		srcStore, err := (&config.Config{Backend: migrateFrom, DataDir: cfg.DataDir}).OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open source backend: %w", err)
		}
		defer srcStore.Close()
		src := repo.New(srcStore, logger)

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			data, err := src.GetAllData(acct.UserID)
			if err != nil {
				return fmt.Errorf("failed to read source data: %w", err)
			}
			fmt.Printf("Would migrate %d splits, %d sessions, %d sets, %d photos\n",
				len(data.Splits), len(data.Sessions), len(data.Sets), len(data.Photos))
			return nil
		}

		dstStore, err := (&config.Config{Backend: migrateTo, DataDir: cfg.DataDir}).OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open destination backend: %w", err)
		}
		defer dstStore.Close()
		dst := repo.New(dstStore, logger)

		summary, err := repo.MigrateData(src, dst, acct.UserID)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated from %s to %s", migrateFrom, migrateTo)
		fmt.Printf("  Splits:    %d\n", summary.Splits)
		fmt.Printf("  Days:      %d\n", summary.Days)
		fmt.Printf("  Exercises: %d\n", summary.Exercises)
		fmt.Printf("  Sessions:  %d\n", summary.Sessions)
		fmt.Printf("  Sets:      %d\n", summary.Sets)
		fmt.Printf("  Photos:    %d\n", summary.Photos)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "badger", "source backend")
	migrateCmd.Flags().StringVar(&migrateTo, "to", "charm", "destination backend")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
