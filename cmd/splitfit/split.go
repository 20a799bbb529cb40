// ABOUTME: CLI commands for managing workout splits.
// ABOUTME: Supports create, list, show, rename, and cascading delete.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/splitfitapp/splitfit/internal/models"
)

var splitCmd = &cobra.Command{
	Use:     "split",
	Aliases: []string{"sp"},
	Short:   "Manage workout splits",
	Long: `Manage weekly workout splits.

A split is a named weekly plan made of days; each day holds ordered
exercises or is a rest day.

COMMANDS:

  create   Create an empty split
  list     List your splits
  show     Show a split with days and exercises
  rename   Rename a split
  delete   Delete a split and everything under it

Use 'splitfit template apply' to create a split from a built-in routine
instead of building one by hand.`,
}

var splitCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an empty split",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}

		s := models.NewSplit(acct.UserID, args[0])
		if err := rp.CreateSplit(s); err != nil {
			return fmt.Errorf("failed to create split: %w", err)
		}

		color.Green("✓ Created split %q", s.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(shortID(s.ID)))
		return nil
	},
}

var splitListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List your splits",
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}

		splits, err := rp.ListSplits(acct.UserID)
		if err != nil {
			return fmt.Errorf("failed to list splits: %w", err)
		}
		if len(splits) == 0 {
			fmt.Println("No splits found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range splits {
			fmt.Printf("%s  %s  %s\n",
				faint.Sprint(shortID(s.ID)),
				s.CreatedAt.Format("2006-01-02"),
				s.Name)
		}
		return nil
	},
}

var splitShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a split with days and exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}

		id, err := resolveSplitID(acct.UserID, args[0])
		if err != nil {
			return err
		}
		full, err := rp.GetSplitWithDays(id)
		if err != nil {
			return fmt.Errorf("failed to load split: %w", err)
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s  %s\n", color.New(color.Bold).Sprint(full.Split.Name), faint.Sprint(shortID(full.Split.ID)))
		for _, day := range full.Days {
			fmt.Printf("  %s  %s\n", faint.Sprint(shortID(day.Day.ID)), dayLabel(day.Day))
			for _, e := range day.Exercises {
				note := ""
				if e.Note != nil && *e.Note != "" {
					note = faint.Sprintf(" (%s)", truncate(*e.Note, 30))
				}
				fmt.Printf("    %s  %d. %s  %dx, rest %ds%s\n",
					faint.Sprint(shortID(e.ID)), e.Order, e.Name, e.DefaultSets, e.RestSeconds, note)
			}
		}
		return nil
	},
}

var splitRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a split",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}

		id, err := resolveSplitID(acct.UserID, args[0])
		if err != nil {
			return err
		}
		if err := rp.RenameSplit(id, args[1]); err != nil {
			return fmt.Errorf("failed to rename split: %w", err)
		}
		color.Green("✓ Renamed split to %q", args[1])
		return nil
	},
}

var splitDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a split and everything under it",
	Long: `Delete a split, its days, and their exercises.

Deletes run bottom-up (exercises, then days, then the split) because
the store has no foreign keys. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}

		id, err := resolveSplitID(acct.UserID, args[0])
		if err != nil {
			return err
		}
		split, err := rp.GetSplit(id)
		if err != nil {
			return fmt.Errorf("split not found: %s", args[0])
		}

		if err := rp.DeleteSplit(id); err != nil {
			return fmt.Errorf("failed to delete split: %w", err)
		}
		color.Yellow("✗ Deleted split %q", split.Name)
		return nil
	},
}

func init() {
	splitCmd.AddCommand(splitCreateCmd)
	splitCmd.AddCommand(splitListCmd)
	splitCmd.AddCommand(splitShowCmd)
	splitCmd.AddCommand(splitRenameCmd)
	splitCmd.AddCommand(splitDeleteCmd)
	rootCmd.AddCommand(splitCmd)
}
