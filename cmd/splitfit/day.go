// ABOUTME: CLI commands for managing split days.
// ABOUTME: Supports add (workout or rest) and list per split.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/splitfitapp/splitfit/internal/models"
)

var dayRest bool

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Manage split days",
	Long: `Manage the weekday slots of a split.

Day-of-week numbering is up to you (1..7 is conventional); days list
in ascending weekday order.

Examples:
  splitfit day add <split-id> 1 "Push"
  splitfit day add <split-id> 7 "Rest" --rest
  splitfit day list <split-id>`,
}

var dayAddCmd = &cobra.Command{
	Use:   "add <split-id> <day-of-week> <name>",
	Short: "Add a day to a split",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}

		splitID, err := resolveSplitID(acct.UserID, args[0])
		if err != nil {
			return err
		}
		dow, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid day of week: %s", args[1])
		}

		var day *models.SplitDay
		if dayRest {
			day = models.NewRestDay(splitID, dow, args[2])
		} else {
			day = models.NewSplitDay(splitID, dow, args[2])
		}
		if err := rp.CreateSplitDay(day); err != nil {
			return fmt.Errorf("failed to add day: %w", err)
		}

		color.Green("✓ Added %s", dayLabel(day))
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(shortID(day.ID)))
		return nil
	},
}

var dayListCmd = &cobra.Command{
	Use:     "list <split-id>",
	Aliases: []string{"ls"},
	Short:   "List a split's days",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}

		splitID, err := resolveSplitID(acct.UserID, args[0])
		if err != nil {
			return err
		}
		days, err := rp.ListSplitDays(splitID)
		if err != nil {
			return fmt.Errorf("failed to list days: %w", err)
		}
		if len(days) == 0 {
			fmt.Println("No days found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, d := range days {
			fmt.Printf("%s  %s\n", faint.Sprint(shortID(d.ID)), dayLabel(d))
		}
		return nil
	},
}

func init() {
	dayAddCmd.Flags().BoolVar(&dayRest, "rest", false, "mark as a rest day")
	dayCmd.AddCommand(dayAddCmd)
	dayCmd.AddCommand(dayListCmd)
	rootCmd.AddCommand(dayCmd)
}
