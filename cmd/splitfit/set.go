// ABOUTME: CLI command for logging workout sets.
// ABOUTME: Set numbers auto-increment per exercise within a session.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/splitfitapp/splitfit/internal/models"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Log workout sets",
}

var setLogCmd = &cobra.Command{
	Use:   "log <session-id> <exercise-id> <reps> <weight>",
	Short: "Record one set",
	Long: `Record one (reps, weight) set for an exercise in a session.

Weight is in kg; use 0 for bodyweight work. Sets are immutable once
written.

Examples:
  splitfit set log 3fa2 9b1c 8 100
  splitfit set log 3fa2 9b1c 12 0     # bodyweight`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}

		sessionID, err := resolveSessionID(acct.UserID, args[0])
		if err != nil {
			return err
		}
		exerciseID, err := resolveExerciseID(acct.UserID, args[1])
		if err != nil {
			return err
		}
		reps, err := strconv.Atoi(args[2])
		if err != nil || reps <= 0 {
			return fmt.Errorf("invalid rep count: %s", args[2])
		}
		weight, err := strconv.ParseFloat(args[3], 64)
		if err != nil || weight < 0 {
			return fmt.Errorf("invalid weight: %s", args[3])
		}

		num, err := rp.NextSetNumber(sessionID, exerciseID)
		if err != nil {
			return fmt.Errorf("failed to number set: %w", err)
		}

		ws := models.NewWorkoutSet(sessionID, exerciseID, num, reps, weight)
		if err := rp.CreateWorkoutSet(ws); err != nil {
			return fmt.Errorf("failed to log set: %w", err)
		}

		color.Green("✓ Set %d: %d reps @ %.1f kg", ws.SetNumber, ws.Reps, ws.Weight)
		return nil
	},
}

var setListCmd = &cobra.Command{
	Use:     "list <session-id>",
	Aliases: []string{"ls"},
	Short:   "List a session's sets",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}

		sessionID, err := resolveSessionID(acct.UserID, args[0])
		if err != nil {
			return err
		}
		sets, err := rp.ListSessionSets(sessionID)
		if err != nil {
			return fmt.Errorf("failed to list sets: %w", err)
		}
		if len(sets) == 0 {
			fmt.Println("No sets logged.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, ws := range sets {
			fmt.Printf("%s  set %d  %d reps @ %.1f kg  (%.1f volume)\n",
				faint.Sprint(shortID(ws.ExerciseID)),
				ws.SetNumber, ws.Reps, ws.Weight, ws.Volume())
		}
		return nil
	},
}

func init() {
	setCmd.AddCommand(setLogCmd)
	setCmd.AddCommand(setListCmd)
	rootCmd.AddCommand(setCmd)
}
