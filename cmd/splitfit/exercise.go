// ABOUTME: CLI commands for managing exercises within a split day.
// ABOUTME: Order indexes are assigned automatically on append.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/splitfitapp/splitfit/internal/models"
)

var (
	exerciseSets    int
	exerciseRest    int
	exerciseNote    string
	exerciseMuscles string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Manage exercises",
	Long: `Manage the exercises of a split day.

New exercises append at the next free order position.

Examples:
  splitfit exercise add <day-id> "Bench Press" --sets 4 --rest 180 --muscles chest
  splitfit exercise list <day-id>
  splitfit exercise rm <exercise-id>`,
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <day-id> <name>",
	Short: "Add an exercise to a day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}

		dayID, err := resolveDayID(acct.UserID, args[0])
		if err != nil {
			return err
		}
		order, err := rp.NextExerciseOrder(dayID)
		if err != nil {
			return fmt.Errorf("failed to assign order: %w", err)
		}

		e := models.NewExercise(dayID, args[1], order)
		if exerciseSets > 0 {
			e.WithDefaultSets(exerciseSets)
		}
		if exerciseRest > 0 {
			e.WithRestSeconds(exerciseRest)
		}
		if exerciseNote != "" {
			e.WithNote(exerciseNote)
		}
		if exerciseMuscles != "" {
			e.WithMuscleGroup(exerciseMuscles)
		}

		if err := rp.CreateExercise(e); err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		color.Green("✓ Added %s at position %d", e.Name, e.Order)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(shortID(e.ID)))
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list <day-id>",
	Aliases: []string{"ls"},
	Short:   "List a day's exercises",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}

		dayID, err := resolveDayID(acct.UserID, args[0])
		if err != nil {
			return err
		}
		exercises, err := rp.ListExercises(dayID)
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}
		if len(exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range exercises {
			muscles := ""
			if e.MuscleGroup != "" {
				muscles = faint.Sprintf("  [%s]", e.MuscleGroup)
			}
			fmt.Printf("%s  %d. %s  %dx, rest %ds%s\n",
				faint.Sprint(shortID(e.ID)), e.Order, e.Name, e.DefaultSets, e.RestSeconds, muscles)
		}
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <exercise-id>",
	Aliases: []string{"rm"},
	Short:   "Remove an exercise",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}

		id, err := resolveExerciseID(acct.UserID, args[0])
		if err != nil {
			return err
		}
		e, err := rp.GetExercise(id)
		if err != nil {
			return fmt.Errorf("exercise not found: %s", args[0])
		}

		if err := rp.DeleteExercise(id); err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}
		color.Yellow("✗ Deleted %s", e.Name)
		return nil
	},
}

func init() {
	exerciseAddCmd.Flags().IntVar(&exerciseSets, "sets", 0, "default working-set count")
	exerciseAddCmd.Flags().IntVar(&exerciseRest, "rest", 0, "rest between sets, seconds")
	exerciseAddCmd.Flags().StringVar(&exerciseNote, "note", "", "free-text note")
	exerciseAddCmd.Flags().StringVar(&exerciseMuscles, "muscles", "", "muscle group label")
	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
