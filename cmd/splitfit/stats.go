// ABOUTME: CLI commands for progress statistics.
// ABOUTME: 'stats' shows the dashboard; 'progress' drills into one exercise.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/splitfitapp/splitfit/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress statistics",
	Long: `Show aggregate training statistics.

Computed from your most recent sessions (up to 100): total workouts,
current streak, total volume (weight x reps summed over every set),
and your highest-volume exercise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := stats.NewEngine(rp, identity)
		st, err := engine.ComputeProgressStats()
		if err != nil {
			return fmt.Errorf("failed to compute stats: %w", err)
		}

		bold := color.New(color.Bold)
		fmt.Printf("Workouts        %s\n", bold.Sprintf("%d", st.TotalWorkouts))
		fmt.Printf("Current streak  %s days\n", bold.Sprintf("%d", st.CurrentStreak))
		fmt.Printf("Longest streak  %s days\n", bold.Sprintf("%d", st.LongestStreak))
		fmt.Printf("Total volume    %s kg\n", bold.Sprintf("%.1f", st.TotalVolume))
		if st.FavoriteExercise != nil {
			ex, err := rp.GetExercise(*st.FavoriteExercise)
			if err == nil {
				fmt.Printf("Favorite        %s\n", bold.Sprint(ex.Name))
			} else {
				fmt.Printf("Favorite        %s\n", bold.Sprint(shortID(*st.FavoriteExercise)))
			}
		}
		fmt.Printf("Avg duration    %s\n", bold.Sprint(st.AverageDuration))
		return nil
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress <exercise-id>",
	Short: "Show progress for one exercise",
	Long: `Show per-exercise progress: max weight, max reps, total volume,
and when you last performed it. Max weight and max reps are independent
and may come from different sets.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}

		id, err := resolveExerciseID(acct.UserID, args[0])
		if err != nil {
			return err
		}

		engine := stats.NewEngine(rp, identity)
		progress, err := engine.ExerciseProgress(id)
		if err != nil {
			return fmt.Errorf("failed to compute progress: %w", err)
		}
		if progress == nil {
			fmt.Println("No sets recorded for this exercise.")
			return nil
		}

		name := shortID(id)
		if ex, err := rp.GetExercise(id); err == nil {
			name = ex.Name
		}

		bold := color.New(color.Bold)
		fmt.Printf("%s\n", bold.Sprint(name))
		fmt.Printf("  Max weight     %.1f kg\n", progress.MaxWeight)
		fmt.Printf("  Max reps       %d\n", progress.MaxReps)
		fmt.Printf("  Total volume   %.1f kg\n", progress.TotalVolume)
		fmt.Printf("  Last performed %s\n", progress.LastPerformed.Format("2006-01-02"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(progressCmd)
}
