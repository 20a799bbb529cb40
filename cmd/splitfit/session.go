// ABOUTME: CLI commands for workout sessions: start, finish, list.
// ABOUTME: A session is created open and mutated once to mark completion.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/splitfitapp/splitfit/internal/models"
)

var sessionLimit int

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"s"},
	Short:   "Manage workout sessions",
	Long: `Track workout sessions against a split day.

WORKFLOW:

  1. Start a session:   splitfit session start <day-id>
  2. Log sets:          splitfit set log <session-id> <exercise-id> 8 100
  3. Finish:            splitfit session finish <session-id>`,
}

var sessionStartCmd = &cobra.Command{
	Use:   "start <day-id>",
	Short: "Start a session for a split day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}

		dayID, err := resolveDayID(acct.UserID, args[0])
		if err != nil {
			return err
		}
		day, err := rp.GetSplitDay(dayID)
		if err != nil {
			return fmt.Errorf("day not found: %s", args[0])
		}
		if day.IsRestDay {
			return fmt.Errorf("%s is a rest day", day.Name)
		}

		sess := models.NewSession(acct.UserID, dayID)
		if err := rp.CreateSession(sess); err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}

		color.Green("✓ Started %s session", day.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(shortID(sess.ID)))
		return nil
	},
}

var sessionFinishCmd = &cobra.Command{
	Use:   "finish <session-id>",
	Short: "Mark a session completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}

		id, err := resolveSessionID(acct.UserID, args[0])
		if err != nil {
			return err
		}
		if err := rp.CompleteSession(id, time.Now()); err != nil {
			return fmt.Errorf("failed to finish session: %w", err)
		}
		color.Green("✓ Finished session %s", args[0])
		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}

		sessions, err := rp.ListSessions(acct.UserID, sessionLimit)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range sessions {
			status := "open"
			if s.Completed {
				status = "done"
			}
			fmt.Printf("%s  %s  %s\n",
				faint.Sprint(shortID(s.ID)),
				s.Date.Format("2006-01-02"),
				status)
		}
		return nil
	},
}

func init() {
	sessionListCmd.Flags().IntVarP(&sessionLimit, "limit", "n", 20, "max sessions to show")
	sessionCmd.AddCommand(sessionStartCmd)
	sessionCmd.AddCommand(sessionFinishCmd)
	sessionCmd.AddCommand(sessionListCmd)
	rootCmd.AddCommand(sessionCmd)
}
