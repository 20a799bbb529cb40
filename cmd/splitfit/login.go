// ABOUTME: CLI commands for account identity: login, logout, whoami.
// ABOUTME: Login upserts the user document and records the local profile.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/splitfitapp/splitfit/internal/auth"
	"github.com/splitfitapp/splitfit/internal/models"
	"github.com/splitfitapp/splitfit/internal/store"
)

var loginName string

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Log in (creating the account on first use)",
	Long: `Log in as the given email address.

The first login for an email creates the user record; later logins
reuse it. The identity is stored in a local profile file and scopes
every other command to that user.

Examples:
  splitfit login you@example.com --name "You"
  splitfit login you@example.com`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := args[0]

		user, err := rp.FindUserByEmail(email)
		if errors.Is(err, store.ErrNotFound) {
			user = models.NewUser(email, loginName)
			if err := rp.UpsertUser(user); err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to look up user: %w", err)
		}

		acct := &auth.Account{UserID: user.ID, Email: user.Email, DisplayName: user.DisplayName}
		if err := identity.Login(acct); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		color.Green("✓ Logged in as %s", email)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(shortID(user.ID)))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := identity.Logout(); err != nil {
			return fmt.Errorf("failed to log out: %w", err)
		}
		color.Yellow("✗ Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current account",
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}
		fmt.Printf("%s", acct.Email)
		if acct.DisplayName != "" {
			fmt.Printf(" (%s)", acct.DisplayName)
		}
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(shortID(acct.UserID)))
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginName, "name", "", "display name for a new account")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
