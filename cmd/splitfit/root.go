// ABOUTME: Root Cobra command for splitfit CLI.
// ABOUTME: Opens config, store, repo, and identity in PersistentPreRunE.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/splitfitapp/splitfit/internal/auth"
	"github.com/splitfitapp/splitfit/internal/config"
	"github.com/splitfitapp/splitfit/internal/repo"
	"github.com/splitfitapp/splitfit/internal/store"
)

var (
	cfg      *config.Config
	docStore store.Store
	rp       *repo.Repo
	identity *auth.FileProvider
	logger   *log.Logger

	flagBackend string
	flagDataDir string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "splitfit",
	Short: "Workout split tracker",
	Long: `Splitfit tracks weekly workout splits, sessions, and progress.

CONCEPTS:

  Split      a named weekly plan made of days
  Day        one weekday slot: a workout day with exercises, or a rest day
  Session    one performance of a day on a date
  Set        one (reps, weight) record tied to an exercise

QUICK START:

  $ splitfit login you@example.com --name "You"
  $ splitfit template apply "Push/Pull/Legs" "My PPL" 1=Push 3=Pull 5=Legs 7=Rest
  $ splitfit split list
  $ splitfit session start <day-id>
  $ splitfit set log <session-id> <exercise-id> 8 100
  $ splitfit session finish <session-id>
  $ splitfit stats

PROGRESS:

  $ splitfit stats                  # streaks, volume, favorite exercise
  $ splitfit progress <exercise-id> # max weight, max reps, volume
  $ splitfit photo add selfie.jpg --weight 82.5

DATA STORAGE:

  Data lives in a local Badger store at ~/.local/share/splitfit.
  Set backend to "charm" in ~/.config/splitfit/config.json to sync
  through Charm Cloud (E2E encrypted with your SSH key).

MCP INTEGRATION:

  Run 'splitfit mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		} else {
			logger.SetLevel(log.WarnLevel)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if flagBackend != "" {
			cfg.Backend = flagBackend
		}
		if flagDataDir != "" {
			cfg.DataDir = flagDataDir
		}

		docStore, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}

		rp = repo.New(docStore, logger)
		identity = auth.NewFileProvider("")
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if docStore != nil {
			return docStore.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend (badger, charm, memory)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory override")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging")
}

// requireUser returns the logged-in account or a friendly error.
func requireUser() (*auth.Account, error) {
	acct, err := identity.CurrentUser()
	if err != nil {
		return nil, fmt.Errorf("not logged in - run 'splitfit login <email>' first")
	}
	return acct, nil
}
