// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/splitfitapp/splitfit/internal/mcp"
	"github.com/splitfitapp/splitfit/internal/routine"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your training data
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "splitfit": {
        "command": "splitfit",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_splits            List your workout splits
  get_split              Get a split with its days and exercises
  apply_template         Create a split from a built-in template
  start_session          Start a workout session for a day
  finish_session         Mark a session completed
  log_set                Record one set (reps, weight)
  get_progress_stats     Aggregate stats: streaks, volume, favorite
  get_exercise_progress  Per-exercise maxima and volume

AVAILABLE RESOURCES:

  splitfit://summary     Account and data summary
  splitfit://splits      All splits with days
  splitfit://today       Today's scheduled day, if any`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(rp, identity, routine.DefaultCatalog())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
