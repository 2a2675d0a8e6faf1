// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jamiekretzschmar/gastrocare/internal/assistant"
	"github.com/jamiekretzschmar/gastrocare/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your tracker data
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "gastrocare": {
        "command": "gastrocare",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_meal          Log a meal with symptoms and nutrition
  log_hydration     Record water intake
  list_logs         List recent log entries
  delete_log        Delete a log entry by ID
  daily_summary     Today's totals, macro split, and hydration
  activity_trends   Average severity by post-meal activity
  ask_dietitian     Ask the AI dietitian with log context

AVAILABLE RESOURCES:

  gastrocare://recent    Recent logs and hydration events
  gastrocare://today     Today's entries
  gastrocare://summary   Full daily summary`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var dietitian *assistant.Dietitian
		if cfg.GeminiAPIKey != "" {
			var opts []assistant.Option
			if cfg.GeminiModel != "" {
				opts = append(opts, assistant.WithModel(cfg.GeminiModel))
			}
			dietitian = assistant.NewDietitian(cfg.GeminiAPIKey, opts...)
		}

		server, err := mcp.NewServer(db, dietitian)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
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
