// ABOUTME: Root Cobra command for gastrocare CLI.
// ABOUTME: Handles config load and store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/jamiekretzschmar/gastrocare/internal/config"
	"github.com/jamiekretzschmar/gastrocare/internal/store"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	db      *store.Store
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:   "gastrocare",
	Short: "Personal gastroparesis management tracker",
	Long: `Gastrocare is a CLI tool for managing gastroparesis day to day.

WHAT IT TRACKS:

  Meals        food, portion, texture (Liquid/Pureed/Soft Solid/Solid)
  Symptoms     nausea, vomiting, bloating, pain, with severity 1-10
  Hydration    fluid intake in ml against a daily goal
  Medications  daily schedule with reminders
  Blood Sugar  readings before and after meals

QUICK START:

  $ gastrocare log add "Cream of Rice" --texture Pureed    # Log a meal
  $ gastrocare log add --quick "Ensure/Boost"              # Quick-add a known food
  $ gastrocare water add 250                               # Log 250ml of fluid
  $ gastrocare summary                                     # Today's totals
  $ gastrocare trends                                      # Severity by activity

GUIDANCE:

  $ gastrocare plan              # Today's meal plan
  $ gastrocare plan --flare      # Flare-mode plan (liquids only)
  $ gastrocare guide             # Dietary rules
  $ gastrocare guide flare       # Flare-up protocol
  $ gastrocare timer             # Post-meal upright timer (60 min)
  $ gastrocare timer --walk      # Gentle walk timer (15 min)

AI DIETITIAN:

  Set GEMINI_API_KEY (environment or .env file), then:

  $ gastrocare ask "Can I eat popcorn?"

MCP INTEGRATION:

  Run 'gastrocare mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  Data is stored locally at ~/.local/share/gastrocare (override with
  --data or GASTROCARE_DATA_DIR). Nothing leaves your machine except
  AI dietitian questions.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}

		db, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default ~/.local/share/gastrocare)")
}
