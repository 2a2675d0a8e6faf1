// ABOUTME: CLI commands for hydration tracking.
// ABOUTME: Handles add, undo, status, goal, and reminder configuration.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jamiekretzschmar/gastrocare/internal/models"
	"github.com/jamiekretzschmar/gastrocare/internal/rollup"
	"github.com/spf13/cobra"
)

var (
	waterInterval int
	waterTimes    []string
	waterEnable   bool
	waterDisable  bool
)

var waterCmd = &cobra.Command{
	Use:     "water",
	Aliases: []string{"w"},
	Short:   "Track fluid intake",
}

var waterAddCmd = &cobra.Command{
	Use:     "add <ml>",
	Aliases: []string{"a"},
	Short:   "Log fluid intake in milliliters",
	Long: `Log fluid intake in milliliters.

Examples:
  gastrocare water add 250     # One glass
  gastrocare water add 500     # One bottle`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ml, err := strconv.ParseFloat(args[0], 64)
		if err != nil || ml <= 0 {
			return fmt.Errorf("invalid amount: %s (use a positive number of ml)", args[0])
		}

		if !db.AppendHydration(models.NewHydrationEntry(ml)) {
			return fmt.Errorf("failed to save hydration entry")
		}

		color.Green("✓ Logged %.0f ml", ml)
		printWaterStatus()
		return nil
	},
}

var waterUndoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the most recent intake entry",
	Long: `Undo the most recent positive intake entry by logging a matching
negative entry. The original entry stays in the history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var last *models.HydrationEntry
		for _, h := range db.Hydration() {
			if h.AmountML > 0 {
				last = h
				break
			}
		}
		if last == nil {
			return fmt.Errorf("nothing to undo")
		}

		if !db.AppendHydration(models.NewHydrationEntry(-last.AmountML)) {
			return fmt.Errorf("failed to save undo entry")
		}

		color.Green("✓ Undid %.0f ml", last.AmountML)
		printWaterStatus()
		return nil
	},
}

var waterStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's hydration progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		printWaterStatus()
		return nil
	},
}

var waterGoalCmd = &cobra.Command{
	Use:   "goal <ml>",
	Short: "Set the daily hydration goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, err := strconv.Atoi(args[0])
		if err != nil || goal <= 0 {
			return fmt.Errorf("invalid goal: %s (use a positive number of ml)", args[0])
		}

		settings := db.HydrationSettings()
		settings.DailyGoalML = goal
		if !db.SaveHydrationSettings(settings) {
			return fmt.Errorf("failed to save settings")
		}

		color.Green("✓ Daily goal set to %d ml", goal)
		return nil
	},
}

var waterRemindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Configure hydration reminders",
	Long: `Configure hydration reminders. Reminders fire while 'gastrocare remind'
is running.

Examples:
  gastrocare water remind --enable --interval 60        # Every hour
  gastrocare water remind --at 09:00 --at 14:30         # Fixed times
  gastrocare water remind --disable`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := db.HydrationSettings()

		if cmd.Flags().Changed("interval") {
			if waterInterval < 0 {
				return fmt.Errorf("interval must be zero or positive")
			}
			settings.ReminderIntervalMinutes = waterInterval
		}
		if cmd.Flags().Changed("at") {
			for _, at := range waterTimes {
				if !models.IsValidClockTime(at) {
					return fmt.Errorf("invalid time: %s (use 24-hour HH:MM, e.g. 09:00)", at)
				}
			}
			settings.ReminderTimes = waterTimes
		}
		if waterEnable {
			settings.Enabled = true
		}
		if waterDisable {
			settings.Enabled = false
		}

		if !db.SaveHydrationSettings(settings) {
			return fmt.Errorf("failed to save settings")
		}

		state := "disabled"
		if settings.Enabled {
			state = "enabled"
		}
		color.Green("✓ Hydration reminders %s", state)
		if settings.ReminderIntervalMinutes > 0 {
			fmt.Printf("  every %d minutes\n", settings.ReminderIntervalMinutes)
		}
		if len(settings.ReminderTimes) > 0 {
			fmt.Printf("  at %s\n", strings.Join(settings.ReminderTimes, ", "))
		}
		return nil
	},
}

func printWaterStatus() {
	settings := db.HydrationSettings()
	total := rollup.HydrationTotal(db.Hydration(), time.Now())
	progress := rollup.Progress(total, settings.Goal())

	bar := progressBar(progress, 20)
	fmt.Printf("  %s %.0f / %d ml (%.0f%%)\n", bar, total, settings.Goal(), progress)
}

// progressBar renders a fixed-width unicode bar for a 0-100 percentage.
func progressBar(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return color.CyanString(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled)
}

func init() {
	waterRemindCmd.Flags().IntVar(&waterInterval, "interval", 0, "reminder interval in minutes (0 disables interval reminders)")
	waterRemindCmd.Flags().StringArrayVar(&waterTimes, "at", nil, "fixed reminder time, 24-hour HH:MM (repeatable)")
	waterRemindCmd.Flags().BoolVar(&waterEnable, "enable", false, "enable hydration reminders")
	waterRemindCmd.Flags().BoolVar(&waterDisable, "disable", false, "disable hydration reminders")

	waterCmd.AddCommand(waterAddCmd)
	waterCmd.AddCommand(waterUndoCmd)
	waterCmd.AddCommand(waterStatusCmd)
	waterCmd.AddCommand(waterGoalCmd)
	waterCmd.AddCommand(waterRemindCmd)
	rootCmd.AddCommand(waterCmd)
}
