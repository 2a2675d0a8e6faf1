// ABOUTME: CLI commands for the medication schedule.
// ABOUTME: Handles add, list, toggle, and delete.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jamiekretzschmar/gastrocare/internal/models"
	"github.com/spf13/cobra"
)

var medsCmd = &cobra.Command{
	Use:     "meds",
	Aliases: []string{"m"},
	Short:   "Manage the medication schedule",
}

var medsAddCmd = &cobra.Command{
	Use:     "add <name> <dosage> <time>",
	Aliases: []string{"a"},
	Short:   "Add a medication to the schedule",
	Long: `Add a medication with a daily reminder time (24-hour HH:MM).

Examples:
  gastrocare meds add Domperidone 10mg 08:00
  gastrocare meds add Tacrolimus 2mg 21:00`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, dosage, at := args[0], args[1], args[2]
		if !models.IsValidClockTime(at) {
			return fmt.Errorf("invalid time: %s (use 24-hour HH:MM, e.g. 08:00)", at)
		}

		m := models.NewMedication(name, dosage, at)
		if !db.AddMedication(m) {
			return fmt.Errorf("failed to save medication")
		}

		color.Green("✓ Added %s", name)
		fmt.Printf("  %s %s at %s\n", color.New(color.Faint).Sprint(m.ID.String()[:8]), dosage, at)
		return nil
	},
}

var medsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List medications sorted by reminder time",
	RunE: func(cmd *cobra.Command, args []string) error {
		meds := db.Medications()
		if len(meds) == 0 {
			fmt.Println("No medications found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range meds {
			state := color.GreenString("on ")
			if !m.Enabled {
				state = faint.Sprint("off")
			}
			fmt.Printf("%s %s %s %s %s\n",
				faint.Sprint(m.ID.String()[:8]),
				m.Time,
				state,
				padRight(m.Name, 20),
				m.Dosage)
		}
		return nil
	},
}

var medsToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Enable or disable a medication's reminders",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := db.ToggleMedication(args[0])
		if err != nil {
			return fmt.Errorf("failed to toggle medication: %w", err)
		}

		state := "disabled"
		if m.Enabled {
			state = "enabled"
		}
		color.Green("✓ %s %s", m.Name, state)
		return nil
	},
}

var medsDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a medication by ID or prefix",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deleted, err := db.DeleteMedication(args[0])
		if err != nil {
			return fmt.Errorf("failed to delete medication: %w", err)
		}
		color.Green("✓ Deleted %s", deleted.Name)
		return nil
	},
}

func init() {
	medsCmd.AddCommand(medsAddCmd)
	medsCmd.AddCommand(medsListCmd)
	medsCmd.AddCommand(medsToggleCmd)
	medsCmd.AddCommand(medsDeleteCmd)
	rootCmd.AddCommand(medsCmd)
}
