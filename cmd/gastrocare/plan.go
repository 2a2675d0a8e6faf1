// ABOUTME: CLI commands for the daily meal plan.
// ABOUTME: Shows the plan filtered by flare mode and adds custom items.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jamiekretzschmar/gastrocare/internal/content"
	"github.com/jamiekretzschmar/gastrocare/internal/models"
	"github.com/spf13/cobra"
)

var (
	planFlare bool
	planItems []string
	planNotes string
)

var planCmd = &cobra.Command{
	Use:     "plan",
	Aliases: []string{"p"},
	Short:   "Show today's meal plan",
	Long: `Show the daily meal plan. Normal mode hides flare-only entries;
flare mode shows only flare-friendly (liquid/pureed) entries.

Examples:
  gastrocare plan            # Normal day
  gastrocare plan --flare    # Flare day: liquids only`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plan := content.FilterPlan(db.MealPlan(content.DefaultMealPlan), planFlare)
		if len(plan) == 0 {
			fmt.Println("No plan items for this mode.")
			return nil
		}

		if planFlare {
			color.Red("FLARE MODE — liquids and purees only")
			fmt.Println()
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)
		for _, item := range plan {
			fmt.Printf("%s  %s\n", faint.Sprint(item.Time), bold.Sprint(item.Title))
			for _, food := range item.Items {
				fmt.Printf("         - %s\n", food)
			}
			if item.Notes != "" {
				fmt.Printf("         %s\n", faint.Sprint(item.Notes))
			}
		}
		return nil
	},
}

var planAddCmd = &cobra.Command{
	Use:     "add <time> <title>",
	Aliases: []string{"a"},
	Short:   "Add a custom meal plan item",
	Long: `Add a custom item to the daily plan. The plan stays sorted by time.

Examples:
  gastrocare plan add 06:00 "Early Shake" --items "Protein Shake" --flare
  gastrocare plan add 11:00 "Broth Break" --items "Bone Broth,Crackers"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		at, title := args[0], args[1]
		if !models.IsValidClockTime(at) {
			return fmt.Errorf("invalid time: %s (use 24-hour HH:MM)", at)
		}

		item := models.MealPlanItem{
			Time:          at,
			Title:         title,
			Items:         planItems,
			Notes:         planNotes,
			FlareFriendly: planFlare,
		}
		if !db.AddMealPlanItem(item, content.DefaultMealPlan) {
			return fmt.Errorf("failed to save plan item")
		}

		color.Green("✓ Added %s at %s", title, at)
		if len(planItems) > 0 {
			fmt.Printf("  %s\n", strings.Join(planItems, ", "))
		}
		return nil
	},
}

func init() {
	planCmd.Flags().BoolVar(&planFlare, "flare", false, "show flare-friendly items only")
	planAddCmd.Flags().BoolVar(&planFlare, "flare", false, "mark the item flare-friendly")
	planAddCmd.Flags().StringSliceVar(&planItems, "items", nil, "foods in this meal (comma-separated)")
	planAddCmd.Flags().StringVar(&planNotes, "notes", "", "notes for the item")

	planCmd.AddCommand(planAddCmd)
	rootCmd.AddCommand(planCmd)
}
