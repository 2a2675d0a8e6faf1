// ABOUTME: CLI commands for the meal/symptom log.
// ABOUTME: Handles add (including quick-add foods), list, and delete.
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
	logTexture  string
	logPortion  string
	logSymptoms []string
	logSeverity int
	logActivity string
	logBSBefore float64
	logBSAfter  float64
	logCalories float64
	logProtein  float64
	logCarbs    float64
	logFat      float64
	logFiber    float64
	logBristol  int
	logMedTaken bool
	logQuick    bool
	logAt       string
	logNotes    string
	logLimit    int
)

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"l"},
	Short:   "Manage the meal and symptom log",
}

var logAddCmd = &cobra.Command{
	Use:     "add <food>",
	Aliases: []string{"a"},
	Short:   "Log a meal with symptoms",
	Long: `Log a meal with optional symptoms, texture, and nutrition.

Examples:
  gastrocare log add "Cream of Rice" --texture Pureed --portion "1/2 cup"
  gastrocare log add "Blended Soup" --symptoms Nausea,Bloating --severity 6
  gastrocare log add "Mashed Potatoes" --activity "Lay Down" --bs-after 9.2
  gastrocare log add --quick "Ensure/Boost"    # known food, nutrition filled in`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		food := args[0]

		e := models.NewLogEntry(food)

		if logQuick {
			qf := content.FindQuickFood(food)
			if qf == nil {
				names := make([]string, len(content.QuickAddFoods))
				for i, f := range content.QuickAddFoods {
					names[i] = f.Name
				}
				return fmt.Errorf("unknown quick-add food: %s\nKnown foods: %s", food, strings.Join(names, ", "))
			}
			e.WithTexture(qf.Texture).WithPortion(qf.Portion).WithNutrition(qf.Nutrition)
		}

		if logTexture != "" {
			if !models.IsValidTexture(logTexture) {
				return fmt.Errorf("unknown texture: %s\nValid textures: Liquid, Pureed, Soft Solid, Solid", logTexture)
			}
			e.WithTexture(models.Texture(logTexture))
		}
		if logPortion != "" {
			e.WithPortion(logPortion)
		}
		if len(logSymptoms) > 0 {
			e.WithSymptoms(logSymptoms...)
		}
		if logSeverity > 0 {
			e.WithSeverity(logSeverity)
		}
		if logActivity != "" {
			e.WithActivity(models.Activity(logActivity))
		}

		var before, after *float64
		if cmd.Flags().Changed("bs-before") {
			before = &logBSBefore
		}
		if cmd.Flags().Changed("bs-after") {
			after = &logBSAfter
		}
		if before != nil || after != nil {
			e.WithBloodSugar(before, after)
		}

		if logCalories > 0 || logProtein > 0 || logCarbs > 0 || logFat > 0 || logFiber > 0 {
			e.WithNutrition(models.Nutrition{
				Calories: logCalories,
				Protein:  logProtein,
				Carbs:    logCarbs,
				Fat:      logFat,
				Fiber:    logFiber,
			})
		}
		if logBristol > 0 {
			e.WithBristol(logBristol)
		}
		if cmd.Flags().Changed("med-taken") {
			e.WithMedicationTaken(logMedTaken)
		}
		if logAt != "" {
			t, ok := models.ParseRecordedAt(logAt)
			if !ok {
				return fmt.Errorf("invalid timestamp: %s", logAt)
			}
			e.WithRecordedAt(t)
		}
		if logNotes != "" {
			e.WithNotes(logNotes)
		}

		if !db.AppendLog(e) {
			return fmt.Errorf("failed to save log entry")
		}

		color.Green("✓ Logged %s", e.Food)
		detail := e.DisplayTime()
		if e.Texture != "" {
			detail += "  " + string(e.Texture)
		}
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprint(e.ID.String()[:8]), detail)

		if e.Texture == models.TextureSolid {
			color.Yellow("  ! Solid texture: chew to applesauce consistency and stay upright")
		}
		return nil
	},
}

var logListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List log entries",
	Long: `List recent log entries, newest first.

Each line shows: ID  TIMESTAMP  FOOD  TEXTURE  SEVERITY  SYMPTOMS

The ID is an 8-character prefix you can use with delete.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logs := db.Logs()
		if len(logs) == 0 {
			fmt.Println("No log entries found.")
			return nil
		}
		if logLimit > 0 && len(logs) > logLimit {
			logs = logs[:logLimit]
		}

		faint := color.New(color.Faint)
		for _, e := range logs {
			symptoms := ""
			if len(e.Symptoms) > 0 {
				symptoms = faint.Sprintf(" (%s)", truncate(strings.Join(e.Symptoms, ", "), 40))
			}
			severity := fmt.Sprintf("%d/10", e.Severity)
			if e.Severity >= 7 {
				severity = color.RedString(severity)
			}
			fmt.Printf("%s %s %s %s %s%s\n",
				faint.Sprint(e.ID.String()[:8]),
				faint.Sprint(e.DisplayTimestamp()),
				padRight(truncate(e.Food, 28), 28),
				padRight(string(e.Texture), 10),
				severity,
				symptoms)
		}
		return nil
	},
}

var logDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a log entry by ID or prefix",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deleted, err := db.DeleteLog(args[0])
		if err != nil {
			return fmt.Errorf("failed to delete log: %w", err)
		}
		color.Green("✓ Deleted %s (%s)", deleted.ID.String()[:8], deleted.Food)
		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	logAddCmd.Flags().StringVar(&logTexture, "texture", "", "food texture (Liquid, Pureed, Soft Solid, Solid)")
	logAddCmd.Flags().StringVar(&logPortion, "portion", "", "portion size, free text")
	logAddCmd.Flags().StringSliceVar(&logSymptoms, "symptoms", nil, "symptom tags (comma-separated)")
	logAddCmd.Flags().IntVar(&logSeverity, "severity", 0, "symptom severity 1-10")
	logAddCmd.Flags().StringVar(&logActivity, "activity", "", "post-meal activity (Sat Upright, Walked, Lay Down)")
	logAddCmd.Flags().Float64Var(&logBSBefore, "bs-before", 0, "blood sugar before the meal")
	logAddCmd.Flags().Float64Var(&logBSAfter, "bs-after", 0, "blood sugar after the meal")
	logAddCmd.Flags().Float64Var(&logCalories, "calories", 0, "calories (kcal)")
	logAddCmd.Flags().Float64Var(&logProtein, "protein", 0, "protein in grams")
	logAddCmd.Flags().Float64Var(&logCarbs, "carbs", 0, "carbs in grams")
	logAddCmd.Flags().Float64Var(&logFat, "fat", 0, "fat in grams")
	logAddCmd.Flags().Float64Var(&logFiber, "fiber", 0, "fiber in grams")
	logAddCmd.Flags().IntVar(&logBristol, "bristol", 0, "Bristol stool score 1-7")
	logAddCmd.Flags().BoolVar(&logMedTaken, "med-taken", false, "medication taken with this meal")
	logAddCmd.Flags().BoolVar(&logQuick, "quick", false, "treat <food> as a quick-add food with known nutrition")
	logAddCmd.Flags().StringVar(&logAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	logAddCmd.Flags().StringVar(&logNotes, "notes", "", "notes for the entry")

	logListCmd.Flags().IntVarP(&logLimit, "limit", "n", 20, "max number of results")

	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logDeleteCmd)
	rootCmd.AddCommand(logCmd)
}
