// ABOUTME: CLI command for the daily summary dashboard.
// ABOUTME: Nutrient totals, macro split, hydration progress, and today's meals.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/jamiekretzschmar/gastrocare/internal/rollup"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"s"},
	Short:   "Show today's summary",
	Long: `Show today's nutrient totals, macro split, hydration progress, and
logged meals.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		logs := db.Logs()
		_ = db.HydrationSettings()

		totals := rollup.DailyTotals(logs, now)
		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Printf("Today — %s\n\n", now.Format("Monday, Jan 2"))

		fmt.Printf("  Calories  %.0f kcal\n", totals.Calories)
		fmt.Printf("  Protein   %.1f g\n", totals.Protein)
		fmt.Printf("  Carbs     %.1f g\n", totals.Carbs)
		fmt.Printf("  Fat       %.1f g\n", totals.Fat)

		if split := rollup.MacroSplit(totals); len(split) > 0 {
			fmt.Println()
			bold.Println("Macro split")
			var total float64
			for _, m := range split {
				total += m.Value
			}
			for _, m := range split {
				pct := m.Value / total * 100
				fmt.Printf("  %s %s %.0f%%\n", padRight(m.Name, 8), progressBar(pct, 20), pct)
			}
		}

		fmt.Println()
		bold.Println("Hydration")
		printWaterStatus()

		var count int
		for _, e := range logs {
			if e.OnDay(now) {
				count++
			}
		}
		fmt.Println()
		if count == 0 {
			faint.Println("No meals logged today.")
		} else {
			bold.Printf("Meals logged: %d\n", count)
			for i := len(logs) - 1; i >= 0; i-- {
				e := logs[i]
				if !e.OnDay(now) {
					continue
				}
				fmt.Printf("  %s  %s", faint.Sprint(e.DisplayTime()), e.Food)
				if len(e.Symptoms) > 0 {
					fmt.Printf("  %s", color.YellowString("%d/10", e.Severity))
				}
				fmt.Println()
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
