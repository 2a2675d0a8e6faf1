// ABOUTME: CLI command for symptom trend analysis.
// ABOUTME: Severity by post-meal activity and the severity time series.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jamiekretzschmar/gastrocare/internal/rollup"
	"github.com/spf13/cobra"
)

var trendsSeries bool

var trendsCmd = &cobra.Command{
	Use:     "trends",
	Aliases: []string{"t"},
	Short:   "Show symptom trends",
	Long: `Show average symptom severity grouped by post-meal activity, and
optionally the full severity time series.

The activity comparison answers the key management question: does
staying upright or walking after meals actually reduce your symptoms?`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logs := db.Logs()
		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Println("Average severity by post-meal activity")
		fmt.Println()
		for _, avg := range rollup.ActivityAverages(logs) {
			bar := progressBar(avg.Average*10, 20)
			count := faint.Sprintf("(%d meals)", avg.Count)
			fmt.Printf("  %s %s %.1f %s\n", padRight(avg.Activity, 14), bar, avg.Average, count)
		}

		if trendsSeries {
			series := rollup.SeveritySeries(logs)
			if len(series) > 0 {
				fmt.Println()
				bold.Println("Severity over time")
				fmt.Println()
				for _, p := range series {
					severity := fmt.Sprintf("%2d", p.Severity)
					if p.Severity >= 7 {
						severity = color.RedString(severity)
					}
					line := fmt.Sprintf("  %s %s %s", padRight(p.Time, 6), severity, progressBar(float64(p.Severity)*10, 10))
					if p.BloodSugarAfter > 0 {
						line += faint.Sprintf("  BS %.1f", p.BloodSugarAfter)
					}
					fmt.Println(line)
				}
			}
		}
		return nil
	},
}

func init() {
	trendsCmd.Flags().BoolVar(&trendsSeries, "series", false, "include the full severity time series")
	rootCmd.AddCommand(trendsCmd)
}
