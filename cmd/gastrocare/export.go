// ABOUTME: CLI command for exporting tracker data.
// ABOUTME: Supports JSON, YAML, and CSV formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jamiekretzschmar/gastrocare/internal/export"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export tracker data",
	Long: `Export tracker data in various formats.

FORMATS:

  json   Full JSON export (suitable for backup)
  yaml   YAML export (human-readable)
  csv    Meal/symptom log as CSV (for spreadsheets and clinicians)

EXAMPLES:

  gastrocare export json                  # Export all data as JSON
  gastrocare export json -o backup.json   # Save to file
  gastrocare export csv -o log.csv        # Log entries for the clinic`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "csv"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = export.JSON(db)
		case "yaml":
			data, err = export.YAML(db)
		case "csv":
			data, err = export.CSV(db.Logs())
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or csv)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Print(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import tracker data from JSON",
	Long: `Import tracker data from a JSON backup file.

Logs, hydration entries, and medications are merged into the store.
Duplicate entries (same ID) will cause an error.

EXAMPLES:

  gastrocare import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := export.Import(db, data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
