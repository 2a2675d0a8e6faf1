// ABOUTME: CLI command for the AI dietitian.
// ABOUTME: Sends a question plus recent log context to Gemini.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jamiekretzschmar/gastrocare/internal/assistant"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Ask the AI dietitian",
	Long: `Ask the AI dietitian a question. Your recent log entries are sent as
context so answers can reference what you actually ate and felt.

Requires a Gemini API key in the GEMINI_API_KEY environment variable
(or gemini_api_key in the config file).

EXAMPLES:

  gastrocare ask "Why am I bloated after protein shakes?"
  gastrocare ask what should I eat during a flare`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		var opts []assistant.Option
		if cfg.GeminiModel != "" {
			opts = append(opts, assistant.WithModel(cfg.GeminiModel))
		}
		dietitian := assistant.NewDietitian(cfg.GeminiAPIKey, opts...)

		faint := color.New(color.Faint)
		faint.Println("Consulting the dietitian...")

		reply := dietitian.Ask(cmd.Context(), question, db.Logs())
		fmt.Println()
		fmt.Println(reply)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
