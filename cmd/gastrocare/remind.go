// ABOUTME: CLI command for the foreground reminder loop.
// ABOUTME: Fires hydration and medication notifications on schedule.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/jamiekretzschmar/gastrocare/internal/reminder"
	"github.com/spf13/cobra"
)

var remindTerminal bool

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Run the reminder loop",
	Long: `Run the reminder loop in the foreground. Checks every minute and fires
hydration reminders (fixed times and/or interval) plus medication
reminders at their scheduled times.

Notifications go through notify-send when available, otherwise to the
terminal. Press Ctrl+C to stop.

EXAMPLES:

  gastrocare remind               # desktop notifications if available
  gastrocare remind --terminal    # force terminal notifications`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var notifier reminder.Notifier
		switch {
		case remindTerminal || !reminder.DesktopAvailable():
			if !remindTerminal {
				color.Yellow("notify-send not found; printing reminders to the terminal")
			}
			notifier = reminder.TerminalNotifier{Out: os.Stdout}
		default:
			notifier = reminder.DesktopNotifier{}
		}

		settings := db.HydrationSettings()
		meds := db.Medications()
		checker := reminder.NewChecker(notifier, settings, meds)

		faint := color.New(color.Faint)
		fmt.Println("Reminder loop running. Press Ctrl+C to stop.")
		if settings.Enabled {
			if settings.ReminderIntervalMinutes > 0 {
				faint.Printf("  water: every %d minutes\n", settings.ReminderIntervalMinutes)
			}
			for _, at := range settings.ReminderTimes {
				faint.Printf("  water: at %s\n", at)
			}
		}
		for _, m := range meds {
			if m.Enabled {
				faint.Printf("  med:   %s %s at %s\n", m.Name, m.Dosage, m.Time)
			}
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		checker.Run(ctx)
		fmt.Println("\nStopped.")
		return nil
	},
}

func init() {
	remindCmd.Flags().BoolVar(&remindTerminal, "terminal", false, "print reminders to the terminal instead of notify-send")
	rootCmd.AddCommand(remindCmd)
}
