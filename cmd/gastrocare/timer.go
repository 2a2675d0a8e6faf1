// ABOUTME: CLI command for the post-meal timer.
// ABOUTME: Counts down the upright period and notifies when it ends.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/jamiekretzschmar/gastrocare/internal/reminder"
	"github.com/spf13/cobra"
)

var (
	timerMinutes int
	timerWalk    bool
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Run the post-meal upright timer",
	Long: `Run a countdown for the post-meal routine: stay upright for 60 minutes
after eating, or take a gentle 15-minute walk to aid gastric emptying.

The timer counts down in the terminal and sends a notification when the
period ends. Press Ctrl+C to stop early.

EXAMPLES:

  gastrocare timer              # 60-minute upright timer
  gastrocare timer --walk       # 15-minute walk timer
  gastrocare timer -m 30        # custom duration`,
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes := timerMinutes
		label := "Stay upright"
		if timerWalk {
			label = "Gentle walk"
			if !cmd.Flags().Changed("minutes") {
				minutes = 15
			}
		}
		if minutes <= 0 {
			return fmt.Errorf("duration must be positive")
		}

		var notifier reminder.Notifier = reminder.TerminalNotifier{Out: os.Stdout}
		if reminder.DesktopAvailable() {
			notifier = reminder.DesktopNotifier{}
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		bold := color.New(color.Bold)
		bold.Printf("%s — %d minutes\n", label, minutes)

		total := time.Duration(minutes) * time.Minute
		deadline := time.Now().Add(total)
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				fmt.Println("\nTimer stopped.")
				return nil
			case <-ticker.C:
				left := time.Until(deadline)
				if left <= 0 {
					fmt.Printf("\r%s  \n", progressBar(100, 30))
					color.Green("✓ Done — %s complete", label)
					_ = notifier.Notify("Post-meal timer", fmt.Sprintf("%s complete (%d min)", label, minutes))
					return nil
				}
				elapsed := total - left
				pct := elapsed.Seconds() / total.Seconds() * 100
				fmt.Printf("\r%s %02d:%02d  ", progressBar(pct, 30), int(left.Minutes()), int(left.Seconds())%60)
			}
		}
	},
}

func init() {
	timerCmd.Flags().IntVarP(&timerMinutes, "minutes", "m", 60, "timer duration in minutes")
	timerCmd.Flags().BoolVar(&timerWalk, "walk", false, "15-minute walk timer instead of upright")
	rootCmd.AddCommand(timerCmd)
}
