// ABOUTME: Notification backends for the reminder checker.
// ABOUTME: Prefers desktop notifications, falls back to the terminal.
package reminder

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/fatih/color"
)

// Notifier delivers a reminder to the user. Delivery is best effort.
type Notifier interface {
	Notify(title, body string) error
}

// DesktopNotifier sends reminders via the notify-send utility.
type DesktopNotifier struct{}

// Notify shells out to notify-send.
func (DesktopNotifier) Notify(title, body string) error {
	cmd := exec.Command("notify-send", "--app-name=gastrocare", title, body)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("notify-send: %w", err)
	}
	return nil
}

// TerminalNotifier prints reminders to a writer, typically stdout.
type TerminalNotifier struct {
	Out io.Writer
}

// Notify writes a highlighted reminder line.
func (t TerminalNotifier) Notify(title, body string) error {
	c := color.New(color.FgCyan, color.Bold)
	if _, err := c.Fprintf(t.Out, "\n🔔 %s\n", title); err != nil {
		return err
	}
	_, err := fmt.Fprintf(t.Out, "   %s\n", body)
	return err
}

// DesktopAvailable reports whether notify-send is on the PATH.
func DesktopAvailable() bool {
	_, err := exec.LookPath("notify-send")
	return err == nil
}
