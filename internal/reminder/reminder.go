// ABOUTME: Background reminder checker for hydration and medications.
// ABOUTME: Fires fixed-time and interval reminders on a one-minute cadence.
package reminder

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jamiekretzschmar/gastrocare/internal/models"
)

// Checker watches the clock and fires hydration and medication reminders.
// All reminder times are zero-padded 24-hour HH:MM strings; the checker
// compares them against the current wall-clock minute, so a reminder fires
// at most once per minute per schedule entry.
type Checker struct {
	mu       sync.Mutex
	settings models.HydrationSettings
	meds     []*models.Medication
	notifier Notifier

	// lastInterval anchors the rolling interval reminder.
	lastInterval time.Time

	// fired records the minute each schedule entry last fired, keyed by
	// "water:<HH:MM>" or "med:<id>", to suppress duplicate ticks.
	fired map[string]string
}

// NewChecker builds a checker with the given notifier and initial schedule.
func NewChecker(n Notifier, settings models.HydrationSettings, meds []*models.Medication) *Checker {
	return &Checker{
		settings:     settings,
		meds:         meds,
		notifier:     n,
		lastInterval: time.Now(),
		fired:        make(map[string]string),
	}
}

// Reconfigure replaces the hydration settings. The interval anchor resets
// so a shortened interval does not fire immediately.
func (c *Checker) Reconfigure(settings models.HydrationSettings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings = settings
	c.lastInterval = time.Now()
}

// SetMedications replaces the medication schedule and drops dedup stamps
// for medications no longer on it, so the fired map stays bounded.
func (c *Checker) SetMedications(meds []*models.Medication) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.meds = meds

	keep := make(map[string]bool, len(meds))
	for _, m := range meds {
		keep["med:"+m.ID.String()] = true
	}
	for key := range c.fired {
		if strings.HasPrefix(key, "med:") && !keep[key] {
			delete(c.fired, key)
		}
	}
}

// Run blocks, checking for due reminders once a minute until ctx is done.
func (c *Checker) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	c.check(time.Now())
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			c.check(now)
		}
	}
}

// check fires every reminder due at the given instant. Notification
// failures are swallowed; a missed desktop popup must not stop the loop.
func (c *Checker) check(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	hhmm := now.Format("15:04")
	stamp := now.Format("2006-01-02 15:04")

	if c.settings.Enabled {
		for _, at := range c.settings.ReminderTimes {
			key := "water:" + at
			if at != hhmm || c.fired[key] == stamp {
				continue
			}
			c.fired[key] = stamp
			_ = c.notifier.Notify("Hydration Reminder", "Time to drink some water. Sip slowly.")
		}

		if interval := c.settings.ReminderIntervalMinutes; interval > 0 {
			if now.Sub(c.lastInterval) >= time.Duration(interval)*time.Minute {
				c.lastInterval = now
				_ = c.notifier.Notify("Hydration Reminder",
					fmt.Sprintf("It has been %d minutes since your last reminder. Keep sipping.", interval))
			}
		}
	}

	for _, m := range c.meds {
		if !m.Enabled || m.Time != hhmm {
			continue
		}
		key := "med:" + m.ID.String()
		if c.fired[key] == stamp {
			continue
		}
		c.fired[key] = stamp
		_ = c.notifier.Notify("Medication Reminder", fmt.Sprintf("%s (%s)", m.Name, m.Dosage))
	}
}
