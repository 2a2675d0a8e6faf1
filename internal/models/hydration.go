// ABOUTME: HydrationEntry and HydrationSettings models.
// ABOUTME: Negative entry volumes represent undo of a prior addition.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultDailyGoalML is used when no goal is configured or the stored goal
// is non-positive.
const DefaultDailyGoalML = 2000

// HydrationEntry is a single fluid intake record. AmountML may be negative
// to undo a prior addition; the running total has no floor at zero.
type HydrationEntry struct {
	ID         uuid.UUID `json:"id" yaml:"id"`
	RecordedAt string    `json:"recordedAt" yaml:"recorded_at"`
	AmountML   float64   `json:"amountMl" yaml:"amount_ml"`
}

// NewHydrationEntry creates an entry with a generated UUID and current timestamp.
func NewHydrationEntry(amountML float64) *HydrationEntry {
	return &HydrationEntry{
		ID:         uuid.New(),
		RecordedAt: time.Now().Format(time.RFC3339),
		AmountML:   amountML,
	}
}

// Time parses the stored timestamp. ok is false for unparseable values.
func (h *HydrationEntry) Time() (t time.Time, ok bool) {
	return ParseRecordedAt(h.RecordedAt)
}

// OnDay reports whether the entry was recorded on the given local calendar day.
func (h *HydrationEntry) OnDay(day time.Time) bool {
	t, ok := h.Time()
	if !ok {
		return false
	}
	return SameLocalDay(t, day)
}

// HydrationSettings is the singleton reminder configuration.
type HydrationSettings struct {
	DailyGoalML             int      `json:"dailyGoalMl" yaml:"daily_goal_ml"`
	ReminderIntervalMinutes int      `json:"reminderIntervalMinutes" yaml:"reminder_interval_minutes"`
	ReminderTimes           []string `json:"reminderTimes" yaml:"reminder_times"`
	Enabled                 bool     `json:"enabled" yaml:"enabled"`
}

// DefaultHydrationSettings returns the settings used before the user
// configures anything.
func DefaultHydrationSettings() HydrationSettings {
	return HydrationSettings{
		DailyGoalML:             DefaultDailyGoalML,
		ReminderIntervalMinutes: 60,
		ReminderTimes:           []string{},
		Enabled:                 false,
	}
}

// Goal returns the daily goal, substituting the default for non-positive
// stored values.
func (s HydrationSettings) Goal() int {
	if s.DailyGoalML <= 0 {
		return DefaultDailyGoalML
	}
	return s.DailyGoalML
}
