// ABOUTME: Tests for hydration entry and settings models.
// ABOUTME: Validates undo entries, goal defaulting, and day matching.
package models

import (
	"testing"
	"time"
)

func TestNewHydrationEntry(t *testing.T) {
	h := NewHydrationEntry(250)

	if h.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if h.AmountML != 250 {
		t.Errorf("AmountML = %f, want 250", h.AmountML)
	}
	if !h.OnDay(time.Now()) {
		t.Error("expected new entry to be on today")
	}
}

func TestHydrationEntryAllowsNegativeAmount(t *testing.T) {
	h := NewHydrationEntry(-250)
	if h.AmountML != -250 {
		t.Errorf("AmountML = %f, want -250", h.AmountML)
	}
}

func TestHydrationSettingsGoalDefault(t *testing.T) {
	tests := []struct {
		stored int
		want   int
	}{
		{0, DefaultDailyGoalML},
		{-100, DefaultDailyGoalML},
		{1500, 1500},
	}

	for _, tt := range tests {
		s := HydrationSettings{DailyGoalML: tt.stored}
		if got := s.Goal(); got != tt.want {
			t.Errorf("Goal() with stored %d = %d, want %d", tt.stored, got, tt.want)
		}
	}
}

func TestDefaultHydrationSettings(t *testing.T) {
	s := DefaultHydrationSettings()

	if s.DailyGoalML != DefaultDailyGoalML {
		t.Errorf("DailyGoalML = %d, want %d", s.DailyGoalML, DefaultDailyGoalML)
	}
	if s.Enabled {
		t.Error("reminders should default to disabled")
	}
	if s.ReminderTimes == nil {
		t.Error("ReminderTimes should be an empty slice, not nil")
	}
}
