// ABOUTME: Tests for the reminder checker.
// ABOUTME: Drives the minute check directly with crafted clock values.
package reminder

import (
	"strings"
	"testing"
	"time"

	"github.com/jamiekretzschmar/gastrocare/internal/models"
)

type fakeNotifier struct {
	calls []string
}

func (f *fakeNotifier) Notify(title, body string) error {
	f.calls = append(f.calls, title+": "+body)
	return nil
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 15, hour, minute, 0, 0, time.Local)
}

func TestFixedTimeHydrationReminder(t *testing.T) {
	n := &fakeNotifier{}
	c := NewChecker(n, models.HydrationSettings{
		Enabled:       true,
		ReminderTimes: []string{"09:05", "14:30"},
	}, nil)

	c.check(at(9, 4))
	if len(n.calls) != 0 {
		t.Fatalf("fired early: %v", n.calls)
	}

	c.check(at(9, 5))
	if len(n.calls) != 1 || !strings.Contains(n.calls[0], "Hydration") {
		t.Fatalf("expected one hydration reminder, got %v", n.calls)
	}

	// Same minute again must not double fire.
	c.check(at(9, 5))
	if len(n.calls) != 1 {
		t.Errorf("duplicate fire within the same minute: %v", n.calls)
	}
}

func TestFixedTimeRequiresZeroPaddedMatch(t *testing.T) {
	n := &fakeNotifier{}
	c := NewChecker(n, models.HydrationSettings{
		Enabled:       true,
		ReminderTimes: []string{"08:00"},
	}, nil)

	c.check(at(8, 0))
	if len(n.calls) != 1 {
		t.Errorf("08:00 reminder did not fire at 8am: %v", n.calls)
	}
}

func TestDisabledSettingsSuppressHydration(t *testing.T) {
	n := &fakeNotifier{}
	c := NewChecker(n, models.HydrationSettings{
		Enabled:                 false,
		ReminderTimes:           []string{"09:00"},
		ReminderIntervalMinutes: 1,
	}, nil)

	c.lastInterval = at(8, 0)
	c.check(at(9, 0))
	if len(n.calls) != 0 {
		t.Errorf("disabled reminders fired: %v", n.calls)
	}
}

func TestIntervalReminder(t *testing.T) {
	n := &fakeNotifier{}
	c := NewChecker(n, models.HydrationSettings{
		Enabled:                 true,
		ReminderIntervalMinutes: 60,
	}, nil)

	c.lastInterval = at(9, 0)

	c.check(at(9, 30))
	if len(n.calls) != 0 {
		t.Fatalf("interval fired early: %v", n.calls)
	}

	c.check(at(10, 0))
	if len(n.calls) != 1 {
		t.Fatalf("interval did not fire at the hour mark: %v", n.calls)
	}

	// Anchor moves forward after firing.
	c.check(at(10, 1))
	if len(n.calls) != 1 {
		t.Errorf("interval re-fired immediately: %v", n.calls)
	}
}

func TestReconfigureResetsIntervalAnchor(t *testing.T) {
	n := &fakeNotifier{}
	c := NewChecker(n, models.HydrationSettings{Enabled: true, ReminderIntervalMinutes: 120}, nil)
	c.lastInterval = at(8, 0)

	c.Reconfigure(models.HydrationSettings{Enabled: true, ReminderIntervalMinutes: 30})

	// Anchor was reset to now, so a check far in the past does not fire.
	c.check(at(8, 31))
	if len(n.calls) != 0 {
		t.Errorf("shortened interval fired immediately after reconfigure: %v", n.calls)
	}
}

func TestMedicationReminder(t *testing.T) {
	n := &fakeNotifier{}
	dom := models.NewMedication("Domperidone", "10mg", "08:00")
	tac := models.NewMedication("Tacrolimus", "2mg", "08:00")
	tac.Enabled = false

	c := NewChecker(n, models.HydrationSettings{}, []*models.Medication{dom, tac})

	c.check(at(8, 0))
	if len(n.calls) != 1 {
		t.Fatalf("expected one medication reminder, got %v", n.calls)
	}
	if !strings.Contains(n.calls[0], "Domperidone (10mg)") {
		t.Errorf("wrong reminder content: %s", n.calls[0])
	}

	c.check(at(8, 0))
	if len(n.calls) != 1 {
		t.Errorf("duplicate medication fire: %v", n.calls)
	}
}

func TestSetMedicationsReplacesSchedule(t *testing.T) {
	n := &fakeNotifier{}
	c := NewChecker(n, models.HydrationSettings{}, []*models.Medication{
		models.NewMedication("Old", "1mg", "09:00"),
	})

	c.SetMedications([]*models.Medication{models.NewMedication("New", "5mg", "09:00")})

	c.check(at(9, 0))
	if len(n.calls) != 1 || !strings.Contains(n.calls[0], "New") {
		t.Errorf("expected replacement schedule to fire: %v", n.calls)
	}
}

func TestSetMedicationsPrunesFiredStamps(t *testing.T) {
	n := &fakeNotifier{}
	old := models.NewMedication("Old", "1mg", "09:00")
	kept := models.NewMedication("Kept", "5mg", "09:00")
	c := NewChecker(n, models.HydrationSettings{
		Enabled:       true,
		ReminderTimes: []string{"09:00"},
	}, []*models.Medication{old, kept})

	c.check(at(9, 0))
	if len(n.calls) != 3 {
		t.Fatalf("expected both medications and hydration to fire, got %v", n.calls)
	}

	c.SetMedications([]*models.Medication{kept})

	if _, ok := c.fired["med:"+old.ID.String()]; ok {
		t.Error("stamp for removed medication was not pruned")
	}
	if _, ok := c.fired["med:"+kept.ID.String()]; !ok {
		t.Error("stamp for kept medication was dropped")
	}
	if _, ok := c.fired["water:09:00"]; !ok {
		t.Error("hydration stamp should survive a medication change")
	}
}

func TestTerminalNotifierWrites(t *testing.T) {
	var sb strings.Builder
	n := TerminalNotifier{Out: &sb}

	if err := n.Notify("Hydration Reminder", "drink up"); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	if !strings.Contains(sb.String(), "Hydration Reminder") || !strings.Contains(sb.String(), "drink up") {
		t.Errorf("unexpected output: %q", sb.String())
	}
}
