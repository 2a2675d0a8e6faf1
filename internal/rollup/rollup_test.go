// ABOUTME: Tests for the aggregation engine.
// ABOUTME: Covers daily totals, macro splits, activity averages, and hydration progress.
package rollup

import (
	"testing"
	"time"

	"github.com/jamiekretzschmar/gastrocare/internal/models"
)

func entryOn(day time.Time, food string) *models.LogEntry {
	return models.NewLogEntry(food).WithRecordedAt(day)
}

func TestDailyTotalsOnlyCountsToday(t *testing.T) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	logs := []*models.LogEntry{
		entryOn(now, "a").WithNutrition(models.Nutrition{Calories: 150, Protein: 2, Carbs: 33, Fat: 5}),
		entryOn(now, "b").WithNutrition(models.Nutrition{Calories: 220, Protein: 9, Carbs: 33, Fat: 8}),
		entryOn(yesterday, "c").WithNutrition(models.Nutrition{Calories: 900, Protein: 40, Carbs: 80, Fat: 100}),
		entryOn(now, "d"), // no nutrition breakdown
	}

	got := DailyTotals(logs, now)
	if got.Fat != 13 {
		t.Errorf("Fat = %v, want 13", got.Fat)
	}
	if got.Calories != 370 {
		t.Errorf("Calories = %v, want 370", got.Calories)
	}
	if got.Protein != 11 {
		t.Errorf("Protein = %v, want 11", got.Protein)
	}
	if got.Carbs != 66 {
		t.Errorf("Carbs = %v, want 66", got.Carbs)
	}
}

func TestDailyTotalsEmptyInput(t *testing.T) {
	got := DailyTotals(nil, time.Now())
	if got != (Totals{}) {
		t.Errorf("expected zero totals, got %+v", got)
	}
}

func TestMacroSplitOmitsZeroCategories(t *testing.T) {
	split := MacroSplit(Totals{Protein: 20, Carbs: 0, Fat: 5})

	if len(split) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(split))
	}
	for _, m := range split {
		if m.Value == 0 {
			t.Errorf("zero-valued macro %s included in split", m.Name)
		}
		if m.Name == "Carbs" {
			t.Error("Carbs should be omitted")
		}
	}
}

func TestMacroSplitAllZero(t *testing.T) {
	if split := MacroSplit(Totals{}); len(split) != 0 {
		t.Errorf("expected empty split, got %v", split)
	}
}

func TestSeveritySeriesChronological(t *testing.T) {
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.Local)
	bs := 7.8

	// Stored newest first, like the log collection.
	logs := []*models.LogEntry{
		entryOn(base.Add(4*time.Hour), "later").WithSeverity(8),
		entryOn(base, "earlier").WithSeverity(3).WithBloodSugar(nil, &bs),
	}

	series := SeveritySeries(logs)
	if len(series) != 2 {
		t.Fatalf("expected 2 points, got %d", len(series))
	}
	if series[0].Severity != 3 || series[1].Severity != 8 {
		t.Errorf("series not chronological: %+v", series)
	}
	if series[0].Time != "08:00" {
		t.Errorf("Time = %q, want 08:00", series[0].Time)
	}
	if series[0].BloodSugarAfter != 7.8 {
		t.Errorf("BloodSugarAfter = %v, want 7.8", series[0].BloodSugarAfter)
	}
	if series[1].BloodSugarAfter != 0 {
		t.Errorf("missing blood sugar should be 0, got %v", series[1].BloodSugarAfter)
	}
}

func TestSeveritySeriesUnparseableTimestamp(t *testing.T) {
	bad := models.NewLogEntry("mystery").WithSeverity(5)
	bad.RecordedAt = "not a timestamp"

	series := SeveritySeries([]*models.LogEntry{bad})
	if len(series) != 1 {
		t.Fatalf("expected 1 point, got %d", len(series))
	}
	if series[0].Time != models.TimePlaceholder {
		t.Errorf("Time = %q, want placeholder %q", series[0].Time, models.TimePlaceholder)
	}
}

func TestActivityAveragesExactMean(t *testing.T) {
	logs := []*models.LogEntry{
		models.NewLogEntry("a").WithActivity(models.ActivityWalked).WithSeverity(4),
		models.NewLogEntry("b").WithActivity(models.ActivityWalked).WithSeverity(6),
		models.NewLogEntry("c").WithActivity(models.ActivityWalked).WithSeverity(8),
	}

	for _, avg := range ActivityAverages(logs) {
		if avg.Activity == string(models.ActivityWalked) {
			if avg.Average != 6.0 {
				t.Errorf("Walked average = %v, want 6.0", avg.Average)
			}
			if avg.Count != 3 {
				t.Errorf("Walked count = %d, want 3", avg.Count)
			}
			return
		}
	}
	t.Fatal("Walked group missing")
}

func TestActivityAveragesRounding(t *testing.T) {
	logs := []*models.LogEntry{
		models.NewLogEntry("a").WithActivity(models.ActivityLayDown).WithSeverity(5),
		models.NewLogEntry("b").WithActivity(models.ActivityLayDown).WithSeverity(6),
		models.NewLogEntry("c").WithActivity(models.ActivityLayDown).WithSeverity(6),
	}

	for _, avg := range ActivityAverages(logs) {
		if avg.Activity == string(models.ActivityLayDown) {
			if avg.Average != 5.7 {
				t.Errorf("average = %v, want 5.7", avg.Average)
			}
			return
		}
	}
	t.Fatal("Lay Down group missing")
}

func TestActivityAveragesCanonicalGroupsAlwaysPresent(t *testing.T) {
	averages := ActivityAverages(nil)

	if len(averages) != len(models.CanonicalActivities) {
		t.Fatalf("expected %d groups, got %d", len(models.CanonicalActivities), len(averages))
	}
	for i, a := range models.CanonicalActivities {
		if averages[i].Activity != string(a) {
			t.Errorf("group %d = %s, want %s", i, averages[i].Activity, a)
		}
		if averages[i].Average != 0 {
			t.Errorf("empty group %s average = %v, want 0", a, averages[i].Average)
		}
	}
}

func TestActivityAveragesDynamicGroup(t *testing.T) {
	logs := []*models.LogEntry{
		models.NewLogEntry("a").WithActivity(models.Activity("Stood on head")).WithSeverity(9),
	}

	averages := ActivityAverages(logs)
	if len(averages) != len(models.CanonicalActivities)+1 {
		t.Fatalf("expected dynamic group, got %d groups", len(averages))
	}

	last := averages[len(averages)-1]
	if last.Activity != "Stood on head" || last.Average != 9.0 {
		t.Errorf("dynamic group = %+v", last)
	}
}

func TestActivityAveragesEmptyLabelGroupsAsUnknown(t *testing.T) {
	logs := []*models.LogEntry{
		models.NewLogEntry("a").WithActivity("").WithSeverity(4),
	}

	for _, avg := range ActivityAverages(logs) {
		if avg.Activity == "Unknown" {
			if avg.Average != 4.0 {
				t.Errorf("Unknown average = %v, want 4.0", avg.Average)
			}
			return
		}
	}
	t.Fatal("Unknown group missing")
}

func TestHydrationTotalWithUndo(t *testing.T) {
	now := time.Now()
	entries := []*models.HydrationEntry{
		hydrationOn(now, 500),
		hydrationOn(now, 250),
		hydrationOn(now, -250),
		hydrationOn(now.AddDate(0, 0, -1), 1000),
	}

	if got := HydrationTotal(entries, now); got != 500 {
		t.Errorf("HydrationTotal = %v, want 500", got)
	}
}

func TestHydrationTotalCanGoNegative(t *testing.T) {
	now := time.Now()
	entries := []*models.HydrationEntry{hydrationOn(now, -250)}

	if got := HydrationTotal(entries, now); got != -250 {
		t.Errorf("HydrationTotal = %v, want -250 (no floor at zero)", got)
	}
}

func TestProgressClampedAt100(t *testing.T) {
	if got := Progress(2500, 2000); got != 100 {
		t.Errorf("Progress(2500, 2000) = %v, want 100", got)
	}
	if got := Progress(1000, 2000); got != 50 {
		t.Errorf("Progress(1000, 2000) = %v, want 50", got)
	}
}

func TestProgressZeroGoalUsesDefault(t *testing.T) {
	if got := Progress(1000, 0); got != 50 {
		t.Errorf("Progress(1000, 0) = %v, want 50 against default goal", got)
	}
}

func hydrationOn(day time.Time, ml float64) *models.HydrationEntry {
	h := models.NewHydrationEntry(ml)
	h.RecordedAt = day.Format(time.RFC3339)
	return h
}
