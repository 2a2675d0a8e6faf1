// ABOUTME: Pure aggregation over log and hydration entries.
// ABOUTME: Derives daily totals, macro splits, severity series, and activity averages.
package rollup

import (
	"math"
	"sort"
	"time"

	"github.com/jamiekretzschmar/gastrocare/internal/models"
)

// Totals is the summed nutrient intake for one calendar day.
type Totals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// DailyTotals sums nutrition across entries recorded on the given local
// calendar day. Entries without a nutrition breakdown contribute zero.
func DailyTotals(logs []*models.LogEntry, day time.Time) Totals {
	var t Totals
	for _, e := range logs {
		if !e.OnDay(day) || e.Nutrition == nil {
			continue
		}
		t.Calories += e.Nutrition.Calories
		t.Protein += e.Nutrition.Protein
		t.Carbs += e.Nutrition.Carbs
		t.Fat += e.Nutrition.Fat
	}
	return t
}

// MacroSlice is one non-zero segment of the macro split.
type MacroSlice struct {
	Name  string
	Value float64
}

// MacroSplit returns the macro categories with non-zero totals, in
// protein/carbs/fat order. Zero-valued macros are omitted so proportional
// views never render degenerate segments.
func MacroSplit(t Totals) []MacroSlice {
	all := []MacroSlice{
		{Name: "Protein", Value: t.Protein},
		{Name: "Carbs", Value: t.Carbs},
		{Name: "Fat", Value: t.Fat},
	}
	split := make([]MacroSlice, 0, len(all))
	for _, m := range all {
		if m.Value != 0 {
			split = append(split, m)
		}
	}
	return split
}

// SeverityPoint is one chart point in the severity time series.
type SeverityPoint struct {
	Time            string
	Severity        int
	BloodSugarAfter float64
	Activity        models.Activity
}

// SeveritySeries projects entries into chronological (oldest first) chart
// points. Entries with unparseable timestamps keep their relative order at
// the front and display the placeholder instead of failing.
func SeveritySeries(logs []*models.LogEntry) []SeverityPoint {
	ordered := make([]*models.LogEntry, len(logs))
	copy(ordered, logs)
	sort.SliceStable(ordered, func(i, j int) bool {
		ti, _ := ordered[i].Time()
		tj, _ := ordered[j].Time()
		return ti.Before(tj)
	})

	points := make([]SeverityPoint, 0, len(ordered))
	for _, e := range ordered {
		p := SeverityPoint{
			Time:     e.DisplayTime(),
			Severity: e.Severity,
			Activity: e.Activity,
		}
		if e.BloodSugarAfter != nil {
			p.BloodSugarAfter = *e.BloodSugarAfter
		}
		points = append(points, p)
	}
	return points
}

// ActivityAverage is the mean severity for one post-meal activity group.
type ActivityAverage struct {
	Activity string
	Average  float64
	Count    int
}

// unknownActivity groups entries whose activity label is empty.
const unknownActivity = "Unknown"

// ActivityAverages groups all entries by activity label and computes the
// mean severity per group, rounded to one decimal. The three canonical
// activities are always reported (average 0 when empty); labels outside the
// canonical set form their own groups rather than being discarded.
func ActivityAverages(logs []*models.LogEntry) []ActivityAverage {
	type bucket struct {
		total int
		count int
	}
	buckets := make(map[string]*bucket)
	for _, a := range models.CanonicalActivities {
		buckets[string(a)] = &bucket{}
	}

	var extras []string
	for _, e := range logs {
		label := string(e.Activity)
		if label == "" {
			label = unknownActivity
		}
		b, ok := buckets[label]
		if !ok {
			b = &bucket{}
			buckets[label] = b
			extras = append(extras, label)
		}
		b.total += e.Severity
		b.count++
	}

	sort.Strings(extras)
	order := make([]string, 0, len(buckets))
	for _, a := range models.CanonicalActivities {
		order = append(order, string(a))
	}
	order = append(order, extras...)

	averages := make([]ActivityAverage, 0, len(order))
	for _, label := range order {
		b := buckets[label]
		avg := 0.0
		if b.count > 0 {
			avg = math.Round(float64(b.total)/float64(b.count)*10) / 10
		}
		averages = append(averages, ActivityAverage{Activity: label, Average: avg, Count: b.count})
	}
	return averages
}

// HydrationTotal sums hydration volumes for the given local calendar day.
// Negative entries reduce the total; there is no floor at zero.
func HydrationTotal(entries []*models.HydrationEntry, day time.Time) float64 {
	var total float64
	for _, e := range entries {
		if e.OnDay(day) {
			total += e.AmountML
		}
	}
	return total
}

// Progress expresses intake against the daily goal as a percentage,
// clamped at 100. A non-positive goal falls back to the default.
func Progress(totalML float64, goalML int) float64 {
	if goalML <= 0 {
		goalML = models.DefaultDailyGoalML
	}
	return math.Min(totalML/float64(goalML)*100, 100)
}
