// ABOUTME: LogEntry model with texture, symptom, and activity classifications.
// ABOUTME: Timestamps stay RFC3339 strings so legacy values degrade to a placeholder.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Texture classifies food consistency, ordered from safest to riskiest.
type Texture string

const (
	TextureLiquid    Texture = "Liquid"
	TexturePureed    Texture = "Pureed"
	TextureSoftSolid Texture = "Soft Solid"
	TextureSolid     Texture = "Solid"
)

// AllTextures lists textures in safety order (safest first).
var AllTextures = []Texture{TextureLiquid, TexturePureed, TextureSoftSolid, TextureSolid}

// RiskRank returns the position of the texture in the safety ordering.
// Liquid is 0 (safest), Solid is 3. Unknown textures return -1.
func (t Texture) RiskRank() int {
	for i, known := range AllTextures {
		if t == known {
			return i
		}
	}
	return -1
}

// IsValidTexture checks if a string is a known texture.
func IsValidTexture(s string) bool {
	return Texture(s).RiskRank() >= 0
}

// Activity classifies what the patient did after eating.
type Activity string

const (
	ActivitySatUpright Activity = "Sat Upright"
	ActivityWalked     Activity = "Walked"
	ActivityLayDown    Activity = "Lay Down"
)

// CanonicalActivities are the three predefined post-meal activities.
// Aggregation also tolerates labels outside this set.
var CanonicalActivities = []Activity{ActivitySatUpright, ActivityWalked, ActivityLayDown}

// SymptomOptions are the suggested symptom tags for logging.
var SymptomOptions = []string{
	"Nausea", "Vomiting", "Bloating", "Abdominal Pain", "Fullness", "Acid Reflux", "Regurgitation",
}

// Nutrition is an optional per-entry macro breakdown. All values are grams
// except Calories (kcal); missing breakdowns contribute zero to totals.
type Nutrition struct {
	Calories float64 `json:"calories" yaml:"calories"`
	Protein  float64 `json:"protein" yaml:"protein"`
	Carbs    float64 `json:"carbs" yaml:"carbs"`
	Fat      float64 `json:"fat" yaml:"fat"`
	Fiber    float64 `json:"fiber" yaml:"fiber"`
}

// TimePlaceholder is rendered wherever a stored timestamp fails to parse.
const TimePlaceholder = "?"

// timeFormats are accepted when parsing stored timestamps.
var timeFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseRecordedAt parses a stored timestamp string. The second return is
// false when the value is unparseable; callers render TimePlaceholder
// instead of failing.
func ParseRecordedAt(s string) (time.Time, bool) {
	for _, f := range timeFormats {
		if t, err := time.Parse(f, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SameLocalDay reports whether two instants fall on the same calendar day
// in the local time zone.
func SameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// LogEntry is a single meal/symptom record. Entries are immutable once
// created except for deletion.
type LogEntry struct {
	ID               uuid.UUID  `json:"id" yaml:"id"`
	RecordedAt       string     `json:"recordedAt" yaml:"recorded_at"`
	Food             string     `json:"food" yaml:"food"`
	Portion          string     `json:"portion,omitempty" yaml:"portion,omitempty"`
	Texture          Texture    `json:"texture,omitempty" yaml:"texture,omitempty"`
	BloodSugarBefore *float64   `json:"bloodSugarBefore,omitempty" yaml:"blood_sugar_before,omitempty"`
	BloodSugarAfter  *float64   `json:"bloodSugarAfter,omitempty" yaml:"blood_sugar_after,omitempty"`
	Symptoms         []string   `json:"symptoms" yaml:"symptoms"`
	Severity         int        `json:"severity" yaml:"severity"`
	Activity         Activity   `json:"activity" yaml:"activity"`
	Nutrition        *Nutrition `json:"nutrition,omitempty" yaml:"nutrition,omitempty"`
	MedicationTaken  *bool      `json:"medicationTaken,omitempty" yaml:"medication_taken,omitempty"`
	Bristol          *int       `json:"stoolBristol,omitempty" yaml:"stool_bristol,omitempty"`
	Notes            string     `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewLogEntry creates an entry with a generated UUID and current timestamp.
func NewLogEntry(food string) *LogEntry {
	return &LogEntry{
		ID:         uuid.New(),
		RecordedAt: time.Now().Format(time.RFC3339),
		Food:       food,
		Severity:   1,
		Activity:   ActivitySatUpright,
		Symptoms:   []string{},
	}
}

// WithRecordedAt sets a custom recorded-at timestamp.
func (e *LogEntry) WithRecordedAt(t time.Time) *LogEntry {
	e.RecordedAt = t.Format(time.RFC3339)
	return e
}

// WithTexture sets the texture classification.
func (e *LogEntry) WithTexture(t Texture) *LogEntry {
	e.Texture = t
	return e
}

// WithPortion sets the free-text portion descriptor.
func (e *LogEntry) WithPortion(p string) *LogEntry {
	e.Portion = p
	return e
}

// WithSeverity sets the symptom severity, clamped to 1..10.
func (e *LogEntry) WithSeverity(s int) *LogEntry {
	if s < 1 {
		s = 1
	}
	if s > 10 {
		s = 10
	}
	e.Severity = s
	return e
}

// WithSymptoms sets the symptom tags, dropping duplicates.
func (e *LogEntry) WithSymptoms(symptoms ...string) *LogEntry {
	seen := make(map[string]bool, len(symptoms))
	deduped := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		deduped = append(deduped, s)
	}
	e.Symptoms = deduped
	return e
}

// WithActivity sets the post-meal activity.
func (e *LogEntry) WithActivity(a Activity) *LogEntry {
	e.Activity = a
	return e
}

// WithNutrition attaches a macro breakdown.
func (e *LogEntry) WithNutrition(n Nutrition) *LogEntry {
	e.Nutrition = &n
	return e
}

// WithBloodSugar sets the before/after readings. Nil means not recorded.
func (e *LogEntry) WithBloodSugar(before, after *float64) *LogEntry {
	e.BloodSugarBefore = before
	e.BloodSugarAfter = after
	return e
}

// WithBristol sets the stool score. Values outside 1..7 are ignored.
func (e *LogEntry) WithBristol(score int) *LogEntry {
	if score >= 1 && score <= 7 {
		e.Bristol = &score
	}
	return e
}

// WithMedicationTaken flags whether medication was taken with the meal.
func (e *LogEntry) WithMedicationTaken(taken bool) *LogEntry {
	e.MedicationTaken = &taken
	return e
}

// WithNotes sets free-text notes.
func (e *LogEntry) WithNotes(notes string) *LogEntry {
	e.Notes = notes
	return e
}

// Time parses the stored timestamp. ok is false for unparseable values.
func (e *LogEntry) Time() (t time.Time, ok bool) {
	return ParseRecordedAt(e.RecordedAt)
}

// DisplayTime renders the entry's clock time, or the placeholder when the
// stored timestamp is unparseable.
func (e *LogEntry) DisplayTime() string {
	t, ok := e.Time()
	if !ok {
		return TimePlaceholder
	}
	return t.Local().Format("15:04")
}

// DisplayTimestamp renders the full local date and time, or the
// placeholder when the stored timestamp is unparseable.
func (e *LogEntry) DisplayTimestamp() string {
	t, ok := e.Time()
	if !ok {
		return TimePlaceholder
	}
	return t.Local().Format("2006-01-02 15:04")
}

// OnDay reports whether the entry was recorded on the given local calendar
// day. Unparseable timestamps are on no day.
func (e *LogEntry) OnDay(day time.Time) bool {
	t, ok := e.Time()
	if !ok {
		return false
	}
	return SameLocalDay(t, day)
}
