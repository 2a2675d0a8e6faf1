// ABOUTME: Typed collection accessors over the key/value store.
// ABOUTME: Mutations rewrite the whole JSON array and persist immediately.
package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jamiekretzschmar/gastrocare/internal/models"
)

// findIndex locates the unique record whose UUID matches idOrPrefix.
// Returns an error when no record or more than one record matches.
func findIndex(ids []uuid.UUID, idOrPrefix string) (int, error) {
	// An empty string is a prefix of every ID; require real input.
	if idOrPrefix == "" {
		return -1, fmt.Errorf("an id or id prefix is required")
	}
	found := -1
	for i, id := range ids {
		if strings.HasPrefix(id.String(), idOrPrefix) {
			if found >= 0 {
				return -1, fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
			}
			found = i
		}
	}
	if found < 0 {
		return -1, fmt.Errorf("not found: %s", idOrPrefix)
	}
	return found, nil
}

// Logs returns all meal/symptom entries, newest first.
func (s *Store) Logs() []*models.LogEntry {
	return Get(s, KeyLogs, []*models.LogEntry{})
}

// AppendLog prepends a new entry and persists the collection.
func (s *Store) AppendLog(e *models.LogEntry) bool {
	logs := append([]*models.LogEntry{e}, s.Logs()...)
	return Set(s, KeyLogs, logs)
}

// DeleteLog removes the entry matching idOrPrefix and returns it.
func (s *Store) DeleteLog(idOrPrefix string) (*models.LogEntry, error) {
	logs := s.Logs()
	ids := make([]uuid.UUID, len(logs))
	for i, l := range logs {
		ids[i] = l.ID
	}

	i, err := findIndex(ids, idOrPrefix)
	if err != nil {
		return nil, err
	}

	deleted := logs[i]
	Set(s, KeyLogs, append(logs[:i], logs[i+1:]...))
	return deleted, nil
}

// Hydration returns all hydration entries, newest first.
func (s *Store) Hydration() []*models.HydrationEntry {
	return Get(s, KeyHydration, []*models.HydrationEntry{})
}

// AppendHydration prepends a hydration entry and persists the collection.
func (s *Store) AppendHydration(h *models.HydrationEntry) bool {
	entries := append([]*models.HydrationEntry{h}, s.Hydration()...)
	return Set(s, KeyHydration, entries)
}

// HydrationSettings returns the singleton settings, defaulting when unset.
func (s *Store) HydrationSettings() models.HydrationSettings {
	return Get(s, KeyHydrationSettings, models.DefaultHydrationSettings())
}

// SaveHydrationSettings persists the singleton settings.
func (s *Store) SaveHydrationSettings(settings models.HydrationSettings) bool {
	return Set(s, KeyHydrationSettings, settings)
}

// Medications returns all medications sorted by reminder time.
func (s *Store) Medications() []*models.Medication {
	meds := Get(s, KeyMedications, []*models.Medication{})
	sort.Slice(meds, func(i, j int) bool {
		return meds[i].Time < meds[j].Time
	})
	return meds
}

// AddMedication appends a medication and persists the collection.
func (s *Store) AddMedication(m *models.Medication) bool {
	return Set(s, KeyMedications, append(s.Medications(), m))
}

// ToggleMedication flips the enabled flag of the matching medication.
func (s *Store) ToggleMedication(idOrPrefix string) (*models.Medication, error) {
	meds := s.Medications()
	ids := make([]uuid.UUID, len(meds))
	for i, m := range meds {
		ids[i] = m.ID
	}

	i, err := findIndex(ids, idOrPrefix)
	if err != nil {
		return nil, err
	}

	meds[i].Enabled = !meds[i].Enabled
	Set(s, KeyMedications, meds)
	return meds[i], nil
}

// DeleteMedication removes exactly the matching medication, leaving all
// others (including their enabled state) untouched.
func (s *Store) DeleteMedication(idOrPrefix string) (*models.Medication, error) {
	meds := s.Medications()
	ids := make([]uuid.UUID, len(meds))
	for i, m := range meds {
		ids[i] = m.ID
	}

	i, err := findIndex(ids, idOrPrefix)
	if err != nil {
		return nil, err
	}

	deleted := meds[i]
	Set(s, KeyMedications, append(meds[:i], meds[i+1:]...))
	return deleted, nil
}

// MealPlan returns the persisted plan, or the given defaults when nothing
// has been customized yet.
func (s *Store) MealPlan(defaults []models.MealPlanItem) []models.MealPlanItem {
	return Get(s, KeyMealPlan, defaults)
}

// SaveMealPlan replaces the persisted plan wholesale.
func (s *Store) SaveMealPlan(plan []models.MealPlanItem) bool {
	return Set(s, KeyMealPlan, plan)
}

// AddMealPlanItem appends a custom plan item and persists the full plan
// (defaults included) sorted by time of day.
func (s *Store) AddMealPlanItem(item models.MealPlanItem, defaults []models.MealPlanItem) bool {
	plan := append(s.MealPlan(defaults), item)
	sort.SliceStable(plan, func(i, j int) bool {
		return plan[i].Time < plan[j].Time
	})
	return Set(s, KeyMealPlan, plan)
}
