// ABOUTME: Export functionality for tracker data.
// ABOUTME: Supports CSV, JSON, and YAML export formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jamiekretzschmar/gastrocare/internal/models"
	"github.com/jamiekretzschmar/gastrocare/internal/store"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for tracker data.
type ExportData struct {
	Version     string                   `json:"version" yaml:"version"`
	ExportedAt  time.Time                `json:"exported_at" yaml:"exported_at"`
	Tool        string                   `json:"tool" yaml:"tool"`
	Logs        []*models.LogEntry       `json:"logs" yaml:"logs"`
	Hydration   []*models.HydrationEntry `json:"hydration" yaml:"hydration"`
	Settings    models.HydrationSettings `json:"hydration_settings" yaml:"hydration_settings"`
	Medications []*models.Medication     `json:"medications" yaml:"medications"`
	MealPlan    []models.MealPlanItem    `json:"meal_plan" yaml:"meal_plan"`
}

// GetAllData collects everything in the store for export.
func GetAllData(s *store.Store) *ExportData {
	return &ExportData{
		Version:     "1.0",
		ExportedAt:  time.Now(),
		Tool:        "gastrocare",
		Logs:        s.Logs(),
		Hydration:   s.Hydration(),
		Settings:    s.HydrationSettings(),
		Medications: s.Medications(),
		MealPlan:    s.MealPlan(nil),
	}
}

// JSON exports all data as indented JSON.
func JSON(s *store.Store) ([]byte, error) {
	return json.MarshalIndent(GetAllData(s), "", "  ")
}

// YAML exports all data as YAML.
func YAML(s *store.Store) ([]byte, error) {
	return yaml.Marshal(GetAllData(s))
}

// Import merges a JSON backup into the store. Records whose IDs already
// exist cause an error so a backup cannot be applied twice.
func Import(s *store.Store, data []byte) error {
	var in ExportData
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("parse import: %w", err)
	}

	existing := make(map[string]bool)
	for _, e := range s.Logs() {
		existing[e.ID.String()] = true
	}
	for _, h := range s.Hydration() {
		existing[h.ID.String()] = true
	}
	for _, m := range s.Medications() {
		existing[m.ID.String()] = true
	}

	for _, e := range in.Logs {
		if existing[e.ID.String()] {
			return fmt.Errorf("duplicate log entry: %s", e.ID)
		}
	}
	for _, h := range in.Hydration {
		if existing[h.ID.String()] {
			return fmt.Errorf("duplicate hydration entry: %s", h.ID)
		}
	}
	for _, m := range in.Medications {
		if existing[m.ID.String()] {
			return fmt.Errorf("duplicate medication: %s", m.ID)
		}
	}

	// Imported entries go in oldest-last order, matching storage order.
	for i := len(in.Logs) - 1; i >= 0; i-- {
		if !s.AppendLog(in.Logs[i]) {
			return fmt.Errorf("failed to save log entries")
		}
	}
	for i := len(in.Hydration) - 1; i >= 0; i-- {
		if !s.AppendHydration(in.Hydration[i]) {
			return fmt.Errorf("failed to save hydration entries")
		}
	}
	for _, m := range in.Medications {
		if !s.AddMedication(m) {
			return fmt.Errorf("failed to save medications")
		}
	}
	if len(in.MealPlan) > 0 {
		if !s.SaveMealPlan(in.MealPlan) {
			return fmt.Errorf("failed to save meal plan")
		}
	}
	if in.Settings.DailyGoalML > 0 {
		if !s.SaveHydrationSettings(in.Settings) {
			return fmt.Errorf("failed to save hydration settings")
		}
	}
	return nil
}

// csvHeader is the column order of the log CSV.
var csvHeader = []string{
	"date", "food", "texture", "portion", "medication_taken",
	"calories", "protein", "carbs", "fat", "fiber",
	"blood_sugar_before", "blood_sugar_after",
	"symptoms", "severity", "bristol", "activity", "notes",
}

// CSV exports the log entries as a doctor-friendly spreadsheet. Fields
// containing commas or quotes are escaped per RFC 4180, so food names like
// Mac "n" Cheese survive the round trip.
func CSV(logs []*models.LogEntry) ([]byte, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for _, e := range logs {
		if err := w.Write(csvRow(e)); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return []byte(sb.String()), nil
}

func csvRow(e *models.LogEntry) []string {
	var n models.Nutrition
	if e.Nutrition != nil {
		n = *e.Nutrition
	}

	medTaken := ""
	if e.MedicationTaken != nil {
		medTaken = strconv.FormatBool(*e.MedicationTaken)
	}

	bristol := ""
	if e.Bristol != nil {
		bristol = strconv.Itoa(*e.Bristol)
	}

	return []string{
		e.DisplayTimestamp(),
		e.Food,
		string(e.Texture),
		e.Portion,
		medTaken,
		num(n.Calories),
		num(n.Protein),
		num(n.Carbs),
		num(n.Fat),
		num(n.Fiber),
		optNum(e.BloodSugarBefore),
		optNum(e.BloodSugarAfter),
		strings.Join(e.Symptoms, ", "),
		strconv.Itoa(e.Severity),
		bristol,
		string(e.Activity),
		e.Notes,
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optNum(v *float64) string {
	if v == nil {
		return ""
	}
	return num(*v)
}
