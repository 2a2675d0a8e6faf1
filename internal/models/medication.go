// ABOUTME: Medication model with a daily reminder time.
// ABOUTME: Reminder times are zero-padded 24-hour HH:MM strings.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Medication is a daily medication with an optional reminder.
type Medication struct {
	ID      uuid.UUID `json:"id" yaml:"id"`
	Name    string    `json:"name" yaml:"name"`
	Dosage  string    `json:"dosage" yaml:"dosage"`
	Time    string    `json:"time" yaml:"time"`
	Enabled bool      `json:"enabled" yaml:"enabled"`
}

// NewMedication creates an enabled medication with a generated UUID.
func NewMedication(name, dosage, timeOfDay string) *Medication {
	return &Medication{
		ID:      uuid.New(),
		Name:    name,
		Dosage:  dosage,
		Time:    timeOfDay,
		Enabled: true,
	}
}

// IsValidClockTime checks a zero-padded 24-hour HH:MM string.
func IsValidClockTime(s string) bool {
	t, err := time.Parse("15:04", s)
	return err == nil && t.Format("15:04") == s
}
