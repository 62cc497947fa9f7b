package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FeatureID is a unique identifier for a catalog feature
type FeatureID string

// Team identifies which team a feature or time entry belongs to
type Team string

const (
	TeamFrontend Team = "frontend"
	TeamBackend  Team = "backend"
	TeamBoth     Team = "both"
)

// KnownTeam reports whether t is one of the recognized team values
func KnownTeam(t Team) bool {
	switch t {
	case TeamFrontend, TeamBackend, TeamBoth:
		return true
	}
	return false
}

// SeedTimeChange records a prior seed-time value before it was replaced
type SeedTimeChange struct {
	PreviousValue float64   `yaml:"previousValue" json:"previousValue"`
	NewValue      float64   `yaml:"newValue" json:"newValue"`
	ChangedAt     time.Time `yaml:"changedAt" json:"changedAt"`
}

// Feature represents a canonical catalog entry with its seed estimate
type Feature struct {
	ID              FeatureID        `yaml:"id" json:"id"`
	Name            string           `yaml:"name" json:"name"`
	Team            Team             `yaml:"team" json:"team"`
	Category        string           `yaml:"category,omitempty" json:"category,omitempty"`
	SeedTimeHours   float64          `yaml:"seedTimeHours" json:"seedTimeHours"`
	Synonyms        []string         `yaml:"synonyms,omitempty" json:"synonyms,omitempty"`
	Notes           string           `yaml:"notes,omitempty" json:"notes,omitempty"`
	SeedTimeHistory []SeedTimeChange `yaml:"seedTimeHistory,omitempty" json:"seedTimeHistory,omitempty"`
}

// NewFeature creates a new feature with a generated ID
func NewFeature(name string, team Team, seedTimeHours float64) *Feature {
	return &Feature{
		ID:            FeatureID(generateID()),
		Name:          name,
		Team:          team,
		SeedTimeHours: seedTimeHours,
	}
}

// SetSeedTime applies a new seed-time value, appending the previous value
// to the history first so the history never shrinks.
func (f *Feature) SetSeedTime(hours float64) {
	f.SeedTimeHistory = append(f.SeedTimeHistory, SeedTimeChange{
		PreviousValue: f.SeedTimeHours,
		NewValue:      hours,
		ChangedAt:     time.Now(),
	})
	f.SeedTimeHours = hours
}

// Clone returns a deep copy of the feature. The catalog hands out clones so
// callers can never mutate stored records outside the catalog's lock.
func (f *Feature) Clone() *Feature {
	clone := *f
	clone.Synonyms = append([]string(nil), f.Synonyms...)
	clone.SeedTimeHistory = append([]SeedTimeChange(nil), f.SeedTimeHistory...)
	return &clone
}

// NormalizeName normalizes a feature name or synonym for comparison:
// trimmed, lowercased, internal whitespace collapsed to single spaces.
// Catalog lookup and tracked-time grouping must use the same normalization
// so entries differing only in case or spacing resolve identically.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func generateID() string {
	return uuid.New().String()[:8]
}
