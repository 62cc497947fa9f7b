package model

import (
	"math"
	"time"
)

// EntryID is a unique identifier for a tracked-time entry
type EntryID string

// TrackedTimeEntry represents a single observation of actual effort spent
// on a feature by a team member. Entries are immutable once stored.
type TrackedTimeEntry struct {
	ID           EntryID   `yaml:"id" json:"id"`
	Team         Team      `yaml:"team" json:"team"`
	Member       string    `yaml:"member" json:"member"`
	FeatureLabel string    `yaml:"feature" json:"feature"`
	Hours        float64   `yaml:"hours" json:"hours"`
	Category     string    `yaml:"category,omitempty" json:"category,omitempty"`
	Date         time.Time `yaml:"date,omitempty" json:"date,omitempty"`
}

// NewTrackedTimeEntry creates a new entry with a generated ID
func NewTrackedTimeEntry(team Team, member, featureLabel string, hours float64) *TrackedTimeEntry {
	return &TrackedTimeEntry{
		ID:           EntryID(generateID()),
		Team:         team,
		Member:       member,
		FeatureLabel: featureLabel,
		Hours:        hours,
	}
}

// Validate checks the entry before ingestion. Rejected entries are never
// stored, so the estimation engine can assume clean input.
func (e *TrackedTimeEntry) Validate() error {
	if !KnownTeam(e.Team) {
		return &ValidationError{Field: "team", Value: string(e.Team), Reason: "must be frontend, backend or both"}
	}
	if e.Member == "" {
		return &ValidationError{Field: "member", Reason: "is required"}
	}
	if NormalizeName(e.FeatureLabel) == "" {
		return &ValidationError{Field: "feature", Value: e.FeatureLabel, Reason: "is required"}
	}
	if math.IsNaN(e.Hours) || math.IsInf(e.Hours, 0) || e.Hours <= 0 {
		return &ValidationError{Field: "hours", Value: formatFloat(e.Hours), Reason: "must be a positive finite number"}
	}
	return nil
}
