package model

import (
	"sync"
)

// EstimationStyle selects which central-tendency statistic becomes the
// estimated hours for features with tracked data
type EstimationStyle string

const (
	StyleMean   EstimationStyle = "mean"
	StyleMedian EstimationStyle = "median"
	StyleP80    EstimationStyle = "p80"
)

// ExperienceLevel identifies a project-wide experience multiplier
type ExperienceLevel string

const (
	LevelJunior ExperienceLevel = "junior"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
)

// ExperienceMultipliers holds the per-level hour multipliers
type ExperienceMultipliers struct {
	Junior float64 `yaml:"junior" json:"junior"`
	Mid    float64 `yaml:"mid" json:"mid"`
	Senior float64 `yaml:"senior" json:"senior"`
}

// For returns the multiplier for the given level, or 1 for an empty level
func (m ExperienceMultipliers) For(level ExperienceLevel) float64 {
	switch level {
	case LevelJunior:
		return m.Junior
	case LevelMid:
		return m.Mid
	case LevelSenior:
		return m.Senior
	}
	return 1
}

// DefaultOutlierThresholdMultiplier flags values above 3x the feature median
const DefaultOutlierThresholdMultiplier = 3.0

// DefaultTargetPercentile is the percentile used for the p80 style
const DefaultTargetPercentile = 80.0

// DefaultMinTrackedPoints is the minimum sample size required before a
// tracked feature can be classified with HIGH confidence
const DefaultMinTrackedPoints = 5

// EstimationConfig holds the settings that shape every estimate computation
type EstimationConfig struct {
	Style                      EstimationStyle       `yaml:"style" json:"style"`
	WorkingHoursPerDay         float64               `yaml:"workingHoursPerDay" json:"workingHoursPerDay"`
	Multipliers                ExperienceMultipliers `yaml:"experienceMultipliers" json:"experienceMultipliers"`
	BufferPercentage           float64               `yaml:"bufferPercentage" json:"bufferPercentage"`
	OutlierThresholdMultiplier float64               `yaml:"outlierThresholdMultiplier" json:"outlierThresholdMultiplier"`
	TargetPercentile           float64               `yaml:"targetPercentile" json:"targetPercentile"`
	MinTrackedPoints           int                   `yaml:"minTrackedPoints" json:"minTrackedPoints"`
	OverlapKeywords            []string              `yaml:"overlapKeywords,omitempty" json:"overlapKeywords,omitempty"`
}

// DefaultOverlapKeywords is the default vocabulary for overlap detection.
// The matching is heuristic; the vocabulary is data, not logic, and can be
// replaced through configuration.
var DefaultOverlapKeywords = []string{
	"auth", "login", "signup", "user", "profile", "payment", "checkout",
	"search", "notification", "report", "export", "import", "admin",
}

// DefaultEstimationConfig returns the default configuration
func DefaultEstimationConfig() EstimationConfig {
	return EstimationConfig{
		Style:              StyleMedian,
		WorkingHoursPerDay: 8,
		Multipliers: ExperienceMultipliers{
			Junior: 1.5,
			Mid:    1.0,
			Senior: 0.8,
		},
		BufferPercentage:           0,
		OutlierThresholdMultiplier: DefaultOutlierThresholdMultiplier,
		TargetPercentile:           DefaultTargetPercentile,
		MinTrackedPoints:           DefaultMinTrackedPoints,
		OverlapKeywords:            append([]string(nil), DefaultOverlapKeywords...),
	}
}

// Validate checks that the configuration holds usable values
func (c EstimationConfig) Validate() error {
	switch c.Style {
	case StyleMean, StyleMedian, StyleP80:
	default:
		return &ValidationError{Field: "style", Value: string(c.Style), Reason: "must be mean, median or p80"}
	}
	if c.WorkingHoursPerDay <= 0 || c.WorkingHoursPerDay > 24 {
		return &ValidationError{Field: "workingHoursPerDay", Value: formatFloat(c.WorkingHoursPerDay), Reason: "must be between 0 and 24"}
	}
	if c.Multipliers.Junior <= 0 || c.Multipliers.Mid <= 0 || c.Multipliers.Senior <= 0 {
		return &ValidationError{Field: "experienceMultipliers", Reason: "must all be positive"}
	}
	if c.BufferPercentage < 0 {
		return &ValidationError{Field: "bufferPercentage", Value: formatFloat(c.BufferPercentage), Reason: "must be >= 0"}
	}
	if c.OutlierThresholdMultiplier <= 0 {
		return &ValidationError{Field: "outlierThresholdMultiplier", Value: formatFloat(c.OutlierThresholdMultiplier), Reason: "must be positive"}
	}
	if c.TargetPercentile < 0 || c.TargetPercentile > 100 {
		return &ValidationError{Field: "targetPercentile", Value: formatFloat(c.TargetPercentile), Reason: "must be between 0 and 100"}
	}
	if c.MinTrackedPoints < 2 {
		return &ValidationError{Field: "minTrackedPoints", Value: formatFloat(float64(c.MinTrackedPoints)), Reason: "must be at least 2"}
	}
	return nil
}

// ConfigSnapshot is an immutable copy of the configuration taken at the
// start of a computation. Derived values carry the version of the snapshot
// they were computed from, so a configuration change can never be masked by
// a stale cached result.
type ConfigSnapshot struct {
	EstimationConfig
	Version uint64
}

// ConfigStore holds the process-wide configuration. Writers replace fields
// under the lock and bump the generation counter; computations take a
// Snapshot at call start and never read the store again, which gives each
// estimate a consistent view even if the configuration changes mid-flight.
type ConfigStore struct {
	mu      sync.RWMutex
	cfg     EstimationConfig
	version uint64
}

// NewConfigStore creates a store seeded with the given configuration
func NewConfigStore(cfg EstimationConfig) (*ConfigStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ConfigStore{cfg: cfg, version: 1}, nil
}

// Snapshot returns a copy of the current configuration and its version
func (s *ConfigStore) Snapshot() ConfigSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg := s.cfg
	cfg.OverlapKeywords = append([]string(nil), s.cfg.OverlapKeywords...)
	return ConfigSnapshot{EstimationConfig: cfg, Version: s.version}
}

// SetEstimationStyle replaces the active central-tendency style
func (s *ConfigStore) SetEstimationStyle(style EstimationStyle) error {
	return s.update(func(c *EstimationConfig) { c.Style = style })
}

// SetBufferPercentage replaces the buffer percentage
func (s *ConfigStore) SetBufferPercentage(pct float64) error {
	return s.update(func(c *EstimationConfig) { c.BufferPercentage = pct })
}

// SetExperienceMultipliers replaces the per-level multipliers
func (s *ConfigStore) SetExperienceMultipliers(m ExperienceMultipliers) error {
	return s.update(func(c *EstimationConfig) { c.Multipliers = m })
}

// SetWorkingHoursPerDay replaces the working-hours-per-day value
func (s *ConfigStore) SetWorkingHoursPerDay(hours float64) error {
	return s.update(func(c *EstimationConfig) { c.WorkingHoursPerDay = hours })
}

// SetOutlierThresholdMultiplier replaces the outlier threshold
func (s *ConfigStore) SetOutlierThresholdMultiplier(mult float64) error {
	return s.update(func(c *EstimationConfig) { c.OutlierThresholdMultiplier = mult })
}

// SetOverlapKeywords replaces the overlap-detection vocabulary
func (s *ConfigStore) SetOverlapKeywords(keywords []string) error {
	kw := append([]string(nil), keywords...)
	return s.update(func(c *EstimationConfig) { c.OverlapKeywords = kw })
}

func (s *ConfigStore) update(apply func(*EstimationConfig)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.cfg
	next.OverlapKeywords = append([]string(nil), s.cfg.OverlapKeywords...)
	apply(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	s.cfg = next
	s.version++
	return nil
}
