package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEstimationConfig(t *testing.T) {
	cfg := DefaultEstimationConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, StyleMedian, cfg.Style)
	assert.Equal(t, 8.0, cfg.WorkingHoursPerDay)
	assert.Equal(t, 1.5, cfg.Multipliers.Junior)
	assert.Equal(t, 1.0, cfg.Multipliers.Mid)
	assert.Equal(t, 0.8, cfg.Multipliers.Senior)
	assert.Equal(t, 3.0, cfg.OutlierThresholdMultiplier)
	assert.Equal(t, 80.0, cfg.TargetPercentile)
	assert.Equal(t, 5, cfg.MinTrackedPoints)
	assert.NotEmpty(t, cfg.OverlapKeywords)
}

func TestEstimationConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EstimationConfig)
	}{
		{name: "unknown style", mutate: func(c *EstimationConfig) { c.Style = "p99" }},
		{name: "zero working hours", mutate: func(c *EstimationConfig) { c.WorkingHoursPerDay = 0 }},
		{name: "too many working hours", mutate: func(c *EstimationConfig) { c.WorkingHoursPerDay = 25 }},
		{name: "zero multiplier", mutate: func(c *EstimationConfig) { c.Multipliers.Mid = 0 }},
		{name: "negative buffer", mutate: func(c *EstimationConfig) { c.BufferPercentage = -5 }},
		{name: "zero outlier threshold", mutate: func(c *EstimationConfig) { c.OutlierThresholdMultiplier = 0 }},
		{name: "percentile above 100", mutate: func(c *EstimationConfig) { c.TargetPercentile = 120 }},
		{name: "min points below 2", mutate: func(c *EstimationConfig) { c.MinTrackedPoints = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultEstimationConfig()
			tt.mutate(&cfg)
			var verr *ValidationError
			assert.ErrorAs(t, cfg.Validate(), &verr)
		})
	}
}

func TestConfigStoreVersioning(t *testing.T) {
	store, err := NewConfigStore(DefaultEstimationConfig())
	require.NoError(t, err)

	first := store.Snapshot()
	require.NoError(t, store.SetEstimationStyle(StyleP80))
	second := store.Snapshot()

	assert.Equal(t, StyleMedian, first.Style, "snapshot must not see later writes")
	assert.Equal(t, StyleP80, second.Style)
	assert.Greater(t, second.Version, first.Version)
}

func TestConfigStoreRejectsInvalidWrites(t *testing.T) {
	store, err := NewConfigStore(DefaultEstimationConfig())
	require.NoError(t, err)
	before := store.Snapshot()

	assert.Error(t, store.SetBufferPercentage(-1))
	assert.Error(t, store.SetEstimationStyle("p99"))
	assert.Error(t, store.SetWorkingHoursPerDay(0))
	assert.Error(t, store.SetOutlierThresholdMultiplier(-2))
	assert.Error(t, store.SetExperienceMultipliers(ExperienceMultipliers{Junior: 1.5, Mid: 0, Senior: 0.8}))

	after := store.Snapshot()
	assert.Equal(t, before.Version, after.Version, "rejected writes must not bump the version")
	assert.Equal(t, before.EstimationConfig, after.EstimationConfig)
}

func TestConfigStoreSetters(t *testing.T) {
	store, err := NewConfigStore(DefaultEstimationConfig())
	require.NoError(t, err)

	require.NoError(t, store.SetBufferPercentage(15))
	require.NoError(t, store.SetWorkingHoursPerDay(7.5))
	require.NoError(t, store.SetExperienceMultipliers(ExperienceMultipliers{Junior: 2, Mid: 1, Senior: 0.7}))
	require.NoError(t, store.SetOverlapKeywords([]string{"billing"}))

	got := store.Snapshot()
	assert.Equal(t, 15.0, got.BufferPercentage)
	assert.Equal(t, 7.5, got.WorkingHoursPerDay)
	assert.Equal(t, 2.0, got.Multipliers.Junior)
	assert.Equal(t, []string{"billing"}, got.OverlapKeywords)
}

func TestNewConfigStoreRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultEstimationConfig()
	cfg.BufferPercentage = -10
	_, err := NewConfigStore(cfg)
	assert.Error(t, err)
}

func TestExperienceMultipliersFor(t *testing.T) {
	m := ExperienceMultipliers{Junior: 1.5, Mid: 1.0, Senior: 0.8}
	assert.Equal(t, 1.5, m.For(LevelJunior))
	assert.Equal(t, 1.0, m.For(LevelMid))
	assert.Equal(t, 0.8, m.For(LevelSenior))
	assert.Equal(t, 1.0, m.For(""))
}
