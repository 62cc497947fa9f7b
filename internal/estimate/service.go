// Package estimate orchestrates the full estimation pipeline: feature
// resolution, per-feature statistics, basis selection, experience
// multipliers, overlap detection and project-level aggregation.
package estimate

import (
	"github.com/fathomhq/fathom/internal/catalog"
	"github.com/fathomhq/fathom/internal/model"
	"github.com/fathomhq/fathom/internal/tracking"
)

// EntrySource supplies the already-validated tracked-time entries the
// engine computes over. The persistence layer implements this; tests use
// in-memory slices.
type EntrySource interface {
	ListEntries() ([]model.TrackedTimeEntry, error)
}

// EntrySliceSource adapts a plain slice to an EntrySource
type EntrySliceSource []model.TrackedTimeEntry

func (s EntrySliceSource) ListEntries() ([]model.TrackedTimeEntry, error) {
	return s, nil
}

// Request describes one project-estimate computation
type Request struct {
	// FeatureNames is the list of selected feature names, possibly free
	// text. An empty list yields an empty estimate, not an error.
	FeatureNames []string

	// Level optionally applies a project-wide experience multiplier
	Level model.ExperienceLevel

	// DefaultSeedHours is used for names with no catalog match
	DefaultSeedHours float64
}

// Service combines the catalog, the tracked-time entries and the active
// configuration into project estimates. Each computation starts by taking
// a configuration snapshot, so a concurrent config change never produces a
// half-old, half-new estimate and nothing derived is ever cached across
// config versions.
type Service struct {
	catalog *catalog.Catalog
	config  *model.ConfigStore
	entries EntrySource
}

// NewService creates an estimation service
func NewService(cat *catalog.Catalog, cfg *model.ConfigStore, entries EntrySource) *Service {
	return &Service{catalog: cat, config: cfg, entries: entries}
}

// StatisticsFor computes the current statistics bundle for one catalog
// feature, resolved by name or synonym.
func (s *Service) StatisticsFor(featureName string) (model.FeatureStatistics, error) {
	feature := s.catalog.FindByNameOrSynonym(featureName)
	if feature == nil {
		return model.FeatureStatistics{}, &model.NotFoundError{Kind: "feature", Ref: featureName}
	}
	entries, err := s.entries.ListEntries()
	if err != nil {
		return model.FeatureStatistics{}, err
	}
	cfg := s.config.Snapshot()
	return tracking.StatisticsFor(feature.Name, feature.SeedTimeHours, entries, cfg), nil
}

// Estimate runs the full pipeline for the requested features
func (s *Service) Estimate(req Request) (*model.ProjectEstimate, error) {
	cfg := s.config.Snapshot()
	result := model.NewProjectEstimate(cfg.Version)

	if len(req.FeatureNames) == 0 {
		return result, nil
	}

	if req.Level != "" {
		switch req.Level {
		case model.LevelJunior, model.LevelMid, model.LevelSenior:
		default:
			return nil, &model.ValidationError{Field: "level", Value: string(req.Level), Reason: "must be junior, mid or senior"}
		}
	}

	entries, err := s.entries.ListEntries()
	if err != nil {
		return nil, err
	}

	// One catalog snapshot for the whole pipeline: a concurrent catalog
	// write cannot change resolution halfway through the feature list.
	features := s.catalog.Snapshot()

	multiplier := 1.0
	if req.Level != "" {
		multiplier = cfg.Multipliers.For(req.Level)
	}

	selectedNames := make([]string, 0, len(req.FeatureNames))
	for _, name := range req.FeatureNames {
		feature := findInSnapshot(features, name)
		if feature == nil {
			result.LineItems = append(result.LineItems, model.EstimateLineItem{
				FeatureName:    name,
				Team:           model.TeamBoth,
				EstimatedHours: req.DefaultSeedHours * multiplier,
				Basis:          model.BasisSeed,
				Confidence:     model.ConfidenceLow,
				IsNewFeature:   true,
			})
			selectedNames = append(selectedNames, name)
			continue
		}

		featStats := tracking.StatisticsFor(feature.Name, feature.SeedTimeHours, entries, cfg)
		hours, basis := selectBasis(featStats, cfg.Style)

		result.LineItems = append(result.LineItems, model.EstimateLineItem{
			FeatureName:    feature.Name,
			Team:           feature.Team,
			EstimatedHours: hours * multiplier,
			Basis:          basis,
			Confidence:     tracking.ClassifyStatistics(featStats, cfg.MinTrackedPoints),
			Category:       feature.Category,
			IsNewFeature:   false,
		})
		selectedNames = append(selectedNames, feature.Name)
	}

	result.Warnings = DetectOverlaps(selectedNames, cfg.OverlapKeywords)

	for _, line := range result.LineItems {
		result.GrandTotalHours += line.EstimatedHours
		switch line.Team {
		case model.TeamFrontend:
			result.FrontendTotalHours += line.EstimatedHours
		case model.TeamBackend:
			result.BackendTotalHours += line.EstimatedHours
		case model.TeamBoth:
			result.FrontendTotalHours += line.EstimatedHours / 2
			result.BackendTotalHours += line.EstimatedHours / 2
		}
	}

	// Buffer stays outside the totals.
	result.BufferHours = result.GrandTotalHours * cfg.BufferPercentage / 100
	if result.BufferHours < 0 {
		return nil, &model.ComputationError{Op: "estimate", Reason: "negative buffer from configuration"}
	}

	return result, nil
}

// findInSnapshot resolves a free-text name against a catalog snapshot with
// the same exact normalized matching as Catalog.FindByNameOrSynonym
func findInSnapshot(features []*model.Feature, query string) *model.Feature {
	needle := model.NormalizeName(query)
	if needle == "" {
		return nil
	}
	for _, feature := range features {
		if model.NormalizeName(feature.Name) == needle {
			return feature
		}
		for _, syn := range feature.Synonyms {
			if model.NormalizeName(syn) == needle {
				return feature
			}
		}
	}
	return nil
}

// selectBasis picks which statistic becomes the estimated hours. Seed
// coverage always yields the seed basis regardless of the active style.
func selectBasis(s model.FeatureStatistics, style model.EstimationStyle) (float64, model.Basis) {
	if s.Coverage == model.CoverageSeed {
		return s.Mean, model.BasisSeed
	}
	switch style {
	case model.StyleMean:
		return s.Mean, model.BasisTrackedMean
	case model.StyleP80:
		return s.Percentile, model.BasisTrackedP80
	default:
		return s.Median, model.BasisTrackedMedian
	}
}
