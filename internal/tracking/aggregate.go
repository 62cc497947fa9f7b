// Package tracking turns raw tracked-time entries into per-feature
// statistics bundles and classifies their reliability.
package tracking

import (
	"github.com/fathomhq/fathom/internal/model"
	"github.com/fathomhq/fathom/internal/stats"
)

// StatisticsFor computes the statistics bundle for one feature from the
// given tracked-time entries. Entries are matched against featureName after
// both sides go through the catalog's name normalization, so labels
// differing only in case or whitespace group together.
//
// When no entry matches, the result falls back to the seed time: coverage
// is seed, the count is zero and the numeric fields all carry seedHours.
// The statistics layer's empty-input error never escapes this function.
func StatisticsFor(featureName string, seedHours float64, entries []model.TrackedTimeEntry, cfg model.ConfigSnapshot) model.FeatureStatistics {
	needle := model.NormalizeName(featureName)

	var values []float64
	var ids []model.EntryID
	for _, entry := range entries {
		if model.NormalizeName(entry.FeatureLabel) == needle {
			values = append(values, entry.Hours)
			ids = append(ids, entry.ID)
		}
	}

	if len(values) == 0 {
		return model.FeatureStatistics{
			FeatureName:   featureName,
			Count:         0,
			Mean:          seedHours,
			Median:        seedHours,
			Percentile:    seedHours,
			StdDev:        0,
			Coverage:      model.CoverageSeed,
			ConfigVersion: cfg.Version,
		}
	}

	summary, err := stats.Summarize(values, cfg.TargetPercentile)
	if err != nil {
		// Unreachable with a non-empty sample; keep the seed fallback
		// rather than surfacing an internal error.
		return model.FeatureStatistics{
			FeatureName:   featureName,
			Mean:          seedHours,
			Median:        seedHours,
			Percentile:    seedHours,
			Coverage:      model.CoverageSeed,
			ConfigVersion: cfg.Version,
		}
	}

	result := model.FeatureStatistics{
		FeatureName:   featureName,
		Count:         len(values),
		Mean:          summary.Mean,
		Median:        summary.Median,
		Percentile:    summary.Percentile,
		StdDev:        summary.StdDev,
		Coverage:      model.CoverageTracked,
		ConfigVersion: cfg.Version,
	}

	outliers := stats.DetectOutliers(values, cfg.OutlierThresholdMultiplier)
	if len(outliers) > 0 {
		threshold := cfg.OutlierThresholdMultiplier * summary.Median
		for _, idx := range outliers {
			result.Outliers = append(result.Outliers, model.OutlierFlag{
				EntryID:   ids[idx],
				Value:     values[idx],
				Threshold: threshold,
			})
		}
		if robust, err := stats.RobustSummary(values, outliers, cfg.TargetPercentile); err == nil {
			result.Robust = &model.RobustStatistics{
				Mean:       robust.Mean,
				Median:     robust.Median,
				Percentile: robust.Percentile,
				StdDev:     robust.StdDev,
			}
		}
	}

	return result
}
