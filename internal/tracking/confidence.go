package tracking

import (
	"github.com/fathomhq/fathom/internal/model"
)

// dispersionGate is the fraction of the mean the standard deviation must
// stay under before a large sample earns HIGH confidence
const dispersionGate = 0.2

// Classify maps a sample's size, dispersion and data coverage to a
// confidence level. The function is total: every input maps to exactly one
// of the three levels.
//
//   - seed coverage or a single observation is always LOW
//   - tracked coverage with at least minPoints entries and stddev below
//     0.2x the mean is HIGH
//   - every other tracked case is MEDIUM; the dispersion gate always
//     applies before HIGH is awarded, regardless of sample size
//
// Classification uses the raw sample statistics, not the outlier-excluded
// ones: an inflated stddev from a wild entry is a real reliability signal
// and should demote the level (see DESIGN.md).
func Classify(count int, stdDev, mean float64, coverage model.DataCoverage, minPoints int) model.Confidence {
	if coverage == model.CoverageSeed || count <= 1 {
		return model.ConfidenceLow
	}
	if count >= minPoints && mean > 0 && stdDev < dispersionGate*mean {
		return model.ConfidenceHigh
	}
	return model.ConfidenceMedium
}

// ClassifyStatistics classifies a computed statistics bundle
func ClassifyStatistics(s model.FeatureStatistics, minPoints int) model.Confidence {
	return Classify(s.Count, s.StdDev, s.Mean, s.Coverage, minPoints)
}
