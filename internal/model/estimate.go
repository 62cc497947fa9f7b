package model

import (
	"time"
)

// DataCoverage indicates whether a statistics bundle was computed from
// tracked entries or fell back to the catalog seed time
type DataCoverage string

const (
	CoverageTracked DataCoverage = "tracked"
	CoverageSeed    DataCoverage = "seed"
)

// Confidence is a qualitative reliability label derived from sample size
// and dispersion
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// Basis identifies which statistic produced a line item's hours
type Basis string

const (
	BasisTrackedMean   Basis = "tracked_mean"
	BasisTrackedMedian Basis = "tracked_median"
	BasisTrackedP80    Basis = "tracked_p80"
	BasisSeed          Basis = "seed"
)

// OutlierFlag records one tracked entry whose value exceeded the outlier
// threshold for its feature
type OutlierFlag struct {
	EntryID   EntryID `json:"entryId"`
	Value     float64 `json:"value"`
	Threshold float64 `json:"threshold"`
}

// RobustStatistics holds the statistics recomputed after excluding flagged
// outlier entries
type RobustStatistics struct {
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	Percentile float64 `json:"percentile"`
	StdDev     float64 `json:"stdDev"`
}

// FeatureStatistics is the derived statistics bundle for one feature. It is
// recomputed on demand and never persisted; the ConfigVersion records which
// configuration snapshot produced it.
type FeatureStatistics struct {
	FeatureName   string            `json:"featureName"`
	Count         int               `json:"count"`
	Mean          float64           `json:"mean"`
	Median        float64           `json:"median"`
	Percentile    float64           `json:"percentile"`
	StdDev        float64           `json:"stdDev"`
	Coverage      DataCoverage      `json:"dataCoverage"`
	Outliers      []OutlierFlag     `json:"outliers,omitempty"`
	Robust        *RobustStatistics `json:"robust,omitempty"`
	ConfigVersion uint64            `json:"configVersion"`
}

// EstimateLineItem is one feature's contribution to a project estimate
type EstimateLineItem struct {
	FeatureName    string     `json:"featureName"`
	Team           Team       `json:"team"`
	EstimatedHours float64    `json:"estimatedHours"`
	Basis          Basis      `json:"basis"`
	Confidence     Confidence `json:"confidence"`
	Category       string     `json:"category,omitempty"`
	IsNewFeature   bool       `json:"isNewFeature"`
}

// OverlapWarning flags two or more selected features that share a scope
// keyword and may represent duplicated work. Detection is best-effort.
type OverlapWarning struct {
	Keyword    string   `json:"keyword"`
	Features   []string `json:"features"`
	Suggestion string   `json:"suggestion"`
}

// ProjectEstimate is the aggregated result of one estimate computation.
// GrandTotalHours is always the sum of the line-item hours; BufferHours is
// kept separate and never folded into the totals.
type ProjectEstimate struct {
	ID                 string             `json:"id"`
	LineItems          []EstimateLineItem `json:"lineItems"`
	FrontendTotalHours float64            `json:"frontendTotalHours"`
	BackendTotalHours  float64            `json:"backendTotalHours"`
	GrandTotalHours    float64            `json:"grandTotalHours"`
	BufferHours        float64            `json:"bufferHours"`
	Warnings           []OverlapWarning   `json:"overlapWarnings,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	ConfigVersion      uint64             `json:"configVersion"`
}

// NewProjectEstimate creates an empty estimate with a generated ID
func NewProjectEstimate(configVersion uint64) *ProjectEstimate {
	return &ProjectEstimate{
		ID:            generateID(),
		CreatedAt:     time.Now(),
		ConfigVersion: configVersion,
	}
}
