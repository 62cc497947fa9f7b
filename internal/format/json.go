// Package format renders computed estimates and statistics for the
// report/CLI layer. The engine itself never formats anything.
package format

import (
	"encoding/json"
	"time"

	"github.com/fathomhq/fathom/internal/model"
)

// JSONFormatter formats estimates and statistics as JSON with derived
// convenience values
type JSONFormatter struct {
	config model.EstimationConfig
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(config model.EstimationConfig) *JSONFormatter {
	return &JSONFormatter{config: config}
}

// EstimateOutput is the complete estimate document handed to callers
type EstimateOutput struct {
	ID        string                 `json:"id"`
	CreatedAt string                 `json:"createdAt"`
	Style     model.EstimationStyle  `json:"style"`
	LineItems []LineItemOutput       `json:"lineItems"`
	Totals    TotalsOutput           `json:"totals"`
	Warnings  []model.OverlapWarning `json:"overlapWarnings,omitempty"`
}

// LineItemOutput represents one feature's contribution
type LineItemOutput struct {
	FeatureName    string           `json:"featureName"`
	Team           model.Team       `json:"team"`
	EstimatedHours float64          `json:"estimatedHours"`
	Basis          model.Basis      `json:"basis"`
	Confidence     model.Confidence `json:"confidence"`
	Category       string           `json:"category,omitempty"`
	IsNewFeature   bool             `json:"isNewFeature"`
}

// TotalsOutput holds the aggregated hours. BufferHours is reported next to
// the totals but never folded into grandTotalHours.
type TotalsOutput struct {
	FrontendHours        float64 `json:"frontendHours"`
	BackendHours         float64 `json:"backendHours"`
	GrandTotalHours      float64 `json:"grandTotalHours"`
	BufferHours          float64 `json:"bufferHours"`
	TotalWithBufferHours float64 `json:"totalWithBufferHours"`
	WorkingDays          float64 `json:"workingDays"`
}

// FormatEstimate renders a project estimate as indented JSON
func (f *JSONFormatter) FormatEstimate(estimate *model.ProjectEstimate) (string, error) {
	output := EstimateOutput{
		ID:        estimate.ID,
		CreatedAt: estimate.CreatedAt.Format(time.RFC3339),
		Style:     f.config.Style,
		LineItems: make([]LineItemOutput, 0, len(estimate.LineItems)),
		Totals: TotalsOutput{
			FrontendHours:        estimate.FrontendTotalHours,
			BackendHours:         estimate.BackendTotalHours,
			GrandTotalHours:      estimate.GrandTotalHours,
			BufferHours:          estimate.BufferHours,
			TotalWithBufferHours: estimate.GrandTotalHours + estimate.BufferHours,
		},
		Warnings: estimate.Warnings,
	}
	if f.config.WorkingHoursPerDay > 0 {
		output.Totals.WorkingDays = estimate.GrandTotalHours / f.config.WorkingHoursPerDay
	}

	for _, line := range estimate.LineItems {
		output.LineItems = append(output.LineItems, LineItemOutput{
			FeatureName:    line.FeatureName,
			Team:           line.Team,
			EstimatedHours: line.EstimatedHours,
			Basis:          line.Basis,
			Confidence:     line.Confidence,
			Category:       line.Category,
			IsNewFeature:   line.IsNewFeature,
		})
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatStatistics renders a per-feature statistics bundle as indented JSON
func (f *JSONFormatter) FormatStatistics(stats model.FeatureStatistics) (string, error) {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
