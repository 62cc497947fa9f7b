package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectOutliers(t *testing.T) {
	tests := []struct {
		name       string
		values     []float64
		multiplier float64
		want       []int
	}{
		{
			name:       "flags value above threshold",
			values:     []float64{3.5, 4, 4.5, 4, 20},
			multiplier: 3,
			want:       []int{4}, // median 4, threshold 12
		},
		{
			name:       "boundary value is not flagged",
			values:     []float64{4, 4, 12},
			multiplier: 3,
			want:       nil, // 12 == 3 * 4, strict comparison
		},
		{
			name:       "no outliers in tight sample",
			values:     []float64{3.5, 4, 4.5},
			multiplier: 3,
			want:       nil,
		},
		{
			name:       "zero median flags nothing",
			values:     []float64{0, 0, 0, 50},
			multiplier: 3,
			want:       nil,
		},
		{
			name:       "multiple outliers",
			values:     []float64{1, 1, 1, 10, 20},
			multiplier: 3,
			want:       []int{3, 4},
		},
		{
			name:       "empty input flags nothing",
			values:     nil,
			multiplier: 3,
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectOutliers(tt.values, tt.multiplier)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRobustSummaryExcludesFlagged(t *testing.T) {
	values := []float64{3.5, 4, 4.5, 4, 20}
	outliers := DetectOutliers(values, 3)
	require.Equal(t, []int{4}, outliers)

	robust, err := RobustSummary(values, outliers, 80)
	require.NoError(t, err)

	// Statistics of [3.5, 4, 4.5, 4] after excluding the 20h entry.
	assert.InDelta(t, 4.0, robust.Mean, 1e-9)
	assert.InDelta(t, 4.0, robust.Median, 1e-9)
	assert.Less(t, robust.StdDev, 1.0)
}

func TestRobustSummaryNoOutliers(t *testing.T) {
	values := []float64{2, 3, 4}
	robust, err := RobustSummary(values, nil, 80)
	require.NoError(t, err)

	raw, err := Summarize(values, 80)
	require.NoError(t, err)
	assert.Equal(t, raw, robust)
}

func TestRobustSummaryFallsBackWhenExclusionEmptiesSample(t *testing.T) {
	values := []float64{5, 6}
	robust, err := RobustSummary(values, []int{0, 1}, 80)
	require.NoError(t, err)

	raw, err := Summarize(values, 80)
	require.NoError(t, err)
	assert.Equal(t, raw, robust)
}

func TestSummarizeEmptyInput(t *testing.T) {
	_, err := Summarize(nil, 80)
	assert.ErrorIs(t, err, ErrEmptyInput)
}
