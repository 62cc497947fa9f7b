package stats

// Summary bundles the four statistics computed over one sample
type Summary struct {
	Mean       float64
	Median     float64
	Percentile float64
	StdDev     float64
}

// Summarize computes all four statistics over values at the given target
// percentile
func Summarize(values []float64, percentile float64) (Summary, error) {
	mean, err := Mean(values)
	if err != nil {
		return Summary{}, err
	}
	median, err := Median(values)
	if err != nil {
		return Summary{}, err
	}
	pct, err := Percentile(values, percentile)
	if err != nil {
		return Summary{}, err
	}
	sd, err := StdDev(values)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Mean: mean, Median: median, Percentile: pct, StdDev: sd}, nil
}

// DetectOutliers returns the indices of values exceeding thresholdMultiplier
// times the median of the whole sample. A zero median flags nothing: every
// positive value would exceed any multiple of a zero baseline.
func DetectOutliers(values []float64, thresholdMultiplier float64) []int {
	median, err := Median(values)
	if err != nil || median == 0 {
		return nil
	}
	threshold := thresholdMultiplier * median
	var flagged []int
	for i, v := range values {
		if v > threshold {
			flagged = append(flagged, i)
		}
	}
	return flagged
}

// RobustSummary recomputes the statistics excluding the flagged indices.
// If exclusion would empty the sample, the unexcluded statistics are
// returned instead.
func RobustSummary(values []float64, outliers []int, percentile float64) (Summary, error) {
	if len(outliers) == 0 || len(outliers) >= len(values) {
		return Summarize(values, percentile)
	}
	flagged := make(map[int]bool, len(outliers))
	for _, i := range outliers {
		flagged[i] = true
	}
	kept := make([]float64, 0, len(values)-len(outliers))
	for i, v := range values {
		if !flagged[i] {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return Summarize(values, percentile)
	}
	return Summarize(kept, percentile)
}
