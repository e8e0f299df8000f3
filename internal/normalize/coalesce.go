package normalize

import "math"

// coalesceFloat returns the first usable pointer value, else the fallback
func coalesceFloat(fallback float64, candidates ...*float64) float64 {
	for _, c := range candidates {
		if c != nil && isUsable(*c) {
			return *c
		}
	}
	return fallback
}

// coalesceInt returns the first non-nil, non-negative value, else the fallback
func coalesceInt(fallback int, candidates ...*int) int {
	for _, c := range candidates {
		if c != nil && *c >= 0 {
			return *c
		}
	}
	return fallback
}

// coalesceBool treats nil as false
func coalesceBool(b *bool) bool {
	return b != nil && *b
}

// coalesceSeries returns the first non-empty series
func coalesceSeries(candidates ...[]float64) []float64 {
	for _, c := range candidates {
		if len(c) > 0 {
			return c
		}
	}
	return nil
}

// cleanSeries drops non-finite entries, copying so the raw input stays intact
func cleanSeries(series []float64) []float64 {
	if len(series) == 0 {
		return nil
	}
	out := make([]float64, 0, len(series))
	for _, v := range series {
		if isUsable(v) {
			out = append(out, v)
		}
	}
	return out
}

func seriesMean(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}

// isUsable rejects NaN and infinities
func isUsable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// rate converts an error count to a percentage of trials
func rate(count, trials int, fallback float64) float64 {
	if trials <= 0 {
		return fallback
	}
	return 100 * float64(count) / float64(trials)
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) {
		return v // callers decide the fallback for NaN
	}
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func positiveOr(fallback, v float64) float64 {
	if !isUsable(v) || v <= 0 {
		return fallback
	}
	return v
}
