package scoring

import (
	"math"

	"github.com/montanaflynn/stats"

	"cogmetrics/domain/metrics"
)

// NeutralScore is substituted when arithmetic would otherwise propagate a
// non-finite value. It is deliberately mid-range: missing data must not
// collapse to an artificially alarming zero.
const NeutralScore = 50.0

// SafeScore clamps a score into [0, 100], substituting the neutral default
// for NaN and infinities. Every domain and composite score passes through
// this guard.
func SafeScore(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NeutralScore
	}
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ClampFloor0 floors a value at zero, guarding non-finite inputs
func ClampFloor0(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// SafeDiv divides, short-circuiting to a default instead of producing a
// non-finite quotient
func SafeDiv(num, den, fallback float64) float64 {
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) || math.IsNaN(num) || math.IsInf(num, 0) {
		return fallback
	}
	q := num / den
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return fallback
	}
	return q
}

// ComputeTiming summarizes a pooled reaction-time series. An empty or
// one-element series short-circuits to the documented defaults rather than
// producing NaN spread statistics.
func ComputeTiming(series []float64) metrics.TimingStats {
	t := metrics.TimingStats{
		MeanRT:     550, // default mean when nothing was recorded
		RTSD:       0,
		RTCV:       0,
		SampleSize: len(series),
	}
	if len(series) == 0 {
		t.SampleSize = 0
		return t
	}

	mean, err := stats.Mean(series)
	if err == nil && !math.IsNaN(mean) {
		t.MeanRT = mean
	}
	if len(series) < 2 {
		return t
	}

	sd, err := stats.StandardDeviation(series)
	if err == nil && !math.IsNaN(sd) {
		t.RTSD = sd
	}
	t.RTCV = SafeDiv(t.RTSD, t.MeanRT, 0)
	return t
}

// ScoreLabel maps a 0-100 domain score onto its severity label
func ScoreLabel(score float64) string {
	switch {
	case score >= 85:
		return metrics.LabelStrong
	case score >= 55:
		return metrics.LabelTypical
	case score >= 40:
		return metrics.LabelBelow
	default:
		return metrics.LabelImpaired
	}
}
