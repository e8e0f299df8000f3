package biomarkers

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"cogmetrics/domain/metrics"
)

// fatigueMinPoints is the minimum number of valid trials for a trustworthy
// slope estimate.
const fatigueMinPoints = 5

// FatigueCalculator fits an ordinary-least-squares line of reaction time over
// trial index; the slope is the fatigue drift in ms per trial.
type FatigueCalculator struct{}

// NewFatigueCalculator creates the fatigue-slope calculator
func NewFatigueCalculator() *FatigueCalculator {
	return &FatigueCalculator{}
}

// Name returns the biomarker name
func (c *FatigueCalculator) Name() metrics.BiomarkerName {
	return metrics.BiomarkerFatigue
}

// Description returns a human-readable description
func (c *FatigueCalculator) Description() string {
	return "Linear trend of reaction time across trial order; positive slope means slowing over time"
}

// Compute fits the OLS slope over valid trials. Fewer than five valid points
// reports available=false.
func (c *FatigueCalculator) Compute(in Input) metrics.BiomarkerResult {
	var xs, ys []float64
	for i, rt := range in.ReactionTimes {
		if rt >= mssdRTFloor && rt <= mssdRTCeiling && !math.IsNaN(rt) {
			xs = append(xs, float64(i))
			ys = append(ys, rt)
		}
	}

	if len(ys) < fatigueMinPoints {
		return unavailable(metrics.BiomarkerFatigue, len(ys),
			"Too few valid trials to estimate a fatigue trend.")
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return unavailable(metrics.BiomarkerFatigue, len(ys),
			"The trial series was degenerate; no fatigue trend could be fitted.")
	}

	result := metrics.BiomarkerResult{
		Name:       metrics.BiomarkerFatigue,
		Available:  true,
		Score:      slope,
		SampleSize: len(ys),
		Components: map[string]float64{
			"intercept": intercept,
		},
	}
	return classify(fatigueTiers, slope).apply(result)
}
