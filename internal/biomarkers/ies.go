package biomarkers

import (
	"math"

	"cogmetrics/domain/metrics"
)

// IESCalculator computes the Inverse Efficiency Score: mean reaction time
// divided by accuracy, i.e. the time cost of a unit of correctness.
type IESCalculator struct{}

// NewIESCalculator creates the IES calculator
func NewIESCalculator() *IESCalculator {
	return &IESCalculator{}
}

// Name returns the biomarker name
func (c *IESCalculator) Name() metrics.BiomarkerName {
	return metrics.BiomarkerIES
}

// Description returns a human-readable description
func (c *IESCalculator) Description() string {
	return "Reaction time normalized by accuracy, modeling the cognitive cost of being correct"
}

// Compute derives IES = meanRT / max(0.01, accuracy/100). Requires recorded
// reaction times and a positive mean RT.
func (c *IESCalculator) Compute(in Input) metrics.BiomarkerResult {
	n := len(in.ReactionTimes)
	if n == 0 || in.MeanRT <= 0 || math.IsNaN(in.MeanRT) {
		return unavailable(metrics.BiomarkerIES, n, "No reaction-time data was recorded, so response efficiency could not be measured.")
	}

	accuracyFraction := math.Max(0.01, in.OverallAccuracy/100)
	score := in.MeanRT / accuracyFraction

	result := metrics.BiomarkerResult{
		Name:       metrics.BiomarkerIES,
		Available:  true,
		Score:      score,
		SampleSize: n,
		Components: map[string]float64{
			"mean_rt":  in.MeanRT,
			"accuracy": in.OverallAccuracy,
		},
	}
	return classify(iesTiers, score).apply(result)
}
