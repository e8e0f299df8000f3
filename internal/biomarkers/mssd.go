package biomarkers

import (
	"math"

	"cogmetrics/domain/metrics"
)

// Plausible reaction-time window. Values outside it are anticipations or
// walk-aways, not attention data, and pairs straddling an excluded value are
// dropped so a single outlier cannot manufacture two huge differences.
const (
	mssdRTFloor   = 100.0
	mssdRTCeiling = 5000.0
	mssdMinPairs  = 1 // at least 2 valid samples => 1 successive pair
)

// MSSDCalculator computes the micro-lapse index: the root mean of squared
// successive differences between consecutive reaction times.
type MSSDCalculator struct{}

// NewMSSDCalculator creates the MSSD calculator
func NewMSSDCalculator() *MSSDCalculator {
	return &MSSDCalculator{}
}

// Name returns the biomarker name
func (c *MSSDCalculator) Name() metrics.BiomarkerName {
	return metrics.BiomarkerMSSD
}

// Description returns a human-readable description
func (c *MSSDCalculator) Description() string {
	return "Trial-to-trial response volatility (root mean squared successive difference)"
}

// Compute derives MSSD over the filtered series. Fewer than two valid
// samples reports available=false with a placeholder score.
func (c *MSSDCalculator) Compute(in Input) metrics.BiomarkerResult {
	valid := make([]bool, len(in.ReactionTimes))
	validCount := 0
	for i, rt := range in.ReactionTimes {
		if rt >= mssdRTFloor && rt <= mssdRTCeiling && !math.IsNaN(rt) {
			valid[i] = true
			validCount++
		}
	}

	sumSquares, pairs := 0.0, 0
	for i := 1; i < len(in.ReactionTimes); i++ {
		if !valid[i] || !valid[i-1] {
			continue
		}
		diff := in.ReactionTimes[i] - in.ReactionTimes[i-1]
		sumSquares += diff * diff
		pairs++
	}

	if pairs < mssdMinPairs {
		return unavailable(metrics.BiomarkerMSSD, validCount,
			"Too few consecutive valid trials to measure response volatility.")
	}

	score := math.Sqrt(sumSquares / float64(pairs))

	result := metrics.BiomarkerResult{
		Name:       metrics.BiomarkerMSSD,
		Available:  true,
		Score:      score,
		SampleSize: validCount,
		Components: map[string]float64{
			"pairs": float64(pairs),
		},
	}
	return classify(mssdTiers, score).apply(result)
}
