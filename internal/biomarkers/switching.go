package biomarkers

import (
	"cogmetrics/domain/metrics"
)

// SwitchingCalculator computes the task-switching cost as the ratio of the
// switching condition (trail B) to the baseline condition (trail A).
type SwitchingCalculator struct{}

// NewSwitchingCalculator creates the switching-cost calculator
func NewSwitchingCalculator() *SwitchingCalculator {
	return &SwitchingCalculator{}
}

// Name returns the biomarker name
func (c *SwitchingCalculator) Name() metrics.BiomarkerName {
	return metrics.BiomarkerSwitching
}

// Description returns a human-readable description
func (c *SwitchingCalculator) Description() string {
	return "Ratio of task-switching condition time to baseline condition time"
}

// Compute derives the B/A ratio. Both condition times must come from an
// actually completed trail task; defaults never produce a fabricated ratio.
func (c *SwitchingCalculator) Compute(in Input) metrics.BiomarkerResult {
	if !in.TrailPresent || in.TrailATime <= 0 || in.TrailBTime <= 0 {
		return unavailable(metrics.BiomarkerSwitching, 0,
			"Both trail conditions must be completed to measure switching cost.")
	}

	ratio := in.TrailBTime / in.TrailATime

	result := metrics.BiomarkerResult{
		Name:       metrics.BiomarkerSwitching,
		Available:  true,
		Score:      ratio,
		SampleSize: 2,
		Components: map[string]float64{
			"trail_a_ms": in.TrailATime,
			"trail_b_ms": in.TrailBTime,
			"diff_ms":    in.TrailBTime - in.TrailATime,
		},
	}
	return classify(switchingTiers, ratio).apply(result)
}
