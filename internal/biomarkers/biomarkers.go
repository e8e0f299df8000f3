package biomarkers

import (
	"cogmetrics/domain/core"
	"cogmetrics/domain/intake"
	"cogmetrics/domain/metrics"
)

// Input bundles the trial-level figures the biomarker calculators read.
// Each calculator uses only the slice of this it needs.
type Input struct {
	ReactionTimes   []float64 // pooled trial order, canonical battery order
	MeanRT          float64
	OverallAccuracy float64 // 0-100
	TrailATime      float64 // ms, 0 when the trail task was absent
	TrailBTime      float64 // ms
	TrailPresent    bool
}

// Calculator is implemented by each functional biomarker. Calculators are
// stateless; Compute is a pure function of the input.
type Calculator interface {
	Name() metrics.BiomarkerName
	Description() string
	Compute(in Input) metrics.BiomarkerResult
}

// Engine orchestrates the four functional biomarkers
type Engine struct {
	calculators []Calculator
}

// NewEngine creates an engine with the four standard biomarkers
func NewEngine() *Engine {
	return &Engine{
		calculators: []Calculator{
			NewIESCalculator(),
			NewMSSDCalculator(),
			NewFatigueCalculator(),
			NewSwitchingCalculator(),
		},
	}
}

// ComputeAll runs every calculator and groups the results in canonical order
func (e *Engine) ComputeAll(in Input) metrics.BiomarkerSet {
	var set metrics.BiomarkerSet
	for _, c := range e.calculators {
		result := c.Compute(in)
		switch c.Name() {
		case metrics.BiomarkerIES:
			set.IES = result
		case metrics.BiomarkerMSSD:
			set.MSSD = result
		case metrics.BiomarkerFatigue:
			set.Fatigue = result
		case metrics.BiomarkerSwitching:
			set.Switching = result
		}
	}
	return set
}

// BuildInput derives the calculator input from a normalized battery and its
// pooled timing statistics.
func BuildInput(battery *intake.Battery, timing metrics.TimingStats, overallAccuracy float64) Input {
	trail := battery.Task(core.TaskTrailMaking)
	return Input{
		ReactionTimes:   battery.AllReactionTimes(),
		MeanRT:          timing.MeanRT,
		OverallAccuracy: overallAccuracy,
		TrailATime:      trail.TrailATime,
		TrailBTime:      trail.TrailBTime,
		TrailPresent:    trail.Present,
	}
}

// unavailable builds the sentinel result for insufficient input. The score is
// a zero placeholder, never a computed value.
func unavailable(name metrics.BiomarkerName, sampleSize int, reason string) metrics.BiomarkerResult {
	return metrics.BiomarkerResult{
		Name:           name,
		Available:      false,
		Score:          0,
		Tier:           TierUnavailable,
		Interpretation: reason,
		Impacts:        nil,
		SampleSize:     sampleSize,
	}
}
