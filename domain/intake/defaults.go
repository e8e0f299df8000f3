package intake

import (
	"cogmetrics/domain/core"
)

// Documented fallback defaults substituted when a task or field is absent.
// They are neutral mid-range values, not zeros: a missing task must not read
// as a catastrophically impaired one.
const (
	DefaultAccuracy       = 75.0  // percent correct
	DefaultHitRate        = 75.0  // percent
	DefaultOmissionRate   = 10.0  // percent
	DefaultCommissionRate = 10.0  // percent
	DefaultMeanRT         = 550.0 // ms
	DefaultTotalTrials    = 60    // standard session length
	DefaultBaseLevel      = 1     // n-back starting level
	DefaultCongruentRT    = 650.0 // ms
	DefaultIncongruentRT  = 750.0 // ms
	DefaultTrailATime     = 30000.0 // ms
	DefaultTrailBTime     = 65000.0 // ms
)

// AbsentTaskRecord returns the canonical record for a task that produced no
// raw data. Present is false so the composer renders placeholders instead of
// treating the defaults as measurements.
func AbsentTaskRecord(key core.TaskKey) TaskRecord {
	return TaskRecord{
		Key:            key,
		Present:        false,
		ReactionTimes:  nil,
		MeanRT:         DefaultMeanRT,
		Accuracy:       DefaultAccuracy,
		HitRate:        DefaultHitRate,
		OmissionRate:   DefaultOmissionRate,
		CommissionRate: DefaultCommissionRate,
		TotalTrials:    DefaultTotalTrials,
		MaxLevel:       DefaultBaseLevel,
		BaseLevel:      DefaultBaseLevel,
		CongruentRT:    DefaultCongruentRT,
		IncongruentRT:  DefaultIncongruentRT,
		StroopEffect:   DefaultIncongruentRT - DefaultCongruentRT,
		TrailATime:     DefaultTrailATime,
		TrailBTime:     DefaultTrailBTime,
		SwitchCost:     DefaultTrailBTime - DefaultTrailATime,
	}
}

// DefaultQuestionnaire is the canonical record when no questionnaire was
// captured. Completed is false; severity modifiers and floor rules all no-op.
func DefaultQuestionnaire() Questionnaire {
	return Questionnaire{
		Completed:             false,
		InattentionScore:      0,
		HyperactivityScore:    0,
		InattentionSymptoms:   0,
		HyperactivitySymptoms: 0,
		TotalSymptoms:         0,
		SeverityPercent:       0,
		Presentation:          "",
	}
}
