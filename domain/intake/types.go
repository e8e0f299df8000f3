package intake

import (
	"cogmetrics/domain/core"
)

// ============================================================================
// RAW INPUT (external capture contract, tolerant of legacy field names)
// ============================================================================

// RawAssessmentInput is the aggregate a capture surface delivers for one
// completed battery. Tasks may be missing and several historical field-name
// variants are tolerated; the normalizer resolves all of it into a Battery.
type RawAssessmentInput struct {
	SessionID     string                    `json:"session_id"`
	SubjectID     string                    `json:"subject_id"`
	Tasks         map[string]RawTaskPayload `json:"tasks"`
	Questionnaire *RawQuestionnaire         `json:"questionnaire,omitempty"`
	User          *RawUserContext           `json:"user,omitempty"`
	Device        *RawDeviceMeta            `json:"device,omitempty"`
	CompletedAt   core.Timestamp            `json:"completed_at"`
}

// RawTaskPayload carries one task's trial-level output. Every numeric field is
// a pointer so "absent" and "zero" stay distinguishable; current and legacy
// field names coexist and the normalizer picks the first one present.
type RawTaskPayload struct {
	// Reaction time series (current name first, then legacy variants)
	ReactionTimes []float64 `json:"reaction_times,omitempty"`
	RTs           []float64 `json:"rts,omitempty"`           // legacy capture builds
	ResponseTimes []float64 `json:"responseTimes,omitempty"` // oldest capture builds

	// Accuracy
	Accuracy       *float64 `json:"accuracy,omitempty"`
	PercentCorrect *float64 `json:"percentCorrect,omitempty"` // legacy
	HitRate        *float64 `json:"hit_rate,omitempty"`
	Hits           *int     `json:"hits,omitempty"`

	// Error counts
	Omissions        *int `json:"omissions,omitempty"`
	OmissionErrors   *int `json:"omissionErrors,omitempty"` // legacy
	Commissions      *int `json:"commissions,omitempty"`
	CommissionErrors *int `json:"commissionErrors,omitempty"` // legacy
	FalseAlarms      *int `json:"falseAlarms,omitempty"`      // legacy go/no-go builds

	TotalTrials *int     `json:"total_trials,omitempty"`
	TrialCount  *int     `json:"trialCount,omitempty"` // legacy
	AverageRT   *float64 `json:"average_rt,omitempty"`
	MeanRT      *float64 `json:"meanRT,omitempty"` // legacy

	// Working memory (n-back)
	MaxLevel  *int `json:"max_level,omitempty"`
	BaseLevel *int `json:"base_level,omitempty"`

	// Interference (stroop)
	CongruentRT   *float64 `json:"congruent_rt,omitempty"`
	IncongruentRT *float64 `json:"incongruent_rt,omitempty"`
	StroopEffect  *float64 `json:"stroop_effect,omitempty"`

	// Flexibility (trail making)
	TrailATime *float64 `json:"trail_a_time,omitempty"`
	TrailBTime *float64 `json:"trail_b_time,omitempty"`
	SwitchCost *float64 `json:"switch_cost,omitempty"`
}

// RawQuestionnaire is the self-report symptom payload as captured.
type RawQuestionnaire struct {
	InattentionScore      *float64 `json:"inattention_score,omitempty"`
	HyperactivityScore    *float64 `json:"hyperactivity_score,omitempty"`
	InattentionSymptoms   *int     `json:"inattention_symptoms,omitempty"`
	HyperactivitySymptoms *int     `json:"hyperactivity_symptoms,omitempty"`
	SeverityPercent       *float64 `json:"severity_percent,omitempty"`
	Presentation          string   `json:"presentation,omitempty"`
	ImpairmentReported    *bool    `json:"impairment_reported,omitempty"`
	CrossSetting          *bool    `json:"cross_setting,omitempty"`
	ChildhoodOnset        *bool    `json:"childhood_onset,omitempty"`
}

// RawUserContext is optional demographic context.
type RawUserContext struct {
	Age *int `json:"age,omitempty"`
}

// RawDeviceMeta is optional device/validity metadata from the capture surface.
type RawDeviceMeta struct {
	Platform        string   `json:"platform,omitempty"`
	ScreenRefreshHz *float64 `json:"screen_refresh_hz,omitempty"`
	InputMethod     string   `json:"input_method,omitempty"`
	Interrupted     *bool    `json:"interrupted,omitempty"`
	DurationMinutes *float64 `json:"duration_minutes,omitempty"`
}

// ============================================================================
// CANONICAL RECORDS (normalizer output, guaranteed-present fields)
// ============================================================================

// TaskRecord is the canonical per-task record. Every field is populated; when
// raw data was missing the documented defaults are substituted and Present is
// false so downstream stages can surface "insufficient data" instead of a
// fabricated score.
type TaskRecord struct {
	Key     core.TaskKey `json:"key"`
	Present bool         `json:"present"`

	ReactionTimes []float64 `json:"reaction_times"`
	MeanRT        float64   `json:"mean_rt"`

	Accuracy       float64 `json:"accuracy"`        // 0-100
	HitRate        float64 `json:"hit_rate"`        // 0-100
	OmissionRate   float64 `json:"omission_rate"`   // 0-100
	CommissionRate float64 `json:"commission_rate"` // 0-100
	Omissions      int     `json:"omissions"`
	Commissions    int     `json:"commissions"`
	TotalTrials    int     `json:"total_trials"`

	MaxLevel  int `json:"max_level"`
	BaseLevel int `json:"base_level"`

	CongruentRT   float64 `json:"congruent_rt"`
	IncongruentRT float64 `json:"incongruent_rt"`
	StroopEffect  float64 `json:"stroop_effect"`

	TrailATime float64 `json:"trail_a_time"`
	TrailBTime float64 `json:"trail_b_time"`
	SwitchCost float64 `json:"switch_cost"`
}

// Questionnaire is the canonical self-report record.
type Questionnaire struct {
	Completed             bool    `json:"completed"`
	InattentionScore      float64 `json:"inattention_score"`
	HyperactivityScore    float64 `json:"hyperactivity_score"`
	InattentionSymptoms   int     `json:"inattention_symptoms"`
	HyperactivitySymptoms int     `json:"hyperactivity_symptoms"`
	TotalSymptoms         int     `json:"total_symptoms"`
	SeverityPercent       float64 `json:"severity_percent"` // 0-100
	Presentation          string  `json:"presentation"`     // self-reported label, may be empty
	ImpairmentReported    bool    `json:"impairment_reported"`
	CrossSetting          bool    `json:"cross_setting"`
	ChildhoodOnset        bool    `json:"childhood_onset"`
}

// UserContext is the canonical demographic context.
type UserContext struct {
	Age      int  `json:"age"`
	AgeKnown bool `json:"age_known"`
}

// Validity is the canonical device/validity record used by the report's
// validity notice section.
type Validity struct {
	Platform        string  `json:"platform"`
	InputMethod     string  `json:"input_method"`
	Interrupted     bool    `json:"interrupted"`
	DurationMinutes float64 `json:"duration_minutes"`
	TasksCompleted  int     `json:"tasks_completed"`
	TasksExpected   int     `json:"tasks_expected"`
}

// Battery is the fully normalized input snapshot the pipeline consumes.
// After normalization every downstream stage can assume populated fields.
type Battery struct {
	SessionID     core.SessionID                `json:"session_id"`
	SubjectID     core.SubjectID                `json:"subject_id"`
	Tasks         map[core.TaskKey]TaskRecord   `json:"tasks"`
	Questionnaire Questionnaire                 `json:"questionnaire"`
	User          UserContext                   `json:"user"`
	Validity      Validity                      `json:"validity"`
	CompletedAt   core.Timestamp                `json:"completed_at"`
	InputHash     core.InputHash                `json:"input_hash"`
}

// Task returns the canonical record for a task key. Missing keys return the
// absent-task default so callers never branch on presence in the map.
func (b *Battery) Task(key core.TaskKey) TaskRecord {
	if rec, ok := b.Tasks[key]; ok {
		return rec
	}
	return AbsentTaskRecord(key)
}

// AllReactionTimes concatenates the trial-level series of every present task,
// in canonical battery order. Used by cross-task timing statistics.
func (b *Battery) AllReactionTimes() []float64 {
	var all []float64
	for _, key := range core.AllTaskKeys() {
		rec := b.Task(key)
		if rec.Present {
			all = append(all, rec.ReactionTimes...)
		}
	}
	return all
}
