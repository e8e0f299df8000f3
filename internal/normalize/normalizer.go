package normalize

import (
	"math"
	"strings"

	"cogmetrics/domain/core"
	"cogmetrics/domain/intake"
)

// Normalizer maps heterogeneous raw per-task payloads into canonical records.
// It never fails on missing or malformed task data; the only error it returns
// is a violated structural precondition on the aggregate itself.
type Normalizer struct {
	logger Logger
}

// Logger is the minimal logging surface the normalizer needs
type Logger interface {
	Warn(format string, args ...interface{})
	Debug(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Debug(string, ...interface{}) {}

// NewNormalizer creates a normalizer. A nil logger disables logging.
func NewNormalizer(logger Logger) *Normalizer {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Normalizer{logger: logger}
}

// Normalize converts a raw aggregate into a fully populated Battery.
// Missing tasks yield absent-task records with documented defaults; malformed
// numeric fields are replaced and logged, never propagated.
func (n *Normalizer) Normalize(raw *intake.RawAssessmentInput) (*intake.Battery, error) {
	if raw == nil {
		return nil, core.NewAggregateError("nil input")
	}
	if strings.TrimSpace(raw.SessionID) == "" {
		return nil, core.NewAggregateError("missing session id")
	}

	battery := &intake.Battery{
		SessionID:   core.SessionID(raw.SessionID),
		SubjectID:   core.SubjectID(raw.SubjectID),
		Tasks:       make(map[core.TaskKey]intake.TaskRecord, len(core.AllTaskKeys())),
		CompletedAt: raw.CompletedAt,
		InputHash:   core.ComputeInputHash(raw),
	}

	payloads := n.resolveTaskKeys(raw.Tasks)
	completed := 0
	for _, key := range core.AllTaskKeys() {
		payload, ok := payloads[key]
		if !ok {
			n.logger.Debug("task %s absent, using defaults", key)
			battery.Tasks[key] = intake.AbsentTaskRecord(key)
			continue
		}
		battery.Tasks[key] = n.normalizeTask(key, payload)
		completed++
	}

	battery.Questionnaire = n.normalizeQuestionnaire(raw.Questionnaire)
	battery.User = normalizeUser(raw.User)
	battery.Validity = normalizeValidity(raw.Device, completed)

	return battery, nil
}

// resolveTaskKeys maps legacy task names onto canonical keys. When multiple
// aliases of the same task are present, the canonical name wins.
func (n *Normalizer) resolveTaskKeys(tasks map[string]intake.RawTaskPayload) map[core.TaskKey]intake.RawTaskPayload {
	aliases := map[string]core.TaskKey{
		"cpt":                    core.TaskCPT,
		"continuous_performance": core.TaskCPT,
		"continuousperformance":  core.TaskCPT,
		"go_no_go":               core.TaskGoNoGo,
		"gonogo":                 core.TaskGoNoGo,
		"go-no-go":               core.TaskGoNoGo,
		"n_back":                 core.TaskNBack,
		"nback":                  core.TaskNBack,
		"working_memory":         core.TaskNBack,
		"stroop":                 core.TaskStroop,
		"interference":           core.TaskStroop,
		"trail_making":           core.TaskTrailMaking,
		"trails":                 core.TaskTrailMaking,
		"trailmaking":            core.TaskTrailMaking,
		"reaction_time":          core.TaskReactionTime,
		"simple_rt":              core.TaskReactionTime,
		"simplert":               core.TaskReactionTime,
	}

	resolved := make(map[core.TaskKey]intake.RawTaskPayload)
	for name, payload := range tasks {
		key, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			n.logger.Warn("unrecognized task name %q, skipping", name)
			continue
		}
		if _, exists := resolved[key]; exists && string(key) != strings.ToLower(name) {
			continue // canonical spelling already claimed this slot
		}
		resolved[key] = payload
	}
	return resolved
}

// normalizeTask builds the canonical record for one present task
func (n *Normalizer) normalizeTask(key core.TaskKey, p intake.RawTaskPayload) intake.TaskRecord {
	rec := intake.AbsentTaskRecord(key)
	rec.Present = true

	rec.ReactionTimes = cleanSeries(coalesceSeries(p.ReactionTimes, p.RTs, p.ResponseTimes))
	rec.TotalTrials = coalesceInt(intake.DefaultTotalTrials, p.TotalTrials, p.TrialCount)
	if rec.TotalTrials <= 0 {
		n.logger.Warn("task %s: non-positive trial count, using default", key)
		rec.TotalTrials = intake.DefaultTotalTrials
	}

	rec.MeanRT = coalesceFloat(0, p.AverageRT, p.MeanRT)
	if !isUsable(rec.MeanRT) || rec.MeanRT <= 0 {
		if m := seriesMean(rec.ReactionTimes); m > 0 {
			rec.MeanRT = m
		} else {
			rec.MeanRT = intake.DefaultMeanRT
		}
	}

	rec.Accuracy = clampPercent(n.resolveAccuracy(key, p, rec.TotalTrials))
	rec.HitRate = clampPercent(coalesceFloat(rec.Accuracy, p.HitRate))

	rec.Omissions = coalesceInt(0, p.Omissions, p.OmissionErrors)
	rec.Commissions = coalesceInt(0, p.Commissions, p.CommissionErrors, p.FalseAlarms)
	rec.OmissionRate = clampPercent(rate(rec.Omissions, rec.TotalTrials, intake.DefaultOmissionRate))
	rec.CommissionRate = clampPercent(rate(rec.Commissions, rec.TotalTrials, intake.DefaultCommissionRate))

	rec.BaseLevel = coalesceInt(intake.DefaultBaseLevel, p.BaseLevel)
	rec.MaxLevel = coalesceInt(rec.BaseLevel, p.MaxLevel)
	if rec.MaxLevel < rec.BaseLevel {
		rec.MaxLevel = rec.BaseLevel
	}

	rec.CongruentRT = positiveOr(intake.DefaultCongruentRT, coalesceFloat(0, p.CongruentRT))
	rec.IncongruentRT = positiveOr(intake.DefaultIncongruentRT, coalesceFloat(0, p.IncongruentRT))
	rec.StroopEffect = coalesceFloat(rec.IncongruentRT-rec.CongruentRT, p.StroopEffect)

	rec.TrailATime = positiveOr(intake.DefaultTrailATime, coalesceFloat(0, p.TrailATime))
	rec.TrailBTime = positiveOr(intake.DefaultTrailBTime, coalesceFloat(0, p.TrailBTime))
	rec.SwitchCost = coalesceFloat(rec.TrailBTime-rec.TrailATime, p.SwitchCost)

	return rec
}

// resolveAccuracy coalesces the accuracy field variants, deriving from hit
// counts when no percentage field is present.
func (n *Normalizer) resolveAccuracy(key core.TaskKey, p intake.RawTaskPayload, trials int) float64 {
	acc := coalesceFloat(math.NaN(), p.Accuracy, p.PercentCorrect)
	if isUsable(acc) {
		// Oldest builds reported accuracy as a 0-1 fraction
		if acc <= 1.0 && acc > 0 {
			acc *= 100
		}
		return acc
	}
	if p.Hits != nil && trials > 0 {
		return 100 * float64(*p.Hits) / float64(trials)
	}
	n.logger.Warn("task %s: no accuracy field present, using default", key)
	return intake.DefaultAccuracy
}

// normalizeQuestionnaire builds the canonical self-report record
func (n *Normalizer) normalizeQuestionnaire(raw *intake.RawQuestionnaire) intake.Questionnaire {
	if raw == nil {
		return intake.DefaultQuestionnaire()
	}

	q := intake.Questionnaire{
		Completed:             true,
		InattentionScore:      coalesceFloat(0, raw.InattentionScore),
		HyperactivityScore:    coalesceFloat(0, raw.HyperactivityScore),
		InattentionSymptoms:   coalesceInt(0, raw.InattentionSymptoms),
		HyperactivitySymptoms: coalesceInt(0, raw.HyperactivitySymptoms),
		Presentation:          strings.TrimSpace(raw.Presentation),
		ImpairmentReported:    coalesceBool(raw.ImpairmentReported),
		CrossSetting:          coalesceBool(raw.CrossSetting),
		ChildhoodOnset:        coalesceBool(raw.ChildhoodOnset),
	}
	q.TotalSymptoms = q.InattentionSymptoms + q.HyperactivitySymptoms

	q.SeverityPercent = clampPercent(coalesceFloat(math.NaN(), raw.SeverityPercent))
	if !isUsable(q.SeverityPercent) {
		// 18 is the combined symptom item count on the questionnaire
		q.SeverityPercent = clampPercent(100 * float64(q.TotalSymptoms) / 18.0)
	}

	return q
}

func normalizeUser(raw *intake.RawUserContext) intake.UserContext {
	if raw == nil || raw.Age == nil || *raw.Age <= 0 {
		return intake.UserContext{Age: 0, AgeKnown: false}
	}
	return intake.UserContext{Age: *raw.Age, AgeKnown: true}
}

func normalizeValidity(raw *intake.RawDeviceMeta, completed int) intake.Validity {
	v := intake.Validity{
		Platform:       "unknown",
		InputMethod:    "unknown",
		TasksCompleted: completed,
		TasksExpected:  len(core.AllTaskKeys()),
	}
	if raw == nil {
		return v
	}
	if raw.Platform != "" {
		v.Platform = raw.Platform
	}
	if raw.InputMethod != "" {
		v.InputMethod = raw.InputMethod
	}
	v.Interrupted = coalesceBool(raw.Interrupted)
	if raw.DurationMinutes != nil && isUsable(*raw.DurationMinutes) {
		v.DurationMinutes = *raw.DurationMinutes
	}
	return v
}
