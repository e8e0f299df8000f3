package scoring

import (
	"math"

	"github.com/montanaflynn/stats"

	"cogmetrics/domain/core"
	"cogmetrics/domain/intake"
	"cogmetrics/domain/metrics"
)

// Tau approximation and band boundaries (ms)
const (
	tauSDFactor      = 0.8
	tauNormalMax     = 40.0
	tauBorderlineMax = 60.0
	tauElevatedMax   = 100.0
)

// MC component weights
const (
	mcRTWeight         = 0.35
	mcAccuracyWeight   = 0.25
	mcCommissionWeight = 0.20
	mcOmissionWeight   = 0.20

	// CV at or beyond this value maps to zero RT-consistency
	mcCVCeiling = 0.6
)

// CPI fixed interference penalty
const cpiInterferencePenalty = 7.5

// ALS weighting, modifiers, and floors
const (
	alsCompensationPenalty = 8.0

	// Questionnaire symptom-endorsement modifier tiers
	alsSymptomTier1Count = 4
	alsSymptomTier2Count = 6
	alsSymptomTier3Count = 9
	alsSymptomTier4Count = 12
	alsSymptomTier1Bonus = 2.0
	alsSymptomTier2Bonus = 5.0
	alsSymptomTier3Bonus = 10.0
	alsSymptomTier4Bonus = 15.0

	// DSM-style floor thresholds. Externally validated constants; do not
	// re-derive.
	alsFloorSevereMin       = 65.0
	alsFloorModerateMin     = 55.0
	alsFloorMildMin         = 45.0
	alsSeverityHighPercent  = 75.0
	alsSeverityLowerPercent = 60.0
	alsCriterionSymptoms    = 6 // DSM symptom-count criterion per dimension
)

// ALS domain weights for the performance composite
var alsDomainWeights = map[metrics.Domain]float64{
	metrics.DomainSustainedAttention:  0.25,
	metrics.DomainResponseInhibition:  0.20,
	metrics.DomainWorkingMemory:       0.20,
	metrics.DomainInterferenceControl: 0.15,
	metrics.DomainCognitiveFlex:       0.10,
	metrics.DomainProcessingSpeed:     0.10,
}

// ComputeTau approximates the ex-Gaussian lapse parameter from RT spread
func ComputeTau(timing metrics.TimingStats) metrics.TauResult {
	value := ClampFloor0(tauSDFactor * timing.RTSD)
	return metrics.TauResult{Value: value, Band: tauBand(value)}
}

func tauBand(value float64) metrics.TauBand {
	switch {
	case value <= tauNormalMax:
		return metrics.TauNormal
	case value <= tauBorderlineMax:
		return metrics.TauBorderline
	case value <= tauElevatedMax:
		return metrics.TauElevated
	default:
		return metrics.TauSevere
	}
}

// ComputeMC blends four stability components into the focus-consistency index
func ComputeMC(battery *intake.Battery, timing metrics.TimingStats) metrics.MCIndex {
	rtConsistency := SafeScore(100 * (1 - math.Min(timing.RTCV, mcCVCeiling)/mcCVCeiling))
	accuracyStability := accuracyStability(battery)

	omission, commission := PooledErrorRates(battery)
	commissionControl := SafeScore(100 - 2*commission)
	omissionControl := SafeScore(100 - 2*omission)

	value := SafeScore(mcRTWeight*rtConsistency +
		mcAccuracyWeight*accuracyStability +
		mcCommissionWeight*commissionControl +
		mcOmissionWeight*omissionControl)

	return metrics.MCIndex{
		Value:             value,
		RTConsistency:     rtConsistency,
		AccuracyStability: accuracyStability,
		CommissionControl: commissionControl,
		OmissionControl:   omissionControl,
	}
}

// accuracyStability scores how evenly accuracy held up across tasks: the
// spread of per-task accuracies is penalized, not their level.
func accuracyStability(battery *intake.Battery) float64 {
	var accuracies []float64
	for _, key := range core.AllTaskKeys() {
		rec := battery.Task(key)
		if rec.Present {
			accuracies = append(accuracies, rec.Accuracy)
		}
	}
	if len(accuracies) < 2 {
		return SafeScore(OverallAccuracy(battery))
	}
	sd, err := stats.StandardDeviation(accuracies)
	if err != nil {
		return NeutralScore
	}
	return SafeScore(100 - 3*sd)
}

// ComputeCPI pairs working memory with response inhibition minus the fixed
// coordination penalty
func ComputeCPI(domains []metrics.DomainScore) metrics.CPIResult {
	var wm, ri float64 = NeutralScore, NeutralScore
	for _, d := range domains {
		switch d.Domain {
		case metrics.DomainWorkingMemory:
			wm = d.Score
		case metrics.DomainResponseInhibition:
			ri = d.Score
		}
	}
	value := SafeScore((wm+ri)/2 - cpiInterferencePenalty)
	return metrics.CPIResult{
		Value:               value,
		WorkingMemory:       wm,
		ResponseInhibition:  ri,
		InterferencePenalty: cpiInterferencePenalty,
	}
}

// ComputeALS derives the overall 1-99 likelihood index. Floor rules only ever
// raise the value; the final result is clamped to [1, 99].
func ComputeALS(domains []metrics.DomainScore, q intake.Questionnaire, compensation bool) metrics.ALSResult {
	performance := 0.0
	for _, d := range domains {
		performance += alsDomainWeights[d.Domain] * d.Score
	}
	base := SafeScore(100 - performance)

	result := metrics.ALSResult{PerformanceBase: base}
	value := base

	if compensation {
		result.CompensationPenalty = alsCompensationPenalty
		value += alsCompensationPenalty
	}

	result.QuestionnaireModifier = questionnaireModifier(q)
	value += result.QuestionnaireModifier

	value, result.FloorApplied = applyFloors(value, q)

	// Hard bound after all modifiers
	if value < 1 {
		value = 1
	}
	if value > 99 {
		value = 99
	}
	result.Value = value
	result.Category = alsCategory(value)
	return result
}

func questionnaireModifier(q intake.Questionnaire) float64 {
	if !q.Completed {
		return 0
	}
	switch {
	case q.TotalSymptoms >= alsSymptomTier4Count:
		return alsSymptomTier4Bonus
	case q.TotalSymptoms >= alsSymptomTier3Count:
		return alsSymptomTier3Bonus
	case q.TotalSymptoms >= alsSymptomTier2Count:
		return alsSymptomTier2Bonus
	case q.TotalSymptoms >= alsSymptomTier1Count:
		return alsSymptomTier1Bonus
	default:
		return 0
	}
}

// applyFloors raises the ALS to a fixed minimum when the self-report jointly
// exceeds documented thresholds. First matching rule wins; a floor below the
// current value changes nothing.
func applyFloors(value float64, q intake.Questionnaire) (float64, metrics.FloorRule) {
	if !q.Completed {
		return value, metrics.FloorNone
	}

	combinedSelfReport := q.Presentation == string(metrics.SubtypeCombined) ||
		(q.InattentionSymptoms >= alsCriterionSymptoms && q.HyperactivitySymptoms >= alsCriterionSymptoms)

	switch {
	case q.SeverityPercent >= alsSeverityHighPercent && q.ImpairmentReported && combinedSelfReport:
		if value < alsFloorSevereMin {
			return alsFloorSevereMin, metrics.FloorSevere
		}
	case q.SeverityPercent >= alsSeverityLowerPercent && q.ImpairmentReported && q.Presentation != "":
		if value < alsFloorModerateMin {
			return alsFloorModerateMin, metrics.FloorModerate
		}
	case q.SeverityPercent >= alsSeverityLowerPercent && (q.ImpairmentReported || q.CrossSetting):
		if value < alsFloorMildMin {
			return alsFloorMildMin, metrics.FloorMild
		}
	}
	return value, metrics.FloorNone
}

func alsCategory(value float64) metrics.ALSCategory {
	switch {
	case value < 20:
		return metrics.ALSTypical
	case value < 40:
		return metrics.ALSMild
	case value < 60:
		return metrics.ALSModerate
	case value < 80:
		return metrics.ALSSignificant
	default:
		return metrics.ALSSevere
	}
}
