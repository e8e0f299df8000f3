package scoring

import (
	"cogmetrics/domain/core"
	"cogmetrics/domain/intake"
	"cogmetrics/domain/metrics"
)

// Fixed formula weights. These reproduce the validated weighting ratios of
// the assessment battery and are not tuning knobs.
const (
	saHitWeight        = 0.6
	saCommissionWeight = 0.4

	riCommissionWeight = 0.7
	riAccuracyWeight   = 0.3

	wmLevelBonus = 0.05 // extra 5% per level above base

	icEffectWeight   = 0.6
	icAccuracyWeight = 0.4
	icEffectDivisor  = 10.0 // ms of stroop effect per penalty point

	cfSwitchTimeWeight = 0.5 // per second of trail B time
	cfSwitchCostWeight = 0.3 // per second of switch cost

	psFastRT = 400.0  // ms mapped to 100
	psSlowRT = 1100.0 // ms mapped to 0
)

// ComputeDomains derives the six 0-100 domain scores from a normalized
// battery. Each score passes through the shared safe-score guard.
func ComputeDomains(battery *intake.Battery) []metrics.DomainScore {
	return []metrics.DomainScore{
		sustainedAttention(battery.Task(core.TaskCPT)),
		responseInhibition(battery.Task(core.TaskGoNoGo)),
		workingMemory(battery.Task(core.TaskNBack)),
		interferenceControl(battery.Task(core.TaskStroop)),
		cognitiveFlexibility(battery.Task(core.TaskTrailMaking)),
		processingSpeed(battery.Task(core.TaskReactionTime)),
	}
}

func sustainedAttention(rec intake.TaskRecord) metrics.DomainScore {
	score := SafeScore(saHitWeight*rec.HitRate + saCommissionWeight*(100-rec.CommissionRate))
	return domainScore(metrics.DomainSustainedAttention, score, rec.Present,
		"Ability to maintain focus on a repetitive target-detection task over time.")
}

func responseInhibition(rec intake.TaskRecord) metrics.DomainScore {
	score := SafeScore(riCommissionWeight*(100-rec.CommissionRate) + riAccuracyWeight*rec.Accuracy)
	return domainScore(metrics.DomainResponseInhibition, score, rec.Present,
		"Ability to withhold a prepotent response when a stop signal appears.")
}

func workingMemory(rec intake.TaskRecord) metrics.DomainScore {
	levelBonus := 1 + wmLevelBonus*float64(rec.MaxLevel-rec.BaseLevel)
	score := SafeScore(rec.Accuracy * levelBonus)
	return domainScore(metrics.DomainWorkingMemory, score, rec.Present,
		"Capacity to hold and update information across successive trials.")
}

func interferenceControl(rec intake.TaskRecord) metrics.DomainScore {
	effectPenalty := ClampFloor0(rec.StroopEffect / icEffectDivisor)
	score := SafeScore(icEffectWeight*SafeScore(100-effectPenalty) + icAccuracyWeight*rec.Accuracy)
	return domainScore(metrics.DomainInterferenceControl, score, rec.Present,
		"Ability to suppress an automatic reading response in favor of a controlled one.")
}

func cognitiveFlexibility(rec intake.TaskRecord) metrics.DomainScore {
	switchSeconds := ClampFloor0(rec.TrailBTime / 1000)
	costSeconds := ClampFloor0(rec.SwitchCost / 1000)
	score := SafeScore(100 - (cfSwitchTimeWeight*switchSeconds + cfSwitchCostWeight*costSeconds))
	return domainScore(metrics.DomainCognitiveFlex, score, rec.Present,
		"Ability to shift between rule sets without losing speed or accuracy.")
}

func processingSpeed(rec intake.TaskRecord) metrics.DomainScore {
	// Linear map: faster than psFastRT scores 100, slower than psSlowRT scores 0
	score := SafeScore(100 * (psSlowRT - rec.MeanRT) / (psSlowRT - psFastRT))
	return domainScore(metrics.DomainProcessingSpeed, score, rec.Present,
		"Speed of simple stimulus detection and motor response.")
}

func domainScore(d metrics.Domain, score float64, present bool, description string) metrics.DomainScore {
	return metrics.DomainScore{
		Domain:      d,
		Score:       score,
		Label:       ScoreLabel(score),
		Description: description,
		DataPresent: present,
	}
}

// OverallAccuracy averages accuracy across present tasks; defaults apply when
// nothing was recorded so the pooled figure stays usable.
func OverallAccuracy(battery *intake.Battery) float64 {
	sum, count := 0.0, 0
	for _, key := range core.AllTaskKeys() {
		rec := battery.Task(key)
		if rec.Present {
			sum += rec.Accuracy
			count++
		}
	}
	if count == 0 {
		return intake.DefaultAccuracy
	}
	return SafeScore(sum / float64(count))
}

// PooledErrorRates averages omission and commission rates across present tasks
func PooledErrorRates(battery *intake.Battery) (omission, commission float64) {
	omSum, comSum, count := 0.0, 0.0, 0
	for _, key := range core.AllTaskKeys() {
		rec := battery.Task(key)
		if rec.Present {
			omSum += rec.OmissionRate
			comSum += rec.CommissionRate
			count++
		}
	}
	if count == 0 {
		return intake.DefaultOmissionRate, intake.DefaultCommissionRate
	}
	return omSum / float64(count), comSum / float64(count)
}
