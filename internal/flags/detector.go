package flags

import (
	"cogmetrics/domain/metrics"
)

// Threshold constants for the boolean behavioral flags. These mirror the
// validated cut points of the assessment battery.
const (
	inattentionScoreMax    = 55.0
	inattentionOmissionMin = 15.0

	impulsivityScoreMax = 55.0

	variabilityTauMin = 60.0
	variabilityCVMin  = 0.30

	compensationAccuracyMin = 85.0
	compensationRTMin       = 600.0

	hyperfocusAccuracyMin = 92.0
	hyperfocusCVMax       = 0.15
	hyperfocusScoreMin    = 80.0

	executiveScoreMax  = 50.0
	processingScoreMax = 45.0
)

// Inputs collects the figures the detector thresholds over. Everything is a
// plain value; the detector never reads shared state.
type Inputs struct {
	Domains         []metrics.DomainScore
	Timing          metrics.TimingStats
	Tau             metrics.TauResult
	OverallAccuracy float64
	OmissionRate    float64
}

// Detect evaluates every behavioral flag against its documented threshold
func Detect(in Inputs) metrics.FlagSet {
	scores := make(map[metrics.Domain]float64, len(in.Domains))
	for _, d := range in.Domains {
		scores[d.Domain] = d.Score
	}

	var f metrics.FlagSet

	f.Inattention = scores[metrics.DomainSustainedAttention] < inattentionScoreMax ||
		in.OmissionRate > inattentionOmissionMin

	f.Impulsivity = scores[metrics.DomainResponseInhibition] < impulsivityScoreMax

	f.Variability = in.Tau.Value > variabilityTauMin || in.Timing.RTCV > variabilityCVMin

	// High accuracy bought with slow or unstable responding reads as
	// effortful masking rather than clean performance.
	f.Compensation = in.OverallAccuracy > compensationAccuracyMin &&
		(in.Timing.MeanRT > compensationRTMin ||
			in.Tau.Value > variabilityTauMin ||
			in.Timing.RTCV > variabilityCVMin)

	f.Hyperfocus = in.OverallAccuracy > hyperfocusAccuracyMin &&
		in.Timing.RTCV < hyperfocusCVMax &&
		scores[metrics.DomainSustainedAttention] > hyperfocusScoreMin

	f.ExecutiveDysfunction = scores[metrics.DomainWorkingMemory] < executiveScoreMax &&
		scores[metrics.DomainCognitiveFlex] < executiveScoreMax

	f.ProcessingDeficit = scores[metrics.DomainProcessingSpeed] < processingScoreMax

	return f
}
