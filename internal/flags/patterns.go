package flags

import (
	"cogmetrics/domain/metrics"
)

// patternRule defines one named clinical pattern as a conjunction of flag and
// score conditions. Rules are evaluated independently; several may fire.
type patternRule struct {
	label       string
	confidence  string
	description string
	criteria    []string
	match       func(in Inputs, f metrics.FlagSet) bool
}

// patternRules is the fixed pattern catalog. Order is report order, not
// precedence; detection is independent per rule.
var patternRules = []patternRule{
	{
		label:       "Compensated High-Performer",
		confidence:  metrics.ConfidenceHigh,
		description: "Accuracy is preserved at the cost of slowed, effortful responding. This profile often masks attentional difficulty in structured settings and surfaces as exhaustion afterward.",
		criteria:    []string{"compensation flag", "overall accuracy above 85%", "elevated response cost (speed or variability)"},
		match: func(in Inputs, f metrics.FlagSet) bool {
			return f.Compensation
		},
	},
	{
		label:       "Executive Dysfunction Profile",
		confidence:  metrics.ConfidenceHigh,
		description: "Working memory and cognitive flexibility are both markedly reduced, a combination associated with difficulty planning, sequencing, and shifting between tasks.",
		criteria:    []string{"working memory below 50", "cognitive flexibility below 50"},
		match: func(in Inputs, f metrics.FlagSet) bool {
			return f.ExecutiveDysfunction
		},
	},
	{
		label:       "Variable Attention Profile",
		confidence:  metrics.ConfidenceModerate,
		description: "Trial-to-trial responding is unstable, with lapse-range slow responses interleaved with normal ones. Output quality will fluctuate more than ability predicts.",
		criteria:    []string{"variability flag", "inattention flag"},
		match: func(in Inputs, f metrics.FlagSet) bool {
			return f.Variability && f.Inattention
		},
	},
	{
		label:       "Impulsive Responder",
		confidence:  metrics.ConfidenceModerate,
		description: "Commission errors dominate the error profile: responses are released before evaluation completes. Speed is typically intact or fast.",
		criteria:    []string{"impulsivity flag", "processing speed not reduced"},
		match: func(in Inputs, f metrics.FlagSet) bool {
			return f.Impulsivity && !f.ProcessingDeficit
		},
	},
	{
		label:       "Hyperfocus Tendency",
		confidence:  metrics.ConfidenceLow,
		description: "Unusually locked-in performance on engaging structured tasks. This can coexist with difficulty deploying attention on demand elsewhere.",
		criteria:    []string{"hyperfocus flag"},
		match: func(in Inputs, f metrics.FlagSet) bool {
			return f.Hyperfocus
		},
	},
	{
		label:       "Slowed Processing Profile",
		confidence:  metrics.ConfidenceModerate,
		description: "Simple response speed is reduced across tasks independent of accuracy, which inflates time costs on everything downstream.",
		criteria:    []string{"processing deficit flag"},
		match: func(in Inputs, f metrics.FlagSet) bool {
			return f.ProcessingDeficit
		},
	},
}

// typicalProfile is the fallback emitted when no pattern fires - the detector
// never returns an empty list.
var typicalProfile = metrics.PatternLabel{
	Label:       "Typical Profile",
	Confidence:  metrics.ConfidenceModerate,
	Description: "No named behavioral pattern reached its detection threshold; measured performance sits within the typical range on the patterns this battery screens for.",
	Criteria:    []string{"no pattern threshold reached"},
}

// DetectPatterns evaluates the pattern catalog against the computed inputs.
// Zero matches yield the typical-profile fallback.
func DetectPatterns(in Inputs, f metrics.FlagSet) []metrics.PatternLabel {
	var detected []metrics.PatternLabel
	for _, rule := range patternRules {
		if rule.match(in, f) {
			detected = append(detected, metrics.PatternLabel{
				Label:       rule.label,
				Confidence:  rule.confidence,
				Description: rule.description,
				Criteria:    append([]string(nil), rule.criteria...),
			})
		}
	}
	if len(detected) == 0 {
		return []metrics.PatternLabel{typicalProfile}
	}
	return detected
}
