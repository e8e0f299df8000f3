package subtype

import (
	"strings"

	"cogmetrics/domain/intake"
	"cogmetrics/domain/metrics"
)

// hyperactiveEscalationCount is the symptom count at which a purely
// inattentive self-report label escalates to Combined.
const hyperactiveEscalationCount = 6

// Infer resolves a single presentation label. Resolution order: the
// questionnaire's self-reported label wins when present; a high hyperactivity
// symptom count can escalate a purely inattentive label to Combined but never
// downgrade it; without a questionnaire label a flag-conjunction heuristic
// decides.
func Infer(q intake.Questionnaire, flags metrics.FlagSet) metrics.SubtypeResult {
	if label, ok := parseLabel(q.Presentation); ok {
		if label == metrics.SubtypeInattentive && q.HyperactivitySymptoms >= hyperactiveEscalationCount {
			return metrics.SubtypeResult{
				Subtype:     metrics.SubtypeCombined,
				Source:      "escalated",
				Description: describe(metrics.SubtypeCombined),
			}
		}
		return metrics.SubtypeResult{
			Subtype:     label,
			Source:      "questionnaire",
			Description: describe(label),
		}
	}

	resolved := fromFlags(flags)
	return metrics.SubtypeResult{
		Subtype:     resolved,
		Source:      "cognitive_heuristic",
		Description: describe(resolved),
	}
}

// parseLabel maps self-reported presentation strings (several historical
// spellings) onto canonical subtypes.
func parseLabel(s string) (metrics.Subtype, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inattentive", "predominantly inattentive":
		return metrics.SubtypeInattentive, true
	case "hyperactive", "hyperactive-impulsive", "predominantly hyperactive-impulsive":
		return metrics.SubtypeHyperactive, true
	case "combined":
		return metrics.SubtypeCombined, true
	case "subthreshold":
		return metrics.SubtypeSubthreshold, true
	default:
		return "", false
	}
}

// fromFlags is the cognitive fallback when no self-report label exists
func fromFlags(f metrics.FlagSet) metrics.Subtype {
	attentional := f.Inattention || f.Variability
	switch {
	case f.Impulsivity && attentional:
		return metrics.SubtypeCombined
	case f.Impulsivity:
		return metrics.SubtypeHyperactive
	case attentional:
		return metrics.SubtypeInattentive
	default:
		return metrics.SubtypeSubthreshold
	}
}

func describe(s metrics.Subtype) string {
	switch s {
	case metrics.SubtypeInattentive:
		return "Difficulty sustaining and directing attention dominates the picture; restlessness and impulsive responding are comparatively minor."
	case metrics.SubtypeHyperactive:
		return "Impulsive responding and restlessness dominate the picture; attention regulation is comparatively preserved."
	case metrics.SubtypeCombined:
		return "Both attentional and impulsive-hyperactive features are present at meaningful levels."
	case metrics.SubtypeSubthreshold:
		return "Measured and reported features do not reach the threshold for any specific presentation pattern."
	default:
		return ""
	}
}
