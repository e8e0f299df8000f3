package biomarkers

import "cogmetrics/domain/metrics"

// Tier names shared across biomarkers
const (
	TierUnavailable = "Unavailable"

	TierEfficient = "Efficient"
	TierNormal    = "Normal"
	TierHigh      = "High"
	TierSevere    = "Severe"

	TierStable   = "Stable"
	TierElevated = "Elevated"

	TierModerateDrain = "Moderate Drain"
	TierRapidDrain    = "Rapid Drain"
	TierSpeeding      = "Speeding"
)

// tierDef carries the wording attached to one tier of one biomarker. The
// interpretation strings and impact lists are data: adding a tier or changing
// phrasing never touches the formula code.
type tierDef struct {
	Tier           string
	IsStrength     bool
	Interpretation string
	Impacts        []string
}

// boundary is one entry of an ordered classification table: the first entry
// whose Match returns true wins.
type boundary struct {
	Match func(score float64) bool
	Def   tierDef
}

func classify(table []boundary, score float64) tierDef {
	for _, b := range table {
		if b.Match(score) {
			return b.Def
		}
	}
	// Tables end with a catch-all; this is unreachable with a complete table.
	return tierDef{Tier: TierUnavailable}
}

// ----------------------------------------------------------------------------
// IES: cognitive cost of correctness (ms per unit accuracy)
// ----------------------------------------------------------------------------

var iesTiers = []boundary{
	{func(s float64) bool { return s < 500 }, tierDef{
		Tier:           TierEfficient,
		IsStrength:     true,
		Interpretation: "Accuracy is achieved at low time cost. Correct responding is fast and does not look effortful.",
		Impacts: []string{
			"Keeps pace in fast-moving conversations and meetings",
			"Completes routine work without unusual time overhead",
		},
	}},
	{func(s float64) bool { return s <= 750 }, tierDef{
		Tier:           TierNormal,
		Interpretation: "The time cost of correct responding is in the typical range.",
		Impacts: []string{
			"Everyday task speed is unlikely to stand out either way",
		},
	}},
	{func(s float64) bool { return s <= 900 }, tierDef{
		Tier:           TierHigh,
		Interpretation: "Correct responses are bought with noticeably more time than typical. Accuracy may hold while throughput quietly suffers.",
		Impacts: []string{
			"Tasks take longer than their difficulty predicts",
			"Deadlines create disproportionate pressure",
			"Fatigue builds faster during sustained accurate work",
		},
	}},
	{func(s float64) bool { return true }, tierDef{
		Tier:           TierSevere,
		Interpretation: "The time cost of correctness is severely elevated: accuracy is maintained only through very slow, effortful responding.",
		Impacts: []string{
			"Substantial time overruns on routine cognitive work",
			"High daily effort cost even when output looks fine",
			"Strong tendency to avoid time-pressured situations",
		},
	}},
}

// ----------------------------------------------------------------------------
// MSSD: trial-to-trial volatility (micro-lapse index)
// ----------------------------------------------------------------------------

var mssdTiers = []boundary{
	{func(s float64) bool { return s < 150 }, tierDef{
		Tier:           TierStable,
		IsStrength:     true,
		Interpretation: "Responding is stable from one trial to the next; attention stays engaged without visible micro-lapses.",
		Impacts: []string{
			"Consistent quality across a work session",
			"Few 'where was I?' moments during sustained tasks",
		},
	}},
	{func(s float64) bool { return s <= 300 }, tierDef{
		Tier:           TierElevated,
		Interpretation: "Trial-to-trial timing swings are elevated, consistent with brief attentional disengagements several times a minute.",
		Impacts: []string{
			"Re-reading lines or re-hearing instructions",
			"Uneven output quality within a single sitting",
			"Small errors that disappear on double-checking",
		},
	}},
	{func(s float64) bool { return true }, tierDef{
		Tier:           TierSevere,
		Interpretation: "Successive responses differ severely in timing: attention is repeatedly dropping and re-engaging rather than holding.",
		Impacts: []string{
			"Frequent loss of place in reading and conversation",
			"Error bursts that cluster rather than spread evenly",
			"Large swings between good and bad task periods",
		},
	}},
}

// ----------------------------------------------------------------------------
// Fatigue slope: RT drift across trial order (ms per trial)
// ----------------------------------------------------------------------------

var fatigueTiers = []boundary{
	{func(s float64) bool { return s < -5 }, tierDef{
		Tier:           TierSpeeding,
		Interpretation: "Responses sped up substantially across the session. This can reflect warm-up, but when paired with rising errors it suggests loosening control rather than genuine gains.",
		Impacts: []string{
			"Late-session work may trade accuracy for speed",
		},
	}},
	{func(s float64) bool { return s <= 3 && s >= -3 }, tierDef{
		Tier:           TierStable,
		IsStrength:     true,
		Interpretation: "Response speed held steady across the session; no measurable fatigue drift.",
		Impacts: []string{
			"Sustained work blocks are well tolerated",
		},
	}},
	{func(s float64) bool { return s > 10 }, tierDef{
		Tier:           TierRapidDrain,
		Interpretation: "Response speed degraded rapidly with time on task. Cognitive stamina for this kind of sustained demand is limited.",
		Impacts: []string{
			"Strong start, steep drop-off within a single session",
			"Late-day work costs far more effort than morning work",
			"Long meetings and long documents are disproportionately hard",
		},
	}},
	{func(s float64) bool { return s > 3 }, tierDef{
		Tier:           TierModerateDrain,
		Interpretation: "Response speed drifted measurably slower across the session, a moderate fatigue effect.",
		Impacts: []string{
			"Performance is better early in a work block than late",
			"Breaks restore speed noticeably",
		},
	}},
	// Slopes between -5 and -3 are mild speed-up; treated as stable.
	{func(s float64) bool { return true }, tierDef{
		Tier:           TierStable,
		Interpretation: "Response speed held broadly steady across the session with a mild speed-up trend.",
		Impacts: []string{
			"Sustained work blocks are well tolerated",
		},
	}},
}

// ----------------------------------------------------------------------------
// Switching cost: trail B / trail A ratio
// ----------------------------------------------------------------------------

var switchingTiers = []boundary{
	{func(s float64) bool { return s < 2.0 }, tierDef{
		Tier:       TierEfficient,
		IsStrength: true,
		// Below-2.0 is explicitly a strength, not merely absence of concern.
		Interpretation: "Switching between rule sets costs little extra time - an efficient set-shifting result and a measured strength.",
		Impacts: []string{
			"Moves between different kinds of work without a settling-in tax",
			"Handles interruptions with quick recovery",
		},
	}},
	{func(s float64) bool { return s <= 2.5 }, tierDef{
		Tier:           TierElevated,
		Interpretation: "Switching contexts costs measurably more time than the baseline condition predicts.",
		Impacts: []string{
			"Interruptions carry a real re-entry cost",
			"Task-juggling days feel less productive than single-focus days",
		},
	}},
	{func(s float64) bool { return true }, tierDef{
		Tier:           TierSevere,
		Interpretation: "The cost of shifting between rule sets is severely elevated; each switch consumes a large fixed overhead.",
		Impacts: []string{
			"Frequent context switching collapses productivity",
			"Strong preference for finishing one thing before starting another",
			"Re-entry after interruption can take many minutes",
		},
	}},
}

func (d tierDef) apply(r metrics.BiomarkerResult) metrics.BiomarkerResult {
	r.Tier = d.Tier
	r.Interpretation = d.Interpretation
	r.Impacts = append([]string(nil), d.Impacts...)
	r.IsStrength = d.IsStrength
	return r
}
