package metrics

// ============================================================================
// STABLE PRIMITIVES (Canonical, never change)
// ============================================================================

// Domain identifies one of the six measured cognitive domains
type Domain string

const (
	DomainSustainedAttention  Domain = "sustained_attention"
	DomainResponseInhibition  Domain = "response_inhibition"
	DomainWorkingMemory       Domain = "working_memory"
	DomainInterferenceControl Domain = "interference_control"
	DomainCognitiveFlex       Domain = "cognitive_flexibility"
	DomainProcessingSpeed     Domain = "processing_speed"
)

// AllDomains returns the six domains in canonical report order
func AllDomains() []Domain {
	return []Domain{
		DomainSustainedAttention,
		DomainResponseInhibition,
		DomainWorkingMemory,
		DomainInterferenceControl,
		DomainCognitiveFlex,
		DomainProcessingSpeed,
	}
}

// DomainScore is a normalized 0-100 ability measure for one domain
// INVARIANTS:
// - Score always within [0, 100]
// - Label always one of the severity labels below
type DomainScore struct {
	Domain      Domain  `json:"domain"`
	Score       float64 `json:"score"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	DataPresent bool    `json:"data_present"` // false when built from defaults
}

// Severity labels for domain scores
const (
	LabelStrong   = "Strong"
	LabelTypical  = "Typical"
	LabelBelow    = "Below Typical"
	LabelImpaired = "Markedly Below Typical"
)

// TimingStats summarizes the pooled trial-level reaction-time series
type TimingStats struct {
	MeanRT     float64 `json:"mean_rt"`
	RTSD       float64 `json:"rt_sd"`
	RTCV       float64 `json:"rt_cv"` // coefficient of variation
	SampleSize int     `json:"sample_size"`
}

// ============================================================================
// COMPOSITE INDICES
// ============================================================================

// TauBand classifies the attention-lapse proxy
type TauBand string

const (
	TauNormal     TauBand = "NORMAL"
	TauBorderline TauBand = "BORDERLINE"
	TauElevated   TauBand = "ELEVATED"
	TauSevere     TauBand = "SEVERE"
)

// TauResult is the attention-lapse proxy derived from RT spread
type TauResult struct {
	Value float64 `json:"value"` // ms, ~0.8 x RT_SD
	Band  TauBand `json:"band"`
}

// MCIndex measures focus consistency as a weighted blend of four components
type MCIndex struct {
	Value             float64 `json:"value"` // 0-100
	RTConsistency     float64 `json:"rt_consistency"`
	AccuracyStability float64 `json:"accuracy_stability"`
	CommissionControl float64 `json:"commission_control"`
	OmissionControl   float64 `json:"omission_control"`
}

// CPIResult estimates the cost of coordinating two cognitive subsystems
type CPIResult struct {
	Value               float64 `json:"value"` // 0-100
	WorkingMemory       float64 `json:"working_memory"`
	ResponseInhibition  float64 `json:"response_inhibition"`
	InterferencePenalty float64 `json:"interference_penalty"`
}

// ALSCategory is the five-tier band for the overall likelihood index
type ALSCategory string

const (
	ALSTypical     ALSCategory = "TYPICAL"
	ALSMild        ALSCategory = "MILD"
	ALSModerate    ALSCategory = "MODERATE"
	ALSSignificant ALSCategory = "SIGNIFICANT"
	ALSSevere      ALSCategory = "SEVERE"
)

// FloorRule names which DSM-style floor raised the ALS, if any
type FloorRule string

const (
	FloorNone     FloorRule = ""
	FloorSevere   FloorRule = "severe_self_report"   // raises to 65
	FloorModerate FloorRule = "moderate_self_report" // raises to 55
	FloorMild     FloorRule = "mild_self_report"     // raises to 45
)

// ALSResult is the overall 1-99 likelihood index with its audit trail.
// INVARIANTS:
// - Value always within [1, 99]
// - Floor rules only ever raise the value
type ALSResult struct {
	Value                 float64     `json:"value"`
	PerformanceBase       float64     `json:"performance_base"`
	CompensationPenalty   float64     `json:"compensation_penalty"`
	QuestionnaireModifier float64     `json:"questionnaire_modifier"`
	FloorApplied          FloorRule   `json:"floor_applied,omitempty"`
	Category              ALSCategory `json:"category"`
}

// CompositeSet groups the four cross-domain indices
type CompositeSet struct {
	Tau TauResult `json:"tau"`
	MC  MCIndex   `json:"mc"`
	CPI CPIResult `json:"cpi"`
	ALS ALSResult `json:"als"`
}

// ============================================================================
// FLAGS, PATTERNS, BIOMARKERS
// ============================================================================

// FlagSet holds one boolean per named behavioral pattern
type FlagSet struct {
	Inattention          bool `json:"inattention"`
	Impulsivity          bool `json:"impulsivity"`
	Variability          bool `json:"variability"`
	Compensation         bool `json:"compensation"`
	Hyperfocus           bool `json:"hyperfocus"`
	ExecutiveDysfunction bool `json:"executive_dysfunction"`
	ProcessingDeficit    bool `json:"processing_deficit"`
}

// Any reports whether at least one flag fired
func (f FlagSet) Any() bool {
	return f.Inattention || f.Impulsivity || f.Variability || f.Compensation ||
		f.Hyperfocus || f.ExecutiveDysfunction || f.ProcessingDeficit
}

// Confidence tiers for pattern detection
const (
	ConfidenceHigh     = "high"
	ConfidenceModerate = "moderate"
	ConfidenceLow      = "low"
)

// PatternLabel is a detected named clinical pattern
type PatternLabel struct {
	Label       string   `json:"label"`
	Criteria    []string `json:"criteria"`
	Confidence  string   `json:"confidence"`
	Description string   `json:"description"`
}

// BiomarkerName identifies one of the four functional biomarkers
type BiomarkerName string

const (
	BiomarkerIES       BiomarkerName = "inverse_efficiency"
	BiomarkerMSSD      BiomarkerName = "micro_lapse"
	BiomarkerFatigue   BiomarkerName = "fatigue_slope"
	BiomarkerSwitching BiomarkerName = "switching_cost"
)

// BiomarkerResult is one functional biomarker's outcome.
// When Available is false the Score is a placeholder, never a computed value.
type BiomarkerResult struct {
	Name           BiomarkerName      `json:"name"`
	Available      bool               `json:"available"`
	Score          float64            `json:"score"`
	Tier           string             `json:"tier"`
	Interpretation string             `json:"interpretation"`
	Impacts        []string           `json:"impacts"`
	IsStrength     bool               `json:"is_strength"`
	SampleSize     int                `json:"sample_size"`
	Components     map[string]float64 `json:"components,omitempty"`
}

// BiomarkerSet groups the four biomarkers in canonical order
type BiomarkerSet struct {
	IES       BiomarkerResult `json:"ies"`
	MSSD      BiomarkerResult `json:"mssd"`
	Fatigue   BiomarkerResult `json:"fatigue"`
	Switching BiomarkerResult `json:"switching"`
}

// All returns the biomarkers in canonical report order
func (b BiomarkerSet) All() []BiomarkerResult {
	return []BiomarkerResult{b.IES, b.MSSD, b.Fatigue, b.Switching}
}

// ============================================================================
// SUBTYPE
// ============================================================================

// Subtype is the resolved presentation label
type Subtype string

const (
	SubtypeInattentive  Subtype = "Inattentive"
	SubtypeHyperactive  Subtype = "Hyperactive-Impulsive"
	SubtypeCombined     Subtype = "Combined"
	SubtypeSubthreshold Subtype = "Subthreshold"
)

// SubtypeResult carries the resolved label plus how it was resolved
type SubtypeResult struct {
	Subtype     Subtype `json:"subtype"`
	Source      string  `json:"source"` // "questionnaire", "escalated", "cognitive_heuristic"
	Description string  `json:"description"`
}

// ============================================================================
// AGGREGATE
// ============================================================================

// Metrics is the complete computed output of the scoring pipeline for one
// battery: everything the narrative composer needs, and nothing mutable.
type Metrics struct {
	Domains    []DomainScore  `json:"domains"`
	Timing     TimingStats    `json:"timing"`
	Composites CompositeSet   `json:"composites"`
	Flags      FlagSet        `json:"flags"`
	Patterns   []PatternLabel `json:"patterns"`
	Biomarkers BiomarkerSet   `json:"biomarkers"`
	Subtype    SubtypeResult  `json:"subtype"`

	// Raw pooled figures the flags and composer reference directly
	OverallAccuracy float64 `json:"overall_accuracy"`
	OmissionRate    float64 `json:"omission_rate"`
	CommissionRate  float64 `json:"commission_rate"`
}

// DomainScore returns the score for a domain, or a neutral typical score if
// the domain is somehow missing from the slice.
func (m *Metrics) DomainScore(d Domain) DomainScore {
	for _, ds := range m.Domains {
		if ds.Domain == d {
			return ds
		}
	}
	return DomainScore{Domain: d, Score: 50, Label: LabelTypical}
}
