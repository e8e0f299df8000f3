package metrics

// Snapshot is the flat view of every computed score, flag, and biomarker.
// Downstream tabular consumers (spreadsheet export, dashboards) read this
// instead of walking the nested Metrics structure.
type Snapshot struct {
	// Domain scores
	SustainedAttention  float64 `json:"sustained_attention"`
	ResponseInhibition  float64 `json:"response_inhibition"`
	WorkingMemory       float64 `json:"working_memory"`
	InterferenceControl float64 `json:"interference_control"`
	CognitiveFlex       float64 `json:"cognitive_flexibility"`
	ProcessingSpeed     float64 `json:"processing_speed"`

	// Timing
	MeanRT     float64 `json:"mean_rt"`
	RTSD       float64 `json:"rt_sd"`
	RTCV       float64 `json:"rt_cv"`
	SampleSize int     `json:"sample_size"`

	// Composites
	Tau         float64 `json:"tau"`
	TauBand     string  `json:"tau_band"`
	MC          float64 `json:"mc"`
	CPI         float64 `json:"cpi"`
	ALS         float64 `json:"als"`
	ALSCategory string  `json:"als_category"`
	ALSFloor    string  `json:"als_floor,omitempty"`

	// Flags
	Inattention          bool `json:"inattention"`
	Impulsivity          bool `json:"impulsivity"`
	Variability          bool `json:"variability"`
	Compensation         bool `json:"compensation"`
	Hyperfocus           bool `json:"hyperfocus"`
	ExecutiveDysfunction bool `json:"executive_dysfunction"`
	ProcessingDeficit    bool `json:"processing_deficit"`

	// Patterns and subtype
	Patterns []string `json:"patterns"`
	Subtype  string   `json:"subtype"`

	// Biomarkers (zero score when unavailable)
	IES                float64 `json:"ies"`
	IESAvailable       bool    `json:"ies_available"`
	IESTier            string  `json:"ies_tier"`
	MSSD               float64 `json:"mssd"`
	MSSDAvailable      bool    `json:"mssd_available"`
	MSSDTier           string  `json:"mssd_tier"`
	FatigueSlope       float64 `json:"fatigue_slope"`
	FatigueAvailable   bool    `json:"fatigue_available"`
	FatigueTier        string  `json:"fatigue_tier"`
	SwitchingCost      float64 `json:"switching_cost"`
	SwitchingAvailable bool    `json:"switching_available"`
	SwitchingTier      string  `json:"switching_tier"`

	// Raw pooled figures
	OverallAccuracy float64 `json:"overall_accuracy"`
	OmissionRate    float64 `json:"omission_rate"`
	CommissionRate  float64 `json:"commission_rate"`
}

// ToSnapshot flattens the nested metrics into the tabular view
func (m *Metrics) ToSnapshot() Snapshot {
	patterns := make([]string, 0, len(m.Patterns))
	for _, p := range m.Patterns {
		patterns = append(patterns, p.Label)
	}

	return Snapshot{
		SustainedAttention:  m.DomainScore(DomainSustainedAttention).Score,
		ResponseInhibition:  m.DomainScore(DomainResponseInhibition).Score,
		WorkingMemory:       m.DomainScore(DomainWorkingMemory).Score,
		InterferenceControl: m.DomainScore(DomainInterferenceControl).Score,
		CognitiveFlex:       m.DomainScore(DomainCognitiveFlex).Score,
		ProcessingSpeed:     m.DomainScore(DomainProcessingSpeed).Score,

		MeanRT:     m.Timing.MeanRT,
		RTSD:       m.Timing.RTSD,
		RTCV:       m.Timing.RTCV,
		SampleSize: m.Timing.SampleSize,

		Tau:         m.Composites.Tau.Value,
		TauBand:     string(m.Composites.Tau.Band),
		MC:          m.Composites.MC.Value,
		CPI:         m.Composites.CPI.Value,
		ALS:         m.Composites.ALS.Value,
		ALSCategory: string(m.Composites.ALS.Category),
		ALSFloor:    string(m.Composites.ALS.FloorApplied),

		Inattention:          m.Flags.Inattention,
		Impulsivity:          m.Flags.Impulsivity,
		Variability:          m.Flags.Variability,
		Compensation:         m.Flags.Compensation,
		Hyperfocus:           m.Flags.Hyperfocus,
		ExecutiveDysfunction: m.Flags.ExecutiveDysfunction,
		ProcessingDeficit:    m.Flags.ProcessingDeficit,

		Patterns: patterns,
		Subtype:  string(m.Subtype.Subtype),

		IES:                m.Biomarkers.IES.Score,
		IESAvailable:       m.Biomarkers.IES.Available,
		IESTier:            m.Biomarkers.IES.Tier,
		MSSD:               m.Biomarkers.MSSD.Score,
		MSSDAvailable:      m.Biomarkers.MSSD.Available,
		MSSDTier:           m.Biomarkers.MSSD.Tier,
		FatigueSlope:       m.Biomarkers.Fatigue.Score,
		FatigueAvailable:   m.Biomarkers.Fatigue.Available,
		FatigueTier:        m.Biomarkers.Fatigue.Tier,
		SwitchingCost:      m.Biomarkers.Switching.Score,
		SwitchingAvailable: m.Biomarkers.Switching.Available,
		SwitchingTier:      m.Biomarkers.Switching.Tier,

		OverallAccuracy: m.OverallAccuracy,
		OmissionRate:    m.OmissionRate,
		CommissionRate:  m.CommissionRate,
	}
}
