package testkit

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"cogmetrics/domain/core"
	"cogmetrics/domain/intake"
)

// GeneratorConfig configures the synthetic assessment generator. Every knob
// has a deterministic effect: the same config always yields the same input.
type GeneratorConfig struct {
	Seed          int64   `json:"seed"`
	MeanRT        float64 `json:"mean_rt"`         // ms
	RTSpread      float64 `json:"rt_spread"`       // SD of the RT distribution, ms
	LapseRate     float64 `json:"lapse_rate"`      // probability of a slow-tail trial
	Accuracy      float64 `json:"accuracy"`        // percent correct per task
	CommissionPct float64 `json:"commission_pct"`  // percent commission errors
	OmissionPct   float64 `json:"omission_pct"`    // percent omission errors
	FatigueSlope  float64 `json:"fatigue_slope"`   // ms added per trial
	TrialsPerTask int     `json:"trials_per_task"` // trial count per timed task
	SwitchRatio   float64 `json:"switch_ratio"`    // trail B time / trail A time
	Symptoms      int     `json:"symptoms"`        // total questionnaire endorsements, 0-18
	Presentation  string  `json:"presentation"`
	Impairment    bool    `json:"impairment"`
}

// TypicalConfig returns a profile with unremarkable performance
func TypicalConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:          42,
		MeanRT:        480,
		RTSpread:      60,
		LapseRate:     0.02,
		Accuracy:      93,
		CommissionPct: 4,
		OmissionPct:   3,
		FatigueSlope:  0,
		TrialsPerTask: 40,
		SwitchRatio:   1.6,
		Symptoms:      2,
	}
}

// InattentiveConfig returns a profile with lapse-heavy, variable responding
func InattentiveConfig() GeneratorConfig {
	cfg := TypicalConfig()
	cfg.Seed = 1337
	cfg.MeanRT = 640
	cfg.RTSpread = 160
	cfg.LapseRate = 0.18
	cfg.Accuracy = 74
	cfg.OmissionPct = 19
	cfg.FatigueSlope = 1.2
	cfg.SwitchRatio = 2.4
	cfg.Symptoms = 11
	cfg.Presentation = "inattentive"
	cfg.Impairment = true
	return cfg
}

// CompensatedConfig returns a high-accuracy, high-cost profile
func CompensatedConfig() GeneratorConfig {
	cfg := TypicalConfig()
	cfg.Seed = 7
	cfg.MeanRT = 720
	cfg.RTSpread = 140
	cfg.LapseRate = 0.10
	cfg.Accuracy = 91
	cfg.Symptoms = 9
	cfg.Impairment = true
	return cfg
}

// Generator produces deterministic synthetic raw assessment submissions
type Generator struct {
	cfg GeneratorConfig
	rng *rand.Rand
}

// NewGenerator creates a generator seeded from the config
func NewGenerator(cfg GeneratorConfig) *Generator {
	if cfg.TrialsPerTask <= 0 {
		cfg.TrialsPerTask = 40
	}
	return &Generator{cfg: cfg, rng: rand.New(rand.NewSource(cfg.Seed))}
}

// Generate builds a complete raw submission covering every battery task
func (g *Generator) Generate(sessionID, subjectID string) *intake.RawAssessmentInput {
	raw := &intake.RawAssessmentInput{
		SessionID: sessionID,
		SubjectID: subjectID,
		Tasks: map[string]intake.RawTaskPayload{
			"cpt":           g.timedTask(),
			"go_no_go":      g.timedTask(),
			"n_back":        g.nbackTask(),
			"stroop":        g.stroopTask(),
			"trail_making":  g.trailsTask(),
			"reaction_time": g.timedTask(),
		},
		CompletedAt: core.NewTimestamp(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)),
	}

	raw.Questionnaire = g.questionnaire()
	raw.Device = &intake.RawDeviceMeta{
		Platform:    "desktop",
		InputMethod: "keyboard",
	}
	return raw
}

func (g *Generator) timedTask() intake.RawTaskPayload {
	rts := g.reactionSeries()
	acc := g.cfg.Accuracy
	trials := g.cfg.TrialsPerTask
	comm := int(math.Round(g.cfg.CommissionPct / 100 * float64(trials)))
	omis := int(math.Round(g.cfg.OmissionPct / 100 * float64(trials)))
	return intake.RawTaskPayload{
		RTs:              rts,
		PercentCorrect:   &acc,
		CommissionErrors: &comm,
		OmissionErrors:   &omis,
		TrialCount:       &trials,
	}
}

func (g *Generator) nbackTask() intake.RawTaskPayload {
	p := g.timedTask()
	level := 2
	p.MaxLevel = &level
	return p
}

func (g *Generator) stroopTask() intake.RawTaskPayload {
	p := g.timedTask()
	// interference cost scales with the configured spread
	effect := 40 + g.cfg.RTSpread*0.5
	p.StroopEffect = &effect
	return p
}

func (g *Generator) trailsTask() intake.RawTaskPayload {
	a := 24000 + g.cfg.MeanRT*10
	b := a * g.cfg.SwitchRatio
	return intake.RawTaskPayload{
		TrailATime: &a,
		TrailBTime: &b,
	}
}

// reactionSeries draws a lapse-contaminated RT series with the configured
// fatigue trend. Values are clamped to the plausible human range.
func (g *Generator) reactionSeries() []float64 {
	rts := make([]float64, g.cfg.TrialsPerTask)
	for i := range rts {
		rt := g.cfg.MeanRT + g.rng.NormFloat64()*g.cfg.RTSpread
		if g.rng.Float64() < g.cfg.LapseRate {
			rt += 300 + g.rng.Float64()*500 // slow-tail lapse
		}
		rt += g.cfg.FatigueSlope * float64(i)
		rts[i] = math.Max(150, math.Min(3000, rt))
	}
	return rts
}

func (g *Generator) questionnaire() *intake.RawQuestionnaire {
	inatt := g.cfg.Symptoms / 2
	hyper := g.cfg.Symptoms - inatt
	if g.cfg.Presentation == "inattentive" {
		inatt = g.cfg.Symptoms * 3 / 4
		hyper = g.cfg.Symptoms - inatt
	}
	impair := g.cfg.Impairment
	cross := g.cfg.Impairment
	return &intake.RawQuestionnaire{
		InattentionSymptoms:   &inatt,
		HyperactivitySymptoms: &hyper,
		Presentation:          g.cfg.Presentation,
		ImpairmentReported:    &impair,
		CrossSetting:          &cross,
	}
}

// SessionID builds a unique session identifier for batch fixtures
func SessionID(i int) string {
	return fmt.Sprintf("session_%04d", i+1)
}
