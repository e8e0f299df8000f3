package scoring

import (
	"math"
	"testing"

	"cogmetrics/domain/core"
	"cogmetrics/domain/intake"
	"cogmetrics/domain/metrics"
)

func batteryWith(recs ...intake.TaskRecord) *intake.Battery {
	tasks := make(map[core.TaskKey]intake.TaskRecord, len(recs))
	for _, rec := range recs {
		tasks[rec.Key] = rec
	}
	return &intake.Battery{
		SessionID: "sess-domains",
		Tasks:     tasks,
	}
}

func findDomain(t *testing.T, scores []metrics.DomainScore, d metrics.Domain) metrics.DomainScore {
	t.Helper()
	for _, s := range scores {
		if s.Domain == d {
			return s
		}
	}
	t.Fatalf("domain %s missing from result", d)
	return metrics.DomainScore{}
}

func TestComputeDomains_AlwaysSix(t *testing.T) {
	scores := ComputeDomains(batteryWith())
	if len(scores) != 6 {
		t.Fatalf("got %d domain scores, want 6", len(scores))
	}
	for _, s := range scores {
		if s.DataPresent {
			t.Errorf("%s marked present with no raw data", s.Domain)
		}
		if s.Label == "" || s.Description == "" {
			t.Errorf("%s missing label or description", s.Domain)
		}
	}
}

func TestSustainedAttention_Formula(t *testing.T) {
	scores := ComputeDomains(batteryWith(intake.TaskRecord{
		Key:            core.TaskCPT,
		Present:        true,
		HitRate:        90,
		CommissionRate: 10,
	}))
	sa := findDomain(t, scores, metrics.DomainSustainedAttention)
	// 0.6*90 + 0.4*(100-10) = 90
	if sa.Score != 90 {
		t.Errorf("score = %f, want 90", sa.Score)
	}
	if sa.Label != metrics.LabelStrong {
		t.Errorf("label = %q, want %q", sa.Label, metrics.LabelStrong)
	}
	if !sa.DataPresent {
		t.Error("expected DataPresent")
	}
}

func TestResponseInhibition_Formula(t *testing.T) {
	scores := ComputeDomains(batteryWith(intake.TaskRecord{
		Key:            core.TaskGoNoGo,
		Present:        true,
		CommissionRate: 20,
		Accuracy:       90,
	}))
	ri := findDomain(t, scores, metrics.DomainResponseInhibition)
	// 0.7*(100-20) + 0.3*90 = 83
	if math.Abs(ri.Score-83) > 0.0001 {
		t.Errorf("score = %f, want 83", ri.Score)
	}
}

func TestWorkingMemory_LevelBonus(t *testing.T) {
	scores := ComputeDomains(batteryWith(intake.TaskRecord{
		Key:       core.TaskNBack,
		Present:   true,
		Accuracy:  80,
		BaseLevel: 1,
		MaxLevel:  3,
	}))
	wm := findDomain(t, scores, metrics.DomainWorkingMemory)
	// 80 * (1 + 0.05*2) = 88
	if math.Abs(wm.Score-88) > 0.0001 {
		t.Errorf("score = %f, want 88", wm.Score)
	}
}

func TestWorkingMemory_BonusClampsAt100(t *testing.T) {
	scores := ComputeDomains(batteryWith(intake.TaskRecord{
		Key:       core.TaskNBack,
		Present:   true,
		Accuracy:  98,
		BaseLevel: 1,
		MaxLevel:  4,
	}))
	wm := findDomain(t, scores, metrics.DomainWorkingMemory)
	if wm.Score != 100 {
		t.Errorf("score = %f, want clamp at 100", wm.Score)
	}
}

func TestInterferenceControl_Formula(t *testing.T) {
	scores := ComputeDomains(batteryWith(intake.TaskRecord{
		Key:          core.TaskStroop,
		Present:      true,
		StroopEffect: 200,
		Accuracy:     90,
	}))
	ic := findDomain(t, scores, metrics.DomainInterferenceControl)
	// 0.6*(100-200/10) + 0.4*90 = 48 + 36 = 84
	if math.Abs(ic.Score-84) > 0.0001 {
		t.Errorf("score = %f, want 84", ic.Score)
	}
}

func TestCognitiveFlexibility_Formula(t *testing.T) {
	scores := ComputeDomains(batteryWith(intake.TaskRecord{
		Key:        core.TaskTrailMaking,
		Present:    true,
		TrailBTime: 60000, // 60s
		SwitchCost: 30000, // 30s
	}))
	cf := findDomain(t, scores, metrics.DomainCognitiveFlex)
	// 100 - (0.5*60 + 0.3*30) = 61
	if math.Abs(cf.Score-61) > 0.0001 {
		t.Errorf("score = %f, want 61", cf.Score)
	}
}

func TestProcessingSpeed_LinearMap(t *testing.T) {
	cases := []struct {
		meanRT float64
		want   float64
	}{
		{400, 100},
		{750, 50},
		{1100, 0},
		{300, 100},  // faster than the fast anchor clamps to 100
		{1400, 0},   // slower than the slow anchor clamps to 0
	}
	for _, tc := range cases {
		scores := ComputeDomains(batteryWith(intake.TaskRecord{
			Key:     core.TaskReactionTime,
			Present: true,
			MeanRT:  tc.meanRT,
		}))
		ps := findDomain(t, scores, metrics.DomainProcessingSpeed)
		if math.Abs(ps.Score-tc.want) > 0.0001 {
			t.Errorf("mean RT %f: score = %f, want %f", tc.meanRT, ps.Score, tc.want)
		}
	}
}

func TestOverallAccuracy(t *testing.T) {
	t.Run("averages present tasks only", func(t *testing.T) {
		b := batteryWith(
			intake.TaskRecord{Key: core.TaskCPT, Present: true, Accuracy: 90},
			intake.TaskRecord{Key: core.TaskGoNoGo, Present: true, Accuracy: 70},
			intake.TaskRecord{Key: core.TaskNBack, Present: false, Accuracy: 10},
		)
		if got := OverallAccuracy(b); got != 80 {
			t.Errorf("accuracy = %f, want 80", got)
		}
	})
	t.Run("empty battery uses default", func(t *testing.T) {
		if got := OverallAccuracy(batteryWith()); got != intake.DefaultAccuracy {
			t.Errorf("accuracy = %f, want default %f", got, intake.DefaultAccuracy)
		}
	})
}

func TestPooledErrorRates(t *testing.T) {
	b := batteryWith(
		intake.TaskRecord{Key: core.TaskCPT, Present: true, OmissionRate: 10, CommissionRate: 4},
		intake.TaskRecord{Key: core.TaskGoNoGo, Present: true, OmissionRate: 20, CommissionRate: 8},
	)
	om, com := PooledErrorRates(b)
	if om != 15 || com != 6 {
		t.Errorf("rates = (%f, %f), want (15, 6)", om, com)
	}

	om, com = PooledErrorRates(batteryWith())
	if om != intake.DefaultOmissionRate || com != intake.DefaultCommissionRate {
		t.Errorf("empty battery rates = (%f, %f), want defaults", om, com)
	}
}
