package scoring

import (
	"math"
	"testing"

	"cogmetrics/domain/intake"
	"cogmetrics/domain/metrics"
)

func TestSafeScore(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"nan", math.NaN(), NeutralScore},
		{"positive inf", math.Inf(1), NeutralScore},
		{"negative inf", math.Inf(-1), NeutralScore},
		{"below range", -12, 0},
		{"above range", 140, 100},
		{"in range", 63.5, 63.5},
		{"lower edge", 0, 0},
		{"upper edge", 100, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SafeScore(tc.in); got != tc.want {
				t.Errorf("SafeScore(%f) = %f, want %f", tc.in, got, tc.want)
			}
		})
	}
}

func TestComputeTiming_EmptySeries(t *testing.T) {
	timing := ComputeTiming(nil)
	if timing.MeanRT != 550 {
		t.Errorf("mean = %f, want default 550", timing.MeanRT)
	}
	if timing.RTSD != 0 || timing.RTCV != 0 {
		t.Errorf("spread stats must be zero on empty series, got sd=%f cv=%f", timing.RTSD, timing.RTCV)
	}
	if timing.SampleSize != 0 {
		t.Errorf("sample size = %d, want 0", timing.SampleSize)
	}
}

func TestComputeTiming_KnownSeries(t *testing.T) {
	timing := ComputeTiming([]float64{400, 500, 600})
	if timing.MeanRT != 500 {
		t.Errorf("mean = %f, want 500", timing.MeanRT)
	}
	// population SD of {400,500,600} = sqrt(20000/3)
	wantSD := math.Sqrt(20000.0 / 3.0)
	if math.Abs(timing.RTSD-wantSD) > 0.001 {
		t.Errorf("sd = %f, want %f", timing.RTSD, wantSD)
	}
	if math.Abs(timing.RTCV-wantSD/500) > 0.0001 {
		t.Errorf("cv = %f, want %f", timing.RTCV, wantSD/500)
	}
}

func TestComputeTau_Bands(t *testing.T) {
	cases := []struct {
		sd   float64
		want metrics.TauBand
	}{
		{25, metrics.TauNormal},      // tau 20
		{50, metrics.TauNormal},      // tau 40, inclusive upper edge
		{62.5, metrics.TauBorderline}, // tau 50
		{100, metrics.TauElevated},   // tau 80
		{150, metrics.TauSevere},     // tau 120
	}
	for _, tc := range cases {
		tau := ComputeTau(metrics.TimingStats{RTSD: tc.sd})
		if tau.Band != tc.want {
			t.Errorf("sd %f: band = %s, want %s", tc.sd, tau.Band, tc.want)
		}
		if math.Abs(tau.Value-0.8*tc.sd) > 0.001 {
			t.Errorf("sd %f: tau = %f, want %f", tc.sd, tau.Value, 0.8*tc.sd)
		}
	}
}

func TestComputeCPI(t *testing.T) {
	domains := []metrics.DomainScore{
		{Domain: metrics.DomainWorkingMemory, Score: 80},
		{Domain: metrics.DomainResponseInhibition, Score: 70},
	}
	cpi := ComputeCPI(domains)
	// (80+70)/2 - 7.5 = 67.5
	if cpi.Value != 67.5 {
		t.Errorf("cpi = %f, want 67.5", cpi.Value)
	}
	if cpi.WorkingMemory != 80 || cpi.ResponseInhibition != 70 {
		t.Errorf("components wrong: wm=%f ri=%f", cpi.WorkingMemory, cpi.ResponseInhibition)
	}
	if cpi.InterferencePenalty != 7.5 {
		t.Errorf("penalty = %f, want 7.5", cpi.InterferencePenalty)
	}
}

func TestComputeCPI_MissingDomainsUseNeutral(t *testing.T) {
	cpi := ComputeCPI(nil)
	// (50+50)/2 - 7.5 = 42.5
	if cpi.Value != 42.5 {
		t.Errorf("cpi = %f, want 42.5", cpi.Value)
	}
}

func allDomainsAt(score float64) []metrics.DomainScore {
	return []metrics.DomainScore{
		{Domain: metrics.DomainSustainedAttention, Score: score},
		{Domain: metrics.DomainResponseInhibition, Score: score},
		{Domain: metrics.DomainWorkingMemory, Score: score},
		{Domain: metrics.DomainInterferenceControl, Score: score},
		{Domain: metrics.DomainCognitiveFlex, Score: score},
		{Domain: metrics.DomainProcessingSpeed, Score: score},
	}
}

func TestComputeALS_PerformanceBase(t *testing.T) {
	als := ComputeALS(allDomainsAt(80), intake.Questionnaire{}, false)
	// weights sum to 1, so base = 100 - 80 = 20
	if als.PerformanceBase != 20 {
		t.Errorf("base = %f, want 20", als.PerformanceBase)
	}
	if als.Value != 20 {
		t.Errorf("value = %f, want 20 with no modifiers", als.Value)
	}
	if als.Category != metrics.ALSMild {
		t.Errorf("category = %s, want %s", als.Category, metrics.ALSMild)
	}
}

func TestComputeALS_CompensationAndSymptoms(t *testing.T) {
	q := intake.Questionnaire{Completed: true, TotalSymptoms: 12}
	als := ComputeALS(allDomainsAt(60), q, true)
	// base 40 + compensation 8 + tier4 symptom bonus 15 = 63
	if als.Value != 63 {
		t.Errorf("value = %f, want 63", als.Value)
	}
	if als.CompensationPenalty != 8 {
		t.Errorf("compensation = %f, want 8", als.CompensationPenalty)
	}
	if als.QuestionnaireModifier != 15 {
		t.Errorf("modifier = %f, want 15", als.QuestionnaireModifier)
	}
}

func TestComputeALS_SymptomTiers(t *testing.T) {
	cases := []struct {
		symptoms int
		bonus    float64
	}{
		{0, 0}, {3, 0}, {4, 2}, {5, 2}, {6, 5}, {8, 5}, {9, 10}, {11, 10}, {12, 15}, {18, 15},
	}
	for _, tc := range cases {
		q := intake.Questionnaire{Completed: true, TotalSymptoms: tc.symptoms}
		als := ComputeALS(allDomainsAt(70), q, false)
		if als.QuestionnaireModifier != tc.bonus {
			t.Errorf("%d symptoms: modifier = %f, want %f", tc.symptoms, als.QuestionnaireModifier, tc.bonus)
		}
	}
}

func TestComputeALS_SevereFloor(t *testing.T) {
	// Excellent measured performance but a severe combined self-report: the
	// floor must raise the result to 65, never lower anything.
	q := intake.Questionnaire{
		Completed:             true,
		SeverityPercent:       80,
		ImpairmentReported:    true,
		Presentation:          "Combined",
		InattentionSymptoms:   8,
		HyperactivitySymptoms: 8,
		TotalSymptoms:         16,
	}
	als := ComputeALS(allDomainsAt(95), q, false)
	if als.Value != 65 {
		t.Errorf("value = %f, want floor 65", als.Value)
	}
	if als.FloorApplied != metrics.FloorSevere {
		t.Errorf("floor = %q, want %q", als.FloorApplied, metrics.FloorSevere)
	}
}

func TestComputeALS_FloorNeverLowers(t *testing.T) {
	// Already above the floor: floor must not fire
	q := intake.Questionnaire{
		Completed:             true,
		SeverityPercent:       80,
		ImpairmentReported:    true,
		Presentation:          "Combined",
		InattentionSymptoms:   8,
		HyperactivitySymptoms: 8,
		TotalSymptoms:         16,
	}
	als := ComputeALS(allDomainsAt(10), q, true)
	if als.Value <= 65 {
		t.Fatalf("expected value above the floor, got %f", als.Value)
	}
	if als.FloorApplied != metrics.FloorNone {
		t.Errorf("floor fired at %q despite value above threshold", als.FloorApplied)
	}
}

func TestComputeALS_Clamp(t *testing.T) {
	// Everything maximal: result must stay at 99
	q := intake.Questionnaire{
		Completed:             true,
		SeverityPercent:       100,
		ImpairmentReported:    true,
		Presentation:          "Combined",
		InattentionSymptoms:   9,
		HyperactivitySymptoms: 9,
		TotalSymptoms:         18,
	}
	als := ComputeALS(allDomainsAt(0), q, true)
	if als.Value != 99 {
		t.Errorf("value = %f, want clamp 99", als.Value)
	}
	if als.Category != metrics.ALSSevere {
		t.Errorf("category = %s, want %s", als.Category, metrics.ALSSevere)
	}

	// Everything minimal: result must stay at least 1
	als = ComputeALS(allDomainsAt(100), intake.Questionnaire{}, false)
	if als.Value < 1 {
		t.Errorf("value = %f, must not fall below 1", als.Value)
	}
}

func TestScoreLabel(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{90, metrics.LabelStrong},
		{85, metrics.LabelStrong},
		{70, metrics.LabelTypical},
		{55, metrics.LabelTypical},
		{45, metrics.LabelBelow},
		{40, metrics.LabelBelow},
		{30, metrics.LabelImpaired},
	}
	for _, tc := range cases {
		if got := ScoreLabel(tc.score); got != tc.want {
			t.Errorf("ScoreLabel(%f) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
