package normalize

import (
	"math"
	"testing"

	"cogmetrics/domain/core"
	"cogmetrics/domain/intake"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }
func bp(v bool) *bool       { return &v }

func rawInput(tasks map[string]intake.RawTaskPayload) *intake.RawAssessmentInput {
	return &intake.RawAssessmentInput{
		SessionID: "sess-norm",
		SubjectID: "subj-norm",
		Tasks:     tasks,
	}
}

func TestNormalize_StructuralErrors(t *testing.T) {
	n := NewNormalizer(nil)

	if _, err := n.Normalize(nil); err == nil {
		t.Error("nil input must return an error")
	}
	if _, err := n.Normalize(&intake.RawAssessmentInput{SessionID: "  "}); err == nil {
		t.Error("blank session id must return an error")
	}
}

func TestNormalize_MalformedTaskDataNeverFails(t *testing.T) {
	n := NewNormalizer(nil)
	battery, err := n.Normalize(rawInput(map[string]intake.RawTaskPayload{
		"cpt": {
			ReactionTimes: []float64{math.NaN(), math.Inf(1), 480, 520},
			Accuracy:      fp(math.NaN()),
			TotalTrials:   ip(-3),
		},
	}))
	if err != nil {
		t.Fatalf("malformed task data must not fail normalization: %v", err)
	}
	rec := battery.Task(core.TaskCPT)
	if !rec.Present {
		t.Fatal("task with data must be present")
	}
	if len(rec.ReactionTimes) != 2 {
		t.Errorf("non-finite RTs must be dropped, got %v", rec.ReactionTimes)
	}
	if rec.TotalTrials != intake.DefaultTotalTrials {
		t.Errorf("trials = %d, want default %d", rec.TotalTrials, intake.DefaultTotalTrials)
	}
	if rec.Accuracy != intake.DefaultAccuracy {
		t.Errorf("accuracy = %f, want default %f", rec.Accuracy, intake.DefaultAccuracy)
	}
}

func TestNormalize_TaskAliases(t *testing.T) {
	cases := []struct {
		alias string
		want  core.TaskKey
	}{
		{"continuous_performance", core.TaskCPT},
		{"GoNoGo", core.TaskGoNoGo},
		{"go-no-go", core.TaskGoNoGo},
		{"working_memory", core.TaskNBack},
		{"interference", core.TaskStroop},
		{"trails", core.TaskTrailMaking},
		{"simple_rt", core.TaskReactionTime},
		{" Stroop ", core.TaskStroop},
	}
	n := NewNormalizer(nil)
	for _, tc := range cases {
		battery, err := n.Normalize(rawInput(map[string]intake.RawTaskPayload{
			tc.alias: {Accuracy: fp(88)},
		}))
		if err != nil {
			t.Fatalf("alias %q: %v", tc.alias, err)
		}
		if !battery.Task(tc.want).Present {
			t.Errorf("alias %q did not resolve to %s", tc.alias, tc.want)
		}
	}
}

func TestNormalize_UnknownTaskSkipped(t *testing.T) {
	n := NewNormalizer(nil)
	battery, err := n.Normalize(rawInput(map[string]intake.RawTaskPayload{
		"tower_of_hanoi": {Accuracy: fp(99)},
	}))
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range core.AllTaskKeys() {
		if battery.Task(key).Present {
			t.Errorf("unknown task name must not populate %s", key)
		}
	}
	if battery.Validity.TasksCompleted != 0 {
		t.Errorf("completed = %d, want 0", battery.Validity.TasksCompleted)
	}
}

func TestNormalize_LegacyFieldCoalescing(t *testing.T) {
	n := NewNormalizer(nil)
	battery, err := n.Normalize(rawInput(map[string]intake.RawTaskPayload{
		"go_no_go": {
			RTs:              []float64{410, 430, 450}, // legacy series name
			PercentCorrect:   fp(91),                   // legacy accuracy name
			FalseAlarms:      ip(6),                    // legacy commission name
			TrialCount:       ip(60),                   // legacy trial count name
			MeanRT:           fp(430),                  // legacy mean name
			CommissionErrors: nil,
		},
	}))
	if err != nil {
		t.Fatal(err)
	}
	rec := battery.Task(core.TaskGoNoGo)
	if len(rec.ReactionTimes) != 3 {
		t.Errorf("legacy RT series not picked up: %v", rec.ReactionTimes)
	}
	if rec.Accuracy != 91 {
		t.Errorf("accuracy = %f, want 91 via percentCorrect", rec.Accuracy)
	}
	if rec.Commissions != 6 {
		t.Errorf("commissions = %d, want 6 via falseAlarms", rec.Commissions)
	}
	if rec.CommissionRate != 10 {
		t.Errorf("commission rate = %f, want 10", rec.CommissionRate)
	}
	if rec.MeanRT != 430 {
		t.Errorf("mean RT = %f, want 430", rec.MeanRT)
	}
}

func TestNormalize_FractionAccuracyScaled(t *testing.T) {
	n := NewNormalizer(nil)
	battery, err := n.Normalize(rawInput(map[string]intake.RawTaskPayload{
		"cpt": {Accuracy: fp(0.87)},
	}))
	if err != nil {
		t.Fatal(err)
	}
	if got := battery.Task(core.TaskCPT).Accuracy; math.Abs(got-87) > 0.0001 {
		t.Errorf("accuracy = %f, want 87 (0-1 fraction scaled)", got)
	}
}

func TestNormalize_AccuracyFromHits(t *testing.T) {
	n := NewNormalizer(nil)
	battery, err := n.Normalize(rawInput(map[string]intake.RawTaskPayload{
		"cpt": {Hits: ip(45), TotalTrials: ip(60)},
	}))
	if err != nil {
		t.Fatal(err)
	}
	if got := battery.Task(core.TaskCPT).Accuracy; got != 75 {
		t.Errorf("accuracy = %f, want 75 derived from hits", got)
	}
}

func TestNormalize_MeanRTFallsBackToSeries(t *testing.T) {
	n := NewNormalizer(nil)
	battery, err := n.Normalize(rawInput(map[string]intake.RawTaskPayload{
		"reaction_time": {ReactionTimes: []float64{300, 500}},
	}))
	if err != nil {
		t.Fatal(err)
	}
	if got := battery.Task(core.TaskReactionTime).MeanRT; got != 400 {
		t.Errorf("mean RT = %f, want 400 from series", got)
	}
}

func TestNormalize_MaxLevelNeverBelowBase(t *testing.T) {
	n := NewNormalizer(nil)
	battery, err := n.Normalize(rawInput(map[string]intake.RawTaskPayload{
		"n_back": {Accuracy: fp(80), BaseLevel: ip(2), MaxLevel: ip(1)},
	}))
	if err != nil {
		t.Fatal(err)
	}
	rec := battery.Task(core.TaskNBack)
	if rec.MaxLevel != rec.BaseLevel {
		t.Errorf("max level %d below base %d", rec.MaxLevel, rec.BaseLevel)
	}
}

func TestNormalize_AbsentTasksUseDefaults(t *testing.T) {
	n := NewNormalizer(nil)
	battery, err := n.Normalize(rawInput(nil))
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range core.AllTaskKeys() {
		rec := battery.Task(key)
		if rec.Present {
			t.Errorf("%s marked present with no payload", key)
		}
		if rec.Accuracy != intake.DefaultAccuracy || rec.MeanRT != intake.DefaultMeanRT {
			t.Errorf("%s missing documented defaults", key)
		}
	}
}

func TestNormalize_Questionnaire(t *testing.T) {
	t.Run("nil yields incomplete default", func(t *testing.T) {
		n := NewNormalizer(nil)
		battery, err := n.Normalize(rawInput(nil))
		if err != nil {
			t.Fatal(err)
		}
		if battery.Questionnaire.Completed {
			t.Error("missing questionnaire must not read as completed")
		}
	})
	t.Run("severity derived from symptom count", func(t *testing.T) {
		raw := rawInput(nil)
		raw.Questionnaire = &intake.RawQuestionnaire{
			InattentionSymptoms:   ip(6),
			HyperactivitySymptoms: ip(3),
		}
		n := NewNormalizer(nil)
		battery, err := n.Normalize(raw)
		if err != nil {
			t.Fatal(err)
		}
		q := battery.Questionnaire
		if !q.Completed {
			t.Error("questionnaire present must read as completed")
		}
		if q.TotalSymptoms != 9 {
			t.Errorf("total symptoms = %d, want 9", q.TotalSymptoms)
		}
		if got, want := q.SeverityPercent, 100*9.0/18.0; got != want {
			t.Errorf("derived severity = %f, want %f", got, want)
		}
	})
	t.Run("explicit severity wins", func(t *testing.T) {
		raw := rawInput(nil)
		raw.Questionnaire = &intake.RawQuestionnaire{
			SeverityPercent:    fp(72),
			ImpairmentReported: bp(true),
		}
		n := NewNormalizer(nil)
		battery, err := n.Normalize(raw)
		if err != nil {
			t.Fatal(err)
		}
		if battery.Questionnaire.SeverityPercent != 72 {
			t.Errorf("severity = %f, want 72", battery.Questionnaire.SeverityPercent)
		}
		if !battery.Questionnaire.ImpairmentReported {
			t.Error("impairment flag lost")
		}
	})
}

func TestNormalize_Validity(t *testing.T) {
	raw := rawInput(map[string]intake.RawTaskPayload{
		"cpt":    {Accuracy: fp(90)},
		"stroop": {Accuracy: fp(85)},
	})
	raw.Device = &intake.RawDeviceMeta{
		Platform:        "desktop",
		InputMethod:     "keyboard",
		Interrupted:     bp(true),
		DurationMinutes: fp(24.5),
	}
	n := NewNormalizer(nil)
	battery, err := n.Normalize(raw)
	if err != nil {
		t.Fatal(err)
	}
	v := battery.Validity
	if v.TasksCompleted != 2 || v.TasksExpected != len(core.AllTaskKeys()) {
		t.Errorf("completion = %d/%d", v.TasksCompleted, v.TasksExpected)
	}
	if v.Platform != "desktop" || v.InputMethod != "keyboard" || !v.Interrupted {
		t.Errorf("device metadata lost: %+v", v)
	}
	if v.DurationMinutes != 24.5 {
		t.Errorf("duration = %f, want 24.5", v.DurationMinutes)
	}
}

func TestNormalize_DeterministicInputHash(t *testing.T) {
	n := NewNormalizer(nil)
	mk := func() *intake.RawAssessmentInput {
		return rawInput(map[string]intake.RawTaskPayload{
			"cpt": {Accuracy: fp(90), ReactionTimes: []float64{450, 470}},
		})
	}
	a, err := n.Normalize(mk())
	if err != nil {
		t.Fatal(err)
	}
	b, err := n.Normalize(mk())
	if err != nil {
		t.Fatal(err)
	}
	if a.InputHash == "" || a.InputHash != b.InputHash {
		t.Errorf("identical input must hash identically: %q vs %q", a.InputHash, b.InputHash)
	}
}
