package subtype

import (
	"testing"

	"cogmetrics/domain/intake"
	"cogmetrics/domain/metrics"
)

func TestInfer_QuestionnaireLabelWins(t *testing.T) {
	q := intake.Questionnaire{Completed: true, Presentation: "Combined"}
	// Flags that would resolve differently on their own
	f := metrics.FlagSet{ProcessingDeficit: true}

	got := Infer(q, f)
	if got.Subtype != metrics.SubtypeCombined {
		t.Errorf("subtype = %s, want %s", got.Subtype, metrics.SubtypeCombined)
	}
	if got.Source != "questionnaire" {
		t.Errorf("source = %q, want questionnaire", got.Source)
	}
	if got.Description == "" {
		t.Error("description must not be empty")
	}
}

func TestInfer_SpellingVariants(t *testing.T) {
	cases := []struct {
		label string
		want  metrics.Subtype
	}{
		{"inattentive", metrics.SubtypeInattentive},
		{"Predominantly Inattentive", metrics.SubtypeInattentive},
		{"hyperactive", metrics.SubtypeHyperactive},
		{"Hyperactive-Impulsive", metrics.SubtypeHyperactive},
		{"predominantly hyperactive-impulsive", metrics.SubtypeHyperactive},
		{"  combined  ", metrics.SubtypeCombined},
		{"SUBTHRESHOLD", metrics.SubtypeSubthreshold},
	}
	for _, tc := range cases {
		got := Infer(intake.Questionnaire{Presentation: tc.label}, metrics.FlagSet{})
		if got.Subtype != tc.want {
			t.Errorf("label %q: subtype = %s, want %s", tc.label, got.Subtype, tc.want)
		}
		if got.Source != "questionnaire" {
			t.Errorf("label %q: source = %q, want questionnaire", tc.label, got.Source)
		}
	}
}

func TestInfer_EscalatesInattentiveToCombined(t *testing.T) {
	q := intake.Questionnaire{
		Completed:             true,
		Presentation:          "inattentive",
		HyperactivitySymptoms: 6,
	}
	got := Infer(q, metrics.FlagSet{})
	if got.Subtype != metrics.SubtypeCombined {
		t.Errorf("subtype = %s, want escalation to %s", got.Subtype, metrics.SubtypeCombined)
	}
	if got.Source != "escalated" {
		t.Errorf("source = %q, want escalated", got.Source)
	}

	// One symptom short: no escalation
	q.HyperactivitySymptoms = 5
	got = Infer(q, metrics.FlagSet{})
	if got.Subtype != metrics.SubtypeInattentive || got.Source != "questionnaire" {
		t.Errorf("got %s/%s, want inattentive via questionnaire", got.Subtype, got.Source)
	}
}

func TestInfer_NeverDowngradesCombined(t *testing.T) {
	q := intake.Questionnaire{Completed: true, Presentation: "combined", HyperactivitySymptoms: 0}
	got := Infer(q, metrics.FlagSet{})
	if got.Subtype != metrics.SubtypeCombined {
		t.Errorf("subtype = %s, combined self-report must stand", got.Subtype)
	}
}

func TestInfer_FlagHeuristic(t *testing.T) {
	cases := []struct {
		name string
		f    metrics.FlagSet
		want metrics.Subtype
	}{
		{"impulsive and inattentive", metrics.FlagSet{Impulsivity: true, Inattention: true}, metrics.SubtypeCombined},
		{"impulsive and variable", metrics.FlagSet{Impulsivity: true, Variability: true}, metrics.SubtypeCombined},
		{"impulsive only", metrics.FlagSet{Impulsivity: true}, metrics.SubtypeHyperactive},
		{"inattentive only", metrics.FlagSet{Inattention: true}, metrics.SubtypeInattentive},
		{"variable only", metrics.FlagSet{Variability: true}, metrics.SubtypeInattentive},
		{"nothing fired", metrics.FlagSet{}, metrics.SubtypeSubthreshold},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Infer(intake.Questionnaire{}, tc.f)
			if got.Subtype != tc.want {
				t.Errorf("subtype = %s, want %s", got.Subtype, tc.want)
			}
			if got.Source != "cognitive_heuristic" {
				t.Errorf("source = %q, want cognitive_heuristic", got.Source)
			}
		})
	}
}

func TestInfer_UnknownLabelFallsThrough(t *testing.T) {
	q := intake.Questionnaire{Completed: true, Presentation: "mostly fine"}
	got := Infer(q, metrics.FlagSet{Inattention: true})
	if got.Subtype != metrics.SubtypeInattentive || got.Source != "cognitive_heuristic" {
		t.Errorf("got %s/%s, want inattentive via cognitive_heuristic", got.Subtype, got.Source)
	}
}
