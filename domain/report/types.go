package report

import (
	"fmt"

	"cogmetrics/domain/core"
	"cogmetrics/domain/metrics"
)

// Audience selects the wording register for a composed report
type Audience string

const (
	AudiencePatient   Audience = "patient"
	AudienceClinician Audience = "clinician"
)

// ParseAudience validates an audience selector
func ParseAudience(s string) (Audience, error) {
	switch Audience(s) {
	case AudiencePatient, AudienceClinician:
		return Audience(s), nil
	case "":
		return AudiencePatient, nil
	default:
		return "", fmt.Errorf("%w: %q", core.ErrUnknownAudience, s)
	}
}

// SectionKind identifies one of the fixed report sections. The composer
// always emits all kinds in this order; content varies, structure does not.
type SectionKind string

const (
	SectionIntake           SectionKind = "intake_summary"
	SectionValidity         SectionKind = "validity_notice"
	SectionGlossary         SectionKind = "glossary"
	SectionCoreMarkers      SectionKind = "core_markers"
	SectionTaskBreakdown    SectionKind = "task_breakdown"
	SectionCrossTask        SectionKind = "cross_task_patterns"
	SectionSubtype          SectionKind = "subtype_inference"
	SectionQuestionnaire    SectionKind = "questionnaire_correlation"
	SectionReliability      SectionKind = "reliability_statement"
	SectionRealLifeImpact   SectionKind = "real_life_impact"
	SectionStrengths        SectionKind = "strengths_challenges"
	SectionInterventions    SectionKind = "personalized_interventions"
	SectionRiskIndicators   SectionKind = "risk_indicators"
	SectionTechnicalNotes   SectionKind = "technical_appendix"
	SectionPlainSummary     SectionKind = "plain_language_summary"
)

// SectionOrder is the fixed composition order. Reports must contain exactly
// these sections regardless of data availability.
func SectionOrder() []SectionKind {
	return []SectionKind{
		SectionIntake,
		SectionValidity,
		SectionGlossary,
		SectionCoreMarkers,
		SectionTaskBreakdown,
		SectionCrossTask,
		SectionSubtype,
		SectionQuestionnaire,
		SectionReliability,
		SectionRealLifeImpact,
		SectionStrengths,
		SectionInterventions,
		SectionRiskIndicators,
		SectionTechnicalNotes,
		SectionPlainSummary,
	}
}

// ClinicalLevel groups sections by reader depth
type ClinicalLevel string

const (
	LevelBaseline     ClinicalLevel = "baseline"
	LevelProfessional ClinicalLevel = "professional"
	LevelAdvanced     ClinicalLevel = "advanced"
	LevelBiomarker    ClinicalLevel = "biomarker"
)

// Entry is one titled sub-item within a section (a glossary term, a task row,
// a single intervention, a risk indicator).
type Entry struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Items []string `json:"items,omitempty"`
}

// Section is one titled report section
type Section struct {
	Kind       SectionKind   `json:"kind"`
	Title      string        `json:"title"`
	Level      ClinicalLevel `json:"level"`
	Paragraphs []string      `json:"paragraphs"`
	Entries    []Entry       `json:"entries,omitempty"`

	// DataAvailable is false when the section's prerequisite data was missing
	// and the paragraphs hold the insufficient-data placeholder.
	DataAvailable bool `json:"data_available"`
}

// Report is the final composed artifact. It is never mutated after
// construction; audience adaptation builds a new Report.
type Report struct {
	ID          core.ReportID    `json:"id"`
	SessionID   core.SessionID   `json:"session_id"`
	SubjectID   core.SubjectID   `json:"subject_id"`
	GeneratedAt core.Timestamp   `json:"generated_at"`
	Audience    Audience         `json:"audience"`
	Seed        *int64           `json:"seed,omitempty"`
	InputHash   core.InputHash   `json:"input_hash"`
	CatalogHash core.CatalogHash `json:"catalog_hash"`

	ExecutiveSummary []string         `json:"executive_summary"`
	Sections         []Section        `json:"sections"`
	Snapshot         metrics.Snapshot `json:"snapshot"`
}

// SectionByKind returns the section with the given kind, if present
func (r *Report) SectionByKind(kind SectionKind) (Section, bool) {
	for _, s := range r.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// SectionsByLevel returns the grouped "clinical levels" view: section titles
// keyed by reader depth, in composition order.
func (r *Report) SectionsByLevel() map[ClinicalLevel][]string {
	levels := make(map[ClinicalLevel][]string)
	for _, s := range r.Sections {
		levels[s.Level] = append(levels[s.Level], s.Title)
	}
	return levels
}

// Validate checks the structural invariants a composed report must satisfy
func (r *Report) Validate() error {
	order := SectionOrder()
	if len(r.Sections) != len(order) {
		return fmt.Errorf("report must contain %d sections, got %d", len(order), len(r.Sections))
	}
	for i, kind := range order {
		if r.Sections[i].Kind != kind {
			return fmt.Errorf("section %d: expected %s, got %s", i, kind, r.Sections[i].Kind)
		}
	}
	if r.Audience != AudiencePatient && r.Audience != AudienceClinician {
		return fmt.Errorf("%w: %q", core.ErrUnknownAudience, r.Audience)
	}
	return nil
}
