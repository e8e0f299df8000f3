package narrative

import (
	"fmt"
	"strings"

	"cogmetrics/domain/core"
	"cogmetrics/domain/intake"
	"cogmetrics/domain/metrics"
	"cogmetrics/domain/report"
)

// InsufficientData is the placeholder rendered wherever a section's
// prerequisite data was unavailable. Sections are never silently omitted;
// the report's structure is identical across inputs.
const InsufficientData = "Insufficient data: this section could not be computed from the recorded session and is shown as a placeholder."

// Composer assembles a structured report from computed metrics, a normalized
// battery, and an optional seed. Composition is a pure function of its
// arguments plus the immutable catalog.
type Composer struct {
	library *Library
}

// NewComposer creates a composer over a phrasing catalog. A nil library uses
// the default catalog.
func NewComposer(library *Library) *Composer {
	if library == nil {
		library = Default()
	}
	return &Composer{library: library}
}

// Compose builds the full ordered report. The same (battery, metrics, seed)
// always yields the same text; a nil seed varies wording but never structure.
func (c *Composer) Compose(battery *intake.Battery, m *metrics.Metrics, seed *int64) (*report.Report, error) {
	if battery == nil || m == nil {
		return nil, core.NewAggregateError("composer requires a battery and computed metrics")
	}

	r := &report.Report{
		ID:          core.ReportID(core.NewID()),
		SessionID:   battery.SessionID,
		SubjectID:   battery.SubjectID,
		GeneratedAt: core.Now(),
		Audience:    report.AudienceClinician, // base register is technical
		Seed:        seed,
		InputHash:   battery.InputHash,
		CatalogHash: c.library.Hash(),
		Snapshot:    m.ToSnapshot(),
	}

	for _, kind := range report.SectionOrder() {
		r.Sections = append(r.Sections, c.buildSection(kind, battery, m, seed))
	}
	r.ExecutiveSummary = c.executiveSummary(m, seed)

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (c *Composer) buildSection(kind report.SectionKind, battery *intake.Battery, m *metrics.Metrics, seed *int64) report.Section {
	switch kind {
	case report.SectionIntake:
		return c.intakeSection(battery, seed)
	case report.SectionValidity:
		return c.validitySection(battery, seed)
	case report.SectionGlossary:
		return c.glossarySection()
	case report.SectionCoreMarkers:
		return c.coreMarkersSection(m, seed)
	case report.SectionTaskBreakdown:
		return c.taskBreakdownSection(battery, m)
	case report.SectionCrossTask:
		return c.crossTaskSection(m, seed)
	case report.SectionSubtype:
		return c.subtypeSection(m, seed)
	case report.SectionQuestionnaire:
		return c.questionnaireSection(battery, m, seed)
	case report.SectionReliability:
		return c.reliabilitySection(m, seed)
	case report.SectionRealLifeImpact:
		return c.realLifeImpactSection(m, seed)
	case report.SectionStrengths:
		return c.strengthsSection(m)
	case report.SectionInterventions:
		return c.interventionsSection(m)
	case report.SectionRiskIndicators:
		return c.riskSection(m, seed)
	case report.SectionTechnicalNotes:
		return c.technicalSection(m)
	default:
		return c.plainSummarySection(m, seed)
	}
}

// ----------------------------------------------------------------------------
// Sections
// ----------------------------------------------------------------------------

func (c *Composer) intakeSection(battery *intake.Battery, seed *int64) report.Section {
	opening := c.library.selectFrom(seed, "intake", "opening")
	detail := fmt.Sprintf("Session %s completed %d of %d battery tasks.",
		battery.SessionID, battery.Validity.TasksCompleted, battery.Validity.TasksExpected)
	if battery.Questionnaire.Completed {
		detail += " A symptom questionnaire was completed alongside the tasks."
	} else {
		detail += " No symptom questionnaire accompanied the tasks."
	}
	return section(report.SectionIntake, report.LevelBaseline, true, opening, detail)
}

func (c *Composer) validitySection(battery *intake.Battery, seed *int64) report.Section {
	v := battery.Validity
	var paragraphs []string
	switch {
	case v.Interrupted:
		paragraphs = append(paragraphs, c.library.selectFrom(seed, "validity", "flagged"),
			"The session was interrupted before completion; interrupted sessions inflate variability measures.")
	case v.TasksCompleted < v.TasksExpected:
		paragraphs = append(paragraphs, c.library.selectFrom(seed, "validity", "partial"),
			fmt.Sprintf("%d of %d tasks produced usable data.", v.TasksCompleted, v.TasksExpected))
	default:
		paragraphs = append(paragraphs, c.library.selectFrom(seed, "validity", "clean"))
	}
	if v.Platform != "unknown" {
		paragraphs = append(paragraphs, fmt.Sprintf("Recorded on %s using %s input.", v.Platform, v.InputMethod))
	}
	s := section(report.SectionValidity, report.LevelBaseline, true, paragraphs...)
	return s
}

func (c *Composer) glossarySection() report.Section {
	s := section(report.SectionGlossary, report.LevelBaseline, true,
		"Short definitions of the measures used throughout this report.")
	s.Entries = []report.Entry{
		{Title: "ALS", Body: "An aggregate 1-99 index combining measured cognitive performance with questionnaire severity. Higher means more evidence of an attentional pattern."},
		{Title: "Focus Consistency (MC)", Body: "How steadily responding held from moment to moment, blending reaction time stability with accuracy stability."},
		{Title: "Pairing Index (CPI)", Body: "The cost of running working memory and response inhibition at the same time."},
		{Title: "Lapse Index (Tau)", Body: "An estimate of attentional lapses derived from the spread of reaction time - the slow tail of responding."},
		{Title: "Inverse Efficiency", Body: "Mean reaction time divided by accuracy: the time paid per unit of correctness."},
		{Title: "Micro-lapse Index (MSSD)", Body: "Trial-to-trial volatility: the root mean squared successive difference between consecutive reaction times."},
		{Title: "Fatigue Slope", Body: "The linear trend of reaction time across the session; a positive slope means slowing with time on task."},
		{Title: "Switching Cost", Body: "How much longer the rule-switching condition took relative to the baseline condition."},
	}
	return s
}

func (c *Composer) coreMarkersSection(m *metrics.Metrics, seed *int64) report.Section {
	als := m.Composites.ALS
	paragraphs := []string{
		fmt.Sprintf("The aggregate likelihood index (ALS) is %.0f of 99, in the %s band.", als.Value, als.Category),
		fmt.Sprintf("Focus consistency measured %.0f of 100. %s", m.Composites.MC.Value,
			c.library.selectFrom(seed, "mc", indexLevel(m.Composites.MC.Value))),
		fmt.Sprintf("The pairing index measured %.0f of 100. %s", m.Composites.CPI.Value,
			c.library.selectFrom(seed, "cpi", indexLevel(m.Composites.CPI.Value))),
		fmt.Sprintf("The lapse index measured %.0f ms. %s", m.Composites.Tau.Value,
			c.library.selectFrom(seed, "tau", strings.ToLower(string(m.Composites.Tau.Band)))),
	}
	if als.FloorApplied != metrics.FloorNone {
		paragraphs = append(paragraphs,
			"The ALS was raised to a validated minimum because self-reported severity and impairment jointly exceeded documented thresholds; a low computed score alongside a severe self-report would be internally inconsistent.")
	}
	return section(report.SectionCoreMarkers, report.LevelProfessional, true, paragraphs...)
}

func (c *Composer) taskBreakdownSection(battery *intake.Battery, m *metrics.Metrics) report.Section {
	s := section(report.SectionTaskBreakdown, report.LevelProfessional, true,
		"Per-domain scores from the individual battery tasks. Scores run 0-100; higher is better.")
	available := true
	for _, d := range m.Domains {
		entry := report.Entry{Title: domainTitle(d.Domain)}
		if d.DataPresent {
			entry.Body = fmt.Sprintf("%.0f of 100 (%s). %s", d.Score, d.Label, d.Description)
		} else {
			entry.Body = InsufficientData
			available = false
		}
		s.Entries = append(s.Entries, entry)
	}
	s.DataAvailable = available
	return s
}

func (c *Composer) crossTaskSection(m *metrics.Metrics, seed *int64) report.Section {
	s := section(report.SectionCrossTask, report.LevelAdvanced, true,
		"Behavioral markers evaluated across the whole battery, and the named patterns they combine into.")

	for _, fl := range flagOrder {
		state := "absent"
		if fl.get(m.Flags) {
			state = "detected"
		}
		s.Paragraphs = append(s.Paragraphs, c.library.selectFrom(seed, "flag", fl.key, state))
	}

	s.Paragraphs = append(s.Paragraphs, c.library.selectFrom(seed, "implications", implicationKey(m.Composites)))

	for _, p := range m.Patterns {
		s.Entries = append(s.Entries, report.Entry{
			Title: fmt.Sprintf("%s (%s confidence)", p.Label, p.Confidence),
			Body:  p.Description,
			Items: p.Criteria,
		})
	}
	return s
}

func (c *Composer) subtypeSection(m *metrics.Metrics, seed *int64) report.Section {
	st := m.Subtype
	paragraphs := []string{
		c.library.selectFrom(seed, "subtype", strings.ToLower(string(st.Subtype))),
	}
	switch st.Source {
	case "questionnaire":
		paragraphs = append(paragraphs, "This label follows the self-reported presentation on the questionnaire.")
	case "escalated":
		paragraphs = append(paragraphs, "The self-reported label was escalated because the hyperactivity symptom count met the combined-presentation criterion; escalation never downgrades a reported label.")
	default:
		paragraphs = append(paragraphs, "No self-reported presentation was available, so the label was resolved from the cognitive markers alone.")
	}
	return section(report.SectionSubtype, report.LevelAdvanced, true, paragraphs...)
}

func (c *Composer) questionnaireSection(battery *intake.Battery, m *metrics.Metrics, seed *int64) report.Section {
	q := battery.Questionnaire
	if !q.Completed {
		s := section(report.SectionQuestionnaire, report.LevelProfessional, false, InsufficientData)
		return s
	}
	paragraphs := []string{
		fmt.Sprintf("The questionnaire recorded %d inattention and %d hyperactivity symptom endorsements (%.0f%% severity).",
			q.InattentionSymptoms, q.HyperactivitySymptoms, q.SeverityPercent),
	}
	gap := m.Composites.ALS.Value - q.SeverityPercent
	switch {
	case gap > 25:
		paragraphs = append(paragraphs, "Measured performance indicates more difficulty than the self-report acknowledges - a pattern often seen when difficulties have been normalized over time.")
	case gap < -25:
		paragraphs = append(paragraphs, "Self-reported severity exceeds what the cognitive indices alone show. Structured testing can under-sample real-world demands, so the self-report is weighted through validated floor rules rather than discarded.")
	default:
		paragraphs = append(paragraphs, "Self-report and measured performance are broadly in agreement, which strengthens confidence in the combined result.")
	}
	return section(report.SectionQuestionnaire, report.LevelProfessional, true, paragraphs...)
}

func (c *Composer) reliabilitySection(m *metrics.Metrics, seed *int64) report.Section {
	level := "limited"
	switch {
	case m.Timing.SampleSize >= 120:
		level = "strong"
	case m.Timing.SampleSize >= 40:
		level = "moderate"
	}
	paragraphs := []string{
		c.library.selectFrom(seed, "reliability", level),
		fmt.Sprintf("Indices in this report were computed from %d recorded trials.", m.Timing.SampleSize),
	}
	return section(report.SectionReliability, report.LevelProfessional, m.Timing.SampleSize > 0, paragraphs...)
}

func (c *Composer) realLifeImpactSection(m *metrics.Metrics, seed *int64) report.Section {
	s := section(report.SectionRealLifeImpact, report.LevelBiomarker, true,
		"Functional biomarkers translate the trial-level record into predicted day-to-day impact.")

	available := true
	for _, b := range m.Biomarkers.All() {
		entry := report.Entry{Title: biomarkerTitle(b.Name)}
		if b.Available {
			entry.Body = fmt.Sprintf("%s (score %.1f). %s", b.Tier, b.Score, b.Interpretation)
			entry.Items = b.Impacts
		} else {
			entry.Body = InsufficientData + " " + b.Interpretation
			available = false
		}
		s.Entries = append(s.Entries, entry)
	}

	for _, d := range m.Domains {
		level := "typical"
		if d.Score < 55 {
			level = "reduced"
		}
		if c.library.Has("impact", string(d.Domain), level) {
			s.Paragraphs = append(s.Paragraphs, c.library.selectFrom(seed, "impact", string(d.Domain), level))
		}
	}
	s.DataAvailable = available
	return s
}

func (c *Composer) strengthsSection(m *metrics.Metrics) report.Section {
	s := section(report.SectionStrengths, report.LevelBaseline, true,
		"Measured strengths are reported with the same weight as challenges; they are resources a support plan can build on.")

	for _, d := range m.Domains {
		if d.Score >= 80 && d.DataPresent {
			s.Entries = append(s.Entries, report.Entry{
				Title: "Strength: " + domainTitle(d.Domain),
				Body:  fmt.Sprintf("Scored %.0f of 100 - %s.", d.Score, strings.ToLower(d.Label)),
			})
		}
	}
	for _, b := range m.Biomarkers.All() {
		if b.Available && b.IsStrength {
			s.Entries = append(s.Entries, report.Entry{
				Title: "Strength: " + biomarkerTitle(b.Name),
				Body:  b.Interpretation,
			})
		}
	}
	for _, d := range m.Domains {
		if d.Score < 45 && d.DataPresent {
			s.Entries = append(s.Entries, report.Entry{
				Title: "Challenge: " + domainTitle(d.Domain),
				Body:  fmt.Sprintf("Scored %.0f of 100 - %s.", d.Score, strings.ToLower(d.Label)),
			})
		}
	}
	if len(s.Entries) == 0 {
		s.Entries = append(s.Entries, report.Entry{
			Title: "Balanced profile",
			Body:  "No domain stood out strongly in either direction; performance was even across the battery.",
		})
	}
	return s
}

func (c *Composer) interventionsSection(m *metrics.Metrics) report.Section {
	s := section(report.SectionInterventions, report.LevelBaseline, true,
		"Concrete, non-clinical strategies matched to the measured profile. These are supports, not treatment.")
	for _, iv := range interventionRules {
		if iv.match(m) {
			s.Entries = append(s.Entries, report.Entry{Title: iv.title, Body: iv.body, Items: iv.steps})
		}
	}
	if len(s.Entries) == 0 {
		s.Entries = append(s.Entries, report.Entry{
			Title: "General",
			Body:  "No profile-specific supports are indicated. Ordinary good practice - regular sleep, single-tasking, scheduled breaks - remains worthwhile.",
		})
	}
	return s
}

func (c *Composer) riskSection(m *metrics.Metrics, seed *int64) report.Section {
	s := section(report.SectionRiskIndicators, report.LevelAdvanced, true,
		"Forward-looking indicators associated with this profile in the research literature. These describe statistical association, not destiny, and none is a diagnosis.")
	triggered := 0
	for _, rk := range riskRules {
		if rk.match(m) {
			s.Paragraphs = append(s.Paragraphs, c.library.selectFrom(seed, "risk", rk.key))
			triggered++
		}
	}
	if triggered == 0 {
		s.Paragraphs = append(s.Paragraphs, "No elevated risk indicators were triggered by this profile.")
	}
	return s
}

func (c *Composer) technicalSection(m *metrics.Metrics) report.Section {
	s := section(report.SectionTechnicalNotes, report.LevelAdvanced, true,
		"Raw computed figures for professional review.")
	s.Entries = []report.Entry{
		{Title: "Timing", Body: fmt.Sprintf("mean RT %.1f ms, SD %.1f ms, CV %.3f, n=%d",
			m.Timing.MeanRT, m.Timing.RTSD, m.Timing.RTCV, m.Timing.SampleSize)},
		{Title: "ALS decomposition", Body: fmt.Sprintf("performance base %.1f, compensation penalty %.1f, questionnaire modifier %.1f, floor %q, final %.1f",
			m.Composites.ALS.PerformanceBase, m.Composites.ALS.CompensationPenalty,
			m.Composites.ALS.QuestionnaireModifier, string(m.Composites.ALS.FloorApplied), m.Composites.ALS.Value)},
		{Title: "MC components", Body: fmt.Sprintf("rt consistency %.1f, accuracy stability %.1f, commission control %.1f, omission control %.1f",
			m.Composites.MC.RTConsistency, m.Composites.MC.AccuracyStability,
			m.Composites.MC.CommissionControl, m.Composites.MC.OmissionControl)},
		{Title: "CPI components", Body: fmt.Sprintf("working memory %.1f, response inhibition %.1f, interference penalty %.1f",
			m.Composites.CPI.WorkingMemory, m.Composites.CPI.ResponseInhibition, m.Composites.CPI.InterferencePenalty)},
		{Title: "Pooled accuracy", Body: fmt.Sprintf("overall accuracy %.1f%%, omission rate %.1f%%, commission rate %.1f%%",
			m.OverallAccuracy, m.OmissionRate, m.CommissionRate)},
	}
	return s
}

func (c *Composer) plainSummarySection(m *metrics.Metrics, seed *int64) report.Section {
	paragraphs := []string{
		c.library.selectFrom(seed, "summary", string(m.Composites.ALS.Category)),
		m.Subtype.Description,
		"This report is a deterministic summary of measured performance and self-report. It is explainable down to its formulas, and it is not a clinical diagnosis.",
	}
	return section(report.SectionPlainSummary, report.LevelBaseline, true, paragraphs...)
}

func (c *Composer) executiveSummary(m *metrics.Metrics, seed *int64) []string {
	als := m.Composites.ALS
	first := fmt.Sprintf("Aggregate result: ALS %.0f of 99 (%s band), presentation pattern %s.",
		als.Value, als.Category, m.Subtype.Subtype)

	var names []string
	for _, p := range m.Patterns {
		names = append(names, p.Label)
	}
	second := "Detected patterns: " + strings.Join(names, "; ") + "."

	third := c.library.selectFrom(seed, "summary", string(als.Category))
	return []string{first, second, third}
}

// ----------------------------------------------------------------------------
// Tables and helpers
// ----------------------------------------------------------------------------

func section(kind report.SectionKind, level report.ClinicalLevel, available bool, paragraphs ...string) report.Section {
	return report.Section{
		Kind:          kind,
		Title:         sectionTitle(kind),
		Level:         level,
		Paragraphs:    paragraphs,
		DataAvailable: available,
	}
}

var sectionTitles = map[report.SectionKind]string{
	report.SectionIntake:         "Intake Summary",
	report.SectionValidity:       "Validity Notice",
	report.SectionGlossary:       "Cognitive Concepts",
	report.SectionCoreMarkers:    "Core Markers",
	report.SectionTaskBreakdown:  "Per-Task Breakdown",
	report.SectionCrossTask:      "Cross-Task Pattern Analysis",
	report.SectionSubtype:        "Presentation Pattern",
	report.SectionQuestionnaire:  "Questionnaire Correlation",
	report.SectionReliability:    "Reliability",
	report.SectionRealLifeImpact: "Real-Life Impact",
	report.SectionStrengths:      "Strengths and Challenges",
	report.SectionInterventions:  "Personalized Supports",
	report.SectionRiskIndicators: "Risk Indicators",
	report.SectionTechnicalNotes: "Technical Appendix",
	report.SectionPlainSummary:   "Plain-Language Summary",
}

func sectionTitle(kind report.SectionKind) string {
	if t, ok := sectionTitles[kind]; ok {
		return t
	}
	return string(kind)
}

func domainTitle(d metrics.Domain) string {
	switch d {
	case metrics.DomainSustainedAttention:
		return "Sustained Attention"
	case metrics.DomainResponseInhibition:
		return "Response Inhibition"
	case metrics.DomainWorkingMemory:
		return "Working Memory"
	case metrics.DomainInterferenceControl:
		return "Interference Control"
	case metrics.DomainCognitiveFlex:
		return "Cognitive Flexibility"
	case metrics.DomainProcessingSpeed:
		return "Processing Speed"
	default:
		return string(d)
	}
}

func biomarkerTitle(n metrics.BiomarkerName) string {
	switch n {
	case metrics.BiomarkerIES:
		return "Inverse Efficiency"
	case metrics.BiomarkerMSSD:
		return "Micro-lapse Index"
	case metrics.BiomarkerFatigue:
		return "Fatigue Slope"
	case metrics.BiomarkerSwitching:
		return "Switching Cost"
	default:
		return string(n)
	}
}

// indexLevel maps a 0-100 index value onto the catalog's severity keys
func indexLevel(value float64) string {
	switch {
	case value >= 80:
		return levelStrong
	case value >= 60:
		return levelModerate
	case value >= 40:
		return levelReduced
	default:
		return levelLow
	}
}

// implicationKey builds the 2x2 MC x CPI cross-product key
func implicationKey(c metrics.CompositeSet) string {
	mc, cpi := "reduced", "reduced"
	if c.MC.Value >= 60 {
		mc = "strong"
	}
	if c.CPI.Value >= 60 {
		cpi = "strong"
	}
	return fmt.Sprintf("mc_%s_cpi_%s", mc, cpi)
}

// flagOrder fixes the report order of behavioral flags
var flagOrder = []struct {
	key string
	get func(metrics.FlagSet) bool
}{
	{"inattention", func(f metrics.FlagSet) bool { return f.Inattention }},
	{"impulsivity", func(f metrics.FlagSet) bool { return f.Impulsivity }},
	{"variability", func(f metrics.FlagSet) bool { return f.Variability }},
	{"compensation", func(f metrics.FlagSet) bool { return f.Compensation }},
	{"hyperfocus", func(f metrics.FlagSet) bool { return f.Hyperfocus }},
	{"executive_dysfunction", func(f metrics.FlagSet) bool { return f.ExecutiveDysfunction }},
	{"processing_deficit", func(f metrics.FlagSet) bool { return f.ProcessingDeficit }},
}

// interventionRules matches concrete supports to profile features
var interventionRules = []struct {
	title string
	body  string
	steps []string
	match func(*metrics.Metrics) bool
}{
	{
		title: "Externalize working memory",
		body:  "When holding things in mind is costly, move the holding out of the head.",
		steps: []string{
			"Write instructions down at the moment they are given",
			"Use checklists for any task with more than two steps",
			"Keep one capture place for tasks, not several",
		},
		match: func(m *metrics.Metrics) bool { return m.DomainScore(metrics.DomainWorkingMemory).Score < 55 },
	},
	{
		title: "Structure attention in blocks",
		body:  "Lapse-prone attention performs far better with external structure than with willpower.",
		steps: []string{
			"Work in timed 20-30 minute blocks with explicit breaks",
			"Put the hardest work in the first blocks of the day",
			"Use an external cue, not intention, to start each block",
		},
		match: func(m *metrics.Metrics) bool { return m.Flags.Inattention || m.Flags.Variability },
	},
	{
		title: "Add friction before fast actions",
		body:  "When responses release early, a small deliberate delay recovers most of the cost.",
		steps: []string{
			"Draft-then-send: never send a message in the same sitting it was written",
			"Use a 24-hour rule for non-trivial purchases",
			"In meetings, write the point down before saying it",
		},
		match: func(m *metrics.Metrics) bool { return m.Flags.Impulsivity },
	},
	{
		title: "Batch context switches",
		body:  "When switching carries a high fixed cost, pay it fewer times.",
		steps: []string{
			"Group similar tasks and handle them in one run",
			"Turn off interrupt-driven notifications during focus blocks",
			"Finish a unit of work before checking anything else",
		},
		match: func(m *metrics.Metrics) bool {
			return m.Biomarkers.Switching.Available && m.Biomarkers.Switching.Score >= 2.0
		},
	},
	{
		title: "Budget for the effort tax",
		body:  "A compensated profile produces good output at above-normal cost; the cost needs managing even when the output looks fine.",
		steps: []string{
			"Schedule recovery time after sustained accurate work",
			"Treat end-of-day depletion as data, not weakness",
			"Prefer fewer concurrent commitments at higher quality",
		},
		match: func(m *metrics.Metrics) bool { return m.Flags.Compensation },
	},
	{
		title: "Match work to the fatigue curve",
		body:  "A measurable fatigue slope means time-on-task, not task difficulty, predicts errors.",
		steps: []string{
			"Shorten sessions before quality drops, not after",
			"Rotate task types to reset the drain",
		},
		match: func(m *metrics.Metrics) bool {
			return m.Biomarkers.Fatigue.Available && m.Biomarkers.Fatigue.Score > 3
		},
	},
}

// riskRules gates each risk indicator on its trigger condition
var riskRules = []struct {
	key   string
	match func(*metrics.Metrics) bool
}{
	{"occupational", func(m *metrics.Metrics) bool {
		return m.Composites.ALS.Category == metrics.ALSSignificant || m.Composites.ALS.Category == metrics.ALSSevere
	}},
	{"error_proneness", func(m *metrics.Metrics) bool {
		return m.Flags.Variability && m.Composites.Tau.Band != metrics.TauNormal
	}},
	{"burnout", func(m *metrics.Metrics) bool { return m.Flags.Compensation }},
	{"impulsive_decisions", func(m *metrics.Metrics) bool { return m.Flags.Impulsivity }},
	{"task_initiation", func(m *metrics.Metrics) bool { return m.Flags.ExecutiveDysfunction }},
}
