package narrative

// The phrasing catalog. Array order within a leaf is stable: variant
// selection indexes into it deterministically when a seed is supplied.
// Wording lives here as data; composition logic never embeds prose.

// Level keys shared by the index blocks
const (
	levelStrong   = "strong"
	levelModerate = "moderate"
	levelReduced  = "reduced"
	levelLow      = "low"
)

// mcBlocks frames the focus-consistency index at four severity tiers
var mcBlocks = map[string][]string{
	"mc/strong": {
		"Focus consistency is a clear strength in this profile: moment-to-moment responding stayed tightly clustered around its own average, which is what well-regulated attention looks like at the trial level.",
		"The consistency index sits in the strong range. Responses arrived with steady timing and accuracy held its level throughout, indicating attention that stays engaged without costly resets.",
	},
	"mc/moderate": {
		"Focus consistency is within the typical range. Responding drifted in and out slightly, as nearly everyone's does, without the sustained instability that marks an attentional concern.",
		"The consistency index is unremarkable: normal variation is present but the overall picture is steady engagement.",
	},
	"mc/reduced": {
		"Focus consistency is reduced. The trial record shows stretches of steady responding interrupted by patches of scattered timing, a pattern consistent with attention cycling between engaged and disengaged states.",
		"The consistency index falls below the typical range: responding was noticeably less stable than its own best stretches, which usually costs more than the average figures reveal.",
	},
	"mc/low": {
		"Focus consistency is markedly low. Responding swung widely from trial to trial, which points to frequent attentional disengagement rather than a stable level of effort.",
		"The consistency index is well below the typical range. The instability itself, more than any single slow response, is the dominant feature of this record.",
	},
}

// cpiBlocks frames the cognitive-pairing index at four severity tiers
var cpiBlocks = map[string][]string{
	"cpi/strong": {
		"Coordinating memory and inhibition simultaneously cost little here: the pairing index is strong, meaning the two systems support each other rather than compete.",
		"The pairing index indicates efficient cooperation between holding information and withholding responses, a combination demanded by most real-world multi-step work.",
	},
	"cpi/moderate": {
		"The pairing index is in the typical range: running memory and self-control together carries the normal, modest overhead.",
		"Coordinating memory with response control shows an ordinary cost, neither a strength nor a concern on this testing.",
	},
	"cpi/reduced": {
		"The pairing index is reduced: either system alone performs better than both under joint load. Tasks that require remembering while resisting distraction will cost disproportionate effort.",
		"Coordination between working memory and inhibition is below the typical range, a pattern that commonly shows up as losing one's place the moment something must also be ignored.",
	},
	"cpi/low": {
		"The pairing index is markedly low. Joint demands on memory and self-control degrade both sharply, and multi-step tasks in distracting settings are exactly that joint demand.",
		"Coordinating memory with inhibition is a pronounced weakness in this record; performance holds up when either is taxed alone and drops when both are.",
	},
}

// tauBlocks frames the lapse proxy by its four bands
var tauBlocks = map[string][]string{
	"tau/normal": {
		"The lapse index is in the normal range: slow outlier responses were rare, so attention held without measurable micro-gaps.",
		"Attentional lapses were infrequent on this record; the slow tail of the response distribution is unremarkable.",
	},
	"tau/borderline": {
		"The lapse index is borderline. A modest excess of unusually slow responses suggests attention occasionally released its grip, though not yet at a clearly atypical rate.",
		"There is a mild excess of lapse-range responses, a borderline finding worth reading alongside the consistency index rather than alone.",
	},
	"tau/elevated": {
		"The lapse index is elevated: unusually slow responses occurred well above the typical rate, each one representing a moment where attention briefly dropped out entirely.",
		"The slow tail of the response distribution is clearly enlarged. These lapse events are the single best cognitive correlate of everyday attention complaints.",
	},
	"tau/severe": {
		"The lapse index is severely elevated. Responding was repeatedly punctuated by very slow responses, indicating attention disengaged often and took real time to return.",
		"Lapse-range responses dominate the slow end of this record to a severe degree; sustained tasks will be experienced as far harder than their content justifies.",
	},
}

// flagBlocks carries detected/absent text per behavioral flag
var flagBlocks = map[string][]string{
	"flag/inattention/detected": {
		"Sustained-attention measures fell below threshold: targets were missed at an elevated rate, the signature of attention drifting off task.",
		"The inattention marker is present. Missed targets outnumber what typical attentional engagement produces on this task.",
	},
	"flag/inattention/absent": {
		"Sustained-attention measures stayed above the concern threshold; target detection was maintained throughout.",
	},
	"flag/impulsivity/detected": {
		"The inhibition score fell below threshold: responses were released on trials that required withholding, the classic impulsivity signature.",
		"The impulsivity marker is present. Stop-signal trials drew responses at an elevated rate.",
	},
	"flag/impulsivity/absent": {
		"Response inhibition stayed above the concern threshold; withholding a prepared response was reliably managed.",
	},
	"flag/variability/detected": {
		"Response timing was flagged as unstable: the spread of reaction times relative to their average exceeded the variability threshold.",
		"The variability marker is present. Timing consistency, not average speed, is the affected quantity.",
	},
	"flag/variability/absent": {
		"Response timing stability stayed within the typical range.",
	},
	"flag/compensation/detected": {
		"A compensation pattern was detected: accuracy stayed high while speed or stability paid for it. Strong results achieved this way carry a hidden effort cost that standard accuracy measures do not show.",
		"The record shows effortful masking - high accuracy bought with slowed or unstable responding. This pattern is easy to miss because the visible output looks fine.",
	},
	"flag/compensation/absent": {
		"No compensation pattern was detected; accuracy was not being propped up by extra time or effort.",
	},
	"flag/hyperfocus/detected": {
		"A hyperfocus tendency was detected: unusually locked-in, low-variability performance on structured tasks. This is a genuine strength in the tested format that may not transfer to self-directed settings.",
	},
	"flag/hyperfocus/absent": {
		"No hyperfocus tendency was evident on this testing.",
	},
	"flag/executive_dysfunction/detected": {
		"Both working memory and flexibility scores fell below threshold together, the combination that defines the executive-difficulty marker.",
		"The executive marker is present: holding information and shifting between rules were both measurably reduced.",
	},
	"flag/executive_dysfunction/absent": {
		"Executive measures did not fall below threshold in combination.",
	},
	"flag/processing_deficit/detected": {
		"Simple response speed fell below threshold, independent of accuracy. Tasks downstream of detection inherit this time cost.",
	},
	"flag/processing_deficit/absent": {
		"Simple response speed stayed within the typical range.",
	},
}

// implicationBlocks keys clinical implications by the MC x CPI severity
// cross-product (strong/reduced on each axis)
var implicationBlocks = map[string][]string{
	"implications/mc_strong_cpi_strong": {
		"With consistency and pairing both intact, the core machinery of focused, coordinated work is functioning well; any everyday difficulties are more likely situational than cognitive on this evidence.",
		"Both higher-order indices are preserved. Whatever drives reported difficulties, the measured attention-coordination system is not the bottleneck.",
	},
	"implications/mc_strong_cpi_reduced": {
		"Attention holds steady, but coordinating memory with self-control is costly. Expect single-focus work to go well and interleaved, multi-constraint work to be the reliable pain point.",
		"The profile separates cleanly: stable attention, expensive coordination. Difficulty should track task structure - the more simultaneous constraints, the worse the experience.",
	},
	"implications/mc_reduced_cpi_strong": {
		"Coordination capacity is intact but attention wavers beneath it. Performance will be structure-sensitive: external pacing and short blocks recruit real ability that long unstructured stretches squander.",
		"The limiting factor is engagement stability, not processing capability. When attention is captured, the coordination machinery works; the problem is how often it must re-engage.",
	},
	"implications/mc_reduced_cpi_reduced": {
		"Both consistency and pairing are reduced, compounding each other: unstable attention keeps interrupting already-costly coordination. This combination has the strongest day-to-day signature of any in this battery.",
		"With both higher-order indices reduced, difficulties will not be confined to one kind of task; sustained, coordinated work of any sort carries elevated cost on this evidence.",
	},
}

// subtypeBlocks describes the resolved presentation
var subtypeBlocks = map[string][]string{
	"subtype/inattentive": {
		"The overall pattern aligns with a predominantly inattentive presentation: difficulty arises when attention must be sustained or directed, while impulse control is comparatively preserved.",
		"Findings fit an inattentive presentation. The measured and reported difficulties cluster around staying engaged rather than around restraint.",
	},
	"subtype/hyperactive-impulsive": {
		"The overall pattern aligns with a hyperactive-impulsive presentation: restraint and response control carry the difficulty, while sustained attention is comparatively preserved.",
		"Findings fit a hyperactive-impulsive presentation, with the error profile dominated by premature responding rather than missed targets.",
	},
	"subtype/combined": {
		"The overall pattern aligns with a combined presentation: both attentional and impulsive-hyperactive features are present at meaningful levels, and neither dimension explains the record alone.",
		"Findings fit a combined presentation. Inattention markers and inhibition markers both reached threshold, which is the defining combination.",
	},
	"subtype/subthreshold": {
		"The overall pattern is subthreshold: some features are present but no presentation pattern is reached at a clinically meaningful level on this testing.",
		"Findings do not consolidate into a specific presentation; measured and reported features remain below the defining thresholds.",
	},
}

// impactBlocks describes domain-specific real-life impact, keyed by domain
// and whether the score is reduced or typical
var impactBlocks = map[string][]string{
	"impact/sustained_attention/reduced": {
		"Reduced sustained attention typically shows up as unfinished long reads, drifting in meetings, and work that needs several passes because the first pass had gaps.",
		"In daily life this level of sustained attention tends to mean losing the thread in long tasks and needing external prompts to return to them.",
	},
	"impact/sustained_attention/typical": {
		"Sustained attention at this level supports ordinary demands - long documents, meetings, extended tasks - without unusual cost.",
	},
	"impact/response_inhibition/reduced": {
		"Reduced inhibition tends to appear as interrupting before thoughts complete, sending before re-reading, and committing to actions a half-second before evaluating them.",
		"Day to day, inhibition at this level means the gap between impulse and action is shorter than intended - purchases, replies, and remarks happen early.",
	},
	"impact/response_inhibition/typical": {
		"Response inhibition at this level supports normal self-monitoring; acting before thinking is not a measured concern.",
	},
	"impact/working_memory/reduced": {
		"Reduced working memory shows up as re-reading instructions mid-task, losing mental arithmetic halfway, and multi-step directions degrading into the first and last step.",
		"In practice this working-memory level means information held 'in mind' decays quickly once anything else demands attention.",
	},
	"impact/working_memory/typical": {
		"Working memory at this level holds multi-step instructions and intermediate results without unusual loss.",
	},
	"impact/interference_control/reduced": {
		"Reduced interference control means nearby conversations, notifications, and one's own tangent thoughts win attention more often than intended; open-plan and multi-window environments are disproportionately costly.",
	},
	"impact/interference_control/typical": {
		"Interference control at this level screens out competing input adequately in ordinary environments.",
	},
	"impact/cognitive_flexibility/reduced": {
		"Reduced flexibility appears as a real settling-in cost after every switch - between projects, tools, or conversational topics - and a strong pull to finish one thing before touching another.",
	},
	"impact/cognitive_flexibility/typical": {
		"Cognitive flexibility at this level supports ordinary task switching without a notable re-entry tax.",
	},
	"impact/processing_speed/reduced": {
		"Reduced processing speed inflates the time cost of everything downstream: reading, deciding, and responding all run correct but slow, which reads as effortful rather than impaired.",
	},
	"impact/processing_speed/typical": {
		"Processing speed at this level keeps pace with everyday cognitive demands.",
	},
}

// riskBlocks describes risk indicators surfaced when their trigger conditions
// hold. These are forward-looking descriptions, not diagnoses.
var riskBlocks = map[string][]string{
	"risk/occupational": {
		"Elevated overall scores of this kind are associated with underperformance relative to ability in academic and occupational settings, particularly in roles with long unstructured work blocks.",
	},
	"risk/error_proneness": {
		"The combination of lapses and variability measured here is associated with elevated rates of small execution errors - missed fields, skipped steps, transcription slips - rather than errors of understanding.",
	},
	"risk/burnout": {
		"A compensation pattern sustained over time is associated with disproportionate fatigue and burnout risk, because acceptable output is being produced at above-normal cognitive cost.",
	},
	"risk/impulsive_decisions": {
		"Reduced inhibition at this level is associated with elevated rates of regretted quick decisions in daily life, including financial and interpersonal ones.",
	},
	"risk/task_initiation": {
		"Executive findings of this kind are associated with difficulty initiating and organizing multi-step work, independent of motivation or understanding.",
	},
}

// framingBlocks holds section-framing variants that are not index-specific
var framingBlocks = map[string][]string{
	"intake/opening": {
		"This report summarizes a structured cognitive assessment battery measuring attention, self-control, memory, and speed, combined with a standardized self-report questionnaire.",
		"The following report is built from a battery of standardized cognitive tasks plus a self-report symptom questionnaire, analyzed together.",
	},
	"validity/clean": {
		"The session completed without interruption and the recorded data passed basic validity screening; results below can be read at face value.",
		"No validity concerns were recorded for this session; the battery completed normally.",
	},
	"validity/flagged": {
		"This session recorded validity concerns noted below. Results remain reportable but should be read with appropriate caution.",
	},
	"validity/partial": {
		"Not every task in the battery produced usable data. Sections that depend on missing tasks state so explicitly rather than estimating around the gap.",
	},
	"reliability/strong": {
		"The volume and internal consistency of trial data in this session support reliable index estimates; repeat testing would be expected to produce closely similar figures.",
	},
	"reliability/moderate": {
		"Trial volume in this session is adequate but not generous; indices are stable at the band level, and small numeric differences between sessions should not be over-read.",
	},
	"reliability/limited": {
		"Trial volume in this session was limited. Band-level findings are reportable; precise figures should be treated as provisional.",
	},
	"summary/TYPICAL": {
		"Overall, measured performance and self-report combine to a typical-range result. Nothing in this battery points to a meaningful attention or executive concern.",
		"Taken together, the indices land in the typical range; this testing provides no meaningful signal of an attentional condition.",
	},
	"summary/MILD": {
		"Overall, the combined result is mildly elevated: a few markers depart from typical, but the weight of evidence remains modest on this testing alone.",
	},
	"summary/MODERATE": {
		"Overall, the combined result is moderately elevated. Several independent markers point the same direction, a pattern worth discussing with a qualified professional.",
		"The battery produced a moderate overall elevation, with agreement across more than one index - not conclusive, but no longer incidental.",
	},
	"summary/SIGNIFICANT": {
		"Overall, the combined result is significantly elevated: cognitive markers and self-report converge strongly. A professional evaluation is clearly warranted on this evidence.",
	},
	"summary/SEVERE": {
		"Overall, the combined result is severely elevated, with strong agreement between measured performance and self-report. This result warrants professional evaluation; it is the strongest signal this battery produces.",
	},
}

// termTable is the patient-friendly substitution table. Ordered longest
// technical term first so contained terms substitute correctly. Matching is
// case-insensitive.
// termTable is ordered longest technical term first so multi-word terms
// substitute before their substrings.
var termTable = []TermPair{
	{"root mean squared successive difference", "trial-to-trial swing measure"},
	{"inverse efficiency score", "time-per-correct-answer measure"},
	{"coefficient of variation", "timing steadiness measure"},
	{"cognitive flexibility", "switching between tasks"},
	{"interference control", "tuning out distractions"},
	{"response inhibition", "stopping yourself from reacting"},
	{"sustained attention", "staying focused over time"},
	{"standard deviation", "spread"},
	{"commission errors", "pressed-when-you-should-not errors"},
	{"commission error", "pressed-when-you-should-not error"},
	{"processing speed", "thinking speed"},
	{"omission errors", "missed-target errors"},
	{"omission error", "missed-target error"},
	{"working memory", "holding things in mind"},
	{"reaction time", "response speed"},
	{"ex-Gaussian", "response-timing model"},
	{"psychomotor", "movement-and-response"},
	{"stop-signal", "stop-cue"},
	{"prepotent", "automatic"},
}
