package narrative

import (
	"fmt"
	"strings"
	"unicode"

	"cogmetrics/domain/report"
)

// Adapt renders a composed report for an audience. The input is never
// mutated; a fully independent copy is returned. Section order and count are
// preserved exactly - adaptation rewrites wording, never structure.
func Adapt(r *report.Report, audience report.Audience, library *Library) (*report.Report, error) {
	if r == nil {
		return nil, fmt.Errorf("adapt: %w", errNilReport)
	}
	if library == nil {
		library = Default()
	}

	out := cloneReport(r)
	out.Audience = audience

	switch audience {
	case report.AudiencePatient:
		adaptPatient(out, library.Terms())
	case report.AudienceClinician:
		adaptClinician(out)
	default:
		return nil, fmt.Errorf("adapt: unknown audience %q", audience)
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

var errNilReport = fmt.Errorf("nil report")

// adaptPatient rewrites every technical term in place using the catalog's
// substitution table. Matching is case-insensitive; replacements preserve
// the leading capitalization of the text they replace.
func adaptPatient(r *report.Report, terms []TermPair) {
	sub := func(s string) string { return substituteTerms(s, terms) }
	rewriteReport(r, sub)
}

// adaptClinician appends a technical annotation to the sections that carry
// computed indices. The base register is already technical, so the clinician
// rendering adds rather than rewrites.
func adaptClinician(r *report.Report) {
	snap := r.Snapshot
	for i := range r.Sections {
		switch r.Sections[i].Kind {
		case report.SectionCoreMarkers:
			r.Sections[i].Paragraphs = append(r.Sections[i].Paragraphs,
				fmt.Sprintf("[annotation] ALS %.1f, MC %.1f, CPI %.1f, Tau %.1f ms, RT CV %.3f.",
					snap.ALS, snap.MC, snap.CPI, snap.Tau, snap.RTCV))
		case report.SectionReliability:
			r.Sections[i].Paragraphs = append(r.Sections[i].Paragraphs,
				fmt.Sprintf("[annotation] n=%d pooled trials, mean RT %.1f ms, SD %.1f ms.",
					snap.SampleSize, snap.MeanRT, snap.RTSD))
		}
	}
}

// rewriteReport applies a string transform to every rendered text field of
// the report: summary, titles stay, paragraph and entry text change.
func rewriteReport(r *report.Report, f func(string) string) {
	for i := range r.ExecutiveSummary {
		r.ExecutiveSummary[i] = f(r.ExecutiveSummary[i])
	}
	for i := range r.Sections {
		s := &r.Sections[i]
		for j := range s.Paragraphs {
			s.Paragraphs[j] = f(s.Paragraphs[j])
		}
		for j := range s.Entries {
			s.Entries[j].Title = f(s.Entries[j].Title)
			s.Entries[j].Body = f(s.Entries[j].Body)
			for k := range s.Entries[j].Items {
				s.Entries[j].Items[k] = f(s.Entries[j].Items[k])
			}
		}
	}
}

// substituteTerms replaces every occurrence of each term, case-insensitively.
// Terms arrive longest-first from the catalog so multi-word terms win over
// their substrings.
func substituteTerms(s string, terms []TermPair) string {
	for _, t := range terms {
		s = replaceFold(s, t.Technical, t.Plain)
	}
	return s
}

// replaceFold is a case-insensitive strings.ReplaceAll that keeps the
// capitalization of the first letter of each match.
func replaceFold(s, old, new string) string {
	if old == "" {
		return s
	}
	lower := strings.ToLower(s)
	target := strings.ToLower(old)

	var b strings.Builder
	for {
		idx := strings.Index(lower, target)
		if idx < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:idx])
		matched := s[idx : idx+len(old)]
		b.WriteString(matchCase(matched, new))
		s = s[idx+len(old):]
		lower = lower[idx+len(target):]
	}
}

func matchCase(matched, replacement string) string {
	if matched == "" || replacement == "" {
		return replacement
	}
	first := []rune(matched)[0]
	if unicode.IsUpper(first) {
		rs := []rune(replacement)
		rs[0] = unicode.ToUpper(rs[0])
		return string(rs)
	}
	return replacement
}

func cloneReport(r *report.Report) *report.Report {
	out := *r
	out.ExecutiveSummary = append([]string(nil), r.ExecutiveSummary...)
	out.Sections = make([]report.Section, len(r.Sections))
	for i, s := range r.Sections {
		cs := s
		cs.Paragraphs = append([]string(nil), s.Paragraphs...)
		cs.Entries = make([]report.Entry, len(s.Entries))
		for j, e := range s.Entries {
			ce := e
			ce.Items = append([]string(nil), e.Items...)
			cs.Entries[j] = ce
		}
		out.Sections[i] = cs
	}
	return &out
}
