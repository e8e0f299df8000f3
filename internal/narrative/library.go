package narrative

import (
	"strings"

	"cogmetrics/domain/core"
)

// Library is the immutable catalog of phrasing variants, keyed by topic path
// and severity/level. It is built once at process start and shared read-only
// across concurrent report generations; nothing ever writes to it after
// construction.
type Library struct {
	blocks map[string][]string
	terms  []TermPair
	hash   core.CatalogHash
}

// TermPair maps a clinician-register term onto its patient-friendly phrasing
type TermPair struct {
	Technical string
	Plain     string
}

var defaultLibrary = buildLibrary()

// Default returns the process-wide catalog. The returned Library is
// read-only; callers share it freely.
func Default() *Library {
	return defaultLibrary
}

// Variants returns the ordered phrasing variants under a topic path.
// Unknown paths return a single neutral fallback so composition never
// produces an empty block.
func (l *Library) Variants(parts ...string) []string {
	if v, ok := l.blocks[blockKey(parts...)]; ok {
		return v
	}
	return []string{"No narrative is available for this finding."}
}

// Has reports whether a topic path exists in the catalog
func (l *Library) Has(parts ...string) bool {
	_, ok := l.blocks[blockKey(parts...)]
	return ok
}

// Terms returns the patient-friendly substitution table, longest technical
// term first so nested terms substitute correctly.
func (l *Library) Terms() []TermPair {
	return l.terms
}

// Hash returns the catalog version fingerprint
func (l *Library) Hash() core.CatalogHash {
	return l.hash
}

func blockKey(parts ...string) string {
	return strings.Join(parts, "/")
}

func buildLibrary() *Library {
	blocks := map[string][]string{}
	for k, v := range mcBlocks {
		blocks[k] = v
	}
	for k, v := range cpiBlocks {
		blocks[k] = v
	}
	for k, v := range tauBlocks {
		blocks[k] = v
	}
	for k, v := range flagBlocks {
		blocks[k] = v
	}
	for k, v := range implicationBlocks {
		blocks[k] = v
	}
	for k, v := range subtypeBlocks {
		blocks[k] = v
	}
	for k, v := range impactBlocks {
		blocks[k] = v
	}
	for k, v := range riskBlocks {
		blocks[k] = v
	}
	for k, v := range framingBlocks {
		blocks[k] = v
	}

	counts := make(map[string]int, len(blocks))
	for k, v := range blocks {
		counts[k] = len(v)
	}

	return &Library{
		blocks: blocks,
		terms:  termTable,
		hash:   core.ComputeCatalogHash(counts),
	}
}
