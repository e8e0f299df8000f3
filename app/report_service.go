package app

import (
	"context"
	"fmt"
	"sync"

	"cogmetrics/domain/core"
	"cogmetrics/domain/intake"
	"cogmetrics/domain/metrics"
	"cogmetrics/domain/report"
	"cogmetrics/internal/biomarkers"
	"cogmetrics/internal/flags"
	"cogmetrics/internal/narrative"
	"cogmetrics/internal/normalize"
	"cogmetrics/internal/scoring"
	"cogmetrics/internal/subtype"
	"cogmetrics/ports"

	"golang.org/x/sync/semaphore"
)

// Logger is the minimal logging surface the service needs
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Debug(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Debug(string, ...interface{}) {}

// ReportService orchestrates the full pipeline: raw capture, normalization,
// scoring, narrative composition, audience adaptation, and persistence.
// Capture, cache, and repository ports are optional; a nil port disables that
// stage, so the service works standalone for one-shot generation.
type ReportService struct {
	normalizer *normalize.Normalizer
	composer   *narrative.Composer
	library    *narrative.Library

	capture ports.CapturePort
	repo    ports.ReportRepository
	cache   ports.SnapshotCachePort
	logger  Logger

	batchSem *semaphore.Weighted
}

// ReportServiceConfig wires the service's collaborators
type ReportServiceConfig struct {
	Capture      ports.CapturePort
	Repository   ports.ReportRepository
	Cache        ports.SnapshotCachePort
	Library      *narrative.Library
	Logger       Logger
	BatchWorkers int
}

// NewReportService creates the orchestrating service
func NewReportService(cfg ReportServiceConfig) *ReportService {
	if cfg.Logger == nil {
		cfg.Logger = nopLogger{}
	}
	if cfg.Library == nil {
		cfg.Library = narrative.Default()
	}
	workers := cfg.BatchWorkers
	if workers < 1 {
		workers = 4
	}
	return &ReportService{
		normalizer: normalize.NewNormalizer(cfg.Logger),
		composer:   narrative.NewComposer(cfg.Library),
		library:    cfg.Library,
		capture:    cfg.Capture,
		repo:       cfg.Repository,
		cache:      cfg.Cache,
		logger:     cfg.Logger,
		batchSem:   semaphore.NewWeighted(int64(workers)),
	}
}

// GenerateRequest carries one report generation request
type GenerateRequest struct {
	Raw      *intake.RawAssessmentInput
	Audience report.Audience
	Seed     *int64
	Persist  bool
}

// Generate runs the full pipeline for one raw submission and returns the
// audience-adapted report. The pipeline is deterministic for a fixed seed.
func (s *ReportService) Generate(ctx context.Context, req GenerateRequest) (*report.Report, error) {
	if req.Raw == nil {
		return nil, core.ErrMalformedInput
	}
	if req.Audience == "" {
		req.Audience = report.AudiencePatient
	}

	if s.capture != nil && req.Persist {
		if _, err := s.capture.StoreRawInput(ctx, req.Raw); err != nil {
			return nil, fmt.Errorf("store raw input: %w", err)
		}
	}

	battery, err := s.normalizer.Normalize(req.Raw)
	if err != nil {
		return nil, fmt.Errorf("normalize session %s: %w", req.Raw.SessionID, err)
	}

	m := s.computeMetrics(ctx, battery)

	base, err := s.composer.Compose(battery, m, req.Seed)
	if err != nil {
		return nil, fmt.Errorf("compose report: %w", err)
	}

	adapted, err := narrative.Adapt(base, req.Audience, s.library)
	if err != nil {
		return nil, fmt.Errorf("adapt report: %w", err)
	}

	if s.repo != nil && req.Persist {
		if err := s.repo.SaveReport(ctx, adapted); err != nil {
			return nil, fmt.Errorf("save report: %w", err)
		}
	}

	s.logger.Info("generated report %s for session %s (als=%.0f, audience=%s)",
		adapted.ID, battery.SessionID, m.Composites.ALS.Value, req.Audience)
	return adapted, nil
}

// computeMetrics runs the scoring stages in dependency order. The snapshot
// cache short-circuits the numeric stages on an input-hash hit.
func (s *ReportService) computeMetrics(ctx context.Context, battery *intake.Battery) *metrics.Metrics {
	if s.cache != nil {
		if snap, ok, err := s.cache.Get(ctx, battery.InputHash); err == nil && ok {
			s.logger.Debug("snapshot cache hit for %s", battery.InputHash)
			return s.rehydrate(battery, snap)
		}
	}

	m := ComputeMetrics(battery)

	if s.cache != nil {
		snap := m.ToSnapshot()
		if err := s.cache.Put(ctx, battery.InputHash, &snap); err != nil {
			s.logger.Warn("snapshot cache write failed: %v", err)
		}
	}
	return m
}

// rehydrate rebuilds the metrics aggregate from battery data. Flat snapshots
// do not carry the full structured results, so stages run again; the cache
// saves repository round-trips, not CPU, for the numeric stages.
func (s *ReportService) rehydrate(battery *intake.Battery, _ *metrics.Snapshot) *metrics.Metrics {
	return ComputeMetrics(battery)
}

// ComputeMetrics is the pure scoring pipeline: deterministic, no I/O.
// Stage order matters: flags need timing and domains, the ALS needs the
// compensation flag, the subtype needs the flag set.
func ComputeMetrics(battery *intake.Battery) *metrics.Metrics {
	timing := scoring.ComputeTiming(battery.AllReactionTimes())
	domains := scoring.ComputeDomains(battery)
	overallAcc := scoring.OverallAccuracy(battery)
	omissionRate, commissionRate := scoring.PooledErrorRates(battery)

	tau := scoring.ComputeTau(timing)
	mc := scoring.ComputeMC(battery, timing)
	cpi := scoring.ComputeCPI(domains)

	flagInputs := flags.Inputs{
		Domains:         domains,
		Timing:          timing,
		Tau:             tau,
		OverallAccuracy: overallAcc,
		OmissionRate:    omissionRate,
	}
	fl := flags.Detect(flagInputs)

	als := scoring.ComputeALS(domains, battery.Questionnaire, fl.Compensation)

	bio := biomarkers.NewEngine().ComputeAll(biomarkers.BuildInput(battery, timing, overallAcc))
	st := subtype.Infer(battery.Questionnaire, fl)
	patterns := flags.DetectPatterns(flagInputs, fl)

	return &metrics.Metrics{
		Domains: domains,
		Timing:  timing,
		Composites: metrics.CompositeSet{
			Tau: tau,
			MC:  mc,
			CPI: cpi,
			ALS: als,
		},
		Flags:           fl,
		Patterns:        patterns,
		Biomarkers:      bio,
		Subtype:         st,
		OverallAccuracy: overallAcc,
		OmissionRate:    omissionRate,
		CommissionRate:  commissionRate,
	}
}

// BatchResult pairs one batch item's outcome with its position
type BatchResult struct {
	Index  int
	Report *report.Report
	Err    error
}

// GenerateBatch runs the pipeline over many submissions with bounded
// concurrency. Results preserve input order; one failure never aborts the
// rest of the batch.
func (s *ReportService) GenerateBatch(ctx context.Context, reqs []GenerateRequest) []BatchResult {
	results := make([]BatchResult, len(reqs))
	var wg sync.WaitGroup

	for i, req := range reqs {
		if err := s.batchSem.Acquire(ctx, 1); err != nil {
			results[i] = BatchResult{Index: i, Err: err}
			continue
		}
		wg.Add(1)
		go func(i int, req GenerateRequest) {
			defer wg.Done()
			defer s.batchSem.Release(1)
			r, err := s.Generate(ctx, req)
			results[i] = BatchResult{Index: i, Report: r, Err: err}
		}(i, req)
	}

	wg.Wait()
	return results
}

// Regenerate rebuilds a report from the stored raw capture for a session.
// Regeneration with the original seed reproduces the stored report exactly
// as long as the phrasing catalog is unchanged.
func (s *ReportService) Regenerate(ctx context.Context, sessionID core.SessionID, audience report.Audience, seed *int64) (*report.Report, error) {
	if s.capture == nil {
		return nil, fmt.Errorf("regenerate: no capture store configured: %w", core.ErrNotFound)
	}
	raw, err := s.capture.GetRawInput(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load raw input for %s: %w", sessionID, err)
	}
	return s.Generate(ctx, GenerateRequest{Raw: raw, Audience: audience, Seed: seed, Persist: true})
}
