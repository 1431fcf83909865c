// Package analysis orchestrates the pipeline: fundamentals retrieval,
// metric derivation, signal classification, rating aggregation, and report
// composition. Failures are per-company; one bad ticker never aborts a run.
package analysis

import (
	"context"
	"strings"
	"time"

	"github.com/ternarybob/aestimo/internal/common"
	"github.com/ternarybob/aestimo/internal/fundstore"
	"github.com/ternarybob/aestimo/internal/metrics"
	"github.com/ternarybob/aestimo/internal/models"
	"github.com/ternarybob/aestimo/internal/services/macro"
	"github.com/ternarybob/aestimo/internal/services/rating"
	"github.com/ternarybob/aestimo/internal/services/report"
	"github.com/ternarybob/aestimo/internal/signals"
	"github.com/ternarybob/arbor"
)

// Service runs company analyses against a fundamentals store.
type Service struct {
	store        fundstore.Store
	ratingCfg    rating.Config
	minGrowthPct *float64
	logger       arbor.ILogger
	now          func() time.Time
}

// NewService creates an analysis service. Warning check names come from
// configuration; unknown names are ignored. A non-zero configured
// min-growth threshold becomes the default filter for every run.
func NewService(store fundstore.Store, cfg common.AnalysisConfig, logger arbor.ILogger) *Service {
	s := &Service{
		store:     store,
		ratingCfg: rating.Config{Checks: checksFromNames(cfg.WarningChecks)},
		logger:    logger,
		now:       time.Now,
	}
	if cfg.MinGrowthPct != 0 {
		min := cfg.MinGrowthPct
		s.minGrowthPct = &min
	}
	return s
}

// checksFromNames maps configured check names onto signal metrics.
func checksFromNames(names []string) []signals.Metric {
	var checks []signals.Metric
	for _, name := range names {
		switch name {
		case "earnings_quality":
			checks = append(checks, signals.MetricEarnings)
		case "leverage":
			checks = append(checks, signals.MetricLeverage)
		case "capital_efficiency":
			checks = append(checks, signals.MetricEfficiency)
		}
	}
	return checks
}

// Request selects companies and analysis options for one run.
type Request struct {
	Companies []string `json:"companies"`
	// Sectors, when non-empty, restricts the run to companies in the
	// named sectors. Matching is case-insensitive on the normalized
	// sector name.
	Sectors []string `json:"sectors,omitempty"`
	// MinGrowthPct skips companies whose full-period revenue growth is
	// below the threshold. Nil disables the filter; companies with
	// unknown growth are never skipped.
	MinGrowthPct *float64 `json:"min_growth_pct,omitempty"`
	// Macro, when set, adds the macro overlay section to every report.
	Macro *macro.Conditions `json:"macro,omitempty"`
}

// CompanyResult is the outcome for one requested company. Exactly one of
// Report, Error, or Skipped describes the outcome.
type CompanyResult struct {
	Company string         `json:"company"`
	Report  *models.Report `json:"report,omitempty"`
	Error   string         `json:"error,omitempty"`
	Skipped string         `json:"skipped,omitempty"`
}

// Response is the outcome of one analysis run.
type Response struct {
	Results     []CompanyResult `json:"results"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// Companies lists what the underlying store can serve.
func (s *Service) Companies(ctx context.Context) ([]models.CompanyInfo, error) {
	return s.store.Companies(ctx)
}

// Analyze runs the pipeline for each requested company. Results preserve
// request order.
func (s *Service) Analyze(ctx context.Context, req Request) Response {
	asOf := s.now().UTC().Truncate(time.Second)

	var assessment *macro.Assessment
	if req.Macro != nil {
		a := macro.Assess(*req.Macro)
		assessment = &a
	}

	// The request threshold overrides the configured default.
	if req.MinGrowthPct == nil {
		req.MinGrowthPct = s.minGrowthPct
	}

	results := make([]CompanyResult, 0, len(req.Companies))
	for _, company := range req.Companies {
		results = append(results, s.analyzeOne(ctx, company, req, assessment, asOf))
	}

	return Response{Results: results, GeneratedAt: asOf}
}

func (s *Service) analyzeOne(ctx context.Context, company string, req Request, assessment *macro.Assessment, asOf time.Time) CompanyResult {
	result := CompanyResult{Company: company}

	rows, err := s.store.Rows(ctx, company)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn().Err(err).Str("company", company).Msg("Fundamentals lookup failed")
		}
		result.Error = err.Error()
		return result
	}

	if len(req.Sectors) > 0 && !sectorMatches(rows, req.Sectors) {
		result.Skipped = "sector outside requested filter"
		return result
	}

	series, err := metrics.Derive(rows)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	if req.MinGrowthPct != nil {
		if g := series.Summary.FullPeriodRevenueGrowthPct; g != nil && *g < *req.MinGrowthPct {
			result.Skipped = "full-period revenue growth below requested minimum"
			return result
		}
	}

	latest, previous := series.Latest()
	set := signals.Classify(latest, previous)
	verdict := rating.Aggregate(series.Summary, latest, set, s.ratingCfg)

	sector := models.SectorGeneral
	if len(rows) > 0 && rows[0].Sector != "" {
		sector = rows[0].Sector
	}

	composed := report.Compose(report.Input{
		Company: displayName(rows, company),
		Sector:  sector,
		Series:  series,
		Signals: set,
		Rating:  verdict,
		Macro:   assessment,
		AsOf:    asOf,
	})

	if s.logger != nil {
		s.logger.Debug().
			Str("company", composed.Company).
			Str("rating", composed.Rating.Rating).
			Int("warnings", composed.Rating.WarningCount).
			Msg("Report composed")
	}

	result.Report = &composed
	return result
}

// sectorMatches reports whether the company's normalized sector is in the
// requested set.
func sectorMatches(rows []models.FundamentalRow, sectors []string) bool {
	if len(rows) == 0 {
		return false
	}
	got := models.NormalizeSector(string(rows[0].Sector))
	for _, want := range sectors {
		if strings.EqualFold(string(got), strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}

// displayName prefers the store's canonical spelling over the request's.
func displayName(rows []models.FundamentalRow, requested string) string {
	if len(rows) > 0 && rows[0].Company != "" {
		return rows[0].Company
	}
	return requested
}
