package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ideaforge/ideaforge-backend/internal/data/repos/funnel"
	"github.com/ideaforge/ideaforge-backend/internal/domain"
	"github.com/ideaforge/ideaforge-backend/internal/platform/dbctx"
	"github.com/ideaforge/ideaforge-backend/internal/platform/logger"
)

const (
	reportCacheKey = "funnel:report"
	reportCacheTTL = 30 * time.Second
)

// ReportCache is a best-effort read-side cache; failures are logged and
// never surfaced.
type ReportCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type FunnelReport struct {
	IdeasByStatus      map[domain.IdeaStatus]int64      `json:"ideas_by_status"`
	HypothesesByStatus map[domain.HypothesisStatus]int64 `json:"hypotheses_by_status"`
	RunningExperiments int64                            `json:"running_experiments"`

	// Conversion rates as percentages with one decimal; "0" when the
	// denominator is zero.
	IdeaToHypothesisRate       string `json:"idea_to_hypothesis_rate"`
	HypothesisToExperimentRate string `json:"hypothesis_to_experiment_rate"`
	ExperimentValidationRate   string `json:"experiment_validation_rate"`

	TopIdeas       []*domain.Idea     `json:"top_ideas"`
	RecentActivity []*domain.Activity `json:"recent_activity"`

	GeneratedAt time.Time `json:"generated_at"`
}

// FunnelReportService is the read-only aggregation side. It never mutates
// state and is safe to run concurrently with any workflow operation.
type FunnelReportService interface {
	FunnelReport(ctx context.Context, topN, recentN int) (*FunnelReport, error)
}

type funnelReportService struct {
	log *logger.Logger

	ideas funnel.IdeaRepo
	hyps  funnel.HypothesisRepo
	exps  funnel.ExperimentRepo
	acts  funnel.ActivityRepo

	cache ReportCache
	now   func() time.Time
}

// NewFunnelReportService builds the aggregator; cache may be nil.
func NewFunnelReportService(
	baseLog *logger.Logger,
	ideas funnel.IdeaRepo,
	hyps funnel.HypothesisRepo,
	exps funnel.ExperimentRepo,
	acts funnel.ActivityRepo,
	cache ReportCache,
) FunnelReportService {
	return &funnelReportService{
		log:   baseLog.With("service", "FunnelReportService"),
		ideas: ideas,
		hyps:  hyps,
		exps:  exps,
		acts:  acts,
		cache: cache,
		now:   time.Now,
	}
}

func (s *funnelReportService) FunnelReport(ctx context.Context, topN, recentN int) (*FunnelReport, error) {
	if topN <= 0 {
		topN = 5
	}
	if recentN <= 0 {
		recentN = 10
	}

	cacheKey := fmt.Sprintf("%s:%d:%d", reportCacheKey, topN, recentN)
	if s.cache != nil {
		var cached FunnelReport
		hit, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			s.log.Warn("report cache read failed", "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	report := &FunnelReport{GeneratedAt: s.now().UTC()}
	var ideaCount, hypCount, expCount, validatedCount int64

	g, gctx := errgroup.WithContext(ctx)
	dbc := func() dbctx.Context { return dbctx.Context{Ctx: gctx} }

	g.Go(func() error {
		counts, err := s.ideas.CountByStatus(dbc())
		if err != nil {
			return err
		}
		report.IdeasByStatus = counts
		for _, c := range counts {
			ideaCount += c
		}
		return nil
	})
	g.Go(func() error {
		counts, err := s.hyps.CountByStatus(dbc())
		if err != nil {
			return err
		}
		report.HypothesesByStatus = counts
		for _, c := range counts {
			hypCount += c
		}
		return nil
	})
	g.Go(func() error {
		var err error
		expCount, err = s.exps.CountAll(dbc())
		return err
	})
	g.Go(func() error {
		var err error
		report.RunningExperiments, err = s.exps.CountRunning(dbc())
		return err
	})
	g.Go(func() error {
		var err error
		validatedCount, err = s.hyps.CountValidated(dbc())
		return err
	})
	g.Go(func() error {
		var err error
		report.TopIdeas, err = s.ideas.TopByRICE(dbc(), topN)
		return err
	})
	g.Go(func() error {
		var err error
		report.RecentActivity, err = s.acts.Recent(dbc(), recentN)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.IdeaToHypothesisRate = conversionRate(hypCount, ideaCount)
	report.HypothesisToExperimentRate = conversionRate(expCount, hypCount)
	report.ExperimentValidationRate = conversionRate(validatedCount, expCount)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, report, reportCacheTTL); err != nil {
			s.log.Warn("report cache write failed", "error", err)
		}
	}
	return report, nil
}

// conversionRate formats num/den as a percentage with one decimal. A zero
// denominator yields "0", never an error or NaN.
func conversionRate(num, den int64) string {
	if den == 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", float64(num)/float64(den)*100)
}
