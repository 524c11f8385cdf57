package services

import (
	"context"
	"testing"

	"github.com/ideaforge/ideaforge-backend/internal/data/audit"
	"github.com/ideaforge/ideaforge-backend/internal/data/repos/funnel"
	"github.com/ideaforge/ideaforge-backend/internal/data/repos/testutil"
	"github.com/ideaforge/ideaforge-backend/internal/domain"
)

func TestFunnelReportEmptyDatabase(t *testing.T) {
	gdb := testutil.OpenDB(t)
	log := testutil.Logger(t)
	rec := audit.NewRecorder(gdb, log)

	svc := NewFunnelReportService(log,
		funnel.NewIdeaRepo(gdb, log, rec),
		funnel.NewHypothesisRepo(gdb, log, funnel.NewICEScoreRepo(gdb, log), rec),
		funnel.NewExperimentRepo(gdb, log, rec),
		funnel.NewActivityRepo(gdb, log),
		nil,
	)

	report, err := svc.FunnelReport(context.Background(), 5, 10)
	if err != nil {
		t.Fatalf("funnel report: %v", err)
	}
	if report.IdeaToHypothesisRate != "0" {
		t.Fatalf("expected rate 0 on empty funnel, got %s", report.IdeaToHypothesisRate)
	}
	if report.HypothesisToExperimentRate != "0" || report.ExperimentValidationRate != "0" {
		t.Fatalf("expected all rates 0, got %s / %s",
			report.HypothesisToExperimentRate, report.ExperimentValidationRate)
	}
	if report.RunningExperiments != 0 {
		t.Fatalf("expected 0 running experiments, got %d", report.RunningExperiments)
	}
	if len(report.TopIdeas) != 0 || len(report.RecentActivity) != 0 {
		t.Fatalf("expected empty lists, got %d ideas, %d activities",
			len(report.TopIdeas), len(report.RecentActivity))
	}
}

func TestFunnelReportRates(t *testing.T) {
	gdb := testutil.OpenDB(t)
	log := testutil.Logger(t)
	rec := audit.NewRecorder(gdb, log)

	ideas := funnel.NewIdeaRepo(gdb, log, rec)
	svc := NewFunnelReportService(log,
		ideas,
		funnel.NewHypothesisRepo(gdb, log, funnel.NewICEScoreRepo(gdb, log), rec),
		funnel.NewExperimentRepo(gdb, log, rec),
		funnel.NewActivityRepo(gdb, log),
		nil,
	)

	user := testutil.SeedUser(t, gdb, "report@example.com")

	// Four ideas, two carrying hypotheses, one of those with a validated
	// hypothesis and one experiment running.
	ideaA := testutil.SeedIdea(t, gdb, user.ID, domain.IdeaStatusInHypothesis)
	ideaB := testutil.SeedIdea(t, gdb, user.ID, domain.IdeaStatusInHypothesis)
	testutil.SeedIdea(t, gdb, user.ID, domain.IdeaStatusNew)
	testutil.SeedIdea(t, gdb, user.ID, domain.IdeaStatusScored)

	hypA := testutil.SeedHypothesis(t, gdb, ideaA.ID, user.ID, domain.HypothesisStatusValidated)
	testutil.SeedHypothesis(t, gdb, ideaB.ID, user.ID, domain.HypothesisStatusDraft)

	testutil.SeedExperiment(t, gdb, hypA.ID, user.ID, domain.ExperimentStatusRunning)

	if err := rec.Record(context.Background(), audit.Entry{
		Type:        domain.ActivityIdeaSubmitted,
		Description: "seed",
		EntityType:  "idea",
		EntityID:    ideaA.ID,
		ActorID:     user.ID,
	}); err != nil {
		t.Fatalf("record: %v", err)
	}

	report, err := svc.FunnelReport(context.Background(), 3, 5)
	if err != nil {
		t.Fatalf("funnel report: %v", err)
	}

	if report.IdeaToHypothesisRate != "50.0" {
		t.Fatalf("expected idea->hypothesis 50.0, got %s", report.IdeaToHypothesisRate)
	}
	if report.HypothesisToExperimentRate != "50.0" {
		t.Fatalf("expected hypothesis->experiment 50.0, got %s", report.HypothesisToExperimentRate)
	}
	if report.ExperimentValidationRate != "100.0" {
		t.Fatalf("expected validation rate 100.0, got %s", report.ExperimentValidationRate)
	}
	if report.RunningExperiments != 1 {
		t.Fatalf("expected 1 running experiment, got %d", report.RunningExperiments)
	}
	if report.IdeasByStatus[domain.IdeaStatusInHypothesis] != 2 {
		t.Fatalf("unexpected idea counts: %v", report.IdeasByStatus)
	}
	if len(report.TopIdeas) != 3 {
		t.Fatalf("expected 3 top ideas, got %d", len(report.TopIdeas))
	}
	if len(report.RecentActivity) != 1 {
		t.Fatalf("expected 1 recent activity, got %d", len(report.RecentActivity))
	}
}
