package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/ideaforge/ideaforge-backend/internal/data/audit"
	"github.com/ideaforge/ideaforge-backend/internal/data/db"
	"github.com/ideaforge/ideaforge-backend/internal/data/repos/funnel"
	"github.com/ideaforge/ideaforge-backend/internal/data/repos/testutil"
	"github.com/ideaforge/ideaforge-backend/internal/domain"
	"github.com/ideaforge/ideaforge-backend/internal/platform/apperr"
	"github.com/ideaforge/ideaforge-backend/internal/platform/dbctx"
)

type workflowFixture struct {
	gdb   *gorm.DB
	txr   db.TxRunner
	ideas funnel.IdeaRepo
	hyps  funnel.HypothesisRepo
	exps  funnel.ExperimentRepo
	svc   WorkflowService
	actor *domain.User
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()
	gdb := testutil.OpenDB(t)
	log := testutil.Logger(t)
	rec := audit.NewRecorder(gdb, log)

	ideas := funnel.NewIdeaRepo(gdb, log, rec)
	ices := funnel.NewICEScoreRepo(gdb, log)
	hyps := funnel.NewHypothesisRepo(gdb, log, ices, rec)
	exps := funnel.NewExperimentRepo(gdb, log, rec)
	results := funnel.NewExperimentResultRepo(gdb, log)
	criteria := funnel.NewSuccessCriteriaRepo(gdb, log)
	mvps := funnel.NewMVPRepo(gdb, log)
	lessons := funnel.NewLessonRepo(gdb, log)

	txr := db.NewSerializableTxRunner(gdb, log, 5*time.Second)
	svc := NewWorkflowService(txr, log, ideas, hyps, ices, exps, results, criteria, mvps, lessons, rec)

	return &workflowFixture{
		gdb:   gdb,
		txr:   txr,
		ideas: ideas,
		hyps:  hyps,
		exps:  exps,
		svc:   svc,
		actor: testutil.SeedUser(t, gdb, "workflow@example.com"),
	}
}

func TestWorkflowFullFunnel(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()
	actorID := f.actor.ID

	idea, err := f.svc.SubmitIdea(ctx, SubmitIdeaInput{
		Title:    "self-serve onboarding",
		Category: "growth",
		UserID:   actorID,
	})
	if err != nil {
		t.Fatalf("submit idea: %v", err)
	}
	if idea.Status != domain.IdeaStatusNew {
		t.Fatalf("expected NEW, got %s", idea.Status)
	}

	idea, err = f.svc.ScoreIdea(ctx, ScoreIdeaInput{
		IdeaID: idea.ID, Reach: 5000, Impact: 4, Confidence: 80, Effort: 30,
		ActorID: actorID,
	})
	if err != nil {
		t.Fatalf("score idea: %v", err)
	}
	if idea.Status != domain.IdeaStatusScored {
		t.Fatalf("expected SCORED, got %s", idea.Status)
	}
	if idea.RICEScore == 0 {
		t.Fatalf("expected derived RICE score, got 0")
	}

	idea, err = f.svc.SelectForHypothesis(ctx, idea.ID, actorID)
	if err != nil {
		t.Fatalf("select idea: %v", err)
	}
	if idea.Status != domain.IdeaStatusSelected {
		t.Fatalf("expected SELECTED, got %s", idea.Status)
	}

	hyp, err := f.svc.CreateHypothesisFromIdea(ctx, CreateHypothesisInput{
		IdeaID:    idea.ID,
		Title:     "guided setup raises activation",
		Statement: "if we guide setup, weekly activation rises",
		ActorID:   actorID,
	})
	if err != nil {
		t.Fatalf("create hypothesis: %v", err)
	}
	if hyp.Status != domain.HypothesisStatusDraft || hyp.Level != domain.HypothesisLevel1 {
		t.Fatalf("expected DRAFT/LEVEL_1, got %s/%s", hyp.Status, hyp.Level)
	}
	dbc := dbctx.Context{Ctx: ctx}
	idea, err = f.ideas.GetByID(dbc, idea.ID)
	if err != nil {
		t.Fatalf("reload idea: %v", err)
	}
	if idea.Status != domain.IdeaStatusInHypothesis {
		t.Fatalf("expected idea IN_HYPOTHESIS, got %s", idea.Status)
	}

	scorer := testutil.SeedUser(t, f.gdb, "second-scorer@example.com")
	hyp, err = f.svc.PerformICEScoring(ctx, PerformICEScoringInput{
		HypothesisID: hyp.ID,
		Scores: []ICEScoreInput{
			{UserID: actorID, Impact: 4, Confidence: 80, Ease: 3},
			{UserID: scorer.ID, Impact: 4, Confidence: 70, Ease: 2},
		},
		ActorID: actorID,
	})
	if err != nil {
		t.Fatalf("ice scoring: %v", err)
	}
	if hyp.Status != domain.HypothesisStatusScored {
		t.Fatalf("expected SCORED, got %s", hyp.Status)
	}
	// round(mean(4,4) * mean(80,70) * mean(3,2)) = round(4*75*2.5)
	if hyp.FinalPriority != 750 {
		t.Fatalf("expected final priority 750, got %d", hyp.FinalPriority)
	}

	hyp, err = f.svc.CompleteDeskResearch(ctx, CompleteDeskResearchInput{
		HypothesisID: hyp.ID,
		Notes:        "three competitor teardowns",
		Sources:      []string{"https://example.com/report"},
		Criteria:     []CriterionInput{{Name: "activation", TargetValue: 40, Unit: "%"}},
		ActorID:      actorID,
	})
	if err != nil {
		t.Fatalf("desk research: %v", err)
	}
	if hyp.Status != domain.HypothesisStatusResearch || hyp.Level != domain.HypothesisLevel2 {
		t.Fatalf("expected RESEARCH/LEVEL_2, got %s/%s", hyp.Status, hyp.Level)
	}

	exp, err := f.svc.CreateExperimentFromHypothesis(ctx, CreateExperimentInput{
		HypothesisID: hyp.ID,
		Title:        "guided setup A/B",
		Type:         "ab_test",
		ActorID:      actorID,
	})
	if err != nil {
		t.Fatalf("create experiment: %v", err)
	}
	if exp.Status != domain.ExperimentStatusPlanning {
		t.Fatalf("expected PLANNING, got %s", exp.Status)
	}
	hyp, err = f.hyps.GetByID(dbc, hyp.ID)
	if err != nil {
		t.Fatalf("reload hypothesis: %v", err)
	}
	if hyp.Status != domain.HypothesisStatusReadyForTesting {
		t.Fatalf("expected READY_FOR_TESTING, got %s", hyp.Status)
	}

	exp, err = f.svc.StartExperiment(ctx, exp.ID, actorID)
	if err != nil {
		t.Fatalf("start experiment: %v", err)
	}
	if exp.Status != domain.ExperimentStatusRunning || exp.ActualStart == nil {
		t.Fatalf("expected RUNNING with actual start, got %s", exp.Status)
	}

	exp, err = f.svc.CompleteExperiment(ctx, CompleteExperimentInput{
		ExperimentID: exp.ID,
		Results:      []ResultInput{{MetricName: "activation", Value: 43.5, Unit: "%"}},
		Conclusion:   domain.ConclusionValidated,
		LessonText:   "guidance matters most in the first session",
		ActorID:      actorID,
	})
	if err != nil {
		t.Fatalf("complete experiment: %v", err)
	}
	if exp.Status != domain.ExperimentStatusCompleted || exp.ActualEnd == nil {
		t.Fatalf("expected COMPLETED with actual end, got %s", exp.Status)
	}
	hyp, err = f.hyps.GetByID(dbc, hyp.ID)
	if err != nil {
		t.Fatalf("reload hypothesis: %v", err)
	}
	if hyp.Status != domain.HypothesisStatusValidated {
		t.Fatalf("expected VALIDATED, got %s", hyp.Status)
	}
	if hyp.Conclusion == nil || *hyp.Conclusion != domain.ConclusionValidated {
		t.Fatalf("expected conclusion stored, got %v", hyp.Conclusion)
	}

	mvp, err := f.svc.CreateMVPFromExperiment(ctx, CreateMVPInput{
		ExperimentID: exp.ID,
		Type:         "feature",
		FeatureSpec:  "guided setup wizard v1",
		ActorID:      actorID,
	})
	if err != nil {
		t.Fatalf("create mvp: %v", err)
	}
	if mvp.Status != domain.MVPStatusPlanned {
		t.Fatalf("expected PLANNED, got %s", mvp.Status)
	}

	var lessons int64
	if err := f.gdb.Model(&domain.Lesson{}).Count(&lessons).Error; err != nil {
		t.Fatalf("count lessons: %v", err)
	}
	if lessons != 1 {
		t.Fatalf("expected 1 lesson, got %d", lessons)
	}
	var activities int64
	if err := f.gdb.Model(&domain.Activity{}).Count(&activities).Error; err != nil {
		t.Fatalf("count activities: %v", err)
	}
	if activities == 0 {
		t.Fatalf("expected activity trail, got none")
	}
}

func TestWorkflowInvalidStateLeavesNoWrites(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	idea := testutil.SeedIdea(t, f.gdb, f.actor.ID, domain.IdeaStatusInHypothesis)
	hyp := testutil.SeedHypothesis(t, f.gdb, idea.ID, f.actor.ID, domain.HypothesisStatusDraft)

	_, err := f.svc.CreateExperimentFromHypothesis(ctx, CreateExperimentInput{
		HypothesisID: hyp.ID,
		Title:        "premature experiment",
		ActorID:      f.actor.ID,
	})
	if !apperr.IsInvalidState(err) {
		t.Fatalf("expected InvalidStateError, got %v", err)
	}
	var ise *apperr.InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("expected typed error, got %T", err)
	}
	if ise.Actual != string(domain.HypothesisStatusDraft) {
		t.Fatalf("expected actual DRAFT, got %s", ise.Actual)
	}

	var exps int64
	if err := f.gdb.Model(&domain.Experiment{}).Count(&exps).Error; err != nil {
		t.Fatalf("count experiments: %v", err)
	}
	if exps != 0 {
		t.Fatalf("expected no experiment rows, got %d", exps)
	}
	reloaded, err := f.hyps.GetByID(dbctx.Context{Ctx: ctx}, hyp.ID)
	if err != nil {
		t.Fatalf("reload hypothesis: %v", err)
	}
	if reloaded.Status != domain.HypothesisStatusDraft {
		t.Fatalf("expected status unchanged, got %s", reloaded.Status)
	}
}

func TestWorkflowMVPRequiresCompletedExperiment(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	idea := testutil.SeedIdea(t, f.gdb, f.actor.ID, domain.IdeaStatusInHypothesis)
	hyp := testutil.SeedHypothesis(t, f.gdb, idea.ID, f.actor.ID, domain.HypothesisStatusInExperiment)
	exp := testutil.SeedExperiment(t, f.gdb, hyp.ID, f.actor.ID, domain.ExperimentStatusRunning)

	_, err := f.svc.CreateMVPFromExperiment(ctx, CreateMVPInput{
		ExperimentID: exp.ID,
		ActorID:      f.actor.ID,
	})
	if !apperr.IsInvalidState(err) {
		t.Fatalf("expected InvalidStateError, got %v", err)
	}
}

func TestWorkflowScoreIdeaValidation(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()
	idea := testutil.SeedIdea(t, f.gdb, f.actor.ID, domain.IdeaStatusNew)

	_, err := f.svc.ScoreIdea(ctx, ScoreIdeaInput{
		IdeaID: idea.ID, Reach: 100, Impact: 2, Confidence: 50, Effort: 0,
		ActorID: f.actor.ID,
	})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError for zero effort, got %v", err)
	}

	reloaded, err := f.ideas.GetByID(dbctx.Context{Ctx: ctx}, idea.ID)
	if err != nil {
		t.Fatalf("reload idea: %v", err)
	}
	if reloaded.Status != domain.IdeaStatusNew {
		t.Fatalf("expected status unchanged, got %s", reloaded.Status)
	}
}

func TestWorkflowRescoringReplacesPreviousScore(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	idea := testutil.SeedIdea(t, f.gdb, f.actor.ID, domain.IdeaStatusInHypothesis)
	hyp := testutil.SeedHypothesis(t, f.gdb, idea.ID, f.actor.ID, domain.HypothesisStatusDraft)

	if _, err := f.svc.PerformICEScoring(ctx, PerformICEScoringInput{
		HypothesisID: hyp.ID,
		Scores:       []ICEScoreInput{{UserID: f.actor.ID, Impact: 4, Confidence: 80, Ease: 3}},
		ActorID:      f.actor.ID,
	}); err != nil {
		t.Fatalf("first scoring: %v", err)
	}

	updated, err := f.svc.PerformICEScoring(ctx, PerformICEScoringInput{
		HypothesisID: hyp.ID,
		Scores:       []ICEScoreInput{{UserID: f.actor.ID, Impact: 5, Confidence: 90, Ease: 2}},
		ActorID:      f.actor.ID,
	})
	if err != nil {
		t.Fatalf("re-scoring: %v", err)
	}
	// One scorer, replaced row: round(5*90*2) = 900.
	if updated.FinalPriority != 900 {
		t.Fatalf("expected final priority 900, got %d", updated.FinalPriority)
	}

	var scores int64
	if err := f.gdb.Model(&domain.ICEScore{}).Count(&scores).Error; err != nil {
		t.Fatalf("count scores: %v", err)
	}
	if scores != 1 {
		t.Fatalf("expected 1 score row after re-scoring, got %d", scores)
	}
}

// failingHypothesisUpdates fails every status write so a transition that
// has already written other rows cannot finish its transaction.
type failingHypothesisUpdates struct {
	funnel.HypothesisRepo
	err error
}

func (r *failingHypothesisUpdates) Update(dbc dbctx.Context, hyp *domain.Hypothesis) error {
	return r.err
}

func TestCompleteExperimentRollsBackAllWrites(t *testing.T) {
	gdb := testutil.OpenDB(t)
	log := testutil.Logger(t)
	rec := audit.NewRecorder(gdb, log)

	ideas := funnel.NewIdeaRepo(gdb, log, rec)
	ices := funnel.NewICEScoreRepo(gdb, log)
	hyps := funnel.NewHypothesisRepo(gdb, log, ices, rec)
	exps := funnel.NewExperimentRepo(gdb, log, rec)
	results := funnel.NewExperimentResultRepo(gdb, log)
	criteria := funnel.NewSuccessCriteriaRepo(gdb, log)
	mvps := funnel.NewMVPRepo(gdb, log)
	lessons := funnel.NewLessonRepo(gdb, log)

	sentinel := errors.New("hypothesis write refused")
	failing := &failingHypothesisUpdates{HypothesisRepo: hyps, err: sentinel}

	txr := db.NewSerializableTxRunner(gdb, log, 5*time.Second)
	svc := NewWorkflowService(txr, log, ideas, failing, ices, exps, results, criteria, mvps, lessons, rec)

	actor := testutil.SeedUser(t, gdb, "atomicity@example.com")
	idea := testutil.SeedIdea(t, gdb, actor.ID, domain.IdeaStatusInHypothesis)
	hyp := testutil.SeedHypothesis(t, gdb, idea.ID, actor.ID, domain.HypothesisStatusInExperiment)
	exp := testutil.SeedExperiment(t, gdb, hyp.ID, actor.ID, domain.ExperimentStatusRunning)

	// The experiment and result rows are written before the hypothesis
	// status; the injected failure lands between the two.
	_, err := svc.CompleteExperiment(context.Background(), CompleteExperimentInput{
		ExperimentID: exp.ID,
		Results:      []ResultInput{{MetricName: "activation", Value: 12, Unit: "%"}},
		Conclusion:   domain.ConclusionValidated,
		ActorID:      actor.ID,
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected injected error, got %v", err)
	}

	dbc := dbctx.Context{Ctx: context.Background()}
	reloadedExp, err := exps.GetByID(dbc, exp.ID)
	if err != nil {
		t.Fatalf("reload experiment: %v", err)
	}
	if reloadedExp.Status != domain.ExperimentStatusRunning || reloadedExp.ActualEnd != nil {
		t.Fatalf("expected experiment untouched, got %s (actual end %v)",
			reloadedExp.Status, reloadedExp.ActualEnd)
	}
	reloadedHyp, err := hyps.GetByID(dbc, hyp.ID)
	if err != nil {
		t.Fatalf("reload hypothesis: %v", err)
	}
	if reloadedHyp.Status != domain.HypothesisStatusInExperiment || reloadedHyp.Conclusion != nil {
		t.Fatalf("expected hypothesis untouched, got %s (conclusion %v)",
			reloadedHyp.Status, reloadedHyp.Conclusion)
	}
	var resultRows int64
	if err := gdb.Model(&domain.ExperimentResult{}).Count(&resultRows).Error; err != nil {
		t.Fatalf("count results: %v", err)
	}
	if resultRows != 0 {
		t.Fatalf("expected no result rows committed, got %d", resultRows)
	}
}

func TestTxRunnerRollsBackOnError(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	idea := testutil.SeedIdea(t, f.gdb, f.actor.ID, domain.IdeaStatusNew)
	sentinel := errors.New("boom")

	err := f.txr.InTx(ctx, func(dbc dbctx.Context) error {
		loaded, err := f.ideas.GetByID(dbc, idea.ID)
		if err != nil {
			return err
		}
		loaded.Status = domain.IdeaStatusArchived
		if err := f.ideas.Update(dbc, loaded); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}

	reloaded, err := f.ideas.GetByID(dbctx.Context{Ctx: ctx}, idea.ID)
	if err != nil {
		t.Fatalf("reload idea: %v", err)
	}
	if reloaded.Status != domain.IdeaStatusNew {
		t.Fatalf("expected rollback to NEW, got %s", reloaded.Status)
	}
}
