package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/ideaforge/ideaforge-backend/internal/data/audit"
	"github.com/ideaforge/ideaforge-backend/internal/data/db"
	"github.com/ideaforge/ideaforge-backend/internal/data/repos/funnel"
	"github.com/ideaforge/ideaforge-backend/internal/domain"
	"github.com/ideaforge/ideaforge-backend/internal/platform/apperr"
	"github.com/ideaforge/ideaforge-backend/internal/platform/dbctx"
	"github.com/ideaforge/ideaforge-backend/internal/platform/logger"
	"github.com/ideaforge/ideaforge-backend/internal/scoring"
)

type SubmitIdeaInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	UserID      uuid.UUID `json:"user_id"`
}

type ScoreIdeaInput struct {
	IdeaID     uuid.UUID `json:"idea_id"`
	Reach      float64   `json:"reach"`
	Impact     float64   `json:"impact"`
	Confidence float64   `json:"confidence"`
	Effort     float64   `json:"effort"`
	ActorID    uuid.UUID `json:"actor_id"`
}

type CreateHypothesisInput struct {
	IdeaID    uuid.UUID `json:"idea_id"`
	Title     string    `json:"title"`
	Statement string    `json:"statement"`
	ActorID   uuid.UUID `json:"actor_id"`
}

type ICEScoreInput struct {
	UserID     uuid.UUID `json:"user_id"`
	Impact     float64   `json:"impact"`
	Confidence float64   `json:"confidence"`
	Ease       float64   `json:"ease"`
	Comment    string    `json:"comment"`
}

type PerformICEScoringInput struct {
	HypothesisID uuid.UUID       `json:"hypothesis_id"`
	Scores       []ICEScoreInput `json:"scores"`
	ActorID      uuid.UUID       `json:"actor_id"`
}

type CriterionInput struct {
	Name        string  `json:"name"`
	TargetValue float64 `json:"target_value"`
	Unit        string  `json:"unit"`
}

type CompleteDeskResearchInput struct {
	HypothesisID  uuid.UUID        `json:"hypothesis_id"`
	Notes         string           `json:"notes"`
	Sources       []string         `json:"sources"`
	Risks         []string         `json:"risks"`
	Opportunities []string         `json:"opportunities"`
	Criteria      []CriterionInput `json:"criteria"`
	ActorID       uuid.UUID        `json:"actor_id"`
}

type CreateExperimentInput struct {
	HypothesisID uuid.UUID        `json:"hypothesis_id"`
	Title        string           `json:"title"`
	Type         string           `json:"type"`
	StartDate    *time.Time       `json:"start_date"`
	EndDate      *time.Time       `json:"end_date"`
	Criteria     []CriterionInput `json:"criteria"`
	ActorID      uuid.UUID        `json:"actor_id"`
}

type ResultInput struct {
	MetricName string  `json:"metric_name"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	Notes      string  `json:"notes"`
}

type CompleteExperimentInput struct {
	ExperimentID uuid.UUID         `json:"experiment_id"`
	Results      []ResultInput     `json:"results"`
	Conclusion   domain.Conclusion `json:"conclusion"`
	LessonText   string            `json:"lesson_text"`
	ActorID      uuid.UUID         `json:"actor_id"`
}

type CreateMVPInput struct {
	ExperimentID uuid.UUID `json:"experiment_id"`
	Type         string    `json:"type"`
	FeatureSpec  string    `json:"feature_spec"`
	ActorID      uuid.UUID `json:"actor_id"`
}

// WorkflowService owns every funnel transition. Each operation validates its
// preconditions, performs all writes inside one serializable transaction via
// the injected TxRunner, and appends activity records after commit.
type WorkflowService interface {
	SubmitIdea(ctx context.Context, in SubmitIdeaInput) (*domain.Idea, error)
	ScoreIdea(ctx context.Context, in ScoreIdeaInput) (*domain.Idea, error)
	SelectForHypothesis(ctx context.Context, ideaID, actorID uuid.UUID) (*domain.Idea, error)
	CreateHypothesisFromIdea(ctx context.Context, in CreateHypothesisInput) (*domain.Hypothesis, error)
	PerformICEScoring(ctx context.Context, in PerformICEScoringInput) (*domain.Hypothesis, error)
	CompleteDeskResearch(ctx context.Context, in CompleteDeskResearchInput) (*domain.Hypothesis, error)
	CreateExperimentFromHypothesis(ctx context.Context, in CreateExperimentInput) (*domain.Experiment, error)
	StartExperiment(ctx context.Context, experimentID, actorID uuid.UUID) (*domain.Experiment, error)
	CompleteExperiment(ctx context.Context, in CompleteExperimentInput) (*domain.Experiment, error)
	CreateMVPFromExperiment(ctx context.Context, in CreateMVPInput) (*domain.MVP, error)
}

type workflowService struct {
	txr db.TxRunner
	log *logger.Logger

	ideas    funnel.IdeaRepo
	hyps     funnel.HypothesisRepo
	ices     funnel.ICEScoreRepo
	exps     funnel.ExperimentRepo
	results  funnel.ExperimentResultRepo
	criteria funnel.SuccessCriteriaRepo
	mvps     funnel.MVPRepo
	lessons  funnel.LessonRepo

	audit audit.Recorder
	now   func() time.Time
}

func NewWorkflowService(
	txr db.TxRunner,
	baseLog *logger.Logger,
	ideas funnel.IdeaRepo,
	hyps funnel.HypothesisRepo,
	ices funnel.ICEScoreRepo,
	exps funnel.ExperimentRepo,
	results funnel.ExperimentResultRepo,
	criteria funnel.SuccessCriteriaRepo,
	mvps funnel.MVPRepo,
	lessons funnel.LessonRepo,
	rec audit.Recorder,
) WorkflowService {
	return &workflowService{
		txr:      txr,
		log:      baseLog.With("service", "WorkflowService"),
		ideas:    ideas,
		hyps:     hyps,
		ices:     ices,
		exps:     exps,
		results:  results,
		criteria: criteria,
		mvps:     mvps,
		lessons:  lessons,
		audit:    rec,
		now:      time.Now,
	}
}

func ideaStatusIn(idea *domain.Idea, allowed ...domain.IdeaStatus) error {
	for _, a := range allowed {
		if idea.Status == a {
			return nil
		}
	}
	expected := make([]string, len(allowed))
	for i, a := range allowed {
		expected[i] = string(a)
	}
	return &apperr.InvalidStateError{
		Entity: "idea", ID: idea.ID,
		Expected: expected, Actual: string(idea.Status),
	}
}

func hypothesisStatusIn(hyp *domain.Hypothesis, allowed ...domain.HypothesisStatus) error {
	for _, a := range allowed {
		if hyp.Status == a {
			return nil
		}
	}
	expected := make([]string, len(allowed))
	for i, a := range allowed {
		expected[i] = string(a)
	}
	return &apperr.InvalidStateError{
		Entity: "hypothesis", ID: hyp.ID,
		Expected: expected, Actual: string(hyp.Status),
	}
}

func experimentStatusIn(exp *domain.Experiment, allowed ...domain.ExperimentStatus) error {
	for _, a := range allowed {
		if exp.Status == a {
			return nil
		}
	}
	expected := make([]string, len(allowed))
	for i, a := range allowed {
		expected[i] = string(a)
	}
	return &apperr.InvalidStateError{
		Entity: "experiment", ID: exp.ID,
		Expected: expected, Actual: string(exp.Status),
	}
}

func (s *workflowService) SubmitIdea(ctx context.Context, in SubmitIdeaInput) (*domain.Idea, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, &apperr.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if in.UserID == uuid.Nil {
		return nil, &apperr.ValidationError{Field: "user_id", Reason: "must be set"}
	}

	now := s.now().UTC()
	idea := &domain.Idea{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Priority:    in.Priority,
		Status:      domain.IdeaStatusNew,
		CreatedByID: in.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := s.txr.InTx(ctx, func(dbc dbctx.Context) error {
		_, err := s.ideas.Create(dbc, idea)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.audit.RecordBestEffort(ctx, audit.Entry{
		Type:        domain.ActivityIdeaSubmitted,
		Description: fmt.Sprintf("idea %q submitted", idea.Title),
		EntityType:  "idea",
		EntityID:    idea.ID,
		ActorID:     in.UserID,
	})
	return idea, nil
}

func (s *workflowService) ScoreIdea(ctx context.Context, in ScoreIdeaInput) (*domain.Idea, error) {
	if err := scoring.ValidateRICEInputs(in.Reach, in.Impact, in.Confidence, in.Effort); err != nil {
		return nil, err
	}

	var idea *domain.Idea
	err := s.txr.InTx(ctx, func(dbc dbctx.Context) error {
		var err error
		idea, err = s.ideas.GetByID(dbc, in.IdeaID)
		if err != nil {
			return err
		}

		idea.Reach = in.Reach
		idea.Impact = in.Impact
		idea.Confidence = in.Confidence
		idea.Effort = in.Effort
		idea.RICEScore = scoring.RICE(in.Reach, in.Impact, in.Confidence, in.Effort)
		idea.Status = domain.IdeaStatusScored
		idea.UpdatedAt = s.now().UTC()
		return s.ideas.Update(dbc, idea)
	})
	if err != nil {
		return nil, err
	}

	s.audit.RecordBestEffort(ctx, audit.Entry{
		Type:        domain.ActivityIdeaScored,
		Description: fmt.Sprintf("idea %q scored, RICE %.2f", idea.Title, idea.RICEScore),
		EntityType:  "idea",
		EntityID:    idea.ID,
		ActorID:     in.ActorID,
	})
	return idea, nil
}

func (s *workflowService) SelectForHypothesis(ctx context.Context, ideaID, actorID uuid.UUID) (*domain.Idea, error) {
	var idea *domain.Idea
	err := s.txr.InTx(ctx, func(dbc dbctx.Context) error {
		var err error
		idea, err = s.ideas.GetByID(dbc, ideaID)
		if err != nil {
			return err
		}
		if err := ideaStatusIn(idea, domain.IdeaStatusScored, domain.IdeaStatusNew); err != nil {
			return err
		}
		idea.Status = domain.IdeaStatusSelected
		idea.UpdatedAt = s.now().UTC()
		return s.ideas.Update(dbc, idea)
	})
	if err != nil {
		return nil, err
	}

	s.audit.RecordBestEffort(ctx, audit.Entry{
		Type:        domain.ActivityIdeaSelected,
		Description: fmt.Sprintf("idea %q selected for hypothesis work", idea.Title),
		EntityType:  "idea",
		EntityID:    idea.ID,
		ActorID:     actorID,
	})
	return idea, nil
}

func (s *workflowService) CreateHypothesisFromIdea(ctx context.Context, in CreateHypothesisInput) (*domain.Hypothesis, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, &apperr.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	var hyp *domain.Hypothesis
	err := s.txr.InTx(ctx, func(dbc dbctx.Context) error {
		idea, err := s.ideas.GetByID(dbc, in.IdeaID)
		if err != nil {
			return err
		}
		if err := ideaStatusIn(idea, domain.IdeaStatusSelected, domain.IdeaStatusInHypothesis); err != nil {
			return err
		}

		now := s.now().UTC()
		hyp = &domain.Hypothesis{
			ID:          uuid.New(),
			IdeaID:      idea.ID,
			Title:       in.Title,
			Statement:   in.Statement,
			Level:       domain.HypothesisLevel1,
			Status:      domain.HypothesisStatusDraft,
			CreatedByID: in.ActorID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if _, err := s.hyps.Create(dbc, hyp); err != nil {
			return err
		}

		idea.Status = domain.IdeaStatusInHypothesis
		idea.UpdatedAt = now
		return s.ideas.Update(dbc, idea)
	})
	if err != nil {
		return nil, err
	}

	s.audit.RecordBestEffort(ctx, audit.Entry{
		Type:        domain.ActivityHypothesisCreated,
		Description: fmt.Sprintf("hypothesis %q created from idea", hyp.Title),
		EntityType:  "hypothesis",
		EntityID:    hyp.ID,
		ActorID:     in.ActorID,
	})
	return hyp, nil
}

func (s *workflowService) PerformICEScoring(ctx context.Context, in PerformICEScoringInput) (*domain.Hypothesis, error) {
	if len(in.Scores) == 0 {
		return nil, &apperr.ValidationError{Field: "scores", Reason: "at least one scorer is required"}
	}
	for _, sc := range in.Scores {
		if sc.UserID == uuid.Nil {
			return nil, &apperr.ValidationError{Field: "scores.user_id", Reason: "must be set"}
		}
	}

	var hyp *domain.Hypothesis
	err := s.txr.InTx(ctx, func(dbc dbctx.Context) error {
		var err error
		hyp, err = s.hyps.GetByID(dbc, in.HypothesisID)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		rows := make([]*domain.ICEScore, len(in.Scores))
		for i, sc := range in.Scores {
			rows[i] = &domain.ICEScore{
				ID:           uuid.New(),
				HypothesisID: hyp.ID,
				UserID:       sc.UserID,
				Impact:       sc.Impact,
				Confidence:   sc.Confidence,
				Ease:         sc.Ease,
				Comment:      sc.Comment,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
		}
		if _, err := s.ices.Upsert(dbc, rows); err != nil {
			return err
		}

		// Recompute from every stored score, not just this batch, so the
		// derived field always reflects the full scorer set.
		all, err := s.ices.GetByHypothesisID(dbc, hyp.ID)
		if err != nil {
			return err
		}
		inputs := make([]scoring.ICEInput, len(all))
		for i, row := range all {
			inputs[i] = scoring.ICEInput{
				Impact:     row.Impact,
				Confidence: row.Confidence,
				Ease:       row.Ease,
			}
		}
		hyp.FinalPriority = scoring.ICEFinalPriority(inputs)
		hyp.Status = domain.HypothesisStatusScored
		hyp.UpdatedAt = now
		return s.hyps.Update(dbc, hyp)
	})
	if err != nil {
		return nil, err
	}

	s.audit.RecordBestEffort(ctx, audit.Entry{
		Type:        domain.ActivityICEScored,
		Description: fmt.Sprintf("hypothesis %q ICE-scored by %d scorer(s), priority %d", hyp.Title, len(in.Scores), hyp.FinalPriority),
		EntityType:  "hypothesis",
		EntityID:    hyp.ID,
		ActorID:     in.ActorID,
	})
	return hyp, nil
}

func (s *workflowService) CompleteDeskResearch(ctx context.Context, in CompleteDeskResearchInput) (*domain.Hypothesis, error) {
	var hyp *domain.Hypothesis
	err := s.txr.InTx(ctx, func(dbc dbctx.Context) error {
		var err error
		hyp, err = s.hyps.GetByID(dbc, in.HypothesisID)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		hyp.ResearchNotes = in.Notes
		if hyp.Sources, err = toJSON(in.Sources); err != nil {
			return err
		}
		if hyp.Risks, err = toJSON(in.Risks); err != nil {
			return err
		}
		if hyp.Opportunities, err = toJSON(in.Opportunities); err != nil {
			return err
		}
		hyp.Status = domain.HypothesisStatusResearch
		hyp.Level = domain.HypothesisLevel2
		hyp.UpdatedAt = now
		if err := s.hyps.Update(dbc, hyp); err != nil {
			return err
		}

		if len(in.Criteria) > 0 {
			rows := make([]*domain.SuccessCriteria, len(in.Criteria))
			for i, c := range in.Criteria {
				hypID := hyp.ID
				rows[i] = &domain.SuccessCriteria{
					ID:           uuid.New(),
					HypothesisID: &hypID,
					Name:         c.Name,
					TargetValue:  c.TargetValue,
					Unit:         c.Unit,
					CreatedAt:    now,
					UpdatedAt:    now,
				}
			}
			if _, err := s.criteria.Create(dbc, rows); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.RecordBestEffort(ctx, audit.Entry{
		Type:        domain.ActivityDeskResearchCompleted,
		Description: fmt.Sprintf("desk research completed for hypothesis %q", hyp.Title),
		EntityType:  "hypothesis",
		EntityID:    hyp.ID,
		ActorID:     in.ActorID,
	})
	return hyp, nil
}

func (s *workflowService) CreateExperimentFromHypothesis(ctx context.Context, in CreateExperimentInput) (*domain.Experiment, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, &apperr.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	var exp *domain.Experiment
	err := s.txr.InTx(ctx, func(dbc dbctx.Context) error {
		hyp, err := s.hyps.GetByID(dbc, in.HypothesisID)
		if err != nil {
			return err
		}
		if err := hypothesisStatusIn(hyp, domain.HypothesisStatusResearch, domain.HypothesisStatusExperimentDesign); err != nil {
			return err
		}

		now := s.now().UTC()
		exp = &domain.Experiment{
			ID:           uuid.New(),
			HypothesisID: hyp.ID,
			Title:        in.Title,
			Type:         in.Type,
			Status:       domain.ExperimentStatusPlanning,
			StartDate:    in.StartDate,
			EndDate:      in.EndDate,
			CreatedByID:  in.ActorID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := s.exps.Create(dbc, exp); err != nil {
			return err
		}

		if len(in.Criteria) > 0 {
			rows := make([]*domain.SuccessCriteria, len(in.Criteria))
			for i, c := range in.Criteria {
				expID := exp.ID
				rows[i] = &domain.SuccessCriteria{
					ID:           uuid.New(),
					ExperimentID: &expID,
					Name:         c.Name,
					TargetValue:  c.TargetValue,
					Unit:         c.Unit,
					CreatedAt:    now,
					UpdatedAt:    now,
				}
			}
			if _, err := s.criteria.Create(dbc, rows); err != nil {
				return err
			}
		}

		hyp.Status = domain.HypothesisStatusReadyForTesting
		hyp.UpdatedAt = now
		return s.hyps.Update(dbc, hyp)
	})
	if err != nil {
		return nil, err
	}

	s.audit.RecordBestEffort(ctx, audit.Entry{
		Type:        domain.ActivityExperimentCreated,
		Description: fmt.Sprintf("experiment %q created from hypothesis", exp.Title),
		EntityType:  "experiment",
		EntityID:    exp.ID,
		ActorID:     in.ActorID,
	})
	return exp, nil
}

func (s *workflowService) StartExperiment(ctx context.Context, experimentID, actorID uuid.UUID) (*domain.Experiment, error) {
	var exp *domain.Experiment
	err := s.txr.InTx(ctx, func(dbc dbctx.Context) error {
		var err error
		exp, err = s.exps.GetByID(dbc, experimentID)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		exp.Status = domain.ExperimentStatusRunning
		exp.ActualStart = &now
		exp.UpdatedAt = now
		if err := s.exps.Update(dbc, exp); err != nil {
			return err
		}

		hyp, err := s.hyps.GetByID(dbc, exp.HypothesisID)
		if err != nil {
			return err
		}
		hyp.Status = domain.HypothesisStatusInExperiment
		hyp.UpdatedAt = now
		return s.hyps.Update(dbc, hyp)
	})
	if err != nil {
		return nil, err
	}

	s.audit.RecordBestEffort(ctx, audit.Entry{
		Type:        domain.ActivityExperimentStarted,
		Description: fmt.Sprintf("experiment %q started", exp.Title),
		EntityType:  "experiment",
		EntityID:    exp.ID,
		ActorID:     actorID,
	})
	return exp, nil
}

// conclusionToHypothesisStatus maps an experiment conclusion onto the
// owning hypothesis status. Inconclusive outcomes close the hypothesis as
// COMPLETED without a verdict.
func conclusionToHypothesisStatus(c domain.Conclusion) domain.HypothesisStatus {
	switch c {
	case domain.ConclusionValidated:
		return domain.HypothesisStatusValidated
	case domain.ConclusionInvalidated:
		return domain.HypothesisStatusInvalidated
	default:
		return domain.HypothesisStatusCompleted
	}
}

func (s *workflowService) CompleteExperiment(ctx context.Context, in CompleteExperimentInput) (*domain.Experiment, error) {
	if !in.Conclusion.IsValid() {
		return nil, &apperr.ValidationError{Field: "conclusion", Reason: fmt.Sprintf("unknown conclusion %q", in.Conclusion)}
	}

	var exp *domain.Experiment
	err := s.txr.InTx(ctx, func(dbc dbctx.Context) error {
		var err error
		exp, err = s.exps.GetByID(dbc, in.ExperimentID)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		if len(in.Results) > 0 {
			rows := make([]*domain.ExperimentResult, len(in.Results))
			for i, res := range in.Results {
				rows[i] = &domain.ExperimentResult{
					ID:           uuid.New(),
					ExperimentID: exp.ID,
					MetricName:   res.MetricName,
					Value:        res.Value,
					Unit:         res.Unit,
					Notes:        res.Notes,
					CreatedAt:    now,
					UpdatedAt:    now,
				}
			}
			if _, err := s.results.Create(dbc, rows); err != nil {
				return err
			}
		}

		exp.Status = domain.ExperimentStatusCompleted
		exp.ActualEnd = &now
		exp.UpdatedAt = now
		if err := s.exps.Update(dbc, exp); err != nil {
			return err
		}

		hyp, err := s.hyps.GetByID(dbc, exp.HypothesisID)
		if err != nil {
			return err
		}
		conclusion := in.Conclusion
		hyp.Conclusion = &conclusion
		hyp.Status = conclusionToHypothesisStatus(conclusion)
		hyp.UpdatedAt = now
		if err := s.hyps.Update(dbc, hyp); err != nil {
			return err
		}

		if strings.TrimSpace(in.LessonText) != "" {
			lesson := &domain.Lesson{
				ID:           uuid.New(),
				ExperimentID: exp.ID,
				HypothesisID: hyp.ID,
				Text:         in.LessonText,
				CreatedByID:  in.ActorID,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if _, err := s.lessons.Create(dbc, lesson); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.RecordBestEffort(ctx, audit.Entry{
		Type:        domain.ActivityExperimentCompleted,
		Description: fmt.Sprintf("experiment %q completed with conclusion %s", exp.Title, in.Conclusion),
		EntityType:  "experiment",
		EntityID:    exp.ID,
		ActorID:     in.ActorID,
	})
	return exp, nil
}

func (s *workflowService) CreateMVPFromExperiment(ctx context.Context, in CreateMVPInput) (*domain.MVP, error) {
	var mvp *domain.MVP
	err := s.txr.InTx(ctx, func(dbc dbctx.Context) error {
		exp, err := s.exps.GetByID(dbc, in.ExperimentID)
		if err != nil {
			return err
		}
		if err := experimentStatusIn(exp, domain.ExperimentStatusCompleted); err != nil {
			return err
		}

		now := s.now().UTC()
		mvp = &domain.MVP{
			ID:           uuid.New(),
			ExperimentID: exp.ID,
			Type:         in.Type,
			Status:       domain.MVPStatusPlanned,
			FeatureSpec:  in.FeatureSpec,
			CreatedByID:  in.ActorID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		_, err = s.mvps.Create(dbc, mvp)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.audit.RecordBestEffort(ctx, audit.Entry{
		Type:        domain.ActivityMVPCreated,
		Description: "MVP created from completed experiment",
		EntityType:  "mvp",
		EntityID:    mvp.ID,
		ActorID:     in.ActorID,
	})
	return mvp, nil
}

func toJSON(values []string) (datatypes.JSON, error) {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
