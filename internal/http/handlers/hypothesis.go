package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ideaforge/ideaforge-backend/internal/data/repos/funnel"
	"github.com/ideaforge/ideaforge-backend/internal/http/response"
	"github.com/ideaforge/ideaforge-backend/internal/platform/ctxutil"
	"github.com/ideaforge/ideaforge-backend/internal/platform/dbctx"
	"github.com/ideaforge/ideaforge-backend/internal/platform/logger"
	"github.com/ideaforge/ideaforge-backend/internal/services"
)

type HypothesisHandler struct {
	log      *logger.Logger
	workflow services.WorkflowService
	hyps     funnel.HypothesisRepo
	ices     funnel.ICEScoreRepo
}

func NewHypothesisHandler(
	baseLog *logger.Logger,
	workflow services.WorkflowService,
	hyps funnel.HypothesisRepo,
	ices funnel.ICEScoreRepo,
) *HypothesisHandler {
	return &HypothesisHandler{
		log:      baseLog.With("handler", "HypothesisHandler"),
		workflow: workflow,
		hyps:     hyps,
		ices:     ices,
	}
}

// GET /api/hypotheses/:id
func (h *HypothesisHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_hypothesis_id", err)
		return
	}
	hyp, err := h.hyps.GetByID(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, hyp)
}

// GET /api/hypotheses/:id/ice-scores
func (h *HypothesisHandler) ICEScores(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_hypothesis_id", err)
		return
	}
	scores, err := h.ices.GetByHypothesisID(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, scores)
}

// POST /api/hypotheses/:id/ice-scores
func (h *HypothesisHandler) PerformICEScoring(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_hypothesis_id", err)
		return
	}
	var in services.PerformICEScoringInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, 400, "invalid_body", err)
		return
	}
	in.HypothesisID = id
	in.ActorID = ctxutil.ActorID(c.Request.Context())

	hyp, err := h.workflow.PerformICEScoring(c.Request.Context(), in)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, hyp)
}

// POST /api/hypotheses/:id/desk-research
func (h *HypothesisHandler) CompleteDeskResearch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_hypothesis_id", err)
		return
	}
	var in services.CompleteDeskResearchInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, 400, "invalid_body", err)
		return
	}
	in.HypothesisID = id
	in.ActorID = ctxutil.ActorID(c.Request.Context())

	hyp, err := h.workflow.CompleteDeskResearch(c.Request.Context(), in)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, hyp)
}

// POST /api/hypotheses/:id/experiments
func (h *HypothesisHandler) CreateExperiment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_hypothesis_id", err)
		return
	}
	var in services.CreateExperimentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, 400, "invalid_body", err)
		return
	}
	in.HypothesisID = id
	in.ActorID = ctxutil.ActorID(c.Request.Context())

	exp, err := h.workflow.CreateExperimentFromHypothesis(c.Request.Context(), in)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondCreated(c, exp)
}
