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

type ExperimentHandler struct {
	log      *logger.Logger
	workflow services.WorkflowService
	exps     funnel.ExperimentRepo
	results  funnel.ExperimentResultRepo
}

func NewExperimentHandler(
	baseLog *logger.Logger,
	workflow services.WorkflowService,
	exps funnel.ExperimentRepo,
	results funnel.ExperimentResultRepo,
) *ExperimentHandler {
	return &ExperimentHandler{
		log:      baseLog.With("handler", "ExperimentHandler"),
		workflow: workflow,
		exps:     exps,
		results:  results,
	}
}

// GET /api/experiments/running
func (h *ExperimentHandler) ListRunning(c *gin.Context) {
	exps, err := h.exps.ListRunning(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, exps)
}

// GET /api/experiments/:id
func (h *ExperimentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_experiment_id", err)
		return
	}
	exp, err := h.exps.GetByID(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, exp)
}

// GET /api/experiments/:id/results
func (h *ExperimentHandler) Results(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_experiment_id", err)
		return
	}
	results, err := h.results.GetByExperimentID(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, results)
}

// POST /api/experiments/:id/start
func (h *ExperimentHandler) Start(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_experiment_id", err)
		return
	}
	exp, err := h.workflow.StartExperiment(c.Request.Context(), id, ctxutil.ActorID(c.Request.Context()))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, exp)
}

// POST /api/experiments/:id/complete
func (h *ExperimentHandler) Complete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_experiment_id", err)
		return
	}
	var in services.CompleteExperimentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, 400, "invalid_body", err)
		return
	}
	in.ExperimentID = id
	in.ActorID = ctxutil.ActorID(c.Request.Context())

	exp, err := h.workflow.CompleteExperiment(c.Request.Context(), in)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, exp)
}

// POST /api/experiments/:id/mvp
func (h *ExperimentHandler) CreateMVP(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_experiment_id", err)
		return
	}
	var in services.CreateMVPInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, 400, "invalid_body", err)
		return
	}
	in.ExperimentID = id
	in.ActorID = ctxutil.ActorID(c.Request.Context())

	mvp, err := h.workflow.CreateMVPFromExperiment(c.Request.Context(), in)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondCreated(c, mvp)
}
